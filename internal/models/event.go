package models

import "fmt"

type EventID string

// ObjectType is the stored tag of an event subject.
type ObjectType string

const (
	ObjectContact          ObjectType = "contact"
	ObjectKid              ObjectType = "kid"
	ObjectSignificantOther ObjectType = "significantother"
	ObjectNote             ObjectType = "note"
	ObjectActivity         ObjectType = "activity"
	ObjectReminder         ObjectType = "reminder"
	ObjectGift             ObjectType = "gift"
	ObjectTask             ObjectType = "task"
	ObjectDebt             ObjectType = "debt"
)

// Operation is what happened to an event subject.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Subject is the record an Event is about. The set of implementations is
// closed: one per owned record kind, each carrying its own ID type.
type Subject interface {
	ObjectType() ObjectType
	ObjectID() string
	isSubject()
}

type ContactSubject struct{ ID ContactID }
type KidSubject struct{ ID KidID }
type SignificantOtherSubject struct{ ID SignificantOtherID }
type NoteSubject struct{ ID NoteID }
type ActivitySubject struct{ ID ActivityID }
type ReminderSubject struct{ ID ReminderID }
type GiftSubject struct{ ID GiftID }
type TaskSubject struct{ ID TaskID }
type DebtSubject struct{ ID DebtID }

func (ContactSubject) ObjectType() ObjectType          { return ObjectContact }
func (KidSubject) ObjectType() ObjectType              { return ObjectKid }
func (SignificantOtherSubject) ObjectType() ObjectType { return ObjectSignificantOther }
func (NoteSubject) ObjectType() ObjectType             { return ObjectNote }
func (ActivitySubject) ObjectType() ObjectType         { return ObjectActivity }
func (ReminderSubject) ObjectType() ObjectType         { return ObjectReminder }
func (GiftSubject) ObjectType() ObjectType             { return ObjectGift }
func (TaskSubject) ObjectType() ObjectType             { return ObjectTask }
func (DebtSubject) ObjectType() ObjectType             { return ObjectDebt }

func (s ContactSubject) ObjectID() string          { return string(s.ID) }
func (s KidSubject) ObjectID() string              { return string(s.ID) }
func (s SignificantOtherSubject) ObjectID() string { return string(s.ID) }
func (s NoteSubject) ObjectID() string             { return string(s.ID) }
func (s ActivitySubject) ObjectID() string         { return string(s.ID) }
func (s ReminderSubject) ObjectID() string         { return string(s.ID) }
func (s GiftSubject) ObjectID() string             { return string(s.ID) }
func (s TaskSubject) ObjectID() string             { return string(s.ID) }
func (s DebtSubject) ObjectID() string             { return string(s.ID) }

func (ContactSubject) isSubject()          {}
func (KidSubject) isSubject()              {}
func (SignificantOtherSubject) isSubject() {}
func (NoteSubject) isSubject()             {}
func (ActivitySubject) isSubject()         {}
func (ReminderSubject) isSubject()         {}
func (GiftSubject) isSubject()             {}
func (TaskSubject) isSubject()             {}
func (DebtSubject) isSubject()             {}

// SubjectFor rebuilds a Subject from its stored (object_type, object_id) pair.
func SubjectFor(objectType ObjectType, objectID string) (Subject, error) {
	switch objectType {
	case ObjectContact:
		return ContactSubject{ID: ContactID(objectID)}, nil
	case ObjectKid:
		return KidSubject{ID: KidID(objectID)}, nil
	case ObjectSignificantOther:
		return SignificantOtherSubject{ID: SignificantOtherID(objectID)}, nil
	case ObjectNote:
		return NoteSubject{ID: NoteID(objectID)}, nil
	case ObjectActivity:
		return ActivitySubject{ID: ActivityID(objectID)}, nil
	case ObjectReminder:
		return ReminderSubject{ID: ReminderID(objectID)}, nil
	case ObjectGift:
		return GiftSubject{ID: GiftID(objectID)}, nil
	case ObjectTask:
		return TaskSubject{ID: TaskID(objectID)}, nil
	case ObjectDebt:
		return DebtSubject{ID: DebtID(objectID)}, nil
	default:
		return nil, fmt.Errorf("unknown event object type: %q", objectType)
	}
}

// Event is an append-only audit record. Events are never updated; they are
// deleted together with their subject.
type Event struct {
	ID        EventID
	AccountID AccountID
	ContactID ContactID

	Subject   Subject
	Operation Operation

	CreatedAt int64
}
