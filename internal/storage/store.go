// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/rolodex/internal/models"
)

// ErrNotFound is wrapped by every lookup that finds no row, including rows
// that exist but belong to another contact or account.
var ErrNotFound = errors.New("not found")

// AccountStore persists accounts.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	// GetAccountByEmail returns nil, nil when no account uses email.
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAccountByID(ctx context.Context, id models.AccountID) (*models.Account, error)
}

// ContactStore persists contacts and their denormalized counters.
type ContactStore interface {
	// CreateContact fills in ID and timestamps when unset.
	CreateContact(ctx context.Context, contact *models.Contact) error
	// GetContact wraps ErrNotFound when the contact is missing or owned by
	// another account.
	GetContact(ctx context.Context, accountID models.AccountID, contactID models.ContactID) (*models.Contact, error)
	ListContacts(ctx context.Context, accountID models.AccountID) ([]*models.Contact, error)
	// UpdateContactName and SetContactAvatar touch only their own columns, so
	// a rename and an avatar upload on the same contact do not undo each other.
	UpdateContactName(ctx context.Context, accountID models.AccountID, contactID models.ContactID, first string, middle, last *string, updatedAt int64) error
	// SetContactAvatar returns the file name it replaced, nil when there was none.
	SetContactAvatar(ctx context.Context, accountID models.AccountID, contactID models.ContactID, key string, updatedAt int64) (*string, error)
	// DeleteContact removes the contact and, by cascade, everything it owns.
	DeleteContact(ctx context.Context, accountID models.AccountID, contactID models.ContactID) error

	// AdjustKidCount and AdjustNoteCount add delta to the counter in a single
	// statement, clamp the result at zero and return the new value.
	AdjustKidCount(ctx context.Context, contactID models.ContactID, delta int) (int, error)
	AdjustNoteCount(ctx context.Context, contactID models.ContactID, delta int) (int, error)
}

// RelativeStore persists kids and significant others. Lookups are scoped by
// contact.
type RelativeStore interface {
	CreateKid(ctx context.Context, kid *models.Kid) error
	GetKid(ctx context.Context, contactID models.ContactID, kidID models.KidID) (*models.Kid, error)
	UpdateKid(ctx context.Context, kid *models.Kid) error
	DeleteKid(ctx context.Context, contactID models.ContactID, kidID models.KidID) error
	ListKids(ctx context.Context, contactID models.ContactID) ([]*models.Kid, error)

	CreateSignificantOther(ctx context.Context, so *models.SignificantOther) error
	GetSignificantOther(ctx context.Context, contactID models.ContactID, id models.SignificantOtherID) (*models.SignificantOther, error)
	UpdateSignificantOther(ctx context.Context, so *models.SignificantOther) error
	DeleteSignificantOther(ctx context.Context, contactID models.ContactID, id models.SignificantOtherID) error
	ListSignificantOthers(ctx context.Context, contactID models.ContactID) ([]*models.SignificantOther, error)
	// CurrentSignificantOther returns the active partner updated last, or
	// nil, nil when there is none.
	CurrentSignificantOther(ctx context.Context, contactID models.ContactID) (*models.SignificantOther, error)
}

// NoteStore persists notes.
type NoteStore interface {
	CreateNote(ctx context.Context, note *models.Note) error
	GetNote(ctx context.Context, contactID models.ContactID, noteID models.NoteID) (*models.Note, error)
	UpdateNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, contactID models.ContactID, noteID models.NoteID) error
	// ListNotes returns notes newest first.
	ListNotes(ctx context.Context, contactID models.ContactID) ([]*models.Note, error)
}

// EventStore persists the audit log.
type EventStore interface {
	AppendEvent(ctx context.Context, event *models.Event) error
	// DeleteEventsForSubject removes every event logged against subject and
	// returns how many rows went away.
	DeleteEventsForSubject(ctx context.Context, contactID models.ContactID, subject models.Subject) (int64, error)
	// ListEvents returns events newest first.
	ListEvents(ctx context.Context, contactID models.ContactID) ([]*models.Event, error)
}

// ActivityStore persists activities and their yearly statistics.
type ActivityStore interface {
	CreateActivity(ctx context.Context, activity *models.Activity) error
	ListActivities(ctx context.Context, contactID models.ContactID) ([]*models.Activity, error)

	DeleteActivityStatistics(ctx context.Context, contactID models.ContactID) error
	CreateActivityStatistic(ctx context.Context, stat *models.ActivityStatistic) error
	// ListActivityStatistics returns statistics ordered by year.
	ListActivityStatistics(ctx context.Context, contactID models.ContactID) ([]*models.ActivityStatistic, error)
}

// CollectionStore persists the simple owned collections.
type CollectionStore interface {
	CreateReminder(ctx context.Context, reminder *models.Reminder) error
	// ListReminders returns reminders by next expected date.
	ListReminders(ctx context.Context, contactID models.ContactID) ([]*models.Reminder, error)

	CreateGift(ctx context.Context, gift *models.Gift) error
	ListGifts(ctx context.Context, contactID models.ContactID) ([]*models.Gift, error)

	CreateTask(ctx context.Context, task *models.Task) error
	ListTasks(ctx context.Context, contactID models.ContactID) ([]*models.Task, error)

	CreateDebt(ctx context.Context, debt *models.Debt) error
	ListDebts(ctx context.Context, contactID models.ContactID) ([]*models.Debt, error)
}

// Repository is the full set of queries. It is implemented both by the
// store itself and by the transaction handle passed to WithinTx.
type Repository interface {
	AccountStore
	ContactStore
	RelativeStore
	NoteStore
	EventStore
	ActivityStore
	CollectionStore
}

// Store defines the interface for storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	Repository

	// WithinTx runs fn in a single transaction. The transaction commits when
	// fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(tx Repository) error) error

	// Close releases any resources held by the store.
	Close() error
}
