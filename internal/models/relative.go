package models

import (
	"time"

	"github.com/mmynk/rolodex/internal/dates"
)

type KidID string

type SignificantOtherID string

// Kid is a child of a contact.
type Kid struct {
	ID        KidID
	AccountID AccountID
	ContactID ContactID

	FirstName string
	Gender    string

	Birthdate              *time.Time
	BirthdateApproximation BirthdateApproximation

	CreatedAt int64
	UpdatedAt int64
}

// Age returns the kid's age in whole years at now, false if unknown.
func (k *Kid) Age(now time.Time) (int, bool) {
	if k.Birthdate == nil {
		return 0, false
	}
	return dates.YearsBetween(*k.Birthdate, now), true
}

// SignificantOtherStatus is the relationship state of a significant other.
type SignificantOtherStatus string

const (
	SignificantOtherActive   SignificantOtherStatus = "active"
	SignificantOtherInactive SignificantOtherStatus = "inactive"
)

// SignificantOther is a partner of a contact. Several active partners may
// coexist; the current one is the active row updated last.
type SignificantOther struct {
	ID        SignificantOtherID
	AccountID AccountID
	ContactID ContactID

	FirstName string
	LastName  *string
	Gender    string
	Status    SignificantOtherStatus

	Birthdate              *time.Time
	BirthdateApproximation BirthdateApproximation

	CreatedAt int64
	UpdatedAt int64
}

// CompleteName is the first name followed by the last name when present.
func (s *SignificantOther) CompleteName() string {
	if last, ok := present(s.LastName); ok {
		return s.FirstName + " " + last
	}
	return s.FirstName
}

// Age returns the partner's age in whole years at now, false if unknown.
func (s *SignificantOther) Age(now time.Time) (int, bool) {
	if s.Birthdate == nil {
		return 0, false
	}
	return dates.YearsBetween(*s.Birthdate, now), true
}
