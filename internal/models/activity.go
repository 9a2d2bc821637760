package models

import "time"

type ActivityID string

type ActivityStatisticID string

// Activity is something the account owner did with a contact.
type Activity struct {
	ID        ActivityID
	AccountID AccountID
	ContactID ContactID

	Summary     string
	Description *string

	// DateItHappened is a calendar date (UTC midnight).
	DateItHappened time.Time

	CreatedAt int64
}

// ActivityStatistic is the number of activities with a contact in one year.
// Rows are derived: they are thrown away and rebuilt from the activities.
type ActivityStatistic struct {
	ID        ActivityStatisticID
	AccountID AccountID
	ContactID ContactID

	Year  int
	Count int

	CreatedAt int64
}
