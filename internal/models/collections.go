package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReminderID string

type GiftID string

type TaskID string

type DebtID string

// FrequencyType is how often a reminder repeats.
type FrequencyType string

const (
	FrequencyOneTime FrequencyType = "one_time"
	FrequencyWeek    FrequencyType = "week"
	FrequencyMonth   FrequencyType = "month"
	FrequencyYear    FrequencyType = "year"
)

// Reminder is a dated nudge about a contact.
type Reminder struct {
	ID        ReminderID
	AccountID AccountID
	ContactID ContactID

	Title       string
	Description *string

	NextExpectedDate time.Time
	FrequencyType    FrequencyType
	FrequencyNumber  int

	CreatedAt int64
}

// Gift is either an idea for a present or a present already given.
type Gift struct {
	ID        GiftID
	AccountID AccountID
	ContactID ContactID

	Name    string
	Comment *string
	URL     *string
	Value   decimal.Decimal

	IsAnIdea       bool
	HasBeenOffered bool

	CreatedAt int64
}

// ProgressStatus is shared by tasks and debts.
type ProgressStatus string

const (
	StatusInProgress ProgressStatus = "inprogress"
	StatusCompleted  ProgressStatus = "completed"
)

// Task is a to-do item about a contact.
type Task struct {
	ID        TaskID
	AccountID AccountID
	ContactID ContactID

	Title       string
	Description *string
	Status      ProgressStatus

	CreatedAt int64
}

// Debt is money owed between the account owner and a contact.
type Debt struct {
	ID        DebtID
	AccountID AccountID
	ContactID ContactID

	// InDebt is true when the account owner owes the contact.
	InDebt bool
	Status ProgressStatus
	Amount decimal.Decimal
	Reason *string

	CreatedAt int64
}

// OutstandingBalance sums the debts still in progress: positive when the
// contact owes the account owner, negative when it is the other way round.
func OutstandingBalance(debts []*Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		if d.Status != StatusInProgress {
			continue
		}
		if d.InDebt {
			total = total.Sub(d.Amount)
		} else {
			total = total.Add(d.Amount)
		}
	}
	return total
}
