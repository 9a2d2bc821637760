package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountID identifies an Account.
type AccountID string

// Account is the tenant that owns contacts and everything attached to them.
type Account struct {
	// ID is the unique identifier for the account (UUID format).
	ID AccountID

	// Email is the login address (unique).
	Email string

	// DisplayName is shown in the UI.
	DisplayName string

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64
}

// NewAccount builds an Account with a fresh ID and timestamps.
func NewAccount(email, displayName, passwordHash string) *Account {
	now := time.Now().Unix()
	return &Account{
		ID:           AccountID(uuid.New().String()),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
