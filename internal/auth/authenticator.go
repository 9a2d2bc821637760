package auth

import (
	"context"

	"github.com/mmynk/rolodex/internal/models"
)

// Authenticator registers accounts and checks their credentials. The
// credential format depends on the implementation.
type Authenticator interface {
	// Register creates an account, failing with ErrEmailExists when the
	// address is taken.
	Register(ctx context.Context, email, displayName, credential string) (*models.Account, error)

	// Authenticate returns the account matching email and credential, or
	// ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, credential string) (*models.Account, error)

	ValidateCredential(credential string) error
}
