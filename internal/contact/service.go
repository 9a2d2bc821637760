// Package contact implements the Contact aggregate: every mutation of a
// contact's owned records, the audit log they produce, the denormalized
// counters they maintain, and the read projections built on top.
//
// Each mutation runs in a single store transaction. The sub-record write, the
// counter update and the event append either all commit or none of them do.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/rolodex/internal/avatar"
	"github.com/mmynk/rolodex/internal/metrics"
	"github.com/mmynk/rolodex/internal/models"
	"github.com/mmynk/rolodex/internal/storage"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// URLResolver turns blob keys into public URLs.
type URLResolver interface {
	URL(key string) string
}

// GravatarLookup finds the Gravatar picture of an email address.
type GravatarLookup interface {
	URL(ctx context.Context, email string, size int) (string, bool)
}

// AvatarStore stores uploaded pictures and their thumbnails.
type AvatarStore interface {
	Upload(ctx context.Context, contactID models.ContactID, data []byte) (string, error)
	Remove(ctx context.Context, key string)
}

// Service mutates and reads contacts on behalf of their account.
type Service struct {
	store    storage.Store
	blobs    URLResolver
	gravatar GravatarLookup
	avatars  AvatarStore
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithBlobs(blobs URLResolver) Option {
	return func(s *Service) { s.blobs = blobs }
}

func WithGravatar(g GravatarLookup) Option {
	return func(s *Service) { s.gravatar = g }
}

func WithAvatars(a AvatarStore) Option {
	return func(s *Service) { s.avatars = a }
}

// NewService creates a contact service on top of store.
func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ContactInput carries the editable fields of a contact.
type ContactInput struct {
	FirstName  string
	MiddleName *string
	LastName   *string
	Gender     string
	Birthdate  BirthdateInput

	Street     *string
	City       *string
	Province   *string
	PostalCode *string
	Country    *string

	Email           *string
	PhoneNumber     *string
	FacebookURL     *string
	TwitterURL      *string
	LinkedInURL     *string
	FoodPreferences *string
}

// Create adds a contact to accountID and logs its creation.
func (s *Service) Create(ctx context.Context, accountID models.AccountID, in ContactInput) (*models.Contact, error) {
	first := strings.TrimSpace(in.FirstName)
	if first == "" {
		return nil, fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	now := s.now()
	birthdate, approximation, err := resolveBirthdate(now, in.Birthdate)
	if err != nil {
		return nil, err
	}

	id := models.ContactID(uuid.New().String())
	c := &models.Contact{
		ID:                     id,
		AccountID:              accountID,
		FirstName:              models.CapitalizeFirst(first),
		MiddleName:             in.MiddleName,
		LastName:               in.LastName,
		Gender:                 in.Gender,
		Birthdate:              birthdate,
		BirthdateApproximation: approximation,
		Street:                 in.Street,
		City:                   in.City,
		Province:               in.Province,
		PostalCode:             in.PostalCode,
		Country:                in.Country,
		Email:                  in.Email,
		PhoneNumber:            in.PhoneNumber,
		FacebookURL:            in.FacebookURL,
		TwitterURL:             in.TwitterURL,
		LinkedInURL:            in.LinkedInURL,
		FoodPreferences:        in.FoodPreferences,
		AvatarColor:            avatar.ColorFor(string(id)),
		CreatedAt:              now.Unix(),
		UpdatedAt:              now.Unix(),
	}

	err = s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.CreateContact(ctx, c); err != nil {
			return err
		}
		return s.logEvent(ctx, tx, c, models.ContactSubject{ID: c.ID}, models.OperationCreate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	s.committed(models.ObjectContact, models.OperationCreate)
	return c, nil
}

// Get loads a contact of accountID.
func (s *Service) Get(ctx context.Context, accountID models.AccountID, contactID models.ContactID) (*models.Contact, error) {
	return s.store.GetContact(ctx, accountID, contactID)
}

// List returns the contacts of accountID.
func (s *Service) List(ctx context.Context, accountID models.AccountID) ([]*models.Contact, error) {
	return s.store.ListContacts(ctx, accountID)
}

// Delete removes c and everything it owns, including its avatar files.
func (s *Service) Delete(ctx context.Context, c *models.Contact) error {
	if err := s.store.DeleteContact(ctx, c.AccountID, c.ID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if key, ok := c.Avatar(); ok && s.avatars != nil {
		s.avatars.Remove(ctx, key)
	}
	s.committed(models.ObjectContact, models.OperationDelete)
	slog.Info("Contact deleted", "contact_id", c.ID, "account_id", c.AccountID)
	return nil
}

// UpdateName renames c. It reports false and writes nothing when first is
// empty. A nil middle or last name leaves that part unchanged.
func (s *Service) UpdateName(ctx context.Context, c *models.Contact, first string, middle, last *string) (bool, error) {
	first = strings.TrimSpace(first)
	if first == "" {
		return false, nil
	}

	first = models.CapitalizeFirst(first)

	var updated *models.Contact
	err := s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.UpdateContactName(ctx, c.AccountID, c.ID, first, middle, last, s.now().Unix()); err != nil {
			return err
		}
		if err := s.logEvent(ctx, tx, c, models.ContactSubject{ID: c.ID}, models.OperationUpdate); err != nil {
			return err
		}
		var err error
		updated, err = tx.GetContact(ctx, c.AccountID, c.ID)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to update contact name: %w", err)
	}
	*c = *updated
	s.committed(models.ObjectContact, models.OperationUpdate)
	return true, nil
}

// logEvent appends one audit row for subject inside tx.
func (s *Service) logEvent(ctx context.Context, tx storage.Repository, c *models.Contact, subject models.Subject, op models.Operation) error {
	return tx.AppendEvent(ctx, &models.Event{
		AccountID: c.AccountID,
		ContactID: c.ID,
		Subject:   subject,
		Operation: op,
		CreatedAt: s.now().Unix(),
	})
}

// purgeEvents removes the history of a deleted subject and records the
// deletion itself.
func (s *Service) purgeEvents(ctx context.Context, tx storage.Repository, c *models.Contact, subject models.Subject) error {
	if _, err := tx.DeleteEventsForSubject(ctx, c.ID, subject); err != nil {
		return err
	}
	return s.logEvent(ctx, tx, c, subject, models.OperationDelete)
}

func (s *Service) committed(object models.ObjectType, op models.Operation) {
	metrics.ContactMutations.WithLabelValues(string(object), string(op)).Inc()
}
