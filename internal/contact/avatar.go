package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/rolodex/internal/models"
	"github.com/mmynk/rolodex/internal/storage"
)

// AvatarURL returns the public URL of the size variant of c's picture.
func (s *Service) AvatarURL(c *models.Contact, size int) (string, bool) {
	if s.blobs == nil {
		return "", false
	}
	key, ok := c.ResizedAvatarKey(size)
	if !ok {
		return "", false
	}
	return s.blobs.URL(key), true
}

// GravatarURL looks up the Gravatar picture of c's email. Any failure reads
// as no picture.
func (s *Service) GravatarURL(ctx context.Context, c *models.Contact, size int) (string, bool) {
	if s.gravatar == nil {
		return "", false
	}
	email, ok := c.EmailAddress()
	if !ok {
		return "", false
	}
	return s.gravatar.URL(ctx, email, size)
}

// SetAvatar stores data as c's new picture and drops the previous one.
func (s *Service) SetAvatar(ctx context.Context, c *models.Contact, data []byte) error {
	if s.avatars == nil {
		return errors.New("avatar uploads are not configured")
	}
	key, err := s.avatars.Upload(ctx, c.ID, data)
	if err != nil {
		return fmt.Errorf("failed to upload avatar: %w", err)
	}

	var previous *string
	var updated *models.Contact
	err = s.store.WithinTx(ctx, func(tx storage.Repository) error {
		var err error
		if previous, err = tx.SetContactAvatar(ctx, c.AccountID, c.ID, key, s.now().Unix()); err != nil {
			return err
		}
		if err := s.logEvent(ctx, tx, c, models.ContactSubject{ID: c.ID}, models.OperationUpdate); err != nil {
			return err
		}
		updated, err = tx.GetContact(ctx, c.AccountID, c.ID)
		return err
	})
	if err != nil {
		s.avatars.Remove(ctx, key)
		return fmt.Errorf("failed to save avatar: %w", err)
	}
	*c = *updated
	s.committed(models.ObjectContact, models.OperationUpdate)

	if previous != nil && *previous != "" && *previous != key {
		s.avatars.Remove(ctx, *previous)
	}
	slog.Info("Contact avatar updated", "contact_id", c.ID)
	return nil
}
