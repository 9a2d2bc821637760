package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/rolodex/internal/models"
	"github.com/mmynk/rolodex/internal/storage"
)

// KidInput carries the editable fields of a kid.
type KidInput struct {
	FirstName string
	Gender    string
	Birthdate BirthdateInput
}

// SignificantOtherInput carries the editable fields of a significant other.
// An empty Status means active.
type SignificantOtherInput struct {
	FirstName string
	LastName  *string
	Gender    string
	Status    models.SignificantOtherStatus
	Birthdate BirthdateInput
}

// AddKid creates a kid for c and bumps its kid counter.
func (s *Service) AddKid(ctx context.Context, c *models.Contact, in KidInput) (*models.Kid, error) {
	kid := &models.Kid{AccountID: c.AccountID, ContactID: c.ID}
	if err := s.applyKid(kid, in); err != nil {
		return nil, err
	}
	kid.CreatedAt = kid.UpdatedAt

	var count int
	err := s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.CreateKid(ctx, kid); err != nil {
			return err
		}
		var err error
		if count, err = tx.AdjustKidCount(ctx, c.ID, 1); err != nil {
			return err
		}
		return s.logEvent(ctx, tx, c, models.KidSubject{ID: kid.ID}, models.OperationCreate)
	})
	if err != nil {
		slog.Error("AddKid failed", "contact_id", c.ID, "error", err)
		return nil, fmt.Errorf("failed to add kid: %w", err)
	}
	c.NumberOfKids = count
	s.committed(models.ObjectKid, models.OperationCreate)
	return kid, nil
}

// EditKid overwrites the fields of a kid of c.
func (s *Service) EditKid(ctx context.Context, c *models.Contact, kid *models.Kid, in KidInput) (*models.Kid, error) {
	return s.EditKidByID(ctx, c, kid.ID, in)
}

// EditKidByID is EditKid for a kid known only by id. It wraps
// storage.ErrNotFound when the kid does not belong to c.
func (s *Service) EditKidByID(ctx context.Context, c *models.Contact, id models.KidID, in KidInput) (*models.Kid, error) {
	var kid *models.Kid
	err := s.store.WithinTx(ctx, func(tx storage.Repository) error {
		var err error
		if kid, err = tx.GetKid(ctx, c.ID, id); err != nil {
			return err
		}
		if err := s.applyKid(kid, in); err != nil {
			return err
		}
		if err := tx.UpdateKid(ctx, kid); err != nil {
			return err
		}
		return s.logEvent(ctx, tx, c, models.KidSubject{ID: kid.ID}, models.OperationUpdate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to edit kid: %w", err)
	}
	s.committed(models.ObjectKid, models.OperationUpdate)
	return kid, nil
}

// DeleteKid removes a kid of c, its events, and decrements the kid counter.
func (s *Service) DeleteKid(ctx context.Context, c *models.Contact, kid *models.Kid) error {
	return s.DeleteKidByID(ctx, c, kid.ID)
}

// DeleteKidByID is DeleteKid for a kid known only by id.
func (s *Service) DeleteKidByID(ctx context.Context, c *models.Contact, id models.KidID) error {
	var count int
	err := s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.DeleteKid(ctx, c.ID, id); err != nil {
			return err
		}
		var err error
		if count, err = tx.AdjustKidCount(ctx, c.ID, -1); err != nil {
			return err
		}
		return s.purgeEvents(ctx, tx, c, models.KidSubject{ID: id})
	})
	if err != nil {
		return fmt.Errorf("failed to delete kid: %w", err)
	}
	c.NumberOfKids = count
	s.committed(models.ObjectKid, models.OperationDelete)
	return nil
}

func (s *Service) applyKid(kid *models.Kid, in KidInput) error {
	first := strings.TrimSpace(in.FirstName)
	if first == "" {
		return fmt.Errorf("%w: kid first name is required", ErrInvalidInput)
	}
	now := s.now()
	birthdate, approximation, err := resolveBirthdate(now, in.Birthdate)
	if err != nil {
		return err
	}
	kid.FirstName = models.CapitalizeFirst(first)
	kid.Gender = in.Gender
	kid.Birthdate = birthdate
	kid.BirthdateApproximation = approximation
	kid.UpdatedAt = now.Unix()
	return nil
}

// AddSignificantOther creates a significant other for c. Other active
// partners are left alone; the newest activation becomes the current one.
func (s *Service) AddSignificantOther(ctx context.Context, c *models.Contact, in SignificantOtherInput) (*models.SignificantOther, error) {
	so := &models.SignificantOther{AccountID: c.AccountID, ContactID: c.ID}
	if err := s.applySignificantOther(so, in); err != nil {
		return nil, err
	}
	so.CreatedAt = so.UpdatedAt

	err := s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.CreateSignificantOther(ctx, so); err != nil {
			return err
		}
		return s.logEvent(ctx, tx, c, models.SignificantOtherSubject{ID: so.ID}, models.OperationCreate)
	})
	if err != nil {
		slog.Error("AddSignificantOther failed", "contact_id", c.ID, "error", err)
		return nil, fmt.Errorf("failed to add significant other: %w", err)
	}
	s.committed(models.ObjectSignificantOther, models.OperationCreate)
	return so, nil
}

// EditSignificantOther overwrites the fields of a significant other of c.
func (s *Service) EditSignificantOther(ctx context.Context, c *models.Contact, so *models.SignificantOther, in SignificantOtherInput) (*models.SignificantOther, error) {
	return s.EditSignificantOtherByID(ctx, c, so.ID, in)
}

// EditSignificantOtherByID is EditSignificantOther for a partner known only
// by id.
func (s *Service) EditSignificantOtherByID(ctx context.Context, c *models.Contact, id models.SignificantOtherID, in SignificantOtherInput) (*models.SignificantOther, error) {
	var so *models.SignificantOther
	err := s.store.WithinTx(ctx, func(tx storage.Repository) error {
		var err error
		if so, err = tx.GetSignificantOther(ctx, c.ID, id); err != nil {
			return err
		}
		if err := s.applySignificantOther(so, in); err != nil {
			return err
		}
		if err := tx.UpdateSignificantOther(ctx, so); err != nil {
			return err
		}
		return s.logEvent(ctx, tx, c, models.SignificantOtherSubject{ID: so.ID}, models.OperationUpdate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to edit significant other: %w", err)
	}
	s.committed(models.ObjectSignificantOther, models.OperationUpdate)
	return so, nil
}

// DeleteSignificantOther removes a significant other of c and its events.
func (s *Service) DeleteSignificantOther(ctx context.Context, c *models.Contact, so *models.SignificantOther) error {
	return s.DeleteSignificantOtherByID(ctx, c, so.ID)
}

// DeleteSignificantOtherByID is DeleteSignificantOther for a partner known
// only by id.
func (s *Service) DeleteSignificantOtherByID(ctx context.Context, c *models.Contact, id models.SignificantOtherID) error {
	err := s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.DeleteSignificantOther(ctx, c.ID, id); err != nil {
			return err
		}
		return s.purgeEvents(ctx, tx, c, models.SignificantOtherSubject{ID: id})
	})
	if err != nil {
		return fmt.Errorf("failed to delete significant other: %w", err)
	}
	s.committed(models.ObjectSignificantOther, models.OperationDelete)
	return nil
}

func (s *Service) applySignificantOther(so *models.SignificantOther, in SignificantOtherInput) error {
	first := strings.TrimSpace(in.FirstName)
	if first == "" {
		return fmt.Errorf("%w: significant other first name is required", ErrInvalidInput)
	}
	status := in.Status
	switch status {
	case "":
		status = models.SignificantOtherActive
	case models.SignificantOtherActive, models.SignificantOtherInactive:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	now := s.now()
	birthdate, approximation, err := resolveBirthdate(now, in.Birthdate)
	if err != nil {
		return err
	}
	so.FirstName = models.CapitalizeFirst(first)
	so.LastName = in.LastName
	so.Gender = in.Gender
	so.Status = status
	so.Birthdate = birthdate
	so.BirthdateApproximation = approximation
	so.UpdatedAt = now.Unix()
	return nil
}
