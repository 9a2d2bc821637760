package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/rolodex/internal/models"
	"github.com/mmynk/rolodex/internal/storage"
)

// AddNote writes a note about c and bumps its note counter.
func (s *Service) AddNote(ctx context.Context, c *models.Contact, body string) (*models.Note, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: note body is required", ErrInvalidInput)
	}
	now := s.now().Unix()
	note := &models.Note{
		AccountID: c.AccountID,
		ContactID: c.ID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var count int
	err := s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.CreateNote(ctx, note); err != nil {
			return err
		}
		var err error
		if count, err = tx.AdjustNoteCount(ctx, c.ID, 1); err != nil {
			return err
		}
		return s.logEvent(ctx, tx, c, models.NoteSubject{ID: note.ID}, models.OperationCreate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add note: %w", err)
	}
	c.NumberOfNotes = count
	s.committed(models.ObjectNote, models.OperationCreate)
	return note, nil
}

// EditNote replaces the body of a note of c.
func (s *Service) EditNote(ctx context.Context, c *models.Contact, note *models.Note, body string) (*models.Note, error) {
	return s.EditNoteByID(ctx, c, note.ID, body)
}

// EditNoteByID is EditNote for a note known only by id.
func (s *Service) EditNoteByID(ctx context.Context, c *models.Contact, id models.NoteID, body string) (*models.Note, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: note body is required", ErrInvalidInput)
	}

	var note *models.Note
	err := s.store.WithinTx(ctx, func(tx storage.Repository) error {
		var err error
		if note, err = tx.GetNote(ctx, c.ID, id); err != nil {
			return err
		}
		note.Body = body
		note.UpdatedAt = s.now().Unix()
		if err := tx.UpdateNote(ctx, note); err != nil {
			return err
		}
		return s.logEvent(ctx, tx, c, models.NoteSubject{ID: note.ID}, models.OperationUpdate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to edit note: %w", err)
	}
	s.committed(models.ObjectNote, models.OperationUpdate)
	return note, nil
}

// DeleteNote removes a note of c, its events, and decrements the note counter.
func (s *Service) DeleteNote(ctx context.Context, c *models.Contact, note *models.Note) error {
	return s.DeleteNoteByID(ctx, c, note.ID)
}

// DeleteNoteByID is DeleteNote for a note known only by id.
func (s *Service) DeleteNoteByID(ctx context.Context, c *models.Contact, id models.NoteID) error {
	var count int
	err := s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.DeleteNote(ctx, c.ID, id); err != nil {
			return err
		}
		var err error
		if count, err = tx.AdjustNoteCount(ctx, c.ID, -1); err != nil {
			return err
		}
		return s.purgeEvents(ctx, tx, c, models.NoteSubject{ID: id})
	})
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	c.NumberOfNotes = count
	s.committed(models.ObjectNote, models.OperationDelete)
	return nil
}
