package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/rolodex/internal/models"
)

// CreateNote persists a new note to the database.
func (q *queries) CreateNote(ctx context.Context, note *models.Note) error {
	// Generate ID if not set
	if note.ID == "" {
		note.ID = models.NoteID(uuid.New().String())
	}
	if note.CreatedAt == 0 {
		note.CreatedAt = time.Now().Unix()
	}
	if note.UpdatedAt == 0 {
		note.UpdatedAt = note.CreatedAt
	}

	_, err := q.exec(ctx,
		`INSERT INTO notes (id, account_id, contact_id, body, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		note.ID, note.AccountID, note.ContactID, note.Body, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// GetNote retrieves a note of the given contact.
func (q *queries) GetNote(ctx context.Context, contactID models.ContactID, noteID models.NoteID) (*models.Note, error) {
	note := &models.Note{}
	err := q.queryRow(ctx,
		`SELECT id, account_id, contact_id, body, created_at, updated_at
		 FROM notes WHERE id = ? AND contact_id = ?`,
		noteID, contactID,
	).Scan(&note.ID, &note.AccountID, &note.ContactID, &note.Body, &note.CreatedAt, &note.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, notFound("note", noteID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// UpdateNote rewrites a note's body.
func (q *queries) UpdateNote(ctx context.Context, note *models.Note) error {
	if note.UpdatedAt == 0 {
		note.UpdatedAt = time.Now().Unix()
	}
	res, err := q.exec(ctx,
		"UPDATE notes SET body = ?, updated_at = ? WHERE id = ? AND contact_id = ?",
		note.Body, note.UpdatedAt, note.ID, note.ContactID,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return checkAffected(res, "note", note.ID)
}

// DeleteNote removes a note by ID.
func (q *queries) DeleteNote(ctx context.Context, contactID models.ContactID, noteID models.NoteID) error {
	res, err := q.exec(ctx, "DELETE FROM notes WHERE id = ? AND contact_id = ?", noteID, contactID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return checkAffected(res, "note", noteID)
}

// ListNotes retrieves all notes of a contact, newest first.
func (q *queries) ListNotes(ctx context.Context, contactID models.ContactID) ([]*models.Note, error) {
	rows, err := q.query(ctx,
		`SELECT id, account_id, contact_id, body, created_at, updated_at
		 FROM notes WHERE contact_id = ? ORDER BY created_at DESC`,
		contactID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(&note.ID, &note.AccountID, &note.ContactID, &note.Body,
			&note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}
	return notes, nil
}
