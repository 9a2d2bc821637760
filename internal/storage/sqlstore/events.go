package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/rolodex/internal/models"
)

// AppendEvent inserts an audit event. Each event gets the next per-contact
// sequence number so events logged within the same second keep their order.
func (q *queries) AppendEvent(ctx context.Context, event *models.Event) error {
	if event.Subject == nil {
		return fmt.Errorf("failed to insert event: missing subject")
	}
	if event.ID == "" {
		event.ID = models.EventID(uuid.New().String())
	}
	if event.CreatedAt == 0 {
		event.CreatedAt = time.Now().Unix()
	}

	_, err := q.exec(ctx,
		`INSERT INTO events (id, account_id, contact_id, object_type, object_id, nature_of_operation, created_at, seq)
		 VALUES (?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM events WHERE contact_id = ?))`,
		event.ID, event.AccountID, event.ContactID,
		event.Subject.ObjectType(), event.Subject.ObjectID(), event.Operation, event.CreatedAt,
		event.ContactID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// DeleteEventsForSubject removes the events logged against subject.
func (q *queries) DeleteEventsForSubject(ctx context.Context, contactID models.ContactID, subject models.Subject) (int64, error) {
	res, err := q.exec(ctx,
		"DELETE FROM events WHERE contact_id = ? AND object_type = ? AND object_id = ?",
		contactID, subject.ObjectType(), subject.ObjectID(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// ListEvents retrieves the events of a contact, newest first.
func (q *queries) ListEvents(ctx context.Context, contactID models.ContactID) ([]*models.Event, error) {
	rows, err := q.query(ctx,
		`SELECT id, account_id, contact_id, object_type, object_id, nature_of_operation, created_at
		 FROM events WHERE contact_id = ? ORDER BY created_at DESC, seq DESC`,
		contactID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		var objectType models.ObjectType
		var objectID string
		if err := rows.Scan(&event.ID, &event.AccountID, &event.ContactID,
			&objectType, &objectID, &event.Operation, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if event.Subject, err = models.SubjectFor(objectType, objectID); err != nil {
			return nil, fmt.Errorf("failed to decode event %s: %w", event.ID, err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}
