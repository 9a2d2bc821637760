package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/rolodex/internal/dates"
	"github.com/mmynk/rolodex/internal/models"
)

const kidColumns = `id, account_id, contact_id, first_name, gender,
	birthdate, birthdate_approximation, created_at, updated_at`

// CreateKid persists a new kid.
func (q *queries) CreateKid(ctx context.Context, kid *models.Kid) error {
	if kid.ID == "" {
		kid.ID = models.KidID(uuid.New().String())
	}
	if kid.CreatedAt == 0 {
		kid.CreatedAt = time.Now().Unix()
	}
	if kid.UpdatedAt == 0 {
		kid.UpdatedAt = kid.CreatedAt
	}

	_, err := q.exec(ctx,
		`INSERT INTO kids (`+kidColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		kid.ID, kid.AccountID, kid.ContactID, kid.FirstName, kid.Gender,
		dates.FormatPtr(kid.Birthdate), kid.BirthdateApproximation, kid.CreatedAt, kid.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert kid: %w", err)
	}
	return nil
}

// GetKid retrieves a kid of the given contact.
func (q *queries) GetKid(ctx context.Context, contactID models.ContactID, kidID models.KidID) (*models.Kid, error) {
	kid, err := scanKid(q.queryRow(ctx,
		`SELECT `+kidColumns+` FROM kids WHERE id = ? AND contact_id = ?`, kidID, contactID))
	if err == sql.ErrNoRows {
		return nil, notFound("kid", kidID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kid: %w", err)
	}
	return kid, nil
}

// UpdateKid writes a kid's editable fields.
func (q *queries) UpdateKid(ctx context.Context, kid *models.Kid) error {
	if kid.UpdatedAt == 0 {
		kid.UpdatedAt = time.Now().Unix()
	}
	res, err := q.exec(ctx,
		`UPDATE kids SET first_name = ?, gender = ?, birthdate = ?, birthdate_approximation = ?, updated_at = ?
		 WHERE id = ? AND contact_id = ?`,
		kid.FirstName, kid.Gender, dates.FormatPtr(kid.Birthdate), kid.BirthdateApproximation, kid.UpdatedAt,
		kid.ID, kid.ContactID,
	)
	if err != nil {
		return fmt.Errorf("failed to update kid: %w", err)
	}
	return checkAffected(res, "kid", kid.ID)
}

// DeleteKid removes a kid of the given contact.
func (q *queries) DeleteKid(ctx context.Context, contactID models.ContactID, kidID models.KidID) error {
	res, err := q.exec(ctx, "DELETE FROM kids WHERE id = ? AND contact_id = ?", kidID, contactID)
	if err != nil {
		return fmt.Errorf("failed to delete kid: %w", err)
	}
	return checkAffected(res, "kid", kidID)
}

// ListKids retrieves the kids of a contact, oldest record first.
func (q *queries) ListKids(ctx context.Context, contactID models.ContactID) ([]*models.Kid, error) {
	rows, err := q.query(ctx,
		`SELECT `+kidColumns+` FROM kids WHERE contact_id = ? ORDER BY created_at, first_name`, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to list kids: %w", err)
	}
	defer rows.Close()

	var kids []*models.Kid
	for rows.Next() {
		kid, err := scanKid(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kid: %w", err)
		}
		kids = append(kids, kid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kids: %w", err)
	}
	return kids, nil
}

func scanKid(row rowScanner) (*models.Kid, error) {
	kid := &models.Kid{}
	var birthdate sql.NullString
	err := row.Scan(&kid.ID, &kid.AccountID, &kid.ContactID, &kid.FirstName, &kid.Gender,
		&birthdate, &kid.BirthdateApproximation, &kid.CreatedAt, &kid.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if kid.Birthdate, err = parseNullDate(birthdate); err != nil {
		return nil, err
	}
	return kid, nil
}

const significantOtherColumns = `id, account_id, contact_id, first_name, last_name, gender, status,
	birthdate, birthdate_approximation, created_at, updated_at`

// CreateSignificantOther persists a new significant other.
func (q *queries) CreateSignificantOther(ctx context.Context, so *models.SignificantOther) error {
	if so.ID == "" {
		so.ID = models.SignificantOtherID(uuid.New().String())
	}
	if so.CreatedAt == 0 {
		so.CreatedAt = time.Now().Unix()
	}
	if so.UpdatedAt == 0 {
		so.UpdatedAt = so.CreatedAt
	}
	if so.Status == "" {
		so.Status = models.SignificantOtherActive
	}

	_, err := q.exec(ctx,
		`INSERT INTO significant_others (`+significantOtherColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		so.ID, so.AccountID, so.ContactID, so.FirstName, so.LastName, so.Gender, so.Status,
		dates.FormatPtr(so.Birthdate), so.BirthdateApproximation, so.CreatedAt, so.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert significant other: %w", err)
	}
	return nil
}

// GetSignificantOther retrieves a significant other of the given contact.
func (q *queries) GetSignificantOther(ctx context.Context, contactID models.ContactID, id models.SignificantOtherID) (*models.SignificantOther, error) {
	so, err := scanSignificantOther(q.queryRow(ctx,
		`SELECT `+significantOtherColumns+` FROM significant_others WHERE id = ? AND contact_id = ?`, id, contactID))
	if err == sql.ErrNoRows {
		return nil, notFound("significant other", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get significant other: %w", err)
	}
	return so, nil
}

// UpdateSignificantOther writes a significant other's editable fields.
func (q *queries) UpdateSignificantOther(ctx context.Context, so *models.SignificantOther) error {
	if so.UpdatedAt == 0 {
		so.UpdatedAt = time.Now().Unix()
	}
	res, err := q.exec(ctx,
		`UPDATE significant_others SET first_name = ?, last_name = ?, gender = ?, status = ?,
			birthdate = ?, birthdate_approximation = ?, updated_at = ?
		 WHERE id = ? AND contact_id = ?`,
		so.FirstName, so.LastName, so.Gender, so.Status,
		dates.FormatPtr(so.Birthdate), so.BirthdateApproximation, so.UpdatedAt,
		so.ID, so.ContactID,
	)
	if err != nil {
		return fmt.Errorf("failed to update significant other: %w", err)
	}
	return checkAffected(res, "significant other", so.ID)
}

// DeleteSignificantOther removes a significant other of the given contact.
func (q *queries) DeleteSignificantOther(ctx context.Context, contactID models.ContactID, id models.SignificantOtherID) error {
	res, err := q.exec(ctx, "DELETE FROM significant_others WHERE id = ? AND contact_id = ?", id, contactID)
	if err != nil {
		return fmt.Errorf("failed to delete significant other: %w", err)
	}
	return checkAffected(res, "significant other", id)
}

// ListSignificantOthers retrieves every significant other of a contact.
func (q *queries) ListSignificantOthers(ctx context.Context, contactID models.ContactID) ([]*models.SignificantOther, error) {
	rows, err := q.query(ctx,
		`SELECT `+significantOtherColumns+` FROM significant_others WHERE contact_id = ? ORDER BY created_at`, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to list significant others: %w", err)
	}
	defer rows.Close()

	var result []*models.SignificantOther
	for rows.Next() {
		so, err := scanSignificantOther(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan significant other: %w", err)
		}
		result = append(result, so)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate significant others: %w", err)
	}
	return result, nil
}

// CurrentSignificantOther returns the active significant other updated last.
func (q *queries) CurrentSignificantOther(ctx context.Context, contactID models.ContactID) (*models.SignificantOther, error) {
	so, err := scanSignificantOther(q.queryRow(ctx,
		`SELECT `+significantOtherColumns+` FROM significant_others
		 WHERE contact_id = ? AND status = ?
		 ORDER BY updated_at DESC, created_at DESC LIMIT 1`,
		contactID, models.SignificantOtherActive,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get current significant other: %w", err)
	}
	return so, nil
}

func scanSignificantOther(row rowScanner) (*models.SignificantOther, error) {
	so := &models.SignificantOther{}
	var birthdate sql.NullString
	err := row.Scan(&so.ID, &so.AccountID, &so.ContactID, &so.FirstName, &so.LastName, &so.Gender, &so.Status,
		&birthdate, &so.BirthdateApproximation, &so.CreatedAt, &so.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if so.Birthdate, err = parseNullDate(birthdate); err != nil {
		return nil, err
	}
	return so, nil
}
