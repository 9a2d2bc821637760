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

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const contactColumns = `id, account_id, first_name, middle_name, last_name, gender,
	birthdate, birthdate_approximation,
	street, city, province, postal_code, country,
	email, phone_number, facebook_url, twitter_url, linkedin_url,
	food_preferences, avatar_color, avatar_file_name,
	number_of_kids, number_of_notes, created_at, updated_at`

// CreateContact persists a new contact to the database.
func (q *queries) CreateContact(ctx context.Context, c *models.Contact) error {
	// Generate ID if not set
	if c.ID == "" {
		c.ID = models.ContactID(uuid.New().String())
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}
	if c.UpdatedAt == 0 {
		c.UpdatedAt = c.CreatedAt
	}
	if c.BirthdateApproximation == "" {
		c.BirthdateApproximation = models.BirthdateUnknown
	}

	_, err := q.exec(ctx,
		`INSERT INTO contacts (`+contactColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.AccountID, c.FirstName, c.MiddleName, c.LastName, c.Gender,
		dates.FormatPtr(c.Birthdate), c.BirthdateApproximation,
		c.Street, c.City, c.Province, c.PostalCode, c.Country,
		c.Email, c.PhoneNumber, c.FacebookURL, c.TwitterURL, c.LinkedInURL,
		c.FoodPreferences, c.AvatarColor, c.AvatarFileName,
		c.NumberOfKids, c.NumberOfNotes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

// GetContact retrieves a contact owned by accountID.
func (q *queries) GetContact(ctx context.Context, accountID models.AccountID, contactID models.ContactID) (*models.Contact, error) {
	c, err := scanContact(q.queryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = ? AND account_id = ?`,
		contactID, accountID,
	))
	if err == sql.ErrNoRows {
		return nil, notFound("contact", contactID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return c, nil
}

// ListContacts retrieves all contacts of an account ordered by name.
func (q *queries) ListContacts(ctx context.Context, accountID models.AccountID) ([]*models.Contact, error) {
	rows, err := q.query(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE account_id = ? ORDER BY first_name, last_name`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return contacts, nil
}

// UpdateContactName sets the first name and, when non-nil, the middle and
// last names. Other columns are left untouched.
func (q *queries) UpdateContactName(ctx context.Context, accountID models.AccountID, contactID models.ContactID, first string, middle, last *string, updatedAt int64) error {
	res, err := q.exec(ctx,
		`UPDATE contacts SET first_name = ?,
			middle_name = COALESCE(?, middle_name),
			last_name = COALESCE(?, last_name),
			updated_at = ?
		 WHERE id = ? AND account_id = ?`,
		first, middle, last, updatedAt, contactID, accountID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact name: %w", err)
	}
	return checkAffected(res, "contact", contactID)
}

// SetContactAvatar points the contact at a new avatar file and returns the
// one it replaces, if any.
func (q *queries) SetContactAvatar(ctx context.Context, accountID models.AccountID, contactID models.ContactID, key string, updatedAt int64) (*string, error) {
	var previous sql.NullString
	err := q.queryRow(ctx,
		`SELECT avatar_file_name FROM contacts WHERE id = ? AND account_id = ?`,
		contactID, accountID,
	).Scan(&previous)
	if err == sql.ErrNoRows {
		return nil, notFound("contact", contactID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read contact avatar: %w", err)
	}

	res, err := q.exec(ctx,
		`UPDATE contacts SET avatar_file_name = ?, updated_at = ? WHERE id = ? AND account_id = ?`,
		key, updatedAt, contactID, accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set contact avatar: %w", err)
	}
	if err := checkAffected(res, "contact", contactID); err != nil {
		return nil, err
	}
	if !previous.Valid {
		return nil, nil
	}
	return &previous.String, nil
}

// DeleteContact removes a contact; owned rows go with it through ON DELETE CASCADE.
func (q *queries) DeleteContact(ctx context.Context, accountID models.AccountID, contactID models.ContactID) error {
	res, err := q.exec(ctx,
		"DELETE FROM contacts WHERE id = ? AND account_id = ?", contactID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return checkAffected(res, "contact", contactID)
}

// AdjustKidCount moves number_of_kids by delta, never below zero.
func (q *queries) AdjustKidCount(ctx context.Context, contactID models.ContactID, delta int) (int, error) {
	return q.adjustCounter(ctx, "number_of_kids", contactID, delta)
}

// AdjustNoteCount moves number_of_notes by delta, never below zero.
func (q *queries) AdjustNoteCount(ctx context.Context, contactID models.ContactID, delta int) (int, error) {
	return q.adjustCounter(ctx, "number_of_notes", contactID, delta)
}

// adjustCounter is a single read-modify-write statement, so concurrent
// adjustments cannot lose updates.
func (q *queries) adjustCounter(ctx context.Context, column string, contactID models.ContactID, delta int) (int, error) {
	var count int
	err := q.queryRow(ctx,
		`UPDATE contacts SET `+column+` = CASE WHEN `+column+` + ? < 0 THEN 0 ELSE `+column+` + ? END
		 WHERE id = ? RETURNING `+column,
		delta, delta, contactID,
	).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, notFound("contact", contactID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to adjust %s: %w", column, err)
	}
	return count, nil
}

func scanContact(row rowScanner) (*models.Contact, error) {
	c := &models.Contact{}
	var birthdate sql.NullString
	err := row.Scan(
		&c.ID, &c.AccountID, &c.FirstName, &c.MiddleName, &c.LastName, &c.Gender,
		&birthdate, &c.BirthdateApproximation,
		&c.Street, &c.City, &c.Province, &c.PostalCode, &c.Country,
		&c.Email, &c.PhoneNumber, &c.FacebookURL, &c.TwitterURL, &c.LinkedInURL,
		&c.FoodPreferences, &c.AvatarColor, &c.AvatarFileName,
		&c.NumberOfKids, &c.NumberOfNotes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.Birthdate, err = parseNullDate(birthdate); err != nil {
		return nil, err
	}
	return c, nil
}

func parseNullDate(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	return dates.ParsePtr(&s.String)
}
