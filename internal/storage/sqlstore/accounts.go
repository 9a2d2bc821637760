package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/rolodex/internal/models"
)

const accountColumns = `id, email, display_name, password_hash, created_at, updated_at`

// CreateAccount inserts a new account into the database.
func (q *queries) CreateAccount(ctx context.Context, account *models.Account) error {
	_, err := q.exec(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		account.ID,
		account.Email,
		account.DisplayName,
		account.PasswordHash,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAccountByEmail retrieves an account by its email address.
func (q *queries) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	account, err := scanAccount(q.queryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email))
	if err == sql.ErrNoRows {
		return nil, nil // Account not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return account, nil
}

// GetAccountByID retrieves an account by its ID.
func (q *queries) GetAccountByID(ctx context.Context, id models.AccountID) (*models.Account, error) {
	account, err := scanAccount(q.queryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, notFound("account", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}
	return account, nil
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.DisplayName,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}
