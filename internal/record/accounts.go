// File path: internal/record/accounts.go
package record

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrAccountExists is returned when an email is already registered.
var ErrAccountExists = errors.New("account already exists")

// Account is one registered identity. The opaque ID is the storage key for
// drafts; the email is a unique lookup index only.
type Account struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
}

// CreateAccount inserts a new account row.
func (s *Store) CreateAccount(ctx context.Context, account Account) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("record store not initialised")
	}
	if strings.TrimSpace(account.ID) == "" || strings.TrimSpace(account.Email) == "" {
		return fmt.Errorf("account id and email required")
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts(id, email, password_hash, created_at) VALUES(?, ?, ?, ?)`,
		account.ID, account.Email, account.PasswordHash, account.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrAccountExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// AccountByEmail fetches an account by its unique email, or nil when absent.
func (s *Store) AccountByEmail(ctx context.Context, email string) (*Account, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("record store not initialised")
	}
	var account Account
	err := s.db.GetContext(ctx, &account, `SELECT * FROM accounts WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select account: %w", err)
	}
	return &account, nil
}
