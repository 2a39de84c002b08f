// File path: internal/record/drafts.go
package record

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Draft is one saved generation result, owned by a single account.
type Draft struct {
	ID          int64     `db:"id" json:"id"`
	AccountID   string    `db:"account_id" json:"-"`
	Fingerprint string    `db:"fingerprint" json:"-"`
	Subject     string    `db:"subject" json:"subject"`
	Body        string    `db:"body" json:"body"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Fingerprint derives the content key used for dedup and removal. Two drafts
// are the same entry iff subject and body match exactly.
func Fingerprint(subject, body string) string {
	sum := sha256.Sum256([]byte(subject + "\n" + body))
	return hex.EncodeToString(sum[:])
}

// EnsureUser verifies the store can hold drafts for the account. Rows are
// created lazily per draft, so an absent account simply reads back as an empty
// collection; the operation is idempotent.
func (s *Store) EnsureUser(ctx context.Context, accountID string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("record store not initialised")
	}
	if strings.TrimSpace(accountID) == "" {
		return fmt.Errorf("account id required")
	}
	return nil
}

// SaveDraft appends a draft to the account's collection with set-union
// semantics: a structurally identical draft already present leaves the
// collection unchanged. Reports whether a new row was inserted.
func (s *Store) SaveDraft(ctx context.Context, accountID, subject, body string) (bool, error) {
	if err := s.EnsureUser(ctx, accountID); err != nil {
		return false, err
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO drafts(account_id, fingerprint, subject, body, created_at) VALUES(?, ?, ?, ?, ?)`,
		accountID, Fingerprint(subject, body), subject, body, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("insert draft: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert draft result: %w", err)
	}
	return inserted > 0, nil
}

// RemoveDraft deletes every draft structurally equal to the given subject and
// body. A draft that matches nothing is a silent no-op.
func (s *Store) RemoveDraft(ctx context.Context, accountID, subject, body string) error {
	if err := s.EnsureUser(ctx, accountID); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM drafts WHERE account_id = ? AND fingerprint = ?`,
		accountID, Fingerprint(subject, body)); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// RemoveDraftByID deletes one draft by its stored identifier.
func (s *Store) RemoveDraftByID(ctx context.Context, accountID string, id int64) error {
	if err := s.EnsureUser(ctx, accountID); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM drafts WHERE account_id = ? AND id = ?`, accountID, id); err != nil {
		return fmt.Errorf("delete draft by id: %w", err)
	}
	return nil
}

// ClearDrafts empties the account's collection.
func (s *Store) ClearDrafts(ctx context.Context, accountID string) error {
	if err := s.EnsureUser(ctx, accountID); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM drafts WHERE account_id = ?`, accountID); err != nil {
		return fmt.Errorf("clear drafts: %w", err)
	}
	return nil
}

// ListDrafts returns the account's drafts in insertion order. An account with
// nothing stored yields an empty slice, never an error.
func (s *Store) ListDrafts(ctx context.Context, accountID string) ([]Draft, error) {
	if err := s.EnsureUser(ctx, accountID); err != nil {
		return nil, err
	}
	drafts := []Draft{}
	if err := s.db.SelectContext(ctx, &drafts,
		`SELECT * FROM drafts WHERE account_id = ? ORDER BY id`, accountID); err != nil {
		return nil, fmt.Errorf("select drafts: %w", err)
	}
	return drafts, nil
}

// DraftByID fetches one stored draft, or nil when absent.
func (s *Store) DraftByID(ctx context.Context, accountID string, id int64) (*Draft, error) {
	if err := s.EnsureUser(ctx, accountID); err != nil {
		return nil, err
	}
	drafts := []Draft{}
	if err := s.db.SelectContext(ctx, &drafts,
		`SELECT * FROM drafts WHERE account_id = ? AND id = ?`, accountID, id); err != nil {
		return nil, fmt.Errorf("select draft: %w", err)
	}
	if len(drafts) == 0 {
		return nil, nil
	}
	return &drafts[0], nil
}
