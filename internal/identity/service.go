// File path: internal/identity/service.go
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/draftwise/draftwise/internal/common"
	"github.com/draftwise/draftwise/internal/record"
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

const minPasswordLength = 6

// Service authenticates email/password pairs against stored accounts. Accounts
// receive an opaque ID at signup; the email is only a lookup index.
type Service struct {
	store *record.Store
}

func NewService(store *record.Store) *Service {
	return &Service{store: store}
}

// SignUp registers a new account. It does not create a session.
func (s *Service) SignUp(ctx context.Context, email, password string) (*record.Account, error) {
	logger := common.Logger()
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	account := record.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.store.CreateAccount(ctx, account); err != nil {
		logger.Warn("identity: signup failed", "email", email, "error", err)
		return nil, err
	}
	logger.Info("identity: account created", "account_id", account.ID)
	return &account, nil
}

// SignIn verifies credentials and returns the matching account.
func (s *Service) SignIn(ctx context.Context, email, password string) (*record.Account, error) {
	logger := common.Logger()
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	account, err := s.store.AccountByEmail(ctx, email)
	if err != nil {
		logger.Error("identity: account lookup failed", "error", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Warn("identity: password mismatch", "account_id", account.ID)
		return nil, ErrInvalidCredentials
	}
	logger.Info("identity: signed in", "account_id", account.ID)
	return account, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("valid email required")
	}
	return email, nil
}
