// File path: internal/identity/service_test.go
package identity

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/draftwise/draftwise/internal/record"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	store, err := record.Open(filepath.Join(dir, "identity.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewService(store)
}

func TestSignUpAndSignIn(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()
	account, err := service.SignUp(ctx, "Student@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if account.ID == "" {
		t.Fatal("expected opaque account id")
	}
	if account.Email != "student@example.com" {
		t.Fatalf("expected normalized email, got %q", account.Email)
	}

	signedIn, err := service.SignIn(ctx, "student@example.com", "hunter22")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if signedIn.ID != account.ID {
		t.Fatalf("expected same account id, got %q vs %q", signedIn.ID, account.ID)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()
	if _, err := service.SignUp(ctx, "a@b.test", "hunter22"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := service.SignIn(ctx, "a@b.test", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.SignIn(ctx, "nobody@b.test", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()
	if _, err := service.SignUp(ctx, "a@b.test", "hunter22"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := service.SignUp(ctx, "A@B.test", "hunter23"); !errors.Is(err, record.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestSignUpRejectsWeakInput(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()
	if _, err := service.SignUp(ctx, "not-an-email", "hunter22"); err == nil {
		t.Fatal("expected error for invalid email")
	}
	if _, err := service.SignUp(ctx, "a@b.test", "short"); err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestSessionLifecycle(t *testing.T) {
	manager := NewSessionManager()
	token, err := manager.Create("acct-1", "a@b.test")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	session := manager.Lookup(token)
	if session == nil || session.AccountID != "acct-1" {
		t.Fatalf("unexpected session %+v", session)
	}
	manager.Clear(token)
	if manager.Lookup(token) != nil {
		t.Fatal("expected session removed after clear")
	}
	// Clearing again is a no-op.
	manager.Clear(token)
}

func TestSessionExpiry(t *testing.T) {
	manager := NewSessionManager()
	token, err := manager.Create("acct-1", "a@b.test")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	manager.mu.Lock()
	session := manager.sessions[token]
	session.ExpiresAt = time.Now().Add(-time.Minute)
	manager.sessions[token] = session
	manager.mu.Unlock()
	if manager.Lookup(token) != nil {
		t.Fatal("expected expired session to be dropped")
	}
}

func TestSessionTokensAreUnique(t *testing.T) {
	manager := NewSessionManager()
	seen := make(map[string]struct{})
	for i := 0; i < 32; i++ {
		token, err := manager.Create("acct-1", "a@b.test")
		if err != nil {
			t.Fatalf("create session: %v", err)
		}
		if _, dup := seen[token]; dup {
			t.Fatal("duplicate session token issued")
		}
		seen[token] = struct{}{}
	}
}
