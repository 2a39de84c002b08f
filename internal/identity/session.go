// File path: internal/identity/session.go
package identity

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

const sessionTTL = 24 * time.Hour

// Session ties a bearer token to an authenticated account.
type Session struct {
	Token     string
	AccountID string
	Email     string
	ExpiresAt time.Time
}

// SessionManager holds active sessions, one per issued token. There is no
// process-wide "current user"; every request resolves its own session.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]Session),
		ttl:      sessionTTL,
	}
}

// Create issues a fresh random token for the account.
func (m *SessionManager) Create(accountID, email string) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = Session{
		Token:     token,
		AccountID: accountID,
		Email:     email,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	return token, nil
}

// Lookup resolves a token to its session; expired tokens are dropped.
func (m *SessionManager) Lookup(token string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[token]
	if !ok {
		return nil
	}
	if time.Now().After(session.ExpiresAt) {
		delete(m.sessions, token)
		return nil
	}
	return &session
}

// Clear removes a session unconditionally; clearing an unknown token is a
// no-op.
func (m *SessionManager) Clear(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
