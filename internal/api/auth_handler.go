// File path: internal/api/auth_handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/draftwise/draftwise/internal/common"
	"github.com/draftwise/draftwise/internal/identity"
	"github.com/draftwise/draftwise/internal/record"
)

type sessionContextKey struct{}

func sessionFromContext(ctx context.Context) *identity.Session {
	session, _ := ctx.Value(sessionContextKey{}).(*identity.Session)
	return session
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	account, err := s.identity.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, record.ErrAccountExists) {
			status = http.StatusConflict
		}
		writeError(w, status, err)
		return
	}
	logger.Info("api: signup completed", "account_id", account.ID)
	// Signup registers the account only; the client still has to log in.
	writeJSON(w, http.StatusCreated, map[string]string{"email": account.Email})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	account, err := s.identity.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, identity.ErrInvalidCredentials) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}
	token, err := s.sessions.Create(account.ID, account.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: login succeeded", "account_id", account.ID)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Email: account.Email})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		s.sessions.Clear(token)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"logged_out": true})
}

func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, fmt.Errorf("authorization required"))
			return
		}
		session := s.sessions.Lookup(token)
		if session == nil {
			writeError(w, http.StatusUnauthorized, fmt.Errorf("session expired or unknown"))
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey{}, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
