// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/draftwise/draftwise/internal/common"
	"github.com/draftwise/draftwise/internal/compose"
	"github.com/draftwise/draftwise/internal/identity"
	"github.com/draftwise/draftwise/internal/llm"
	"github.com/draftwise/draftwise/internal/record"
	"github.com/draftwise/draftwise/internal/workflow"
)

// maxUploadBytes bounds CV uploads; extracted text is truncated far below
// this when it reaches the prompt.
const maxUploadBytes = 10 << 20

type Server struct {
	router   chi.Router
	workflow *workflow.Manager
	identity *identity.Service
	sessions *identity.SessionManager
	store    *record.Store
}

func NewServer(store *record.Store, provider llm.Provider, idService *identity.Service) (*Server, error) {
	logger := common.Logger()
	if store == nil {
		return nil, fmt.Errorf("record store required")
	}
	if idService == nil {
		idService = identity.NewService(store)
	}
	providerName := "none"
	if provider != nil {
		providerName = provider.Name()
	}
	logger.Info("api: building server", "provider", providerName)
	srv := &Server{
		router:   chi.NewRouter(),
		workflow: workflow.NewManager(provider, store),
		identity: idService,
		sessions: identity.NewSessionManager(),
		store:    store,
	}
	srv.routes()
	logger.Info("api: server ready", "routes", true)
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Sessions exposes the session manager for callers wiring custom auth flows.
func (s *Server) Sessions() *identity.SessionManager {
	if s == nil {
		return nil
	}
	return s.sessions
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Post("/v1/auth/signup", s.handleSignup)
	s.router.Post("/v1/auth/login", s.handleLogin)
	s.router.Post("/v1/auth/logout", s.handleLogout)
	s.router.Get("/v1/catalog", s.handleCatalog)
	s.router.Get("/v1/logs", s.handleLogs)

	s.router.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Post("/v1/cv/upload", s.handleCVUpload)
		r.Post("/v1/drafts/generate", s.handleGenerate)
		r.Get("/v1/drafts", s.handleListDrafts)
		r.Delete("/v1/drafts", s.handleRemoveDraft)
		r.Delete("/v1/drafts/all", s.handleClearDrafts)
		r.Get("/v1/drafts/download", s.handleDownload)
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		Categories: compose.Categories,
		Tones:      compose.Tones,
		Styles:     compose.Styles,
		Languages:  compose.Languages,
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": common.LogEntries()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
