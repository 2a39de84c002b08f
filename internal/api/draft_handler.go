// File path: internal/api/draft_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/draftwise/draftwise/internal/common"
	"github.com/draftwise/draftwise/internal/compose"
	"github.com/draftwise/draftwise/internal/workflow"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	session := sessionFromContext(r.Context())
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: generate decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	result, err := s.workflow.GenerateDraft(r.Context(), session.AccountID, req.toGenerationRequest())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logger.Info("api: draft generated", "account_id", session.AccountID, "saved", result.Saved)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	drafts, err := s.workflow.ListDrafts(r.Context(), session.AccountID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"drafts": drafts})
}

func (s *Server) handleRemoveDraft(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	session := sessionFromContext(r.Context())
	var req removeDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var err error
	switch {
	case req.ID > 0:
		err = s.workflow.RemoveDraftByID(r.Context(), session.AccountID, req.ID)
	case req.Subject != "" || req.Body != "":
		err = s.workflow.RemoveDraft(r.Context(), session.AccountID, req.Subject, req.Body)
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("draft id or subject/body required"))
		return
	}
	if err != nil {
		// Store failures are non-fatal to the session; report and move on.
		logger.Error("api: draft removal failed", "account_id", session.AccountID, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}

func (s *Server) handleClearDrafts(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	session := sessionFromContext(r.Context())
	if err := s.workflow.ClearDrafts(r.Context(), session.AccountID); err != nil {
		logger.Error("api: clear drafts failed", "account_id", session.AccountID, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

// handleDownload renders the plain-text artifact either for a stored draft
// (?id=N) or for an ad-hoc subject/body pair passed as query parameters.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	query := r.URL.Query()
	var artifact string
	if rawID := strings.TrimSpace(query.Get("id")); rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid draft id %q", rawID))
			return
		}
		artifact, err = s.workflow.Artifact(r.Context(), session.AccountID, id)
		if errors.Is(err, workflow.ErrDraftNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	} else {
		subject := query.Get("subject")
		body := query.Get("body")
		if subject == "" && body == "" {
			writeError(w, http.StatusBadRequest, fmt.Errorf("draft id or subject/body required"))
			return
		}
		artifact = compose.RenderArtifact(subject, body)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="email.txt"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(artifact))
}
