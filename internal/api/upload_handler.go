// File path: internal/api/upload_handler.go
package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/draftwise/draftwise/internal/common"
	"github.com/draftwise/draftwise/internal/extract"
)

// handleCVUpload accepts a multipart CV upload and returns the best-effort
// extracted text. The declared type wins over the filename extension; neither
// is sniffed from content. An unreadable document is not an error: the client
// receives empty text plus a warning.
func (s *Server) handleCVUpload(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	session := sessionFromContext(r.Context())
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.Warn("api: cv upload parse failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("file field required: %w", err))
		return
	}
	defer file.Close()

	declaredType := strings.TrimSpace(r.FormValue("type"))
	if declaredType == "" {
		declaredType = strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("read upload: %w", err))
		return
	}
	logger.Info("api: cv upload received", "account_id", session.AccountID, "filename", header.Filename, "type", declaredType, "bytes", len(data))

	text := extract.Extract(data, declaredType)
	resp := uploadResponse{Text: text}
	if text == "" {
		resp.Warning = "document could not be processed; no text extracted"
	}
	writeJSON(w, http.StatusOK, resp)
}
