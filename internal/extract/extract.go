// File path: internal/extract/extract.go
package extract

import (
	"strings"

	"github.com/draftwise/draftwise/internal/common"
)

// Extract produces best-effort plain text from an uploaded document of the
// declared type ("pdf", "doc" or "docx"). Every failure mode degrades to an
// empty string with a logged diagnostic; callers must treat "" as "no usable
// text", never as an error signal.
func Extract(data []byte, declaredType string) string {
	logger := common.Logger()
	switch strings.ToLower(strings.TrimSpace(declaredType)) {
	case "pdf":
		return extractPDF(data)
	case "doc", "docx":
		return extractDOCX(data)
	default:
		logger.Debug("extract: unsupported document type", "type", declaredType)
		return ""
	}
}
