// File path: internal/extract/pdf.go
package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/draftwise/draftwise/internal/common"
)

// extractPDF walks the document page by page. A page whose extraction fails is
// skipped; only a document that cannot be opened at all yields "". The reader
// is known to panic on some malformed inputs, so the whole pass is recovered.
func extractPDF(data []byte) (text string) {
	logger := common.Logger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("extract: pdf reader panicked", "panic", r)
			text = ""
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		logger.Error("extract: pdf open failed", "error", err)
		return ""
	}
	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			logger.Debug("extract: pdf page skipped", "page", i, "error", err)
			continue
		}
		if content != "" {
			pages = append(pages, content)
		}
	}
	return strings.Join(pages, " ")
}
