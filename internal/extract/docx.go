// File path: internal/extract/docx.go
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/draftwise/draftwise/internal/common"
)

const documentEntry = "word/document.xml"

// extractDOCX reads the main document part of an OOXML archive and joins all
// paragraph texts with single spaces. Any structural failure yields "".
func extractDOCX(data []byte) string {
	logger := common.Logger()
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		logger.Error("extract: docx open failed", "error", err)
		return ""
	}
	var document *zip.File
	for _, file := range archive.File {
		if file.Name == documentEntry {
			document = file
			break
		}
	}
	if document == nil {
		logger.Error("extract: docx missing document part", "entry", documentEntry)
		return ""
	}
	reader, err := document.Open()
	if err != nil {
		logger.Error("extract: docx document open failed", "error", err)
		return ""
	}
	defer reader.Close()
	paragraphs, err := readParagraphs(reader)
	if err != nil {
		logger.Error("extract: docx parse failed", "error", err)
		return ""
	}
	return strings.Join(paragraphs, " ")
}

// readParagraphs streams the WordprocessingML body, collecting the character
// data of every w:t run grouped by its enclosing w:p paragraph.
func readParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)
	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch element := token.(type) {
		case xml.StartElement:
			if element.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch element.Name.Local {
			case "t":
				inText = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(element)
			}
		}
	}
	return paragraphs, nil
}
