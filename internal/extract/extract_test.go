// File path: internal/extract/extract_test.go
package extract

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestExtractCorruptPDFYieldsEmpty(t *testing.T) {
	if got := Extract([]byte("definitely not a pdf"), "pdf"); got != "" {
		t.Fatalf("expected empty text for corrupt pdf, got %q", got)
	}
}

func TestExtractCorruptDOCXYieldsEmpty(t *testing.T) {
	if got := Extract([]byte{0x01, 0x02, 0x03}, "docx"); got != "" {
		t.Fatalf("expected empty text for corrupt docx, got %q", got)
	}
}

func TestExtractUnknownTypeYieldsEmpty(t *testing.T) {
	if got := Extract([]byte("plain text"), "txt"); got != "" {
		t.Fatalf("expected empty text for unknown type, got %q", got)
	}
}

func TestExtractDOCXWithoutDocumentPartYieldsEmpty(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := entry.Write([]byte("<styles/>")); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if got := Extract(buf.Bytes(), "docx"); got != "" {
		t.Fatalf("expected empty text without document part, got %q", got)
	}
}

func TestExtractDOCXJoinsParagraphs(t *testing.T) {
	document := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Hello</w:t></w:r></w:p>
    <w:p><w:r><w:t>wide</w:t></w:r><w:r><w:t> world</w:t></w:r></w:p>
  </w:body>
</w:document>`
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := entry.Write([]byte(document)); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	got := Extract(buf.Bytes(), "docx")
	if got != "Hello wide world" {
		t.Fatalf("expected %q, got %q", "Hello wide world", got)
	}
	// The legacy "doc" label routes through the same reader.
	if alt := Extract(buf.Bytes(), "doc"); alt != got {
		t.Fatalf("doc and docx extraction disagree: %q vs %q", alt, got)
	}
}

func TestExtractDOCXTruncatedArchiveYieldsEmpty(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := entry.Write([]byte("<w:document><w:body><w:p><w:r><w:t>text</w:t></w:r></w:p></w:body></w:document>")); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	data := buf.Bytes()
	if got := Extract(data[:len(data)/2], "docx"); got != "" {
		t.Fatalf("expected empty text for truncated archive, got %q", got)
	}
}
