// Package importer extracts plain text from uploaded resume documents so
// existing resumes can seed a session.
package importer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxUploadSize bounds accepted uploads.
const MaxUploadSize = 10 << 20

// Extract returns the plain text of an uploaded document. Supported content
// types are plain text, PDF, and DOCX.
func Extract(contentType string, data []byte) (string, error) {
	switch {
	case strings.HasPrefix(contentType, "text/plain"):
		return string(data), nil
	case contentType == "application/pdf":
		return extractPDF(data)
	case contentType == "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return extractDOCX(data)
	default:
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("pdf contains no extractable text")
	}
	return out, nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	out := strings.TrimSpace(stripTags(content))
	if out == "" {
		return "", fmt.Errorf("docx contains no extractable text")
	}
	return out, nil
}

// stripTags flattens WordprocessingML markup to text, inserting newlines at
// paragraph boundaries.
func stripTags(s string) string {
	s = strings.ReplaceAll(s, "</w:p>", "\n")
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	out := b.String()
	out = strings.ReplaceAll(out, "&amp;", "&")
	out = strings.ReplaceAll(out, "&lt;", "<")
	out = strings.ReplaceAll(out, "&gt;", ">")
	return out
}
