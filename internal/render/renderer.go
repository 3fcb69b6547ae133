// Package render generates resume documents (HTML, PDF, DOCX) from a
// collected resume record. All backends tolerate partially filled records.
package render

// Generator renders resume records into document artifacts.
type Generator struct{}

// NewGenerator creates a document generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Content types for generated artifacts.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)
