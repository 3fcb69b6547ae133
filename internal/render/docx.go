package render

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// RenderDOCX writes a minimal WordprocessingML package to path. Only the
// three required parts are emitted, which is enough for Word, LibreOffice
// and Google Docs to open the file.
func (g *Generator) RenderDOCX(record domain.ResumeRecord, path string) error {
	var body strings.Builder

	name := record.Name
	if name == "" {
		name = "Your Name"
	}
	writeParagraph(&body, name, true, 32)

	var contact []string
	if record.Email != "" {
		contact = append(contact, "Email: "+record.Email)
	}
	if record.LinkedIn != "" {
		contact = append(contact, "LinkedIn: "+record.LinkedIn)
	}
	if record.Portfolio != "" {
		contact = append(contact, "Portfolio: "+record.Portfolio)
	}
	if len(contact) > 0 {
		writeParagraph(&body, strings.Join(contact, " | "), false, 0)
	}

	if record.Summary != "" {
		writeParagraph(&body, "Professional Summary", true, 24)
		writeParagraph(&body, record.Summary, false, 0)
	}

	if !record.Skills.Empty() {
		writeParagraph(&body, "Skills", true, 24)
		if len(record.Skills.Technical) > 0 {
			writeParagraph(&body, "Technical: "+strings.Join(record.Skills.Technical, ", "), false, 0)
		}
		if len(record.Skills.Soft) > 0 {
			writeParagraph(&body, "Soft: "+strings.Join(record.Skills.Soft, ", "), false, 0)
		}
	}

	writeDetailSection(&body, "Professional Experience", record.Experience)
	writeDetailSection(&body, "Education", record.Education)
	writeDetailSection(&body, "Projects", record.Projects)
	writeBulletSection(&body, "Certifications", record.Certifications)
	writeBulletSection(&body, "Achievements", record.Achievements)

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>` + body.String() + `</w:body>
</w:document>`

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create docx: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", document},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			zw.Close()
			return fmt.Errorf("create docx part %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			zw.Close()
			return fmt.Errorf("write docx part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize docx: %w", err)
	}
	return nil
}

func writeDetailSection(b *strings.Builder, title string, details []domain.Detail) {
	if len(details) == 0 {
		return
	}
	writeParagraph(b, title, true, 24)
	for _, d := range details {
		if d.Details == "" {
			continue
		}
		writeParagraph(b, d.Details, false, 0)
	}
}

func writeBulletSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	writeParagraph(b, title, true, 24)
	for _, item := range items {
		if item == "" {
			continue
		}
		writeParagraph(b, "- "+item, false, 0)
	}
}

func writeParagraph(b *strings.Builder, text string, bold bool, halfPoints int) {
	b.WriteString("<w:p><w:r>")
	if bold || halfPoints > 0 {
		b.WriteString("<w:rPr>")
		if bold {
			b.WriteString("<w:b/>")
		}
		if halfPoints > 0 {
			fmt.Fprintf(b, `<w:sz w:val="%d"/>`, halfPoints)
		}
		b.WriteString("</w:rPr>")
	}
	fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, xmlEscape(text))
	b.WriteString("</w:r></w:p>")
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
