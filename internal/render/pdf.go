package render

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

// RenderPDF writes an A4 PDF resume to path. Missing sections are skipped;
// the document is valid even for an empty record.
func (g *Generator) RenderPDF(record domain.ResumeRecord, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetAutoPageBreak(true, 15)

	name := record.Name
	if name == "" {
		name = "Your Name"
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, name, "", 1, "C", false, 0, "")
	pdf.Ln(5)

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
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 8, strings.Join(contact, " | "), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	if record.Summary != "" {
		sectionTitle(pdf, "Professional Summary")
		pdf.MultiCell(0, 6, record.Summary, "", "L", false)
		pdf.Ln(3)
	}

	if !record.Skills.Empty() {
		sectionTitle(pdf, "Skills")
		if len(record.Skills.Technical) > 0 {
			pdf.MultiCell(0, 6, "Technical: "+strings.Join(record.Skills.Technical, ", "), "", "L", false)
		}
		if len(record.Skills.Soft) > 0 {
			pdf.MultiCell(0, 6, "Soft: "+strings.Join(record.Skills.Soft, ", "), "", "L", false)
		}
		pdf.Ln(3)
	}

	detailSection(pdf, "Professional Experience", record.Experience)
	detailSection(pdf, "Education", record.Education)
	detailSection(pdf, "Projects", record.Projects)
	bulletSection(pdf, "Certifications", record.Certifications)
	bulletSection(pdf, "Achievements", record.Achievements)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
}

func detailSection(pdf *fpdf.Fpdf, title string, details []domain.Detail) {
	if len(details) == 0 {
		return
	}
	sectionTitle(pdf, title)
	for _, d := range details {
		if d.Details == "" {
			continue
		}
		pdf.MultiCell(0, 5, d.Details, "", "L", false)
		pdf.Ln(2)
	}
	pdf.Ln(3)
}

func bulletSection(pdf *fpdf.Fpdf, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sectionTitle(pdf, title)
	for _, item := range items {
		if item == "" {
			continue
		}
		pdf.CellFormat(10, 5, "", "", 0, "L", false, 0, "")
		pdf.MultiCell(0, 5, "- "+item, "", "L", false)
	}
	pdf.Ln(3)
}
