// Package pipeline turns raw form submissions into scored, rendered resumes.
// It backs the webhook ingestion path, which accepts answers collected
// outside the chat flow.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/render"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/store"
)

// Renderer is the document output surface the pipeline needs.
type Renderer interface {
	RenderPDF(record domain.ResumeRecord, path string) error
	RenderDOCX(record domain.ResumeRecord, path string) error
}

// Runner executes the full analysis pipeline for one submission.
type Runner struct {
	renderer  Renderer
	sink      store.Sink // nil = persistence disabled
	outputDir string
	timeout   time.Duration
}

// NewRunner creates a pipeline runner.
func NewRunner(renderer Renderer, sink store.Sink, outputDir string, timeout time.Duration) *Runner {
	return &Runner{renderer: renderer, sink: sink, outputDir: outputDir, timeout: timeout}
}

// Run analyzes a raw submission, renders the documents, and persists the
// results. It is designed to run in a background goroutine; every failure is
// logged and the pipeline continues with whatever it has.
func (r *Runner) Run(ctx context.Context, sessionID string, raw map[string]any) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	record := BuildRecord(raw)
	score := Analyze(record)
	gaps := SkillGaps(record)
	roadmap := BuildRoadmap(score, gaps)

	slog.Info("Pipeline analyzed submission",
		"session_id", sessionID, "score", score, "gaps", len(gaps), "band", roadmap.ScoreBand)

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		slog.Error("Pipeline failed to create output directory", "dir", r.outputDir, "error", err)
	}

	pdfPath := filepath.Join(r.outputDir, sessionID+"_resume.pdf")
	if err := r.renderer.RenderPDF(record, pdfPath); err != nil {
		slog.Error("Pipeline PDF render failed", "session_id", sessionID, "error", err)
		pdfPath = ""
	}
	docxPath := filepath.Join(r.outputDir, sessionID+"_resume.docx")
	if err := r.renderer.RenderDOCX(record, docxPath); err != nil {
		slog.Error("Pipeline DOCX render failed", "session_id", sessionID, "error", err)
		docxPath = ""
	}

	if r.sink == nil {
		return
	}
	if err := r.sink.SaveResults(ctx, sessionID, record, score, gaps, roadmap); err != nil {
		slog.Error("Pipeline failed to persist results", "session_id", sessionID, "error", err)
	}
	if pdfPath != "" {
		if err := r.sink.SaveArtifact(ctx, sessionID, pdfPath, render.ContentTypePDF); err != nil {
			slog.Error("Pipeline failed to persist pdf artifact", "session_id", sessionID, "error", err)
		}
	}
	if docxPath != "" {
		if err := r.sink.SaveArtifact(ctx, sessionID, docxPath, render.ContentTypeDOCX); err != nil {
			slog.Error("Pipeline failed to persist docx artifact", "session_id", sessionID, "error", err)
		}
	}
}

// BuildRecord coerces a raw answer map into a resume record. Unknown keys
// are ignored and malformed values degrade to empty fields.
func BuildRecord(raw map[string]any) domain.ResumeRecord {
	return domain.ResumeRecord{
		Name:      asString(raw["name"]),
		Email:     strings.ToLower(asString(raw["email"])),
		LinkedIn:  asString(raw["linkedin"]),
		Portfolio: asString(raw["portfolio"]),
		Summary:   asString(raw["summary"]),
		Education: asDetails(raw["education"]),
		Skills: domain.SkillSet{
			Technical: asStringList(raw["technical_skills"]),
			Soft:      asStringList(raw["soft_skills"]),
		},
		Experience:     asDetails(raw["experience"]),
		Projects:       asDetails(raw["projects"]),
		Achievements:   asStringList(raw["achievements"]),
		Certifications: asStringList(raw["certifications"]),
	}
}

// Analyze scores a record's completeness on a 0-100 scale.
func Analyze(record domain.ResumeRecord) int {
	score := 40
	if record.Summary != "" {
		score += 10
	}
	if len(record.Education) > 0 {
		score += 10
	}
	if !record.Skills.Empty() {
		score += 15
	}
	if len(record.Experience) > 0 {
		score += 15
	}
	if len(record.Projects) > 0 {
		score += 10
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// skillClusters maps a gap label to the skills that satisfy it. A cluster is
// satisfied when any of its members appears in the technical skill list.
var skillClusters = []struct {
	label   string
	members []string
}{
	{"version_control", []string{"git", "github"}},
	{"web_basics", []string{"html", "css", "javascript"}},
	{"problem_solving", []string{"data structures", "algorithms"}},
}

var softExpectations = []string{"communication", "teamwork", "problem solving"}

// SkillGaps reports the foundational skill clusters and soft skills missing
// from a record, deduped and sorted.
func SkillGaps(record domain.ResumeRecord) []string {
	technical := lowerJoin(record.Skills.Technical)
	soft := lowerJoin(record.Skills.Soft)

	seen := make(map[string]bool)
	for _, cluster := range skillClusters {
		satisfied := false
		for _, m := range cluster.members {
			if strings.Contains(technical, m) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			seen[cluster.label] = true
		}
	}
	for _, exp := range softExpectations {
		if !strings.Contains(soft, exp) {
			seen[exp] = true
		}
	}

	gaps := make([]string, 0, len(seen))
	for g := range seen {
		gaps = append(gaps, g)
	}
	sort.Strings(gaps)
	return gaps
}

// BuildRoadmap turns a score and gap list into a banded improvement plan.
func BuildRoadmap(score int, gaps []string) domain.Roadmap {
	var band string
	switch {
	case score < 60:
		band = "beginner"
	case score < 80:
		band = "intermediate"
	default:
		band = "strong"
	}

	var steps []string
	for _, gap := range gaps {
		steps = append(steps, gapStep(gap))
	}
	if len(steps) == 0 {
		steps = append(steps, "Keep your resume current and tailor it to each application.")
	}
	return domain.Roadmap{ScoreBand: band, NextSteps: steps}
}

func gapStep(gap string) string {
	switch gap {
	case "version_control":
		return "Learn Git and publish your projects on GitHub."
	case "web_basics":
		return "Cover web fundamentals: HTML, CSS and JavaScript."
	case "problem_solving":
		return "Practice data structures and algorithms on a coding platform."
	default:
		return fmt.Sprintf("Develop your %s skills through projects and practice.", gap)
	}
}

func lowerJoin(items []string) string {
	return strings.ToLower(strings.Join(items, ","))
}

func asString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func asStringList(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		var out []string
		for _, item := range t {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		var out []string
		for _, tok := range strings.Split(t, ",") {
			if s := strings.TrimSpace(tok); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func asDetails(v any) []domain.Detail {
	var out []domain.Detail
	for _, s := range asStringList(v) {
		out = append(out, domain.Detail{Details: s})
	}
	return out
}
