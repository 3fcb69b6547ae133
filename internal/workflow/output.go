package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/career"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/render"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/store"
)

// Renderer produces resume documents from a collected record.
type Renderer interface {
	RenderHTML(record domain.ResumeRecord) (string, error)
	RenderPDF(record domain.ResumeRecord, path string) error
	RenderDOCX(record domain.ResumeRecord, path string) error
}

// Matcher ranks career paths against a collected profile.
type Matcher interface {
	Match(skills, interests []string, education string) []career.Match
}

// Dispatcher runs the terminal workflow nodes: rendering documents for a
// finished resume collection and composing guidance for a finished career
// collection.
//
// A dispatch marks the session complete before touching any collaborator, so
// a slow or failing renderer, matcher, or sink can never leave the session
// stuck in an output state.
type Dispatcher struct {
	renderer  Renderer
	matcher   Matcher
	sink      store.Sink // nil = persistence disabled
	outputDir string
	timeout   time.Duration
}

// NewDispatcher wires the output nodes to their collaborators.
func NewDispatcher(renderer Renderer, matcher Matcher, sink store.Sink, outputDir string, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		renderer:  renderer,
		matcher:   matcher,
		sink:      sink,
		outputDir: outputDir,
		timeout:   timeout,
	}
}

// DispatchResume finalizes a resume session: it marks the session complete,
// renders the PDF and DOCX documents, and persists the collected answers.
// Render failure degrades to a placeholder file so the download link stays
// valid; persistence failure is logged and never surfaced to the user.
func (d *Dispatcher) DispatchResume(ctx context.Context, s *domain.Session) string {
	s.ResumeComplete = true
	s.State = domain.StateComplete

	artifact := filepath.Join(d.outputDir, s.ID+"_resume.pdf")
	if err := os.MkdirAll(d.outputDir, 0o755); err != nil {
		slog.Error("Failed to create output directory", "dir", d.outputDir, "error", err)
	}

	// Renders write to a temp path; the final artifact only changes on a
	// rename here, so a render abandoned on timeout can never clobber it.
	record := s.Resume
	pdfTmp := artifact + ".tmp"
	if err := d.underTimeout(ctx, func() error {
		return d.renderer.RenderPDF(record, pdfTmp)
	}); err != nil {
		slog.Error("Resume PDF render failed, writing placeholder", "session_id", s.ID, "error", err)
		placeholder := fmt.Sprintf("Resume generation failed for %s. Please try again.\n", record.Name)
		if werr := os.WriteFile(artifact, []byte(placeholder), 0o644); werr != nil {
			slog.Error("Failed to write placeholder artifact", "session_id", s.ID, "error", werr)
		}
	} else if err := os.Rename(pdfTmp, artifact); err != nil {
		slog.Error("Failed to move rendered resume into place", "session_id", s.ID, "error", err)
	}

	docxPath := filepath.Join(d.outputDir, s.ID+"_resume.docx")
	docxTmp := docxPath + ".tmp"
	if err := d.underTimeout(ctx, func() error {
		return d.renderer.RenderDOCX(record, docxTmp)
	}); err != nil {
		slog.Error("Resume DOCX render failed", "session_id", s.ID, "error", err)
	} else if err := os.Rename(docxTmp, docxPath); err != nil {
		slog.Error("Failed to move rendered docx into place", "session_id", s.ID, "error", err)
	}

	if d.sink != nil {
		if err := d.sink.SaveAnswers(ctx, s.ID, resumeAnswers(record)); err != nil {
			slog.Error("Failed to persist resume answers", "session_id", s.ID, "error", err)
		}
		if err := d.sink.SaveArtifact(ctx, s.ID, artifact, render.ContentTypePDF); err != nil {
			slog.Error("Failed to persist resume artifact", "session_id", s.ID, "error", err)
		}
	}

	s.ArtifactPath = artifact
	return fmt.Sprintf("🎉 **Perfect! I have all the information I need.**\n\nYour professional resume has been generated: `%s`", artifact)
}

// DispatchCareer finalizes a career session: it marks the session complete,
// ranks career paths against the collected profile, and composes the ranked
// guidance message.
func (d *Dispatcher) DispatchCareer(ctx context.Context, s *domain.Session) string {
	s.CareerComplete = true
	s.State = domain.StateComplete

	matches := d.rankUnderTimeout(ctx, s.ID, s.Career)

	if d.sink != nil {
		if err := d.sink.SaveAnswers(ctx, s.ID, careerAnswers(s.Career)); err != nil {
			slog.Error("Failed to persist career answers", "session_id", s.ID, "error", err)
		}
	}

	return formatGuidance(s.Career.Skills, matches)
}

// rankUnderTimeout runs the matcher, bounding it by the dispatcher's
// timeout. The result crosses goroutines only through the channel; on
// timeout the match goroutine is abandoned and its eventual send lands in
// the buffer, never in caller-visible state.
func (d *Dispatcher) rankUnderTimeout(ctx context.Context, sessionID string, profile domain.CareerProfile) []career.Match {
	if d.timeout <= 0 {
		return d.matcher.Match(profile.Skills, profile.Interests, profile.Education)
	}
	done := make(chan []career.Match, 1)
	go func() {
		done <- d.matcher.Match(profile.Skills, profile.Interests, profile.Education)
	}()
	select {
	case matches := <-done:
		return matches
	case <-time.After(d.timeout):
		slog.Error("Career matching timed out", "session_id", sessionID, "timeout", d.timeout)
		return nil
	case <-ctx.Done():
		slog.Error("Career matching cancelled", "session_id", sessionID, "error", ctx.Err())
		return nil
	}
}

// underTimeout runs fn, bounding it by the dispatcher's render timeout. On
// timeout the fn goroutine is abandoned; its eventual result is discarded.
// fn must not write state the caller reads, which is why renders go to a
// temp path and are renamed by the caller.
func (d *Dispatcher) underTimeout(ctx context.Context, fn func() error) error {
	if d.timeout <= 0 {
		return fn()
	}
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-time.After(d.timeout):
		return fmt.Errorf("timed out after %s", d.timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// formatGuidance renders the ranked top matches plus actionable advice as a
// single chat message.
func formatGuidance(skills []string, matches []career.Match) string {
	var b strings.Builder
	b.WriteString("🎯 **Based on your profile, here are your top career path recommendations:**\n\n")

	for i, m := range matches {
		fmt.Fprintf(&b, "**%d. %s**\n", i+1, m.Path.Title)
		fmt.Fprintf(&b, "%s\n", m.Path.Description)
		if len(m.Path.EntryLevel) > 0 {
			entry := m.Path.EntryLevel
			if len(entry) > 2 {
				entry = entry[:2]
			}
			fmt.Fprintf(&b, "- **Entry-level roles**: %s\n", strings.Join(entry, ", "))
		}
		if m.Path.GrowthPath != "" {
			fmt.Fprintf(&b, "- **Growth path**: %s\n", m.Path.GrowthPath)
		}
		if len(m.MatchedSkills) > 0 {
			matched := m.MatchedSkills
			if len(matched) > 3 {
				matched = matched[:3]
			}
			fmt.Fprintf(&b, "- **Your matching skills**: %s\n", strings.Join(matched, ", "))
		}
		b.WriteString("\n")
	}

	var top *career.Match
	if len(matches) > 0 {
		top = &matches[0]
	}
	advice := career.Advise(skills, top)
	if len(advice) > 5 {
		advice = advice[:5]
	}
	b.WriteString("💡 **Actionable Advice:**\n\n")
	for _, a := range advice {
		fmt.Fprintf(&b, "- %s\n", a)
	}

	b.WriteString("\n🌍 This guidance supports SDG 8: Decent Work and Economic Growth. Keep learning and growing!")
	return b.String()
}

func resumeAnswers(r domain.ResumeRecord) map[string]any {
	return map[string]any{
		"name":           r.Name,
		"email":          r.Email,
		"linkedin":       r.LinkedIn,
		"portfolio":      r.Portfolio,
		"summary":        r.Summary,
		"education":      r.Education,
		"skills":         r.Skills,
		"experience":     r.Experience,
		"projects":       r.Projects,
		"achievements":   r.Achievements,
		"certifications": r.Certifications,
	}
}

func careerAnswers(p domain.CareerProfile) map[string]any {
	return map[string]any{
		"skills":    p.Skills,
		"interests": p.Interests,
		"education": p.Education,
	}
}
