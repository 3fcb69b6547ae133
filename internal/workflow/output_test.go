package workflow

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/career"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

// slowMatcher delays every match long enough to trip a short dispatcher
// timeout.
type slowMatcher struct {
	delay time.Duration
}

func (m slowMatcher) Match(skills, interests []string, education string) []career.Match {
	time.Sleep(m.delay)
	return career.NewMatcher(career.Catalog()).Match(skills, interests, education)
}

// slowRenderer delays every render, then writes to the path it was given.
type slowRenderer struct {
	delay time.Duration
}

func (r slowRenderer) RenderHTML(record domain.ResumeRecord) (string, error) {
	return "", nil
}

func (r slowRenderer) RenderPDF(record domain.ResumeRecord, path string) error {
	time.Sleep(r.delay)
	return os.WriteFile(path, []byte("%PDF-late render"), 0o644)
}

func (r slowRenderer) RenderDOCX(record domain.ResumeRecord, path string) error {
	time.Sleep(r.delay)
	return os.WriteFile(path, []byte("late docx"), 0o644)
}

func TestDispatchCareerMatcherTimeout(t *testing.T) {
	d := NewDispatcher(slowRenderer{}, slowMatcher{delay: 50 * time.Millisecond}, nil, t.TempDir(), time.Millisecond)
	s := &domain.Session{
		ID:     "c1",
		Intent: domain.IntentCareer,
		State:  domain.StateCareerOutput,
		Career: domain.CareerProfile{
			Skills:    []string{"python", "sql"},
			Interests: []string{"data"},
			Education: "BSc Computer Science",
		},
	}

	msg := d.DispatchCareer(context.Background(), s)

	if !s.CareerComplete || s.State != domain.StateComplete {
		t.Errorf("session not completed: state=%q complete=%v", s.State, s.CareerComplete)
	}
	if !strings.Contains(msg, "Actionable Advice") {
		t.Errorf("guidance missing advice section: %q", msg)
	}
	// No ranked matches means the bootstrap suggestions are used.
	if !strings.Contains(msg, "Start by building a strong foundation") {
		t.Errorf("timed-out match should fall back to bootstrap advice: %q", msg)
	}

	// Give the abandoned match goroutine time to finish so the race
	// detector sees any unsynchronized write.
	time.Sleep(80 * time.Millisecond)
}

func TestDispatchResumeRenderTimeoutKeepsPlaceholder(t *testing.T) {
	dir := t.TempDir()
	d := NewDispatcher(slowRenderer{delay: 50 * time.Millisecond}, career.NewMatcher(career.Catalog()), nil, dir, time.Millisecond)
	s := &domain.Session{
		ID:     "r1",
		Intent: domain.IntentResume,
		State:  domain.StateResumeOutput,
		Resume: domain.ResumeRecord{Name: "Sakshi"},
	}

	d.DispatchResume(context.Background(), s)

	artifact := filepath.Join(dir, "r1_resume.pdf")
	first, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatalf("placeholder not written: %v", err)
	}
	if !strings.Contains(string(first), "try again") {
		t.Errorf("artifact is not the placeholder: %q", first)
	}

	// The abandoned render finishes on its temp path; the artifact must
	// not change under it.
	time.Sleep(120 * time.Millisecond)
	second, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatalf("artifact disappeared: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("late render overwrote the placeholder: %q", second)
	}
}

func TestDispatchResumeRenamesCompletedRender(t *testing.T) {
	dir := t.TempDir()
	d := NewDispatcher(slowRenderer{}, career.NewMatcher(career.Catalog()), nil, dir, time.Second)
	s := &domain.Session{
		ID:     "r2",
		Intent: domain.IntentResume,
		State:  domain.StateResumeOutput,
		Resume: domain.ResumeRecord{Name: "Sakshi"},
	}

	d.DispatchResume(context.Background(), s)

	data, err := os.ReadFile(filepath.Join(dir, "r2_resume.pdf"))
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("artifact = %q, want rendered output", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "r2_resume.pdf.tmp")); err == nil {
		t.Error("temp render file left behind after rename")
	}
}
