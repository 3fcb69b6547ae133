package workflow

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/career"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/render"
)

// failingSink errors on every call so tests can verify persistence problems
// never block a conversation.
type failingSink struct{}

func (failingSink) SaveAnswers(ctx context.Context, sessionID string, answers map[string]any) error {
	return errors.New("sink down")
}

func (failingSink) SaveResults(ctx context.Context, sessionID string, record domain.ResumeRecord, score int, gaps []string, roadmap domain.Roadmap) error {
	return errors.New("sink down")
}

func (failingSink) SaveArtifact(ctx context.Context, sessionID, filePath, contentType string) error {
	return errors.New("sink down")
}

func (failingSink) Ping(ctx context.Context) error { return errors.New("sink down") }
func (failingSink) Close() error                   { return nil }

func newTestEngine(t *testing.T) (*Engine, string) {
	t.Helper()
	dir := t.TempDir()
	dispatcher := NewDispatcher(render.NewGenerator(), career.NewMatcher(career.Catalog()), nil, dir, 5*time.Second)
	return NewEngine(NewSessionStore(time.Hour, 100), dispatcher), dir
}

func send(t *testing.T, e *Engine, sessionID, message string) *Turn {
	t.Helper()
	turn, err := e.ProcessMessage(context.Background(), sessionID, message, domain.IntentUnknown)
	if err != nil {
		t.Fatalf("ProcessMessage(%q) failed: %v", message, err)
	}
	return turn
}

func TestEngineGreetsOnFirstMessage(t *testing.T) {
	e, _ := newTestEngine(t)

	turn := send(t, e, "s1", "hi")
	if turn.State != domain.StateIntent {
		t.Errorf("State = %q, want %q", turn.State, domain.StateIntent)
	}
	if !strings.Contains(turn.Message, "Resume") || !strings.Contains(turn.Message, "Career") {
		t.Errorf("greeting should present both options, got %q", turn.Message)
	}
}

func TestEngineUnknownIntentReprompts(t *testing.T) {
	e, _ := newTestEngine(t)

	send(t, e, "s1", "hi")
	turn := send(t, e, "s1", "the weather is nice")
	if turn.State != domain.StateIntent {
		t.Errorf("State = %q, want to stay at %q", turn.State, domain.StateIntent)
	}
	if turn.Intent != domain.IntentUnknown {
		t.Errorf("Intent = %q, want unknown", turn.Intent)
	}

	// The next message can still resolve the intent.
	turn = send(t, e, "s1", "resume")
	if turn.Intent != domain.IntentResume {
		t.Errorf("Intent = %q, want resume", turn.Intent)
	}
	if turn.CurrentField != "name" {
		t.Errorf("CurrentField = %q, want name", turn.CurrentField)
	}
}

func TestEngineResumeFlowAsksEachFieldOnce(t *testing.T) {
	e, dir := newTestEngine(t)

	send(t, e, "s1", "hi")
	turn := send(t, e, "s1", "I want to build a resume")

	answers := []struct {
		field string
		reply string
	}{
		{"name", "Sakshi Devkar"},
		{"email", "sakshi@example.com"},
		{"linkedin", "skip"},
		{"summary", "Final-year student passionate about building useful software."},
		{"education", "B.Tech Computer Science, Pune University, 2026"},
		{"skills", "Python, JavaScript, Communication"},
		{"experience", "none"},
		{"projects", "Resume assistant chatbot built with FastAPI"},
		{"achievements", "Hackathon Winner, AWS Certified Cloud Practitioner"},
	}

	var asked []string
	for _, a := range answers {
		if turn.CurrentField != a.field {
			t.Fatalf("asked for %q, want %q (asked so far: %v)", turn.CurrentField, a.field, asked)
		}
		asked = append(asked, turn.CurrentField)
		turn = send(t, e, "s1", a.reply)
	}

	if !turn.ResumeComplete {
		t.Error("ResumeComplete = false after final answer")
	}
	if turn.State != domain.StateComplete {
		t.Errorf("State = %q, want complete", turn.State)
	}
	if !strings.Contains(turn.Message, "generated") {
		t.Errorf("final reply should announce the generated resume, got %q", turn.Message)
	}
	if turn.ArtifactPath == "" {
		t.Fatal("ArtifactPath is empty")
	}
	if _, err := os.Stat(turn.ArtifactPath); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "s1_resume.docx")); err != nil {
		t.Errorf("docx artifact not written: %v", err)
	}

	s, release, ok := e.Sessions().Get("s1")
	if !ok {
		t.Fatal("session vanished")
	}
	defer release()
	if s.Resume.Name != "Sakshi Devkar" {
		t.Errorf("Name = %q", s.Resume.Name)
	}
	if s.Resume.LinkedIn != "" || s.Resume.Portfolio != "" {
		t.Error("skipped link slot should stay empty")
	}
	if len(s.Resume.Experience) != 0 {
		t.Errorf("Experience = %v, want empty after 'none'", s.Resume.Experience)
	}
	if len(s.Resume.Certifications) != 1 || len(s.Resume.Achievements) != 1 {
		t.Errorf("achievements split wrong: %v / %v", s.Resume.Achievements, s.Resume.Certifications)
	}
}

func TestEngineCompletedSessionIsInert(t *testing.T) {
	e, _ := newTestEngine(t)

	send(t, e, "s1", "hi")
	send(t, e, "s1", "resume")
	for _, reply := range []string{
		"Sakshi", "sakshi@example.com", "skip", "Summary here.",
		"B.Tech", "Python", "none", "none", "none",
	} {
		send(t, e, "s1", reply)
	}

	s, release, _ := e.Sessions().Get("s1")
	before := *s
	release()

	turn := send(t, e, "s1", "please change my name to Mallory")
	if turn.State != domain.StateComplete {
		t.Errorf("State = %q, want complete", turn.State)
	}
	if !strings.Contains(turn.Message, "complete") {
		t.Errorf("completed session should answer with a static notice, got %q", turn.Message)
	}

	s, release, _ = e.Sessions().Get("s1")
	defer release()
	if s.Resume.Name != before.Resume.Name {
		t.Errorf("Name changed after completion: %q -> %q", before.Resume.Name, s.Resume.Name)
	}
	if s.Slot != before.Slot || s.CurrentField != before.CurrentField {
		t.Error("cursor mutated after completion")
	}
}

func TestEngineCareerFlow(t *testing.T) {
	e, _ := newTestEngine(t)

	send(t, e, "s2", "hi")
	turn := send(t, e, "s2", "I need career guidance")
	if turn.Intent != domain.IntentCareer {
		t.Fatalf("Intent = %q, want career", turn.Intent)
	}

	turn = send(t, e, "s2", "python, sql, statistics")
	if turn.CurrentField != "interests" {
		t.Fatalf("CurrentField = %q, want interests", turn.CurrentField)
	}
	turn = send(t, e, "s2", "data, machine learning")
	turn = send(t, e, "s2", "BSc Computer Science")

	if !turn.CareerComplete {
		t.Error("CareerComplete = false after final answer")
	}
	if turn.State != domain.StateComplete {
		t.Errorf("State = %q, want complete", turn.State)
	}
	if !strings.Contains(turn.Message, "Data Science") {
		t.Errorf("guidance should rank Data Science for this profile, got %q", turn.Message)
	}
	if !strings.Contains(turn.Message, "Actionable Advice") {
		t.Errorf("guidance should include advice section, got %q", turn.Message)
	}
}

func TestEngineFailingSinkStillCompletes(t *testing.T) {
	dir := t.TempDir()
	dispatcher := NewDispatcher(render.NewGenerator(), career.NewMatcher(career.Catalog()), failingSink{}, dir, 5*time.Second)
	e := NewEngine(NewSessionStore(time.Hour, 100), dispatcher)

	send(t, e, "s3", "hi")
	send(t, e, "s3", "resume")
	var turn *Turn
	for _, reply := range []string{
		"Sakshi", "sakshi@example.com", "skip", "Summary.",
		"B.Tech", "Python", "none", "none", "none",
	} {
		turn = send(t, e, "s3", reply)
	}

	if !turn.ResumeComplete || turn.State != domain.StateComplete {
		t.Errorf("flow did not complete with failing sink: state=%q complete=%v", turn.State, turn.ResumeComplete)
	}
	if _, err := os.Stat(turn.ArtifactPath); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
}

func TestEngineResetsCorruptedState(t *testing.T) {
	e, _ := newTestEngine(t)

	s, release := e.Sessions().Acquire("s4")
	s.State = domain.State("bogus")
	s.Resume.Name = "leftover"
	release()

	turn := send(t, e, "s4", "hi")
	if turn.State != domain.StateIntent {
		t.Errorf("State = %q, want intent after reset", turn.State)
	}

	s, release, _ = e.Sessions().Get("s4")
	defer release()
	if s.Resume.Name != "" {
		t.Errorf("collected data should be cleared on reset, got %q", s.Resume.Name)
	}
}
