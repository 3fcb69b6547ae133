// Package workflow implements the conversation state machine that drives the
// assistant: intent routing, fixed-order field collection, and the terminal
// output nodes.
package workflow

import (
	"context"
	"log/slog"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

const greeting = "Hello! 👋 I'm your AI Resume & Career Assistant, aligned with SDG 8 (Decent Work and Economic Growth).\n\nI can help you with:\n\n📄 **Resume Building** - Create a professional resume step by step\n\n💼 **Career Guidance** - Get personalized career path recommendations\n\nWhat would you like to do today? (Type 'resume' to build a resume or 'career' for career guidance)"

const clarification = "I'd like to help you! Could you please clarify what you're looking for?\n\n- Type **'resume'** if you want to create a professional resume\n- Type **'career'** if you want career guidance and path recommendations"

const completedReply = "Your session is complete! 🎉\n\nStart a new session if you'd like to build another resume or explore career paths."

// Turn is the outcome of processing one user message.
type Turn struct {
	Message        string
	State          domain.State
	Intent         domain.Intent
	ResumeComplete bool
	CareerComplete bool
	CurrentField   string
	ArtifactPath   string
}

// Engine processes chat messages against per-session workflow state.
type Engine struct {
	sessions *SessionStore
	output   *Dispatcher
}

// NewEngine creates the workflow engine.
func NewEngine(sessions *SessionStore, output *Dispatcher) *Engine {
	return &Engine{sessions: sessions, output: output}
}

// Sessions exposes the underlying session store.
func (e *Engine) Sessions() *SessionStore {
	return e.sessions
}

// ProcessMessage advances the session's workflow by one user message and
// returns the assistant's reply. An intent hint, when valid, overrides
// keyword classification at the intent node.
func (e *Engine) ProcessMessage(ctx context.Context, sessionID, message string, hint domain.Intent) (*Turn, error) {
	s, release := e.sessions.Acquire(sessionID)
	defer release()

	if !s.State.Valid() {
		slog.Warn("Resetting session with unknown state", "session_id", sessionID, "state", s.State)
		*s = domain.Session{
			ID:        sessionID,
			State:     domain.StateStart,
			Intent:    domain.IntentUnknown,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		}
	}

	reply := e.step(ctx, s, message, hint)
	s.Append("user", message)
	s.Append("assistant", reply)

	return &Turn{
		Message:        reply,
		State:          s.State,
		Intent:         s.Intent,
		ResumeComplete: s.ResumeComplete,
		CareerComplete: s.CareerComplete,
		CurrentField:   s.CurrentField,
		ArtifactPath:   s.ArtifactPath,
	}, nil
}

func (e *Engine) step(ctx context.Context, s *domain.Session, message string, hint domain.Intent) string {
	switch s.State {
	case domain.StateStart:
		s.State = domain.StateIntent
		return greeting
	case domain.StateIntent:
		return e.intentNode(ctx, s, message, hint)
	case domain.StateResumeCollection, domain.StateCareerCollection:
		return e.collectNode(ctx, s, message)
	case domain.StateResumeOutput:
		return e.output.DispatchResume(ctx, s)
	case domain.StateCareerOutput:
		return e.output.DispatchCareer(ctx, s)
	default:
		return completedReply
	}
}

// intentNode resolves the session's intent and, when resolved, immediately
// asks the first collection question in the same turn.
func (e *Engine) intentNode(ctx context.Context, s *domain.Session, message string, hint domain.Intent) string {
	intent := hint
	if intent != domain.IntentResume && intent != domain.IntentCareer {
		intent = Classify(message)
	}
	if intent == domain.IntentUnknown {
		return clarification
	}

	s.Intent = intent
	if intent == domain.IntentCareer {
		s.State = domain.StateCareerCollection
	} else {
		s.State = domain.StateResumeCollection
	}
	return e.askNext(ctx, s)
}

// collectNode consumes the pending slot's answer, then advances the cursor
// to the next unsatisfied slot and asks for it. When the schema is exhausted
// the corresponding output node runs in the same turn.
func (e *Engine) collectNode(ctx context.Context, s *domain.Session, message string) string {
	schema := schemaFor(s.Intent)

	if s.CurrentField != "" && s.Slot < len(schema) {
		schema[s.Slot].Store(s, message)
		s.CurrentField = ""
		s.Slot++
	}

	return e.askNext(ctx, s)
}

// askNext advances past already-satisfied slots and either asks the next
// question or dispatches the output node when none remain.
func (e *Engine) askNext(ctx context.Context, s *domain.Session) string {
	schema := schemaFor(s.Intent)

	for s.Slot < len(schema) && schema[s.Slot].Filled(s) {
		s.Slot++
	}

	if s.Slot >= len(schema) {
		s.CurrentField = ""
		if s.Intent == domain.IntentCareer {
			s.State = domain.StateCareerOutput
			return e.output.DispatchCareer(ctx, s)
		}
		s.State = domain.StateResumeOutput
		return e.output.DispatchResume(ctx, s)
	}

	s.CurrentField = schema[s.Slot].Name
	return schema[s.Slot].Prompt
}
