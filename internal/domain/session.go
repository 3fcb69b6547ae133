// Package domain defines the data model for chat sessions and collected records.
package domain

import (
	"time"
)

// State identifies a node in the conversation workflow.
type State string

const (
	StateStart            State = "start"
	StateIntent           State = "intent"
	StateResumeCollection State = "resume_collection"
	StateCareerCollection State = "career_collection"
	StateResumeOutput     State = "resume_output"
	StateCareerOutput     State = "career_output"
	StateComplete         State = "complete"
)

// Valid reports whether s is a known workflow state.
func (s State) Valid() bool {
	switch s {
	case StateStart, StateIntent, StateResumeCollection, StateCareerCollection,
		StateResumeOutput, StateCareerOutput, StateComplete:
		return true
	}
	return false
}

// Intent is the high-level goal of a session.
type Intent string

const (
	IntentResume  Intent = "resume"
	IntentCareer  Intent = "career"
	IntentUnknown Intent = "unknown"
)

// Message is one transcript entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session holds the full conversation state for one session id.
// All mutation goes through the workflow engine while the session's
// store entry lock is held.
type Session struct {
	ID           string
	State        State
	Intent       Intent
	Resume       ResumeRecord
	Career       CareerProfile
	Messages     []Message
	CurrentField string
	// Slot is a monotonic cursor over the active field schema. A slot is
	// consumed exactly once, whether or not the answer produced a value.
	Slot           int
	ResumeComplete bool
	CareerComplete bool
	// ArtifactPath is set once a resume document has been rendered.
	ArtifactPath string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Append records a transcript entry and bumps the session's activity time.
func (s *Session) Append(role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
	s.UpdatedAt = time.Now()
}
