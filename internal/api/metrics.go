package api

import (
	"net/http"
	"sync"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/workflow"
)

type sessionFlags struct {
	resume bool
	career bool
}

// maxTrackedSessions bounds the per-session flag map. Counters are plain
// integers and never grow; only the dedup flags need a cap.
const maxTrackedSessions = 10000

// Metrics tracks coarse usage counters for the dashboard endpoint.
type Metrics struct {
	mu               sync.Mutex
	turns            int64
	engaged          int64
	resumesCompleted int64
	careersCompleted int64
	sessions         map[string]*sessionFlags
}

// NewMetrics creates a zeroed metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{sessions: make(map[string]*sessionFlags)}
}

// RecordTurn updates counters from one processed chat turn. A completion is
// counted once, on the turn the session first reaches it.
func (m *Metrics) RecordTurn(sessionID string, turn *workflow.Turn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns++
	flags, ok := m.sessions[sessionID]
	if !ok {
		if len(m.sessions) >= maxTrackedSessions {
			for id := range m.sessions {
				delete(m.sessions, id)
				break
			}
		}
		flags = &sessionFlags{}
		m.sessions[sessionID] = flags
		m.engaged++
	}
	if turn.ResumeComplete && !flags.resume {
		flags.resume = true
		m.resumesCompleted++
	}
	if turn.CareerComplete && !flags.career {
		flags.career = true
		m.careersCompleted++
	}
}

// Forget drops the dedup flags for a removed session. Counters keep their
// values; only the per-session tracking entry is released.
func (m *Metrics) Forget(sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() map[string]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return map[string]int64{
		"turns":             m.turns,
		"sessions_engaged":  m.engaged,
		"resumes_completed": m.resumesCompleted,
		"careers_completed": m.careersCompleted,
	}
}

// GetMetrics reports usage counters and the live session count.
func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{
		"counters":      h.metrics.Snapshot(),
		"live_sessions": h.engine.Sessions().Len(),
	})
}
