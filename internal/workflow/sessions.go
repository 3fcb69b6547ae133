package workflow

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

const janitorInterval = time.Minute

// SessionStore holds conversation state keyed by session id. Sessions are
// created lazily on first access and removed by explicit Delete, TTL expiry,
// or max-size eviction.
//
// Each session carries its own lock so concurrent turns for the same id are
// serialized without blocking unrelated sessions.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	ttl      time.Duration // 0 = no expiry
	maxSize  int           // 0 = unbounded
}

type sessionEntry struct {
	mu      sync.Mutex
	session *domain.Session
}

// NewSessionStore creates a session store with the given expiry policy.
func NewSessionStore(ttl time.Duration, maxSize int) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		maxSize:  maxSize,
	}
}

// Acquire returns the session for id with its lock held, creating it in the
// start state when absent. The returned release func must be called when the
// turn is finished.
func (st *SessionStore) Acquire(id string) (*domain.Session, func()) {
	st.mu.Lock()
	e, ok := st.sessions[id]
	if !ok {
		if st.maxSize > 0 && len(st.sessions) >= st.maxSize {
			st.evictOldestLocked()
		}
		now := time.Now()
		e = &sessionEntry{session: &domain.Session{
			ID:        id,
			State:     domain.StateStart,
			Intent:    domain.IntentUnknown,
			CreatedAt: now,
			UpdatedAt: now,
		}}
		st.sessions[id] = e
	}
	st.mu.Unlock()

	e.mu.Lock()
	return e.session, e.mu.Unlock
}

// Get returns the session for id with its lock held, or ok=false when no
// such session exists. Unlike Acquire it never creates a session.
func (st *SessionStore) Get(id string) (*domain.Session, func(), bool) {
	st.mu.RLock()
	e, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, nil, false
	}
	e.mu.Lock()
	return e.session, e.mu.Unlock, true
}

// Delete removes a session. A holder of the session lock keeps its reference;
// the state is simply unreachable for subsequent messages.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartJanitor runs a background goroutine that periodically sweeps expired
// sessions until ctx is cancelled. It is a no-op when the store has no TTL.
func (st *SessionStore) StartJanitor(ctx context.Context) {
	if st.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(janitorInterval)
	go func() {
		defer ticker.Stop()
		slog.Info("Session janitor started", "interval", janitorInterval, "ttl", st.ttl)
		for {
			select {
			case <-ticker.C:
				if n := st.sweep(time.Now()); n > 0 {
					slog.Info("Session janitor removed expired sessions", "count", n)
				}
			case <-ctx.Done():
				slog.Info("Session janitor shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}

// sweep removes sessions idle longer than the TTL. Sessions currently locked
// by an in-flight turn are skipped and picked up on a later pass.
func (st *SessionStore) sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, e := range st.sessions {
		if !e.mu.TryLock() {
			continue
		}
		idle := now.Sub(e.session.UpdatedAt)
		e.mu.Unlock()
		if idle > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// evictOldestLocked drops the least-recently-updated session. Caller holds
// the store lock.
func (st *SessionStore) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, e := range st.sessions {
		if !e.mu.TryLock() {
			continue
		}
		updated := e.session.UpdatedAt
		e.mu.Unlock()
		if oldestID == "" || updated.Before(oldest) {
			oldestID = id
			oldest = updated
		}
	}
	if oldestID != "" {
		delete(st.sessions, oldestID)
		slog.Warn("Session store full, evicted oldest session", "session_id", oldestID)
	}
}
