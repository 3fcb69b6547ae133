package workflow

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

func TestSessionStoreCreatesLazily(t *testing.T) {
	st := NewSessionStore(time.Hour, 10)

	if st.Len() != 0 {
		t.Fatalf("Len = %d, want 0", st.Len())
	}

	s, release := st.Acquire("s1")
	if s.State != domain.StateStart {
		t.Errorf("State = %q, want start", s.State)
	}
	if s.Intent != domain.IntentUnknown {
		t.Errorf("Intent = %q, want unknown", s.Intent)
	}
	release()

	if st.Len() != 1 {
		t.Errorf("Len = %d, want 1", st.Len())
	}

	// A second acquire returns the same session.
	s2, release2 := st.Acquire("s1")
	if s2 != s {
		t.Error("Acquire returned a different session for the same id")
	}
	release2()
}

func TestSessionStoreGetDoesNotCreate(t *testing.T) {
	st := NewSessionStore(time.Hour, 10)

	if _, _, ok := st.Get("missing"); ok {
		t.Error("Get created a session")
	}
	if st.Len() != 0 {
		t.Errorf("Len = %d, want 0", st.Len())
	}
}

func TestSessionStoreDelete(t *testing.T) {
	st := NewSessionStore(time.Hour, 10)

	_, release := st.Acquire("s1")
	release()
	st.Delete("s1")

	if _, _, ok := st.Get("s1"); ok {
		t.Error("session still present after Delete")
	}
}

func TestSessionStoreSweepRemovesExpired(t *testing.T) {
	st := NewSessionStore(10*time.Minute, 10)

	s, release := st.Acquire("old")
	s.UpdatedAt = time.Now().Add(-time.Hour)
	release()
	_, release = st.Acquire("fresh")
	release()

	removed := st.sweep(time.Now())
	if removed != 1 {
		t.Errorf("sweep removed %d sessions, want 1", removed)
	}
	if _, _, ok := st.Get("old"); ok {
		t.Error("expired session survived sweep")
	}
	if _, _, ok := st.Get("fresh"); !ok {
		t.Error("fresh session removed by sweep")
	}
}

func TestSessionStoreSweepSkipsLockedSessions(t *testing.T) {
	st := NewSessionStore(10*time.Minute, 10)

	s, release := st.Acquire("busy")
	s.UpdatedAt = time.Now().Add(-time.Hour)

	// Session lock is still held: the sweep must leave it alone.
	if removed := st.sweep(time.Now()); removed != 0 {
		t.Errorf("sweep removed %d sessions while locked, want 0", removed)
	}
	release()

	if removed := st.sweep(time.Now()); removed != 1 {
		t.Errorf("sweep removed %d sessions after release, want 1", removed)
	}
}

func TestSessionStoreEvictsOldestWhenFull(t *testing.T) {
	st := NewSessionStore(time.Hour, 2)

	s, release := st.Acquire("a")
	s.UpdatedAt = time.Now().Add(-2 * time.Hour)
	release()
	_, release = st.Acquire("b")
	release()

	_, release = st.Acquire("c")
	release()

	if st.Len() != 2 {
		t.Errorf("Len = %d, want 2 after eviction", st.Len())
	}
	if _, _, ok := st.Get("a"); ok {
		t.Error("oldest session survived eviction")
	}
	if _, _, ok := st.Get("c"); !ok {
		t.Error("new session missing after eviction")
	}
}

func TestSessionStoreConcurrentAccess(t *testing.T) {
	st := NewSessionStore(time.Hour, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", n%10)
			s, release := st.Acquire(id)
			s.Append("user", "hello")
			release()
		}(i)
	}
	wg.Wait()

	if st.Len() != 10 {
		t.Errorf("Len = %d, want 10", st.Len())
	}
	s, release, _ := st.Get("s0")
	defer release()
	if len(s.Messages) != 5 {
		t.Errorf("Messages = %d, want 5", len(s.Messages))
	}
}
