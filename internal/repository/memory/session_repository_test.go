package memory

import (
	"sync"
	"testing"

	"course-mentor-be/pkg/store"
)

func TestGetOrCreateReturnsDefaultSession(t *testing.T) {
	repo := NewSessionRepository()

	session := repo.GetOrCreate("user1")
	if session.ID != "user1" {
		t.Fatalf("ID = %q", session.ID)
	}
	if session.LastIntent != "" || session.LastOffset != 0 || len(session.LastResults) != 0 {
		t.Fatal("new session should be zero-valued")
	}

	if again := repo.GetOrCreate("user1"); again != session {
		t.Fatal("expected the same session instance on repeated lookups")
	}
}

func TestSessionsAreIsolatedById(t *testing.T) {
	repo := NewSessionRepository()

	a := repo.GetOrCreate("a")
	a.LastIntent = "recommend"
	a.LastOffset = 5
	repo.Save(a)

	b := repo.GetOrCreate("b")
	if b.LastIntent != "" || b.LastOffset != 0 {
		t.Fatal("state leaked between session ids")
	}
}

func TestDeleteForgetsSession(t *testing.T) {
	repo := NewSessionRepository()

	repo.GetOrCreate("x").LastIntent = "recommend"
	repo.Delete("x")

	if _, found := repo.Get("x"); found {
		t.Fatal("session should be gone")
	}
	if fresh := repo.GetOrCreate("x"); fresh.LastIntent != "" {
		t.Fatal("expected a fresh session after delete")
	}
}

func TestRecordTurnEvictsOldest(t *testing.T) {
	session := &store.Session{ID: "u"}
	for i, msg := range []string{"one", "two", "three", "four", "five", "six", "seven"} {
		session.RecordTurn(msg, nil)
		if want := min(i+1, store.HistoryLimit); len(session.History) != want {
			t.Fatalf("after %q: history len = %d, want %d", msg, len(session.History), want)
		}
	}

	if session.History[0].Message != "three" || session.History[4].Message != "seven" {
		t.Fatalf("wrong eviction window: %+v", session.History)
	}
}

func TestAcquireSerializesPerSession(t *testing.T) {
	repo := NewSessionRepository()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := repo.Acquire("same")
			defer release()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("counter = %d, want 50", counter)
	}
}
