package manager

import (
	"testing"
	"time"
)

func TestRegistry_InsertGetCopy(t *testing.T) {
	r := newSessionRegistry()
	r.insert(&GenerationSession{ID: "a", CurrentText: "one", Status: StatusGenerating})
	got, ok := r.get("a")
	if !ok || got.CurrentText != "one" {
		t.Fatalf("get = %+v ok=%v", got, ok)
	}
	// Mutating the returned copy must not affect the stored session.
	got.CurrentText = "mutated"
	again, _ := r.get("a")
	if again.CurrentText != "one" {
		t.Fatalf("registry leaked a mutable reference: %q", again.CurrentText)
	}
}

func TestRegistry_UpdateIfPresent(t *testing.T) {
	r := newSessionRegistry()
	r.insert(&GenerationSession{ID: "a", Status: StatusGenerating})
	ok := r.updateIfPresent("a", func(s *GenerationSession) {
		s.Status = StatusCompleted
		s.Completed = true
	})
	if !ok {
		t.Fatal("update on present id returned false")
	}
	s, _ := r.get("a")
	if !s.Completed || s.Status != StatusCompleted {
		t.Fatalf("session = %+v", s)
	}
	if r.updateIfPresent("missing", func(s *GenerationSession) { s.Completed = true }) {
		t.Fatal("update on missing id returned true")
	}
}

func TestRegistry_DeleteIfPresent(t *testing.T) {
	r := newSessionRegistry()
	r.insert(&GenerationSession{ID: "a"})
	if !r.deleteIfPresent("a") {
		t.Fatal("delete present id returned false")
	}
	if r.deleteIfPresent("a") {
		t.Fatal("delete absent id returned true")
	}
	if r.len() != 0 {
		t.Fatalf("len = %d", r.len())
	}
}

func TestRegistry_ReapOlderThan(t *testing.T) {
	r := newSessionRegistry()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.insert(&GenerationSession{ID: "old", StartTime: base.Add(-time.Hour), Completed: true})
	r.insert(&GenerationSession{ID: "in-flight-old", StartTime: base.Add(-31 * time.Minute)})
	r.insert(&GenerationSession{ID: "fresh", StartTime: base.Add(-time.Minute)})
	r.insert(&GenerationSession{ID: "boundary", StartTime: base.Add(-30 * time.Minute)})

	cutoff := base.Add(-30 * time.Minute)
	if n := r.reapOlderThan(cutoff); n != 2 {
		t.Fatalf("reaped = %d, want 2", n)
	}
	// Completion state does not matter; only age strictly past the cutoff.
	for _, id := range []string{"old", "in-flight-old"} {
		if _, ok := r.get(id); ok {
			t.Fatalf("%s survived reap", id)
		}
	}
	for _, id := range []string{"fresh", "boundary"} {
		if _, ok := r.get(id); !ok {
			t.Fatalf("%s was reaped early", id)
		}
	}
}
