package manager

import (
	"sync"
	"time"
)

// Session status values. Transitions are monotonic: generating -> completed
// or generating -> error, never back.
const (
	StatusGenerating = "generating"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// GenerationSession tracks one progressive generation from its first chunk to
// completion, error, or eviction. After creation only the session's own
// background goroutine writes to it.
type GenerationSession struct {
	ID          string
	Prompt      string
	Style       string
	StartTime   time.Time
	CurrentText string
	Completed   bool
	Status      string
	ErrorMsg    string
	MaxLength   int
}

// sessionRegistry is a mutex-guarded map of in-flight and completed sessions.
// The request handler, every background goroutine, pollers and the reaper all
// touch it concurrently, so every operation takes the lock.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*GenerationSession
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*GenerationSession)}
}

func (r *sessionRegistry) insert(s *GenerationSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

// get returns a copy so callers can read fields without holding the lock.
func (r *sessionRegistry) get(id string) (GenerationSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return GenerationSession{}, false
	}
	return *s, true
}

// updateIfPresent applies fn to the session under the lock. A false return
// means the session was evicted; the write is silently dropped.
func (r *sessionRegistry) updateIfPresent(id string, fn func(*GenerationSession)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return false
	}
	fn(s)
	return true
}

func (r *sessionRegistry) deleteIfPresent(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

func (r *sessionRegistry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// reapOlderThan deletes every session started before cutoff, regardless of
// status, and returns how many were removed.
func (r *sessionRegistry) reapOlderThan(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if s.StartTime.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}
