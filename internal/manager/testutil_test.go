package manager

import (
	"context"
	"sync"
	"testing"
	"time"
)

// fakeCall records one engine invocation.
type fakeCall struct {
	prompt string
	params SampleParams
}

// fakeSession is a scriptable EngineSession. Full-budget calls (MinTokens>0)
// can be gated so tests control when the background goroutine finishes.
type fakeSession struct {
	mu     sync.Mutex
	calls  []fakeCall
	reply  func(prompt string, p SampleParams) (string, error)
	gate   chan struct{}
	closed bool
}

func (s *fakeSession) Complete(ctx context.Context, prompt string, params SampleParams) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, fakeCall{prompt: prompt, params: params})
	gate := s.gate
	reply := s.reply
	s.mu.Unlock()
	if params.MinTokens > 0 && gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if reply != nil {
		return reply(prompt, params)
	}
	if params.MinTokens > 0 {
		return prompt + " full answer", nil
	}
	return prompt + " first", nil
}

func (s *fakeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSession) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *fakeSession) call(i int) fakeCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[i]
}

// fakeAdapter hands out a fixed session and counts loads.
type fakeAdapter struct {
	mu       sync.Mutex
	session  *fakeSession
	startErr error
	starts   int
}

func (a *fakeAdapter) Start(modelPath string, opts EngineOptions) (EngineSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.starts++
	if a.startErr != nil {
		return nil, a.startErr
	}
	return a.session, nil
}

func (a *fakeAdapter) startCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.starts
}

// fakeClock lets tests advance session age without sleeping.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestManager(t *testing.T, fake *fakeSession, clk *fakeClock) *Manager {
	t.Helper()
	cfg := ManagerConfig{
		ModelPath: "/models/test.gguf",
		Adapter:   &fakeAdapter{session: fake},
	}
	if clk != nil {
		cfg.Now = clk.Now
	}
	m := NewWithConfig(cfg)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met within %v", d)
		}
		time.Sleep(2 * time.Millisecond)
	}
}
