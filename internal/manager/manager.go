package manager

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Manager orchestrates progressive generations: it owns the session registry,
// the engine session, and the reaper goroutine.
type Manager struct {
	cfg      ManagerConfig
	adapter  EngineAdapter
	registry *sessionRegistry
	now      func() time.Time
	log      zerolog.Logger

	mu     sync.Mutex // guards engine
	engine EngineSession

	stop      chan struct{}
	closeOnce sync.Once
}

// Ready reports whether the engine session is live. The model loads lazily on
// the first generation, so a fresh process reports not ready until then.
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.engine != nil
}

// ActiveSessions returns the number of sessions currently in the registry.
func (m *Manager) ActiveSessions() int {
	return m.registry.len()
}

// Close stops the reaper and releases the engine session.
func (m *Manager) Close() error {
	var err error
	m.closeOnce.Do(func() {
		close(m.stop)
		m.mu.Lock()
		if m.engine != nil {
			err = m.engine.Close()
			m.engine = nil
		}
		m.mu.Unlock()
	})
	return err
}
