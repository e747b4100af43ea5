package manager

import "time"

// runReaper evicts sessions older than the retention window on a fixed
// interval, for the life of the Manager. Age is the only criterion: sessions
// past the window are removed even while their background goroutine is still
// running, whose eventual write then lands nowhere.
func (m *Manager) runReaper() {
	t := time.NewTicker(m.cfg.ReapInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			m.reapOnce()
		case <-m.stop:
			return
		}
	}
}

// reapOnce performs a single reap cycle.
func (m *Manager) reapOnce() {
	cutoff := m.now().Add(-m.cfg.SessionTTL)
	if n := m.registry.reapOlderThan(cutoff); n > 0 {
		sessionsReaped.Add(float64(n))
		m.log.Info().Int("evicted", n).Msg("reaped stale generation sessions")
	}
	activeSessions.Set(float64(m.registry.len()))
}
