package manager

// ensureEngine loads the model on first use and caches the live session.
// A failed load is not cached; the next request retries.
func (m *Manager) ensureEngine() (EngineSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine != nil {
		return m.engine, nil
	}
	sess, err := m.adapter.Start(m.cfg.ModelPath, EngineOptions{CtxSize: m.cfg.CtxSize, Threads: m.cfg.Threads})
	if err != nil {
		m.log.Error().Err(err).Str("model_path", m.cfg.ModelPath).Msg("engine load failed")
		return nil, err
	}
	m.engine = sess
	m.log.Info().Str("model_path", m.cfg.ModelPath).Msg("engine loaded")
	return sess, nil
}
