package manager

import (
	"time"

	"github.com/rs/zerolog"
)

// Defaults applied when corresponding ManagerConfig fields are unset.
const (
	defaultSessionTTL   = 30 * time.Minute
	defaultReapInterval = 10 * time.Minute
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	// ModelPath is passed to the engine adapter on first use.
	ModelPath string
	// Engine runtime configuration (no envs; set by callers).
	CtxSize int
	Threads int

	// SessionTTL is the retention window after which the reaper evicts a
	// session, finished or not. Defaults to 30 minutes.
	SessionTTL time.Duration
	// ReapInterval is the reaper's cycle period. Defaults to 10 minutes.
	ReapInterval time.Duration

	// Now overrides the clock used for session timestamps and age checks.
	// Tests inject a fake to time-travel deterministically.
	Now func() time.Time
	// Adapter overrides the default llama adapter. Tests inject a fake.
	Adapter EngineAdapter
	// Logger, when set, replaces the no-op logger.
	Logger *zerolog.Logger
}

// NewWithConfig constructs a Manager from ManagerConfig and starts its reaper.
func NewWithConfig(cfg ManagerConfig) *Manager {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.ReapInterval <= 0 {
		cfg.ReapInterval = defaultReapInterval
	}
	m := &Manager{
		cfg:      cfg,
		registry: newSessionRegistry(),
		now:      cfg.Now,
		stop:     make(chan struct{}),
		log:      zerolog.Nop(),
	}
	if m.now == nil {
		m.now = time.Now
	}
	if cfg.Logger != nil {
		m.log = *cfg.Logger
	}
	// Default to the in-process llama adapter (or its no-CGO stub).
	m.adapter = cfg.Adapter
	if m.adapter == nil {
		m.adapter = NewLlamaAdapter()
	}
	go m.runReaper()
	return m
}

// New constructs a Manager with default retention and reap settings.
func New(modelPath string, ctxSize, threads int) *Manager {
	return NewWithConfig(ManagerConfig{ModelPath: modelPath, CtxSize: ctxSize, Threads: threads})
}
