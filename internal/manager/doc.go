// Package manager owns the progressive-generation lifecycle: session
// registry, orchestration of the two engine calls, and the periodic reaper.
// It is structured into small files by concern:
//
//   - manager.go: core Manager type, constructors, Ready/Close.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - sessions.go: GenerationSession and the mutex-guarded session registry.
//   - generate.go: progressive and non-progressive generation paths, polling.
//   - params.go: sampling parameter defaults and the max-length clamp.
//   - reaper.go: age-based session eviction loop.
//   - ensure.go: lazy engine load on first use.
//   - errors.go: error types and helpers (IsSessionNotFound, IsEngineUnavailable).
//   - metrics.go: prometheus counters and gauges for generations and sessions.
//
// Build tags and runtimes:
//
//   - In-process llama: uses the go-llama.cpp adapter, enabled with
//     `-tags=llama`. Files: adapter_llama.go, llama_cgo.go.
//     A no-CGO stub compiles when the tag is not set: adapter_llama_stub.go.
//
// External packages should use public methods only (NewWithConfig,
// GenerateProgressive, GenerateFull, Poll, Ready, ActiveSessions, Close).
package manager
