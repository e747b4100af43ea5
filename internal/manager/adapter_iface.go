package manager

import "context"

// EngineAdapter abstracts the model runtime used by the Manager.
// Concrete implementations (e.g., llama.cpp) should satisfy this interface.
type EngineAdapter interface {
	// Start loads the model at the given path and returns a session that can
	// serve completions until closed.
	Start(modelPath string, opts EngineOptions) (EngineSession, error)
}

// EngineSession is a loaded model serving one completion at a time.
type EngineSession interface {
	// Complete generates text for the prompt using the given sampling
	// parameters. Implementations must return when the context is canceled.
	Complete(ctx context.Context, prompt string, params SampleParams) (string, error)
	// Close releases any resources associated with the session.
	Close() error
}

// EngineOptions captures runtime settings applied once at load time.
type EngineOptions struct {
	CtxSize int
	Threads int
}

// SampleParams captures sampling parameters for a single completion.
type SampleParams struct {
	Temperature   float32
	TopP          float32
	TopK          int
	RepeatPenalty float32
	// MaxTokens is the number of new tokens to generate beyond the prompt.
	MaxTokens int
	// MinTokens is a floor on the reply length. Runtimes without native
	// support may ignore it.
	MinTokens int
}
