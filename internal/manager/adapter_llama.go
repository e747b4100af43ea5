//go:build llama

package manager

import (
	"context"
	"errors"
	"strings"

	llama "github.com/go-skynet/go-llama.cpp"
)

// llamaAdapter holds global config used to initialize a model instance.
type llamaAdapter struct{}

func NewLlamaAdapter() EngineAdapter {
	return &llamaAdapter{}
}

// llamaSession owns the loaded model.
type llamaSession struct {
	model   *llama.LLama
	threads int
}

func (a *llamaAdapter) Start(modelPath string, opts EngineOptions) (EngineSession, error) {
	if strings.TrimSpace(modelPath) == "" {
		return nil, errors.New("model path is empty")
	}
	mo := []llama.ModelOption{}
	if opts.CtxSize > 0 {
		mo = append(mo, llama.SetContext(opts.CtxSize))
	}
	m, err := llama.New(modelPath, mo...)
	if err != nil {
		return nil, err
	}
	return &llamaSession{model: m, threads: opts.Threads}, nil
}

func (s *llamaSession) Complete(ctx context.Context, prompt string, params SampleParams) (string, error) {
	if s.model == nil {
		return "", errors.New("llama model not initialized")
	}
	// Stop generating when the context is canceled.
	s.model.SetTokenCallback(func(tok string) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		return true
	})
	text, err := s.model.Predict(prompt, mapSampleParams(params, s.threads)...)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	return text, nil
}

func (s *llamaSession) Close() error {
	if s.model != nil {
		s.model.Free()
		s.model = nil
	}
	return nil
}

// helpers
func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
func zf(v, def float32) float32 {
	if v > 0 {
		return v
	}
	return def
}
func zn(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

// mapSampleParams converts adapter params into go-llama.cpp options.
// MinTokens has no PredictOption equivalent and is carried for runtimes
// that support it.
func mapSampleParams(params SampleParams, threads int) []llama.PredictOption {
	return []llama.PredictOption{
		llama.SetTokens(maxi(1, params.MaxTokens)),
		llama.SetThreads(maxi(1, threads)),
		llama.SetTopP(zf(params.TopP, llama.DefaultOptions.TopP)),
		llama.SetTopK(zn(params.TopK, llama.DefaultOptions.TopK)),
		llama.SetTemperature(zf(params.Temperature, llama.DefaultOptions.Temperature)),
		llama.SetPenalty(zf(params.RepeatPenalty, llama.DefaultOptions.Penalty)),
	}
}
