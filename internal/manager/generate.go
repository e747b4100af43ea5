package manager

import (
	"context"

	"github.com/google/uuid"

	"gend/internal/prompt"
	"gend/pkg/types"
)

// GenerateProgressive produces the short first chunk synchronously, registers
// a session, and schedules the full completion in the background. The first
// engine call sits on the request's critical path and may take seconds.
//
// A step-1 engine failure is returned to the caller; no session is created
// for it. Background failures are recorded into the session instead.
func (m *Manager) GenerateProgressive(ctx context.Context, req types.GenerateRequest) (types.GenerateResponse, error) {
	style := req.Style
	if style == "" {
		style = prompt.DefaultStyle
	}
	fullPrompt := prompt.Compose(style, req.Prompt)
	budget := clampMaxLength(req.MaxLength)

	engine, err := m.ensureEngine()
	if err != nil {
		return types.GenerateResponse{}, err
	}
	first, err := engine.Complete(ctx, fullPrompt, firstChunkParams())
	if err != nil {
		generationFailures.Inc()
		return types.GenerateResponse{}, err
	}
	generationsTotal.WithLabelValues("first").Inc()

	id := uuid.NewString()
	m.registry.insert(&GenerationSession{
		ID:          id,
		Prompt:      fullPrompt,
		Style:       style,
		StartTime:   m.now(),
		CurrentText: first,
		Status:      StatusGenerating,
		MaxLength:   budget,
	})
	activeSessions.Set(float64(m.registry.len()))
	m.log.Info().Str("generation_id", shortID(id)).Str("style", style).Int("max_length", budget).
		Msg("progressive generation started")

	// Fire and forget: the session registry is the only rendezvous point
	// between this goroutine and pollers.
	go m.completeGeneration(id, fullPrompt, budget)

	return types.GenerateResponse{GenerationID: id, GeneratedText: first, Completed: false}, nil
}

// GenerateFull is the non-progressive path: one synchronous engine call with
// the full budget, cleaned, no session tracking.
func (m *Manager) GenerateFull(ctx context.Context, req types.GenerateRequest) (types.TextResponse, error) {
	style := req.Style
	if style == "" {
		style = prompt.DefaultStyle
	}
	fullPrompt := prompt.Compose(style, req.Prompt)
	budget := clampMaxLength(req.MaxLength)

	engine, err := m.ensureEngine()
	if err != nil {
		return types.TextResponse{}, err
	}
	text, err := engine.Complete(ctx, fullPrompt, fullParams(budget))
	if err != nil {
		generationFailures.Inc()
		return types.TextResponse{}, err
	}
	generationsTotal.WithLabelValues("single").Inc()
	return types.TextResponse{GeneratedText: prompt.Clean(text)}, nil
}

// Poll returns the latest known text and completion flag for a session.
// Unknown and reaped identifiers are indistinguishable: both are not found.
func (m *Manager) Poll(id string) (types.ContinueResponse, error) {
	s, ok := m.registry.get(id)
	if !ok {
		return types.ContinueResponse{}, ErrSessionNotFound(id)
	}
	return types.ContinueResponse{GeneratedText: s.CurrentText, Completed: s.Completed}, nil
}

// completeGeneration runs the full completion and writes the result into the
// session. It is the session's single writer after creation: no retries, no
// cancellation, and a write to a reaped session is silently dropped.
func (m *Manager) completeGeneration(id, fullPrompt string, budget int) {
	m.log.Debug().Str("generation_id", shortID(id)).Msg("background generation started")
	engine, err := m.ensureEngine()
	var text string
	if err == nil {
		text, err = engine.Complete(context.Background(), fullPrompt, fullParams(budget))
	}
	if err != nil {
		generationFailures.Inc()
		m.log.Error().Err(err).Str("generation_id", shortID(id)).Msg("background generation failed")
		// Completed is set even on error so pollers can stop waiting; the
		// first chunk stays as the last known text.
		m.registry.updateIfPresent(id, func(s *GenerationSession) {
			s.Status = StatusError
			s.ErrorMsg = err.Error()
			s.Completed = true
		})
		return
	}
	generationsTotal.WithLabelValues("background").Inc()
	clean := prompt.Clean(text)
	if !m.registry.updateIfPresent(id, func(s *GenerationSession) {
		s.CurrentText = clean
		s.Completed = true
		s.Status = StatusCompleted
	}) {
		m.log.Debug().Str("generation_id", shortID(id)).Msg("session evicted before completion; result dropped")
		return
	}
	m.log.Info().Str("generation_id", shortID(id)).Msg("background generation completed")
}

// shortID truncates a session id for log lines.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
