package manager

// maxLengthCeiling is both the default token budget and the hard cap applied
// to caller-requested budgets.
const maxLengthCeiling = 150

// firstChunkTokens is the budget for the synchronous first chunk: a handful
// of tokens beyond the prompt so the caller gets something immediately.
const firstChunkTokens = 10

// minFullTokens is the reply-length floor for the full completion.
const minFullTokens = 10

// Sampling defaults are part of the API contract: they shape the output
// distribution and must not drift between builds.

// firstChunkParams favors speed and a little extra creativity for the
// synchronous chunk.
func firstChunkParams() SampleParams {
	return SampleParams{
		TopP:          0.9,
		Temperature:   0.8,
		TopK:          40,
		RepeatPenalty: 1.2,
		MaxTokens:     firstChunkTokens,
	}
}

// fullParams favors fidelity for the background completion. The
// non-progressive path uses the same parameters.
func fullParams(maxLength int) SampleParams {
	return SampleParams{
		TopP:          0.95,
		Temperature:   0.5,
		TopK:          40,
		RepeatPenalty: 1.2,
		MaxTokens:     maxLength,
		MinTokens:     minFullTokens,
	}
}

// clampMaxLength applies the default for unset budgets and the hard ceiling
// for everything else.
func clampMaxLength(n int) int {
	if n <= 0 || n > maxLengthCeiling {
		return maxLengthCeiling
	}
	return n
}
