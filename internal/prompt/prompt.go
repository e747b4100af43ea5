// Package prompt builds model prompts from style presets and cleans decoded
// engine output back into user-facing text.
package prompt

import "strings"

// DefaultStyle is the preset used when a request omits the style key. It is
// also the fallback for unrecognized keys.
const DefaultStyle = "poem"

// responseMarker separates the echoed prompt from the model's reply in
// decoded output. Compose appends it; Clean cuts at its first occurrence.
const responseMarker = "Response:"

// styles maps a preset key to the instruction prepended to user input.
var styles = map[string]string{
	"default": "You are a helpful and concise assistant. Keep your answers brief and to the point.",
	"poem":    "You are a creative poet. Write short, meaningful poems that are no more than 8 lines. Be expressive yet concise.",
	"brief":   "You are a concise assistant. Provide only the essential information in your responses. Limit your answers to 3 sentences maximum.",
}

// Instruction returns the instruction string for a style key, falling back to
// the poem preset for unknown keys.
func Instruction(style string) string {
	if s, ok := styles[style]; ok {
		return s
	}
	return styles[DefaultStyle]
}

// Compose joins the style instruction and the user text into a single prompt
// ending in the response marker. Empty user text yields a degenerate prompt;
// that is allowed.
func Compose(style, user string) string {
	return Instruction(style) + "\n\nUser: " + user + "\n\n" + responseMarker
}

// Clean extracts the reply from decoded engine output: everything after the
// first response marker, trimmed. Output without the marker is returned
// unchanged; some runtimes do not echo the prompt, and that is not an error.
func Clean(decoded string) string {
	_, after, ok := strings.Cut(decoded, responseMarker)
	if !ok {
		return decoded
	}
	return strings.TrimSpace(after)
}
