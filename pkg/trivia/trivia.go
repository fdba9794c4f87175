// Package trivia holds the quiz domain model: the item type served to
// clients, extraction of items from raw model output, and the built-in
// fallback pool used when the upstream model is unavailable.
package trivia

const (
	// MaxPromptLen and MaxSolutionLen cap the fields of a served item,
	// counted in Unicode code points.
	MaxPromptLen   = 300
	MaxSolutionLen = 100
)

// InstructionPrompt is the fixed instruction sent to the generative model
// for every quiz request. It never varies per request.
const InstructionPrompt = "Generate one mid-level trivia question suitable for two teams playing locally. " +
	"Output strictly as compact JSON with keys 'prompt' and 'solution'. " +
	"Avoid code blocks or extra commentary."

// Item is a single trivia question with its expected answer.
type Item struct {
	Prompt   string `json:"prompt"`
	Solution string `json:"solution"`
}

// Truncate returns s cut to at most max Unicode code points. No ellipsis
// is appended; the caps are hard limits on what clients receive.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
