package trivia

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoObject means the cleaned model output contains no JSON object.
	ErrNoObject = errors.New("no JSON object in model output")

	// ErrMissingField means prompt or solution was absent or blank after
	// trimming.
	ErrMissingField = errors.New("missing prompt or solution")
)

// ExtractItem parses text returned by the model into an Item.
//
// The model is asked for compact JSON, but real responses arrive wrapped
// in markdown fences, leading prose, or trailing commentary. Extraction
// trims whitespace and backticks, takes the slice between the first '{'
// and the last '}', and decodes it as a JSON object. The "prompt" and
// "solution" values are coerced to strings, trimmed, and capped at
// MaxPromptLen and MaxSolutionLen code points.
func ExtractItem(text string) (Item, error) {
	cleaned := strings.Trim(strings.TrimSpace(text), "`")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return Item{}, ErrNoObject
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &fields); err != nil {
		return Item{}, fmt.Errorf("decode model output: %w", err)
	}

	prompt := strings.TrimSpace(coerceString(fields["prompt"]))
	solution := strings.TrimSpace(coerceString(fields["solution"]))
	if prompt == "" || solution == "" {
		return Item{}, ErrMissingField
	}

	return Item{
		Prompt:   Truncate(prompt, MaxPromptLen),
		Solution: Truncate(solution, MaxSolutionLen),
	}, nil
}

// coerceString renders the JSON value types models actually produce for
// the two keys. Nested objects and arrays coerce to "" and fail the
// blank-field check in ExtractItem.
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
