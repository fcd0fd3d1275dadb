package colleges

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/careercompass/backend/internal/gemini"
)

// extractArray pulls the JSON array of colleges out of free-form model
// output. Fences are stripped, then everything between the first '[' and
// the last ']' must decode to a non-empty array of objects.
func extractArray(text string) ([]json.RawMessage, error) {
	text = stripFences(text)

	start := strings.IndexByte(text, '[')
	end := strings.LastIndexByte(text, ']')
	if start < 0 || end <= start {
		return nil, &gemini.Failure{Kind: gemini.Malformed, Err: errors.New("no JSON array in output")}
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text[start:end+1]), &items); err != nil {
		return nil, &gemini.Failure{Kind: gemini.Malformed, Err: err}
	}
	if len(items) == 0 {
		return nil, &gemini.Failure{Kind: gemini.Empty}
	}
	for _, item := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil {
			return nil, &gemini.Failure{Kind: gemini.Malformed, Err: errors.New("array element is not an object")}
		}
	}
	return items, nil
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	// drop the opening fence line, including any language tag
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
