package util

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/iancoleman/orderedmap"
)

var (
	fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	bareJSONRe   = regexp.MustCompile(`(?s)(\{.*\})`)
)

// ExtractJSONFromText pulls a JSON object out of model output. A fenced
// ```json block wins, then the widest {...} span, else the text is returned
// unchanged.
func ExtractJSONFromText(text string) string {
	if m := fencedJSONRe.FindStringSubmatch(text); len(m) == 2 {
		return m[1]
	}
	if m := bareJSONRe.FindStringSubmatch(text); len(m) == 2 {
		return m[1]
	}
	return text
}

// ParseJSONSafely extracts and decodes a JSON object, preserving key order.
// Returns nil when the text does not hold a JSON object.
func ParseJSONSafely(text string) *orderedmap.OrderedMap {
	raw := strings.TrimSpace(ExtractJSONFromText(text))
	if !strings.HasPrefix(raw, "{") || !json.Valid([]byte(raw)) {
		return nil
	}

	out := orderedmap.New()
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return nil
	}
	return out
}

// AsObject returns v as an ordered map. Decoded nested objects are stored by
// value, so both forms are accepted.
func AsObject(v any) (*orderedmap.OrderedMap, bool) {
	switch m := v.(type) {
	case *orderedmap.OrderedMap:
		return m, m != nil
	case orderedmap.OrderedMap:
		return &m, true
	default:
		return nil, false
	}
}
