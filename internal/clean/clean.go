// Package clean strips transport-escape artifacts from backend payloads.
// Responses that pass through several serialization hops can arrive with
// doubled backslashes and stray whitespace in string fields; every payload
// is run through Value before normalization.
package clean

import (
	"regexp"
	"strings"
)

var multiBackslash = regexp.MustCompile(`\\{2,}`)

// Text removes escape artifacts from a single string: runs of two or more
// backslashes, trailing backslashes, and surrounding whitespace. Trailing
// artifacts can shadow each other (a backslash behind whitespace behind
// another backslash), so the tail is stripped to a fixpoint. Cleaning
// already-clean text is a no-op.
func Text(s string) string {
	s = multiBackslash.ReplaceAllString(s, "")
	for {
		t := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), `\`))
		if t == s {
			return t
		}
		s = t
	}
}

// Value walks an arbitrary JSON-compatible value and returns a structurally
// identical one with every string leaf cleaned. Arrays keep their length,
// objects keep their keys, and non-string scalars (numbers, booleans, nil)
// pass through untouched.
func Value(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return Text(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Value(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Value(item)
		}
		return out
	default:
		return v
	}
}
