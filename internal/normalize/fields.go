package normalize

import (
	"time"
)

// Field resolution over decoded JSON payloads. Every accessor walks an
// ordered fallback chain: the first present, non-nil candidate wins.
// Candidates are never averaged or merged across sources.

// object returns a nested object value, or nil when absent or not an object
func object(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	return nil
}

// array returns a nested array value, or nil
func array(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	if arr, ok := m[key].([]any); ok {
		return arr
	}
	return nil
}

// str resolves the first string found for the given keys
func str(m map[string]any, keys ...string) string {
	if m == nil {
		return ""
	}
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// num resolves the first numeric value found for the given keys. JSON
// numbers decode as float64; integers stored as strings are not accepted.
func num(m map[string]any, keys ...string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			switch n := v.(type) {
			case float64:
				return n, true
			case int:
				return float64(n), true
			}
		}
	}
	return 0, false
}

// intval resolves the first numeric value as an int, defaulting to 0
func intval(m map[string]any, keys ...string) int {
	if n, ok := num(m, keys...); ok {
		return int(n)
	}
	return 0
}

// boolean resolves the first bool found, defaulting to false
func boolean(m map[string]any, keys ...string) bool {
	if m == nil {
		return false
	}
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return false
}

// timestamp resolves the first parseable RFC 3339 time, defaulting to zero
func timestamp(m map[string]any, keys ...string) time.Time {
	s := str(m, keys...)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
