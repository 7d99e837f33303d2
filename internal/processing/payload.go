// Package processing normalizes raw YouTube Data API payloads into the
// flat record set persisted by the export package. All functions here are
// pure: they tolerate missing or malformed input by degrading to defaults
// and never fault on payload shape.
package processing

import "strconv"

// getMap returns the nested object under key, or an empty map when the
// key is absent or not an object.
func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

// getList returns the array under key, or nil when absent or not an array.
func getList(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	if v, ok := m[key].([]any); ok {
		return v
	}
	return nil
}

// getString returns the string under key, or "" when absent or not a string.
func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getBool returns a pointer to the boolean under key, or nil when absent.
func getBool(m map[string]any, key string) *bool {
	if m == nil {
		return nil
	}
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

// coerceInt64 converts a JSON value to an integer. The Data API reports
// counters as decimal strings; decoded JSON numbers arrive as float64.
// Returns (value, true) on success and (0, false) for anything else.
func coerceInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// getCount returns a pointer to the numeric value under key, or nil when
// the key is absent or the value cannot be coerced to an integer.
func getCount(m map[string]any, key string) *int64 {
	if m == nil {
		return nil
	}
	v, present := m[key]
	if !present {
		return nil
	}
	n, ok := coerceInt64(v)
	if !ok {
		return nil
	}
	return &n
}
