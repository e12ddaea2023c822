package jsonfile

import (
	"fmt"
	"math"
)

// asString coerces a raw record value to its string form, mirroring how the
// persisted format treats every field as stringable.
func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// asInt accepts the numeric shapes a JSON decode can produce, rejecting
// fractional values.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

func hasFields(rec map[string]any, fields ...string) (string, bool) {
	for _, f := range fields {
		if _, ok := rec[f]; !ok {
			return f, false
		}
	}
	return "", true
}
