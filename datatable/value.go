package datatable

import (
	"fmt"
	"strconv"
	"strings"
)

// valueString coerces an arbitrary cell value to its display string.
// Multi-value cells join with a comma, nil becomes the empty string.
func valueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, valueString(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}

// valueNumber coerces a cell value to a float64. Numeric strings count;
// anything else reports ok=false.
func valueNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// isRuntimeNumber reports whether the value is a numeric type, without
// trying to parse strings. Sort-mode auto-detection uses this.
func isRuntimeNumber(value any) bool {
	switch value.(type) {
	case int, int32, int64, uint, float32, float64:
		return true
	}
	return false
}
