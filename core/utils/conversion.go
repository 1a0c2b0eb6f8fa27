package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// Strings are trimmed before parsing. The boolean result is false when the
// value has no integer representation.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case uint16:
		return int(v), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		return i, err == nil
	case []byte:
		return ToInt(string(v))
	case nil:
		return 0, false
	default:
		return ToInt(fmt.Sprintf("%v", v))
	}
}

// ToIntOr converts val to int, returning fallback when that is not possible.
func ToIntOr(val any, fallback int) int {
	if i, ok := ToInt(val); ok {
		return i
	}
	return fallback
}
