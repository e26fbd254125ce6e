package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntDefault parses raw as a base 10 integer, returning def for an empty value
func ParseIntDefault(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	return n, nil
}

// ParseFloatDefault parses raw as a float, returning def for an empty value
func ParseFloatDefault(raw string, def float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return f, nil
}

// SafePlayerID trims a player id and reports whether it is usable as a storage key
func SafePlayerID(raw string) (string, bool) {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > 128 || strings.ContainsAny(id, ": \t\n") {
		return "", false
	}
	return id, true
}
