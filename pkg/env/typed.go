package env

import (
	"fmt"
	"strings"
	"time"

	"github.com/platinummonkey/envurl/pkg/literal"
)

// The accessors below treat an empty value like an absent one and fall back
// to the default when the value cannot be converted.

// lookup returns the decoded value of key, or false when it is unset or empty
func lookup(m Mapping, key string) (any, string, bool) {
	if m == nil {
		m = OS()
	}
	raw, ok := m.Lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, "", false
	}
	return literal.DecodeOrRaw(raw), raw, true
}

// String returns a string value or a default
func String(m Mapping, key, defaultValue string) string {
	value, raw, ok := lookup(m, key)
	if !ok {
		return defaultValue
	}
	if s, isString := value.(string); isString {
		return s
	}
	return raw
}

// Bool returns a boolean value or a default. Besides True/False it accepts
// true/false, yes/no, on/off and 1/0 in any case.
func Bool(m Mapping, key string, defaultValue bool) bool {
	value, _, ok := lookup(m, key)
	if !ok {
		return defaultValue
	}

	switch v := value.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true
		case "false", "no", "off", "0":
			return false
		}
	}
	return defaultValue
}

// Int returns an integer value or a default
func Int(m Mapping, key string, defaultValue int) int {
	value, _, ok := lookup(m, key)
	if !ok {
		return defaultValue
	}
	if n, isInt := value.(int64); isInt {
		return int(n)
	}
	return defaultValue
}

// Duration returns a duration value or a default. Strings are parsed with
// time.ParseDuration; bare integers are seconds.
func Duration(m Mapping, key string, defaultValue time.Duration) time.Duration {
	value, raw, ok := lookup(m, key)
	if !ok {
		return defaultValue
	}

	switch v := value.(type) {
	case int64:
		return time.Duration(v) * time.Second
	case string:
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	if d, err := time.ParseDuration(strings.TrimSpace(raw)); err == nil {
		return d
	}
	return defaultValue
}

// Strings returns a list of strings or a default. List and tuple literals
// are used element by element; any other value is split on commas.
func Strings(m Mapping, key string, defaultValue []string) []string {
	value, raw, ok := lookup(m, key)
	if !ok {
		return defaultValue
	}

	var items []any
	switch v := value.(type) {
	case []any:
		items = v
	case literal.Tuple:
		items = v
	default:
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, isString := item.(string); isString {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprint(item))
		}
	}
	return out
}
