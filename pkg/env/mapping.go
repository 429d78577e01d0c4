package env

import (
	"fmt"
	"os"
)

// Mapping is a mutable string-to-string store that configuration is loaded
// into and read from.
type Mapping interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
}

type osMapping struct{}

// OS returns the process environment as a Mapping.
func OS() Mapping {
	return osMapping{}
}

func (osMapping) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osMapping) Set(key, value string) error {
	return os.Setenv(key, value)
}

// Map is an in-memory Mapping. It is not safe for concurrent use.
type Map map[string]string

// NewMap creates an empty Map
func NewMap() Map {
	return make(Map)
}

// Lookup implements Mapping.Lookup
func (m Map) Lookup(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

// Set implements Mapping.Set
func (m Map) Set(key, value string) error {
	m[key] = value
	return nil
}

// SetDefault stores value under key only if key is not present yet. It
// reports whether the value was stored.
func SetDefault(m Mapping, key, value string) (bool, error) {
	if _, ok := m.Lookup(key); ok {
		return false, nil
	}
	if err := m.Set(key, value); err != nil {
		return false, fmt.Errorf("failed to set %s: %w", key, err)
	}
	return true, nil
}
