package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	m := Map{
		"PLAIN":  "custom",
		"QUOTED": "'quoted value'",
		"NUMBER": "42",
		"EMPTY":  "",
	}

	assert.Equal(t, "custom", String(m, "PLAIN", "default"))
	assert.Equal(t, "quoted value", String(m, "QUOTED", "default"))
	assert.Equal(t, "42", String(m, "NUMBER", "default"))
	assert.Equal(t, "default", String(m, "EMPTY", "default"))
	assert.Equal(t, "default", String(m, "NOT_SET", "default"))
}

func TestBool(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue bool
		want         bool
	}{
		{name: "literal True", value: "True", want: true},
		{name: "literal False", value: "False", defaultValue: true, want: false},
		{name: "lowercase true", value: "true", want: true},
		{name: "uppercase TRUE", value: "TRUE", want: true},
		{name: "one", value: "1", want: true},
		{name: "zero", value: "0", defaultValue: true, want: false},
		{name: "yes", value: "yes", want: true},
		{name: "off", value: "off", defaultValue: true, want: false},
		{name: "garbage keeps default", value: "maybe", defaultValue: true, want: true},
		{name: "empty keeps default", value: "", defaultValue: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Map{"FLAG": tt.value}
			assert.Equal(t, tt.want, Bool(m, "FLAG", tt.defaultValue))
		})
	}

	assert.True(t, Bool(Map{}, "NOT_SET", true))
}

func TestInt(t *testing.T) {
	m := Map{
		"VALID":   "42",
		"HEX":     "0x10",
		"INVALID": "invalid",
		"FLOAT":   "1.5",
	}

	assert.Equal(t, 42, Int(m, "VALID", 10))
	assert.Equal(t, 16, Int(m, "HEX", 10))
	assert.Equal(t, 10, Int(m, "INVALID", 10))
	assert.Equal(t, 10, Int(m, "FLOAT", 10))
	assert.Equal(t, 10, Int(m, "NOT_SET", 10))
}

func TestDuration(t *testing.T) {
	m := Map{
		"GO_DURATION": "1m30s",
		"SECONDS":     "15",
		"QUOTED":      "'2h'",
		"INVALID":     "soon",
	}

	assert.Equal(t, 90*time.Second, Duration(m, "GO_DURATION", time.Second))
	assert.Equal(t, 15*time.Second, Duration(m, "SECONDS", time.Second))
	assert.Equal(t, 2*time.Hour, Duration(m, "QUOTED", time.Second))
	assert.Equal(t, time.Second, Duration(m, "INVALID", time.Second))
	assert.Equal(t, time.Second, Duration(m, "NOT_SET", time.Second))
}

func TestStrings(t *testing.T) {
	m := Map{
		"LIST":  "['a.example.com', 'b.example.com']",
		"TUPLE": "('x', 1)",
		"CSV":   "a.example.com, b.example.com,",
	}

	assert.Equal(t, []string{"a.example.com", "b.example.com"}, Strings(m, "LIST", nil))
	assert.Equal(t, []string{"x", "1"}, Strings(m, "TUPLE", nil))
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, Strings(m, "CSV", nil))
	assert.Equal(t, []string{"*"}, Strings(m, "NOT_SET", []string{"*"}))
}
