package env

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredKey is returned by Get when a required key is absent
var ErrMissingRequiredKey = errors.New("required key missing")

// MissingKeyError names the required key that was absent.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("Required key '%s' missing", e.Key)
}

func (e *MissingKeyError) Unwrap() error {
	return ErrMissingRequiredKey
}
