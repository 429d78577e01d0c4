package urlconf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownScheme is returned when a URL scheme has no backend in its category
	ErrUnknownScheme = errors.New("unknown scheme")

	// ErrInvalidURL is returned when a URL has a recognized scheme but cannot be decoded
	ErrInvalidURL = errors.New("invalid URL")
)

// RedactionPlaceholder replaces passwords in URLs quoted by errors
const RedactionPlaceholder = "[REDACTED]"

// RedactURL hides the password part of a URL's userinfo
func RedactURL(s string) string {
	u := splitURL(s)
	if !u.hasPassword {
		return s
	}
	userinfo, hostinfo := splitUserinfo(u.netloc)
	user, _, _ := strings.Cut(userinfo, ":")
	return strings.Replace(s, u.netloc, user+":"+RedactionPlaceholder+"@"+hostinfo, 1)
}

// UnknownSchemeError reports a scheme that is not registered for a category
type UnknownSchemeError struct {
	Category string
	Scheme   string
}

func (e *UnknownSchemeError) Error() string {
	return fmt.Sprintf("%s: unknown scheme %q", e.Category, e.Scheme)
}

func (e *UnknownSchemeError) Unwrap() error {
	return ErrUnknownScheme
}

// InvalidURLError reports a URL that cannot be decoded. URL is redacted.
type InvalidURLError struct {
	URL    string
	Reason string
	Err    error
}

func newInvalidURLError(raw, reason string, err error) *InvalidURLError {
	return &InvalidURLError{URL: RedactURL(raw), Reason: reason, Err: err}
}

func (e *InvalidURLError) Error() string {
	msg := fmt.Sprintf("invalid URL %q: %s", e.URL, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrInvalidURL and the underlying cause, if any
func (e *InvalidURLError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidURL, e.Err}
	}
	return []error{ErrInvalidURL}
}
