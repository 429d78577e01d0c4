package literal

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned when the input is not well-formed literal syntax
	ErrSyntax = errors.New("invalid literal syntax")

	// ErrValue is returned when the input parses but is not an accepted literal,
	// such as a bare name or an unhashable dictionary key
	ErrValue = errors.New("malformed literal")
)

// Error describes where decoding failed. It unwraps to ErrSyntax or ErrValue.
type Error struct {
	Kind error
	Pos  int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Pos, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func syntaxError(pos int, format string, args ...interface{}) error {
	return &Error{Kind: ErrSyntax, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func valueError(pos int, format string, args ...interface{}) error {
	return &Error{Kind: ErrValue, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
