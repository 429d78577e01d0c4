// Package literal decodes configuration strings that are written as simple
// literals.
//
// # Overview
//
// Values read from the environment are plain strings. This package interprets
// a string as a literal when the whole string matches a small, side-effect-free
// grammar, and leaves it alone otherwise:
//
//	42            -> int64(42)
//	0x1f          -> int64(31)
//	1_000.5       -> float64(1000.5)
//	True / False  -> bool
//	None          -> nil
//	'text'        -> "text"
//	['*']         -> []any{"*"}
//	(1, 2)        -> literal.Tuple{int64(1), int64(2)}
//	1, 2          -> literal.Tuple{int64(1), int64(2)}
//	{'a': 1}      -> map[any]any{"a": int64(1)}
//
// Anything that is not a complete literal is an error. DecodeOrRaw turns that
// error into the original string, which is what configuration accessors want:
//
//	literal.DecodeOrRaw("postgres://localhost/db") // "postgres://localhost/db"
//	literal.DecodeOrRaw("42 # answer")             // "42 # answer"
//
// Inline comments are not recognized. A '#' anywhere in a value makes it
// non-literal, so the value is returned verbatim.
//
// # Limits
//
// Integers are 64-bit; literals that overflow are rejected. Dictionary keys
// must be scalars (strings, numbers, booleans or None). Set literals, bytes
// literals, complex numbers and any kind of expression are rejected.
package literal
