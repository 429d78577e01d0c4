// Package observability builds the logrus loggers used by the envurl CLI.
//
// # Structured Logging
//
// Create logger:
//
//	log := observability.NewLogger(observability.ParseLogLevel("debug"), observability.FormatJSON, os.Stderr)
//	log.Warnf("%s not a file, not reading anything", ".env")
//
// The text format omits timestamps so CLI output stays stable; the JSON
// format is meant for log collectors.
package observability
