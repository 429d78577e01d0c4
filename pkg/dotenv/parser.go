package dotenv

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseOptions selects the dialect of the file format
type ParseOptions struct {
	// StripQuotes removes one layer of matching quotes around a value when the
	// whole value is quoted. Without it, quotes are kept and left to literal
	// decoding at read time.
	StripQuotes bool
	// SkipUnterminated ignores a last line without a trailing newline. A
	// file that is still being written may end in a cut-off value.
	SkipUnterminated bool
}

// Directive is one KEY=VALUE line
type Directive struct {
	Key   string
	Value string
	Line  int
}

// ParseLine splits a single line into key and value. It reports false for
// blank lines, comment lines, lines without '=' and lines with an empty key.
func ParseLine(line string, opts ParseOptions) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.Trim(key, " \t")
	value = strings.Trim(value, " \t")
	if key == "" {
		return "", "", false
	}

	if opts.StripQuotes {
		value = unquote(value)
	}
	return key, value, true
}

// Parse reads all directives from r in file order. Lines may be of any
// length.
func Parse(r io.Reader, opts ParseOptions) ([]Directive, error) {
	reader := bufio.NewReader(r)

	var directives []Directive
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read line %d: %w", lineNo+1, err)
		}
		if line == "" {
			break
		}
		lineNo++

		if err == io.EOF && opts.SkipUnterminated {
			break
		}
		if key, value, ok := ParseLine(line, opts); ok {
			directives = append(directives, Directive{Key: key, Value: value, Line: lineNo})
		}
		if err == io.EOF {
			break
		}
	}

	return directives, nil
}

// unquote strips one layer of quotes when the whole value is a single quoted
// string, that is when the first unescaped matching quote after the opening
// one is the last character
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	quote := value[0]
	if quote != '"' && quote != '\'' {
		return value
	}
	for i := 1; i < len(value); i++ {
		switch value[i] {
		case '\\':
			i++
		case quote:
			if i == len(value)-1 {
				return value[1:i]
			}
			return value
		}
	}
	return value
}
