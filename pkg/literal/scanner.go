package literal

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the type of token
type TokenType string

const (
	TokenName        TokenType = "NAME"
	TokenString      TokenType = "STRING"
	TokenNumber      TokenType = "NUMBER"
	TokenPunctuation TokenType = "PUNCTUATION"
	TokenEOF         TokenType = "EOF"
)

// Token represents a lexical token
type Token struct {
	Type TokenType
	Text string // source text of the token
	// Value holds the unescaped contents of a TokenString
	Value string
	Pos   int
}

// Scanner represents a lexical scanner for literal expressions
type Scanner struct {
	src      string
	ch       rune // current character, -1 at end of input
	offset   int  // byte offset of ch
	rdOffset int  // byte offset after ch
}

// NewScanner creates a new Scanner
func NewScanner(src string) *Scanner {
	s := &Scanner{src: src}
	s.next()
	return s
}

// next reads the next Unicode character into s.ch
func (s *Scanner) next() {
	if s.rdOffset >= len(s.src) {
		s.offset = len(s.src)
		s.ch = -1
		return
	}
	r, size := utf8.DecodeRuneInString(s.src[s.rdOffset:])
	s.offset = s.rdOffset
	s.rdOffset += size
	s.ch = r
}

// peek returns the character after s.ch without advancing
func (s *Scanner) peek() rune {
	if s.rdOffset >= len(s.src) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.rdOffset:])
	return r
}

// skipWhitespace skips whitespace characters
func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\f' || s.ch == '\r' || s.ch == '\n' {
		s.next()
	}
}

// Next returns the next token from the input
func (s *Scanner) Next() (Token, error) {
	s.skipWhitespace()
	pos := s.offset

	switch {
	case s.ch == -1:
		return Token{Type: TokenEOF, Pos: pos}, nil

	case s.ch == '"' || s.ch == '\'':
		value, err := s.scanString(false)
		if err != nil {
			return Token{}, err
		}
		return Token{Type: TokenString, Text: s.src[pos:s.offset], Value: value, Pos: pos}, nil

	case isDigit(s.ch) || (s.ch == '.' && isDigit(s.peek())):
		text := s.scanNumber()
		return Token{Type: TokenNumber, Text: text, Pos: pos}, nil

	case isNameStart(s.ch):
		name := s.scanName()
		if (s.ch == '"' || s.ch == '\'') && isStringPrefix(name) {
			value, err := s.scanString(strings.ContainsAny(name, "rR"))
			if err != nil {
				return Token{}, err
			}
			return Token{Type: TokenString, Text: s.src[pos:s.offset], Value: value, Pos: pos}, nil
		}
		return Token{Type: TokenName, Text: name, Pos: pos}, nil

	case strings.ContainsRune("[](){}:,+-", s.ch):
		ch := s.ch
		s.next()
		return Token{Type: TokenPunctuation, Text: string(ch), Pos: pos}, nil
	}

	return Token{}, syntaxError(pos, "unexpected character %q", s.ch)
}

// scanName scans an identifier
func (s *Scanner) scanName() string {
	start := s.offset
	for isNameStart(s.ch) || isDigit(s.ch) {
		s.next()
	}
	return s.src[start:s.offset]
}

// scanNumber scans everything that may belong to a numeric literal. Validation
// happens when the token is converted.
func (s *Scanner) scanNumber() string {
	start := s.offset
	for isDigit(s.ch) || isLetter(s.ch) || s.ch == '_' || s.ch == '.' {
		prev := s.ch
		s.next()
		if (prev == 'e' || prev == 'E') && (s.ch == '+' || s.ch == '-') {
			s.next()
		}
	}
	return s.src[start:s.offset]
}

// scanString scans a quoted string starting at the opening quote
func (s *Scanner) scanString(raw bool) (string, error) {
	pos := s.offset
	quote := s.ch
	s.next()

	var sb strings.Builder
	for s.ch != quote {
		switch s.ch {
		case -1, '\n':
			return "", syntaxError(pos, "unterminated string literal")
		case '\\':
			s.next()
			if s.ch == -1 {
				return "", syntaxError(pos, "unterminated string literal")
			}
			if raw {
				sb.WriteRune('\\')
				sb.WriteRune(s.ch)
				s.next()
				continue
			}
			if err := s.scanEscape(&sb); err != nil {
				return "", err
			}
		default:
			sb.WriteRune(s.ch)
			s.next()
		}
	}
	s.next() // closing quote

	return sb.String(), nil
}

var simpleEscapes = map[rune]rune{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

// scanEscape decodes the escape sequence whose backslash was just consumed
func (s *Scanner) scanEscape(sb *strings.Builder) error {
	pos := s.offset - 1

	if r, ok := simpleEscapes[s.ch]; ok {
		sb.WriteRune(r)
		s.next()
		return nil
	}

	switch {
	case s.ch >= '0' && s.ch <= '7':
		var v rune
		for i := 0; i < 3 && s.ch >= '0' && s.ch <= '7'; i++ {
			v = v*8 + (s.ch - '0')
			s.next()
		}
		sb.WriteRune(v)
		return nil

	case s.ch == 'x' || s.ch == 'u' || s.ch == 'U':
		digits := map[rune]int{'x': 2, 'u': 4, 'U': 8}[s.ch]
		kind := s.ch
		s.next()
		var v rune
		for i := 0; i < digits; i++ {
			d := hexValue(s.ch)
			if d < 0 {
				return syntaxError(pos, "truncated \\%c escape", kind)
			}
			v = v*16 + rune(d)
			s.next()
		}
		if v > unicode.MaxRune {
			return syntaxError(pos, "illegal Unicode character in \\%c escape", kind)
		}
		sb.WriteRune(v)
		return nil
	}

	// Unknown escapes are kept as written.
	sb.WriteRune('\\')
	sb.WriteRune(s.ch)
	s.next()
	return nil
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNameStart(ch rune) bool {
	return ch == '_' || isLetter(ch) || (ch >= utf8.RuneSelf && unicode.IsLetter(ch))
}

func isStringPrefix(name string) bool {
	switch name {
	case "r", "R", "u", "U":
		return true
	}
	return false
}

func hexValue(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	}
	return -1
}
