package literal

import (
	"errors"
	"strconv"
	"strings"
)

// Tuple is a decoded tuple literal such as (1, 2) or 1, 2.
type Tuple []any

// Decode interprets s as a single literal. Leading and trailing whitespace is
// ignored; any other text around the literal is an error.
func Decode(s string) (any, error) {
	p := &parser{scanner: NewScanner(s)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.Type == TokenEOF {
		return nil, syntaxError(p.tok.Pos, "empty literal")
	}

	value, err := p.parseTopLevel()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != TokenEOF {
		return nil, syntaxError(p.tok.Pos, "unexpected %q after literal", p.tok.Text)
	}
	return value, nil
}

// DecodeOrRaw returns the decoded literal, or s itself when s is not a literal.
func DecodeOrRaw(s string) any {
	value, err := Decode(s)
	if err != nil {
		return s
	}
	return value
}

type parser struct {
	scanner *Scanner
	tok     Token
}

func (p *parser) advance() error {
	tok, err := p.scanner.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) isPunct(text string) bool {
	return p.tok.Type == TokenPunctuation && p.tok.Text == text
}

// parseTopLevel accepts a bare comma-separated list, which decodes to a Tuple
func (p *parser) parseTopLevel() (any, error) {
	first, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if !p.isPunct(",") {
		return first, nil
	}

	items := Tuple{first}
	for p.isPunct(",") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Type == TokenEOF {
			break
		}
		item, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (p *parser) parseValue() (any, error) {
	tok := p.tok

	switch tok.Type {
	case TokenNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return parseNumber(tok)

	case TokenString:
		// Adjacent string literals concatenate.
		var sb strings.Builder
		for p.tok.Type == TokenString {
			sb.WriteString(p.tok.Value)
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		return sb.String(), nil

	case TokenName:
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch tok.Text {
		case "True":
			return true, nil
		case "False":
			return false, nil
		case "None":
			return nil, nil
		}
		return nil, valueError(tok.Pos, "name %q is not a literal", tok.Text)

	case TokenPunctuation:
		switch tok.Text {
		case "+", "-":
			return p.parseSigned()
		case "[":
			items, _, err := p.parseElements("]")
			if err != nil {
				return nil, err
			}
			return items, nil
		case "(":
			items, sawComma, err := p.parseElements(")")
			if err != nil {
				return nil, err
			}
			if len(items) == 1 && !sawComma {
				return items[0], nil
			}
			return Tuple(items), nil
		case "{":
			return p.parseDict()
		}

	case TokenEOF:
		return nil, syntaxError(tok.Pos, "unexpected end of literal")
	}

	return nil, syntaxError(tok.Pos, "unexpected %q", tok.Text)
}

// parseSigned handles a unary sign, which is only allowed in front of a number
func (p *parser) parseSigned() (any, error) {
	sign := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	switch p.tok.Type {
	case TokenNumber:
	case TokenEOF:
		return nil, syntaxError(p.tok.Pos, "unexpected end of literal")
	default:
		return nil, valueError(sign.Pos, "sign must be followed by a number")
	}

	tok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := parseNumber(tok)
	if err != nil {
		return nil, err
	}
	if sign.Text == "-" {
		switch v := n.(type) {
		case int64:
			return -v, nil
		case float64:
			return -v, nil
		}
	}
	return n, nil
}

// parseElements parses a bracketed, comma-separated sequence. The opening
// bracket is the current token.
func (p *parser) parseElements(closer string) ([]any, bool, error) {
	if err := p.advance(); err != nil {
		return nil, false, err
	}

	items := []any{}
	sawComma := false
	for !p.isPunct(closer) {
		item, err := p.parseValue()
		if err != nil {
			return nil, false, err
		}
		items = append(items, item)

		if p.isPunct(",") {
			sawComma = true
			if err := p.advance(); err != nil {
				return nil, false, err
			}
			continue
		}
		if !p.isPunct(closer) {
			return nil, false, p.expected(closer)
		}
	}

	if err := p.advance(); err != nil {
		return nil, false, err
	}
	return items, sawComma, nil
}

func (p *parser) parseDict() (any, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	dict := map[any]any{}
	for !p.isPunct("}") {
		keyPos := p.tok.Pos
		key, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if !p.isPunct(":") {
			if p.isPunct(",") || p.isPunct("}") {
				return nil, valueError(keyPos, "set literals are not supported")
			}
			return nil, p.expected(":")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if !isHashable(key) {
			return nil, valueError(keyPos, "unhashable dictionary key")
		}
		dict[key] = value

		if p.isPunct(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if !p.isPunct("}") {
			return nil, p.expected("}")
		}
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	return dict, nil
}

func (p *parser) expected(what string) error {
	if p.tok.Type == TokenEOF {
		return syntaxError(p.tok.Pos, "expected %q, got end of literal", what)
	}
	return syntaxError(p.tok.Pos, "expected %q, got %q", what, p.tok.Text)
}

func isHashable(v any) bool {
	switch v.(type) {
	case nil, bool, int64, float64, string:
		return true
	}
	return false
}

// parseNumber converts a number token to int64 or float64
func parseNumber(tok Token) (any, error) {
	text := tok.Text
	lower := strings.ToLower(text)

	if len(lower) > 1 && lower[0] == '0' && strings.ContainsRune("xob", rune(lower[1])) {
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, numberError(tok, err)
		}
		return n, nil
	}

	if strings.ContainsAny(lower, ".e") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			// Out of range floats saturate to infinity.
			if errors.Is(err, strconv.ErrRange) {
				return f, nil
			}
			return nil, numberError(tok, err)
		}
		return f, nil
	}

	digits := strings.ReplaceAll(text, "_", "")
	if len(digits) > 1 && digits[0] == '0' && strings.Trim(digits, "0") != "" {
		return nil, syntaxError(tok.Pos, "leading zeros in decimal integer literals are not permitted")
	}
	n, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return nil, numberError(tok, err)
	}
	return n, nil
}

func numberError(tok Token, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return valueError(tok.Pos, "integer literal %s out of range", tok.Text)
	}
	return syntaxError(tok.Pos, "invalid number %q", tok.Text)
}
