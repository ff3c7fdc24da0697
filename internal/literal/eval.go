// Package literal evaluates the value expressions stored in profile
// documents: quoted strings, numbers, booleans, null, lists, and string-keyed
// mappings, in both brace and bracket notation. It is deliberately not a
// general expression language; anything beyond a self-contained value is an
// evaluation error.
package literal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// InvalidLiteralError reports literal text that could not be evaluated.
// It carries the offending literal for diagnostics.
type InvalidLiteralError struct {
	Literal string
	Offset  int
	Reason  string
}

func (e *InvalidLiteralError) Error() string {
	return fmt.Sprintf("invalid literal %q at offset %d: %s", e.Literal, e.Offset, e.Reason)
}

// Eval evaluates a literal expression into a typed value. The result is one
// of string, int64, float64, bool, nil, []any, or map[string]any.
//
// An empty (or all-whitespace) literal denotes the empty string. The text
// "null" denotes the null value, which is distinct from both the empty
// string and a missing entry.
func Eval(literal string) (any, error) {
	p := &parser{input: literal}
	p.skipSpace()

	if p.eof() {
		return "", nil
	}

	v, err := p.value()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected trailing characters")
	}

	return v, nil
}

// parser is a recursive-descent parser over a single literal expression.
type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// errorf builds an InvalidLiteralError at the current position.
func (p *parser) errorf(format string, args ...any) error {
	return &InvalidLiteralError{
		Literal: p.input,
		Offset:  p.pos,
		Reason:  fmt.Sprintf(format, args...),
	}
}

// value parses a single value at the current position.
func (p *parser) value() (any, error) {
	p.skipSpace()

	if p.eof() {
		return nil, p.errorf("expected a value")
	}

	switch c := p.peek(); {
	case c == '\'' || c == '"':
		return p.str(c)
	case c == '[':
		return p.bracket()
	case c == '{':
		return p.mapping()
	case c == '-' || c == '+' || c >= '0' && c <= '9':
		return p.number()
	default:
		return p.bareword()
	}
}

// str parses a quoted string using the given quote character.
func (p *parser) str(quote byte) (string, error) {
	p.pos++ // opening quote

	var b strings.Builder
	for !p.eof() {
		c := p.input[p.pos]

		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\\':
			r, err := p.escape()
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
		default:
			r, size := utf8.DecodeRuneInString(p.input[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}

	return "", p.errorf("unterminated string")
}

// escape parses a backslash escape sequence inside a quoted string.
func (p *parser) escape() (rune, error) {
	p.pos++ // backslash
	if p.eof() {
		return 0, p.errorf("unterminated escape sequence")
	}

	c := p.input[p.pos]
	p.pos++

	switch c {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case '\\', '\'', '"', '/', '$':
		return rune(c), nil
	case 'u':
		return p.unicodeEscape()
	default:
		p.pos--
		return 0, p.errorf("unknown escape sequence \\%c", c)
	}
}

// unicodeEscape parses the four hex digits of a \uXXXX escape. Surrogate
// pairs are combined into a single rune.
func (p *parser) unicodeEscape() (rune, error) {
	r, err := p.hex4()
	if err != nil {
		return 0, err
	}

	if utf16.IsSurrogate(r) && p.pos+1 < len(p.input) && p.input[p.pos] == '\\' && p.input[p.pos+1] == 'u' {
		p.pos += 2
		r2, err := p.hex4()
		if err != nil {
			return 0, err
		}
		if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
			return combined, nil
		}
	}

	return r, nil
}

func (p *parser) hex4() (rune, error) {
	if p.pos+4 > len(p.input) {
		return 0, p.errorf("truncated \\u escape")
	}

	n, err := strconv.ParseUint(p.input[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, p.errorf("invalid \\u escape")
	}

	p.pos += 4
	return rune(n), nil
}

// number parses an integer or floating-point literal. Integers that fit in
// int64 stay integral; everything else becomes float64.
func (p *parser) number() (any, error) {
	start := p.pos

	if c := p.peek(); c == '-' || c == '+' {
		p.pos++
	}

	digits := 0
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
		digits++
	}
	if digits == 0 {
		return nil, p.errorf("expected digits")
	}

	isFloat := false
	if p.peek() == '.' {
		isFloat = true
		p.pos++
		for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
			p.pos++
		}
	}
	if c := p.peek(); c == 'e' || c == 'E' {
		isFloat = true
		p.pos++
		if c := p.peek(); c == '-' || c == '+' {
			p.pos++
		}
		expDigits := 0
		for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
			p.pos++
			expDigits++
		}
		if expDigits == 0 {
			return nil, p.errorf("malformed exponent")
		}
	}

	text := p.input[start:p.pos]

	if !isFloat {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return n, nil
		}
		// Out of int64 range; fall through to float.
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorf("malformed number %q", text)
	}

	return f, nil
}

// bareword parses true, false, or null. Any other identifier is an error:
// literals may not reference variables.
func (p *parser) bareword() (any, error) {
	word, ok := p.identifier()
	if !ok {
		return nil, p.errorf("unexpected character %q", p.peek())
	}

	switch word {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	default:
		p.pos -= len(word)
		return nil, p.errorf("unknown identifier %q", word)
	}
}

// identifier reads a letter-initial run of letters, digits, and underscores.
func (p *parser) identifier() (string, bool) {
	start := p.pos

	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if unicode.IsLetter(r) || r == '_' || (p.pos > start && unicode.IsDigit(r)) {
			p.pos += size
			continue
		}
		break
	}

	if p.pos == start {
		return "", false
	}

	return p.input[start:p.pos], true
}

// bracket parses the forms that begin with '[': a list, an empty mapping
// "[:]", or a bracket mapping "[key: value, ...]".
func (p *parser) bracket() (any, error) {
	p.pos++ // '['
	p.skipSpace()

	if p.peek() == ':' {
		p.pos++
		p.skipSpace()
		if p.peek() != ']' {
			return nil, p.errorf("expected ']' after '[:'")
		}
		p.pos++
		return map[string]any{}, nil
	}

	if p.peek() == ']' {
		p.pos++
		return []any{}, nil
	}

	if key, ok := p.tryKey(); ok {
		return p.mapEntries(key, ']')
	}

	return p.listEntries()
}

// tryKey attempts to read a "key:" prefix (bareword or quoted key followed
// by a colon). On failure the position is restored and ok is false.
func (p *parser) tryKey() (string, bool) {
	save := p.pos

	key, ok := p.key()
	if !ok {
		p.pos = save
		return "", false
	}

	p.skipSpace()
	if p.peek() != ':' {
		p.pos = save
		return "", false
	}
	p.pos++ // ':'

	return key, true
}

// key reads a mapping key: a bareword identifier or a quoted string.
func (p *parser) key() (string, bool) {
	if c := p.peek(); c == '\'' || c == '"' {
		key, err := p.str(c)
		if err != nil {
			return "", false
		}
		return key, true
	}

	return p.identifier()
}

// mapping parses a brace mapping "{key: value, ...}".
func (p *parser) mapping() (any, error) {
	p.pos++ // '{'
	p.skipSpace()

	if p.peek() == '}' {
		p.pos++
		return map[string]any{}, nil
	}

	key, ok := p.tryKey()
	if !ok {
		return nil, p.errorf("expected a mapping key")
	}

	return p.mapEntries(key, '}')
}

// mapEntries parses the remainder of a mapping after its first key has been
// consumed. Duplicate keys are last-wins.
func (p *parser) mapEntries(firstKey string, closer byte) (any, error) {
	result := map[string]any{}

	key := firstKey
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		result[key] = v

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			p.skipSpace()
			next, ok := p.tryKey()
			if !ok {
				return nil, p.errorf("expected a mapping key")
			}
			key = next
		case closer:
			p.pos++
			return result, nil
		default:
			return nil, p.errorf("expected ',' or %q in mapping", string(closer))
		}
	}
}

// listEntries parses the remainder of a list after '[' has been consumed.
func (p *parser) listEntries() (any, error) {
	var result []any

	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		result = append(result, v)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return result, nil
		default:
			return nil, p.errorf("expected ',' or ']' in list")
		}
	}
}
