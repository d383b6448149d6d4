// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tidwall/jsonc"
)

// MaxDepth bounds container nesting during parsing. Deeper input is
// rejected rather than risking stack exhaustion on hostile documents.
const MaxDepth = 1000

// Parse parses a complete JSON document into an immutable Value tree.
// The entire input must be consumed: trailing non-whitespace bytes are
// an error. The tree references an internal copy of the input, so the
// caller may reuse data after Parse returns.
func Parse(data []byte) (*Value, error) {
	p := parser{src: string(data)}
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("document: empty input")
	}
	v, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("document: trailing data at offset %d", p.pos)
	}
	return v, nil
}

// ParseJSONC parses a JSONC document (JSON extended with // line
// comments, /* block comments */, and trailing commas). Comments and
// trailing commas are stripped before the strict parse, so error
// offsets refer to the stripped form.
func ParseJSONC(data []byte) (*Value, error) {
	return Parse(jsonc.ToJSON(data))
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("document: "+format+" at offset %d", append(args, p.pos)...)
}

func (p *parser) parseValue(depth int) (*Value, error) {
	if depth > MaxDepth {
		return nil, p.errorf("nesting deeper than %d levels", MaxDepth)
	}
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of input")
	}
	switch c := p.src[p.pos]; {
	case c == '{':
		p.pos++
		return p.parseObject(depth + 1)
	case c == '[':
		p.pos++
		return p.parseArray(depth + 1)
	case c == '"':
		content, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return &Value{kind: KindString, str: content}, nil
	case c == 't':
		if err := p.expect("true"); err != nil {
			return nil, err
		}
		return valueTrue, nil
	case c == 'f':
		if err := p.expect("false"); err != nil {
			return nil, err
		}
		return valueFalse, nil
	case c == 'n':
		if err := p.expect("null"); err != nil {
			return nil, err
		}
		return valueNull, nil
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.errorf("unexpected character %q", c)
	}
}

func (p *parser) expect(literal string) error {
	if len(p.src)-p.pos < len(literal) || p.src[p.pos:p.pos+len(literal)] != literal {
		return p.errorf("invalid literal")
	}
	p.pos += len(literal)
	return nil
}

func (p *parser) parseObject(depth int) (*Value, error) {
	v := &Value{kind: KindObject}
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, p.errorf("unterminated object")
	}
	if p.src[p.pos] == '}' {
		p.pos++
		return v, nil
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != '"' {
			return nil, p.errorf("object key must be a string")
		}
		key, err := p.parseString()
		if err != nil {
			return nil, fmt.Errorf("object key: %w", err)
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			return nil, p.errorf("missing ':' after object key %q", key)
		}
		p.pos++
		p.skipSpace()
		element, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		v.members = append(v.members, Member{Key: key, Value: element})

		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errorf("unterminated object")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return v, nil
		default:
			return nil, p.errorf("expected ',' or '}' in object, got %q", p.src[p.pos])
		}
	}
}

func (p *parser) parseArray(depth int) (*Value, error) {
	v := &Value{kind: KindArray}
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, p.errorf("unterminated array")
	}
	if p.src[p.pos] == ']' {
		p.pos++
		return v, nil
	}
	for {
		p.skipSpace()
		element, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		v.elems = append(v.elems, element)

		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.errorf("unterminated array")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return v, nil
		default:
			return nil, p.errorf("expected ',' or ']' in array, got %q", p.src[p.pos])
		}
	}
}

// parseString parses a quoted string starting at the opening quote
// and returns the unescaped content. The fast path returns a copy of
// the source slice when no escape sequence is present.
func (p *parser) parseString() (string, error) {
	p.pos++ // opening quote
	start := p.pos
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case c == '"':
			content := p.src[start:p.pos]
			p.pos++
			return content, nil
		case c == '\\':
			return p.parseEscapedString(start)
		case c < 0x20:
			return "", p.errorf("control character 0x%02x in string", c)
		default:
			p.pos++
		}
	}
	return "", p.errorf("unterminated string")
}

// parseEscapedString is the slow path: p.pos sits on the first
// backslash, and everything from start up to it is literal.
func (p *parser) parseEscapedString(start int) (string, error) {
	buf := make([]byte, 0, len(p.src)-start)
	buf = append(buf, p.src[start:p.pos]...)
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '"' {
			p.pos++
			return string(buf), nil
		}
		if c < 0x20 {
			return "", p.errorf("control character 0x%02x in string", c)
		}
		if c != '\\' {
			buf = append(buf, c)
			p.pos++
			continue
		}
		p.pos++
		if p.pos >= len(p.src) {
			return "", p.errorf("unterminated escape sequence")
		}
		switch p.src[p.pos] {
		case '"', '\\', '/':
			buf = append(buf, p.src[p.pos])
			p.pos++
		case 'b':
			buf = append(buf, '\b')
			p.pos++
		case 'f':
			buf = append(buf, '\f')
			p.pos++
		case 'n':
			buf = append(buf, '\n')
			p.pos++
		case 'r':
			buf = append(buf, '\r')
			p.pos++
		case 't':
			buf = append(buf, '\t')
			p.pos++
		case 'u':
			r, err := p.parseUnicodeEscape()
			if err != nil {
				return "", err
			}
			buf = utf8.AppendRune(buf, r)
		default:
			return "", p.errorf("invalid escape character %q", p.src[p.pos])
		}
	}
	return "", p.errorf("unterminated string")
}

// parseUnicodeEscape decodes \uXXXX with p.pos on the 'u', handling
// UTF-16 surrogate pairs. Unpaired surrogates are rejected.
func (p *parser) parseUnicodeEscape() (rune, error) {
	first, err := p.hex4(p.pos + 1)
	if err != nil {
		return 0, err
	}
	p.pos += 5
	if !utf16.IsSurrogate(first) {
		return first, nil
	}
	if first >= 0xDC00 {
		return 0, p.errorf("unpaired low surrogate \\u%04x", first)
	}
	if len(p.src)-p.pos < 6 || p.src[p.pos] != '\\' || p.src[p.pos+1] != 'u' {
		return 0, p.errorf("missing low surrogate after \\u%04x", first)
	}
	second, err := p.hex4(p.pos + 2)
	if err != nil {
		return 0, err
	}
	combined := utf16.DecodeRune(first, second)
	if combined == utf8.RuneError {
		return 0, p.errorf("invalid surrogate pair \\u%04x\\u%04x", first, second)
	}
	p.pos += 6
	return combined, nil
}

func (p *parser) hex4(at int) (rune, error) {
	if len(p.src)-at < 4 {
		return 0, p.errorf("truncated unicode escape")
	}
	var r rune
	for i := range 4 {
		c := p.src[at+i]
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			r |= rune(c - 'A' + 10)
		default:
			return 0, p.errorf("invalid unicode escape")
		}
	}
	return r, nil
}

// parseNumber validates a JSON number grammar and stores the raw
// literal. Conversion to a concrete width happens lazily in the
// Value accessors.
func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	if p.src[p.pos] == '-' {
		p.pos++
	}
	switch {
	case p.pos >= len(p.src):
		return nil, p.errorf("unexpected end of number")
	case p.src[p.pos] == '0':
		p.pos++
	case p.src[p.pos] >= '1' && p.src[p.pos] <= '9':
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
	default:
		return nil, p.errorf("invalid number character %q", p.src[p.pos])
	}
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		if p.pos >= len(p.src) || p.src[p.pos] < '0' || p.src[p.pos] > '9' {
			return nil, p.errorf("missing digit after decimal point")
		}
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
	}
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		if p.pos >= len(p.src) || p.src[p.pos] < '0' || p.src[p.pos] > '9' {
			return nil, p.errorf("missing digit in exponent")
		}
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
	}
	return &Value{kind: KindNumber, literal: p.src[start:p.pos]}, nil
}
