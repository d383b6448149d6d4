// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// WriterConfig controls the text form a Writer produces. The zero
// value means compact output (no indentation) with shortest-form
// floats, which round-trip bit-exactly through ParseFloat.
type WriterConfig struct {
	// Precision caps the number of significant digits used for
	// float64 values. Zero selects the shortest representation that
	// parses back to the identical float64.
	Precision int

	// IndentChar is the character used for indentation, typically
	// ' ' or '\t'. Ignored when IndentWidth is zero; defaults to ' '.
	IndentChar byte

	// IndentWidth is the number of IndentChar repetitions per nesting
	// level. Zero disables pretty-printing entirely.
	IndentWidth int
}

// Writer appends JSON tokens to a buffer, flushed to an io.Writer on
// demand. It is a token-level writer: the caller supplies boundaries,
// keys, and scalars in document order, and the Writer owns commas,
// colons, newlines, and indentation.
//
// Contract: inside an object, every value token must be preceded by a
// Key call; inside an array, Key must not be called. The Writer does
// not verify this — the archive emitter above it guarantees it.
type Writer struct {
	out    io.Writer
	buf    []byte
	config WriterConfig
	levels []writerLevel
}

type writerLevel struct {
	array bool
	count int // children written at this level
}

// NewWriter returns a Writer appending to out. A nil out is allowed
// when the caller only wants Bytes.
func NewWriter(out io.Writer, config WriterConfig) *Writer {
	if config.IndentChar == 0 {
		config.IndentChar = ' '
	}
	return &Writer{out: out, config: config}
}

// Bytes returns the tokens buffered so far. The slice is invalidated
// by the next write or Flush.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Flush writes the buffered output to the underlying io.Writer and
// resets the buffer.
func (w *Writer) Flush() error {
	if w.out == nil || len(w.buf) == 0 {
		return nil
	}
	if _, err := w.out.Write(w.buf); err != nil {
		return fmt.Errorf("document: flush: %w", err)
	}
	w.buf = w.buf[:0]
	return nil
}

// BeginObject opens an object container.
func (w *Writer) BeginObject() {
	w.beforeValue()
	w.buf = append(w.buf, '{')
	w.levels = append(w.levels, writerLevel{})
}

// BeginArray opens an array container.
func (w *Writer) BeginArray() {
	w.beforeValue()
	w.buf = append(w.buf, '[')
	w.levels = append(w.levels, writerLevel{array: true})
}

// EndObject closes the innermost container, which must be an object.
func (w *Writer) EndObject() {
	w.endContainer('}')
}

// EndArray closes the innermost container, which must be an array.
func (w *Writer) EndArray() {
	w.endContainer(']')
}

func (w *Writer) endContainer(closing byte) {
	level := w.levels[len(w.levels)-1]
	w.levels = w.levels[:len(w.levels)-1]
	// Empty containers close on the same line: {} and [].
	if level.count > 0 {
		w.newlineIndent()
	}
	w.buf = append(w.buf, closing)
}

// Key writes the member key for the next value in the current object.
func (w *Writer) Key(name string) {
	level := &w.levels[len(w.levels)-1]
	if level.count > 0 {
		w.buf = append(w.buf, ',')
	}
	level.count++
	w.newlineIndent()
	w.appendQuoted(name)
	w.buf = append(w.buf, ':')
	if w.config.IndentWidth > 0 {
		w.buf = append(w.buf, ' ')
	}
}

// Bool writes a boolean scalar.
func (w *Writer) Bool(b bool) {
	w.beforeValue()
	if b {
		w.buf = append(w.buf, "true"...)
	} else {
		w.buf = append(w.buf, "false"...)
	}
}

// Int64 writes a signed integer scalar.
func (w *Writer) Int64(n int64) {
	w.beforeValue()
	w.buf = strconv.AppendInt(w.buf, n, 10)
}

// Uint64 writes an unsigned integer scalar.
func (w *Writer) Uint64(n uint64) {
	w.beforeValue()
	w.buf = strconv.AppendUint(w.buf, n, 10)
}

// Float64 writes a floating point scalar using the configured
// precision. NaN and infinities have no JSON representation and are
// written as null.
func (w *Writer) Float64(f float64) {
	w.beforeValue()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		w.buf = append(w.buf, "null"...)
		return
	}
	precision := -1
	if w.config.Precision > 0 {
		precision = w.config.Precision
	}
	w.buf = strconv.AppendFloat(w.buf, f, 'g', precision, 64)
}

// String writes a string scalar with JSON escaping.
func (w *Writer) String(s string) {
	w.beforeValue()
	w.appendQuoted(s)
}

// Null writes a null scalar.
func (w *Writer) Null() {
	w.beforeValue()
	w.buf = append(w.buf, "null"...)
}

// Number writes a pre-validated number literal verbatim. Used when
// re-serializing a parsed tree, where the literal is already known to
// satisfy the JSON number grammar.
func (w *Writer) Number(literal string) {
	w.beforeValue()
	w.buf = append(w.buf, literal...)
}

// WriteValue re-serializes a parsed tree through the token interface,
// preserving member order and number literals.
func (w *Writer) WriteValue(v *Value) {
	switch v.Kind() {
	case KindNull:
		w.Null()
	case KindBool:
		w.Bool(v.Bool())
	case KindNumber:
		w.Number(v.NumberLiteral())
	case KindString:
		w.String(v.Str())
	case KindArray:
		w.BeginArray()
		for _, element := range v.Elements() {
			w.WriteValue(element)
		}
		w.EndArray()
	case KindObject:
		w.BeginObject()
		for _, member := range v.Members() {
			w.Key(member.Key)
			w.WriteValue(member.Value)
		}
		w.EndObject()
	}
}

// beforeValue emits the separator owed before a value token: commas
// and line breaks between array elements. Object members are handled
// by Key, and the value following a Key attaches directly to it.
func (w *Writer) beforeValue() {
	if len(w.levels) == 0 {
		return // root value
	}
	level := &w.levels[len(w.levels)-1]
	if !level.array {
		return
	}
	if level.count > 0 {
		w.buf = append(w.buf, ',')
	}
	level.count++
	w.newlineIndent()
}

// newlineIndent breaks the line and indents to the current depth.
// No-op in compact mode.
func (w *Writer) newlineIndent() {
	if w.config.IndentWidth == 0 {
		return
	}
	w.buf = append(w.buf, '\n')
	for range len(w.levels) * w.config.IndentWidth {
		w.buf = append(w.buf, w.config.IndentChar)
	}
}

// appendQuoted writes s as a quoted JSON string. The common case of a
// string with no characters needing escape is appended in one copy.
func (w *Writer) appendQuoted(s string) {
	w.buf = append(w.buf, '"')
	clean := true
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c == '"' || c == '\\' {
			clean = false
			break
		}
	}
	if clean {
		w.buf = append(w.buf, s...)
		w.buf = append(w.buf, '"')
		return
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			w.buf = append(w.buf, '\\', '"')
		case c == '\\':
			w.buf = append(w.buf, '\\', '\\')
		case c == '\n':
			w.buf = append(w.buf, '\\', 'n')
		case c == '\r':
			w.buf = append(w.buf, '\\', 'r')
		case c == '\t':
			w.buf = append(w.buf, '\\', 't')
		case c < 0x20:
			const hexDigits = "0123456789abcdef"
			w.buf = append(w.buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		default:
			w.buf = append(w.buf, c)
		}
	}
	w.buf = append(w.buf, '"')
}
