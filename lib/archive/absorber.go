// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"fmt"
	"io"
	"math"
	"math/big"

	"github.com/bureau-foundation/archive/lib/document"
)

// cursor is a bounded position over the children of one compound
// node. For objects it walks members in declaration order; for arrays
// it walks elements. The underlying tree is never mutated.
type cursor struct {
	node *document.Value
	pos  int
}

func (c *cursor) exhausted() bool {
	return c.pos >= c.node.Len()
}

// key returns the member key at the current position, or "" inside an
// array level.
func (c *cursor) key() string {
	members := c.node.Members()
	if members == nil {
		return ""
	}
	return members[c.pos].Key
}

func (c *cursor) value() *document.Value {
	if members := c.node.Members(); members != nil {
		return members[c.pos].Value
	}
	return c.node.Elements()[c.pos]
}

// Absorber reads values back out of a parsed JSON document. The whole
// input is parsed eagerly at construction; every read after that is a
// cursor movement over the immutable tree.
//
// Reads need not follow document order: a name set with SetNextName
// that does not match the cursor's position triggers a rewind and
// linear scan of the current level, and sequential reading resumes
// from wherever the match was found.
type Absorber struct {
	root     *document.Value
	stack    []cursor
	nextName string
}

// NewAbsorber parses data and returns an Absorber positioned at the
// first child of the document root. The root must be an object or
// array.
func NewAbsorber(data []byte) (*Absorber, error) {
	root, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return newAbsorber(root)
}

// NewAbsorberFromReader reads in from start to end and parses it as
// with NewAbsorber.
func NewAbsorberFromReader(in io.Reader) (*Absorber, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("archive: read input: %w", err)
	}
	return NewAbsorber(data)
}

func newAbsorber(root *document.Value) (*Absorber, error) {
	switch root.Kind() {
	case document.KindObject, document.KindArray:
	default:
		return nil, fmt.Errorf("%w: document root is %s, want object or array", ErrShapeMismatch, root.Kind())
	}
	return &Absorber{
		root:  root,
		stack: []cursor{{node: root}},
	}, nil
}

// SetNextName queues name to be matched before the next read or
// BeginNode. An empty name clears the filter, which also means a
// member keyed "" cannot be selected by name; read it positionally.
// Array elements have no keys, so a filter pending inside an array
// level fails the next read with ErrFieldNotFound.
func (a *Absorber) SetNextName(name string) {
	a.nextName = name
}

// NodeName returns the member key at the cursor's current position,
// or "" when the current level is an array or the cursor is past its
// last element.
func (a *Absorber) NodeName() string {
	top := &a.stack[len(a.stack)-1]
	if top.exhausted() {
		return ""
	}
	return top.key()
}

// Size returns the child count of the compound currently being
// traversed. At the root level that is the child count of the whole
// document. Variable-length containers are reconstructed from this
// rather than from a stored length field.
func (a *Absorber) Size() int {
	return a.stack[len(a.stack)-1].node.Len()
}

// BeginNode descends into the compound at the cursor's position
// (after resolving any queued name). The value there must be an
// object or array. The parent cursor does not advance until the
// matching EndNode.
func (a *Absorber) BeginNode() error {
	v, err := a.current()
	if err != nil {
		return err
	}
	switch v.Kind() {
	case document.KindObject, document.KindArray:
	default:
		return fmt.Errorf("%w: have %s, want object or array", ErrShapeMismatch, v.Kind())
	}
	a.stack = append(a.stack, cursor{node: v})
	return nil
}

// EndNode leaves the current compound and advances the parent cursor
// past it. Calling it at the root level is an error.
func (a *Absorber) EndNode() error {
	if len(a.stack) == 1 {
		return fmt.Errorf("archive: EndNode at document root")
	}
	a.stack = a.stack[:len(a.stack)-1]
	a.stack[len(a.stack)-1].pos++
	return nil
}

// resolveName applies the queued name filter to the top cursor. A
// matching key at the current position costs nothing; otherwise the
// level is rescanned from its start, and a miss across the whole
// level fails. An array level has no keys, so any pending filter
// there is an immediate miss. The filter is consumed either way, and
// a successful search repositions the cursor permanently: there is
// no restore after an out-of-order read.
func (a *Absorber) resolveName() error {
	if a.nextName == "" {
		return nil
	}
	name := a.nextName
	a.nextName = ""

	top := &a.stack[len(a.stack)-1]
	if top.node.Kind() == document.KindArray {
		return fmt.Errorf("%w: %q in array level", ErrFieldNotFound, name)
	}
	members := top.node.Members()
	if !top.exhausted() && members[top.pos].Key == name {
		return nil
	}
	for i := range members {
		if members[i].Key == name {
			top.pos = i
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrFieldNotFound, name)
}

// current resolves the name filter and returns the value at the
// cursor position, leaving the cursor on it.
func (a *Absorber) current() (*document.Value, error) {
	if err := a.resolveName(); err != nil {
		return nil, err
	}
	top := &a.stack[len(a.stack)-1]
	if top.exhausted() {
		return nil, fmt.Errorf("%w: position %d of %d", ErrExhausted, top.pos, top.node.Len())
	}
	return top.value(), nil
}

// next is current plus a one-slot advance, the shape of every scalar
// read.
func (a *Absorber) next() (*document.Value, error) {
	v, err := a.current()
	if err != nil {
		return nil, err
	}
	a.stack[len(a.stack)-1].pos++
	return v, nil
}

// ReadBool reads a boolean scalar.
func (a *Absorber) ReadBool() (bool, error) {
	v, err := a.next()
	if err != nil {
		return false, err
	}
	return asBool(v)
}

// ReadInt32 reads a 32-bit signed integer. A number outside the int32
// range is a shape mismatch, not a truncation.
func (a *Absorber) ReadInt32() (int32, error) {
	v, err := a.next()
	if err != nil {
		return 0, err
	}
	n, err := asInt(v, 32)
	return int32(n), err
}

// ReadUint32 reads a 32-bit unsigned integer.
func (a *Absorber) ReadUint32() (uint32, error) {
	v, err := a.next()
	if err != nil {
		return 0, err
	}
	n, err := asUint(v, 32)
	return uint32(n), err
}

// ReadInt64 reads a 64-bit signed integer.
func (a *Absorber) ReadInt64() (int64, error) {
	v, err := a.next()
	if err != nil {
		return 0, err
	}
	return asInt(v, 64)
}

// ReadUint64 reads a 64-bit unsigned integer.
func (a *Absorber) ReadUint64() (uint64, error) {
	v, err := a.next()
	if err != nil {
		return 0, err
	}
	return asUint(v, 64)
}

// ReadFloat32 reads a 32-bit float.
func (a *Absorber) ReadFloat32() (float32, error) {
	f, err := a.ReadFloat64()
	return float32(f), err
}

// ReadFloat64 reads a 64-bit float. A null node reads as NaN, the
// inverse of the emit-side mapping for non-finite values.
func (a *Absorber) ReadFloat64() (float64, error) {
	v, err := a.next()
	if err != nil {
		return 0, err
	}
	if v.Kind() == document.KindNull {
		return math.NaN(), nil
	}
	return asFloat64(v)
}

// ReadString reads a string scalar.
func (a *Absorber) ReadString() (string, error) {
	v, err := a.next()
	if err != nil {
		return "", err
	}
	return asString(v)
}

// ReadNull consumes a null scalar.
func (a *Absorber) ReadNull() error {
	v, err := a.next()
	if err != nil {
		return err
	}
	return asNull(v)
}

// ReadBinary reads a base64 string scalar and copies the decoded
// bytes into dst. The decoded length must equal len(dst) exactly;
// on any failure dst is left untouched.
func (a *Absorber) ReadBinary(dst []byte) error {
	v, err := a.next()
	if err != nil {
		return err
	}
	encoded, err := asString(v)
	if err != nil {
		return err
	}
	decoded, err := decodeBinary(encoded)
	if err != nil {
		return err
	}
	if len(decoded) != len(dst) {
		return fmt.Errorf("%w: decoded %d bytes, want %d", ErrSizeMismatch, len(decoded), len(dst))
	}
	copy(dst, decoded)
	return nil
}

// ReadBigInt reads an arbitrary-precision integer stored as a decimal
// string scalar.
func (a *Absorber) ReadBigInt() (*big.Int, error) {
	v, err := a.next()
	if err != nil {
		return nil, err
	}
	s, err := asString(v)
	if err != nil {
		return nil, err
	}
	return parseBigInt(s)
}

// ReadBigFloat reads an extended-precision float stored as a decimal
// string scalar, rounded to the given mantissa precision in bits.
func (a *Absorber) ReadBigFloat(precision uint) (*big.Float, error) {
	v, err := a.next()
	if err != nil {
		return nil, err
	}
	s, err := asString(v)
	if err != nil {
		return nil, err
	}
	return parseBigFloat(s, precision)
}
