// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"io"
	"math/big"
	"strconv"

	"github.com/bureau-foundation/archive/lib/document"
)

// nodeKind is the structural state of one emitter nesting level. A
// level starts pending: its opening token is deferred until the first
// child arrives (or until EndNode, for empty levels), because the
// caller may still declare it an array with MakeArray.
type nodeKind uint8

const (
	nodePendingObject nodeKind = iota
	nodeOpenObject
	nodePendingArray
	nodeOpenArray
)

// Emitter streams lifecycle calls and scalar values into a JSON
// document on w. The root level is opened at construction; Close
// finalizes every level still open, so even an abandoned Emitter
// leaves syntactically well-formed output behind.
//
// The Emitter has no data-dependent failure modes: errors surface
// only from the underlying io.Writer, at Close.
type Emitter struct {
	writer *document.Writer

	// nodes holds one entry per open nesting level; counters holds
	// the per-level count of auto-named fields. Both always have the
	// same length, and never shrink below one before Close.
	nodes    []nodeKind
	counters []uint32

	nextName string
	closed   bool
}

// NewEmitter returns an Emitter writing to out with the given
// options. The caller must Close it to terminate the document.
func NewEmitter(out io.Writer, options Options) *Emitter {
	return &Emitter{
		writer:   document.NewWriter(out, options.writerConfig()),
		nodes:    []nodeKind{nodePendingObject},
		counters: []uint32{0},
	}
}

// Close finalizes all open levels and flushes the document to the
// underlying writer. Further calls are no-ops.
func (e *Emitter) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	for len(e.nodes) > 0 {
		e.endLevel()
	}
	return e.writer.Flush()
}

// SetNextName queues name as the label for the next value, compound,
// or scalar written at the current level. An empty name clears the
// queued label, which also means "" cannot be used as a member key;
// such a field would get a synthesized label instead. Inside an array
// level the label is never emitted.
func (e *Emitter) SetNextName(name string) {
	e.nextName = name
}

// MakeArray declares that the current node is a variable-length
// container and must be written as a JSON array. It must be called
// before the node's first child; once the level has resolved, the
// call is ignored.
func (e *Emitter) MakeArray() {
	top := &e.nodes[len(e.nodes)-1]
	if *top == nodePendingObject {
		*top = nodePendingArray
	}
}

// BeginNode starts a compound value. The pending name (or a
// synthesized label) becomes the node's key in the enclosing object;
// the node itself stays pending until its own first child resolves
// it to an object or array.
func (e *Emitter) BeginNode() {
	e.writeName()
	e.nodes = append(e.nodes, nodePendingObject)
	e.counters = append(e.counters, 0)
}

// EndNode finishes the most recently begun compound. A node that
// never received a child is materialized as an empty {} or [].
func (e *Emitter) EndNode() {
	e.endLevel()
}

func (e *Emitter) endLevel() {
	switch e.nodes[len(e.nodes)-1] {
	case nodePendingArray:
		e.writer.BeginArray()
		e.writer.EndArray()
	case nodeOpenArray:
		e.writer.EndArray()
	case nodePendingObject:
		e.writer.BeginObject()
		e.writer.EndObject()
	case nodeOpenObject:
		e.writer.EndObject()
	}
	e.nodes = e.nodes[:len(e.nodes)-1]
	e.counters = e.counters[:len(e.counters)-1]
}

// writeName is the single boundary-resolution point, run before every
// name or value reaches the document. It commits a still-pending
// level to its final kind (emitting the opening token exactly once),
// then emits the member key when the level is an object: the pending
// name if one is queued, otherwise a synthesized "value<N>" label.
// Array levels emit no keys; a queued name is left untouched there.
func (e *Emitter) writeName() {
	top := &e.nodes[len(e.nodes)-1]
	switch *top {
	case nodePendingArray:
		e.writer.BeginArray()
		*top = nodeOpenArray
	case nodePendingObject:
		e.writer.BeginObject()
		*top = nodeOpenObject
	}

	if *top == nodeOpenArray {
		return
	}

	if e.nextName != "" {
		e.writer.Key(e.nextName)
		e.nextName = ""
		return
	}
	counter := &e.counters[len(e.counters)-1]
	e.writer.Key("value" + strconv.FormatUint(uint64(*counter), 10))
	*counter++
}

// WriteBool writes a boolean scalar at the current level.
func (e *Emitter) WriteBool(b bool) {
	e.writeName()
	e.writer.Bool(b)
}

// WriteInt32 writes a 32-bit signed integer scalar.
func (e *Emitter) WriteInt32(n int32) {
	e.writeName()
	e.writer.Int64(int64(n))
}

// WriteUint32 writes a 32-bit unsigned integer scalar.
func (e *Emitter) WriteUint32(n uint32) {
	e.writeName()
	e.writer.Uint64(uint64(n))
}

// WriteInt64 writes a 64-bit signed integer scalar.
func (e *Emitter) WriteInt64(n int64) {
	e.writeName()
	e.writer.Int64(n)
}

// WriteUint64 writes a 64-bit unsigned integer scalar.
func (e *Emitter) WriteUint64(n uint64) {
	e.writeName()
	e.writer.Uint64(n)
}

// WriteFloat32 writes a 32-bit float scalar. The widening to float64
// is exact.
func (e *Emitter) WriteFloat32(f float32) {
	e.writeName()
	e.writer.Float64(float64(f))
}

// WriteFloat64 writes a 64-bit float scalar.
func (e *Emitter) WriteFloat64(f float64) {
	e.writeName()
	e.writer.Float64(f)
}

// WriteString writes a string scalar.
func (e *Emitter) WriteString(s string) {
	e.writeName()
	e.writer.String(s)
}

// WriteNull writes a null scalar.
func (e *Emitter) WriteNull() {
	e.writeName()
	e.writer.Null()
}

// WriteBinary writes raw bytes as a base64 string scalar.
func (e *Emitter) WriteBinary(data []byte) {
	e.writeName()
	e.writer.String(encodeBinary(data))
}

// WriteBigInt writes an arbitrary-precision integer as a decimal
// string scalar, the fallback for integer types wider than 64 bits.
func (e *Emitter) WriteBigInt(n *big.Int) {
	e.writeName()
	e.writer.String(formatBigInt(n))
}

// WriteBigFloat writes an extended-precision float as a decimal
// string scalar with exactly the digits needed to reproduce it.
func (e *Emitter) WriteBigFloat(f *big.Float) {
	e.writeName()
	e.writer.String(formatBigFloat(f))
}
