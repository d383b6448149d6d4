// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package archive implements a JSON archive pair: an Emitter that
// streams program values into a hierarchically nested JSON document,
// and an Absorber that reads them back from a parsed tree.
//
// The codec is driven from outside by whatever walks the shape of a
// value — reflection, generated code, or hand-written SaveArchive/
// LoadArchive methods. The protocol is four lifecycle hooks plus
// typed scalar calls:
//
//  1. SetNextName queues a field label for the next write or read.
//  2. BeginNode / EndNode bracket every compound (object-like) value.
//  3. MakeArray, on the emit side, declares the current node a
//     variable-length container before its first child. On the absorb
//     side there is no equivalent: array-versus-object is determined
//     by what the parsed document actually contains.
//  4. WriteBool/ReadBool and friends move the scalar leaves.
//
// The Emitter defers the object-versus-array decision for each node
// until the first child arrives (or until EndNode for empty nodes),
// so every compound appears as {} or [] even when nothing was written
// into it. Fields written without a name get synthesized labels
// "value0", "value1", ... counted per nesting level.
//
// The Absorber does not require fields to be read in the order they
// were written. When a requested name does not match the cursor's
// current position, the cursor rewinds and scans the level for the
// name; after an out-of-order read, sequential reading resumes from
// the new position. Sizes of variable-length containers are inferred
// from child counts (Size) rather than stored in the document.
//
// Both halves are single-threaded and synchronous. An Emitter owns
// its output stream for one document; an Absorber owns one parsed
// tree. A failed operation leaves the instance in a defined but
// unusable state — discard it.
package archive
