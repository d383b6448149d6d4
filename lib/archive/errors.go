// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import "errors"

// The five failure kinds an Absorber reports. Every error returned by
// a read operation wraps exactly one of these, so callers distinguish
// them with errors.Is. None of them are retried internally, and a
// failed Absorber must be discarded.
var (
	// ErrMalformed reports input that is not a well-formed document:
	// a parse failure at construction, or an embedded encoding (such
	// as a base64 blob) that cannot be decoded.
	ErrMalformed = errors.New("archive: malformed input")

	// ErrShapeMismatch reports a read whose requested type does not
	// match the document node: a scalar read on a compound, a
	// BeginNode on a scalar, an integer read on a string, or a value
	// out of range for the requested width.
	ErrShapeMismatch = errors.New("archive: shape mismatch")

	// ErrFieldNotFound reports a name filter whose search exhausted
	// the current level without a match.
	ErrFieldNotFound = errors.New("archive: named field not found")

	// ErrSizeMismatch reports a binary blob whose decoded length does
	// not equal the caller-declared size.
	ErrSizeMismatch = errors.New("archive: binary size mismatch")

	// ErrExhausted reports a read past the last element of a level.
	ErrExhausted = errors.New("archive: no more values at this level")
)
