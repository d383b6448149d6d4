// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import "github.com/bureau-foundation/archive/lib/document"

// Options bundles the output-format knobs of an Emitter. The Absorber
// takes no options: it accepts whatever formatting the document has.
type Options struct {
	// Precision caps the significant digits used for float64 output.
	// Zero selects the shortest form that parses back to the same
	// float64, which is the only setting with exact round trips.
	Precision int

	// IndentChar is the indentation character, normally ' ' or '\t'.
	IndentChar byte

	// IndentWidth is the number of IndentChar per nesting level.
	// Zero disables pretty-printing.
	IndentWidth int
}

// DefaultOptions returns the standard format: four-space indentation
// and exact float round trips.
func DefaultOptions() Options {
	return Options{IndentChar: ' ', IndentWidth: 4}
}

// NoIndent returns compact single-line output.
func NoIndent() Options {
	return Options{IndentChar: ' '}
}

// SmallIndent returns single-space indentation, a middle ground for
// documents meant to be both diffed and stored.
func SmallIndent() Options {
	return Options{IndentChar: ' ', IndentWidth: 1}
}

func (o Options) writerConfig() document.WriterConfig {
	return document.WriterConfig{
		Precision:   o.Precision,
		IndentChar:  o.IndentChar,
		IndentWidth: o.IndentWidth,
	}
}
