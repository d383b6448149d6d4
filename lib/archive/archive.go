// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"fmt"
	"io"
)

// Saver is implemented by values that write their own fields through
// an Emitter. The implementation decides field order and naming; the
// Emitter turns those calls into document structure.
type Saver interface {
	SaveArchive(*Emitter)
}

// Loader is the read-side counterpart of Saver. Implementations may
// read fields in any order by name; the Absorber repositions as
// needed.
type Loader interface {
	LoadArchive(*Absorber) error
}

// Save writes v to out as a complete JSON document. The value's
// fields are wrapped in one compound under the document root, so the
// output is always a root object with a single member.
func Save(out io.Writer, v Saver, options Options) error {
	e := NewEmitter(out, options)
	e.BeginNode()
	v.SaveArchive(e)
	e.EndNode()
	return e.Close()
}

// Load parses the document from in and fills v from it, mirroring the
// wrapping Save applies.
func Load(in io.Reader, v Loader) error {
	a, err := NewAbsorberFromReader(in)
	if err != nil {
		return err
	}
	return load(a, v)
}

// LoadBytes is Load over an in-memory document.
func LoadBytes(data []byte, v Loader) error {
	a, err := NewAbsorber(data)
	if err != nil {
		return err
	}
	return load(a, v)
}

func load(a *Absorber, v Loader) error {
	if err := a.BeginNode(); err != nil {
		return fmt.Errorf("archive: enter root value: %w", err)
	}
	if err := v.LoadArchive(a); err != nil {
		return err
	}
	return a.EndNode()
}
