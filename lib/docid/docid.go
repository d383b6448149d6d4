// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package docid computes content identities for archive documents.
//
// The identity is a BLAKE3 keyed hash over the document's
// deterministic CBOR form, so it depends only on the document's
// structure and values: formatting, indentation, and object member
// order do not change it.
package docid

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/archive/lib/codec"
	"github.com/bureau-foundation/archive/lib/document"
)

// Hash is a 32-byte BLAKE3 digest identifying a document's content.
type Hash [32]byte

// documentDomainKey is the BLAKE3 key for the document identity
// domain. Fixed constant — changing it invalidates every existing
// identity. The bytes are the ASCII domain name zero-padded to 32
// bytes, so the key is recognizable in hex dumps while BLAKE3 treats
// it as an opaque value.
var documentDomainKey = [32]byte{
	'a', 'r', 'c', 'h', 'i', 'v', 'e', '.', 'd', 'o', 'c', 'u', 'm', 'e', 'n', 't',
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// HashDocument computes the content identity of a parsed document.
func HashDocument(v *document.Value) (Hash, error) {
	encoded, err := codec.EncodeDocument(v)
	if err != nil {
		return Hash{}, fmt.Errorf("docid: canonicalize document: %w", err)
	}

	hasher, err := blake3.NewKeyed(documentDomainKey[:])
	if err != nil {
		panic("docid: blake3 keyed hasher initialization failed: " + err.Error())
	}
	hasher.Write(encoded)

	var digest Hash
	hasher.Sum(digest[:0])
	return digest, nil
}

// String returns the lowercase hex form of the hash, the canonical
// format for CLI output and comparisons.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Parse parses a 64-character hex identity back into a Hash.
func Parse(s string) (Hash, error) {
	var digest Hash
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return digest, fmt.Errorf("docid: parse identity: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("docid: identity is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
