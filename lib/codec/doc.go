// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// the archive toolchain.
//
// JSON is the authoring and interchange format: archives are written
// and read as text documents. CBOR is the compact binary sibling used
// when a document is stored or shipped in bulk; the "archive cbor"
// commands convert between the two. This package holds the shared
// encoding and decoding modes so every conversion encodes identically.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Same logical data always produces identical bytes, which makes CBOR
// output safe to hash and compare.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
//
// EncodeDocument and DecodeDocument convert between a parsed JSON
// document tree and CBOR bytes. JSON object member order does not
// survive the trip: deterministic encoding sorts map keys.
package codec
