// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package document provides the parsed-tree and streaming-writer
// primitives underneath the archive codec.
//
// The two halves are deliberately asymmetric, matching how the
// archive uses them:
//
//   - Parse performs a one-shot parse of a complete JSON document
//     into an immutable ordered tree. Object members keep their
//     declaration order — the archive absorber's cursors depend on
//     it — and numbers keep their raw literal so 64-bit integers
//     survive without a lossy float64 round trip.
//   - Writer appends tokens (object/array boundaries, keys, scalars)
//     to an output stream with optional pretty-printing. The archive
//     emitter drives it one token at a time; it never sees a tree.
//
// encoding/json serves neither half: it discards member order, folds
// integers into float64 when decoding to any, and offers no
// token-level writer with indent and precision control. The tree and
// writer here are small enough that owning them is cheaper than
// fighting a general-purpose library.
//
// ParseJSONC accepts the JSONC dialect (comments and trailing
// commas), stripped with tidwall/jsonc before the strict parse, for
// hand-authored documents.
package document
