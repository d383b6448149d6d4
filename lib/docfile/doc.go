// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package docfile reads and writes archive documents as files.
//
// It handles the concerns between the filesystem and the parser:
// stdin-or-path resolution, transparent decompression of zstd and lz4
// frames (detected by magic bytes, no flag needed), compressed
// output, and JSONC input (comments and trailing commas stripped
// before strict parsing, selected by flag or a .jsonc extension).
package docfile
