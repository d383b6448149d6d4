// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/bureau-foundation/archive/lib/document"
)

// Read returns the contents of path, with "" and "-" meaning stdin.
// Compressed input (zstd or lz4 frames) is decompressed transparently.
func Read(path string) ([]byte, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return Decompress(data)
}

// Load reads and parses the document at path. JSONC syntax (comments,
// trailing commas) is accepted when jsonc is true or the path ends in
// ".jsonc".
func Load(path string, jsonc bool) (*document.Value, error) {
	data, err := Read(path)
	if err != nil {
		return nil, err
	}
	if jsonc || strings.HasSuffix(path, ".jsonc") {
		return document.ParseJSONC(data)
	}
	return document.Parse(data)
}

// Frame magic bytes, as they appear at the start of the compressed
// stream.
var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// sharedZstdDecoder is reused across calls to avoid repeated
// initialization overhead; zstd.Decoder is safe for concurrent use in
// DecodeAll mode.
var sharedZstdDecoder *zstd.Decoder

func init() {
	var err error
	sharedZstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("docfile: zstd decoder initialization failed: " + err.Error())
	}
}

// Decompress detects a zstd or lz4 frame by its magic bytes and
// decompresses it. Data in neither format passes through unchanged.
func Decompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		decompressed, err := sharedZstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return decompressed, nil

	case bytes.HasPrefix(data, lz4Magic):
		decompressed, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return decompressed, nil

	default:
		return data, nil
	}
}
