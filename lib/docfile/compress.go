// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docfile

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the output frame format. The zero value writes
// plain bytes.
type Compression uint8

const (
	// CompressionNone writes the document uncompressed.
	CompressionNone Compression = iota

	// CompressionLZ4 writes an lz4 frame. Fast decode, moderate
	// ratio; the right default when documents are read often.
	CompressionLZ4

	// CompressionZstd writes a zstd frame at the default level.
	// Better ratios for JSON text at a higher CPU cost.
	CompressionZstd
)

// String returns the name used on the command line.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCompression parses a compression name from the command line.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want none, lz4, or zstd)", name)
	}
}

// sharedZstdEncoder mirrors sharedZstdDecoder in read.go; safe for
// concurrent EncodeAll use.
var sharedZstdEncoder *zstd.Encoder

func init() {
	var err error
	sharedZstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("docfile: zstd encoder initialization failed: " + err.Error())
	}
}

// Compress wraps data in the selected frame format. The result always
// round-trips through Decompress, magic detection included.
func Compress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil

	case CompressionLZ4:
		var buffer bytes.Buffer
		writer := lz4.NewWriter(&buffer)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buffer.Bytes(), nil

	case CompressionZstd:
		return sharedZstdEncoder.EncodeAll(data, nil), nil

	default:
		return nil, fmt.Errorf("unsupported compression: %d", compression)
	}
}
