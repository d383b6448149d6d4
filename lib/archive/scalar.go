// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"strconv"

	"github.com/bureau-foundation/archive/lib/document"
)

// Scalar conversion between document tree nodes and typed Go values.
// These are pure functions; all cursor movement happens in the
// Absorber. Failures wrap the package sentinels so callers can
// distinguish a wrong JSON type from a right type at the wrong width.

func asBool(v *document.Value) (bool, error) {
	if v.Kind() != document.KindBool {
		return false, fmt.Errorf("%w: have %s, want bool", ErrShapeMismatch, v.Kind())
	}
	return v.Bool(), nil
}

func asString(v *document.Value) (string, error) {
	if v.Kind() != document.KindString {
		return "", fmt.Errorf("%w: have %s, want string", ErrShapeMismatch, v.Kind())
	}
	return v.Str(), nil
}

func asNull(v *document.Value) error {
	if v.Kind() != document.KindNull {
		return fmt.Errorf("%w: have %s, want null", ErrShapeMismatch, v.Kind())
	}
	return nil
}

func asInt(v *document.Value, bits int) (int64, error) {
	if v.Kind() != document.KindNumber {
		return 0, fmt.Errorf("%w: have %s, want number", ErrShapeMismatch, v.Kind())
	}
	n, err := strconv.ParseInt(v.NumberLiteral(), 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: number %s does not fit int%d", ErrShapeMismatch, v.NumberLiteral(), bits)
	}
	return n, nil
}

func asUint(v *document.Value, bits int) (uint64, error) {
	if v.Kind() != document.KindNumber {
		return 0, fmt.Errorf("%w: have %s, want number", ErrShapeMismatch, v.Kind())
	}
	n, err := strconv.ParseUint(v.NumberLiteral(), 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: number %s does not fit uint%d", ErrShapeMismatch, v.NumberLiteral(), bits)
	}
	return n, nil
}

func asFloat64(v *document.Value) (float64, error) {
	if v.Kind() != document.KindNumber {
		return 0, fmt.Errorf("%w: have %s, want number", ErrShapeMismatch, v.Kind())
	}
	f, err := v.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	return f, nil
}

// Binary blobs travel as base64 string scalars. Strict decoding: any
// malformed or non-canonical input fails rather than yielding
// truncated bytes.

var blobEncoding = base64.StdEncoding.Strict()

func encodeBinary(data []byte) string {
	return blobEncoding.EncodeToString(data)
}

func decodeBinary(encoded string) ([]byte, error) {
	decoded, err := blobEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: base64 blob: %v", ErrMalformed, err)
	}
	return decoded, nil
}

// Arithmetic values wider than the writer's native 64-bit support
// travel as decimal strings, so no precision is lost to a binary
// intermediate. The emitting side formats with the minimal digit
// count that reproduces the value exactly.

func formatBigInt(n *big.Int) string {
	return n.String()
}

func parseBigInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrShapeMismatch, s)
	}
	return n, nil
}

func formatBigFloat(f *big.Float) string {
	// Negative precision selects the smallest digit count that
	// represents f exactly at its mantissa precision.
	return f.Text('g', -1)
}

func parseBigFloat(s string, precision uint) (*big.Float, error) {
	f, _, err := big.ParseFloat(s, 10, precision, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a decimal float: %v", ErrShapeMismatch, s, err)
	}
	return f, nil
}
