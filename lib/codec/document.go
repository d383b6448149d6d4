// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"slices"
	"strconv"

	"github.com/bureau-foundation/archive/lib/document"
)

// EncodeDocument converts a parsed JSON document tree to CBOR bytes.
// Integer literals that fit 64 bits stay integers, so the full int64
// and uint64 ranges survive; everything else becomes a float. Object
// member order is not preserved: deterministic encoding sorts keys.
func EncodeDocument(v *document.Value) ([]byte, error) {
	lowered, err := lower(v)
	if err != nil {
		return nil, err
	}
	return Marshal(lowered)
}

func lower(v *document.Value) (any, error) {
	switch v.Kind() {
	case document.KindNull:
		return nil, nil
	case document.KindBool:
		return v.Bool(), nil
	case document.KindString:
		return v.Str(), nil
	case document.KindNumber:
		literal := v.NumberLiteral()
		if n, err := strconv.ParseInt(literal, 10, 64); err == nil {
			return n, nil
		}
		if n, err := strconv.ParseUint(literal, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return nil, fmt.Errorf("codec: number %q: %w", literal, err)
		}
		return f, nil
	case document.KindArray:
		elements := v.Elements()
		lowered := make([]any, len(elements))
		for i, element := range elements {
			var err error
			if lowered[i], err = lower(element); err != nil {
				return nil, err
			}
		}
		return lowered, nil
	case document.KindObject:
		lowered := make(map[string]any, v.Len())
		for _, member := range v.Members() {
			value, err := lower(member.Value)
			if err != nil {
				return nil, err
			}
			lowered[member.Key] = value
		}
		return lowered, nil
	default:
		return nil, fmt.Errorf("codec: unsupported document kind %s", v.Kind())
	}
}

// DecodeDocument decodes one CBOR item from data and re-serializes it
// as JSON through w. Map keys are written in sorted order, matching
// the deterministic encoding on the other side. Byte strings, which
// JSON cannot carry natively, appear as base64 text.
func DecodeDocument(data []byte, w *document.Writer) error {
	var value any
	if err := Unmarshal(data, &value); err != nil {
		return fmt.Errorf("codec: decode CBOR: %w", err)
	}
	return writeValue(w, value)
}

func writeValue(w *document.Writer, v any) error {
	switch value := v.(type) {
	case nil:
		w.Null()
	case bool:
		w.Bool(value)
	case string:
		w.String(value)
	case []byte:
		w.String(base64.StdEncoding.EncodeToString(value))
	case int64:
		w.Int64(value)
	case uint64:
		w.Uint64(value)
	case float64:
		w.Float64(value)
	case big.Int:
		w.Number(value.String())
	case *big.Int:
		w.Number(value.String())
	case []any:
		w.BeginArray()
		for _, element := range value {
			if err := writeValue(w, element); err != nil {
				return err
			}
		}
		w.EndArray()
	case map[string]any:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		w.BeginObject()
		for _, key := range keys {
			w.Key(key)
			if err := writeValue(w, value[key]); err != nil {
				return err
			}
		}
		w.EndObject()
	default:
		return fmt.Errorf("codec: CBOR value of type %T has no JSON form", v)
	}
	return nil
}
