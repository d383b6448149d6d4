// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"strconv"
)

// Kind identifies the JSON type of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase JSON type name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Value is one node of a parsed document tree. Values are built by
// Parse and never mutated afterwards; every accessor is read-only.
//
// Numbers are stored as their raw source literal and converted on
// demand. This keeps the full 64-bit integer range intact: a float64
// intermediate would silently corrupt values above 2^53.
type Value struct {
	kind    Kind
	boolean bool
	literal string   // KindNumber: raw literal as it appeared in the source
	str     string   // KindString: unescaped content
	elems   []*Value // KindArray
	members []Member // KindObject, in declaration order
}

// Member is one key/value pair of an object, in declaration order.
type Member struct {
	Key   string
	Value *Value
}

// Kind returns the JSON type of v. A nil Value reports KindNull.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// Bool returns the boolean content. Valid only when Kind is KindBool;
// any other kind returns false.
func (v *Value) Bool() bool {
	return v != nil && v.kind == KindBool && v.boolean
}

// Str returns the string content, or "" for non-string values.
func (v *Value) Str() string {
	if v == nil || v.kind != KindString {
		return ""
	}
	return v.str
}

// NumberLiteral returns the raw number literal as it appeared in the
// source, or "" for non-number values.
func (v *Value) NumberLiteral() string {
	if v == nil || v.kind != KindNumber {
		return ""
	}
	return v.literal
}

// Int64 converts a number node to int64. Fails if the value is not a
// number or the literal does not fit (fractional, exponent form, or
// out of range).
func (v *Value) Int64() (int64, error) {
	if v.Kind() != KindNumber {
		return 0, fmt.Errorf("document: value is %s, not number", v.Kind())
	}
	n, err := strconv.ParseInt(v.literal, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("document: number %q is not an int64: %w", v.literal, err)
	}
	return n, nil
}

// Uint64 converts a number node to uint64. Fails if the value is not
// a number or the literal is negative, fractional, or out of range.
func (v *Value) Uint64() (uint64, error) {
	if v.Kind() != KindNumber {
		return 0, fmt.Errorf("document: value is %s, not number", v.Kind())
	}
	n, err := strconv.ParseUint(v.literal, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("document: number %q is not a uint64: %w", v.literal, err)
	}
	return n, nil
}

// Float64 converts a number node to float64.
func (v *Value) Float64() (float64, error) {
	if v.Kind() != KindNumber {
		return 0, fmt.Errorf("document: value is %s, not number", v.Kind())
	}
	f, err := strconv.ParseFloat(v.literal, 64)
	if err != nil {
		return 0, fmt.Errorf("document: number %q is not a float64: %w", v.literal, err)
	}
	return f, nil
}

// Members returns the object members in declaration order, or nil for
// non-object values. The returned slice is shared; callers must not
// modify it.
func (v *Value) Members() []Member {
	if v == nil || v.kind != KindObject {
		return nil
	}
	return v.members
}

// Elements returns the array elements in order, or nil for non-array
// values. The returned slice is shared; callers must not modify it.
func (v *Value) Elements() []*Value {
	if v == nil || v.kind != KindArray {
		return nil
	}
	return v.elems
}

// Len returns the child count of an object or array, and 0 for every
// other kind.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindObject:
		return len(v.members)
	case KindArray:
		return len(v.elems)
	default:
		return 0
	}
}

// Shared scalar singletons. true/false/null carry no per-node state,
// so the parser hands out the same nodes for all of them.
var (
	valueTrue  = &Value{kind: KindBool, boolean: true}
	valueFalse = &Value{kind: KindBool}
	valueNull  = &Value{kind: KindNull}
)
