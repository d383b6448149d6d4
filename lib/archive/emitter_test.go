// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bytes"
	"math"
	"math/big"
	"strings"
	"testing"
)

func TestEmitterEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := buf.String(); got != "{}" {
		t.Errorf("got %q, want %q", got, "{}")
	}
}

func TestEmitterAutoNames(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.WriteInt64(1)
	e.WriteBool(true)
	e.WriteString("x")
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := `{"value0":1,"value1":true,"value2":"x"}`
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitterNamedAndUnnamedMix(t *testing.T) {
	// The auto-name counter counts only unnamed fields, so an
	// explicit name in between does not consume a counter slot.
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.SetNextName("id")
	e.WriteInt64(7)
	e.WriteString("anon")
	e.SetNextName("flag")
	e.WriteBool(false)
	e.WriteNull()
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := `{"id":7,"value0":"anon","flag":false,"value1":null}`
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitterRootArray(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.MakeArray()
	e.WriteInt64(1)
	e.WriteInt64(2)
	e.WriteInt64(3)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got, want := buf.String(), "[1,2,3]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitterArraySuppressesNames(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.MakeArray()
	e.SetNextName("a")
	e.WriteInt64(1)
	e.SetNextName("b")
	e.WriteInt64(2)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	got := buf.String()
	if want := "[1,2]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Contains(got, "a") || strings.Contains(got, "b") {
		t.Errorf("array output %q contains field labels", got)
	}
}

func TestEmitterNestedCompounds(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.SetNextName("meta")
	e.BeginNode()
	e.SetNextName("id")
	e.WriteUint64(9)
	e.EndNode()
	e.SetNextName("empty")
	e.BeginNode()
	e.EndNode()
	e.SetNextName("list")
	e.BeginNode()
	e.MakeArray()
	e.EndNode()
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := `{"meta":{"id":9},"empty":{},"list":[]}`
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitterMakeArrayAfterResolveIgnored(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.WriteInt64(1) // resolves the root to an object
	e.MakeArray()
	e.WriteInt64(2)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := `{"value0":1,"value1":2}`
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitterCloseFinalizesOpenLevels(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.BeginNode()
	e.BeginNode()
	e.WriteBool(true)
	// No EndNode calls: Close must still terminate every level.
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := `{"value0":{"value0":{"value0":true}}}`
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitterCloseIdempotent(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.WriteInt64(1)
	if err := e.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	before := buf.String()
	if err := e.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if got := buf.String(); got != before {
		t.Errorf("second Close changed output: %q -> %q", before, got)
	}
}

func TestEmitterPrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, DefaultOptions())
	e.SetNextName("name")
	e.WriteString("widget")
	e.SetNextName("tags")
	e.BeginNode()
	e.MakeArray()
	e.WriteString("a")
	e.WriteString("b")
	e.EndNode()
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := "{\n    \"name\": \"widget\",\n    \"tags\": [\n        \"a\",\n        \"b\"\n    ]\n}"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmitterScalarForms(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.SetNextName("blob")
	e.WriteBinary([]byte("hi"))
	e.SetNextName("big")
	e.WriteBigInt(mustBigInt(t, "123456789012345678901234567890"))
	e.SetNextName("bigf")
	e.WriteBigFloat(big.NewFloat(1.5))
	e.SetNextName("nan")
	e.WriteFloat64(math.NaN())
	e.SetNextName("inf")
	e.WriteFloat64(math.Inf(1))
	e.SetNextName("f32")
	e.WriteFloat32(0.25)
	e.SetNextName("i32")
	e.WriteInt32(-42)
	e.SetNextName("u32")
	e.WriteUint32(42)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := `{"blob":"aGk=","big":"123456789012345678901234567890","bigf":"1.5",` +
		`"nan":null,"inf":null,"f32":0.25,"i32":-42,"u32":42}`
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitterWidthExtremes(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.SetNextName("min")
	e.WriteInt64(math.MinInt64)
	e.SetNextName("max")
	e.WriteUint64(math.MaxUint64)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	want := `{"min":-9223372036854775808,"max":18446744073709551615}`
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func mustBigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad big integer literal %q", s)
	}
	return n
}
