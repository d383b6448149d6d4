// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"math"
	"strconv"
	"testing"
)

func TestWriterCompact(t *testing.T) {
	w := NewWriter(nil, WriterConfig{})
	w.BeginObject()
	w.Key("name")
	w.String("widget")
	w.Key("count")
	w.Int64(3)
	w.Key("tags")
	w.BeginArray()
	w.String("a")
	w.String("b")
	w.EndArray()
	w.EndObject()

	want := `{"name":"widget","count":3,"tags":["a","b"]}`
	if got := string(w.Bytes()); got != want {
		t.Errorf("compact output = %s, want %s", got, want)
	}
}

func TestWriterPretty(t *testing.T) {
	w := NewWriter(nil, WriterConfig{IndentChar: ' ', IndentWidth: 4})
	w.BeginObject()
	w.Key("a")
	w.Int64(1)
	w.Key("b")
	w.BeginArray()
	w.Int64(1)
	w.Int64(2)
	w.EndArray()
	w.EndObject()

	want := "{\n    \"a\": 1,\n    \"b\": [\n        1,\n        2\n    ]\n}"
	if got := string(w.Bytes()); got != want {
		t.Errorf("pretty output = %q, want %q", got, want)
	}
}

func TestWriterEmptyContainers(t *testing.T) {
	w := NewWriter(nil, WriterConfig{IndentWidth: 2})
	w.BeginObject()
	w.Key("obj")
	w.BeginObject()
	w.EndObject()
	w.Key("arr")
	w.BeginArray()
	w.EndArray()
	w.EndObject()

	want := "{\n  \"obj\": {},\n  \"arr\": []\n}"
	if got := string(w.Bytes()); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriterStringEscaping(t *testing.T) {
	w := NewWriter(nil, WriterConfig{})
	w.String("a\"b\\c\nd\x01")

	want := `"a\"b\\c\nd\u0001"`
	if got := string(w.Bytes()); got != want {
		t.Errorf("escaped = %s, want %s", got, want)
	}
}

func TestWriterFloatShortestRoundTrips(t *testing.T) {
	values := []float64{0, 1, -1.5, math.Pi, 1e300, 5e-324, math.MaxFloat64}
	for _, value := range values {
		w := NewWriter(nil, WriterConfig{})
		w.Float64(value)
		parsed, err := strconv.ParseFloat(string(w.Bytes()), 64)
		if err != nil {
			t.Fatalf("ParseFloat(%s): %v", w.Bytes(), err)
		}
		if parsed != value {
			t.Errorf("%v round-tripped to %v via %s", value, parsed, w.Bytes())
		}
	}
}

func TestWriterNonFiniteFloatsBecomeNull(t *testing.T) {
	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		w := NewWriter(nil, WriterConfig{})
		w.Float64(value)
		if got := string(w.Bytes()); got != "null" {
			t.Errorf("Float64(%v) = %s, want null", value, got)
		}
	}
}

func TestWriterFlush(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, WriterConfig{})
	w.BeginArray()
	w.Uint64(18446744073709551615)
	w.EndArray()
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := out.String(); got != "[18446744073709551615]" {
		t.Errorf("flushed = %s", got)
	}
	if len(w.Bytes()) != 0 {
		t.Errorf("buffer not reset after Flush")
	}
}

func TestWriteValueRoundTrip(t *testing.T) {
	source := `{"a":1,"big":18446744073709551615,"s":"x","nested":{"b":[true,null,2.5]},"empty":[]}`
	v, err := Parse([]byte(source))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	w := NewWriter(nil, WriterConfig{})
	w.WriteValue(v)
	if got := string(w.Bytes()); got != source {
		t.Errorf("WriteValue = %s, want %s", got, source)
	}
}

func TestWriterTabIndent(t *testing.T) {
	w := NewWriter(nil, WriterConfig{IndentChar: '\t', IndentWidth: 1})
	w.BeginObject()
	w.Key("a")
	w.Bool(true)
	w.EndObject()

	want := "{\n\t\"a\": true\n}"
	if got := string(w.Bytes()); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
