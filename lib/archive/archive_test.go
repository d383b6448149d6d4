// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"testing"
)

// widget exercises every scalar family plus nested compounds and a
// variable-length container.
type widget struct {
	Name  string
	Count uint32
	Total int64
	Ratio float64
	Live  bool
	Tags  []string
	Blob  []byte
}

func (w *widget) SaveArchive(e *Emitter) {
	e.SetNextName("name")
	e.WriteString(w.Name)
	e.SetNextName("count")
	e.WriteUint32(w.Count)
	e.SetNextName("total")
	e.WriteInt64(w.Total)
	e.SetNextName("ratio")
	e.WriteFloat64(w.Ratio)
	e.SetNextName("live")
	e.WriteBool(w.Live)
	e.SetNextName("tags")
	e.BeginNode()
	e.MakeArray()
	for _, tag := range w.Tags {
		e.WriteString(tag)
	}
	e.EndNode()
	e.SetNextName("blob")
	e.WriteBinary(w.Blob)
}

// LoadArchive reads fields in a different order than SaveArchive
// wrote them, so every load goes through the name search path.
func (w *widget) LoadArchive(a *Absorber) error {
	var err error
	a.SetNextName("live")
	if w.Live, err = a.ReadBool(); err != nil {
		return err
	}
	a.SetNextName("name")
	if w.Name, err = a.ReadString(); err != nil {
		return err
	}
	a.SetNextName("tags")
	if err := a.BeginNode(); err != nil {
		return err
	}
	w.Tags = make([]string, 0, a.Size())
	for range a.Size() {
		tag, err := a.ReadString()
		if err != nil {
			return err
		}
		w.Tags = append(w.Tags, tag)
	}
	if err := a.EndNode(); err != nil {
		return err
	}
	a.SetNextName("ratio")
	if w.Ratio, err = a.ReadFloat64(); err != nil {
		return err
	}
	a.SetNextName("count")
	if w.Count, err = a.ReadUint32(); err != nil {
		return err
	}
	a.SetNextName("total")
	if w.Total, err = a.ReadInt64(); err != nil {
		return err
	}
	a.SetNextName("blob")
	w.Blob = make([]byte, 3)
	return a.ReadBinary(w.Blob)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	original := widget{
		Name:  "sensor \"A\"\n",
		Count: 4294967295,
		Total: math.MinInt64,
		Ratio: 0.1,
		Live:  true,
		Tags:  []string{"alpha", "beta", "gamma"},
		Blob:  []byte{0x00, 0xFF, 0x7F},
	}

	for _, options := range []Options{NoIndent(), DefaultOptions(), SmallIndent()} {
		var buf bytes.Buffer
		if err := Save(&buf, &original, options); err != nil {
			t.Fatalf("Save (indent %d): %v", options.IndentWidth, err)
		}
		var loaded widget
		if err := LoadBytes(buf.Bytes(), &loaded); err != nil {
			t.Fatalf("Load (indent %d): %v\ndocument:\n%s", options.IndentWidth, err, buf.String())
		}
		if !reflect.DeepEqual(loaded, original) {
			t.Errorf("round trip (indent %d):\n got %+v\nwant %+v", options.IndentWidth, loaded, original)
		}
	}
}

type empty struct{}

func (empty) SaveArchive(*Emitter) {}

func (empty) LoadArchive(a *Absorber) error {
	if got := a.Size(); got != 0 {
		return fmt.Errorf("unexpected child count %d", got)
	}
	return nil
}

func TestSaveLoadEmptyCompound(t *testing.T) {
	var buf bytes.Buffer
	if err := Save(&buf, empty{}, NoIndent()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got, want := buf.String(), `{"value0":{}}`; got != want {
		t.Errorf("document = %q, want %q", got, want)
	}
	if err := LoadBytes(buf.Bytes(), empty{}); err != nil {
		t.Errorf("Load: %v", err)
	}
}

func TestWidthFidelityRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.SetNextName("min64")
	e.WriteInt64(math.MinInt64)
	e.SetNextName("max64")
	e.WriteUint64(math.MaxUint64)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	a := mustAbsorber(t, buf.String())
	a.SetNextName("min64")
	if n, err := a.ReadInt64(); err != nil || n != math.MinInt64 {
		t.Errorf("ReadInt64 = %d, %v; want MinInt64, nil", n, err)
	}
	a.SetNextName("max64")
	if n, err := a.ReadUint64(); err != nil || n != math.MaxUint64 {
		t.Errorf("ReadUint64 = %d, %v; want MaxUint64, nil", n, err)
	}
}

func TestBigFloatPrecisionRoundTrip(t *testing.T) {
	// 100 mantissa bits hold about 30 decimal digits, comfortably
	// past the 20 digits given here.
	const digits = "3.14159265358979323846"
	original, _, err := big.ParseFloat(digits, 10, 100, big.ToNearestEven)
	if err != nil {
		t.Fatalf("ParseFloat: %v", err)
	}

	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.SetNextName("pi")
	e.WriteBigFloat(original)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	a := mustAbsorber(t, buf.String())
	a.SetNextName("pi")
	loaded, err := a.ReadBigFloat(100)
	if err != nil {
		t.Fatalf("ReadBigFloat: %v", err)
	}
	if original.Cmp(loaded) != 0 {
		t.Errorf("round trip changed value: %s -> %s",
			original.Text('g', -1), loaded.Text('g', -1))
	}
}

func TestFloatShortestFormRoundTrip(t *testing.T) {
	values := []float64{0.1, 1.0 / 3.0, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Copysign(0, -1)}
	var buf bytes.Buffer
	e := NewEmitter(&buf, NoIndent())
	e.MakeArray()
	for _, f := range values {
		e.WriteFloat64(f)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	a := mustAbsorber(t, buf.String())
	for i, want := range values {
		got, err := a.ReadFloat64()
		if err != nil {
			t.Fatalf("element %d: %v", i, err)
		}
		if got != want {
			t.Errorf("element %d = %g, want %g", i, got, want)
		}
	}
}
