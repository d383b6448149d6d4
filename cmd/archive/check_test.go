// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bureau-foundation/archive/lib/document"
)

func TestCollectStats(t *testing.T) {
	v, err := document.Parse([]byte(`{"a":1,"b":[true,{"c":"x"}],"d":null}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	stats := collectStats(v)
	if stats.objects != 2 {
		t.Errorf("objects = %d, want 2", stats.objects)
	}
	if stats.arrays != 1 {
		t.Errorf("arrays = %d, want 1", stats.arrays)
	}
	if stats.scalars != 4 {
		t.Errorf("scalars = %d, want 4", stats.scalars)
	}
	if stats.maxDepth != 4 {
		t.Errorf("maxDepth = %d, want 4", stats.maxDepth)
	}
}

func TestCheckDocument(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := checkDocument(good, false); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}

	scalar := filepath.Join(dir, "scalar.json")
	if err := os.WriteFile(scalar, []byte(`42`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := checkDocument(scalar, false); err == nil {
		t.Error("scalar root accepted")
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte(`{"a":`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := checkDocument(broken, false); err == nil {
		t.Error("truncated document accepted")
	}
}
