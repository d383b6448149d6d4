// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docid

import (
	"testing"

	"github.com/bureau-foundation/archive/lib/document"
)

func hashSource(t *testing.T, src string) Hash {
	t.Helper()
	v, err := document.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	digest, err := HashDocument(v)
	if err != nil {
		t.Fatalf("HashDocument(%q): %v", src, err)
	}
	return digest
}

func TestHashIgnoresFormatting(t *testing.T) {
	compact := hashSource(t, `{"a":1,"b":[true,null]}`)
	pretty := hashSource(t, "{\n    \"a\": 1,\n    \"b\": [\n        true,\n        null\n    ]\n}")
	if compact != pretty {
		t.Errorf("formatting changed identity: %s != %s", compact, pretty)
	}
}

func TestHashIgnoresMemberOrder(t *testing.T) {
	first := hashSource(t, `{"a":1,"b":2}`)
	second := hashSource(t, `{"b":2,"a":1}`)
	if first != second {
		t.Errorf("member order changed identity: %s != %s", first, second)
	}
}

func TestHashDistinguishesContent(t *testing.T) {
	first := hashSource(t, `{"a":1}`)
	second := hashSource(t, `{"a":2}`)
	if first == second {
		t.Error("different documents produced the same identity")
	}
}

func TestHashStringParseRoundTrip(t *testing.T) {
	digest := hashSource(t, `{"a":1}`)
	text := digest.String()
	if len(text) != 64 {
		t.Fatalf("identity text is %d chars, want 64", len(text))
	}
	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed != digest {
		t.Errorf("parse round trip: %s != %s", parsed, digest)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse("zz"); err == nil {
		t.Error("Parse accepted non-hex input")
	}
	if _, err := Parse("abcd"); err == nil {
		t.Error("Parse accepted short input")
	}
}
