// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

import (
	"strings"
	"testing"

	"github.com/go-jsoncore/jsoncore/jsontext"
	"github.com/google/go-cmp/cmp"
)

func TestParseScenario1FlatObject(t *testing.T) {
	v, err := Parse([]byte(`{"a":1,"b":[true,null,"x"]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	obj, err := v.GetObject()
	if err != nil {
		t.Fatalf("GetObject() error = %v", err)
	}
	a, err := obj.GetInt64("a")
	if err != nil || a != 1 {
		t.Errorf("GetInt64(a) = (%d, %v), want (1, nil)", a, err)
	}
	arr, err := obj.GetArray("b")
	if err != nil {
		t.Fatalf("GetArray(b) error = %v", err)
	}
	if arr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", arr.Len())
	}
	if b0, _ := arr.GetBool(0); !b0 {
		t.Error("b[0] != true")
	}
	if e, _ := arr.At(1); !e.IsNull() {
		t.Error("b[1] is not null")
	}
	if s, _ := arr.GetString(2); s != "x" {
		t.Errorf("b[2] = %q, want x", s)
	}
}

func TestParseScenario2NestedObjects(t *testing.T) {
	v, err := Parse([]byte(`{"user":{"name":"Ada","tags":["x","y",7]}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	name, err := v.GetObject()
	if err != nil {
		t.Fatal(err)
	}
	user, err := name.GetObject("user")
	if err != nil {
		t.Fatalf("GetObject(user) error = %v", err)
	}
	n, err := user.GetString("name")
	if err != nil || n != "Ada" {
		t.Errorf("GetString(name) = (%q, %v), want (Ada, nil)", n, err)
	}
}

func TestParseScenario3NumberTrichotomy(t *testing.T) {
	v, err := Parse([]byte(`[1, 1.5, 99999999999999999999]`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	arr, err := v.GetArray()
	if err != nil {
		t.Fatal(err)
	}
	e0, _ := arr.At(0)
	if e0.Category() != CategoryNumber {
		t.Errorf("elem 0 category = %v, want number", e0.Category())
	}
	i, err := arr.GetInt64(0)
	if err != nil || i != 1 {
		t.Errorf("GetInt64(0) = (%d, %v), want (1, nil)", i, err)
	}
	f, err := arr.GetDouble(1)
	if err != nil || f != 1.5 {
		t.Errorf("GetDouble(1) = (%v, %v), want (1.5, nil)", f, err)
	}
	// Overflowing an int64 without UseDecimals promotes to Double.
	e2, _ := arr.At(2)
	if e2.Category() != CategoryNumber {
		t.Errorf("elem 2 category = %v, want number", e2.Category())
	}
}

func TestParseScenario6EmptyContainers(t *testing.T) {
	v, err := Parse([]byte(`{"o":{},"a":[]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	obj, _ := v.GetObject()
	o, err := obj.GetObject("o")
	if err != nil || o.Len() != 0 {
		t.Errorf("GetObject(o) = (%v, %v), want empty object", o, err)
	}
	a, err := obj.GetArray("a")
	if err != nil || a.Len() != 0 {
		t.Errorf("GetArray(a) = (%v, %v), want empty array", a, err)
	}
}

func TestParseEncodeRoundTripInvariant(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":[true,null,"x"]}`,
		`{"user":{"name":"Ada","tags":["x","y",7]}}`,
		`[1,2,3]`,
		`"hello"`,
		`null`,
		`42`,
	}
	for _, in := range inputs {
		v, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", in, err)
		}
		out, err := v.Encode()
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		v2, err := Parse(out)
		if err != nil {
			t.Fatalf("re-Parse(%q) error = %v", out, err)
		}
		if diff := cmp.Diff(v, v2); diff != "" {
			t.Errorf("round trip changed value: %q -> %q (-before +after):\n%s", in, out, diff)
		}
	}
}

func TestParseUsesLastOccurrenceForDuplicateKeyByDefault(t *testing.T) {
	v, err := Parse([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	obj, _ := v.GetObject()
	a, err := obj.GetInt64("a")
	if err != nil || a != 2 {
		t.Errorf("GetInt64(a) = (%d, %v), want (2, nil)", a, err)
	}
	if obj.Len() != 1 {
		t.Errorf("Len() = %d, want 1", obj.Len())
	}
}

func TestParseKeepDuplicateKeysRejectsSecondOccurrence(t *testing.T) {
	_, err := Parse([]byte(`{"a":1,"a":2}`), jsontext.KeepDuplicateKeys(true))
	if err == nil {
		t.Fatal("Parse() = nil error, want DuplicateKeyError")
	}
	dupErr, ok := err.(*DuplicateKeyError)
	if !ok {
		t.Fatalf("error = %v (%T), want *DuplicateKeyError", err, err)
	}
	if dupErr.Key != "a" {
		t.Errorf("Key = %q, want a", dupErr.Key)
	}
}

func TestParseTrailingDataRejectedWithoutStreaming(t *testing.T) {
	_, err := Parse([]byte(`1 2`))
	if err == nil {
		t.Fatal("Parse() = nil error, want error for trailing top-level data")
	}
}

func TestDecoderStreamingMultipleTopLevelValues(t *testing.T) {
	d := NewDecoder([]byte(`1 2 3`), jsontext.Streaming(true))
	var got []int64
	for d.MoreValues() {
		v, err := d.Decode()
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		i, err := v.GetInt64()
		if err != nil {
			t.Fatalf("GetInt64() error = %v", err)
		}
		got = append(got, i)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("got = %v, want [1 2 3]", got)
	}
}

func TestParseReaderMatchesParse(t *testing.T) {
	in := `{"a":1}`
	v1, err := ParseReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	v2, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(v1, v2); diff != "" {
		t.Errorf("ParseReader() and Parse() disagree on the same input (-reader +bytes):\n%s", diff)
	}
}

func TestParseUseDecimalsForNonIntegerNumbers(t *testing.T) {
	v, err := Parse([]byte(`1.1`), jsontext.UseDecimals(true))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	s, err := v.ToString()
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	if s != "1.1" {
		t.Errorf("ToString() = %q, want %q", s, "1.1")
	}
}
