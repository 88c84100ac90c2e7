// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontext

import (
	"bytes"
	"testing"
)

func TestEncoderRoundTripsScenario1(t *testing.T) {
	// {"a":1,"b":[true,null,"x"]}
	e := NewBytesEncoder()
	write := func(tok Token) {
		t.Helper()
		if err := e.WriteToken(tok); err != nil {
			t.Fatalf("WriteToken(%+v) error = %v", tok, err)
		}
	}
	write(ObjectStart)
	write(StringValue("a"))
	write(Int64Value(1))
	write(StringValue("b"))
	write(ArrayStart)
	write(BooleanValue(true))
	write(Null)
	write(StringValue("x"))
	write(ArrayEnd)
	write(ObjectEnd)
	if err := e.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	want := `{"a":1,"b":[true,null,"x"]}`
	if got := string(e.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestEncoderInt64RoundTrips(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 9223372036854775807, -9223372036854775808} {
		e := NewBytesEncoder()
		if err := e.WriteToken(Int64Value(n)); err != nil {
			t.Fatalf("WriteToken(%d) error = %v", n, err)
		}
		e.Close()
		p := NewParser(e.Bytes())
		tok, err := p.Next()
		if err != nil {
			t.Fatalf("re-parse(%d) error = %v", n, err)
		}
		if tok.Int64() != n {
			t.Errorf("re-parsed Int64() = %d, want %d", tok.Int64(), n)
		}
	}
}

func TestEncoderDoubleRoundTripsBitForBit(t *testing.T) {
	for _, f := range []float64{0, 1.5, -1.5, 1e300, 1e-300, 3.141592653589793} {
		e := NewBytesEncoder()
		if err := e.WriteToken(DoubleValue(f)); err != nil {
			t.Fatalf("WriteToken(%v) error = %v", f, err)
		}
		e.Close()
		p := NewParser(e.Bytes())
		tok, err := p.Next()
		if err != nil {
			t.Fatalf("re-parse(%v) error = %v", f, err)
		}
		// An integral double such as 0 is written without a fraction or
		// exponent and re-parses as an Int64 token.
		var got float64
		if tok.NumberKind() == Int64Number {
			got = float64(tok.Int64())
		} else {
			got = tok.Double()
		}
		if got != f {
			t.Errorf("re-parsed value = %v, want %v", got, f)
		}
	}
}

func TestEncoderPretty(t *testing.T) {
	e := NewBytesEncoder(Pretty(true), Indent("  "))
	tokens := []Token{ObjectStart, StringValue("a"), Int64Value(1), ObjectEnd}
	for _, tok := range tokens {
		if err := e.WriteToken(tok); err != nil {
			t.Fatalf("WriteToken(%+v) error = %v", tok, err)
		}
	}
	e.Close()
	want := "{\n  \"a\": 1\n}"
	if got := string(e.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestEncoderRejectsMismatchedStructure(t *testing.T) {
	e := NewBytesEncoder()
	if err := e.WriteToken(ObjectStart); err != nil {
		t.Fatalf("WriteToken(ObjectStart) error = %v", err)
	}
	if err := e.WriteToken(ArrayEnd); err == nil {
		t.Fatal("WriteToken(ArrayEnd) = nil, want mismatch error")
	}
}

func TestEncoderEscapesControlCharacters(t *testing.T) {
	e := NewBytesEncoder()
	if err := e.WriteToken(StringValue("a\nb\tc")); err != nil {
		t.Fatalf("WriteToken() error = %v", err)
	}
	e.Close()
	want := `"a\nb\tc"`
	if got := string(e.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestEncoderEscapeSlashesOption(t *testing.T) {
	e := NewBytesEncoder(EscapeSlashes(true))
	e.WriteToken(StringValue("a/b"))
	e.Close()
	want := `"a\/b"`
	if got := string(e.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestEncoderASCIIOnlyOption(t *testing.T) {
	e := NewBytesEncoder(ASCIIOnly(true))
	e.WriteToken(StringValue("h" + string(rune(0x00E9)) + "llo"))
	e.Close()
	want := "\"h\\u00e9llo\""
	if got := string(e.Bytes()); got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestEncoderNonFiniteRejectedByDefault(t *testing.T) {
	e := NewBytesEncoder()
	if err := e.WriteToken(DoubleValue(nanFloat())); err == nil {
		t.Fatal("WriteToken(NaN) = nil, want error without AllowNonFiniteNumbers")
	}
}

func nanFloat() float64 {
	var zero float64
	return zero / zero
}

func TestEncoderNonFiniteAllowed(t *testing.T) {
	e := NewBytesEncoder(AllowNonFiniteNumbers(true))
	if err := e.WriteToken(DoubleValue(nanFloat())); err != nil {
		t.Fatalf("WriteToken(NaN) error = %v", err)
	}
	e.Close()
	if got := string(e.Bytes()); got != `"NaN"` {
		t.Errorf("Bytes() = %q, want %q", got, `"NaN"`)
	}
}

func TestEncoderToWriterFlushesOnClose(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	e.WriteToken(StringValue("hi"))
	if buf.Len() != 0 {
		t.Fatalf("buf.Len() = %d before Close, want 0 (small write should stay buffered)", buf.Len())
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if got := buf.String(); got != `"hi"` {
		t.Errorf("buf.String() = %q, want %q", got, `"hi"`)
	}
}

func TestEncoderChunkFlushThreshold(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, ChunkFlushThreshold(4))
	if err := e.WriteToken(StringValue("hello world")); err != nil {
		t.Fatalf("WriteToken() error = %v", err)
	}
	// With a 4-byte threshold, a string longer than that should have
	// already flushed to buf before Close is called.
	if buf.Len() == 0 {
		t.Error("buf.Len() = 0 before Close, want data already flushed past the small threshold")
	}
	e.Close()
	if got := buf.String(); got != `"hello world"` {
		t.Errorf("buf.String() = %q, want %q", got, `"hello world"`)
	}
}

func TestEncoderRejectsExceedingMaxDepth(t *testing.T) {
	e := NewBytesEncoder(MaxDepth(2))
	if err := e.WriteToken(ArrayStart); err != nil {
		t.Fatalf("WriteToken(ArrayStart) error = %v", err)
	}
	if err := e.WriteToken(ArrayStart); err != nil {
		t.Fatalf("WriteToken(ArrayStart) error = %v", err)
	}
	if err := e.WriteToken(ArrayStart); err == nil {
		t.Fatal("WriteToken(ArrayStart) = nil error, want depth limit rejection")
	}
}
