// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontext

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func collectTokens(t *testing.T, p *Parser) ([]Token, error) {
	t.Helper()
	var toks []Token
	for {
		tok, err := p.Next()
		if err != nil {
			if err == io.EOF {
				return toks, nil
			}
			return toks, err
		}
		toks = append(toks, tok)
	}
}

func TestParserLiterals(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
	}{
		{"null", KindNull},
		{"true", KindTrue},
		{"false", KindFalse},
		{`"hi"`, KindString},
		{"42", KindNumber},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := NewParser([]byte(tt.in))
			tok, err := p.Next()
			if err != nil {
				t.Fatalf("Next() error = %v", err)
			}
			if tok.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tok.Kind(), tt.kind)
			}
		})
	}
}

func TestParserIntegerBoundary(t *testing.T) {
	// Every integer literal with |n| <= 2^63-1 parses as Int64.
	tests := []int64{0, 1, -1, math.MaxInt64, math.MinInt64}
	for _, n := range tests {
		p := NewParser([]byte(itoa(n)))
		tok, err := p.Next()
		if err != nil {
			t.Fatalf("Next(%d) error = %v", n, err)
		}
		if tok.Kind() != KindNumber || tok.NumberKind() != Int64Number {
			t.Fatalf("Next(%d) kind = %v/%v, want number/int64", n, tok.Kind(), tok.NumberKind())
		}
		if tok.Int64() != n {
			t.Errorf("Int64() = %d, want %d", tok.Int64(), n)
		}
	}
}

func itoa(n int64) string {
	// avoid importing strconv twice for a one-off helper
	if n == 0 {
		return "0"
	}
	neg := n < 0
	var buf []byte
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	for u > 0 {
		buf = append([]byte{byte('0' + u%10)}, buf...)
		u /= 10
	}
	if neg {
		buf = append([]byte{'-'}, buf...)
	}
	return string(buf)
}

func TestParserIntegerOverflowPromotesToDouble(t *testing.T) {
	p := NewParser([]byte("9223372036854775808")) // math.MaxInt64 + 1
	tok, err := p.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if tok.Kind() != KindNumber || tok.NumberKind() != DoubleNumber {
		t.Fatalf("kind = %v/%v, want number/double", tok.Kind(), tok.NumberKind())
	}
	if tok.Double() != 9.223372036854776e18 {
		t.Errorf("Double() = %v, want 9.223372036854776e18", tok.Double())
	}
}

func TestParserIntegerOverflowPromotesToDecimal(t *testing.T) {
	p := NewParser([]byte("9223372036854775808"), UseDecimals(true))
	tok, err := p.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if tok.NumberKind() != DecimalNumber {
		t.Fatalf("NumberKind() = %v, want DecimalNumber", tok.NumberKind())
	}
	want := decimal.RequireFromString("9223372036854775808")
	if !tok.Decimal().Equal(want) {
		t.Errorf("Decimal() = %v, want %v", tok.Decimal(), want)
	}
}

func TestParserNonIntegerUsesDecimalsOption(t *testing.T) {
	p := NewParser([]byte("1.5e2"), UseDecimals(true))
	tok, err := p.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if tok.NumberKind() != DecimalNumber {
		t.Fatalf("NumberKind() = %v, want DecimalNumber", tok.NumberKind())
	}
	if tok.Decimal().String() != "150" {
		t.Errorf("Decimal().String() = %q, want %q", tok.Decimal().String(), "150")
	}
}

func TestParserEmptyInput(t *testing.T) {
	p := NewParser(nil)
	_, err := p.Next()
	var se *SyntacticError
	if !errors.As(err, &se) || se.Code != ErrUnexpectedEOF {
		t.Fatalf("Next() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestParserBOMOnlyInputIsEOFNotInvalidUTF(t *testing.T) {
	// UTF-8 BOM with nothing following it.
	p := NewParser([]byte{0xEF, 0xBB, 0xBF})
	_, err := p.Next()
	var se *SyntacticError
	if !errors.As(err, &se) {
		t.Fatalf("Next() error = %v, want *SyntacticError", err)
	}
	if se.Code != ErrUnexpectedEOF {
		t.Errorf("Code = %v, want ErrUnexpectedEOF", se.Code)
	}
}

func TestParserUTF16LEBOMObject(t *testing.T) {
	// Scenario: BOM FF FE followed by "{" NUL "}" NUL, decoded as UTF-16LE.
	data := []byte{0xFF, 0xFE, '{', 0x00, '}', 0x00}
	p := NewParser(data)
	toks, err := collectTokens(t, p)
	if err != nil {
		t.Fatalf("collectTokens() error = %v", err)
	}
	if len(toks) != 2 || toks[0].Kind() != KindObjectStart || toks[1].Kind() != KindObjectEnd {
		t.Fatalf("toks = %+v, want [ObjectStart ObjectEnd]", toks)
	}
}

func TestParserLenientCommentsAndTrailingComma(t *testing.T) {
	p := NewParser([]byte("// c\n{\"a\":1,}"))
	toks, err := collectTokens(t, p)
	if err != nil {
		t.Fatalf("collectTokens() error = %v", err)
	}
	wantKinds := []Kind{KindObjectStart, KindString, KindNumber, KindObjectEnd}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantKinds))
	}
	for i, k := range wantKinds {
		if toks[i].Kind() != k {
			t.Errorf("toks[%d].Kind() = %v, want %v", i, toks[i].Kind(), k)
		}
	}
}

func TestParserStrictRejectsCommentsAndTrailingComma(t *testing.T) {
	p := NewParser([]byte("// c\n{\"a\":1,}"), Strict(true))
	_, err := p.Next()
	var se *SyntacticError
	if !errors.As(err, &se) || se.Code != ErrUnexpectedCharacter {
		t.Fatalf("Next() error = %v, want ErrUnexpectedCharacter", err)
	}
}

func TestParserUnpairedSurrogate(t *testing.T) {
	// U+D800 with no trailing low surrogate.
	p := NewParser([]byte(`"\uD800"`))
	tok, err := p.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	s := tok.String()
	if got, want := []rune(s)[0], rune(0xFFFD); got != want {
		t.Errorf("first rune = %U, want %U", got, want)
	}
}

func TestParserUnpairedSurrogateStrict(t *testing.T) {
	p := NewParser([]byte(`"\uD800"`), Strict(true))
	_, err := p.Next()
	var se *SyntacticError
	if !errors.As(err, &se) || se.Code != ErrInvalidUnicodeScalar {
		t.Fatalf("Next() error = %v, want ErrInvalidUnicodeScalar", err)
	}
}

func TestParserExceedsMaxDepth(t *testing.T) {
	p := NewParser([]byte("[[[[[0]]]]]"), MaxDepth(3))
	_, err := collectTokens(t, p)
	var se *SyntacticError
	if !errors.As(err, &se) || se.Code != ErrExceededDepthLimit {
		t.Fatalf("collectTokens() error = %v, want ErrExceededDepthLimit", err)
	}
}

func TestParserTrailingDataRejected(t *testing.T) {
	p := NewParser([]byte("1 2"))
	if _, err := p.Next(); err != nil {
		t.Fatalf("first Next() error = %v", err)
	}
	if err := p.CheckEOF(); err == nil {
		t.Fatal("CheckEOF() = nil, want an error for trailing data")
	}
}

func TestParserStreamingAllowsMultipleValues(t *testing.T) {
	p := NewParser([]byte("1 2 3"), Streaming(true))
	var got []int64
	for p.MoreValues() {
		tok, err := p.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		got = append(got, tok.Int64())
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("got = %v, want [1 2 3]", got)
	}
}
