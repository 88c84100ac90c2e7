// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontext

import "github.com/shopspring/decimal"

// Kind represents each possible structural token kind with a single byte,
// which is conveniently the first byte of that kind's grammar, with the
// restriction that numbers are always represented with '0' regardless of
// which of the three numeric representations backs them:
//
//   - 'n': null
//   - 'f': false
//   - 't': true
//   - '"': string
//   - '0': number
//   - '{': object start
//   - '}': object end
//   - '[': array start
//   - ']': array end
//
// The zero Kind is invalid.
type Kind byte

const (
	Invalid         Kind = 0
	KindNull        Kind = 'n'
	KindFalse       Kind = 'f'
	KindTrue        Kind = 't'
	KindString      Kind = '"'
	KindNumber      Kind = '0'
	KindObjectStart Kind = '{'
	KindObjectEnd   Kind = '}'
	KindArrayStart  Kind = '['
	KindArrayEnd    Kind = ']'
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindFalse, KindTrue:
		return "bool"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindObjectStart:
		return "{"
	case KindObjectEnd:
		return "}"
	case KindArrayStart:
		return "["
	case KindArrayEnd:
		return "]"
	default:
		return "invalid"
	}
}

// NumberKind refines a KindNumber Token into which of the three lossless
// numeric representations it was lexed as.
type NumberKind byte

const (
	NoNumber NumberKind = iota
	Int64Number
	DoubleNumber
	DecimalNumber
)

// Token is a single lexical unit produced by Parser.Next, or consumed by
// Encoder.WriteToken. A Token cannot represent an entire object or array
// value; it represents only the structural delimiters and scalar leaves
// of the JSON grammar. It carries the source line/column at which it was
// found, one-based, for error reporting by callers that stash Tokens.
type Token struct {
	kind    Kind
	numKind NumberKind
	line    int
	column  int

	str string
	i64 int64
	f64 float64
	dec decimal.Decimal
}

// Kind reports the token's structural kind.
func (t Token) Kind() Kind { return t.kind }

// NumberKind reports which numeric representation backs a KindNumber
// token. It is NoNumber for every other kind.
func (t Token) NumberKind() NumberKind { return t.numKind }

// Line reports the one-based source line at which the token began.
func (t Token) Line() int { return t.line }

// Column reports the one-based code-point column, counted since the
// last line break, at which the token began.
func (t Token) Column() int { return t.column }

// Bool reports the boolean value of a KindTrue/KindFalse token.
// It panics for any other kind.
func (t Token) Bool() bool {
	switch t.kind {
	case KindTrue:
		return true
	case KindFalse:
		return false
	default:
		panic("jsontext: Token.Bool called on a " + t.kind.String() + " token")
	}
}

// String returns the unescaped string value of a KindString token.
// It panics for any other kind.
func (t Token) String() string {
	if t.kind != KindString {
		panic("jsontext: Token.String called on a " + t.kind.String() + " token")
	}
	return t.str
}

// Int64 returns the value of an Int64Number token. It panics for any
// other numeric representation or kind.
func (t Token) Int64() int64 {
	if t.kind != KindNumber || t.numKind != Int64Number {
		panic("jsontext: Token.Int64 called on a non-int64 token")
	}
	return t.i64
}

// Double returns the value of a DoubleNumber token. It panics for any
// other numeric representation or kind.
func (t Token) Double() float64 {
	if t.kind != KindNumber || t.numKind != DoubleNumber {
		panic("jsontext: Token.Double called on a non-double token")
	}
	return t.f64
}

// Decimal returns the value of a DecimalNumber token. It panics for any
// other numeric representation or kind.
func (t Token) Decimal() decimal.Decimal {
	if t.kind != KindNumber || t.numKind != DecimalNumber {
		panic("jsontext: Token.Decimal called on a non-decimal token")
	}
	return t.dec
}

// Structural, nullary tokens. Scalar-carrying tokens are constructed with
// the functions below instead of exposed as values.
var (
	Null        = Token{kind: KindNull}
	ObjectStart = Token{kind: KindObjectStart}
	ObjectEnd   = Token{kind: KindObjectEnd}
	ArrayStart  = Token{kind: KindArrayStart}
	ArrayEnd    = Token{kind: KindArrayEnd}
)

// BooleanValue constructs a Token representing a JSON boolean.
func BooleanValue(b bool) Token {
	if b {
		return Token{kind: KindTrue}
	}
	return Token{kind: KindFalse}
}

// StringValue constructs a Token representing a JSON string.
func StringValue(s string) Token {
	return Token{kind: KindString, str: s}
}

// Int64Value constructs a Token representing a JSON number lexed as a
// signed 64-bit integer.
func Int64Value(i int64) Token {
	return Token{kind: KindNumber, numKind: Int64Number, i64: i}
}

// DoubleValue constructs a Token representing a JSON number lexed (or
// produced) as an IEEE-754 double.
func DoubleValue(f float64) Token {
	return Token{kind: KindNumber, numKind: DoubleNumber, f64: f}
}

// DecimalValue constructs a Token representing a JSON number lexed (or
// produced) as an arbitrary-precision decimal.
func DecimalValue(d decimal.Decimal) Token {
	return Token{kind: KindNumber, numKind: DecimalNumber, dec: d}
}

func withPos(t Token, line, column int) Token {
	t.line, t.column = line, column
	return t
}
