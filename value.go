// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Category is the coarse classification of a JSON value used in accessor
// error reporting: null, bool, string, number, object, or array. Int64,
// Double, and Decimal are all reported as CategoryNumber since they are
// interchangeable at the accessor layer.
type Category byte

const (
	CategoryNull Category = iota
	CategoryBool
	CategoryString
	CategoryNumber
	CategoryObject
	CategoryArray
)

func (c Category) String() string {
	switch c {
	case CategoryNull:
		return "null"
	case CategoryBool:
		return "bool"
	case CategoryString:
		return "string"
	case CategoryNumber:
		return "number"
	case CategoryObject:
		return "object"
	case CategoryArray:
		return "array"
	default:
		return "invalid"
	}
}

type kind byte

const (
	kindNull kind = iota
	kindBool
	kindString
	kindInt64
	kindDouble
	kindDecimal
	kindObject
	kindArray
)

// JSON is a closed tagged union over every JSON value shape: Null, Bool,
// String, one of three numeric representations, Object, and Array. The
// zero value of JSON is Null. Values are immutable; Object and Array are
// reference types whose contents are mutated only through their builder
// methods prior to being shared.
type JSON struct {
	k   kind
	b   bool
	s   string
	i64 int64
	f64 float64
	dec decimal.Decimal
	obj *Object
	arr *Array
}

// Null is the JSON null value.
var Null = JSON{k: kindNull}

// Bool constructs a JSON boolean.
func Bool(b bool) JSON { return JSON{k: kindBool, b: b} }

// String constructs a JSON string.
func String(s string) JSON { return JSON{k: kindString, s: s} }

// Int64 constructs a JSON number backed by a signed 64-bit integer.
func Int64(i int64) JSON { return JSON{k: kindInt64, i64: i} }

// Double constructs a JSON number backed by an IEEE-754 double.
func Double(f float64) JSON { return JSON{k: kindDouble, f64: f} }

// Decimal constructs a JSON number backed by an arbitrary-precision decimal.
func Decimal(d decimal.Decimal) JSON { return JSON{k: kindDecimal, dec: d} }

// ObjectValue wraps an *Object as a JSON value. A nil o is treated as an
// empty object.
func ObjectValue(o *Object) JSON {
	if o == nil {
		o = NewObject()
	}
	return JSON{k: kindObject, obj: o}
}

// ArrayValue wraps an *Array as a JSON value. A nil a is treated as an
// empty array.
func ArrayValue(a *Array) JSON {
	if a == nil {
		a = NewArray()
	}
	return JSON{k: kindArray, arr: a}
}

// IsNull reports whether v is the JSON null value.
func (v JSON) IsNull() bool { return v.k == kindNull }

// Category reports v's coarse classification.
func (v JSON) Category() Category {
	switch v.k {
	case kindNull:
		return CategoryNull
	case kindBool:
		return CategoryBool
	case kindString:
		return CategoryString
	case kindInt64, kindDouble, kindDecimal:
		return CategoryNumber
	case kindObject:
		return CategoryObject
	case kindArray:
		return CategoryArray
	default:
		return CategoryNull
	}
}

func categoryPtr(c Category) *Category { return &c }

// Equal reports whether v and other are structurally equal: for Object,
// the same key set with equal values regardless of order; for Array,
// equal length with positionally equal elements; for Number, equal
// numeric value regardless of which of Int64/Double/Decimal backs each
// side (except that two Doubles compare bit-for-bit, so distinct NaN
// payloads or +0/-0 are respected).
func (v JSON) Equal(other JSON) bool {
	if v.Category() != other.Category() {
		return false
	}
	switch v.Category() {
	case CategoryNull:
		return true
	case CategoryBool:
		return v.b == other.b
	case CategoryString:
		return v.s == other.s
	case CategoryNumber:
		return numbersEqual(v, other)
	case CategoryObject:
		return v.obj.Equal(other.obj)
	case CategoryArray:
		return v.arr.Equal(other.arr)
	default:
		return false
	}
}

func numbersEqual(a, b JSON) bool {
	if a.k == kindDouble && b.k == kindDouble {
		return math.Float64bits(a.f64) == math.Float64bits(b.f64)
	}
	if a.k == kindDouble && (math.IsNaN(a.f64) || math.IsInf(a.f64, 0)) {
		return false
	}
	if b.k == kindDouble && (math.IsNaN(b.f64) || math.IsInf(b.f64, 0)) {
		return false
	}
	return a.asDecimal().Equal(b.asDecimal())
}

func (v JSON) asDecimal() decimal.Decimal {
	switch v.k {
	case kindInt64:
		return decimal.NewFromInt(v.i64)
	case kindDouble:
		return decimal.NewFromFloat(v.f64)
	case kindDecimal:
		return v.dec
	default:
		return decimal.Zero
	}
}

func formatDoubleCanonical(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
