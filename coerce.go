// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// This file holds the per-category conversion logic shared by every get/to
// x required/optional x value/keyed/indexed accessor combination in
// accessors_value.go, accessors_object.go, and accessors_array.go. Each
// function here has signature func(JSON) (T, error) and is unaware of
// where the JSON came from; path-prefixing is layered on by the callers
// in the other files.

func coerceBool(v JSON) (bool, error) {
	if v.k == kindBool {
		return v.b, nil
	}
	return false, missingOrInvalid(required(CategoryBool), categoryPtr(v.Category()))
}

// coerceStringStrict is the get-family string accessor: only an actual
// JSON string is accepted.
func coerceStringStrict(v JSON) (string, error) {
	if v.k == kindString {
		return v.s, nil
	}
	return "", missingOrInvalid(required(CategoryString), categoryPtr(v.Category()))
}

// coerceStringLoose is the to-family string accessor: every scalar
// stringifies via its canonical form; null becomes the literal "null"
// (the required-family carve-out named in the spec); object/array error.
func coerceStringLoose(v JSON) (string, error) {
	switch v.k {
	case kindNull:
		return "null", nil
	case kindString:
		return v.s, nil
	case kindBool:
		return strconv.FormatBool(v.b), nil
	case kindInt64:
		return strconv.FormatInt(v.i64, 10), nil
	case kindDouble:
		return formatDoubleCanonical(v.f64), nil
	case kindDecimal:
		return v.dec.String(), nil
	default:
		return "", missingOrInvalid(required(CategoryString), categoryPtr(v.Category()))
	}
}

var (
	maxInt64AsDecimal = decimal.NewFromInt(math.MaxInt64)
	minInt64AsDecimal = decimal.NewFromInt(math.MinInt64)
)

// coerceInt64 implements both get and to family for the int64 target;
// allowStringParse selects to-family behavior (get does not parse
// strings).
func coerceInt64(v JSON, allowStringParse bool) (int64, error) {
	switch v.k {
	case kindInt64:
		return v.i64, nil
	case kindDouble:
		f := v.f64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, &OutOfRangeDouble{Value: f, Target: "int64"}
		}
		t := math.Trunc(f)
		if t < math.MinInt64 || t >= math.MaxInt64 {
			return 0, &OutOfRangeDouble{Value: f, Target: "int64"}
		}
		return int64(t), nil
	case kindDecimal:
		t := v.dec.Truncate(0)
		if t.GreaterThan(maxInt64AsDecimal) || t.LessThan(minInt64AsDecimal) {
			return 0, &OutOfRangeDecimal{Value: v.dec, Target: "int64"}
		}
		return t.IntPart(), nil
	case kindString:
		if !allowStringParse {
			return 0, missingOrInvalid(required(CategoryNumber), categoryPtr(v.Category()))
		}
		if i, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0, missingOrInvalid(required(CategoryNumber), categoryPtr(v.Category()))
		}
		return coerceInt64(Double(f), false)
	default:
		return 0, missingOrInvalid(required(CategoryNumber), categoryPtr(v.Category()))
	}
}

// coerceInt narrows coerceInt64's result to the platform int width.
func coerceInt(v JSON, allowStringParse bool) (int, error) {
	i64, err := coerceInt64(v, allowStringParse)
	if err != nil {
		return 0, err
	}
	if strconv.IntSize == 32 && (i64 < math.MinInt32 || i64 > math.MaxInt32) {
		return 0, &OutOfRangeInt64{Value: i64, Target: "int"}
	}
	return int(i64), nil
}

// coerceDouble implements both get and to family for the double target.
func coerceDouble(v JSON, allowStringParse bool) (float64, error) {
	switch v.k {
	case kindInt64:
		return float64(v.i64), nil
	case kindDouble:
		return v.f64, nil
	case kindDecimal:
		f, _ := v.dec.Float64()
		return f, nil
	case kindString:
		if !allowStringParse {
			return 0, missingOrInvalid(required(CategoryNumber), categoryPtr(v.Category()))
		}
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0, missingOrInvalid(required(CategoryNumber), categoryPtr(v.Category()))
		}
		return f, nil
	default:
		return 0, missingOrInvalid(required(CategoryNumber), categoryPtr(v.Category()))
	}
}

func coerceObject(v JSON) (*Object, error) {
	if v.k == kindObject {
		return v.obj, nil
	}
	return nil, missingOrInvalid(required(CategoryObject), categoryPtr(v.Category()))
}

func coerceArray(v JSON) (*Array, error) {
	if v.k == kindArray {
		return v.arr, nil
	}
	return nil, missingOrInvalid(required(CategoryArray), categoryPtr(v.Category()))
}
