// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

// This file implements the on-array-with-index row of the accessor
// matrix. Every method looks index i up in a, applies the category's
// coercion, and prefixes any resulting error's Path with "[i]" at this
// lookup boundary.

func WithIndex[T any](a *Array, i int, cat Category, coerce func(JSON) (T, error)) (T, error) {
	var zero T
	v, ok := a.At(i)
	if !ok {
		return zero, prefixIndex(missingValue(required(cat)), i)
	}
	res, err := coerce(v)
	if err != nil {
		return res, prefixIndex(err, i)
	}
	return res, nil
}

func WithIndexOpt[T any](a *Array, i int, coerce func(JSON) (T, error)) (T, error) {
	var zero T
	v, ok := a.At(i)
	if !ok || v.IsNull() {
		return zero, nil
	}
	res, err := coerce(v)
	if err != nil {
		return res, prefixIndex(markOptional(err), i)
	}
	return res, nil
}

// GetBool requires element i to be a JSON boolean.
func (a *Array) GetBool(i int) (bool, error) { return WithIndex(a, i, CategoryBool, coerceBool) }

// GetBoolOpt is GetBool's optional form.
func (a *Array) GetBoolOpt(i int) (bool, error) { return WithIndexOpt(a, i, coerceBool) }

// ToBool behaves like GetBool.
func (a *Array) ToBool(i int) (bool, error) { return WithIndex(a, i, CategoryBool, coerceBool) }

// ToBoolOpt is ToBool's optional form.
func (a *Array) ToBoolOpt(i int) (bool, error) { return WithIndexOpt(a, i, coerceBool) }

// GetString requires element i to already be a JSON string.
func (a *Array) GetString(i int) (string, error) {
	return WithIndex(a, i, CategoryString, coerceStringStrict)
}

// GetStringOpt is GetString's optional form.
func (a *Array) GetStringOpt(i int) (string, error) {
	return WithIndexOpt(a, i, coerceStringStrict)
}

// ToString stringifies any scalar element; Null becomes the literal "null".
func (a *Array) ToString(i int) (string, error) {
	return WithIndex(a, i, CategoryString, coerceStringLoose)
}

// ToStringOpt is ToString's optional form: Null becomes "".
func (a *Array) ToStringOpt(i int) (string, error) {
	return WithIndexOpt(a, i, coerceStringLoose)
}

// GetInt64 accepts any of Int64/Double/Decimal at index i, without parsing strings.
func (a *Array) GetInt64(i int) (int64, error) {
	return WithIndex(a, i, CategoryNumber, func(v JSON) (int64, error) { return coerceInt64(v, false) })
}

// GetInt64Opt is GetInt64's optional form.
func (a *Array) GetInt64Opt(i int) (int64, error) {
	return WithIndexOpt(a, i, func(v JSON) (int64, error) { return coerceInt64(v, false) })
}

// ToInt64 additionally parses a String element as a base-10 integer.
func (a *Array) ToInt64(i int) (int64, error) {
	return WithIndex(a, i, CategoryNumber, func(v JSON) (int64, error) { return coerceInt64(v, true) })
}

// ToInt64Opt is ToInt64's optional form.
func (a *Array) ToInt64Opt(i int) (int64, error) {
	return WithIndexOpt(a, i, func(v JSON) (int64, error) { return coerceInt64(v, true) })
}

// GetInt narrows GetInt64 to the platform int width.
func (a *Array) GetInt(i int) (int, error) {
	return WithIndex(a, i, CategoryNumber, func(v JSON) (int, error) { return coerceInt(v, false) })
}

// GetIntOpt is GetInt's optional form.
func (a *Array) GetIntOpt(i int) (int, error) {
	return WithIndexOpt(a, i, func(v JSON) (int, error) { return coerceInt(v, false) })
}

// ToInt narrows ToInt64 to the platform int width.
func (a *Array) ToInt(i int) (int, error) {
	return WithIndex(a, i, CategoryNumber, func(v JSON) (int, error) { return coerceInt(v, true) })
}

// ToIntOpt is ToInt's optional form.
func (a *Array) ToIntOpt(i int) (int, error) {
	return WithIndexOpt(a, i, func(v JSON) (int, error) { return coerceInt(v, true) })
}

// GetDouble accepts any of Int64/Double/Decimal at index i, without parsing strings.
func (a *Array) GetDouble(i int) (float64, error) {
	return WithIndex(a, i, CategoryNumber, func(v JSON) (float64, error) { return coerceDouble(v, false) })
}

// GetDoubleOpt is GetDouble's optional form.
func (a *Array) GetDoubleOpt(i int) (float64, error) {
	return WithIndexOpt(a, i, func(v JSON) (float64, error) { return coerceDouble(v, false) })
}

// ToDouble additionally parses a String element with the standard
// floating-point grammar.
func (a *Array) ToDouble(i int) (float64, error) {
	return WithIndex(a, i, CategoryNumber, func(v JSON) (float64, error) { return coerceDouble(v, true) })
}

// ToDoubleOpt is ToDouble's optional form.
func (a *Array) ToDoubleOpt(i int) (float64, error) {
	return WithIndexOpt(a, i, func(v JSON) (float64, error) { return coerceDouble(v, true) })
}

// GetObject requires element i to be a JSON object.
func (a *Array) GetObject(i int) (*Object, error) {
	return WithIndex(a, i, CategoryObject, coerceObject)
}

// GetObjectOpt is GetObject's optional form.
func (a *Array) GetObjectOpt(i int) (*Object, error) { return WithIndexOpt(a, i, coerceObject) }

// ToObject behaves like GetObject.
func (a *Array) ToObject(i int) (*Object, error) {
	return WithIndex(a, i, CategoryObject, coerceObject)
}

// ToObjectOpt is ToObject's optional form.
func (a *Array) ToObjectOpt(i int) (*Object, error) { return WithIndexOpt(a, i, coerceObject) }

// GetArray requires element i to be a JSON array.
func (a *Array) GetArray(i int) (*Array, error) {
	return WithIndex(a, i, CategoryArray, coerceArray)
}

// GetArrayOpt is GetArray's optional form.
func (a *Array) GetArrayOpt(i int) (*Array, error) { return WithIndexOpt(a, i, coerceArray) }

// ToArray behaves like GetArray.
func (a *Array) ToArray(i int) (*Array, error) {
	return WithIndex(a, i, CategoryArray, coerceArray)
}

// ToArrayOpt is ToArray's optional form.
func (a *Array) ToArrayOpt(i int) (*Array, error) { return WithIndexOpt(a, i, coerceArray) }
