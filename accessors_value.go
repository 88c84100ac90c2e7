// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

// This file implements the on-value row of the accessor matrix: the
// get/to x required/optional combination for each scalar category,
// operating on v itself rather than on a keyed or indexed lookup.

func valueRequired[T any](v JSON, coerce func(JSON) (T, error)) (T, error) {
	return coerce(v)
}

func valueOptional[T any](v JSON, coerce func(JSON) (T, error)) (T, error) {
	var zero T
	if v.IsNull() {
		return zero, nil
	}
	res, err := coerce(v)
	if err != nil {
		return res, markOptional(err)
	}
	return res, nil
}

// GetBool requires v to be a JSON boolean.
func (v JSON) GetBool() (bool, error) { return valueRequired(v, coerceBool) }

// GetBoolOpt is GetBool's optional form: Null yields (false, nil).
func (v JSON) GetBoolOpt() (bool, error) { return valueOptional(v, coerceBool) }

// ToBool has no coercion rule of its own; it behaves like GetBool.
func (v JSON) ToBool() (bool, error) { return valueRequired(v, coerceBool) }

// ToBoolOpt is ToBool's optional form.
func (v JSON) ToBoolOpt() (bool, error) { return valueOptional(v, coerceBool) }

// GetString requires v to already be a JSON string.
func (v JSON) GetString() (string, error) { return valueRequired(v, coerceStringStrict) }

// GetStringOpt is GetString's optional form.
func (v JSON) GetStringOpt() (string, error) { return valueOptional(v, coerceStringStrict) }

// ToString stringifies any scalar; Null becomes the literal "null".
func (v JSON) ToString() (string, error) { return valueRequired(v, coerceStringLoose) }

// ToStringOpt is ToString's optional form: Null becomes "".
func (v JSON) ToStringOpt() (string, error) { return valueOptional(v, coerceStringLoose) }

// GetInt64 accepts any of Int64/Double/Decimal, without parsing strings.
func (v JSON) GetInt64() (int64, error) {
	return valueRequired(v, func(v JSON) (int64, error) { return coerceInt64(v, false) })
}

// GetInt64Opt is GetInt64's optional form.
func (v JSON) GetInt64Opt() (int64, error) {
	return valueOptional(v, func(v JSON) (int64, error) { return coerceInt64(v, false) })
}

// ToInt64 additionally parses a String as a base-10 integer, falling back
// to double parsing on overflow.
func (v JSON) ToInt64() (int64, error) {
	return valueRequired(v, func(v JSON) (int64, error) { return coerceInt64(v, true) })
}

// ToInt64Opt is ToInt64's optional form.
func (v JSON) ToInt64Opt() (int64, error) {
	return valueOptional(v, func(v JSON) (int64, error) { return coerceInt64(v, true) })
}

// GetInt narrows GetInt64 to the platform int width.
func (v JSON) GetInt() (int, error) {
	return valueRequired(v, func(v JSON) (int, error) { return coerceInt(v, false) })
}

// GetIntOpt is GetInt's optional form.
func (v JSON) GetIntOpt() (int, error) {
	return valueOptional(v, func(v JSON) (int, error) { return coerceInt(v, false) })
}

// ToInt narrows ToInt64 to the platform int width.
func (v JSON) ToInt() (int, error) {
	return valueRequired(v, func(v JSON) (int, error) { return coerceInt(v, true) })
}

// ToIntOpt is ToInt's optional form.
func (v JSON) ToIntOpt() (int, error) {
	return valueOptional(v, func(v JSON) (int, error) { return coerceInt(v, true) })
}

// GetDouble accepts any of Int64/Double/Decimal, without parsing strings.
func (v JSON) GetDouble() (float64, error) {
	return valueRequired(v, func(v JSON) (float64, error) { return coerceDouble(v, false) })
}

// GetDoubleOpt is GetDouble's optional form.
func (v JSON) GetDoubleOpt() (float64, error) {
	return valueOptional(v, func(v JSON) (float64, error) { return coerceDouble(v, false) })
}

// ToDouble additionally parses a String with the standard floating-point
// grammar.
func (v JSON) ToDouble() (float64, error) {
	return valueRequired(v, func(v JSON) (float64, error) { return coerceDouble(v, true) })
}

// ToDoubleOpt is ToDouble's optional form.
func (v JSON) ToDoubleOpt() (float64, error) {
	return valueOptional(v, func(v JSON) (float64, error) { return coerceDouble(v, true) })
}

// GetObject requires v to be a JSON object.
func (v JSON) GetObject() (*Object, error) { return valueRequired(v, coerceObject) }

// GetObjectOpt is GetObject's optional form.
func (v JSON) GetObjectOpt() (*Object, error) { return valueOptional(v, coerceObject) }

// ToObject has no coercion rule of its own; it behaves like GetObject.
func (v JSON) ToObject() (*Object, error) { return valueRequired(v, coerceObject) }

// ToObjectOpt is ToObject's optional form.
func (v JSON) ToObjectOpt() (*Object, error) { return valueOptional(v, coerceObject) }

// GetArray requires v to be a JSON array.
func (v JSON) GetArray() (*Array, error) { return valueRequired(v, coerceArray) }

// GetArrayOpt is GetArray's optional form.
func (v JSON) GetArrayOpt() (*Array, error) { return valueOptional(v, coerceArray) }

// ToArray has no coercion rule of its own; it behaves like GetArray.
func (v JSON) ToArray() (*Array, error) { return valueRequired(v, coerceArray) }

// ToArrayOpt is ToArray's optional form.
func (v JSON) ToArrayOpt() (*Array, error) { return valueOptional(v, coerceArray) }
