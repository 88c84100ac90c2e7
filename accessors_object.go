// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

// This file implements the on-object-with-key row of the accessor matrix.
// Every method looks key up in o, applies the category's coercion, and
// prefixes any resulting error's Path with key at this lookup boundary.

func WithKey[T any](o *Object, key string, cat Category, coerce func(JSON) (T, error)) (T, error) {
	var zero T
	v, ok := o.Get(key)
	if !ok {
		return zero, prefixKey(missingValue(required(cat)), key)
	}
	res, err := coerce(v)
	if err != nil {
		return res, prefixKey(err, key)
	}
	return res, nil
}

func WithKeyOpt[T any](o *Object, key string, coerce func(JSON) (T, error)) (T, error) {
	var zero T
	v, ok := o.Get(key)
	if !ok || v.IsNull() {
		return zero, nil
	}
	res, err := coerce(v)
	if err != nil {
		return res, prefixKey(markOptional(err), key)
	}
	return res, nil
}

// GetBool requires the member at key to be a JSON boolean.
func (o *Object) GetBool(key string) (bool, error) { return WithKey(o, key, CategoryBool, coerceBool) }

// GetBoolOpt is GetBool's optional form.
func (o *Object) GetBoolOpt(key string) (bool, error) { return WithKeyOpt(o, key, coerceBool) }

// ToBool behaves like GetBool.
func (o *Object) ToBool(key string) (bool, error) { return WithKey(o, key, CategoryBool, coerceBool) }

// ToBoolOpt is ToBool's optional form.
func (o *Object) ToBoolOpt(key string) (bool, error) { return WithKeyOpt(o, key, coerceBool) }

// GetString requires the member at key to already be a JSON string.
func (o *Object) GetString(key string) (string, error) {
	return WithKey(o, key, CategoryString, coerceStringStrict)
}

// GetStringOpt is GetString's optional form.
func (o *Object) GetStringOpt(key string) (string, error) {
	return WithKeyOpt(o, key, coerceStringStrict)
}

// ToString stringifies any scalar member; Null becomes the literal "null".
func (o *Object) ToString(key string) (string, error) {
	return WithKey(o, key, CategoryString, coerceStringLoose)
}

// ToStringOpt is ToString's optional form: Null becomes "".
func (o *Object) ToStringOpt(key string) (string, error) {
	return WithKeyOpt(o, key, coerceStringLoose)
}

// GetInt64 accepts any of Int64/Double/Decimal at key, without parsing strings.
func (o *Object) GetInt64(key string) (int64, error) {
	return WithKey(o, key, CategoryNumber, func(v JSON) (int64, error) { return coerceInt64(v, false) })
}

// GetInt64Opt is GetInt64's optional form.
func (o *Object) GetInt64Opt(key string) (int64, error) {
	return WithKeyOpt(o, key, func(v JSON) (int64, error) { return coerceInt64(v, false) })
}

// ToInt64 additionally parses a String member as a base-10 integer.
func (o *Object) ToInt64(key string) (int64, error) {
	return WithKey(o, key, CategoryNumber, func(v JSON) (int64, error) { return coerceInt64(v, true) })
}

// ToInt64Opt is ToInt64's optional form.
func (o *Object) ToInt64Opt(key string) (int64, error) {
	return WithKeyOpt(o, key, func(v JSON) (int64, error) { return coerceInt64(v, true) })
}

// GetInt narrows GetInt64 to the platform int width.
func (o *Object) GetInt(key string) (int, error) {
	return WithKey(o, key, CategoryNumber, func(v JSON) (int, error) { return coerceInt(v, false) })
}

// GetIntOpt is GetInt's optional form.
func (o *Object) GetIntOpt(key string) (int, error) {
	return WithKeyOpt(o, key, func(v JSON) (int, error) { return coerceInt(v, false) })
}

// ToInt narrows ToInt64 to the platform int width.
func (o *Object) ToInt(key string) (int, error) {
	return WithKey(o, key, CategoryNumber, func(v JSON) (int, error) { return coerceInt(v, true) })
}

// ToIntOpt is ToInt's optional form.
func (o *Object) ToIntOpt(key string) (int, error) {
	return WithKeyOpt(o, key, func(v JSON) (int, error) { return coerceInt(v, true) })
}

// GetDouble accepts any of Int64/Double/Decimal at key, without parsing strings.
func (o *Object) GetDouble(key string) (float64, error) {
	return WithKey(o, key, CategoryNumber, func(v JSON) (float64, error) { return coerceDouble(v, false) })
}

// GetDoubleOpt is GetDouble's optional form.
func (o *Object) GetDoubleOpt(key string) (float64, error) {
	return WithKeyOpt(o, key, func(v JSON) (float64, error) { return coerceDouble(v, false) })
}

// ToDouble additionally parses a String member with the standard
// floating-point grammar.
func (o *Object) ToDouble(key string) (float64, error) {
	return WithKey(o, key, CategoryNumber, func(v JSON) (float64, error) { return coerceDouble(v, true) })
}

// ToDoubleOpt is ToDouble's optional form.
func (o *Object) ToDoubleOpt(key string) (float64, error) {
	return WithKeyOpt(o, key, func(v JSON) (float64, error) { return coerceDouble(v, true) })
}

// GetObject requires the member at key to be a JSON object.
func (o *Object) GetObject(key string) (*Object, error) {
	return WithKey(o, key, CategoryObject, coerceObject)
}

// GetObjectOpt is GetObject's optional form.
func (o *Object) GetObjectOpt(key string) (*Object, error) { return WithKeyOpt(o, key, coerceObject) }

// ToObject behaves like GetObject.
func (o *Object) ToObject(key string) (*Object, error) {
	return WithKey(o, key, CategoryObject, coerceObject)
}

// ToObjectOpt is ToObject's optional form.
func (o *Object) ToObjectOpt(key string) (*Object, error) { return WithKeyOpt(o, key, coerceObject) }

// GetArray requires the member at key to be a JSON array.
func (o *Object) GetArray(key string) (*Array, error) {
	return WithKey(o, key, CategoryArray, coerceArray)
}

// GetArrayOpt is GetArray's optional form.
func (o *Object) GetArrayOpt(key string) (*Array, error) { return WithKeyOpt(o, key, coerceArray) }

// ToArray behaves like GetArray.
func (o *Object) ToArray(key string) (*Array, error) {
	return WithKey(o, key, CategoryArray, coerceArray)
}

// ToArrayOpt is ToArray's optional form.
func (o *Object) ToArrayOpt(key string) (*Array, error) { return WithKeyOpt(o, key, coerceArray) }
