// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrAccess matches every accessor error returned by this package, for
// use with errors.Is.
const ErrAccess = accessSentinel("jsoncore: access error")

type accessSentinel string

func (e accessSentinel) Error() string        { return string(e) }
func (e accessSentinel) Is(target error) bool { return e == target || target == ErrAccess }

// Path is the display-only, dotted/bracketed identifier of a position in a
// JSON value tree, built bottom-up as an error crosses each keyed or
// indexed lookup boundary. Keys are joined by '.'; array indices are
// rendered as "[n]" and attach without a preceding dot. Keys containing
// '.' or '[' are not escaped, so a Path is not reverse-parseable; it
// exists for diagnostics only.
type Path string

func (p Path) prefixKey(key string) Path {
	if p == "" {
		return Path(key)
	}
	if p[0] == '[' {
		return Path(key + string(p))
	}
	return Path(key + "." + string(p))
}

func (p Path) prefixIndex(i int) Path {
	return Path("[" + strconv.Itoa(i) + "]" + string(p))
}

// Requirement distinguishes a required accessor (errors on missing/Null)
// from an optional one (returns the zero value on missing/Null).
type Requirement byte

const (
	Required Requirement = iota
	Optional
)

func (r Requirement) String() string {
	if r == Optional {
		return "optional"
	}
	return "required"
}

// Expectation is what an accessor demanded: a requirement plus a
// Category, formatted as e.g. "required(string)".
type Expectation struct {
	Req      Requirement
	Category Category
}

func (e Expectation) String() string { return e.Req.String() + "(" + e.Category.String() + ")" }

func required(c Category) Expectation { return Expectation{Required, c} }
func optional(c Category) Expectation { return Expectation{Optional, c} }

// MissingOrInvalidType reports that an accessor found no value at all, or
// a value whose Category did not match what was requested. Actual is nil
// when the position had no value at all (a missing key or an out-of-range
// index); it is CategoryNull when the position held an explicit null.
type MissingOrInvalidType struct {
	Path     Path
	Expected Expectation
	Actual   *Category
}

func (e *MissingOrInvalidType) Error() string {
	actual := "nothing"
	if e.Actual != nil {
		actual = e.Actual.String()
	}
	return string(e.Path) + ": expected " + e.Expected.String() + ", found " + actual
}

func (e *MissingOrInvalidType) Is(target error) bool { return target == ErrAccess }

func missingOrInvalid(exp Expectation, actual *Category) error {
	return &MissingOrInvalidType{Expected: exp, Actual: actual}
}

func missingValue(exp Expectation) error {
	return &MissingOrInvalidType{Expected: exp, Actual: nil}
}

// markOptional rewrites a MissingOrInvalidType's Expected to its optional
// form. The *Opt accessor variants only ever reach coerce on a present,
// non-null value, so any type mismatch they produce should be reported as
// optional(category) rather than the required(category) the shared coerce
// functions assume by default.
func markOptional(err error) error {
	if e, ok := err.(*MissingOrInvalidType); ok {
		e.Expected = optional(e.Expected.Category)
	}
	return err
}

// OutOfRangeInt64 reports that an Int64 value did not fit the narrower
// integer type named by Target.
type OutOfRangeInt64 struct {
	Path   Path
	Value  int64
	Target string
}

func (e *OutOfRangeInt64) Error() string {
	return string(e.Path) + ": " + strconv.FormatInt(e.Value, 10) + " out of range for " + e.Target
}

func (e *OutOfRangeInt64) Is(target error) bool { return target == ErrAccess }

// OutOfRangeDouble reports that a Double value was non-finite, or outside
// the range of the integer type named by Target.
type OutOfRangeDouble struct {
	Path   Path
	Value  float64
	Target string
}

func (e *OutOfRangeDouble) Error() string {
	return string(e.Path) + ": " + formatDoubleCanonical(e.Value) + " out of range for " + e.Target
}

func (e *OutOfRangeDouble) Is(target error) bool { return target == ErrAccess }

// OutOfRangeDecimal reports that a Decimal value was outside the range of
// the integer type named by Target.
type OutOfRangeDecimal struct {
	Path   Path
	Value  decimal.Decimal
	Target string
}

func (e *OutOfRangeDecimal) Error() string {
	return string(e.Path) + ": " + e.Value.String() + " out of range for " + e.Target
}

func (e *OutOfRangeDecimal) Is(target error) bool { return target == ErrAccess }

// prefixKey rewrites err's Path field, if it carries one, by prepending
// key. It is the catch-and-rewrap step run at every keyed lookup boundary.
func prefixKey(err error, key string) error {
	switch e := err.(type) {
	case *MissingOrInvalidType:
		e.Path = e.Path.prefixKey(key)
	case *OutOfRangeInt64:
		e.Path = e.Path.prefixKey(key)
	case *OutOfRangeDouble:
		e.Path = e.Path.prefixKey(key)
	case *OutOfRangeDecimal:
		e.Path = e.Path.prefixKey(key)
	}
	return err
}

// prefixIndex rewrites err's Path field, if it carries one, by prepending
// the index i in "[i]" form. It is the catch-and-rewrap step run at every
// indexed lookup boundary.
func prefixIndex(err error, i int) error {
	switch e := err.(type) {
	case *MissingOrInvalidType:
		e.Path = e.Path.prefixIndex(i)
	case *OutOfRangeInt64:
		e.Path = e.Path.prefixIndex(i)
	case *OutOfRangeDouble:
		e.Path = e.Path.prefixIndex(i)
	case *OutOfRangeDecimal:
		e.Path = e.Path.prefixIndex(i)
	}
	return err
}
