// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

// Array is an ordered sequence of JSON values. Two Arrays compare equal
// iff they have the same length and equal values at every position. The
// zero Array is not directly usable; construct one with NewArray.
type Array struct {
	elems []JSON
}

// NewArray returns an empty, ready-to-use Array.
func NewArray() *Array { return &Array{} }

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.elems) }

// At returns the element at index i and whether i was in range.
func (a *Array) At(i int) (JSON, bool) {
	if i < 0 || i >= len(a.elems) {
		return JSON{}, false
	}
	return a.elems[i], true
}

// Append adds v to the end of a. It returns a for chaining.
func (a *Array) Append(v JSON) *Array {
	a.elems = append(a.elems, v)
	return a
}

// Insert places v at index i, shifting later elements up by one. It
// returns a for chaining. i must be in [0, a.Len()].
func (a *Array) Insert(i int, v JSON) *Array {
	a.elems = append(a.elems, JSON{})
	copy(a.elems[i+1:], a.elems[i:])
	a.elems[i] = v
	return a
}

// RemoveAt removes the element at index i, if in range, shifting later
// elements down by one. It returns a for chaining.
func (a *Array) RemoveAt(i int) *Array {
	if i < 0 || i >= len(a.elems) {
		return a
	}
	a.elems = append(a.elems[:i], a.elems[i+1:]...)
	return a
}

// Slice returns a fresh copy of a's elements in order.
func (a *Array) Slice() []JSON {
	out := make([]JSON, len(a.elems))
	copy(out, a.elems)
	return out
}

// Equal reports whether a and other have the same length with equal
// elements at every position.
func (a *Array) Equal(other *Array) bool {
	if a == nil || other == nil {
		return a == other
	}
	if len(a.elems) != len(other.elems) {
		return false
	}
	for i, v := range a.elems {
		if !v.Equal(other.elems[i]) {
			return false
		}
	}
	return true
}
