// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

// ForEach runs fn over every element of a in order, stopping at the first
// error. Any error fn returns has its Path prefixed with the element's
// index before ForEach propagates it.
func (a *Array) ForEach(fn func(i int, v JSON) error) error {
	for i, v := range a.elems {
		if err := fn(i, v); err != nil {
			return prefixIndex(err, i)
		}
	}
	return nil
}

// Map builds a new Array by applying fn to each element of a in order.
// Any error fn returns has its Path prefixed with the source index before
// Map stops and propagates it.
func (a *Array) Map(fn func(i int, v JSON) (JSON, error)) (*Array, error) {
	out := NewArray()
	for i, v := range a.elems {
		mapped, err := fn(i, v)
		if err != nil {
			return nil, prefixIndex(err, i)
		}
		out.Append(mapped)
	}
	return out, nil
}

// FlatMap builds a new Array by applying fn to each element of a and
// splicing the returned Array's elements into the result in order. Any
// error fn returns has its Path prefixed with the source index before
// FlatMap stops and propagates it.
func (a *Array) FlatMap(fn func(i int, v JSON) (*Array, error)) (*Array, error) {
	out := NewArray()
	for i, v := range a.elems {
		mapped, err := fn(i, v)
		if err != nil {
			return nil, prefixIndex(err, i)
		}
		if mapped != nil {
			out.elems = append(out.elems, mapped.elems...)
		}
	}
	return out, nil
}

// FlatMapSequence is FlatMap for callbacks that produce a plain []JSON
// rather than an *Array, useful when the transform is not itself building
// JSON container values.
func (a *Array) FlatMapSequence(fn func(i int, v JSON) ([]JSON, error)) (*Array, error) {
	out := NewArray()
	for i, v := range a.elems {
		mapped, err := fn(i, v)
		if err != nil {
			return nil, prefixIndex(err, i)
		}
		out.elems = append(out.elems, mapped...)
	}
	return out, nil
}
