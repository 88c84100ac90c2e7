// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

// objectMember is one name/value pair inside an Object, kept in the
// insertion order the object was built in.
type objectMember struct {
	key   string
	value JSON
}

// Object is a mapping from string keys to JSON values. Insertion order is
// preserved for iteration and re-serialization; lookups by key are O(1)
// expected via an auxiliary index. Two Objects compare equal iff they
// carry the same key set with equal values; member order is irrelevant to
// equality. The zero Object is not directly usable; construct one with
// NewObject.
type Object struct {
	members []objectMember
	index   map[string]int
}

// NewObject returns an empty, ready-to-use Object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.members) }

// Has reports whether key is present in o.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// Get returns the value stored at key and whether it was present.
func (o *Object) Get(key string) (JSON, bool) {
	i, ok := o.index[key]
	if !ok {
		return JSON{}, false
	}
	return o.members[i].value, true
}

// Set inserts or overwrites the value at key, preserving key's original
// position if it already existed, or appending it as the newest member
// otherwise. It returns o for chaining during construction.
func (o *Object) Set(key string, v JSON) *Object {
	if i, ok := o.index[key]; ok {
		o.members[i].value = v
		return o
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, objectMember{key: key, value: v})
	return o
}

// Delete removes key from o, if present, shifting later members down by
// one position and reindexing them. It returns o for chaining.
func (o *Object) Delete(key string) *Object {
	i, ok := o.index[key]
	if !ok {
		return o
	}
	o.members = append(o.members[:i], o.members[i+1:]...)
	delete(o.index, key)
	for j := i; j < len(o.members); j++ {
		o.index[o.members[j].key] = j
	}
	return o
}

// Keys returns o's member names in insertion order. The returned slice is
// a fresh copy and safe to mutate.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.key
	}
	return keys
}

// Range calls fn for each member in insertion order, stopping early if fn
// returns false.
func (o *Object) Range(fn func(key string, v JSON) bool) {
	for _, m := range o.members {
		if !fn(m.key, m.value) {
			return
		}
	}
}

// Equal reports whether o and other contain the same key set with equal
// values; member order does not affect equality.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.members) != len(other.members) {
		return false
	}
	for _, m := range o.members {
		ov, ok := other.Get(m.key)
		if !ok || !m.value.Equal(ov) {
			return false
		}
	}
	return true
}
