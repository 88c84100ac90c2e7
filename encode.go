// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-jsoncore/jsoncore/jsontext"
)

// Encode serializes v to a freshly allocated byte slice.
func (v JSON) Encode(opts ...jsontext.Option) ([]byte, error) {
	e := jsontext.NewBytesEncoder(opts...)
	o := jsontext.NewOptions(opts...)
	if err := writeValue(e, v, o); err != nil {
		return nil, err
	}
	if err := e.Close(); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// EncodeTo serializes v directly to w, flushing completed chunks as it
// goes instead of building the whole output in memory first.
func (v JSON) EncodeTo(w io.Writer, opts ...jsontext.Option) error {
	e := jsontext.NewEncoder(w, opts...)
	o := jsontext.NewOptions(opts...)
	if err := writeValue(e, v, o); err != nil {
		return err
	}
	return e.Close()
}

func writeValue(e *jsontext.Encoder, v JSON, opts jsontext.Options) error {
	switch v.k {
	case kindNull:
		return e.WriteToken(jsontext.Null)
	case kindBool:
		return e.WriteToken(jsontext.BooleanValue(v.b))
	case kindString:
		return e.WriteToken(jsontext.StringValue(v.s))
	case kindInt64:
		return e.WriteToken(jsontext.Int64Value(v.i64))
	case kindDouble:
		return e.WriteToken(jsontext.DoubleValue(v.f64))
	case kindDecimal:
		return e.WriteToken(jsontext.DecimalValue(v.dec))
	case kindObject:
		return writeObject(e, v.obj, opts)
	case kindArray:
		return writeArray(e, v.arr, opts)
	default:
		return fmt.Errorf("jsoncore: cannot encode value of unknown kind")
	}
}

func writeObject(e *jsontext.Encoder, o *Object, opts jsontext.Options) error {
	if err := e.WriteToken(jsontext.ObjectStart); err != nil {
		return err
	}
	members := o.members
	if opts.SortedKeys {
		members = append([]objectMember(nil), members...)
		sort.Slice(members, func(i, j int) bool { return members[i].key < members[j].key })
	}
	for _, m := range members {
		if err := e.WriteToken(jsontext.StringValue(m.key)); err != nil {
			return err
		}
		if err := writeValue(e, m.value, opts); err != nil {
			return err
		}
	}
	return e.WriteToken(jsontext.ObjectEnd)
}

func writeArray(e *jsontext.Encoder, a *Array, opts jsontext.Options) error {
	if err := e.WriteToken(jsontext.ArrayStart); err != nil {
		return err
	}
	for _, elem := range a.elems {
		if err := writeValue(e, elem, opts); err != nil {
			return err
		}
	}
	return e.WriteToken(jsontext.ArrayEnd)
}
