// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

import (
	"fmt"
	"io"

	"github.com/go-jsoncore/jsoncore/jsontext"
)

// Decoder pulls one JSON value at a time off a Parser. Streaming callers
// that enable jsontext.Streaming use MoreValues/Decode directly; Parse and
// ParseReader are the single-value convenience wrappers built on top of
// it.
type Decoder struct {
	p    *jsontext.Parser
	opts jsontext.Options
}

// NewDecoder constructs a Decoder that sniffs data's encoding and BOM,
// then assembles JSON values from it according to opts.
func NewDecoder(data []byte, opts ...jsontext.Option) *Decoder {
	return &Decoder{p: jsontext.NewParser(data, opts...), opts: jsontext.NewOptions(opts...)}
}

// MoreValues reports whether another top-level value may follow.
func (d *Decoder) MoreValues() bool { return d.p.MoreValues() }

// Decode assembles and returns the next top-level value.
func (d *Decoder) Decode() (JSON, error) { return assembleValue(d.p, d.opts) }

// CheckEOF verifies that nothing but whitespace (and, in lenient mode,
// comments) remains after the value(s) already decoded.
func (d *Decoder) CheckEOF() error { return d.p.CheckEOF() }

// Parse decodes data as a single JSON value, enforcing the at-most-one-
// top-level rule: any non-whitespace content following the value is a
// trailingData error unless jsontext.Streaming is set.
func Parse(data []byte, opts ...jsontext.Option) (JSON, error) {
	d := NewDecoder(data, opts...)
	v, err := d.Decode()
	if err != nil {
		return JSON{}, err
	}
	if err := d.CheckEOF(); err != nil {
		return JSON{}, err
	}
	return v, nil
}

// ParseReader reads r to completion and parses it as a single JSON value.
// The byte-decoder layer needs the whole buffer up front to sniff its
// encoding and byte-order mark, so ParseReader cannot parse incrementally.
func ParseReader(r io.Reader, opts ...jsontext.Option) (JSON, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return JSON{}, err
	}
	return Parse(data, opts...)
}

func assembleValue(p *jsontext.Parser, opts jsontext.Options) (JSON, error) {
	tok, err := p.Next()
	if err != nil {
		return JSON{}, err
	}
	switch tok.Kind() {
	case jsontext.KindNull:
		return Null, nil
	case jsontext.KindTrue, jsontext.KindFalse:
		return Bool(tok.Bool()), nil
	case jsontext.KindString:
		return String(tok.String()), nil
	case jsontext.KindNumber:
		switch tok.NumberKind() {
		case jsontext.Int64Number:
			return Int64(tok.Int64()), nil
		case jsontext.DoubleNumber:
			return Double(tok.Double()), nil
		case jsontext.DecimalNumber:
			return Decimal(tok.Decimal()), nil
		}
		return JSON{}, fmt.Errorf("jsoncore: number token with no numeric representation")
	case jsontext.KindObjectStart:
		return assembleObject(p, opts)
	case jsontext.KindArrayStart:
		return assembleArray(p, opts)
	default:
		return JSON{}, fmt.Errorf("jsoncore: unexpected token kind %v", tok.Kind())
	}
}

func assembleObject(p *jsontext.Parser, opts jsontext.Options) (JSON, error) {
	obj := NewObject()
	for {
		if p.PeekKind() == jsontext.KindObjectEnd {
			if _, err := p.Next(); err != nil {
				return JSON{}, err
			}
			return ObjectValue(obj), nil
		}
		nameTok, err := p.Next()
		if err != nil {
			return JSON{}, err
		}
		key := nameTok.String()
		val, err := assembleValue(p, opts)
		if err != nil {
			return JSON{}, err
		}
		if obj.Has(key) && opts.KeepDuplicateKeys {
			return JSON{}, &DuplicateKeyError{Key: key, Line: nameTok.Line(), Column: nameTok.Column()}
		}
		obj.Set(key, val)
	}
}

func assembleArray(p *jsontext.Parser, opts jsontext.Options) (JSON, error) {
	arr := NewArray()
	for {
		if p.PeekKind() == jsontext.KindArrayEnd {
			if _, err := p.Next(); err != nil {
				return JSON{}, err
			}
			return ArrayValue(arr), nil
		}
		val, err := assembleValue(p, opts)
		if err != nil {
			return JSON{}, err
		}
		arr.Append(val)
	}
}

// DuplicateKeyError is returned by Parse/Decode when jsontext.KeepDuplicateKeys
// is true and an object repeats a member name.
type DuplicateKeyError struct {
	Key    string
	Line   int
	Column int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("jsoncore: duplicate object key %q at %d:%d", e.Key, e.Line, e.Column)
}
