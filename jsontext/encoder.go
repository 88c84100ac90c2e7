// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontext

import (
	"io"
	"math"

	"github.com/go-jsoncore/jsoncore/internal/bufpool"
)

// Encoder serializes a sequence of Tokens as JSON text, enforcing the
// same structural grammar the Parser validates on the way in. Writes
// are buffered through a segmented, pooled Buffer (internal/bufpool)
// so that encoding a large document never requires one contiguous
// allocation the size of the whole output.
type Encoder struct {
	buf   *bufpool.Buffer
	opts  Options
	table *escapeTable

	state stateMachine
	depth int

	afterOpen bool
}

// NewEncoder constructs an Encoder that writes to w as tokens arrive.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	o := NewOptions(opts...)
	e := &Encoder{
		buf:   bufpool.NewBufferWithThreshold(w, o.ChunkFlushThreshold),
		opts:  o,
		table: newEscapeTable(o.EscapeSlashes, o.ASCIIOnly),
	}
	e.state.init(o.MaxDepth)
	return e
}

// NewBytesEncoder constructs an Encoder that accumulates its output in
// memory; call Bytes after the top-level value is complete.
func NewBytesEncoder(opts ...Option) *Encoder {
	e := NewEncoder(nil, opts...)
	return e
}

// Bytes returns the accumulated output of an Encoder built with
// NewBytesEncoder. It is only meaningful when the Encoder has no sink.
func (e *Encoder) Bytes() []byte { return e.buf.Bytes() }

// Close flushes any buffered output to the underlying writer.
func (e *Encoder) Close() error { return e.buf.Flush() }

// WriteToken writes t as the next token in the sequence, inserting
// whatever comma, colon, and indentation the grammar and options
// require.
func (e *Encoder) WriteToken(t Token) error {
	if e.state.needsColonBefore() {
		if e.opts.Pretty {
			e.buf.WriteString(": ")
		} else {
			e.buf.WriteByte(':')
		}
	} else if !e.afterOpen && e.state.needsCommaBefore(t.Kind()) {
		e.buf.WriteByte(',')
		e.writeIndent()
	} else if e.afterOpen && t.Kind() != KindObjectEnd && t.Kind() != KindArrayEnd {
		e.writeIndent()
	}
	e.afterOpen = false

	switch t.Kind() {
	case KindObjectStart:
		if err := e.state.pushObject(); err != nil {
			return err
		}
		e.depth++
		e.buf.WriteByte('{')
		e.afterOpen = true
	case KindObjectEnd:
		if err := e.state.popObject(); err != nil {
			return err
		}
		e.depth--
		if e.opts.Pretty {
			e.writeIndent()
		}
		e.buf.WriteByte('}')
	case KindArrayStart:
		if err := e.state.pushArray(); err != nil {
			return err
		}
		e.depth++
		e.buf.WriteByte('[')
		e.afterOpen = true
	case KindArrayEnd:
		if err := e.state.popArray(); err != nil {
			return err
		}
		e.depth--
		if e.opts.Pretty {
			e.writeIndent()
		}
		e.buf.WriteByte(']')
	case KindNull:
		if err := e.state.appendLiteral(); err != nil {
			return err
		}
		e.buf.WriteString("null")
	case KindTrue:
		if err := e.state.appendLiteral(); err != nil {
			return err
		}
		e.buf.WriteString("true")
	case KindFalse:
		if err := e.state.appendLiteral(); err != nil {
			return err
		}
		e.buf.WriteString("false")
	case KindString:
		if e.state.last().needObjectName() {
			e.state.last().increment()
		} else if err := e.state.appendLiteral(); err != nil {
			return err
		}
		e.writeQuoted(t.String())
	case KindNumber:
		if err := e.state.appendLiteral(); err != nil {
			return err
		}
		if err := e.writeNumber(t); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) writeIndent() {
	// Only meaningful mid-structure; the caller decides when to call
	// this (after an open delimiter, or before a close delimiter, or
	// between elements).
	if !e.opts.Pretty {
		return
	}
	e.buf.WriteByte('\n')
	for i := 0; i < e.depth; i++ {
		e.buf.WriteString(e.opts.Indent)
	}
}

func (e *Encoder) writeQuoted(s string) {
	e.buf.Write(appendQuoted(nil, s, e.table))
}

func (e *Encoder) writeNumber(t Token) error {
	var buf []byte
	switch t.NumberKind() {
	case Int64Number:
		buf = appendInt64(buf, t.Int64())
	case DoubleNumber:
		f := t.Double()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			if !e.opts.AllowNonFiniteNumbers {
				return newSyntaxError(ErrInvalidNumber, 0, 0, "non-finite double requires AllowNonFiniteNumbers")
			}
			switch {
			case math.IsNaN(f):
				e.writeQuoted("NaN")
			case math.IsInf(f, +1):
				e.writeQuoted("Infinity")
			default:
				e.writeQuoted("-Infinity")
			}
			return nil
		}
		buf = appendDouble(buf, f)
	case DecimalNumber:
		buf = appendDecimal(buf, t.Decimal())
	}
	e.buf.Write(buf)
	return nil
}
