// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsoncore provides a strongly-typed JSON value model on top of the
// syntactic engine in [github.com/go-jsoncore/jsoncore/jsontext]: a value
// assembler that reads a token stream into a [JSON] tree, an encoder that
// writes a [JSON] tree back out as a token stream, and a typed-accessor
// layer for extracting and coercing Go values out of a tree while reporting
// errors annotated with the structural path at which they occurred.
//
// A [JSON] value is a closed tagged union over null, bool, string, three
// mutually-exclusive numeric representations (Int64, Double, and an
// arbitrary-precision Decimal), Object, and Array. Values are immutable
// once constructed; [Object] and [Array] expose builder methods for
// constructing a tree before it is handed to callers as read-only.
package jsoncore
