// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsontext implements the syntactic layer of JSON: a byte-level
// decoder that sniffs UTF-8/16/32 input and strips any byte-order mark, a
// pull-based Parser that turns a rune source into a stream of Tokens, and
// an Encoder that serializes Tokens (and whole raw Values) back to text.
//
// This package knows nothing about Go struct tags or reflection; it deals
// exclusively in the JSON grammar itself. The sibling package at the module
// root builds a typed value model and typed accessors on top of it.
package jsontext
