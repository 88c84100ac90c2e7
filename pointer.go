// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsoncore

import (
	"strconv"
	"strings"
)

// PointerError reports that an RFC 6901 JSON Pointer could not be
// resolved against a value tree. Unlike MissingOrInvalidType, it carries
// the pointer itself rather than a display-only Path, since a Pointer is
// meant to be machine-parseable.
type PointerError struct {
	Pointer string
	msg     string
}

func (e *PointerError) Error() string {
	return "jsoncore: pointer " + strconv.Quote(e.Pointer) + ": " + e.msg
}

func newPointerError(ptr, msg string) error { return &PointerError{Pointer: ptr, msg: msg} }

// LookupPointer resolves an RFC 6901 JSON Pointer against v and returns
// the value found there. The empty pointer resolves to v itself.
func (v JSON) LookupPointer(ptr string) (JSON, error) {
	if ptr == "" {
		return v, nil
	}
	if ptr[0] != '/' {
		return JSON{}, newPointerError(ptr, "pointer must be empty or start with '/'")
	}
	cur := v
	for _, raw := range strings.Split(ptr[1:], "/") {
		tok := unescapePointerToken(raw)
		switch cur.k {
		case kindObject:
			next, ok := cur.obj.Get(tok)
			if !ok {
				return JSON{}, newPointerError(ptr, "no member named "+strconv.Quote(tok))
			}
			cur = next
		case kindArray:
			if tok == "-" {
				return JSON{}, newPointerError(ptr, "'-' does not resolve to an existing element")
			}
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 {
				return JSON{}, newPointerError(ptr, "invalid array index "+strconv.Quote(tok))
			}
			next, ok := cur.arr.At(idx)
			if !ok {
				return JSON{}, newPointerError(ptr, "array index out of range: "+strconv.Quote(tok))
			}
			cur = next
		default:
			return JSON{}, newPointerError(ptr, "cannot descend into a "+cur.Category().String()+" value")
		}
	}
	return cur, nil
}

// unescapePointerToken decodes the "~1" -> "/" and "~0" -> "~" escapes
// defined by RFC 6901, applied in that order.
func unescapePointerToken(tok string) string {
	if !strings.Contains(tok, "~") {
		return tok
	}
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	return tok
}
