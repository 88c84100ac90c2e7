// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontext

import (
	"unicode/utf16"
	"unicode/utf8"
)

// AppendQuote appends a double-quoted JSON string literal representing
// src to dst and returns the extended buffer, using the escaping rules
// selected by opts (EscapeSlashes, ASCIIOnly).
func AppendQuote[Bytes ~[]byte | ~string](dst []byte, src Bytes, opts ...Option) []byte {
	o := NewOptions(opts...)
	t := newEscapeTable(o.EscapeSlashes, o.ASCIIOnly)
	return appendQuoted(dst, string(src), t)
}

// appendQuoted is AppendQuote's core loop, factored out so that an
// Encoder holding a long-lived *escapeTable does not have to reconstruct
// one from Options on every string it writes.
func appendQuoted(dst []byte, s string, t *escapeTable) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if t.mustEscapeASCII(c) {
				if se := shortEscape(c); se != 0 && t.ascii[c] < 0 {
					dst = append(dst, '\\', se)
				} else {
					dst = appendUTF16Escape(dst, uint16(c))
				}
			} else {
				dst = append(dst, c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r, size = utf8.RuneError, 1 // preserve position but emit replacement
		}
		switch {
		case t.asciiOnly && r <= 0xFFFF:
			dst = appendUTF16Escape(dst, uint16(r))
		case t.asciiOnly:
			r1, r2 := utf16.EncodeRune(r)
			dst = appendUTF16Escape(dst, uint16(r1))
			dst = appendUTF16Escape(dst, uint16(r2))
		case r == utf8.RuneError && size == 1:
			dst = utf8.AppendRune(dst, utf8.RuneError)
		default:
			dst = append(dst, s[i:i+size]...)
		}
		i += size
	}
	dst = append(dst, '"')
	return dst
}

// AppendUnquote appends the decoded interpretation of src, a JSON
// string literal including its surrounding quotes, to dst. strict
// controls whether raw control characters below U+0020 are rejected;
// in non-strict mode they pass through unescaped as the parser found
// them.
func AppendUnquote[Bytes ~[]byte | ~string](dst []byte, src Bytes, strict bool) ([]byte, error) {
	s := string(src)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return dst, errInvalidEscape(0, 0)
	}
	s = s[1 : len(s)-1]
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\\':
			if i+1 >= len(s) {
				return dst, errInvalidEscape(0, 0)
			}
			var consumed int
			dst, consumed = appendUnescape(dst, s[i:])
			if consumed == 0 {
				return dst, errInvalidEscape(0, 0)
			}
			i += consumed
		case c < 0x20:
			if strict {
				return dst, errControlCharacterInString(rune(c), 0, 0)
			}
			dst = append(dst, c)
			i++
		case c < utf8.RuneSelf:
			dst = append(dst, c)
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size <= 1 {
				dst = utf8.AppendRune(dst, utf8.RuneError)
				i++
				continue
			}
			dst = append(dst, s[i:i+size]...)
			i += size
		}
	}
	return dst, nil
}

// appendUnescape decodes exactly one backslash escape at the start of
// s (s[0] == '\\') and returns the extended buffer plus the number of
// input bytes consumed for that escape (0 on malformed input).
func appendUnescape(dst []byte, s string) ([]byte, int) {
	if len(s) < 2 {
		return dst, 0
	}
	switch s[1] {
	case '"':
		return append(dst, '"'), 2
	case '\\':
		return append(dst, '\\'), 2
	case '/':
		return append(dst, '/'), 2
	case 'b':
		return append(dst, '\b'), 2
	case 'f':
		return append(dst, '\f'), 2
	case 'n':
		return append(dst, '\n'), 2
	case 'r':
		return append(dst, '\r'), 2
	case 't':
		return append(dst, '\t'), 2
	case 'u':
		r1, ok := parseHex4(s, 2)
		if !ok {
			return dst, 0
		}
		n := 6
		if utf16.IsSurrogate(rune(r1)) {
			// Try to combine with a trailing low surrogate escape.
			if len(s) >= 12 && s[6] == '\\' && s[7] == 'u' {
				if r2, ok2 := parseHex4(s, 8); ok2 {
					if combined := utf16.DecodeRune(rune(r1), rune(r2)); combined != utf8.RuneError {
						return utf8.AppendRune(dst, combined), 12
					}
				}
			}
			// Unpaired surrogate half.
			return utf8.AppendRune(dst, utf8.RuneError), n
		}
		return utf8.AppendRune(dst, rune(r1)), n
	default:
		return dst, 0
	}
}

func parseHex4(s string, off int) (rune, bool) {
	if len(s) < off+4 {
		return 0, false
	}
	var v rune
	for i := 0; i < 4; i++ {
		c := s[off+i]
		var d rune
		switch {
		case '0' <= c && c <= '9':
			d = rune(c - '0')
		case 'a' <= c && c <= 'f':
			d = rune(c-'a') + 10
		case 'A' <= c && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}
