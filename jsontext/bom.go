package jsontext

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// detectEncoding sniffs a JSON byte buffer to choose a UTF-8/16/32
// decoding, per RFC 8259 appendix B. It returns the x/text encoding to
// use and the number of leading bytes that make up a byte-order mark,
// which the caller must skip before feeding the buffer to that
// encoding's decoder. Detection tries explicit BOMs first, then falls
// back to the zero-byte-pattern heuristic that works because the first
// character of any JSON document is always ASCII.
func detectEncoding(data []byte) (enc encoding.Encoding, bomLen int) {
	switch {
	case hasPrefix(data, 0x00, 0x00, 0xFE, 0xFF):
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), 4
	case hasPrefix(data, 0xFF, 0xFE, 0x00, 0x00):
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), 4
	case hasPrefix(data, 0xFE, 0xFF):
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), 2
	case hasPrefix(data, 0xFF, 0xFE):
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), 2
	case hasPrefix(data, 0xEF, 0xBB, 0xBF):
		return unicode.UTF8, 3
	}

	// No BOM: use the zero-byte heuristic. A bare ASCII byte at one of
	// the four positions of the first 32-bit unit tells us the width
	// and endianness, since JSON always starts with an ASCII byte
	// (whitespace, '{', '[', '"', a digit, '-', or a literal letter).
	switch {
	case len(data) >= 4 && data[0] == 0 && data[1] == 0 && data[2] == 0 && data[3] != 0:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), 0
	case len(data) >= 4 && data[0] != 0 && data[1] == 0 && data[2] == 0 && data[3] == 0:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), 0
	case len(data) >= 2 && data[0] == 0 && data[1] != 0:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), 0
	case len(data) >= 2 && data[0] != 0 && data[1] == 0:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), 0
	default:
		return unicode.UTF8, 0
	}
}

func hasPrefix(data []byte, prefix ...byte) bool {
	return len(data) >= len(prefix) && bytes.Equal(data[:len(prefix)], prefix)
}

// newRuneScanner sniffs data's encoding and BOM, then returns a lazy,
// zero-copy-over-the-input rune scanner positioned right after the BOM.
// Decoding errors within the chosen encoding surface as U+FFFD rather
// than failing the read, matching the JSON parser's tolerance for
// malformed byte sequences; only end-of-input truncation is left to the
// caller, which sees a short final rune from bufio.Reader.ReadRune.
func newRuneScanner(data []byte) io.RuneScanner {
	enc, bomLen := detectEncoding(data)
	body := data[bomLen:]
	if enc == unicode.UTF8 {
		// Zero-copy fast path: utf8.DecodeRune already yields
		// utf8.RuneError (U+FFFD) for malformed sequences, so no
		// transform pipeline is needed for the common case.
		return bufio.NewReader(bytes.NewReader(body))
	}
	return bufio.NewReader(enc.NewDecoder().Reader(bytes.NewReader(body)))
}
