// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontext

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Parser is a pull-based reader of structural JSON tokens. Advancing
// the parser is entirely caller-driven: Next returns exactly one Token
// (or an error) per call and never looks further ahead than needed to
// resolve that Token, so a Parser never needs the remainder of its
// input to be available up front.
//
// A Parser is not safe for concurrent use. Distinct Parsers over
// distinct inputs are fully independent.
type Parser struct {
	rs   io.RuneScanner
	opts Options

	state stateMachine
	line  int
	col   int

	pending    rune
	hasPend    bool
	sawEOF     bool
	invalidUTF bool // a malformed byte sequence, not end-of-input, cut the last read short
	sawValue   bool // at least one top-level value fully closed
	afterOpen  bool // just consumed '{' or '['; suppress comma/colon check once
}

// NewParser constructs a Parser that sniffs data's byte encoding
// (UTF-8/16/32, with or without a byte-order mark) and parses the
// decoded code points as JSON according to opts.
func NewParser(data []byte, opts ...Option) *Parser {
	p := &Parser{rs: newRuneScanner(data), opts: NewOptions(opts...)}
	p.state.init(p.opts.MaxDepth)
	p.line, p.col = 1, 1
	return p
}

// NewParserFromRunes constructs a Parser directly over a rune source
// that has already been decoded to Unicode scalars, bypassing BOM
// sniffing. Use this to parse a stream whose encoding is already known
// to be UTF-8 (e.g. wrapping a bufio.Reader over an io.Reader).
func NewParserFromRunes(rs io.RuneScanner, opts ...Option) *Parser {
	p := &Parser{rs: rs, opts: NewOptions(opts...)}
	p.state.init(p.opts.MaxDepth)
	p.line, p.col = 1, 1
	return p
}

// Depth reports the parser's current nesting depth. A bare top-level
// value sits at depth 1.
func (p *Parser) Depth() int { return p.state.depth() }

// MoreValues reports whether another top-level value may follow.
// Without Streaming it is true only until the first top-level value
// has been read; with Streaming it is true whenever anything other
// than whitespace (and, in lenient mode, comments) remains.
func (p *Parser) MoreValues() bool {
	if !p.opts.Streaming {
		return !p.sawValue
	}
	p.skipWhitespaceAndComments()
	_, ok := p.peek()
	return ok
}

// PeekKind reports the kind of the next Token without consuming it.
// It returns Invalid at end of input or on error; call Next to observe
// the error itself.
func (p *Parser) PeekKind() Kind {
	c, ok := p.peekSignificant()
	if !ok {
		return Invalid
	}
	return kindOf(c)
}

func kindOf(c rune) Kind {
	switch {
	case c == '{':
		return KindObjectStart
	case c == '}':
		return KindObjectEnd
	case c == '[':
		return KindArrayStart
	case c == ']':
		return KindArrayEnd
	case c == '"':
		return KindString
	case c == 't':
		return KindTrue
	case c == 'f':
		return KindFalse
	case c == 'n':
		return KindNull
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return KindNumber
	default:
		return Invalid
	}
}

// Next reads and returns the next Token in the sequence, advancing the
// parser. It returns io.EOF once the (or, in Streaming mode, the
// final) top-level value has been fully consumed.
func (p *Parser) Next() (Token, error) {
	// Resolve any colon required between an object name and its value.
	if p.state.needsColonBefore() {
		if err := p.consumePunct(':', "after object name"); err != nil {
			return Token{}, err
		}
	}

	c, ok := p.peekSignificant()
	if !ok {
		if p.state.atTopLevel() {
			if !p.sawValue {
				return Token{}, p.eofErr()
			}
			return Token{}, io.EOF
		}
		return Token{}, p.eofErr()
	}

	kind := kindOf(c)

	if !p.afterOpen && p.state.needsCommaBefore(kind) {
		if err := p.consumePunct(',', "after object or array value"); err != nil {
			return Token{}, err
		}
		c, ok = p.peekSignificant()
		if !ok {
			return Token{}, p.eofErr()
		}
		kind = kindOf(c)
		if kind == KindObjectEnd || kind == KindArrayEnd {
			if p.opts.Strict {
				return Token{}, p.err(errUnexpectedCharacter(c, "before closing delimiter", p.line, p.col))
			}
			// Lenient mode: trailing comma accepted, fall through to
			// the close-delimiter handling below.
		}
	}
	p.afterOpen = false
	line, col := p.line, p.col

	switch kind {
	case KindObjectStart:
		p.readRune()
		if err := p.wrap(p.state.pushObject()); err != nil {
			return Token{}, err
		}
		p.afterOpen = true
		return withPos(ObjectStart, line, col), nil
	case KindObjectEnd:
		p.readRune()
		if err := p.wrap(p.state.popObject()); err != nil {
			return Token{}, err
		}
		p.markValueClosed()
		return withPos(ObjectEnd, line, col), nil
	case KindArrayStart:
		p.readRune()
		if err := p.wrap(p.state.pushArray()); err != nil {
			return Token{}, err
		}
		p.afterOpen = true
		return withPos(ArrayStart, line, col), nil
	case KindArrayEnd:
		p.readRune()
		if err := p.wrap(p.state.popArray()); err != nil {
			return Token{}, err
		}
		p.markValueClosed()
		return withPos(ArrayEnd, line, col), nil
	case KindString:
		if p.state.last().needObjectName() {
			s, err := p.readString()
			if err != nil {
				return Token{}, err
			}
			p.state.last().increment()
			return withPos(StringValue(s), line, col), nil
		}
		s, err := p.readString()
		if err != nil {
			return Token{}, err
		}
		if err := p.wrap(p.state.appendLiteral()); err != nil {
			return Token{}, err
		}
		p.markValueClosed()
		return withPos(StringValue(s), line, col), nil
	case KindTrue, KindFalse, KindNull:
		tok, err := p.readLiteral(kind)
		if err != nil {
			return Token{}, err
		}
		if err := p.wrap(p.state.appendLiteral()); err != nil {
			return Token{}, err
		}
		p.markValueClosed()
		return tok, nil
	case KindNumber:
		tok, err := p.readNumber()
		if err != nil {
			return Token{}, err
		}
		if err := p.wrap(p.state.appendLiteral()); err != nil {
			return Token{}, err
		}
		p.markValueClosed()
		return tok, nil
	default:
		return Token{}, p.err(errUnexpectedCharacter(c, "at start of value", p.line, p.col))
	}
}

// markValueClosed records that a top-level value has just finished,
// which lets MoreValues/Next tell the difference between end-of-input
// and trailing garbage.
func (p *Parser) markValueClosed() {
	if p.state.atTopLevel() {
		p.sawValue = true
	}
}

// CheckEOF verifies that nothing but whitespace (and, in lenient mode,
// comments) remains after the top-level value(s) already read. It is
// the assembler's hook for the "at-most-one-top-level" / trailing-data
// rule when Streaming is not set.
func (p *Parser) CheckEOF() error {
	p.skipWhitespaceAndComments()
	if _, ok := p.peek(); ok {
		if !p.opts.Streaming {
			return p.err(errTrailingData(p.line, p.col))
		}
	}
	return nil
}

func (p *Parser) wrap(err error) error {
	if err == nil {
		return nil
	}
	return p.err(err)
}

func (p *Parser) err(err error) error {
	return atLine(err, p.line, p.col)
}

func (p *Parser) consumePunct(want rune, where string) error {
	c, ok := p.peekSignificant()
	if !ok {
		return p.eofErr()
	}
	if c != want {
		return p.err(errUnexpectedCharacter(c, where, p.line, p.col))
	}
	p.readRune()
	return nil
}

// peekSignificant skips whitespace/comments and peeks the next rune.
func (p *Parser) peekSignificant() (rune, bool) {
	p.skipWhitespaceAndComments()
	return p.peek()
}

func (p *Parser) peek() (rune, bool) {
	if p.hasPend {
		return p.pending, true
	}
	r, size, err := p.rs.ReadRune()
	if err != nil {
		p.sawEOF = true
		return 0, false
	}
	if p.opts.Strict && r == utf8.RuneError && size == 1 {
		p.invalidUTF = true
		return 0, false
	}
	p.pending, p.hasPend = r, true
	return r, true
}

// eofErr reports why the last peek/readRune came back empty: an actual
// end of input, or a malformed byte sequence rejected in strict mode.
func (p *Parser) eofErr() error {
	if p.invalidUTF {
		return p.err(errInvalidUTF(p.line, p.col))
	}
	return p.err(errUnexpectedEOF(p.line, p.col))
}

func (p *Parser) readRune() (rune, bool) {
	c, ok := p.peek()
	if !ok {
		return 0, false
	}
	p.hasPend = false
	if c == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return c, true
}

func (p *Parser) skipWhitespaceAndComments() {
	for {
		c, ok := p.peek()
		if !ok {
			return
		}
		switch c {
		case ' ', '\t', '\n', '\r':
			p.readRune()
			continue
		case '/':
			if p.opts.Strict {
				return
			}
			if p.skipComment() {
				continue
			}
			return
		}
		return
	}
}

// skipComment consumes a "//" or "/* */" comment if one starts at the
// current position, reporting whether it consumed anything.
func (p *Parser) skipComment() bool {
	p.readRune() // consume '/'
	c, ok := p.peek()
	if !ok {
		return false
	}
	switch c {
	case '/':
		p.readRune()
		for {
			c, ok := p.peek()
			if !ok || c == '\n' {
				return true
			}
			p.readRune()
		}
	case '*':
		p.readRune()
		prevStar := false
		for {
			c, ok := p.peek()
			if !ok {
				return true
			}
			p.readRune()
			if prevStar && c == '/' {
				return true
			}
			prevStar = c == '*'
		}
	default:
		return false
	}
}

func (p *Parser) readLiteral(kind Kind) (Token, error) {
	line, col := p.line, p.col
	var want string
	var tok Token
	switch kind {
	case KindTrue:
		want, tok = "true", withPos(BooleanValue(true), line, col)
	case KindFalse:
		want, tok = "false", withPos(BooleanValue(false), line, col)
	case KindNull:
		want, tok = "null", withPos(Null, line, col)
	}
	for _, want := range want {
		c, ok := p.readRune()
		if !ok || c != want {
			return Token{}, p.err(errUnexpectedCharacter(c, "in literal", line, col))
		}
	}
	return tok, nil
}

func (p *Parser) readString() (string, error) {
	line, col := p.line, p.col
	c, ok := p.readRune() // consume opening quote
	if !ok || c != '"' {
		return "", p.err(errUnexpectedCharacter(c, "at start of string", line, col))
	}
	var sb strings.Builder
	for {
		c, ok := p.readRune()
		if !ok {
			return "", p.eofErr()
		}
		switch {
		case c == '"':
			return sb.String(), nil
		case c == '\\':
			r, err := p.readEscape()
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
		case c < 0x20:
			if p.opts.Strict {
				return "", p.err(errControlCharacterInString(c, p.line, p.col))
			}
			sb.WriteRune(c)
		default:
			sb.WriteRune(c)
		}
	}
}

func (p *Parser) readEscape() (rune, error) {
	c, ok := p.readRune()
	if !ok {
		return 0, p.eofErr()
	}
	switch c {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		r1, err := p.readHex4()
		if err != nil {
			return 0, err
		}
		if isHighSurrogate(r1) {
			mark := p.hasPend
			pend := p.pending
			line, col := p.line, p.col
			if c1, ok1 := p.peek(); ok1 && c1 == '\\' {
				p.readRune()
				if c2, ok2 := p.readRune(); ok2 && c2 == 'u' {
					if r2, err2 := p.readHex4(); err2 == nil && isLowSurrogate(r2) {
						return combineSurrogates(r1, r2), nil
					}
				}
			}
			// Not a valid trailing surrogate: report the lone surrogate.
			// When the next character is not a backslash the lookahead
			// consumes nothing and it stays pending for the string loop.
			_ = mark
			_ = pend
			_ = line
			_ = col
			if p.opts.Strict {
				return 0, p.err(errInvalidUnicodeScalar(p.line, p.col))
			}
			return 0xFFFD, nil
		}
		if isLowSurrogate(r1) {
			if p.opts.Strict {
				return 0, p.err(errInvalidUnicodeScalar(p.line, p.col))
			}
			return 0xFFFD, nil
		}
		return r1, nil
	default:
		return 0, p.err(errInvalidEscape(p.line, p.col))
	}
}

func (p *Parser) readHex4() (rune, error) {
	var v rune
	for i := 0; i < 4; i++ {
		c, ok := p.readRune()
		if !ok {
			return 0, p.eofErr()
		}
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, p.err(errInvalidEscape(p.line, p.col))
		}
		v = v<<4 | d
	}
	return v, nil
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

func combineSurrogates(hi, lo rune) rune {
	return 0x10000 + (hi-0xD800)<<10 + (lo - 0xDC00)
}

func (p *Parser) readNumber() (Token, error) {
	line, col := p.line, p.col
	var sb strings.Builder
	isInteger := true

	c, _ := p.peek()
	if c == '-' {
		sb.WriteRune(c)
		p.readRune()
	} else if c == '+' {
		if p.opts.Strict {
			return Token{}, p.err(errUnexpectedCharacter(c, "at start of number", line, col))
		}
		p.readRune() // lenient: leading '+' is dropped, not part of the grammar we re-emit
	}

	c, ok := p.peek()
	if !ok {
		return Token{}, p.err(errInvalidNumber(line, col))
	}
	if c == '.' {
		if p.opts.Strict {
			return Token{}, p.err(errInvalidNumber(line, col))
		}
		sb.WriteRune('0') // lenient ".5" normalizes to "0.5"
	} else if c == '0' {
		sb.WriteRune(c)
		p.readRune()
		if c2, ok := p.peek(); ok && c2 >= '0' && c2 <= '9' {
			return Token{}, p.err(errInvalidNumber(line, col)) // leading zero
		}
	} else if c >= '1' && c <= '9' {
		for {
			c, ok := p.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			sb.WriteRune(c)
			p.readRune()
		}
	} else {
		return Token{}, p.err(errInvalidNumber(line, col))
	}

	if c, ok := p.peek(); ok && c == '.' {
		isInteger = false
		sb.WriteRune('.')
		p.readRune()
		n := 0
		for {
			c, ok := p.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			sb.WriteRune(c)
			p.readRune()
			n++
		}
		if n == 0 {
			return Token{}, p.err(errInvalidNumber(line, col))
		}
	}

	if c, ok := p.peek(); ok && (c == 'e' || c == 'E') {
		isInteger = false
		sb.WriteRune(c)
		p.readRune()
		if c, ok := p.peek(); ok && (c == '+' || c == '-') {
			sb.WriteRune(c)
			p.readRune()
		}
		n := 0
		for {
			c, ok := p.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			sb.WriteRune(c)
			p.readRune()
			n++
		}
		if n == 0 {
			return Token{}, p.err(errInvalidNumber(line, col))
		}
	}

	lit := numberLiteral{text: sb.String(), isInteger: isInteger}
	tok, err := classifyNumber(lit, p.opts.UseDecimals)
	if err != nil {
		return Token{}, p.err(err)
	}
	return withPos(tok, line, col), nil
}
