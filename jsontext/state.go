// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontext

// stateMachine is a push-down automaton that validates whether a
// sequence of tokens is valid according to the JSON grammar, and caps
// how deep that sequence may nest. It is shared by the Parser and the
// Encoder so that both directions of travel enforce identical
// structural rules and the same depth ceiling — previously the
// Encoder had no depth limit at all, since MaxDepth was checked only
// on the Parser's side of the split.
//
// The stack has a minimum depth of 1, where the first level is a
// virtual top-level array that lets Streaming mode admit more than one
// top-level value without requiring commas between them.
type stateMachine struct {
	stack    []stateEntry
	maxDepth int
}

// init resets the machine to a single virtual top-level array and
// sets the depth ceiling pushObject/pushArray will enforce. A
// maxDepth <= 0 restores DefaultMaxDepth.
func (m *stateMachine) init(maxDepth int) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	m.stack = append(m.stack[:0], stateTypeArray)
	m.maxDepth = maxDepth
}

// depth is the current nesting depth, one-indexed: a bare top-level
// value has depth 1.
func (m stateMachine) depth() int { return len(m.stack) }

func (m stateMachine) last() *stateEntry { return &m.stack[len(m.stack)-1] }

// appendLiteral records that a null/bool/number/string leaf is next
// in the sequence.
func (m stateMachine) appendLiteral() error {
	e := m.last()
	if e.needObjectName() {
		return errMissingName
	}
	e.increment()
	return nil
}

// pushObject records a '{' as next in the sequence.
func (m *stateMachine) pushObject() error {
	e := m.last()
	if e.needObjectName() {
		return errMissingName
	}
	if len(m.stack) > m.maxDepth {
		return errExceededDepthLimit(m.maxDepth, 0, 0)
	}
	e.increment()
	m.stack = append(m.stack, stateTypeObject)
	return nil
}

// popObject records a '}' as next in the sequence.
func (m *stateMachine) popObject() error {
	e := m.last()
	switch {
	case !e.isObject():
		return errMismatchDelim
	case e.needObjectValue():
		return errMissingValue
	default:
		m.stack = m.stack[:len(m.stack)-1]
		return nil
	}
}

// pushArray records a '[' as next in the sequence.
func (m *stateMachine) pushArray() error {
	e := m.last()
	if e.needObjectName() {
		return errMissingName
	}
	if len(m.stack) > m.maxDepth {
		return errExceededDepthLimit(m.maxDepth, 0, 0)
	}
	e.increment()
	m.stack = append(m.stack, stateTypeArray)
	return nil
}

// popArray records a ']' as next in the sequence.
func (m *stateMachine) popArray() error {
	e := m.last()
	switch {
	case !e.isArray() || len(m.stack) == 1: // the virtual top-level array cannot be popped
		return errMismatchDelim
	default:
		m.stack = m.stack[:len(m.stack)-1]
		return nil
	}
}

// needsCommaBefore reports whether a comma must precede the next
// token of the given kind.
func (m stateMachine) needsCommaBefore(next Kind) bool {
	e := m.last()
	return !e.needObjectValue() && e.length() > 0 && len(m.stack) != 1 &&
		next != KindObjectEnd && next != KindArrayEnd
}

// needsColonBefore reports whether a colon must precede the next
// token, which is true exactly after an object name.
func (m stateMachine) needsColonBefore() bool {
	return m.last().needObjectValue()
}

// atTopLevel reports whether the machine sits at the virtual
// top-level array with no value consumed yet, or between top-level
// values in Streaming mode.
func (m stateMachine) atTopLevel() bool {
	return len(m.stack) == 1
}

// stateEntry packs whether a level is a JSON object or array, plus how
// many elements it has seen so far, into one integer.
type stateEntry uint64

const (
	stateTypeMask   stateEntry = 0x8000_0000_0000_0000
	stateTypeObject stateEntry = 0x8000_0000_0000_0000
	stateTypeArray  stateEntry = 0x0000_0000_0000_0000

	stateCountMask    stateEntry = 0x7fff_ffff_ffff_ffff
	stateCountLSBMask stateEntry = 0x0000_0000_0000_0001
	stateCountOdd     stateEntry = 0x0000_0000_0000_0001
	stateCountEven    stateEntry = 0x0000_0000_0000_0000
)

func (e stateEntry) length() int { return int(e & stateCountMask) }

func (e stateEntry) isObject() bool { return e&stateTypeMask == stateTypeObject }
func (e stateEntry) isArray() bool  { return e&stateTypeMask == stateTypeArray }

// needObjectName reports whether the next token must be a string
// serving as an object member name.
func (e stateEntry) needObjectName() bool {
	return e&(stateTypeMask|stateCountLSBMask) == stateTypeObject|stateCountEven
}

// needObjectValue reports whether the next token must be a value
// following an object member name.
func (e stateEntry) needObjectValue() bool {
	return e&(stateTypeMask|stateCountLSBMask) == stateTypeObject|stateCountOdd
}

func (e *stateEntry) increment() { (*e)++ }

var (
	errMissingName   = newSyntaxError(ErrUnexpectedCharacter, 0, 0, "missing string for object name")
	errMissingValue  = newSyntaxError(ErrUnexpectedCharacter, 0, 0, "missing value after object name")
	errMismatchDelim = newSyntaxError(ErrUnexpectedCharacter, 0, 0, "mismatching structural token for object or array")
)

// atLine stamps a state-machine sentinel error with real position info.
func atLine(err error, line, col int) error {
	if se, ok := err.(*SyntacticError); ok {
		return newSyntaxError(se.Code, line, col, se.msg)
	}
	return err
}
