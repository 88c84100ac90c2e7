package jsontext

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// numberLiteral is a raw JSON number literal broken into its grammar
// components, produced by the lexer before classification.
type numberLiteral struct {
	text      string // exact source text, e.g. "-1.5e2"
	isInteger bool   // no '.', 'e', or 'E' present
}

// classifyNumber decides which of Int64/Double/Decimal a lexed number
// literal becomes: integer literals that fit in int64 become
// Int64Value; anything else becomes DoubleValue unless useDecimals is
// set, in which case non-integers and integer overflow become
// DecimalValue.
func classifyNumber(lit numberLiteral, useDecimals bool) (Token, error) {
	if lit.isInteger {
		if i, err := strconv.ParseInt(lit.text, 10, 64); err == nil {
			return Int64Value(i), nil
		}
		// Overflowed int64: promote to Double, or Decimal if requested.
		if useDecimals {
			d, err := decimal.NewFromString(lit.text)
			if err != nil {
				return Token{}, errInvalidNumber(0, 0)
			}
			return DecimalValue(d), nil
		}
		f, err := strconv.ParseFloat(lit.text, 64)
		if err != nil {
			return Token{}, errInvalidNumber(0, 0)
		}
		return DoubleValue(f), nil
	}
	if useDecimals {
		d, err := decimal.NewFromString(lit.text)
		if err != nil {
			return Token{}, errInvalidNumber(0, 0)
		}
		return DecimalValue(d), nil
	}
	f, err := strconv.ParseFloat(lit.text, 64)
	if err != nil {
		return Token{}, errInvalidNumber(0, 0)
	}
	return DoubleValue(f), nil
}

// appendDouble appends the shortest decimal representation of f that
// round-trips back to f in binary64, matching the strconv convention
// used throughout the standard library's own JSON encoder.
func appendDouble(dst []byte, f float64) []byte {
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 {
		if abs < 1e-6 || abs >= 1e21 {
			format = 'e'
		}
	}
	return strconv.AppendFloat(dst, f, format, -1, 64)
}

func appendInt64(dst []byte, i int64) []byte {
	return strconv.AppendInt(dst, i, 10)
}

func appendDecimal(dst []byte, d decimal.Decimal) []byte {
	if exp := d.Exponent(); exp < 0 {
		return append(dst, d.StringFixed(-exp)...)
	}
	return append(dst, d.String()...)
}
