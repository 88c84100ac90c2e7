package jsontext

// DefaultMaxDepth is the default nesting depth ceiling enforced by both
// the Parser and the Encoder.
const DefaultMaxDepth = 64

// Options collects every configurable behavior of the Parser and Encoder
// in this package. The zero value is not directly useful; construct one
// with NewOptions, which applies package defaults before opts.
type Options struct {
	// Parser behavior.
	Strict            bool
	UseDecimals       bool
	KeepDuplicateKeys bool
	Streaming         bool
	MaxDepth          int

	// Encoder behavior.
	Pretty                bool
	Indent                string
	SortedKeys            bool
	EscapeSlashes         bool
	ASCIIOnly             bool
	AllowNonFiniteNumbers bool
	ChunkFlushThreshold   int
}

// Option mutates an Options value. Options compose by applying in order,
// so a later Option overrides an earlier one that touches the same field.
type Option func(*Options)

// NewOptions builds an Options from the package defaults plus opts.
func NewOptions(opts ...Option) Options {
	o := Options{
		MaxDepth: DefaultMaxDepth,
		Indent:   "  ",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Strict rejects all lenient extensions: comments, trailing commas,
// leading '+', ".5"-style numbers, and raw control characters in strings.
func Strict(v bool) Option { return func(o *Options) { o.Strict = v } }

// UseDecimals makes the parser emit DecimalValue in place of DoubleValue
// for non-integer literals, and for integer literals that overflow int64.
func UseDecimals(v bool) Option { return func(o *Options) { o.UseDecimals = v } }

// KeepDuplicateKeys signals an error on the second occurrence of an
// object key instead of the default, which keeps the last occurrence
// and discards the earlier value.
func KeepDuplicateKeys(v bool) Option { return func(o *Options) { o.KeepDuplicateKeys = v } }

// Streaming allows a Parser to yield more than one top-level value,
// each separated by JSON whitespace.
func Streaming(v bool) Option { return func(o *Options) { o.Streaming = v } }

// MaxDepth overrides the nesting depth ceiling. A value <= 0 restores
// DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.MaxDepth = n
	}
}

// Pretty turns on indentation and newlines between elements.
func Pretty(v bool) Option { return func(o *Options) { o.Pretty = v } }

// Indent overrides the indentation string used when Pretty is set.
func Indent(s string) Option { return func(o *Options) { o.Indent = s } }

// SortedKeys emits object members in lexicographic key order.
func SortedKeys(v bool) Option { return func(o *Options) { o.SortedKeys = v } }

// EscapeSlashes escapes '/' as "\/" in encoded strings.
func EscapeSlashes(v bool) Option { return func(o *Options) { o.EscapeSlashes = v } }

// ASCIIOnly forces non-ASCII scalars to \uXXXX escapes (surrogate pairs
// for non-BMP scalars) instead of emitting them verbatim.
func ASCIIOnly(v bool) Option { return func(o *Options) { o.ASCIIOnly = v } }

// AllowNonFiniteNumbers serializes NaN/+Inf/-Inf doubles as the strings
// "NaN"/"Infinity"/"-Infinity" instead of failing the encode.
func AllowNonFiniteNumbers(v bool) Option {
	return func(o *Options) { o.AllowNonFiniteNumbers = v }
}

// ChunkFlushThreshold overrides the encoder's output chunk size, in
// bytes, past which a completed chunk is flushed to the sink. A value
// <= 0 restores the package default (see internal/bufpool.FlushThreshold).
func ChunkFlushThreshold(n int) Option {
	return func(o *Options) { o.ChunkFlushThreshold = n }
}
