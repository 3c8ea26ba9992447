// Package format renders a Rational as a human-readable string: a
// terminating-decimal fast path when the denominator allows it, an
// arbitrary-precision decimal approximation otherwise (spec.md §4.1
// "Decimal conversion"). Modeled on the teacher's own formatter-options
// style (gurre-si's FormatOptions/DefaultFormatter: a small options
// struct plus a default instance), generalized from unit-expression
// rendering to number rendering.
package format

import "github.com/unitconv/unitconv/internal/rational"

// Options describes formatter precision settings. Default takes no
// Options; its precision floor is the one built into Rational.DecimalString.
type Options struct {
	// MinSignificantDigits is the floor applied to the arbitrary-precision
	// fallback's working precision (spec.md §4.1: "floored up to >= 17 digits").
	MinSignificantDigits int
}

// DefaultOptions mirrors spec.md §4.1's own numbers.
func DefaultOptions() Options {
	return Options{MinSignificantDigits: 17}
}

// Number is the injectable Rational -> string contract the Universe
// (spec.md §3 "number_formatter") uses to render a query's result.
type Number func(*rational.Rational) string

// Default renders r using the exact-decimal fast path when the
// denominator terminates in base 10, falling back to the rational's own
// arbitrary-precision decimal approximation otherwise (spec.md §4.1:
// an approximation "floored up to >= 17 digits", trailing "..." marking
// it as inexact). This is the formatter a ConversionQuery result uses,
// as opposed to Rational.String's fraction fallback.
func Default(r *rational.Rational) string {
	return r.DecimalString()
}
