package units

import (
	"strings"

	"github.com/unitconv/unitconv/internal/inflector"
)

// ConversionQuery is the evaluated form of a parsed query (spec.md
// §4.9): the original quantity list, their sum, and the sum converted
// to the destination unit.
type ConversionQuery struct {
	Quantities  []Quantity
	Destination *Unit
	Sum         Quantity
	Result      Quantity
}

// Evaluate sums quantities and converts the sum to destination,
// producing a ConversionQuery ready for its string forms.
func Evaluate(quantities []Quantity, destination *Unit) (*ConversionQuery, error) {
	sourceUnit := destination
	if len(quantities) > 0 {
		sourceUnit = quantities[0].Unit
	}
	sum, err := SumQuantities(sourceUnit, quantities)
	if err != nil {
		return nil, err
	}
	result, err := sum.ConvertTo(destination)
	if err != nil {
		return nil, err
	}
	return &ConversionQuery{
		Quantities:  quantities,
		Destination: destination,
		Sum:         sum,
		Result:      result,
	}, nil
}

// Expression renders the query's left-hand side: "q1" for a single
// quantity, "(q1) + (q2) + ..." for a sum (spec.md §4.9).
func (c *ConversionQuery) Expression(formatValue func(Quantity) string) string {
	if len(c.Quantities) == 1 {
		return formatValue(c.Quantities[0])
	}
	parts := make([]string, len(c.Quantities))
	for i, q := range c.Quantities {
		parts[i] = "(" + formatValue(q) + ")"
	}
	return strings.Join(parts, " + ")
}

// ResultString renders "expression = value unit" (spec.md §4.9).
func (c *ConversionQuery) ResultString(formatValue func(Quantity) string) string {
	return c.Expression(formatValue) + " = " + formatValue(c.Result)
}

// QueryString renders "expression in plural_unit_name" (spec.md §4.9).
func (c *ConversionQuery) QueryString(formatValue func(Quantity) string) string {
	name := c.Destination.PrimaryLongName()
	plural := name
	if len(c.Destination.longPlural) > 0 {
		plural = c.Destination.longPlural[0]
	} else {
		plural = inflector.PluralOf(name)
	}
	return c.Expression(formatValue) + " in " + plural
}

// FormatQuantity builds a Quantity formatter from a function rendering a
// Quantity's numeric value:
// "<value> <unit display name>" (spec.md §8 scenario 1 shows short
// names in results even when the query was typed with long ones).
func FormatQuantity(formatNumber func(Quantity) string) func(Quantity) string {
	return func(q Quantity) string {
		return formatNumber(q) + " " + q.Unit.DisplayName()
	}
}
