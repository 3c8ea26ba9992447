package units

import (
	"fmt"
	"strings"

	"github.com/unitconv/unitconv/internal/factorization"
	"github.com/unitconv/unitconv/internal/inflector"
	"github.com/unitconv/unitconv/internal/rational"
)

// Unit is a named, scaled member of a Property (spec.md §3 "Unit"). An
// atomic unit has an empty Factors; a derived unit's Factors describes
// the product/quotient of other units it was synthesized from. Property
// is nil for a derived unit whose dimension did not resolve to any
// registered property — such a unit is "invalid" and cannot convert.
type Unit struct {
	property     *Property
	longSingular []string
	longPlural   []string
	shortNames   []string
	multiplier   *rational.Rational
	offset       *rational.Rational
	prefix       *UnitPrefix
	factors      factorization.Factorization[*Unit]
}

// NewAtomicUnit creates an unprefixed, non-derived unit: the common case
// for a property's base unit and for units declared with an explicit
// "= m * base_expr" conversion (spec.md §4.8.1 unit_def).
func NewAtomicUnit(longSingular, shortNames []string, multiplier, offset *rational.Rational) *Unit {
	return &Unit{
		longSingular: append([]string(nil), longSingular...),
		longPlural:   pluralizeAll(longSingular),
		shortNames:   append([]string(nil), shortNames...),
		multiplier:   multiplier,
		offset:       offset,
	}
}

// NewPrefixedUnit builds a prefixed variant of base: long/short names are
// the prefix concatenated directly onto base's own names (spec.md §4.6,
// "Naming when a prefix is applied"), multiplier is prefix.Multiplier *
// base.multiplier, and offset is always zero. It fails if base already
// carries a prefix, since "no extra prefix may be applied to an
// already-prefixed unit."
func NewPrefixedUnit(base *Unit, prefix *UnitPrefix) (*Unit, error) {
	if base.prefix != nil {
		return nil, incompatibleBaseUnit(base.PrimaryLongName())
	}
	long := make([]string, len(base.longSingular))
	for i, n := range base.longSingular {
		long[i] = prefix.LongName + n
	}
	short := make([]string, len(base.shortNames))
	for i, n := range base.shortNames {
		short[i] = prefix.ShortName + n
	}
	u := &Unit{
		property:     base.property,
		longSingular: long,
		longPlural:   pluralizeAll(long),
		shortNames:   short,
		multiplier:   prefix.Multiplier.Mul(base.multiplier),
		offset:       rational.Zero(),
		prefix:       prefix,
	}
	return u, nil
}

// newDerivedUnit builds a (possibly invalid) derived unit from factors
// and its precomputed multiplier; property may be nil.
func newDerivedUnit(property *Property, factors factorization.Factorization[*Unit], multiplier *rational.Rational) *Unit {
	return &Unit{
		property:   property,
		multiplier: multiplier,
		offset:     rational.Zero(),
		factors:    factors,
	}
}

func pluralizeAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = pluralizePhrase(n)
	}
	return out
}

// pluralizePhrase pluralizes only the first word of a (possibly
// multi-word) unit name, so "degree celsius" pluralizes to
// "degrees celsius" rather than treating the whole phrase as one word.
func pluralizePhrase(name string) string {
	idx := strings.IndexByte(name, ' ')
	if idx < 0 {
		return inflector.PluralOf(name)
	}
	return inflector.PluralOf(name[:idx]) + name[idx:]
}

// withoutDegreePrefix strips a leading "degree " token, used to register
// the bare property-style alias ("Celsius" alongside "degree Celsius").
func withoutDegreePrefix(name string) (string, bool) {
	const p = "degree "
	if len(name) > len(p) && strings.EqualFold(name[:len(p)], p) {
		return name[len(p):], true
	}
	return "", false
}

// Property returns the unit's property, or nil if the unit is invalid
// (a derived unit whose dimension matched no registered property).
func (u *Unit) Property() *Property { return u.property }

// IsValid reports whether the unit has a resolved property.
func (u *Unit) IsValid() bool { return u.property != nil }

// IsDerived reports whether the unit was synthesized from other units.
func (u *Unit) IsDerived() bool { return !u.factors.IsEmpty() }

// IsBase reports whether u is its property's base unit.
func (u *Unit) IsBase() bool { return u.property != nil && u.property.BaseUnit() == u }

// Multiplier and Offset are the rationals of the conversion
// base_value = value*Multiplier + Offset (spec.md §3).
func (u *Unit) Multiplier() *rational.Rational { return u.multiplier }
func (u *Unit) Offset() *rational.Rational     { return u.offset }

// Prefix returns the UnitPrefix this unit was generated from, or nil for
// an unprefixed unit.
func (u *Unit) Prefix() *UnitPrefix { return u.prefix }

// Factors returns the unit's derivation, empty for an atomic unit.
func (u *Unit) Factors() factorization.Factorization[*Unit] { return u.factors }

// LongNames returns the singular long names registered for this unit.
func (u *Unit) LongNames() []string { return u.longSingular }

// PrimaryLongName returns the first registered long singular name, or
// the first short name if the unit has no long name (derived units
// built purely from an expression may have neither; callers needing a
// display name should prefer DisplayName over this in that case).
func (u *Unit) PrimaryLongName() string {
	if len(u.longSingular) > 0 {
		return u.longSingular[0]
	}
	if len(u.shortNames) > 0 {
		return u.shortNames[0]
	}
	return "?"
}

// DisplayName renders the short-name-preferred identifier query results
// are shown with (spec.md §8 scenario 1: "100 mi / h = 44.704 m / s" —
// short names even though the query itself was typed as "miles per
// hour"). A unit with no short name falls back to its long singular
// name; a nameless derived unit (synthesized from a factor expression,
// never itself registered) renders as a "/"-joined expression over its
// factors' own DisplayNames instead.
func (u *Unit) DisplayName() string {
	if len(u.shortNames) > 0 {
		return u.shortNames[0]
	}
	if len(u.longSingular) > 0 {
		return u.longSingular[0]
	}
	if !u.factors.IsEmpty() {
		return u.factors.ToFractionString(func(item *Unit, exp int) string {
			if exp == 1 {
				return item.DisplayName()
			}
			return fmt.Sprintf("%s^%d", item.DisplayName(), exp)
		})
	}
	return "?"
}

// AllNames returns every name this unit should be indexed under: long
// singular, long plural, the long-pluralized-without-"degree"-prefix
// alias, and short names (spec.md §4.6 step 2).
func (u *Unit) AllNames() []string {
	names := make([]string, 0, len(u.longSingular)*2+len(u.shortNames)+1)
	names = append(names, u.longSingular...)
	names = append(names, u.longPlural...)
	for _, n := range u.longSingular {
		if stripped, ok := withoutDegreePrefix(n); ok {
			names = append(names, stripped, pluralizePhrase(stripped))
		}
	}
	names = append(names, u.shortNames...)
	return names
}

// IsCompatibleWith reports whether u and other measure the same
// dimension (spec.md §4.6): both valid and with equal Property
// dimensions.
func (u *Unit) IsCompatibleWith(other *Unit) bool {
	if !u.IsValid() || !other.IsValid() {
		return false
	}
	return u.property.Dimensions().Equal(other.property.Dimensions())
}

// ConvertTo converts x, expressed in u, to the equivalent value in other
// (spec.md §4.6 "Conversion semantics"). It fails with IncompatibleUnits
// when the two units are not dimensionally compatible.
func (u *Unit) ConvertTo(other *Unit, x *rational.Rational) (*rational.Rational, error) {
	if u == other {
		return x, nil
	}
	if !u.IsCompatibleWith(other) {
		return nil, incompatibleUnits(u.PrimaryLongName(), other.PrimaryLongName())
	}

	xBase := x
	if !u.IsBase() {
		xBase = x.Mul(u.multiplier).Add(u.offset)
	}

	if other.IsBase() {
		return xBase, nil
	}
	return xBase.Sub(other.offset).Div(other.multiplier)
}
