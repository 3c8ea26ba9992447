// Package units implements the unit graph spec.md §3/§4.5-4.7 describes:
// UnitPrefix, Property, Unit, and the owning Universe registry. Modeled
// on the teacher's internal/types symbol-table shape (a frozen,
// name-indexed registry built once by a parser and read many times
// afterward) rather than a mutable runtime object graph.
package units

import "github.com/unitconv/unitconv/internal/rational"

// UnitPrefix is one entry of the closed decimal/binary prefix table
// (spec.md §4.5). Multiplier is base^scale, precomputed once.
type UnitPrefix struct {
	LongName   string
	ShortName  string
	Base       int
	Scale      int
	Multiplier *rational.Rational
}

func decimalPrefix(long, short string, scale int) UnitPrefix {
	return UnitPrefix{LongName: long, ShortName: short, Base: 10, Scale: scale, Multiplier: powRational(10, scale)}
}

func binaryPrefix(long, short string, scale int) UnitPrefix {
	return UnitPrefix{LongName: long, ShortName: short, Base: 2, Scale: scale, Multiplier: powRational(2, scale)}
}

func powRational(base int64, scale int) *rational.Rational {
	r := rational.FromInt(base)
	p, err := r.Pow(scale)
	if err != nil {
		// base is never 0 and scale is a fixed compile-time constant below.
		panic(err)
	}
	return p
}

// Prefixes is the closed, ordered list of every recognized prefix:
// decimal yotta…yocto and binary kibi…yobi (spec.md §4.5).
var Prefixes = []UnitPrefix{
	decimalPrefix("yotta", "Y", 24),
	decimalPrefix("zetta", "Z", 21),
	decimalPrefix("exa", "E", 18),
	decimalPrefix("peta", "P", 15),
	decimalPrefix("tera", "T", 12),
	decimalPrefix("giga", "G", 9),
	decimalPrefix("mega", "M", 6),
	decimalPrefix("kilo", "k", 3),
	decimalPrefix("hecto", "h", 2),
	decimalPrefix("deca", "da", 1),
	decimalPrefix("deci", "d", -1),
	decimalPrefix("centi", "c", -2),
	decimalPrefix("milli", "m", -3),
	decimalPrefix("micro", "u", -6),
	decimalPrefix("nano", "n", -9),
	decimalPrefix("pico", "p", -12),
	decimalPrefix("femto", "f", -15),
	decimalPrefix("atto", "a", -18),
	decimalPrefix("zepto", "z", -21),
	decimalPrefix("yocto", "y", -24),

	binaryPrefix("kibi", "Ki", 10),
	binaryPrefix("mebi", "Mi", 20),
	binaryPrefix("gibi", "Gi", 30),
	binaryPrefix("tebi", "Ti", 40),
	binaryPrefix("pebi", "Pi", 50),
	binaryPrefix("exbi", "Ei", 60),
	binaryPrefix("zebi", "Zi", 70),
	binaryPrefix("yobi", "Yi", 80),
}

var prefixByLongName = map[string]*UnitPrefix{}
var prefixByShortName = map[string]*UnitPrefix{}

func init() {
	for i := range Prefixes {
		p := &Prefixes[i]
		prefixByLongName[p.LongName] = p
		prefixByShortName[p.ShortName] = p
	}
}

// PrefixByLongName looks up a prefix by its long name (case-sensitive,
// spec.md §4.5).
func PrefixByLongName(name string) (*UnitPrefix, bool) {
	p, ok := prefixByLongName[name]
	return p, ok
}

// PrefixByShortName looks up a prefix by its short name (case-sensitive).
func PrefixByShortName(name string) (*UnitPrefix, bool) {
	p, ok := prefixByShortName[name]
	return p, ok
}
