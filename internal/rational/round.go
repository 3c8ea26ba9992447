package rational

import (
	"math/big"

	"github.com/unitconv/unitconv/internal/errors"
)

// RoundingMode selects how Round resolves a non-integer Rational to an
// integer-valued one. Every HALF_X mode reduces to UP or DOWN once the
// remainder (or the denominator-equal-2 shortcut) has been inspected.
type RoundingMode int

const (
	HalfUp RoundingMode = iota
	HalfDown
	HalfEven
	Ceiling
	Floor
	Up
	Down
	Unnecessary
)

// Round applies mode to r, returning an integer-valued Rational. Unnecessary
// fails with an ArithmeticError unless r is already an integer.
func (r *Rational) Round(mode RoundingMode) (*Rational, error) {
	if r.IsInteger() {
		return FromBigInt(r.num), nil
	}

	if mode == Unnecessary {
		return nil, errors.New(errors.ArithmeticError, "rounding necessary but forbidden for %s", r.FractionString())
	}

	q, rem := new(big.Int).QuoRem(r.num, r.den, new(big.Int))
	// QuoRem truncates toward zero; rem has the sign of r.num (or is zero).
	neg := r.num.Sign() < 0

	switch mode {
	case Down:
		return FromBigInt(q), nil
	case Up:
		if neg {
			return FromBigInt(new(big.Int).Sub(q, bigOne)), nil
		}
		return FromBigInt(new(big.Int).Add(q, bigOne)), nil
	case Floor:
		if neg {
			return FromBigInt(new(big.Int).Sub(q, bigOne)), nil
		}
		return FromBigInt(q), nil
	case Ceiling:
		if neg {
			return FromBigInt(q), nil
		}
		return FromBigInt(new(big.Int).Add(q, bigOne)), nil
	case HalfUp, HalfDown, HalfEven:
		return r.roundHalf(q, rem, neg, mode)
	default:
		return nil, errors.New(errors.ArithmeticError, "unknown rounding mode %d", mode)
	}
}

// roundHalf resolves the three HALF_X modes by comparing 2*|rem| against
// the denominator: the denominator-equal-2 shortcut means 2*|rem| == den
// exactly locates the halfway point without computing a float ratio.
func (r *Rational) roundHalf(q, rem *big.Int, neg bool, mode RoundingMode) (*Rational, error) {
	absRem := new(big.Int).Abs(rem)
	twiceRem := new(big.Int).Lsh(absRem, 1)
	cmp := twiceRem.Cmp(r.den)

	roundAwayFromZero := cmp > 0
	if cmp == 0 {
		switch mode {
		case HalfUp:
			roundAwayFromZero = true
		case HalfDown:
			roundAwayFromZero = false
		case HalfEven:
			// q is the truncated quotient; round to whichever neighbor is even.
			lower := new(big.Int).Set(q)
			upper := new(big.Int)
			if neg {
				upper.Sub(q, bigOne)
			} else {
				upper.Add(q, bigOne)
			}
			roundAwayFromZero = upper.Bit(0) == 0 && lower.Bit(0) != 0
		}
	}

	if !roundAwayFromZero {
		return FromBigInt(q), nil
	}
	if neg {
		return FromBigInt(new(big.Int).Sub(q, bigOne)), nil
	}
	return FromBigInt(new(big.Int).Add(q, bigOne)), nil
}

// ExactDecimalString renders r as a terminating base-10 decimal when its
// denominator has the form 2^a * 5^b, returning ok=false otherwise.
func (r *Rational) ExactDecimalString() (string, bool) {
	a, b, ok := factorTwosFives(r.den)
	if !ok {
		return "", false
	}
	scale := a
	if b > scale {
		scale = b
	}

	// Scale numerator up to an integer over 10^scale, then place the point.
	multiplier := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(scale-a)), nil)
	multiplier.Mul(multiplier, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(scale-b)), nil))
	scaled := new(big.Int).Mul(r.num, multiplier)

	neg := scaled.Sign() < 0
	digits := new(big.Int).Abs(scaled).String()
	for len(digits) <= scale {
		digits = "0" + digits
	}

	var out string
	if scale == 0 {
		out = digits
	} else {
		intPart := digits[:len(digits)-scale]
		fracPart := digits[len(digits)-scale:]
		out = intPart + "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out, true
}

// factorTwosFives reports whether n (must be > 0) is of the form 2^a * 5^b,
// returning a and b.
func factorTwosFives(n *big.Int) (a, b int, ok bool) {
	rem := new(big.Int).Set(n)
	two := big.NewInt(2)
	five := big.NewInt(5)
	zero := big.NewInt(0)
	for new(big.Int).Mod(rem, two).Cmp(zero) == 0 {
		rem.Div(rem, two)
		a++
	}
	for new(big.Int).Mod(rem, five).Cmp(zero) == 0 {
		rem.Div(rem, five)
		b++
	}
	return a, b, rem.Cmp(bigOne) == 0
}

// DecimalString renders an approximate decimal expansion when r does not
// terminate, to bitlen(num) + bitlen(den) digits after the decimal point (the
// numerator and denominator's combined bit length, not their max, since a
// single factor's bit length badly underestimates how many digits the
// long division needs before it stops looking like noise), bumped up to
// at least 17 fractional digits for small numerator/denominator pairs.
func (r *Rational) DecimalString() string {
	if s, ok := r.ExactDecimalString(); ok {
		return s
	}

	digits := r.num.BitLen() + r.den.BitLen()
	if digits < 17 {
		digits = 17
	}

	neg := r.num.Sign() < 0
	absNum := new(big.Int).Abs(r.num)

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	scaledNum := new(big.Int).Mul(absNum, scale)
	q, _ := new(big.Int).QuoRem(scaledNum, r.den, new(big.Int))

	digitsStr := q.String()
	for len(digitsStr) <= digits {
		digitsStr = "0" + digitsStr
	}
	intPart := digitsStr[:len(digitsStr)-digits]
	fracPart := digitsStr[len(digitsStr)-digits:]

	out := intPart + "." + fracPart + "..."
	if neg {
		out = "-" + out
	}
	return out
}
