// Package rational implements an exact, arbitrary-precision fraction type.
// Every value is kept in lowest terms with a strictly positive denominator,
// so the conversion engine never loses precision performing the chained
// multiply/divide/add steps a unit conversion requires. Modeled on the
// teacher's dispatch-table-and-accumulated-state lexer style: small,
// focused methods, no hidden global state, every operation returns a new
// immutable value.
package rational

import (
	"math"
	"math/big"
	"strings"

	"github.com/unitconv/unitconv/internal/errors"
)

// Rational is an immutable reduced fraction: Num/Den, Den > 0, gcd(|Num|, Den) == 1.
// The zero value is not valid; use Zero() or one of the constructors.
type Rational struct {
	num *big.Int
	den *big.Int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Zero returns the rational 0/1.
func Zero() *Rational { return &Rational{num: big.NewInt(0), den: big.NewInt(1)} }

// One returns the rational 1/1.
func One() *Rational { return &Rational{num: big.NewInt(1), den: big.NewInt(1)} }

// New builds a reduced Rational from a numerator and denominator. It fails
// with an ArithmeticError if den is zero.
func New(num, den *big.Int) (*Rational, error) {
	if den.Sign() == 0 {
		return nil, errors.New(errors.ArithmeticError, "division by zero constructing rational %s/%s", num, den)
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Cmp(bigOne) > 0 {
		n.Div(n, g)
		d.Div(d, g)
	}
	if n.Sign() == 0 {
		d.Set(bigOne)
	}
	return &Rational{num: n, den: d}, nil
}

// MustNew is New but panics on error; intended for compile-time constants.
func MustNew(num, den int64) *Rational {
	r, err := New(big.NewInt(num), big.NewInt(den))
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt builds an integer-valued Rational.
func FromInt(n int64) *Rational {
	return &Rational{num: big.NewInt(n), den: big.NewInt(1)}
}

// FromBigInt builds an integer-valued Rational from a *big.Int.
func FromBigInt(n *big.Int) *Rational {
	return &Rational{num: new(big.Int).Set(n), den: big.NewInt(1)}
}

// FromDecimalString parses "[+-]?digits(.digits)?([eE][+-]?digits)?" exactly,
// with no intermediate floating-point conversion.
func FromDecimalString(s string) (*Rational, error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New(errors.ArithmeticError, "empty decimal string")
	}

	sign := int64(1)
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	mantissa := s
	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		expStr := s[i+1:]
		if expStr == "" {
			return nil, errors.New(errors.ArithmeticError, "invalid decimal literal %q: missing exponent digits", orig)
		}
		e, ok := parseSignedInt(expStr)
		if !ok {
			return nil, errors.New(errors.ArithmeticError, "invalid decimal literal %q: bad exponent", orig)
		}
		exp = e
	}

	intPart := mantissa
	fracPart := ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart = mantissa[:i]
		fracPart = mantissa[i+1:]
		if fracPart == "" {
			return nil, errors.New(errors.ArithmeticError, "invalid decimal literal %q: missing fractional digits", orig)
		}
	}
	if intPart == "" && fracPart == "" {
		return nil, errors.New(errors.ArithmeticError, "invalid decimal literal %q", orig)
	}
	if !isAllDigits(intPart) || !isAllDigits(fracPart) {
		return nil, errors.New(errors.ArithmeticError, "invalid decimal literal %q", orig)
	}

	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, errors.New(errors.ArithmeticError, "invalid decimal literal %q", orig)
	}
	if sign < 0 {
		num.Neg(num)
	}

	scale := len(fracPart) - exp
	var den *big.Int
	if scale > 0 {
		den = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	} else {
		num.Mul(num, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-scale)), nil))
		den = big.NewInt(1)
	}

	return New(num, den)
}

func parseSignedInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" || !isAllDigits(s) {
		return 0, false
	}
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

func isAllDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// FromFloat64 decomposes the exact IEEE-754 bit pattern of f into a
// dyadic rational. NaN and +/-Inf are rejected with an ArithmeticError.
func FromFloat64(f float64) (*Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.New(errors.ArithmeticError, "non-finite float %v cannot be converted to a rational", f)
	}
	if f == 0 {
		return Zero(), nil
	}
	mantissa, exp := math.Frexp(f) // f == mantissa * 2^exp, 0.5 <= |mantissa| < 1
	const mantissaBits = 53
	m := int64(mantissa * (1 << mantissaBits))
	e := exp - mantissaBits

	num := big.NewInt(m)
	den := big.NewInt(1)
	if e >= 0 {
		num.Lsh(num, uint(e))
	} else {
		den.Lsh(den, uint(-e))
	}
	return New(num, den)
}

// Num returns a copy of the numerator.
func (r *Rational) Num() *big.Int { return new(big.Int).Set(r.num) }

// Den returns a copy of the denominator.
func (r *Rational) Den() *big.Int { return new(big.Int).Set(r.den) }

// Sign returns -1, 0, or 1 matching the sign of r.
func (r *Rational) Sign() int { return r.num.Sign() }

// IsZero reports whether r is exactly zero.
func (r *Rational) IsZero() bool { return r.num.Sign() == 0 }

// IsInteger reports whether r has no fractional part.
func (r *Rational) IsInteger() bool { return r.den.Cmp(bigOne) == 0 }

// Add returns r + o.
func (r *Rational) Add(o *Rational) *Rational {
	n := new(big.Int).Add(new(big.Int).Mul(r.num, o.den), new(big.Int).Mul(o.num, r.den))
	d := new(big.Int).Mul(r.den, o.den)
	out, _ := New(n, d)
	return out
}

// Sub returns r - o.
func (r *Rational) Sub(o *Rational) *Rational {
	return r.Add(o.Neg())
}

// Mul returns r * o.
func (r *Rational) Mul(o *Rational) *Rational {
	n := new(big.Int).Mul(r.num, o.num)
	d := new(big.Int).Mul(r.den, o.den)
	out, _ := New(n, d)
	return out
}

// Div returns r / o. Fails with an ArithmeticError when o is zero.
func (r *Rational) Div(o *Rational) (*Rational, error) {
	if o.IsZero() {
		return nil, errors.New(errors.ArithmeticError, "division by zero")
	}
	n := new(big.Int).Mul(r.num, o.den)
	d := new(big.Int).Mul(r.den, o.num)
	return New(n, d)
}

// Neg returns -r.
func (r *Rational) Neg() *Rational {
	return &Rational{num: new(big.Int).Neg(r.num), den: new(big.Int).Set(r.den)}
}

// Abs returns |r|.
func (r *Rational) Abs() *Rational {
	return &Rational{num: new(big.Int).Abs(r.num), den: new(big.Int).Set(r.den)}
}

// Reciprocal returns 1/r. Fails with an ArithmeticError when r is zero.
func (r *Rational) Reciprocal() (*Rational, error) {
	if r.IsZero() {
		return nil, errors.New(errors.ArithmeticError, "reciprocal of zero")
	}
	out, _ := New(r.den, r.num)
	return out, nil
}

// Pow raises r to an integer power. r.Pow(0) is 1 for any r, including 0
// (0^0 == 1). A negative exponent of zero fails with an ArithmeticError.
func (r *Rational) Pow(n int) (*Rational, error) {
	if n == 0 {
		return One(), nil
	}
	if r.IsZero() {
		if n < 0 {
			return nil, errors.New(errors.ArithmeticError, "zero raised to a negative power")
		}
		return Zero(), nil
	}
	exp := n
	base := r
	if exp < 0 {
		exp = -exp
		var err error
		base, err = r.Reciprocal()
		if err != nil {
			return nil, err
		}
	}
	num := new(big.Int).Exp(base.num, big.NewInt(int64(exp)), nil)
	den := new(big.Int).Exp(base.den, big.NewInt(int64(exp)), nil)
	out, _ := New(num, den)
	return out, nil
}

// Cmp compares r to o: -1 if r < o, 0 if equal, 1 if r > o.
func (r *Rational) Cmp(o *Rational) int {
	rs, os := r.Sign(), o.Sign()
	if rs != os {
		if rs < os {
			return -1
		}
		return 1
	}
	if r.den.Cmp(o.den) == 0 {
		return r.num.Cmp(o.num)
	}
	lhs := new(big.Int).Mul(r.num, o.den)
	rhs := new(big.Int).Mul(o.num, r.den)
	return lhs.Cmp(rhs)
}

// Equal reports structural equality (which, for reduced fractions, is
// equivalent to numeric equality).
func (r *Rational) Equal(o *Rational) bool {
	return r.num.Cmp(o.num) == 0 && r.den.Cmp(o.den) == 0
}

// String renders an exact decimal when the denominator terminates in base
// 10, otherwise a fraction "num/den".
func (r *Rational) String() string {
	if s, ok := r.ExactDecimalString(); ok {
		return s
	}
	return r.FractionString()
}

// FractionString renders "num/den", omitting the denominator when it is 1.
func (r *Rational) FractionString() string {
	if r.den.Cmp(bigOne) == 0 {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}
