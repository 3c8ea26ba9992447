package rational

import (
	"math/big"
	"testing"

	"github.com/unitconv/unitconv/internal/errors"
)

func mustParseDecimal(t *testing.T, s string) *Rational {
	t.Helper()
	r, err := FromDecimalString(s)
	if err != nil {
		t.Fatalf("FromDecimalString(%q): %v", s, err)
	}
	return r
}

func TestNewReducesAndNormalizesSign(t *testing.T) {
	r, err := New(big.NewInt(4), big.NewInt(-8))
	if err != nil {
		t.Fatal(err)
	}
	want := MustNew(-1, 2)
	if !r.Equal(want) {
		t.Errorf("New(4,-8) = %s, want %s", r.FractionString(), want.FractionString())
	}
}

func TestNewZeroDenominatorFails(t *testing.T) {
	_, err := New(big.NewInt(1), big.NewInt(0))
	if !errors.Is(err, errors.ArithmeticError) {
		t.Fatalf("expected ArithmeticError, got %v", err)
	}
}

func TestZeroIsUniquelyZeroOverOne(t *testing.T) {
	r, err := New(big.NewInt(0), big.NewInt(7))
	if err != nil {
		t.Fatal(err)
	}
	if r.Den().Cmp(big.NewInt(1)) != 0 {
		t.Errorf("zero denominator = %s, want 1", r.Den())
	}
}

func TestAddAssociative(t *testing.T) {
	a := MustNew(1, 3)
	b := MustNew(5, 7)
	c := MustNew(-2, 11)
	lhs := a.Add(b).Add(c)
	rhs := a.Add(b.Add(c))
	if !lhs.Equal(rhs) {
		t.Errorf("(a+b)+c = %s, a+(b+c) = %s", lhs.FractionString(), rhs.FractionString())
	}
}

func TestMulDivIdentity(t *testing.T) {
	a := MustNew(22, 7)
	d := MustNew(9, 5)
	got, err := a.Mul(d).Div(d)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(a) {
		t.Errorf("a*d/d = %s, want %s", got.FractionString(), a.FractionString())
	}
}

func TestPowInverse(t *testing.T) {
	a := MustNew(3, 2)
	pos, err := a.Pow(4)
	if err != nil {
		t.Fatal(err)
	}
	neg, err := a.Pow(-4)
	if err != nil {
		t.Fatal(err)
	}
	got := pos.Mul(neg)
	if !got.Equal(One()) {
		t.Errorf("pow(a,-n)*pow(a,n) = %s, want 1", got.FractionString())
	}
}

func TestPowZeroToZeroIsOne(t *testing.T) {
	got, err := Zero().Pow(0)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(One()) {
		t.Errorf("0^0 = %s, want 1", got.FractionString())
	}
}

func TestPowZeroNegativeFails(t *testing.T) {
	_, err := Zero().Pow(-1)
	if !errors.Is(err, errors.ArithmeticError) {
		t.Fatalf("expected ArithmeticError, got %v", err)
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	a := MustNew(1, 3)
	b := MustNew(2, 5)
	if a.Cmp(b) != -b.Cmp(a) {
		t.Errorf("compare(a,b) = %d, -compare(b,a) = %d", a.Cmp(b), -b.Cmp(a))
	}
}

func TestDivByZeroFails(t *testing.T) {
	_, err := One().Div(Zero())
	if !errors.Is(err, errors.ArithmeticError) {
		t.Fatalf("expected ArithmeticError, got %v", err)
	}
}

func TestFromDecimalStringRoundTrip(t *testing.T) {
	cases := []string{"0.45359237", "-273.15", "1", "0", "100", "9460730472580800"}
	for _, c := range cases {
		r := mustParseDecimal(t, c)
		if out, ok := r.ExactDecimalString(); ok {
			// Re-parse and compare, rather than string-compare (e.g. "1" -> "1").
			reparsed := mustParseDecimal(t, out)
			if !reparsed.Equal(r) {
				t.Errorf("round trip %q: got %s back as %s", c, out, reparsed.FractionString())
			}
		} else {
			t.Errorf("expected %q to terminate in base 10", c)
		}
	}
}

func TestFromDecimalStringExponent(t *testing.T) {
	r := mustParseDecimal(t, "1.5e2")
	if !r.Equal(FromInt(150)) {
		t.Errorf("1.5e2 = %s, want 150", r.FractionString())
	}
}

func TestFromDecimalStringRejectsMalformed(t *testing.T) {
	cases := []string{"", "12.", "1.2.3", "1e", ".", "e5"}
	for _, c := range cases {
		if _, err := FromDecimalString(c); err == nil {
			t.Errorf("FromDecimalString(%q) should fail", c)
		}
	}
}

func TestFromFloat64Exact(t *testing.T) {
	r, err := FromFloat64(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equal(MustNew(1, 2)) {
		t.Errorf("FromFloat64(0.5) = %s, want 1/2", r.FractionString())
	}
}

func TestFromFloat64RejectsNaNAndInf(t *testing.T) {
	if _, err := FromFloat64(nan()); !errors.Is(err, errors.ArithmeticError) {
		t.Error("expected ArithmeticError for NaN")
	}
	if _, err := FromFloat64(posInf()); !errors.Is(err, errors.ArithmeticError) {
		t.Error("expected ArithmeticError for +Inf")
	}
}

func nan() float64    { var z float64; return z / z }
func posInf() float64 { return 1 / zero() }
func zero() float64   { var z float64; return z }

func TestRoundModes(t *testing.T) {
	half := MustNew(5, 2) // 2.5
	cases := []struct {
		mode RoundingMode
		want int64
	}{
		{HalfUp, 3},
		{HalfDown, 2},
		{Floor, 2},
		{Ceiling, 3},
		{Down, 2},
		{Up, 3},
	}
	for _, c := range cases {
		got, err := half.Round(c.mode)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(FromInt(c.want)) {
			t.Errorf("Round(%v) of 5/2 = %s, want %d", c.mode, got.FractionString(), c.want)
		}
	}
}

func TestRoundHalfEven(t *testing.T) {
	cases := []struct {
		r    *Rational
		want int64
	}{
		{MustNew(5, 2), 2},  // 2.5 -> 2 (even)
		{MustNew(7, 2), 4},  // 3.5 -> 4 (even)
		{MustNew(-5, 2), -2}, // -2.5 -> -2 (even)
	}
	for _, c := range cases {
		got, err := c.r.Round(HalfEven)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(FromInt(c.want)) {
			t.Errorf("Round(HalfEven) of %s = %s, want %d", c.r.FractionString(), got.FractionString(), c.want)
		}
	}
}

func TestRoundUnnecessaryFailsOnNonInteger(t *testing.T) {
	_, err := MustNew(1, 3).Round(Unnecessary)
	if !errors.Is(err, errors.ArithmeticError) {
		t.Fatalf("expected ArithmeticError, got %v", err)
	}
}

func TestRoundUnnecessaryPassesOnInteger(t *testing.T) {
	got, err := FromInt(7).Round(Unnecessary)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(FromInt(7)) {
		t.Errorf("got %s, want 7", got.FractionString())
	}
}
