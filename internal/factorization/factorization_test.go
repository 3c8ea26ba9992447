package factorization

import (
	"fmt"
	"testing"
)

func fmtItem(item string, exp int) string {
	if exp == 1 {
		return item
	}
	return fmt.Sprintf("%s^%d", item, exp)
}

func TestEmptyIsIdentity(t *testing.T) {
	f := Empty[string]()
	if !f.IsEmpty() {
		t.Error("Empty() should be empty")
	}
	if f.ToCanonicalString(fmtItem) != "1" {
		t.Errorf("empty canonical string = %q, want 1", f.ToCanonicalString(fmtItem))
	}
}

func TestMulItemCollapsesAndDrops(t *testing.T) {
	f := Single("m", 1).MulItem("m", 2).MulItem("m", -3)
	if !f.IsEmpty() {
		t.Errorf("expected m^1 * m^2 * m^-3 to cancel to empty, got %v", f.Keys())
	}
}

func TestMulDivRoundTrip(t *testing.T) {
	f := Single("m", 1).Mul(Single("s", -1))
	g := Single("kg", 1)
	if !f.Mul(g).Div(g).Equal(f) {
		t.Error("F.mul(G).div(G) should equal F")
	}
}

func TestPowZeroIsEmpty(t *testing.T) {
	f := Single("m", 2)
	if !f.Pow(0).IsEmpty() {
		t.Error("F.pow(0) should be empty")
	}
}

func TestPowComposes(t *testing.T) {
	f := Single("m", 2)
	lhs := f.Pow(3).Pow(4)
	rhs := f.Pow(12)
	if !lhs.Equal(rhs) {
		t.Error("F.pow(n).pow(m) should equal F.pow(n*m)")
	}
}

func TestInverseInvolutory(t *testing.T) {
	f := Single("m", 1).Mul(Single("s", -2))
	if !f.Inverse().Inverse().Equal(f) {
		t.Error("F.inverse().inverse() should equal F")
	}
}

func TestNumeratorDenominatorRoundTrip(t *testing.T) {
	f := Single("kg", 1).Mul(Single("m", 1)).Mul(Single("s", -2))
	got := f.Numerator().Div(f.Denominator())
	if !got.Equal(f) {
		t.Error("F.numerator().div(F.denominator()) should equal F")
	}
}

func TestTransformIdentity(t *testing.T) {
	f := Single("m", 1).Mul(Single("s", -1))
	got := Transform(f, func(s string) string { return s })
	if !got.Equal(f) {
		t.Error("F.transform(id) should equal F")
	}
}

func TestTransformCollapsesDuplicates(t *testing.T) {
	f := Single("meter", 1).Mul(Single("metre", 2))
	got := Transform(f, func(s string) string { return "length" }) // both map to same item
	if got.Exponent("length") != 3 {
		t.Errorf("expected collapsed exponent 3, got %d", got.Exponent("length"))
	}
}

func TestToFractionStringOmitsSlashOne(t *testing.T) {
	f := Single("m", 1)
	if got := f.ToFractionString(fmtItem); got != "m" {
		t.Errorf("ToFractionString = %q, want %q", got, "m")
	}
}

func TestToFractionStringWithDenominator(t *testing.T) {
	f := Single("m", 1).Mul(Single("s", -1))
	if got := f.ToFractionString(fmtItem); got != "m / s" {
		t.Errorf("ToFractionString = %q, want %q", got, "m / s")
	}
}

func TestToCanonicalStringAllPositive(t *testing.T) {
	f := Single("m", 1).Mul(Single("s", -2))
	got := f.ToCanonicalString(fmtItem)
	if got != "m s^2" {
		t.Errorf("ToCanonicalString = %q, want %q", got, "m s^2")
	}
}

func TestToCanonicalStringNumeratorOnly(t *testing.T) {
	f := Single("m", 1)
	if got := f.ToCanonicalString(fmtItem); got != "m" {
		t.Errorf("ToCanonicalString = %q, want %q", got, "m")
	}
}

func TestToCanonicalStringDenominatorOnly(t *testing.T) {
	f := Single("s", -1)
	if got := f.ToCanonicalString(fmtItem); got != "s" {
		t.Errorf("ToCanonicalString = %q, want %q", got, "s")
	}
}

func TestKeysPreservesInsertionOrder(t *testing.T) {
	f := Single("a", 1).MulItem("b", 1).MulItem("c", 1)
	got := f.Keys()
	want := []string{"a", "b", "c"}
	for i, k := range want {
		if got[i] != k {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], k)
		}
	}
}
