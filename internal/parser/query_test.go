package parser

import (
	"fmt"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/unitconv/unitconv/internal/errors"
	"github.com/unitconv/unitconv/internal/format"
	"github.com/unitconv/unitconv/internal/units"
)

func queryResult(t *testing.T, u *units.Universe, query string) string {
	t.Helper()
	cq, err := ParseQuery(u, query)
	if err != nil {
		t.Fatalf("ParseQuery(%q): %v", query, err)
	}
	formatValue := units.FormatQuantity(func(q units.Quantity) string {
		return format.Default(q.Value)
	})
	return cq.ResultString(formatValue)
}

// TestEndToEndScenarios runs spec.md §8's worked scenarios 1-3 and 6
// against the shared example universe, snapshotting each result line.
func TestEndToEndScenarios(t *testing.T) {
	data, err := os.ReadFile("testdata/units.def")
	if err != nil {
		t.Fatal(err)
	}
	u, err := ParseUniverse(string(data), "units.def", nil)
	if err != nil {
		t.Fatalf("ParseUniverse: %v", err)
	}

	scenarios := []string{
		"100 miles per hour in meters per second",
		"2 meters in inches",
		"1/3 kilometers/hour in feet/min",
		"10 meters + 3 yards in feet",
	}
	for i, q := range scenarios {
		got := queryResult(t, u, q)
		snaps.MatchSnapshot(t, fmt.Sprintf("scenario_%d", i+1), got)
	}
}

func TestScenario2ExactValue(t *testing.T) {
	data, _ := os.ReadFile("testdata/units.def")
	u, err := ParseUniverse(string(data), "units.def", nil)
	if err != nil {
		t.Fatal(err)
	}
	got := queryResult(t, u, "2 meters in inches")
	want := "2 m = 78.740157480314960629921... in"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestScenario1ExactValue(t *testing.T) {
	data, _ := os.ReadFile("testdata/units.def")
	u, err := ParseUniverse(string(data), "units.def", nil)
	if err != nil {
		t.Fatal(err)
	}
	got := queryResult(t, u, "100 miles per hour in meters per second")
	want := "100 mi / h = 44.704 m / s"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOffsetConversionExact(t *testing.T) {
	data, _ := os.ReadFile("testdata/units.def")
	u, err := ParseUniverse(string(data), "units.def", nil)
	if err != nil {
		t.Fatal(err)
	}
	got := queryResult(t, u, "0 celsius in fahrenheit")
	want := "0 c = 32 f"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIncompatibleUnitsFails(t *testing.T) {
	data, _ := os.ReadFile("testdata/units.def")
	u, err := ParseUniverse(string(data), "units.def", nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = ParseQuery(u, "2 meters in seconds")
	if err == nil {
		t.Fatal("expected IncompatibleUnits")
	}
	if !errors.Is(err, errors.IncompatibleUnits) {
		t.Errorf("err = %v, want Kind=IncompatibleUnits", err)
	}
}

// TestDerivedUnitMemoizationPreservesIdentity exercises spec.md §8
// scenario 8: two successive UnitForFactors calls built from equal
// factorizations must return the identical *Unit instance, not merely an
// equal one.
func TestDerivedUnitMemoizationPreservesIdentity(t *testing.T) {
	data, _ := os.ReadFile("testdata/units.def")
	u, err := ParseUniverse(string(data), "units.def", nil)
	if err != nil {
		t.Fatal(err)
	}

	momentum, ok := u.GetProperty("momentum")
	if !ok {
		t.Fatal("missing property momentum")
	}
	factors := momentum.BaseUnit().Factors()

	unitA, err := u.UnitForFactors(factors)
	if err != nil {
		t.Fatal(err)
	}
	unitB, err := u.UnitForFactors(factors)
	if err != nil {
		t.Fatal(err)
	}
	if unitA != unitB {
		t.Errorf("UnitForFactors returned distinct instances for the same factorization")
	}
}

func TestQueryAndPlusCommaSeparatorsAgree(t *testing.T) {
	data, _ := os.ReadFile("testdata/units.def")
	u, err := ParseUniverse(string(data), "units.def", nil)
	if err != nil {
		t.Fatal(err)
	}
	and := queryResult(t, u, "1 meter and 1 meter in feet")
	plus := queryResult(t, u, "1 meter plus 1 meter in feet")
	comma := queryResult(t, u, "1 meter, 1 meter in feet")
	if and != plus || plus != comma {
		t.Errorf("and=%q plus=%q comma=%q, want all equal", and, plus, comma)
	}
}
