package parser

import (
	"os"
	"testing"

	"github.com/unitconv/unitconv/internal/errors"
	"github.com/unitconv/unitconv/internal/units"
)

// loadFixture parses testdata/units.def, the example universe from
// spec.md §6, shared by every test in this file.
func loadFixture(t *testing.T) *units.Universe {
	t.Helper()
	data, err := os.ReadFile("testdata/units.def")
	if err != nil {
		t.Fatal(err)
	}
	u, err := ParseUniverse(string(data), "units.def", nil)
	if err != nil {
		t.Fatalf("ParseUniverse: %v", err)
	}
	return u
}

func TestParseUniverseFundamentalProperties(t *testing.T) {
	u := loadFixture(t)

	for _, name := range []string{"length", "distance", "time", "mass", "temperature"} {
		if !u.HasProperty(name) {
			t.Errorf("missing property %q", name)
		}
	}

	meter, ok := u.GetUnit("meter")
	if !ok {
		t.Fatal("missing unit meter")
	}
	if meter.Multiplier().String() != "1" {
		t.Errorf("meter.Multiplier() = %s, want 1", meter.Multiplier())
	}

	inch, ok := u.GetUnit("inch")
	if !ok {
		t.Fatal("missing unit inch")
	}
	if got := inch.Multiplier(); got.FractionString() != "127/5000" {
		t.Errorf("inch.Multiplier() = %s, want 127/5000", got.FractionString())
	}
}

func TestParseUniversePrefixExpansion(t *testing.T) {
	u := loadFixture(t)

	km, ok := u.GetUnit("kilometer")
	if !ok {
		t.Fatal("missing prefixed unit kilometer")
	}
	if km.Multiplier().String() != "1000" {
		t.Errorf("kilometer.Multiplier() = %s, want 1000", km.Multiplier())
	}

	kg, ok := u.GetUnit("kilogram")
	if !ok {
		t.Fatal("missing prefixed unit kilogram")
	}
	if kg.Multiplier().String() != "1000" {
		t.Errorf("kilogram.Multiplier() = %s, want 1000", kg.Multiplier())
	}
}

func TestParseUniverseDerivedProperty(t *testing.T) {
	u := loadFixture(t)

	speed, ok := u.GetProperty("speed")
	if !ok {
		t.Fatal("missing property speed")
	}
	if speed.BaseUnit() == nil {
		t.Fatal("speed has no synthesized base unit")
	}

	mps, ok := u.GetUnit("mps")
	if !ok {
		t.Fatal("missing short-name-only unit mps")
	}
	if mps.Property() != speed {
		t.Errorf("mps.Property() = %v, want speed", mps.Property())
	}

	momentum, ok := u.GetProperty("momentum")
	if !ok {
		t.Fatal("missing property momentum")
	}
	if momentum.BaseUnit() == nil {
		t.Fatal("momentum (empty block) has no synthesized base unit")
	}
}

func TestParseUniverseOffsetUnitRejectsDerivationFromOffsetUnit(t *testing.T) {
	src := `temperature {
		kelvin (K);
		celsius (c) = K + 273.15;
		weird (w) = 2 celsius;
	}`
	_, err := ParseUniverse(src, "", nil)
	if err == nil {
		t.Fatal("expected error deriving a unit from an offsetted base unit")
	}
	e, ok := err.(*errors.Error)
	if !ok || e.Kind != errors.IncompatibleBaseUnit {
		t.Fatalf("err = %v, want Kind=IncompatibleBaseUnit", err)
	}
}

func TestParseUniverseCurrencyWithoutLoaderFails(t *testing.T) {
	src := `currency $ { USD: dollar; EUR: euro; }`
	_, err := ParseUniverse(src, "", nil)
	if err == nil {
		t.Fatal("expected error: currency block with no loader configured")
	}
}

func TestParseUniverseRejectsEmptyFundamentalProperty(t *testing.T) {
	src := `length { }`
	_, err := ParseUniverse(src, "", nil)
	if err == nil {
		t.Fatal("expected InvalidEmptyProperty")
	}
}

func TestParseUniverseRejectsDuplicateUnitName(t *testing.T) {
	src := `length { meter (m); foot (m) = 0.3048 meters; }`
	_, err := ParseUniverse(src, "", nil)
	if err == nil {
		t.Fatal("expected DuplicateUnitName")
	}
}
