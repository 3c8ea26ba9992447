package inflector

import "testing"

// wordTable is the canonical round-trip test table referenced by
// spec.md §8: "For all words w in the English test table:
// singular(plural(w)) = w and plural(singular(plural(w))) = plural(w)."
var wordTable = []string{
	"meter", "inch", "foot", "box", "city", "day", "potato", "photo",
	"knife", "child", "mouse", "ox", "hertz", "sheep", "church", "quiz",
	"kilogram", "second", "watt", "degree",
}

func TestPluralSingularRoundTrip(t *testing.T) {
	for _, w := range wordTable {
		p := PluralOf(w)
		s := SingularOf(p)
		if s != w {
			t.Errorf("SingularOf(PluralOf(%q)) = %q, want %q", w, s, w)
		}
		p2 := PluralOf(s)
		if p2 != p {
			t.Errorf("PluralOf(SingularOf(PluralOf(%q))) = %q, want %q", w, p2, p)
		}
	}
}

func TestKnownPlurals(t *testing.T) {
	cases := map[string]string{
		"meter":  "meters",
		"inch":   "inches",
		"foot":   "feet",
		"box":    "boxes",
		"city":   "cities",
		"day":    "days",
		"potato": "potatoes",
		"photo":  "photos",
		"knife":  "knives",
		"child":  "children",
		"mouse":  "mice",
		"ox":     "oxen",
		"hertz":  "hertz",
		"church": "churches",
		"quiz":   "quizzes",
	}
	for word, want := range cases {
		if got := PluralOf(word); got != want {
			t.Errorf("PluralOf(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestCaseRestoration(t *testing.T) {
	if got := PluralOf("METER"); got != "METERS" {
		t.Errorf("PluralOf(METER) = %q, want METERS", got)
	}
	if got := PluralOf("Meter"); got != "Meters" {
		t.Errorf("PluralOf(Meter) = %q, want Meters", got)
	}
	if got := PluralOf("meter"); got != "meters" {
		t.Errorf("PluralOf(meter) = %q, want meters", got)
	}
}

func TestWhitespacePreserved(t *testing.T) {
	if got := PluralOf("  meter  "); got != "  meters  " {
		t.Errorf("PluralOf(%q) = %q, want %q", "  meter  ", got, "  meters  ")
	}
}

func TestRuleOrderingFirstMatchWins(t *testing.T) {
	inf := New(
		MapLookup(map[string]string{"foo": "special"}),
		appendS(),
	)
	if got := inf.Apply("foo"); got != "special" {
		t.Errorf("expected the irregular mapping to win over the catch-all, got %q", got)
	}
	if got := inf.Apply("bar"); got != "bars" {
		t.Errorf("expected the catch-all to apply to an unmapped word, got %q", got)
	}
}

func TestOnlyForWordsInRestrictsRule(t *testing.T) {
	r := OnlyForWordsIn(map[string]bool{"ok": true}, Identity())
	if !r.AppliesTo("ok") {
		t.Error("expected rule to apply to a word in the set")
	}
	if r.AppliesTo("nope") {
		t.Error("expected rule to not apply to a word outside the set")
	}
}

func TestExceptForWordsInRestrictsRule(t *testing.T) {
	r := ExceptForWordsIn(map[string]bool{"skip": true}, Identity())
	if r.AppliesTo("skip") {
		t.Error("expected rule to not apply to an excluded word")
	}
	if !r.AppliesTo("keep") {
		t.Error("expected rule to apply to a non-excluded word")
	}
}

func TestSuffixDisjunction(t *testing.T) {
	r := SuffixDisjunction([2]string{"y", "ies"}, [2]string{"s", "es"})
	if !r.AppliesTo("city") || r.ApplyTo("city") != "cities" {
		t.Errorf("SuffixDisjunction on city = %q", r.ApplyTo("city"))
	}
}
