package inflector

// irregularPlural is the single source of truth for irregular forms;
// irregularSingular is derived from it by inversion (spec.md §4.4: "Both
// tables share a single source of truth for irregulars and uninflected
// words"). Several entries are unit names themselves ("foot"/"feet" is
// both an anatomical plural and the length unit), which is exactly the
// case registration (spec.md §4.6) exercises.
var irregularPlural = map[string]string{
	"man":      "men",
	"woman":    "women",
	"human":    "humans",
	"child":    "children",
	"person":   "people",
	"mouse":    "mice",
	"goose":    "geese",
	"tooth":    "teeth",
	"foot":     "feet",
	"ox":       "oxen",
	"louse":    "lice",
	"die":      "dice",
	"cactus":   "cacti",
	"focus":    "foci",
	"fungus":   "fungi",
	"nucleus":  "nuclei",
	"syllabus": "syllabi",
	"analysis": "analyses",
	"axis":     "axes",
	"basis":    "bases",
	"crisis":   "crises",
	"thesis":   "theses",
	"datum":    "data",
	"quiz":     "quizzes",
	"knife":    "knives",
	"wife":     "wives",
	"life":     "lives",
	"leaf":     "leaves",
	"loaf":     "loaves",
	"thief":    "thieves",
	"calf":     "calves",
	"half":     "halves",
	"elf":      "elves",
	"shelf":    "shelves",
	"wolf":     "wolves",
	"scarf":    "scarves",
}

var irregularSingular = invert(irregularPlural)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// uninflected holds words whose plural and singular forms are identical,
// including several SI unit names with no grammatical plural.
var uninflected = map[string]bool{
	"sheep": true, "deer": true, "moose": true, "fish": true,
	"series": true, "species": true, "offspring": true, "aircraft": true,
	"hertz": true, "lux": true, "siemens": true, "celsius": true,
}

// oExceptions are words ending in a consonant + "o" that take a plain
// "+s" plural instead of "+es".
var oExceptions = map[string]bool{
	"photo": true, "piano": true, "halo": true, "zero": true, "logo": true,
	"memo": true, "auto": true, "kilo": true, "solo": true, "silo": true,
	"taco": true, "cello": true, "kimono": true,
}

var oExceptionsPlural = pluralizeSet(oExceptions)

func pluralizeSet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for w := range set {
		out[w+"s"] = true
	}
	return out
}

// pluralRules builds the ordered English pluralization rule list
// (spec.md §4.4, §8: "singular(plural(w)) = w").
func pluralRules() []Rule {
	return []Rule{
		MapLookup(irregularPlural),
		InSet(uninflected),
		PatternReplace(`([^aeiou])y$`, `${1}ies`),
		ExceptForWordsIn(oExceptions, PatternReplace(`([^aeiou])o$`, `${1}oes`)),
		PatternReplace(`(s|ss|sh|ch|x|z)$`, `${1}es`),
		appendS(),
	}
}

// singularRules mirrors pluralRules with swapped substitutions, per
// spec.md §4.4: "Singular inflection runs the mirror rule order with
// swapped substitutions."
func singularRules() []Rule {
	return []Rule{
		MapLookup(irregularSingular),
		InSet(uninflected),
		PatternReplace(`([^aeiou])ies$`, `${1}y`),
		ExceptForWordsIn(oExceptionsPlural, PatternReplace(`([^aeiou])oes$`, `${1}o`)),
		PatternReplace(`(s|ss|sh|ch|x|z)es$`, `${1}`),
		PatternReplace(`s$`, ``),
	}
}

// appendS is the plural catch-all: every word not claimed by a more
// specific rule gets a trailing "s".
func appendS() Rule {
	return ruleFunc{
		appliesTo: func(string) bool { return true },
		applyTo:   func(w string) string { return w + "s" },
	}
}

var pluralInflector = New(pluralRules()...)
var singularInflector = New(singularRules()...)

// PluralOf returns the English plural of word, preserving its leading
// and trailing whitespace and letter case.
func PluralOf(word string) string {
	return pluralInflector.Apply(word)
}

// SingularOf returns the English singular of word, preserving its
// leading and trailing whitespace and letter case. Words that are
// already singular (or uninflected) are returned unchanged.
func SingularOf(word string) string {
	return singularInflector.Apply(word)
}
