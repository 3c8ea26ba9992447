package inflector

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Inflector applies an ordered list of Rules to a word, the first
// matching rule wins (spec.md §4.4: "applying it splits leading/trailing
// whitespace, runs the first matching rule on the inner word, and
// restores the whitespace... Letter-case is matched on the result").
type Inflector struct {
	rules []Rule
}

// New builds an Inflector from an ordered rule list. The list should end
// with a catch-all (typically Identity()) so Apply never falls through
// without a match.
func New(rules ...Rule) *Inflector {
	return &Inflector{rules: append([]Rule(nil), rules...)}
}

// Apply runs the first matching rule against word, restoring the
// original leading/trailing whitespace and letter case.
func (inf *Inflector) Apply(word string) string {
	lead, inner, trail := splitWhitespace(word)
	if inner == "" {
		return word
	}

	lower := strings.ToLower(inner)
	var result string
	matched := false
	for _, r := range inf.rules {
		if r.AppliesTo(lower) {
			result = r.ApplyTo(lower)
			matched = true
			break
		}
	}
	if !matched {
		result = lower
	}

	return lead + restoreCase(inner, result) + trail
}

func splitWhitespace(s string) (lead, inner, trail string) {
	i := 0
	for i < len(s) && unicode.IsSpace(rune(s[i])) {
		i++
	}
	j := len(s)
	for j > i && unicode.IsSpace(rune(s[j-1])) {
		j--
	}
	return s[:i], s[i:j], s[j:]
}

// restoreCase matches the casing of original onto transformed: an
// all-uppercase original yields an all-uppercase result, a capitalized
// (title-case first letter) original yields a capitalized result,
// otherwise transformed is returned unchanged (it is already lowercase).
func restoreCase(original, transformed string) string {
	switch {
	case isAllUpper(original):
		return cases.Upper(language.Und).String(transformed)
	case isCapitalized(original):
		titled := cases.Title(language.Und).String(transformed)
		return titled
	default:
		return transformed
	}
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isCapitalized(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		return unicode.IsUpper(r)
	}
	return false
}
