// Package inflector implements a small rule-based engine for English
// plural/singular inflection, used to register a Unit's derived names
// (spec.md §4.6, "Insert each name (long singular, long plural, ...)")
// and to render a query's destination unit name in its plural form.
// Modeled on the teacher's pattern-table style analyzers (one ordered
// list of small, independently testable rules, first match wins) rather
// than a single monolithic switch.
package inflector

import "regexp"

// Rule is a single inflection rule: AppliesTo decides whether the rule
// handles word, ApplyTo performs the transformation. Rules operate on
// already-lowercased, whitespace-trimmed words; Inflector restores case
// and surrounding whitespace.
type Rule interface {
	AppliesTo(word string) bool
	ApplyTo(word string) string
}

type ruleFunc struct {
	appliesTo func(string) bool
	applyTo   func(string) string
}

func (r ruleFunc) AppliesTo(word string) bool { return r.appliesTo(word) }
func (r ruleFunc) ApplyTo(word string) string { return r.applyTo(word) }

// Identity returns a rule that matches every word and leaves it unchanged.
func Identity() Rule {
	return ruleFunc{
		appliesTo: func(string) bool { return true },
		applyTo:   func(w string) string { return w },
	}
}

// PatternReplace returns a rule that matches words against pattern and,
// when matched, replaces every match per regexp.ReplaceAllString
// semantics (so "$1"-style backreferences in replacement are honored).
func PatternReplace(pattern, replacement string) Rule {
	re := regexp.MustCompile(pattern)
	return ruleFunc{
		appliesTo: re.MatchString,
		applyTo:   func(w string) string { return re.ReplaceAllString(w, replacement) },
	}
}

// PatternToFunction returns a rule that matches words against pattern and,
// when matched, computes the replacement from the regexp submatches.
func PatternToFunction(pattern string, fn func(submatches []string) string) Rule {
	re := regexp.MustCompile(pattern)
	return ruleFunc{
		appliesTo: re.MatchString,
		applyTo: func(w string) string {
			loc := re.FindStringSubmatchIndex(w)
			if loc == nil {
				return w
			}
			matches := make([]string, len(loc)/2)
			for i := range matches {
				if loc[2*i] < 0 {
					continue
				}
				matches[i] = w[loc[2*i]:loc[2*i+1]]
			}
			start, end := loc[0], loc[1]
			return w[:start] + fn(matches) + w[end:]
		},
	}
}

// SuffixReplace returns a rule matching words ending in suffix, replacing
// that suffix with replacement.
func SuffixReplace(suffix, replacement string) Rule {
	return ruleFunc{
		appliesTo: func(w string) bool { return hasSuffixFold(w, suffix) },
		applyTo:   func(w string) string { return w[:len(w)-len(suffix)] + replacement },
	}
}

// SuffixDisjunction returns a rule matching any of several suffixes, each
// replaced by its paired replacement (first matching pair wins).
func SuffixDisjunction(pairs ...[2]string) Rule {
	return ruleFunc{
		appliesTo: func(w string) bool {
			for _, p := range pairs {
				if hasSuffixFold(w, p[0]) {
					return true
				}
			}
			return false
		},
		applyTo: func(w string) string {
			for _, p := range pairs {
				if hasSuffixFold(w, p[0]) {
					return w[:len(w)-len(p[0])] + p[1]
				}
			}
			return w
		},
	}
}

// OnlyForWordsIn restricts inner to apply only when word is a member of set.
func OnlyForWordsIn(set map[string]bool, inner Rule) Rule {
	return ruleFunc{
		appliesTo: func(w string) bool { return set[w] && inner.AppliesTo(w) },
		applyTo:   inner.ApplyTo,
	}
}

// ExceptForWordsIn restricts inner to apply only when word is not a
// member of set.
func ExceptForWordsIn(set map[string]bool, inner Rule) Rule {
	return ruleFunc{
		appliesTo: func(w string) bool { return !set[w] && inner.AppliesTo(w) },
		applyTo:   inner.ApplyTo,
	}
}

// ForWordsMatching restricts inner to apply only when word matches pattern.
func ForWordsMatching(pattern string, inner Rule) Rule {
	re := regexp.MustCompile(pattern)
	return ruleFunc{
		appliesTo: func(w string) bool { return re.MatchString(w) && inner.AppliesTo(w) },
		applyTo:   inner.ApplyTo,
	}
}

// ForWordsNotMatching restricts inner to apply only when word does not
// match pattern.
func ForWordsNotMatching(pattern string, inner Rule) Rule {
	re := regexp.MustCompile(pattern)
	return ruleFunc{
		appliesTo: func(w string) bool { return !re.MatchString(w) && inner.AppliesTo(w) },
		applyTo:   inner.ApplyTo,
	}
}

// ConstrainedBy restricts inner to apply only when pred(word) holds.
func ConstrainedBy(pred func(word string) bool, inner Rule) Rule {
	return ruleFunc{
		appliesTo: func(w string) bool { return pred(w) && inner.AppliesTo(w) },
		applyTo:   inner.ApplyTo,
	}
}

// MapLookup returns a rule that matches words present as a key of table,
// returning the associated value.
func MapLookup(table map[string]string) Rule {
	return ruleFunc{
		appliesTo: func(w string) bool { _, ok := table[w]; return ok },
		applyTo:   func(w string) string { return table[w] },
	}
}

// InSet returns a rule that matches words present in set, returning the
// word unchanged (used for invariant/uninflected words).
func InSet(set map[string]bool) Rule {
	return ruleFunc{
		appliesTo: func(w string) bool { return set[w] },
		applyTo:   func(w string) string { return w },
	}
}

func hasSuffixFold(w, suffix string) bool {
	if len(w) < len(suffix) {
		return false
	}
	return w[len(w)-len(suffix):] == suffix
}
