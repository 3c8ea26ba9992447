package parser

import (
	"strings"

	"github.com/unitconv/unitconv/internal/factorization"
	"github.com/unitconv/unitconv/internal/lexer"
)

// itemPrefixMultiplier maps the three recognized unit_name modifier
// words to the exponent multiplier spec.md §4.8.1 assigns them.
var itemPrefixMultiplier = map[string]int{
	"square":  2,
	"cubic":   3,
	"inverse": -1,
}

// parseName implements spec.md's `name` production: one or more
// consecutive WORD tokens joined with a single space. It stops at the
// first non-WORD token (punctuation, EOF, or one of the registered
// context keywords, which the lexer already emits as KEYWORD rather
// than WORD).
func (p *parser) parseName() string {
	var words []string
	for p.cur.Kind == lexer.WORD {
		words = append(words, p.cur.Literal)
		p.advance()
	}
	return strings.Join(words, " ")
}

// parseNameList implements `name_list := name (',' name)*`. When
// required is false, an empty list (next token not a WORD) is allowed —
// spec.md §6's example universe declares unit_defs with no long name,
// only a parenthesized short-name list, e.g. "(mps) = meters per second;".
func (p *parser) parseNameList(required bool) ([]string, error) {
	var names []string
	for p.cur.Kind == lexer.WORD {
		names = append(names, p.parseName())
		if p.cur.Kind != lexer.COMMA {
			break
		}
		p.advance()
	}
	if required && len(names) == 0 {
		return nil, p.syntaxErrorf("expected a name, found %s", describeToken(p.cur))
	}
	return names, nil
}

// parseItemName implements spec.md §4.8.1's greedy `unit_name` rule: a
// word that is "square", "cubic", or "inverse" unconditionally consumes
// one more word, after which further WORD tokens keep joining the name
// until a non-WORD token is reached. The returned multiplier is 2, 3, or
// -1 when a recognized modifier was stripped, 1 otherwise.
func (p *parser) parseItemName() (string, int, error) {
	if p.cur.Kind != lexer.WORD {
		return "", 0, p.syntaxErrorf("expected a unit or property name, found %s", describeToken(p.cur))
	}
	first := p.cur.Literal
	p.advance()

	words := []string{first}
	mult := 1
	if m, ok := itemPrefixMultiplier[first]; ok {
		if p.cur.Kind != lexer.WORD {
			return "", 0, p.syntaxErrorf("expected a name after %q, found %s", first, describeToken(p.cur))
		}
		words = append(words, p.cur.Literal)
		p.advance()
		mult = m
	}

	for p.cur.Kind == lexer.WORD {
		words = append(words, p.cur.Literal)
		p.advance()
	}

	name := words
	if mult != 1 {
		name = words[1:]
	}
	return strings.Join(name, " "), mult, nil
}

// parseExponent implements `exponent := '^' ('+'|'-')? NUMBER`, returning
// 1 when no exponent is present.
func (p *parser) parseExponent() (int, error) {
	if p.cur.Kind != lexer.CARET {
		return 1, nil
	}
	p.advance()
	neg := false
	if p.cur.Kind == lexer.PLUS {
		p.advance()
	} else if p.cur.Kind == lexer.MINUS {
		neg = true
		p.advance()
	}
	tok, err := p.expect(lexer.NUMBER)
	if err != nil {
		return 0, err
	}
	n, ok := parseSmallInt(tok.Literal)
	if !ok {
		return 0, p.errAt(tok, "exponent %q is not a plain integer", tok.Literal)
	}
	if neg {
		n = -n
	}
	return n, nil
}

func parseSmallInt(lit string) (int, bool) {
	n := 0
	for _, r := range lit {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// startsFactor reports whether the current token can begin a `factor`
// production: '(' or a WORD that is not a registered context keyword.
func (p *parser) startsFactor() bool {
	return p.cur.Kind == lexer.LPAREN || p.cur.Kind == lexer.WORD
}

// parseFactor implements:
//
//	factor := '(' factor_expr ')' exponent?
//	        | unit_name exponent?
func (p *parser) parseFactor() (factorization.Factorization[string], error) {
	if p.cur.Kind == lexer.LPAREN {
		p.advance()
		inner, err := p.parseFactorExpr()
		if err != nil {
			return factorization.Factorization[string]{}, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return factorization.Factorization[string]{}, err
		}
		exp, err := p.parseExponent()
		if err != nil {
			return factorization.Factorization[string]{}, err
		}
		return inner.Pow(exp), nil
	}

	name, mult, err := p.parseItemName()
	if err != nil {
		return factorization.Factorization[string]{}, err
	}
	exp, err := p.parseExponent()
	if err != nil {
		return factorization.Factorization[string]{}, err
	}
	return factorization.Single(name, exp*mult), nil
}

// parseMulExpr implements `mul_expr := factor ( ('*' | LPAREN | WORD) factor )*`:
// an explicit '*' is consumed, otherwise a directly-adjacent '(' or WORD
// begins the next factor with implicit multiplication.
func (p *parser) parseMulExpr() (factorization.Factorization[string], error) {
	result, err := p.parseFactor()
	if err != nil {
		return factorization.Factorization[string]{}, err
	}
	for {
		if p.cur.Kind == lexer.STAR {
			p.advance()
		} else if !p.startsFactor() {
			break
		}
		next, err := p.parseFactor()
		if err != nil {
			return factorization.Factorization[string]{}, err
		}
		result = result.Mul(next)
	}
	return result, nil
}

// parseDivExpr implements `div_expr := factor ( ('*'|'/'|'per'|LPAREN|WORD) factor )*`.
// Every factor after the first contributes with a running sign that
// starts negative (it is the expression's denominator) and flips on each
// explicit '/' or 'per' encountered, so "a / b / c" reduces to a*c/b —
// a second division inside the denominator un-divides.
func (p *parser) parseDivExpr() (factorization.Factorization[string], error) {
	sign := -1
	first, err := p.parseFactor()
	if err != nil {
		return factorization.Factorization[string]{}, err
	}
	result := first.Pow(sign)

	for {
		switch {
		case p.cur.Kind == lexer.SLASH || p.isKeyword("per"):
			p.advance()
			sign = -sign
		case p.cur.Kind == lexer.STAR:
			p.advance()
		case p.startsFactor():
			// implicit multiplication, sign unchanged
		default:
			return result, nil
		}
		next, err := p.parseFactor()
		if err != nil {
			return factorization.Factorization[string]{}, err
		}
		result = result.Mul(next.Pow(sign))
	}
}

// parseFactorExpr implements:
//
//	factor_expr := mul_expr (('/' | 'per') div_expr)?
func (p *parser) parseFactorExpr() (factorization.Factorization[string], error) {
	num, err := p.parseMulExpr()
	if err != nil {
		return factorization.Factorization[string]{}, err
	}
	if p.cur.Kind == lexer.SLASH || p.isKeyword("per") {
		p.advance()
		den, err := p.parseDivExpr()
		if err != nil {
			return factorization.Factorization[string]{}, err
		}
		return num.Mul(den), nil
	}
	return num, nil
}
