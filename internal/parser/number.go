package parser

import (
	"strings"

	"github.com/unitconv/unitconv/internal/lexer"
	"github.com/unitconv/unitconv/internal/rational"
)

// pi is spec.md §4.8.1's precomputed rational approximation of PI, good
// to 29 significant digits.
var pi = rational.MustNew(mustParseInt64(piNumerator), mustParseInt64(piDenominator))

func mustParseInt64(s string) int64 {
	var n int64
	for _, r := range s {
		n = n*10 + int64(r-'0')
	}
	return n
}

func (p *parser) atStartOfNumber() bool {
	if p.cur.Kind == lexer.NUMBER {
		return true
	}
	if p.cur.Kind == lexer.WORD && p.cur.Literal == "PI" {
		return true
	}
	if p.cur.Kind == lexer.PLUS || p.cur.Kind == lexer.MINUS {
		next := p.peek()
		return next.Kind == lexer.NUMBER || (next.Kind == lexer.WORD && next.Literal == "PI")
	}
	return false
}

// parseNumberAtom parses a single NUMBER or 'PI' token into a Rational.
func (p *parser) parseNumberAtom() (*rational.Rational, error) {
	switch {
	case p.cur.Kind == lexer.NUMBER:
		lit := p.cur.Literal
		tok := p.cur
		p.advance()
		// digit separators ('_' and '\'') are lexed but carry no value
		r, err := rational.FromDecimalString(strings.NewReplacer("_", "", "'", "").Replace(lit))
		if err != nil {
			return nil, p.errAt(tok, "invalid number %q: %v", lit, err)
		}
		return r, nil
	case p.cur.Kind == lexer.WORD && p.cur.Literal == "PI":
		p.advance()
		return pi, nil
	default:
		return nil, p.syntaxErrorf("expected a number, found %s", describeToken(p.cur))
	}
}

// parseNumber implements spec.md §4.8.1's `number` production:
//
//	number := ('+'|'-')? (NUMBER | 'PI') ( '*' (NUMBER | 'PI') )? ( '/' (NUMBER | 'PI') )?
func (p *parser) parseNumber() (*rational.Rational, error) {
	neg := false
	if p.cur.Kind == lexer.PLUS {
		p.advance()
	} else if p.cur.Kind == lexer.MINUS {
		neg = true
		p.advance()
	}

	val, err := p.parseNumberAtom()
	if err != nil {
		return nil, err
	}

	if p.cur.Kind == lexer.STAR {
		p.advance()
		other, err := p.parseNumberAtom()
		if err != nil {
			return nil, err
		}
		val = val.Mul(other)
	}

	if p.cur.Kind == lexer.SLASH {
		p.advance()
		other, err := p.parseNumberAtom()
		if err != nil {
			return nil, err
		}
		val, err = val.Div(other)
		if err != nil {
			return nil, err
		}
	}

	if neg {
		val = val.Neg()
	}
	return val, nil
}
