package parser

import (
	"context"

	"github.com/unitconv/unitconv/internal/currency"
	"github.com/unitconv/unitconv/internal/errors"
	"github.com/unitconv/unitconv/internal/factorization"
	"github.com/unitconv/unitconv/internal/lexer"
	"github.com/unitconv/unitconv/internal/rational"
	"github.com/unitconv/unitconv/internal/units"
)

// ParseUniverse implements spec.md §4.8.1's `file := property_def+`
// grammar, building and freezing a Universe. loader may be nil as long
// as the source contains no currency_block; a currency property with no
// loader configured fails with a plain syntax-shaped diagnostic rather
// than a nil-pointer panic.
func ParseUniverse(source, filename string, loader currency.Loader) (*units.Universe, error) {
	p := newParser(source, filename)
	// "in", "to" and "as" only separate a query from its destination, so
	// definition files may use them as names (inch's short name is "in").
	for _, kw := range []string{"in", "to", "as"} {
		p.lex.DeregisterKeyword(kw)
	}
	if p.cur.Kind == lexer.KEYWORD && !p.lex.IsKeyword(p.cur.Literal) {
		p.cur.Kind = lexer.WORD
	}
	u := units.NewUniverse()

	if p.cur.Kind == lexer.EOF {
		return nil, p.syntaxErrorf("empty universe definition")
	}
	for p.cur.Kind != lexer.EOF {
		if err := p.parsePropertyDef(u, loader); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// parsePropertyDef implements:
//
//	property_def := name_list ( '$' currency_block
//	                           | ('=' factor_expr)? '{' unit_def* '}' )
func (p *parser) parsePropertyDef(u *units.Universe, loader currency.Loader) error {
	names, err := p.parseNameList(true)
	if err != nil {
		return err
	}

	if p.cur.Kind == lexer.DOLLAR {
		return p.parseCurrencyProperty(u, names, loader)
	}

	fundamental := true
	var dims factorization.Factorization[*units.Property]
	var baseFactors factorization.Factorization[*units.Unit]
	if p.cur.Kind == lexer.EQUALS {
		p.advance()
		exprNames, err := p.parseFactorExpr()
		if err != nil {
			return err
		}
		fundamental = false
		dims, baseFactors, err = p.resolvePropertyExpr(u, exprNames)
		if err != nil {
			return err
		}
	}

	var prop *units.Property
	if fundamental {
		prop = units.NewFundamentalProperty(names)
	} else {
		prop = units.NewDerivedProperty(names, dims)
	}
	if err := u.RegisterProperty(prop); err != nil {
		return err
	}

	if !fundamental {
		base, err := u.UnitForFactors(baseFactors)
		if err != nil {
			return err
		}
		if err := u.RegisterUnit(prop, base); err != nil {
			return err
		}
	}

	if _, err := p.expect(lexer.LBRACE); err != nil {
		return err
	}
	for p.cur.Kind != lexer.RBRACE {
		if p.cur.Kind == lexer.EOF {
			return p.syntaxErrorf("unterminated property block for %q", prop.PrimaryName())
		}
		if err := p.parseUnitDef(u, prop); err != nil {
			return err
		}
	}
	p.advance() // consume '}'

	return prop.Freeze()
}

// resolvePropertyExpr resolves a derived property's declaring
// factor_expr (item names are property names here, e.g. "square
// distance" or "mass*speed") into both the reduced dimensional
// factorization and the corresponding factorization of base units, used
// to synthesize the property's own base unit (spec.md §4.8.1: "the
// property's base unit is synthesized from the base units of its
// dimensional factors").
func (p *parser) resolvePropertyExpr(u *units.Universe, exprNames factorization.Factorization[string]) (factorization.Factorization[*units.Property], factorization.Factorization[*units.Unit], error) {
	dims := factorization.Empty[*units.Property]()
	baseFactors := factorization.Empty[*units.Unit]()
	for _, name := range exprNames.Keys() {
		exp := exprNames.Exponent(name)
		prop, ok := u.GetProperty(name)
		if !ok {
			return dims, baseFactors, errors.NewAt(errors.UnknownPropertyName, p.pos(), "unknown property %q", name)
		}
		dims = dims.Mul(prop.Dimensions().Pow(exp))
		baseFactors = baseFactors.MulItem(prop.BaseUnit(), exp)
	}
	return dims, baseFactors, nil
}

// parseUnitDef implements:
//
//	unit_def := ('{' prefix_list '}')? name_list
//	            ('(' name_list ')')?
//	            ('=' number factor_expr (('+'|'-') number)?)?
//	            ';'
func (p *parser) parseUnitDef(u *units.Universe, prop *units.Property) error {
	var prefixNames []string
	if p.cur.Kind == lexer.LBRACE {
		p.advance()
		names, err := p.parseNameList(true)
		if err != nil {
			return err
		}
		prefixNames = names
		if _, err := p.expect(lexer.RBRACE); err != nil {
			return err
		}
	}

	longNames, err := p.parseNameList(false)
	if err != nil {
		return err
	}

	var shortNames []string
	if p.cur.Kind == lexer.LPAREN {
		p.advance()
		shortNames, err = p.parseNameList(true)
		if err != nil {
			return err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return err
		}
	}
	if len(longNames) == 0 && len(shortNames) == 0 {
		return p.syntaxErrorf("unit definition has no names")
	}

	multiplier := rational.One()
	offset := rational.Zero()
	if p.cur.Kind == lexer.EQUALS {
		p.advance()
		m := rational.One()
		if p.atStartOfNumber() {
			m, err = p.parseNumber()
			if err != nil {
				return err
			}
		}
		exprNames, err := p.parseFactorExpr()
		if err != nil {
			return err
		}
		unitFactors, err := u.UnitFactorsFor(exprNames)
		if err != nil {
			return err
		}
		baseRef, err := u.UnitForFactors(unitFactors)
		if err != nil {
			return err
		}
		if baseRef.Offset().Sign() != 0 {
			return errors.NewAt(errors.IncompatibleBaseUnit, p.pos(),
				"unit %v cannot be defined from %q, which has a nonzero offset", longNames, baseRef.PrimaryLongName())
		}
		multiplier = m.Mul(baseRef.Multiplier())

		if p.cur.Kind == lexer.PLUS || p.cur.Kind == lexer.MINUS {
			neg := p.cur.Kind == lexer.MINUS
			p.advance()
			off, err := p.parseNumber()
			if err != nil {
				return err
			}
			if neg {
				off = off.Neg()
			}
			offset = off
		}
	}

	if _, err := p.expect(lexer.SEMICOLON); err != nil {
		return err
	}

	unit := units.NewAtomicUnit(longNames, shortNames, multiplier, offset)
	if err := u.RegisterUnit(prop, unit); err != nil {
		return err
	}

	for _, pname := range prefixNames {
		prefix, ok := units.PrefixByLongName(pname)
		if !ok {
			return errors.NewAt(errors.SyntaxError, p.pos(), "unknown prefix %q", pname)
		}
		prefixed, err := units.NewPrefixedUnit(unit, prefix)
		if err != nil {
			return err
		}
		if err := u.RegisterUnit(prop, prefixed); err != nil {
			return err
		}
	}
	return nil
}

// parseCurrencyProperty implements the `'$' currency_block` alternative
// of property_def: the block's declared display names become the
// registered unit names; loader.Load supplies the multipliers (spec.md
// §1: "given a set of currency names, returns a sequence of
// unit-definitions with a shared base and per-unit multipliers").
func (p *parser) parseCurrencyProperty(u *units.Universe, propNames []string, loader currency.Loader) error {
	p.advance() // consume '$'

	if _, err := p.expect(lexer.LBRACE); err != nil {
		return err
	}
	displayNames := map[string][]string{}
	var codes []string
	for p.cur.Kind != lexer.RBRACE {
		if p.cur.Kind == lexer.EOF {
			return p.syntaxErrorf("unterminated currency block")
		}
		codeTok, err := p.expect(lexer.WORD)
		if err != nil {
			return err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return err
		}
		names, err := p.parseNameList(true)
		if err != nil {
			return err
		}
		if _, err := p.expect(lexer.SEMICOLON); err != nil {
			return err
		}
		displayNames[codeTok.Literal] = names
		codes = append(codes, codeTok.Literal)
	}
	p.advance() // consume '}'

	if loader == nil {
		return errors.NewAt(errors.SyntaxError, p.pos(),
			"property %v declares a currency block but no currency loader was configured", propNames)
	}

	defs, err := loader.Load(context.Background(), codes)
	if err != nil {
		return errors.NewAt(errors.SyntaxError, p.pos(), "loading currencies: %v", err)
	}
	sortBaseFirst(defs)

	prop := units.NewFundamentalProperty(propNames)
	if err := u.RegisterProperty(prop); err != nil {
		return err
	}
	for _, def := range defs {
		long := displayNames[def.Code]
		if len(long) == 0 {
			long = []string{def.LongName}
		}
		unit := units.NewAtomicUnit(long, []string{def.Code}, def.Multiplier, def.Offset)
		if err := u.RegisterUnit(prop, unit); err != nil {
			return err
		}
	}
	return prop.Freeze()
}

// sortBaseFirst moves the definition whose Code equals its own BaseCode
// to the front, so it is the first unit RegisterUnit sees and therefore
// becomes the property's base unit regardless of the currency_block's or
// the loader's declaration order.
func sortBaseFirst(defs []currency.Definition) {
	for i, d := range defs {
		if d.Code == d.BaseCode {
			defs[0], defs[i] = defs[i], defs[0]
			return
		}
	}
}
