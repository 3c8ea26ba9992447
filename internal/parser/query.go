package parser

import (
	"github.com/unitconv/unitconv/internal/errors"
	"github.com/unitconv/unitconv/internal/lexer"
	"github.com/unitconv/unitconv/internal/units"
)

// queryKeywords are registered in addition to the shared contextKeywords
// only while parsing a query, since "and"/"plus" have no role in the
// universe grammar.
var queryKeywords = []string{"and", "plus"}

// ParseQuery implements spec.md §4.8.2:
//
//	query        := quantity (('and'|'plus'|'+'|',') quantity)* (separator factor_expr)?
//	quantity     := number factor_expr
//	separator    := 'in' | 'to' | 'as'
//
// against an already-loaded Universe, returning the evaluated
// ConversionQuery.
func ParseQuery(u *units.Universe, source string) (*units.ConversionQuery, error) {
	p := newParser(source, "")
	for _, kw := range queryKeywords {
		p.lex.RegisterKeyword(kw)
	}

	first, err := p.parseQuantity(u)
	if err != nil {
		return nil, err
	}
	quantities := []units.Quantity{first}

	for p.isKeyword("and") || p.isKeyword("plus") || p.cur.Kind == lexer.PLUS || p.cur.Kind == lexer.COMMA {
		p.advance()
		q, err := p.parseQuantity(u)
		if err != nil {
			return nil, err
		}
		quantities = append(quantities, q)
	}

	var destination *units.Unit
	if p.isKeyword("in") || p.isKeyword("to") || p.isKeyword("as") {
		p.advance()
		exprNames, err := p.parseFactorExpr()
		if err != nil {
			return nil, err
		}
		unitFactors, err := u.UnitFactorsFor(exprNames)
		if err != nil {
			return nil, err
		}
		destination, err = u.UnitForFactors(unitFactors)
		if err != nil {
			return nil, err
		}
	} else {
		prop := quantities[0].Unit.Property()
		if prop == nil {
			return nil, errors.NewAt(errors.IncompatibleUnits, p.pos(),
				"%q has no property and no destination unit was given", quantities[0].Unit.PrimaryLongName())
		}
		destination = prop.BaseUnit()
	}

	if _, err := p.expect(lexer.EOF); err != nil {
		return nil, err
	}

	return units.Evaluate(quantities, destination)
}

// parseQuantity implements `quantity := number factor_expr`.
func (p *parser) parseQuantity(u *units.Universe) (units.Quantity, error) {
	value, err := p.parseNumber()
	if err != nil {
		return units.Quantity{}, err
	}
	exprNames, err := p.parseFactorExpr()
	if err != nil {
		return units.Quantity{}, err
	}
	unitFactors, err := u.UnitFactorsFor(exprNames)
	if err != nil {
		return units.Quantity{}, err
	}
	unit, err := u.UnitForFactors(unitFactors)
	if err != nil {
		return units.Quantity{}, err
	}
	return units.NewQuantity(value, unit), nil
}
