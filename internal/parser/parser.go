// Package parser implements the two recursive-descent grammars of
// spec.md §4.8 atop the shared internal/lexer tokenizer: the universe
// definition-file grammar (§4.8.1) and the conversion-query grammar
// (§4.8.2). Modeled on the teacher's internal/parser.Parser: a single
// cursor token plus a one-token lookahead built on the lexer's own
// SetCurrent/NextToken pair, never a buffered token slice.
package parser

import (
	"strings"

	"github.com/unitconv/unitconv/internal/errors"
	"github.com/unitconv/unitconv/internal/lexer"
)

// contextKeywords are registered by newParser for both grammars.
// ParseUniverse deregisters "in", "to" and "as" again, since they only
// separate a query from its destination and definition files use "in"
// as a unit name; "per" stays a keyword in both grammars. "PI" is never
// a keyword: it is recognized as a WORD where a number may start.
var contextKeywords = []string{"per", "in", "to", "as"}

// piNumerator and piDenominator are spec.md §4.8.1's precomputed
// constant, accurate to 29 significant digits.
const piNumerator = "428224593349304"
const piDenominator = "136308121570117"

// parser is the shared cursor machinery both grammars are built on.
type parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	file string
}

func newParser(source, file string) *parser {
	l := lexer.New(source, lexer.WithFile(file))
	for _, kw := range contextKeywords {
		l.RegisterKeyword(kw)
	}
	p := &parser{lex: l, file: file}
	p.cur = l.NextToken()
	return p
}

// advance consumes the current token and returns the new current token.
func (p *parser) advance() lexer.Token {
	p.cur = p.lex.NextToken()
	return p.cur
}

// peek returns the token that would follow the current one without
// consuming it, using the lexer's SetCurrent rewind rather than a
// buffered lookahead slot (spec.md §4.3 "set_current(token)").
func (p *parser) peek() lexer.Token {
	saved := p.cur
	tok := p.lex.NextToken()
	p.lex.SetCurrent(saved)
	return tok
}

func (p *parser) pos() errors.Position {
	return errors.Position{Line: p.cur.Start.Line, Column: p.cur.Start.Column, File: p.file}
}

func (p *parser) errAt(tok lexer.Token, format string, args ...any) error {
	pos := errors.Position{Line: tok.Start.Line, Column: tok.Start.Column, File: p.file}
	e := errors.NewAt(errors.SyntaxError, pos, format, args...)
	e.Source = p.lex.Source()
	e.Token = tok.Literal
	return e
}

func (p *parser) syntaxErrorf(format string, args ...any) error {
	return p.errAt(p.cur, format, args...)
}

func (p *parser) expect(kind lexer.Kind) (lexer.Token, error) {
	if p.cur.Kind != kind {
		return lexer.Token{}, p.syntaxErrorf("expected %s, found %s", kind, describeToken(p.cur))
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

func (p *parser) isKeyword(word string) bool {
	return p.cur.Kind == lexer.KEYWORD && p.cur.Literal == word
}

// acceptKeyword consumes the current token if it is the named keyword,
// reporting whether it did.
func (p *parser) acceptKeyword(word string) bool {
	if p.isKeyword(word) {
		p.advance()
		return true
	}
	return false
}

func describeToken(t lexer.Token) string {
	if t.Kind == lexer.EOF {
		return "end of input"
	}
	return t.Kind.String() + " " + quote(t.Literal)
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(s)
	b.WriteByte('"')
	return b.String()
}
