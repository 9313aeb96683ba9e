package parser

import (
	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
)

const maxDepth = 256

// Parser is a recursive-descent parser pulling tokens from a Lexer one at a
// time. It stops at the first error; there is no recovery.
type Parser struct {
	lex    *Lexer
	cur    ast.Token
	parens int
	depth  int
}

func New(src []byte) (*Parser, error) {
	p := &Parser{lex: NewLexer(src)}
	if err := p.next(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) next() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// eat consumes the current token if it has the wanted kind and returns it.
func (p *Parser) eat(kind ast.TokenKind) (ast.Token, error) {
	tok := p.cur
	if tok.Kind != kind {
		return tok, p.unexpected(kind)
	}
	if err := p.next(); err != nil {
		return tok, err
	}
	return tok, nil
}

func (p *Parser) unexpected(want ...ast.TokenKind) error {
	return p.cur.Pos.Errorf(diag.SyntaxError, "expected %s, found %s", kindList(want), describe(p.cur))
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return p.cur.Pos.Errorf(diag.SyntaxError, "nesting too deep near %s", describe(p.cur))
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) expectEOF() error {
	if p.cur.Kind != ast.EOF {
		return p.unexpected(ast.EOF)
	}
	return nil
}
