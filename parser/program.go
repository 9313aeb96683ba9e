package parser

import (
	"github.com/gosuda/minipas/ast"
)

// ParseProgram parses one complete source unit:
//
//	program := PROGRAM IDENT ';' block '.'
func ParseProgram(src []byte) (*ast.Program, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	prog, err := p.program()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return prog, nil
}

func (p *Parser) program() (*ast.Program, error) {
	kw, err := p.eat(ast.PROGRAM)
	if err != nil {
		return nil, err
	}
	name, err := p.eat(ast.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(ast.SEMICOLON); err != nil {
		return nil, err
	}
	block, err := p.block()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(ast.DOT); err != nil {
		return nil, err
	}
	return &ast.Program{Name: name.Text, Pos: kw.Pos, Block: block}, nil
}

// block := declarations compound
func (p *Parser) block() (*ast.Block, error) {
	decls, err := p.declarations()
	if err != nil {
		return nil, err
	}
	body, err := p.compound()
	if err != nil {
		return nil, err
	}
	return &ast.Block{Decls: decls, Body: body}, nil
}
