package parser

import (
	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
)

// declarations := (VAR (identGroup ';')+)?
func (p *Parser) declarations() ([]ast.VarDecl, error) {
	if p.cur.Kind != ast.VAR {
		return nil, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	decls := []ast.VarDecl{}
	seen := map[string]bool{}
	for {
		names, typ, err := p.identGroup()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(ast.SEMICOLON); err != nil {
			return nil, err
		}
		for _, n := range names {
			if seen[n.Text] {
				return nil, n.Pos.Errorf(diag.SemanticError, "duplicate identifier %q", n.Text)
			}
			seen[n.Text] = true
			decls = append(decls, ast.VarDecl{Name: n.Text, Type: typ, Pos: n.Pos})
		}
		if p.cur.Kind != ast.IDENT {
			return decls, nil
		}
	}
}

// params := '(' (identGroup (';' identGroup)* ';'?)? ')'
func (p *Parser) params() ([]ast.Param, error) {
	if _, err := p.eat(ast.LPAREN); err != nil {
		return nil, err
	}
	params := []ast.Param{}
	seen := map[string]bool{}
	for p.cur.Kind == ast.IDENT {
		names, typ, err := p.identGroup()
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			if seen[n.Text] {
				return nil, n.Pos.Errorf(diag.SemanticError, "duplicate parameter %q", n.Text)
			}
			seen[n.Text] = true
			params = append(params, ast.Param{Name: n.Text, Type: typ, Pos: n.Pos})
		}
		if p.cur.Kind != ast.SEMICOLON {
			break
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(ast.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// identGroup := IDENT (',' IDENT)* ':' (INTEGER | REAL)
func (p *Parser) identGroup() ([]ast.Token, ast.TokenKind, error) {
	first, err := p.eat(ast.IDENT)
	if err != nil {
		return nil, 0, err
	}
	names := []ast.Token{first}
	for p.cur.Kind == ast.COMMA {
		if err := p.next(); err != nil {
			return nil, 0, err
		}
		id, err := p.eat(ast.IDENT)
		if err != nil {
			return nil, 0, err
		}
		names = append(names, id)
	}
	if _, err := p.eat(ast.COLON); err != nil {
		return nil, 0, err
	}
	typ := p.cur
	if typ.Kind != ast.INTEGER && typ.Kind != ast.REAL {
		return nil, 0, p.unexpected(ast.INTEGER, ast.REAL)
	}
	if err := p.next(); err != nil {
		return nil, 0, err
	}
	return names, typ.Kind, nil
}
