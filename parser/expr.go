package parser

import (
	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
)

// ParseExpr parses a standalone expression; the whole input must be consumed.
func ParseExpr(src []byte) (ast.Expr, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return e, nil
}

// expr := term (('+' | '-') term)*
func (p *Parser) expr() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == ast.OPERATOR && (p.cur.Op == ast.PLUS || p.cur.Op == ast.MINUS) {
		op := p.cur
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = ast.Binary{Pos: op.Pos, Op: op.Op, Left: left, Right: right}
	}
	if p.cur.Kind == ast.RPAREN && p.parens == 0 {
		return nil, p.cur.Pos.Errorf(diag.SyntaxError, "unmatched closing parenthesis")
	}
	return left, nil
}

// term := factor (('*' | 'DIV' | '/') factor)*
func (p *Parser) term() (ast.Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == ast.OPERATOR && isMulOp(p.cur.Op) {
		op := p.cur
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = ast.Binary{Pos: op.Pos, Op: op.Op, Left: left, Right: right}
	}
	return left, nil
}

// factor := NUMBER | IDENT | ('+' | '-') factor | '(' expr ')'
func (p *Parser) factor() (ast.Expr, error) {
	tok := p.cur
	switch tok.Kind {
	case ast.NUMBER:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.Number{Pos: tok.Pos, Value: tok.Num}, nil
	case ast.IDENT:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.Var{Pos: tok.Pos, Name: tok.Text}, nil
	case ast.OPERATOR:
		if tok.Op != ast.PLUS && tok.Op != ast.MINUS {
			break
		}
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		if err := p.next(); err != nil {
			return nil, err
		}
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return ast.Unary{Pos: tok.Pos, Op: tok.Op, Operand: operand}, nil
	case ast.LPAREN:
		if err := p.next(); err != nil {
			return nil, err
		}
		p.parens++
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(ast.RPAREN); err != nil {
			return nil, err
		}
		p.parens--
		return e, nil
	}
	return nil, tok.Pos.Errorf(diag.SyntaxError, "expected number, identifier, unary operator or LPAREN, found %s", describe(tok))
}

func isMulOp(op ast.Operator) bool {
	return op == ast.MULTIPLY || op == ast.INTDIV || op == ast.REALDIV
}
