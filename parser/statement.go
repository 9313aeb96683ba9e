package parser

import (
	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
)

// compound := BEGIN statement (';' statement)* END
func (p *Parser) compound() (ast.Compound, error) {
	begin, err := p.eat(ast.BEGIN)
	if err != nil {
		return ast.Compound{}, err
	}
	if err := p.enter(); err != nil {
		return ast.Compound{}, err
	}
	defer p.leave()

	stmts := []ast.Statement{}
	for {
		s, err := p.statement()
		if err != nil {
			return ast.Compound{}, err
		}
		stmts = append(stmts, s)
		if p.cur.Kind != ast.SEMICOLON {
			break
		}
		if err := p.next(); err != nil {
			return ast.Compound{}, err
		}
	}
	if _, err := p.eat(ast.END); err != nil {
		return ast.Compound{}, err
	}
	return ast.Compound{Pos: begin.Pos, Statements: stmts}, nil
}

// statement := compound | call | assignment | procedure | empty
//
// An identifier starts a call only when the raw character right after it is
// '('; token kinds alone cannot tell a call from an assignment here.
func (p *Parser) statement() (ast.Statement, error) {
	switch p.cur.Kind {
	case ast.BEGIN:
		return p.compound()
	case ast.IDENT:
		if p.lex.PeekChar() == '(' {
			return p.procCall()
		}
		return p.assignment()
	case ast.PROCEDURE:
		return p.procDecl()
	case ast.NUMBER, ast.LPAREN, ast.OPERATOR:
		return nil, p.strayExpression()
	default:
		return ast.Empty{Pos: p.cur.Pos}, nil
	}
}

// assignment := IDENT ':=' expr
func (p *Parser) assignment() (ast.Statement, error) {
	target, err := p.eat(ast.IDENT)
	if err != nil {
		return nil, err
	}
	op, err := p.eat(ast.ASSIGN)
	if err != nil {
		return nil, err
	}
	value, err := p.expr()
	if err != nil {
		return nil, err
	}
	return ast.Assign{
		Pos:    op.Pos,
		Target: ast.Var{Pos: target.Pos, Name: target.Text},
		Value:  value,
	}, nil
}

// strayExpression reports an expression in statement position. Followed by
// ':=' it is an assignment to something that is not a variable.
func (p *Parser) strayExpression() error {
	start := p.cur.Pos
	if _, err := p.expr(); err != nil {
		return err
	}
	if p.cur.Kind == ast.ASSIGN {
		return start.Errorf(diag.SemanticError, "assignment target is not an identifier")
	}
	return start.Errorf(diag.SyntaxError, "expression is not a statement")
}

// call := IDENT '(' (expr (',' expr)*)? ')'
func (p *Parser) procCall() (ast.Statement, error) {
	name, err := p.eat(ast.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(ast.LPAREN); err != nil {
		return nil, err
	}
	p.parens++
	var args []ast.Expr
	if p.cur.Kind != ast.RPAREN {
		for {
			e, err := p.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, e)
			if p.cur.Kind != ast.COMMA {
				break
			}
			if err := p.next(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.eat(ast.RPAREN); err != nil {
		return nil, err
	}
	p.parens--
	if p.cur.Kind == ast.RPAREN && p.parens == 0 {
		return nil, p.cur.Pos.Errorf(diag.SyntaxError, "unmatched closing parenthesis")
	}
	return ast.ProcCall{Pos: name.Pos, Name: name.Text, Args: args}, nil
}

// procedure := PROCEDURE IDENT params? ';' block
func (p *Parser) procDecl() (ast.Statement, error) {
	kw, err := p.eat(ast.PROCEDURE)
	if err != nil {
		return nil, err
	}
	name, err := p.eat(ast.IDENT)
	if err != nil {
		return nil, err
	}
	var params []ast.Param
	switch p.cur.Kind {
	case ast.LPAREN:
		if params, err = p.params(); err != nil {
			return nil, err
		}
	case ast.SEMICOLON:
	default:
		return nil, p.unexpected(ast.LPAREN, ast.SEMICOLON)
	}
	if _, err := p.eat(ast.SEMICOLON); err != nil {
		return nil, err
	}
	block, err := p.block()
	if err != nil {
		return nil, err
	}
	proc, err := ast.NewProcedure(name.Text, name.Pos, params, block)
	if err != nil {
		return nil, err
	}
	return ast.ProcDecl{Pos: kw.Pos, Proc: proc}, nil
}
