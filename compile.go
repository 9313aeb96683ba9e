// Package minipas is the front door to the interpreter: lex, parse and run a
// source unit of the Pascal subset in one call.
package minipas

import (
	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/interp"
	"github.com/gosuda/minipas/parser"
)

// Tokens lexes src completely. The last token is always EOF.
func Tokens(src string) ([]ast.Token, error) {
	return parser.Tokenize([]byte(src))
}

// Parse only returns the AST program for tooling use.
func Parse(src string) (*ast.Program, error) {
	return parser.ParseProgram([]byte(src))
}

func ParseExpr(src string) (ast.Expr, error) {
	return parser.ParseExpr([]byte(src))
}

// Compile parses src and builds an interpreter ready to Run.
func Compile(src string, opts ...interp.Option) (*interp.Interpreter, error) {
	prog, err := parser.ParseProgram([]byte(src))
	if err != nil {
		return nil, err
	}
	return interp.New(prog, opts...), nil
}

// Eval parses and evaluates a bare expression with no variables in scope.
func Eval(src string) (float64, error) {
	e, err := parser.ParseExpr([]byte(src))
	if err != nil {
		return 0, err
	}
	return interp.EvalExpr(e)
}
