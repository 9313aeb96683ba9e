package interp

import (
	"fmt"
	"math"

	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
)

// Evaluate reduces an expression to a number using the program scope.
// A zero divisor is a semantic error for both DIV and /, so the result is
// never an infinity or NaN.
func (in *Interpreter) Evaluate(e ast.Expr) (float64, error) {
	switch ex := e.(type) {
	case ast.Number:
		return ex.Value, nil
	case ast.Var:
		return in.scope.Get(ex)
	case ast.Unary:
		v, err := in.Evaluate(ex.Operand)
		if err != nil {
			return 0, err
		}
		switch ex.Op {
		case ast.PLUS:
			return v, nil
		case ast.MINUS:
			return -v, nil
		default:
			panic(fmt.Sprintf("interp: unary operator %s", ex.Op))
		}
	case ast.Binary:
		left, err := in.Evaluate(ex.Left)
		if err != nil {
			return 0, err
		}
		right, err := in.Evaluate(ex.Right)
		if err != nil {
			return 0, err
		}
		return evalBinary(ex, left, right)
	default:
		panic(fmt.Sprintf("interp: unknown expression %T", e))
	}
}

func evalBinary(ex ast.Binary, left, right float64) (float64, error) {
	switch ex.Op {
	case ast.PLUS:
		return left + right, nil
	case ast.MINUS:
		return left - right, nil
	case ast.MULTIPLY:
		return left * right, nil
	case ast.INTDIV:
		if right == 0 {
			return 0, ex.Pos.Errorf(diag.SemanticError, "division by zero")
		}
		return math.Floor(left / right), nil
	case ast.REALDIV:
		if right == 0 {
			return 0, ex.Pos.Errorf(diag.SemanticError, "division by zero")
		}
		return left / right, nil
	default:
		panic(fmt.Sprintf("interp: binary operator %s", ex.Op))
	}
}

// EvalExpr evaluates a standalone expression with no variables in scope.
func EvalExpr(e ast.Expr) (float64, error) {
	return New(nil).Evaluate(e)
}
