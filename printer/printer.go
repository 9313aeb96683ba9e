// Package printer renders an AST back to source text. Every operator node is
// parenthesised and every statement inside BEGIN...END sits on its own line
// terminated by a semicolon, so the output re-parses to the same tree.
package printer

import (
	"fmt"
	"strings"

	"github.com/gosuda/minipas/ast"
)

const indentUnit = "  "

type out struct {
	b     strings.Builder
	depth int
}

func (o *out) line(s string) {
	o.b.WriteString(strings.Repeat(indentUnit, o.depth))
	o.b.WriteString(s)
	o.b.WriteByte('\n')
}

func Program(p *ast.Program) string {
	o := &out{}
	o.line("PROGRAM " + p.Name + ";")
	o.block(p.Block)
	// the block's END gets the terminating dot
	s := strings.TrimRight(o.b.String(), "\n")
	return s + ".\n"
}

func Statement(s ast.Statement) string {
	o := &out{}
	o.statement(s)
	return strings.TrimRight(o.b.String(), "\n")
}

func Expr(e ast.Expr) string {
	switch ex := e.(type) {
	case ast.Number:
		return ast.FormatNumber(ex.Value)
	case ast.Var:
		return ex.Name
	case ast.Unary:
		return "(" + ex.Op.String() + Expr(ex.Operand) + ")"
	case ast.Binary:
		return "(" + Expr(ex.Left) + " " + ex.Op.String() + " " + Expr(ex.Right) + ")"
	default:
		panic(fmt.Sprintf("printer: unknown expression %T", e))
	}
}

func (o *out) block(b *ast.Block) {
	if len(b.Decls) > 0 {
		o.line("VAR")
		o.depth++
		for i := 0; i < len(b.Decls); {
			j := i
			names := []string{}
			for j < len(b.Decls) && b.Decls[j].Type == b.Decls[i].Type {
				names = append(names, b.Decls[j].Name)
				j++
			}
			o.line(strings.Join(names, ", ") + ": " + b.Decls[i].Type.String() + ";")
			i = j
		}
		o.depth--
	}
	o.compound(b.Body)
}

func (o *out) compound(c ast.Compound) {
	o.line("BEGIN")
	o.depth++
	for _, s := range c.Statements {
		if _, ok := s.(ast.Empty); ok {
			continue
		}
		o.statement(s)
		o.terminate()
	}
	o.depth--
	o.line("END")
}

// terminate appends ';' to the last emitted line.
func (o *out) terminate() {
	s := strings.TrimRight(o.b.String(), "\n")
	o.b.Reset()
	o.b.WriteString(s)
	o.b.WriteString(";\n")
}

func (o *out) statement(s ast.Statement) {
	switch st := s.(type) {
	case ast.Compound:
		o.compound(st)
	case ast.Assign:
		o.line(st.Target.Name + " := " + Expr(st.Value))
	case ast.ProcCall:
		args := make([]string, 0, len(st.Args))
		for _, a := range st.Args {
			args = append(args, Expr(a))
		}
		o.line(st.Name + "(" + strings.Join(args, ", ") + ")")
	case ast.ProcDecl:
		o.line("PROCEDURE " + st.Proc.Name + Params(st.Proc.Params) + ";")
		o.block(st.Proc.Block)
	case ast.Empty:
	default:
		panic(fmt.Sprintf("printer: unknown statement %T", s))
	}
}

// Params renders a formal parameter list, or nothing when there is none.
func Params(ps []ast.Param) string {
	if ps == nil {
		return ""
	}
	groups := []string{}
	for i := 0; i < len(ps); {
		j := i
		names := []string{}
		for j < len(ps) && ps[j].Type == ps[i].Type {
			names = append(names, ps[j].Name)
			j++
		}
		groups = append(groups, strings.Join(names, ", ")+": "+ps[i].Type.String())
		i = j
	}
	return "(" + strings.Join(groups, "; ") + ")"
}
