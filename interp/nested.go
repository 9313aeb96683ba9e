package interp

import (
	"fmt"

	"github.com/gosuda/minipas/ast"
)

// Warning records a name inside a procedure body that only the enclosing
// block declares. Such names are never resolved outward.
type Warning struct {
	Pos       ast.Pos
	Procedure string
	Name      string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d, column %d: %s in procedure %s refers to an enclosing block; nested scopes are not supported",
		w.Pos.Line, w.Pos.Column, w.Name, w.Procedure)
}

func (in *Interpreter) flagOuterReferences(proc *ast.Procedure) {
	local := map[string]bool{}
	for _, p := range proc.Params {
		local[p.Name] = true
	}
	for _, d := range proc.Block.Decls {
		local[d.Name] = true
	}
	ast.Inspect(proc.Block.Body, func(n any) bool {
		switch x := n.(type) {
		case ast.ProcDecl:
			local[x.Proc.Name] = true
			return false
		case ast.Var:
			in.flagIfOuter(proc, local, x.Name, x.Pos)
		case ast.ProcCall:
			in.flagIfOuter(proc, local, x.Name, x.Pos)
		}
		return true
	})
}

func (in *Interpreter) flagIfOuter(proc *ast.Procedure, local map[string]bool, name string, pos ast.Pos) {
	if local[name] || name == proc.Name || !in.scope.Has(name) {
		return
	}
	w := Warning{Pos: pos, Procedure: proc.Name, Name: name}
	in.warnings = append(in.warnings, w)
	in.logger.Warn("outer scope reference", "procedure", proc.Name, "name", name, "pos", pos)
}
