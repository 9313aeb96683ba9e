package interp

import (
	"sort"

	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
	"github.com/gosuda/minipas/printer"
)

// Scope is the symbol table of a single block. There is no parent link:
// names are resolved at this level only.
type Scope struct {
	cells map[string]*Cell
	procs map[string]*ast.Procedure
}

func NewScope(b *ast.Block) *Scope {
	s := &Scope{
		cells: map[string]*Cell{},
		procs: map[string]*ast.Procedure{},
	}
	if b == nil {
		return s
	}
	for _, d := range b.Decls {
		s.cells[d.Name] = &Cell{Name: d.Name, Type: d.Type, Pos: d.Pos}
	}
	return s
}

func (s *Scope) Has(name string) bool {
	_, isVar := s.cells[name]
	_, isProc := s.procs[name]
	return isVar || isProc
}

// Get resolves a variable reference.
func (s *Scope) Get(v ast.Var) (float64, error) {
	if c, ok := s.cells[v.Name]; ok {
		return c.Value, nil
	}
	if _, ok := s.procs[v.Name]; ok {
		return 0, v.Pos.Errorf(diag.SemanticError, "%q is a procedure, not a variable", v.Name)
	}
	return 0, v.Pos.Errorf(diag.SemanticError, "undefined variable %q", v.Name)
}

// Set writes value into the declared cell of target.
func (s *Scope) Set(target ast.Var, value float64) error {
	c, ok := s.cells[target.Name]
	if !ok {
		return target.Pos.Errorf(diag.SemanticError, "undefined variable %q", target.Name)
	}
	c.Value = value
	return nil
}

// Define registers a procedure. A name already used by a variable in the
// same block is a duplicate identifier.
func (s *Scope) Define(proc *ast.Procedure) error {
	if _, ok := s.cells[proc.Name]; ok {
		return proc.Pos.Errorf(diag.SemanticError, "duplicate identifier %q", proc.Name)
	}
	s.procs[proc.Name] = proc
	return nil
}

func (s *Scope) Procedure(name string) (*ast.Procedure, bool) {
	p, ok := s.procs[name]
	return p, ok
}

// Bindings returns every name in the scope sorted by name. The order is a
// convenience for views, not a guarantee callers should rely on.
func (s *Scope) Bindings() []Binding {
	out := make([]Binding, 0, len(s.cells)+len(s.procs))
	for _, c := range s.cells {
		out = append(out, Binding{Name: c.Name, Kind: VariableBinding, Type: c.Type.String(), Value: c.Value})
	}
	for _, p := range s.procs {
		out = append(out, Binding{Name: p.Name, Kind: ProcedureBinding, Type: "PROCEDURE" + printer.Params(p.Params)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
