package interp

import (
	"github.com/gosuda/minipas/ast"
)

// Cell is the runtime storage slot of one declared variable. Syntax tokens
// are never written to; assignment only touches cells.
type Cell struct {
	Name  string
	Type  ast.TokenKind
	Value float64
	Pos   ast.Pos
}

// BindingKind tells variable bindings from procedure bindings in a scope dump.
type BindingKind string

const (
	VariableBinding  BindingKind = "variable"
	ProcedureBinding BindingKind = "procedure"
)

// Binding is a read-only snapshot of one name in a scope.
type Binding struct {
	Name  string      `yaml:"name" json:"name"`
	Kind  BindingKind `yaml:"kind" json:"kind"`
	Type  string      `yaml:"type" json:"type"`
	Value float64     `yaml:"value" json:"value"`
}

func (b Binding) String() string {
	if b.Kind == ProcedureBinding {
		return b.Name + ": " + b.Type
	}
	return b.Name + ": " + b.Type + " = " + ast.FormatNumber(b.Value)
}
