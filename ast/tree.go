package ast

import (
	"fmt"
	"strings"
)

// Tree is the generic "center + children" projection of the AST used by
// debug views. Zero children is a leaf, one child a unary operation, two an
// operation or assignment, and N children under BEGIN a statement list.
type Tree struct {
	Center   string  `yaml:"center"`
	Pos      Pos     `yaml:"pos"`
	Children []*Tree `yaml:"children,omitempty"`
}

func (p Pos) MarshalYAML() (any, error) {
	return p.String(), nil
}

func ProgramTree(p *Program) *Tree {
	t := &Tree{Center: "PROGRAM " + p.Name, Pos: p.Pos}
	t.Children = blockTrees(p.Block)
	return t
}

func blockTrees(b *Block) []*Tree {
	out := make([]*Tree, 0, len(b.Decls)+1)
	for _, d := range b.Decls {
		out = append(out, &Tree{Center: fmt.Sprintf("VAR %s: %s", d.Name, d.Type), Pos: d.Pos})
	}
	return append(out, StatementTree(b.Body))
}

func StatementTree(s Statement) *Tree {
	switch st := s.(type) {
	case Compound:
		t := &Tree{Center: "BEGIN", Pos: st.Pos}
		for _, c := range st.Statements {
			t.Children = append(t.Children, StatementTree(c))
		}
		return t
	case Assign:
		return &Tree{Center: ":=", Pos: st.Pos, Children: []*Tree{ExprTree(st.Target), ExprTree(st.Value)}}
	case ProcDecl:
		var head strings.Builder
		head.WriteString("PROCEDURE ")
		head.WriteString(st.Proc.Name)
		if st.Proc.Params != nil {
			parts := make([]string, 0, len(st.Proc.Params))
			for _, p := range st.Proc.Params {
				parts = append(parts, p.Name+": "+p.Type.String())
			}
			head.WriteString("(" + strings.Join(parts, "; ") + ")")
		}
		return &Tree{Center: head.String(), Pos: st.Pos, Children: blockTrees(st.Proc.Block)}
	case ProcCall:
		t := &Tree{Center: "CALL " + st.Name, Pos: st.Pos}
		for _, a := range st.Args {
			t.Children = append(t.Children, ExprTree(a))
		}
		return t
	case Empty:
		return &Tree{Center: "EMPTY", Pos: st.Pos}
	default:
		panic(fmt.Sprintf("ast: unknown statement %T", s))
	}
}

func ExprTree(e Expr) *Tree {
	switch ex := e.(type) {
	case Number:
		return &Tree{Center: FormatNumber(ex.Value), Pos: ex.Pos}
	case Var:
		return &Tree{Center: ex.Name, Pos: ex.Pos}
	case Unary:
		return &Tree{Center: ex.Op.String(), Pos: ex.Pos, Children: []*Tree{ExprTree(ex.Operand)}}
	case Binary:
		return &Tree{Center: ex.Op.String(), Pos: ex.Pos, Children: []*Tree{ExprTree(ex.Left), ExprTree(ex.Right)}}
	default:
		panic(fmt.Sprintf("ast: unknown expression %T", e))
	}
}

// Inspect walks statements and expressions depth-first, calling fn for each
// node. Returning false skips the node's children. Procedure bodies are not
// entered; callers that want them walk Proc.Block.Body explicitly.
func Inspect(node any, fn func(any) bool) {
	if !fn(node) {
		return
	}
	switch n := node.(type) {
	case Compound:
		for _, s := range n.Statements {
			Inspect(s, fn)
		}
	case Assign:
		Inspect(n.Target, fn)
		Inspect(n.Value, fn)
	case ProcCall:
		for _, a := range n.Args {
			Inspect(a, fn)
		}
	case Unary:
		Inspect(n.Operand, fn)
	case Binary:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	}
}

// String renders one node per line, children indented under their parent.
func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (t *Tree) write(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s%s @%s\n", strings.Repeat("  ", depth), t.Center, t.Pos)
	for _, c := range t.Children {
		c.write(b, depth+1)
	}
}
