package ast

import "github.com/gosuda/minipas/diag"

type Program struct {
	Name  string
	Pos   Pos
	Block *Block
}

// Block is one lexical level: the variables it declares and the compound
// statement executed under them.
type Block struct {
	Decls []VarDecl
	Body  Compound
}

// Declares reports whether name is one of the block's variable declarations.
func (b *Block) Declares(name string) bool {
	for _, d := range b.Decls {
		if d.Name == name {
			return true
		}
	}
	return false
}

type VarDecl struct {
	Name string
	Type TokenKind // INTEGER or REAL
	Pos  Pos
}

type Param struct {
	Name string
	Type TokenKind
	Pos  Pos
}

type Procedure struct {
	Name string
	Pos  Pos
	// Params is nil when the declaration has no parameter list at all.
	Params []Param
	Block  *Block
}

// NewProcedure builds a procedure, rejecting parameters that collide with a
// name declared in the procedure's own block.
func NewProcedure(name string, pos Pos, params []Param, block *Block) (*Procedure, error) {
	for _, p := range params {
		if block.Declares(p.Name) {
			return nil, p.Pos.Errorf(diag.SemanticError, "duplicate identifier %q in procedure %s", p.Name, name)
		}
	}
	return &Procedure{Name: name, Pos: pos, Params: params, Block: block}, nil
}

type Statement interface {
	isStatement()
	Position() Pos
}

type Compound struct {
	Pos        Pos
	Statements []Statement
}

func (Compound) isStatement()    {}
func (s Compound) Position() Pos { return s.Pos }

type Assign struct {
	Pos    Pos // position of :=
	Target Var
	Value  Expr
}

func (Assign) isStatement()    {}
func (s Assign) Position() Pos { return s.Pos }

type ProcDecl struct {
	Pos  Pos
	Proc *Procedure
}

func (ProcDecl) isStatement()    {}
func (s ProcDecl) Position() Pos { return s.Pos }

type ProcCall struct {
	Pos  Pos
	Name string
	Args []Expr
}

func (ProcCall) isStatement()    {}
func (s ProcCall) Position() Pos { return s.Pos }

type Empty struct {
	Pos Pos
}

func (Empty) isStatement()    {}
func (s Empty) Position() Pos { return s.Pos }

type Expr interface {
	isExpr()
	Position() Pos
}

type Number struct {
	Pos   Pos
	Value float64
}

func (Number) isExpr()         {}
func (e Number) Position() Pos { return e.Pos }

type Var struct {
	Pos  Pos
	Name string
}

func (Var) isExpr()         {}
func (e Var) Position() Pos { return e.Pos }

type Unary struct {
	Pos     Pos
	Op      Operator // PLUS or MINUS
	Operand Expr
}

func (Unary) isExpr()         {}
func (e Unary) Position() Pos { return e.Pos }

type Binary struct {
	Pos   Pos
	Op    Operator
	Left  Expr
	Right Expr
}

func (Binary) isExpr()         {}
func (e Binary) Position() Pos { return e.Pos }

// Errorf builds a positioned diagnostic at p.
func (p Pos) Errorf(kind diag.Kind, format string, args ...any) *diag.Error {
	return diag.Errorf(kind, p.Line, p.Column, format, args...)
}
