package interp

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/gosuda/minipas/ast"
)

type Interpreter struct {
	program  *ast.Program
	scope    *Scope
	logger   *log.Logger
	call     CallHandler
	warnings []Warning
}

type Option func(*Interpreter)

func WithLogger(l *log.Logger) Option {
	return func(in *Interpreter) {
		if l != nil {
			in.logger = l
		}
	}
}

// WithCallHandler installs the procedure-call extension point. Without one,
// executing a call fails with an unsupported-operation error.
func WithCallHandler(h CallHandler) Option {
	return func(in *Interpreter) {
		in.call = h
	}
}

// New prepares prog for execution. A nil program gives an interpreter with
// an empty scope, usable for standalone expressions.
func New(prog *ast.Program, opts ...Option) *Interpreter {
	in := &Interpreter{
		program: prog,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(in)
	}
	in.reset()
	return in
}

func (in *Interpreter) reset() {
	var block *ast.Block
	if in.program != nil {
		block = in.program.Block
	}
	in.scope = NewScope(block)
	in.warnings = nil
}

// Run executes the program's top-level compound statement against a fresh
// scope. The first error aborts the run.
func (in *Interpreter) Run() error {
	if in.program == nil {
		return fmt.Errorf("interp: no program to run")
	}
	in.reset()
	in.logger.Debug("run", "program", in.program.Name, "decls", len(in.program.Block.Decls))
	return in.exec(in.program.Block.Body)
}

func (in *Interpreter) exec(s ast.Statement) error {
	in.logger.Debug("exec", "stmt", fmt.Sprintf("%T", s), "pos", s.Position())
	switch st := s.(type) {
	case ast.Compound:
		for _, child := range st.Statements {
			if err := in.exec(child); err != nil {
				return err
			}
		}
		return nil
	case ast.Assign:
		v, err := in.Evaluate(st.Value)
		if err != nil {
			return err
		}
		return in.scope.Set(st.Target, v)
	case ast.ProcDecl:
		if err := in.scope.Define(st.Proc); err != nil {
			return err
		}
		in.flagOuterReferences(st.Proc)
		return nil
	case ast.ProcCall:
		return in.execCall(st)
	case ast.Empty:
		return nil
	default:
		panic(fmt.Sprintf("interp: unknown statement %T", s))
	}
}

// Scope returns the bindings of the program block.
func (in *Interpreter) Scope() []Binding {
	return in.scope.Bindings()
}

// Lookup returns the current value of a declared variable.
func (in *Interpreter) Lookup(name string) (float64, bool) {
	c, ok := in.scope.cells[name]
	if !ok {
		return 0, false
	}
	return c.Value, true
}

// PrintScope writes one line per binding.
func (in *Interpreter) PrintScope(w io.Writer) error {
	for _, b := range in.scope.Bindings() {
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// Warnings lists references flagged during the last run.
func (in *Interpreter) Warnings() []Warning {
	return append([]Warning(nil), in.warnings...)
}
