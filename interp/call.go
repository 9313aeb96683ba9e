package interp

import (
	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
)

// Call is a resolved call site handed to a CallHandler.
type Call struct {
	Pos  ast.Pos
	Proc *ast.Procedure
	Args []float64
}

// CallHandler implements procedure invocation. The language defines no call
// frames or return values, so the interpreter leaves this to the embedder.
type CallHandler func(call Call) error

func (in *Interpreter) execCall(st ast.ProcCall) error {
	args := make([]float64, 0, len(st.Args))
	for _, a := range st.Args {
		v, err := in.Evaluate(a)
		if err != nil {
			return err
		}
		args = append(args, v)
	}
	proc, ok := in.scope.Procedure(st.Name)
	if !ok {
		return st.Pos.Errorf(diag.SemanticError, "undefined procedure %q", st.Name)
	}
	if len(args) != len(proc.Params) {
		return st.Pos.Errorf(diag.SemanticError, "procedure %s expects %d arguments, got %d", proc.Name, len(proc.Params), len(args))
	}
	if in.call == nil {
		return st.Pos.Errorf(diag.UnsupportedOperation, "calling procedure %s is not supported", proc.Name)
	}
	in.logger.Debug("call", "procedure", proc.Name, "args", args)
	return in.call(Call{Pos: st.Pos, Proc: proc, Args: args})
}
