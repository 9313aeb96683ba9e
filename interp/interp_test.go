package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
	"github.com/gosuda/minipas/interp"
	"github.com/gosuda/minipas/parser"
)

func compile(t *testing.T, src string, opts ...interp.Option) *interp.Interpreter {
	t.Helper()
	prog, err := parser.ParseProgram([]byte(src))
	require.NoError(t, err)
	return interp.New(prog, opts...)
}

func eval(t *testing.T, src string) (float64, error) {
	t.Helper()
	e, err := parser.ParseExpr([]byte(src))
	require.NoError(t, err, src)
	return interp.EvalExpr(e)
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 DIV 3", 3},
		{"7 DIV 2 * 2", 6},
		{"-7 DIV 2", -4},
		{"- - 3", 3},
		{"+5 - 8", -3},
		{"2 * (3 + 4) - 1", 13},
	}
	for _, tt := range tests {
		got, err := eval(t, tt.src)
		require.NoError(t, err, tt.src)
		assert.Equal(t, tt.want, got, tt.src)
	}

	got, err := eval(t, "10 / 3")
	require.NoError(t, err)
	assert.InDelta(t, 3.3333333, got, 1e-6)
}

func TestDivisionByZero(t *testing.T) {
	for _, src := range []string{"1 DIV 0", "1 / (2 - 2)"} {
		_, err := eval(t, src)
		require.Error(t, err, src)
		de, ok := diag.As(err)
		require.True(t, ok)
		assert.Equal(t, diag.SemanticError, de.Kind)
		assert.Equal(t, 3, de.Column, "reported at the operator")
	}
}

func TestEvalExprHasNoVariables(t *testing.T) {
	_, err := eval(t, "a + 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `undefined variable "a"`)
}

func TestRunAssignsInOrder(t *testing.T) {
	in := compile(t, `PROGRAM p;
VAR a, b: INTEGER;
BEGIN
  a := 2;
  b := a + 3
END.`)
	require.NoError(t, in.Run())

	a, ok := in.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 2.0, a)
	b, ok := in.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, 5.0, b)
}

func TestRunPart10(t *testing.T) {
	in := compile(t, `PROGRAM Part10;
VAR
   number     : INTEGER;
   a, b, c, x : INTEGER;
   y          : REAL;
BEGIN
   BEGIN
      number := 2;
      a := number;
      b := 10 * a + 10 * number DIV 4;
      c := a - - b
   END;
   x := 11;
   y := 20 / 7 + 3.14;
END.`)
	require.NoError(t, in.Run())

	want := map[string]float64{"number": 2, "a": 2, "b": 25, "c": 27, "x": 11}
	for name, v := range want {
		got, ok := in.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, v, got, name)
	}
	y, _ := in.Lookup("y")
	assert.InDelta(t, 20.0/7+3.14, y, 1e-9)
}

func TestUndeclaredAssignment(t *testing.T) {
	in := compile(t, `PROGRAM p;
VAR x: INTEGER;
BEGIN
  x := y + 1
END.`)
	err := in.Run()
	require.Error(t, err)
	de, ok := diag.As(err)
	require.True(t, ok)
	assert.Equal(t, diag.SemanticError, de.Kind)
	assert.Equal(t, 4, de.Line)
	assert.Equal(t, 8, de.Column)

	x, ok := in.Lookup("x")
	require.True(t, ok)
	assert.Zero(t, x, "x stays unset")

	in = compile(t, "PROGRAM p; BEGIN z := 1 END.")
	err = in.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, &diag.Error{Kind: diag.SemanticError, Line: 1, Column: 18})
}

func TestDeclaredVariablesStartAtZero(t *testing.T) {
	in := compile(t, "PROGRAM p; VAR a, b: REAL; BEGIN b := a + 1 END.")
	require.NoError(t, in.Run())
	b, _ := in.Lookup("b")
	assert.Equal(t, 1.0, b)
}

func TestRunResetsScope(t *testing.T) {
	in := compile(t, "PROGRAM p; VAR a: INTEGER; BEGIN a := a + 1 END.")
	require.NoError(t, in.Run())
	require.NoError(t, in.Run())
	a, _ := in.Lookup("a")
	assert.Equal(t, 1.0, a)
}

func TestScopeBindings(t *testing.T) {
	in := compile(t, `PROGRAM p;
VAR zeta: REAL; alpha: INTEGER;
BEGIN
  alpha := 7;
  zeta := alpha / 2;
  PROCEDURE mid(n: INTEGER);
  BEGIN END
END.`)
	require.NoError(t, in.Run())

	got := in.Scope()
	require.Len(t, got, 3)
	assert.Equal(t, interp.Binding{Name: "alpha", Kind: interp.VariableBinding, Type: "INTEGER", Value: 7}, got[0])
	assert.Equal(t, interp.Binding{Name: "mid", Kind: interp.ProcedureBinding, Type: "PROCEDURE(n: INTEGER)"}, got[1])
	assert.Equal(t, "zeta: REAL = 3.5", got[2].String())

	var buf bytes.Buffer
	require.NoError(t, in.PrintScope(&buf))
	assert.Equal(t, "alpha: INTEGER = 7\nmid: PROCEDURE(n: INTEGER)\nzeta: REAL = 3.5\n", buf.String())
}

func TestProcedureNameClashesWithVariable(t *testing.T) {
	in := compile(t, "PROGRAM p; VAR f: INTEGER; BEGIN PROCEDURE f; BEGIN END END.")
	err := in.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate identifier")
}

func TestProcedureUsedAsVariable(t *testing.T) {
	in := compile(t, "PROGRAM p; VAR a: INTEGER; BEGIN PROCEDURE f; BEGIN END; a := f END.")
	err := in.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a procedure, not a variable")
}

func TestCallWithoutHandler(t *testing.T) {
	in := compile(t, `PROGRAM p;
BEGIN
  PROCEDURE f(a: INTEGER);
  BEGIN END;
  f(1)
END.`)
	err := in.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, &diag.Error{Kind: diag.UnsupportedOperation, Line: 5, Column: 3})
}

func TestCallChecks(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind diag.Kind
		msg  string
	}{
		{"undefined procedure", "g(1)", diag.SemanticError, `undefined procedure "g"`},
		{"arity", "f(1, 2)", diag.SemanticError, "expects 1 arguments, got 2"},
		{"argument error first", "g(missing)", diag.SemanticError, `undefined variable "missing"`},
		{"division in argument", "f(1 DIV 0)", diag.SemanticError, "division by zero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := compile(t, "PROGRAM p; BEGIN PROCEDURE f(a: INTEGER); BEGIN END; "+tt.body+" END.")
			err := in.Run()
			require.Error(t, err)
			de, ok := diag.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, de.Kind)
			assert.Contains(t, de.Msg, tt.msg)
		})
	}
}

func TestCallHandler(t *testing.T) {
	var calls []interp.Call
	in := compile(t, `PROGRAM p;
VAR x: REAL;
BEGIN
  x := 1.5;
  PROCEDURE show(a: INTEGER; b: REAL);
  BEGIN END;
  show(2 + 3, x * 2)
END.`, interp.WithCallHandler(func(c interp.Call) error {
		calls = append(calls, c)
		return nil
	}))
	require.NoError(t, in.Run())
	require.Len(t, calls, 1)
	assert.Equal(t, "show", calls[0].Proc.Name)
	assert.Equal(t, []float64{5, 3}, calls[0].Args)
	assert.Equal(t, ast.Pos{Line: 7, Column: 3}, calls[0].Pos)
}

func TestOuterReferencesAreFlagged(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.WarnLevel})
	in := compile(t, `PROGRAM p;
VAR a, b: INTEGER;
BEGIN
  PROCEDURE q(n: INTEGER);
  VAR k: INTEGER;
  BEGIN
    k := n + a;
    b := k
  END;
  a := 1
END.`, interp.WithLogger(logger))
	require.NoError(t, in.Run())

	warnings := in.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, interp.Warning{Pos: ast.Pos{Line: 7, Column: 14}, Procedure: "q", Name: "a"}, warnings[0])
	assert.Equal(t, "b", warnings[1].Name)
	assert.True(t, strings.Contains(warnings[0].String(), "nested scopes are not supported"))
	assert.Contains(t, logs.String(), "outer scope reference")

	a, _ := in.Lookup("a")
	assert.Equal(t, 1.0, a)
}

func TestLocalNamesAreNotFlagged(t *testing.T) {
	in := compile(t, `PROGRAM p;
VAR a: INTEGER;
BEGIN
  PROCEDURE q(a: INTEGER);
  BEGIN
    PROCEDURE inner;
    BEGIN END;
    a := a + 1;
    inner()
  END
END.`)
	require.NoError(t, in.Run())
	assert.Empty(t, in.Warnings())
}

func TestRunWithoutProgram(t *testing.T) {
	in := interp.New(nil)
	require.Error(t, in.Run())
	assert.Empty(t, in.Scope())
}
