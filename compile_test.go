package minipas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosuda/minipas"
	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
	"github.com/gosuda/minipas/interp"
	"github.com/gosuda/minipas/printer"
)

func TestCompileAndRunBasicFlow(t *testing.T) {
	src := `
PROGRAM Basic;
VAR a, b: INTEGER;
    r: REAL;
BEGIN
  a := 2;
  b := a * 2 + 1;
  r := b / 2
END.
`
	in, err := minipas.Compile(src)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if err := in.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	scope := in.Scope()
	if len(scope) != 3 {
		t.Fatalf("unexpected scope size: %d", len(scope))
	}
	want := []string{"a: INTEGER = 2", "b: INTEGER = 5", "r: REAL = 2.5"}
	for i, b := range scope {
		if b.String() != want[i] {
			t.Fatalf("binding %d: got %q, want %q", i, b.String(), want[i])
		}
	}
}

func TestEval(t *testing.T) {
	v, err := minipas.Eval("1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	v, err = minipas.Eval("(1 + 2) * 3")
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	_, err = minipas.Eval("(1 + 2")
	assert.True(t, diag.IsKind(err, diag.SyntaxError))
}

func TestTokensLastIsEOF(t *testing.T) {
	toks, err := minipas.Tokens("PROGRAM p; BEGIN END.")
	require.NoError(t, err)
	assert.Len(t, toks, 7)
	assert.Equal(t, ast.EOF, toks[len(toks)-1].Kind)
}

func TestRewriteReparses(t *testing.T) {
	prog, err := minipas.Parse("PROGRAM r; VAR x: REAL; BEGIN x := 1 + 2 * 3 - 4 / 2 END.")
	require.NoError(t, err)
	out := printer.Program(prog)
	assert.Contains(t, out, "x := ((1 + (2 * 3)) - (4 / 2));")

	in, err := minipas.Compile(out)
	require.NoError(t, err)
	require.NoError(t, in.Run())
	x, _ := in.Lookup("x")
	assert.Equal(t, 5.0, x)
}

func TestCompileErrorsArePositioned(t *testing.T) {
	_, err := minipas.Compile("PROGRAM p;\nBEGIN\n  x := 1\n")
	require.Error(t, err)
	de, ok := diag.As(err)
	require.True(t, ok)
	assert.Equal(t, diag.SyntaxError, de.Kind)
	assert.Equal(t, 4, de.Line)
}

func TestCompileOptions(t *testing.T) {
	called := false
	in, err := minipas.Compile("PROGRAM p; BEGIN PROCEDURE f; BEGIN END; f() END.",
		interp.WithCallHandler(func(c interp.Call) error {
			called = c.Proc.Name == "f" && len(c.Args) == 0
			return nil
		}))
	require.NoError(t, err)
	require.NoError(t, in.Run())
	assert.True(t, called)
}
