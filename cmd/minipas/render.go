package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
	"github.com/gosuda/minipas/interp"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// sourceError carries the source an error was raised against so it prints as
// a caret snippet.
type sourceError struct {
	err error
	src string
}

func (e *sourceError) Error() string { return diag.Snippet(e.err, e.src) }
func (e *sourceError) Unwrap() error { return e.err }

func withSource(err error, src string) error {
	if err == nil {
		return nil
	}
	if _, ok := diag.As(err); !ok {
		return err
	}
	return &sourceError{err: err, src: src}
}

func writeTokens(w io.Writer, toks []ast.Token) error {
	for _, t := range toks {
		var val string
		switch t.Kind {
		case ast.NUMBER:
			val = ast.FormatNumber(t.Num)
		case ast.OPERATOR:
			val = t.Op.String()
		case ast.IDENT:
			val = t.Text
		}
		line := strings.TrimRight(fmt.Sprintf("%-7s %-10s %s", t.Pos, t.Kind, val), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// writeAST renders either a whole program or a bare expression.
func writeAST(w io.Writer, node any, format string) error {
	var tree *ast.Tree
	switch n := node.(type) {
	case *ast.Program:
		tree = ast.ProgramTree(n)
	case ast.Expr:
		tree = ast.ExprTree(n)
	default:
		return fmt.Errorf("ast: cannot render %T", node)
	}
	switch format {
	case "tree":
		_, err := fmt.Fprintln(w, tree.String())
		return err
	case "yaml":
		return writeYAML(w, tree)
	case "spew":
		dumper.Fdump(w, node)
		return nil
	default:
		return fmt.Errorf("unknown ast format %q", format)
	}
}

func writeScope(w io.Writer, bindings []interp.Binding, format string) error {
	switch format {
	case "text":
		for _, b := range bindings {
			if _, err := fmt.Fprintln(w, b.String()); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		if len(bindings) == 0 {
			_, err := fmt.Fprintln(w, "[]")
			return err
		}
		return writeYAML(w, bindings)
	default:
		return fmt.Errorf("unknown scope format %q", format)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
