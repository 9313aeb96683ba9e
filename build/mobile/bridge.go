package mobile

import (
	"encoding/json"
	"strings"

	"github.com/gosuda/minipas"
	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
	"github.com/gosuda/minipas/interp"
	"github.com/gosuda/minipas/printer"
)

type errorPayload struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Message string `json:"message"`
}

type tokenPayload struct {
	Kind   string `json:"kind"`
	Value  string `json:"value,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type result struct {
	Tokens   []tokenPayload   `json:"tokens,omitempty"`
	Source   string           `json:"source,omitempty"`
	Scope    []interp.Binding `json:"scope,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
	Error    *errorPayload    `json:"error,omitempty"`
}

func encode(r result, err error) string {
	if err != nil {
		r.Error = &errorPayload{Kind: "error", Message: err.Error()}
		if de, ok := diag.As(err); ok {
			r.Error = &errorPayload{Kind: de.Kind.String(), Line: de.Line, Column: de.Column, Message: de.Msg}
		}
	}
	b, _ := json.Marshal(r)
	return string(b)
}

// Run executes a program and returns its final scope as JSON:
// {"scope":[{"name":"a","kind":"variable","type":"INTEGER","value":2}],"warnings":[...]}
// Failures are reported as {"error":{"kind":...,"line":...,"column":...,"message":...}}.
func Run(src string) string {
	in, err := minipas.Compile(src)
	if err != nil {
		return encode(result{}, err)
	}
	err = in.Run()
	r := result{Scope: in.Scope()}
	for _, w := range in.Warnings() {
		r.Warnings = append(r.Warnings, w.String())
	}
	return encode(r, err)
}

// Tokens lexes src and returns {"tokens":[...]}.
func Tokens(src string) string {
	toks, err := minipas.Tokens(src)
	if err != nil {
		return encode(result{}, err)
	}
	r := result{Tokens: make([]tokenPayload, 0, len(toks))}
	for _, t := range toks {
		r.Tokens = append(r.Tokens, tokenOf(t))
	}
	return encode(r, nil)
}

// Rewrite returns {"source":...} with every operation parenthesised.
func Rewrite(src string) string {
	if !strings.HasPrefix(strings.TrimSpace(src), "PROGRAM") {
		e, err := minipas.ParseExpr(src)
		if err != nil {
			return encode(result{}, err)
		}
		return encode(result{Source: printer.Expr(e)}, nil)
	}
	prog, err := minipas.Parse(src)
	if err != nil {
		return encode(result{}, err)
	}
	return encode(result{Source: printer.Program(prog)}, nil)
}

func tokenOf(t ast.Token) tokenPayload {
	p := tokenPayload{Kind: t.Kind.String(), Line: t.Pos.Line, Column: t.Pos.Column}
	switch t.Kind {
	case ast.NUMBER:
		p.Value = ast.FormatNumber(t.Num)
	case ast.OPERATOR:
		p.Value = t.Op.String()
	case ast.IDENT:
		p.Value = t.Text
	}
	return p
}
