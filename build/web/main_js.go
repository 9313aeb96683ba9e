//go:build js && wasm

package main

import (
	"encoding/json"
	"errors"
	"syscall/js"

	"github.com/gosuda/minipas"
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

type runResult struct {
	Scope    []interp.Binding `json:"scope"`
	Warnings []string         `json:"warnings,omitempty"`
	Value    *float64         `json:"value,omitempty"`
	Source   string           `json:"source,omitempty"`
	Tokens   []string         `json:"tokens,omitempty"`
	Error    *errorPayload    `json:"error,omitempty"`
}

func respond(r runResult, err error) any {
	if err != nil {
		r.Error = &errorPayload{Kind: "error", Message: err.Error()}
		if de, ok := diag.As(err); ok {
			r.Error = &errorPayload{Kind: de.Kind.String(), Line: de.Line, Column: de.Column, Message: de.Msg}
		}
	}
	b, _ := json.Marshal(r)
	return string(b)
}

func sourceArg(args []js.Value) (string, bool) {
	if len(args) < 1 || args[0].Type() != js.TypeString {
		return "", false
	}
	return args[0].String(), true
}

func missingSource(name string) any {
	return respond(runResult{}, errors.New(name+" requires a source string"))
}

func runProgram(this js.Value, args []js.Value) any {
	src, ok := sourceArg(args)
	if !ok {
		return missingSource("minipasRun")
	}
	in, err := minipas.Compile(src)
	if err != nil {
		return respond(runResult{}, err)
	}
	err = in.Run()
	r := runResult{Scope: in.Scope()}
	for _, w := range in.Warnings() {
		r.Warnings = append(r.Warnings, w.String())
	}
	return respond(r, err)
}

func evalExpr(this js.Value, args []js.Value) any {
	src, ok := sourceArg(args)
	if !ok {
		return missingSource("minipasEval")
	}
	v, err := minipas.Eval(src)
	if err != nil {
		return respond(runResult{}, err)
	}
	return respond(runResult{Value: &v}, nil)
}

func tokens(this js.Value, args []js.Value) any {
	src, ok := sourceArg(args)
	if !ok {
		return missingSource("minipasTokens")
	}
	toks, err := minipas.Tokens(src)
	if err != nil {
		return respond(runResult{}, err)
	}
	r := runResult{Tokens: make([]string, 0, len(toks))}
	for _, t := range toks {
		r.Tokens = append(r.Tokens, t.String())
	}
	return respond(r, nil)
}

func rewrite(this js.Value, args []js.Value) any {
	src, ok := sourceArg(args)
	if !ok {
		return missingSource("minipasRewrite")
	}
	prog, err := minipas.Parse(src)
	if err != nil {
		return respond(runResult{}, err)
	}
	return respond(runResult{Source: printer.Program(prog)}, nil)
}

func main() {
	js.Global().Set("minipasRun", js.FuncOf(runProgram))
	js.Global().Set("minipasEval", js.FuncOf(evalExpr))
	js.Global().Set("minipasTokens", js.FuncOf(tokens))
	js.Global().Set("minipasRewrite", js.FuncOf(rewrite))
	select {}
}
