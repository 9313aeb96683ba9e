package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/gosuda/minipas"
	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
	"github.com/gosuda/minipas/interp"
	"github.com/gosuda/minipas/printer"
)

const helpText = `Enter an expression to evaluate it, or one of:
  :tokens <src>    list the tokens of a program or expression
  :ast <src>       show the syntax tree
  :rewrite <src>   print the fully parenthesised source
  :run <program>   run a program and show its scope
  :scope           show the scope of the last program run
  :load <file>     run a program read from a file
  :help            this text
  :quit, exit      leave the REPL
  debug:<src>      same as :tokens
A line starting with PROGRAM keeps reading until the program is complete.
`

// errQuit is returned by handle when the user asks to leave.
var errQuit = errors.New("quit")

// session is the frontend-independent REPL core shared by the line and TUI
// modes.
type session struct {
	logger      *log.Logger
	scopeFormat string
	astFormat   string
	last        *interp.Interpreter
}

func newSession(cfg *Config, logger *log.Logger) *session {
	return &session{
		logger:      logger,
		scopeFormat: cfg.Output.ScopeFormat,
		astFormat:   cfg.Output.ASTFormat,
	}
}

// handle executes one REPL input and writes its result to w. Diagnostics
// come back as errors rendered against the input; errQuit ends the session.
func (s *session) handle(w io.Writer, input string) error {
	line := strings.TrimSpace(input)
	if line == "" {
		return nil
	}
	if line == "exit" {
		return errQuit
	}
	if rest, ok := strings.CutPrefix(line, "debug:"); ok {
		return s.tokens(w, rest)
	}
	if !strings.HasPrefix(line, ":") {
		v, err := minipas.Eval(line)
		if err != nil {
			return withSource(err, line)
		}
		_, err = fmt.Fprintln(w, ast.FormatNumber(v))
		return err
	}

	cmd, arg := splitCommand(line)
	switch strings.ToLower(cmd) {
	case ":help":
		_, err := io.WriteString(w, helpText)
		return err
	case ":quit", ":exit":
		return errQuit
	case ":tokens":
		return s.tokens(w, arg)
	case ":ast":
		node, err := parseAny(arg)
		if err != nil {
			return withSource(err, arg)
		}
		return writeAST(w, node, s.astFormat)
	case ":rewrite":
		node, err := parseAny(arg)
		if err != nil {
			return withSource(err, arg)
		}
		if p, ok := node.(*ast.Program); ok {
			_, err = io.WriteString(w, printer.Program(p))
		} else {
			_, err = fmt.Fprintln(w, printer.Expr(node.(ast.Expr)))
		}
		return err
	case ":run":
		return s.run(w, arg)
	case ":load":
		if arg == "" {
			_, err := fmt.Fprintln(w, "usage: :load <file>")
			return err
		}
		src, err := os.ReadFile(arg)
		if err != nil {
			return fmt.Errorf("load %s: %w", arg, err)
		}
		return s.run(w, string(src))
	case ":scope":
		if s.last == nil {
			_, err := fmt.Fprintln(w, "no program has been run")
			return err
		}
		return writeScope(w, s.last.Scope(), s.scopeFormat)
	default:
		_, err := fmt.Fprintf(w, "unknown command %s, type :help for help\n", cmd)
		return err
	}
}

func (s *session) tokens(w io.Writer, src string) error {
	toks, err := minipas.Tokens(src)
	if err != nil {
		return withSource(err, src)
	}
	return writeTokens(w, toks)
}

func (s *session) run(w io.Writer, src string) error {
	in, err := minipas.Compile(src, interp.WithLogger(s.logger))
	if err != nil {
		return withSource(err, src)
	}
	// the scope stays inspectable even when the run fails half way
	s.last = in
	if err := in.Run(); err != nil {
		return withSource(err, src)
	}
	return writeScope(w, in.Scope(), s.scopeFormat)
}

// needsMore reports whether buf starts a program the parser has not yet seen
// the end of.
func needsMore(buf string) bool {
	src := strings.TrimSpace(buf)
	if strings.HasPrefix(src, ":") {
		_, src = splitCommand(src)
	}
	if !strings.HasPrefix(src, "PROGRAM") {
		return false
	}
	_, err := minipas.Parse(src)
	de, ok := diag.As(err)
	if !ok {
		return false
	}
	switch de.Kind {
	case diag.SyntaxError:
		return strings.HasSuffix(de.Msg, "found end of input")
	case diag.LexError:
		return de.Msg == "unterminated comment"
	}
	return false
}

// splitCommand separates a meta-command from its argument, which may span
// several lines.
func splitCommand(line string) (string, string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

func parseAny(src string) (any, error) {
	if strings.HasPrefix(strings.TrimSpace(src), "PROGRAM") {
		return minipas.Parse(src)
	}
	return minipas.ParseExpr(src)
}
