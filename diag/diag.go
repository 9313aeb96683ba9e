// Package diag holds the positioned error type shared by the lexer, parser and
// interpreter, and renders caret snippets for humans.
package diag

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	LexError Kind = iota + 1
	SyntaxError
	SemanticError
	UnsupportedOperation
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case SyntaxError:
		return "syntax error"
	case SemanticError:
		return "semantic error"
	case UnsupportedOperation:
		return "unsupported operation"
	default:
		return "error"
	}
}

// Error is a failure tied to a 1-based line and column of the source unit.
type Error struct {
	Kind   Kind
	Line   int
	Column int
	Msg    string
}

func Errorf(kind Kind, line, column int, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Column: column, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind, e.Line, e.Column, e.Msg)
}

// Is matches any *Error of the same kind, so errors.Is(err, &Error{Kind: k})
// tests the kind only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Line == 0 || t.Line == e.Line) && (t.Column == 0 || t.Column == e.Column)
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsKind reports whether err carries a diagnostic of the given kind.
func IsKind(err error, kind Kind) bool {
	de, ok := As(err)
	return ok && de.Kind == kind
}

// Snippet renders err with up to one line of context on each side and a caret
// under the offending column. Errors without a position are returned as-is.
//
//	syntax error at line 2, column 9: expected END, found EOF
//
//	   1 | BEGIN
//	   2 |   a := 1
//	     |         ^
func Snippet(err error, src string) string {
	de, ok := As(err)
	if !ok {
		return err.Error()
	}
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	if len(lines) == 0 {
		return de.Error()
	}
	line := clamp(de.Line, 1, len(lines))
	col := clamp(de.Column, 1, len(lines[line-1])+1)

	from := max(line-1, 1)
	to := min(line+1, len(lines))
	width := len(fmt.Sprint(to))

	var b strings.Builder
	b.WriteString(de.Error())
	b.WriteString("\n\n")
	for n := from; n <= to; n++ {
		fmt.Fprintf(&b, "  %*d | %s\n", width, n, lines[n-1])
		if n == line {
			fmt.Fprintf(&b, "  %s | %s^\n", strings.Repeat(" ", width), strings.Repeat(" ", col-1))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
