package parser

import (
	"strings"

	"github.com/gosuda/minipas/ast"
)

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func describe(tok ast.Token) string {
	switch tok.Kind {
	case ast.NUMBER:
		return "number " + ast.FormatNumber(tok.Num)
	case ast.IDENT:
		return "identifier " + tok.Text
	case ast.OPERATOR:
		return "operator " + tok.Op.String()
	case ast.EOF:
		return "end of input"
	default:
		return tok.Kind.String()
	}
}

func kindList(kinds []ast.TokenKind) string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return strings.Join(names, " or ")
}
