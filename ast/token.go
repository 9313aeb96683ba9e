package ast

import (
	"fmt"
	"strconv"
)

// Pos is a 1-based source position.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type TokenKind int

const (
	EOF TokenKind = iota
	NUMBER
	OPERATOR
	LPAREN
	RPAREN
	COLON
	COMMA
	SEMICOLON
	DOT
	ASSIGN
	BEGIN
	END
	PROGRAM
	VAR
	PROCEDURE
	INTEGER
	REAL
	IDENT
	EMPTY
)

var tokenKindNames = [...]string{
	EOF:       "EOF",
	NUMBER:    "NUMBER",
	OPERATOR:  "OPERATOR",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	COLON:     "COLON",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	DOT:       "DOT",
	ASSIGN:    "ASSIGN",
	BEGIN:     "BEGIN",
	END:       "END",
	PROGRAM:   "PROGRAM",
	VAR:       "VAR",
	PROCEDURE: "PROCEDURE",
	INTEGER:   "INTEGER",
	REAL:      "REAL",
	IDENT:     "IDENT",
	EMPTY:     "EMPTY",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Keywords maps reserved words to their token kind. Matching is case-sensitive.
// DIV is an operator and is handled separately by the lexer.
var Keywords = map[string]TokenKind{
	"BEGIN":     BEGIN,
	"END":       END,
	"PROGRAM":   PROGRAM,
	"VAR":       VAR,
	"PROCEDURE": PROCEDURE,
	"INTEGER":   INTEGER,
	"REAL":      REAL,
}

type Operator int

const (
	PLUS Operator = iota + 1
	MINUS
	MULTIPLY
	INTDIV
	REALDIV
)

func (o Operator) String() string {
	switch o {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case MULTIPLY:
		return "*"
	case INTDIV:
		return "DIV"
	case REALDIV:
		return "/"
	default:
		return "Operator(" + strconv.Itoa(int(o)) + ")"
	}
}

// Token is a lexeme with the position of its first character.
// Num is set for NUMBER, Op for OPERATOR and Text for IDENT and keywords.
type Token struct {
	Kind TokenKind
	Op   Operator
	Num  float64
	Text string
	Pos  Pos
}

func (t Token) String() string {
	switch t.Kind {
	case NUMBER:
		return fmt.Sprintf("NUMBER(%s)@%s", FormatNumber(t.Num), t.Pos)
	case OPERATOR:
		return fmt.Sprintf("OPERATOR(%s)@%s", t.Op, t.Pos)
	case IDENT:
		return fmt.Sprintf("IDENT(%s)@%s", t.Text, t.Pos)
	default:
		return fmt.Sprintf("%s@%s", t.Kind, t.Pos)
	}
}

// FormatNumber renders a numeric literal in its shortest exact form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
