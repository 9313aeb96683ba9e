package parser

import (
	"strconv"

	"github.com/gosuda/minipas/ast"
	"github.com/gosuda/minipas/diag"
)

// Lexer turns source bytes into positioned tokens on demand. Once the input
// is exhausted every further call returns an EOF token.
type Lexer struct {
	src  []byte
	pos  int
	line int
	col  int
}

func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) cur() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) advance() {
	if l.atEnd() {
		return
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) here() ast.Pos {
	return ast.Pos{Line: l.line, Column: l.col}
}

// PeekChar returns the next raw, unconsumed byte right after the last token,
// without skipping whitespace. It returns 0 at end of input.
func (l *Lexer) PeekChar() byte {
	return l.cur()
}

func (l *Lexer) skipTrivia() error {
	for !l.atEnd() {
		switch ch := l.cur(); {
		case isSpace(ch):
			l.advance()
		case ch == '{':
			start := l.here()
			for !l.atEnd() && l.cur() != '}' {
				if l.cur() >= 0x80 {
					return l.here().Errorf(diag.LexError, "non-ASCII character 0x%02X", l.cur())
				}
				l.advance()
			}
			if l.atEnd() {
				return start.Errorf(diag.LexError, "unterminated comment")
			}
			l.advance()
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) NextToken() (ast.Token, error) {
	if err := l.skipTrivia(); err != nil {
		return ast.Token{}, err
	}
	start := l.here()
	if l.atEnd() {
		return ast.Token{Kind: ast.EOF, Pos: start}, nil
	}
	ch := l.cur()
	switch {
	case isDigit(ch):
		return l.number()
	case isIdentStart(ch):
		return l.word(), nil
	}

	simple := func(kind ast.TokenKind) (ast.Token, error) {
		l.advance()
		return ast.Token{Kind: kind, Pos: start}, nil
	}
	op := func(o ast.Operator) (ast.Token, error) {
		l.advance()
		return ast.Token{Kind: ast.OPERATOR, Op: o, Pos: start}, nil
	}
	switch ch {
	case '+':
		return op(ast.PLUS)
	case '-':
		return op(ast.MINUS)
	case '*':
		return op(ast.MULTIPLY)
	case '/':
		return op(ast.REALDIV)
	case '(':
		return simple(ast.LPAREN)
	case ')':
		return simple(ast.RPAREN)
	case ',':
		return simple(ast.COMMA)
	case ';':
		return simple(ast.SEMICOLON)
	case '.':
		return simple(ast.DOT)
	case ':':
		if l.peek() == '=' {
			l.advance()
			return simple(ast.ASSIGN)
		}
		return simple(ast.COLON)
	}
	if ch >= 0x80 {
		return ast.Token{}, start.Errorf(diag.LexError, "non-ASCII character 0x%02X", ch)
	}
	return ast.Token{}, start.Errorf(diag.LexError, "illegal character %q", rune(ch))
}

func (l *Lexer) number() (ast.Token, error) {
	start := l.here()
	from := l.pos
	seenDot := false
	for !l.atEnd() && (isDigit(l.cur()) || l.cur() == '.') {
		if l.cur() == '.' {
			if seenDot {
				return ast.Token{}, l.here().Errorf(diag.LexError, "malformed number %q: more than one decimal point", string(l.src[from:l.pos+1]))
			}
			seenDot = true
		}
		l.advance()
	}
	lit := string(l.src[from:l.pos])
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return ast.Token{}, start.Errorf(diag.LexError, "malformed number %q", lit)
	}
	return ast.Token{Kind: ast.NUMBER, Num: v, Text: lit, Pos: start}, nil
}

func (l *Lexer) word() ast.Token {
	start := l.here()
	from := l.pos
	for !l.atEnd() && isIdentPart(l.cur()) {
		l.advance()
	}
	w := string(l.src[from:l.pos])
	if w == "DIV" {
		return ast.Token{Kind: ast.OPERATOR, Op: ast.INTDIV, Text: w, Pos: start}
	}
	if kind, ok := ast.Keywords[w]; ok {
		return ast.Token{Kind: kind, Text: w, Pos: start}
	}
	return ast.Token{Kind: ast.IDENT, Text: w, Pos: start}
}

// Tokenize lexes the whole input. The result ends with exactly one EOF token.
func Tokenize(src []byte) ([]ast.Token, error) {
	l := NewLexer(src)
	toks := make([]ast.Token, 0, len(src)/2+1)
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == ast.EOF {
			return toks, nil
		}
	}
}
