package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/blok-lang/blok/internal/compiler/token"
)

// Lexer scans source text left to right and produces tokens on demand.
// It is a one-shot pull sequence: NextToken returns each token exactly once
// and then returns EOF tokens forever; re-enumerating requires a new Lexer.
//
// At each position the matchers run in a fixed, documented priority:
//
//  1. keywords, as literal prefixes, in token.Keywords order
//  2. ":=" and ","
//  3. identifier: letter, then letters/digits
//  4. float literal: [+-]?digits.digits([eE][+-]?digits)?
//  5. int literal: [+-]?digits
//  6. string literal: double-quoted, no escapes, quotes stripped
//  7. operator: one of + - * / followed by whitespace or end of input
//
// Float runs before int so "3.14" is one token, and both run before the
// operator rule so "+5" is a signed literal while "+ 5" is an operator and
// a literal. Whitespace is skipped and never emitted. Any other character
// yields an ILLEGAL token carrying the offending character.
type Lexer struct {
	input  string
	pos    int // byte offset of the next unread character
	line   int // 1-based
	column int // 1-based, column of the next unread character
}

func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := token.Position{Line: l.line, Column: l.column, Offset: l.pos}

	if l.pos >= len(l.input) {
		return token.Token{Kind: token.EOF, Text: "", Pos: pos}
	}

	rest := l.input[l.pos:]

	// Keywords win ties with the identifier rule, including prefix-equal
	// matches: "BEGINX" is BEGIN followed by the identifier X.
	for _, kw := range token.Keywords {
		if strings.HasPrefix(rest, string(kw)) {
			return l.emit(kw, len(kw), pos)
		}
	}

	if strings.HasPrefix(rest, string(token.ASSIGN)) {
		return l.emit(token.ASSIGN, 2, pos)
	}
	if rest[0] == ',' {
		return l.emit(token.COMMA, 1, pos)
	}

	if n := scanIdentifier(rest); n > 0 {
		return l.emit(token.IDENT, n, pos)
	}
	if n := scanFloat(rest); n > 0 {
		return l.emit(token.FLOAT_LIT, n, pos)
	}
	if n := scanInt(rest); n > 0 {
		return l.emit(token.INT_LIT, n, pos)
	}
	if rest[0] == '"' {
		if end := strings.IndexByte(rest[1:], '"'); end >= 0 {
			tok := token.Token{
				Kind: token.STRING_LIT,
				Text: rest[1 : 1+end],
				Pos:  pos,
			}
			l.advance(end + 2)
			return tok
		}
		// Unterminated string literal: report the opening quote.
		return l.emit(token.ILLEGAL, 1, pos)
	}
	if isOperator(rest[0]) && (len(rest) == 1 || isSpace(rest[1])) {
		return l.emit(token.OPERATOR, 1, pos)
	}

	tok := token.Token{Kind: token.ILLEGAL, Pos: pos}
	r, size := utf8.DecodeRuneInString(rest)
	tok.Text = string(r)
	l.advance(size)
	return tok
}

func (l *Lexer) emit(kind token.Kind, n int, pos token.Position) token.Token {
	tok := token.Token{
		Kind: kind,
		Text: l.input[l.pos : l.pos+n],
		Pos:  pos,
	}
	l.advance(n)
	return tok
}

// advance moves the cursor n bytes forward, maintaining line and column.
func (l *Lexer) advance(n int) {
	end := l.pos + n
	for l.pos < end {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos += size
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.advance(1)
	}
}

func scanIdentifier(s string) int {
	if !isLetter(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && (isLetter(s[n]) || isDigit(s[n])) {
		n++
	}
	return n
}

// scanInt matches [+-]?digits.
func scanInt(s string) int {
	n := 0
	if s[0] == '+' || s[0] == '-' {
		n = 1
	}
	start := n
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == start {
		return 0
	}
	return n
}

// scanFloat matches [+-]?digits.digits([eE][+-]?digits)?.
func scanFloat(s string) int {
	n := scanInt(s)
	if n == 0 || n >= len(s) || s[n] != '.' {
		return 0
	}
	n++
	start := n
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == start {
		return 0
	}
	// Optional signed exponent.
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		m := n + 1
		if m < len(s) && (s[m] == '+' || s[m] == '-') {
			m++
		}
		expStart := m
		for m < len(s) && isDigit(s[m]) {
			m++
		}
		if m > expStart {
			n = m
		}
	}
	return n
}

func isOperator(ch byte) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
