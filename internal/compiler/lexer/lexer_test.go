package lexer

import (
	"testing"

	"github.com/blok-lang/blok/internal/compiler/token"
)

func TestKeywordsAndPunctuation(t *testing.T) {
	input := `BEGIN END PRINT FOR TO INTEGER REAL STRING := ,`

	expected := []token.Kind{
		token.BEGIN, token.END, token.PRINT, token.FOR, token.TO,
		token.INTEGER, token.REAL, token.STRING, token.ASSIGN, token.COMMA,
		token.EOF,
	}

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Kind != exp {
			t.Fatalf("test[%d] - wrong kind. expected=%s, got=%s (text=%q)", i, exp, tok.Kind, tok.Text)
		}
	}
}

func TestIdentifiersAndLiterals(t *testing.T) {
	input := `A counter2 42 +7 -13 3.14 -3.56E-8 1.0e+4 "hello there"`

	expected := []struct {
		kind token.Kind
		text string
	}{
		{token.IDENT, "A"},
		{token.IDENT, "counter2"},
		{token.INT_LIT, "42"},
		{token.INT_LIT, "+7"},
		{token.INT_LIT, "-13"},
		{token.FLOAT_LIT, "3.14"},
		{token.FLOAT_LIT, "-3.56E-8"},
		{token.FLOAT_LIT, "1.0e+4"},
		{token.STRING_LIT, "hello there"},
	}

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Kind != exp.kind || tok.Text != exp.text {
			t.Fatalf("test[%d] - expected %s(%q), got %s(%q)", i, exp.kind, exp.text, tok.Kind, tok.Text)
		}
	}
	if tok := l.NextToken(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %s(%q)", tok.Kind, tok.Text)
	}
}

// Keywords are matched as literal prefixes before the identifier rule, so a
// keyword wins even when the identifier rule would match longer.
func TestKeywordWinsPrefixTies(t *testing.T) {
	expected := []struct {
		kind token.Kind
		text string
	}{
		{token.BEGIN, "BEGIN"},
		{token.IDENT, "X"},
		{token.TO, "TO"},
		{token.IDENT, "TAL"},
	}

	l := New(`BEGINX TOTAL`)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Kind != exp.kind || tok.Text != exp.text {
			t.Fatalf("test[%d] - expected %s(%q), got %s(%q)", i, exp.kind, exp.text, tok.Kind, tok.Text)
		}
	}
}

func TestLowercaseKeywordsAreIdentifiers(t *testing.T) {
	l := New(`begin print`)
	for i := 0; i < 2; i++ {
		if tok := l.NextToken(); tok.Kind != token.IDENT {
			t.Fatalf("test[%d] - expected IDENT, got %s(%q)", i, tok.Kind, tok.Text)
		}
	}
}

// A sign glued to digits is a signed literal; a sign followed by whitespace
// is an operator.
func TestOperatorsVersusSignedNumbers(t *testing.T) {
	input := `1 + 2 * 3 / 4 - 5 -6 +`

	expected := []struct {
		kind token.Kind
		text string
	}{
		{token.INT_LIT, "1"},
		{token.OPERATOR, "+"},
		{token.INT_LIT, "2"},
		{token.OPERATOR, "*"},
		{token.INT_LIT, "3"},
		{token.OPERATOR, "/"},
		{token.INT_LIT, "4"},
		{token.OPERATOR, "-"},
		{token.INT_LIT, "5"},
		{token.INT_LIT, "-6"},
		{token.OPERATOR, "+"}, // end of input counts as a boundary
		{token.EOF, ""},
	}

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Kind != exp.kind || tok.Text != exp.text {
			t.Fatalf("test[%d] - expected %s(%q), got %s(%q)", i, exp.kind, exp.text, tok.Kind, tok.Text)
		}
	}
}

func TestStringLiteralStripsQuotes(t *testing.T) {
	l := New(`"Strings are [X] and [Y]"`)
	tok := l.NextToken()
	if tok.Kind != token.STRING_LIT {
		t.Fatalf("expected STRING_LITERAL, got %s", tok.Kind)
	}
	if tok.Text != "Strings are [X] and [Y]" {
		t.Errorf("quotes not stripped: %q", tok.Text)
	}
}

func TestUnrecognizedCharacter(t *testing.T) {
	expected := []struct {
		kind token.Kind
		text string
	}{
		{token.IDENT, "A"},
		{token.ILLEGAL, ";"},
		{token.IDENT, "B"},
		{token.ILLEGAL, "é"},
		{token.EOF, ""},
	}

	l := New("A ; B é")
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Kind != exp.kind || tok.Text != exp.text {
			t.Fatalf("test[%d] - expected %s(%q), got %s(%q)", i, exp.kind, exp.text, tok.Kind, tok.Text)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"abc`)
	tok := l.NextToken()
	if tok.Kind != token.ILLEGAL || tok.Text != `"` {
		t.Fatalf("expected ILLEGAL(%q), got %s(%q)", `"`, tok.Kind, tok.Text)
	}
	tok = l.NextToken()
	if tok.Kind != token.IDENT || tok.Text != "abc" {
		t.Fatalf("expected IDENT(abc), got %s(%q)", tok.Kind, tok.Text)
	}
}

func TestPositions(t *testing.T) {
	input := "BEGIN\n  PRINT \"HI\"\nEND"

	expected := []struct {
		kind token.Kind
		line int
		col  int
	}{
		{token.BEGIN, 1, 1},
		{token.PRINT, 2, 3},
		{token.STRING_LIT, 2, 9},
		{token.END, 3, 1},
		{token.EOF, 3, 4},
	}

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Kind != exp.kind {
			t.Fatalf("test[%d] - expected %s, got %s", i, exp.kind, tok.Kind)
		}
		if tok.Pos.Line != exp.line || tok.Pos.Column != exp.col {
			t.Errorf("test[%d] %s - expected %d:%d, got %d:%d", i, exp.kind, exp.line, exp.col, tok.Pos.Line, tok.Pos.Column)
		}
	}
}

func TestExhaustedLexerKeepsReturningEOF(t *testing.T) {
	l := New("A")
	l.NextToken()
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Kind != token.EOF {
			t.Fatalf("call %d after end: expected EOF, got %s", i, tok.Kind)
		}
	}
}
