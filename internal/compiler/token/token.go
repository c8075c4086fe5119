package token

type Kind string

type Position struct {
	Line   int
	Column int
	Offset int
}

type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

const (
	// Special
	ILLEGAL Kind = "ILLEGAL"
	EOF     Kind = "EOF"

	// Keywords
	BEGIN   Kind = "BEGIN"
	END     Kind = "END"
	PRINT   Kind = "PRINT"
	FOR     Kind = "FOR"
	TO      Kind = "TO"
	INTEGER Kind = "INTEGER"
	REAL    Kind = "REAL"
	STRING  Kind = "STRING"

	// Punctuation
	ASSIGN Kind = ":="
	COMMA  Kind = ","

	// Identifiers + literals
	IDENT      Kind = "IDENT"
	INT_LIT    Kind = "INT"
	FLOAT_LIT  Kind = "FLOAT"
	STRING_LIT Kind = "STRING_LITERAL"

	// Arithmetic operator class: + - * /
	OPERATOR Kind = "OPERATOR"
)

// Keywords lists the keyword kinds in match priority order. The lexer tries
// each as a literal prefix of the remaining input before the identifier rule
// runs, so a keyword wins ties with identical or prefix-equal matches
// ("BEGINX" lexes as BEGIN followed by the identifier X).
var Keywords = []Kind{BEGIN, END, PRINT, FOR, TO, INTEGER, REAL, STRING}

// StatementStart reports whether a token of this kind can begin a statement.
func StatementStart(k Kind) bool {
	switch k {
	case PRINT, INTEGER, REAL, STRING, IDENT, FOR:
		return true
	}
	return false
}

// TermStart reports whether a token of this kind can begin an expression term.
func TermStart(k Kind) bool {
	switch k {
	case IDENT, INT_LIT, FLOAT_LIT, STRING_LIT:
		return true
	}
	return false
}
