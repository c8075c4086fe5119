package errors

import "fmt"

// Position represents a location in source code
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Diagnostic is a recoverable problem noted during lexing or parsing: an
// unrecognized character, a skipped token, a resynchronization. Diagnostics
// never abort a parse.
type Diagnostic struct {
	Pos     Position
	Message string
	Phase   string // "lexer" or "parser"
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("[%s] %s: %s", d.Phase, d.Pos, d.Message)
}

// DiagnosticList collects diagnostics in the order they were produced.
type DiagnosticList struct {
	Diagnostics []*Diagnostic
}

func NewDiagnosticList() *DiagnosticList {
	return &DiagnosticList{}
}

func (dl *DiagnosticList) Add(pos Position, phase, message string) {
	dl.Diagnostics = append(dl.Diagnostics, &Diagnostic{Pos: pos, Message: message, Phase: phase})
}

func (dl *DiagnosticList) HasDiagnostics() bool {
	return len(dl.Diagnostics) > 0
}

func (dl *DiagnosticList) Len() int {
	return len(dl.Diagnostics)
}

func (dl *DiagnosticList) String() string {
	s := ""
	for _, d := range dl.Diagnostics {
		s += d.Error() + "\n"
	}
	return s
}

// SyntaxError is fatal: a Term production found no valid leading token.
// There is no synchronization point inside a term, so the parse aborts.
type SyntaxError struct {
	Pos  Position
	Got  string // offending token kind
	Text string // offending token text
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: unexpected token %s (%q), expected identifier or literal", e.Pos, e.Got, e.Text)
}

// TrailingInputError is fatal: tokens remain after the top-level END.
// It is reported distinctly from mid-parse errors.
type TrailingInputError struct {
	Pos Position
	Got string // kind of the first trailing token
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("%s: trailing input after END (starts with %s)", e.Pos, e.Got)
}
