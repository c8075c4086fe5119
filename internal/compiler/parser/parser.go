package parser

import (
	"fmt"

	"github.com/blok-lang/blok/internal/compiler/ast"
	cerrors "github.com/blok-lang/blok/internal/compiler/errors"
	"github.com/blok-lang/blok/internal/compiler/lexer"
	"github.com/blok-lang/blok/internal/compiler/token"
)

// Mode is the parser's recovery state. In ModePanic normal grammar matching
// is suspended and tokens are discarded until a synchronization point.
type Mode int

const (
	ModeNormal Mode = iota
	ModePanic
)

// Parser is a single-pass recursive-descent parser with panic-mode error
// recovery. It holds exactly one token of lookahead, pulled lazily from the
// lexer. Each parse owns its own Parser; none of this is safe for concurrent
// use, and a Parser cannot be reused after Parse returns.
//
// Recoverable mismatches are absorbed by panic-mode recovery and surface only
// as diagnostics plus ErrorRecovery* placeholder nodes. Fatal conditions
// (a malformed term, which has no synchronization point, and trailing input
// after the top-level END) abort the parse with an error.
type Parser struct {
	l     *lexer.Lexer
	tree  *ast.Tree
	cur   token.Token
	mode  Mode
	diags *cerrors.DiagnosticList
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:     l,
		tree:  ast.NewTree(),
		diags: cerrors.NewDiagnosticList(),
	}
	p.next()
	return p
}

// Tree returns the arena holding every node built so far. Valid (possibly
// partial) even after a recovered parse.
func (p *Parser) Tree() *ast.Tree {
	return p.tree
}

// Diagnostics returns every recoverable problem noted during the parse:
// unrecognized characters, mismatched tokens, skipped tokens,
// resynchronizations.
func (p *Parser) Diagnostics() *cerrors.DiagnosticList {
	return p.diags
}

// Parse consumes the whole token stream and returns the root Program node.
// On a fatal syntax error the returned error is a *cerrors.SyntaxError and
// the node is ast.None. Trailing tokens after the top-level END return the
// root alongside a *cerrors.TrailingInputError.
func (p *Parser) Parse() (ast.NodeID, error) {
	root, err := p.program()
	if err != nil {
		return ast.None, err
	}
	if p.cur.Kind != token.EOF {
		return root, &cerrors.TrailingInputError{Pos: p.pos(), Got: string(p.cur.Kind)}
	}
	return root, nil
}

// next pulls the following token. Unrecognized characters arrive as ILLEGAL
// tokens; they are reported as lexical diagnostics and never reach the
// grammar productions.
func (p *Parser) next() {
	for {
		tok := p.l.NextToken()
		if tok.Kind == token.ILLEGAL {
			p.diags.Add(position(tok.Pos), "lexer", fmt.Sprintf("unrecognized character %q", tok.Text))
			continue
		}
		p.cur = tok
		return
	}
}

func position(pos token.Position) cerrors.Position {
	return cerrors.Position{Line: pos.Line, Column: pos.Column}
}

func (p *Parser) pos() cerrors.Position {
	return position(p.cur.Pos)
}

func (p *Parser) diagf(format string, args ...any) {
	p.diags.Add(p.pos(), "parser", fmt.Sprintf(format, args...))
}

// skip discards the current token, recording it.
func (p *Parser) skip() {
	p.diagf("skipping %s (%q)", p.cur.Kind, p.cur.Text)
	p.next()
}

// consume matches the current token against expected.
//
// In ModeNormal: on a match the cursor advances; on a mismatch a diagnostic
// is recorded, the parser enters ModePanic and the cursor advances past the
// offending token. END expected at true end of input is tolerated as an
// implicit close.
//
// In ModePanic consume is the resynchronization operation: tokens are
// discarded until one of kind expected appears (consumed, back to ModeNormal)
// or input runs out (recovery gives up, back to ModeNormal). Either way the
// cursor advances at least one token per mismatch, so recovery always makes
// progress on a finite stream.
func (p *Parser) consume(expected token.Kind) {
	if p.mode == ModePanic {
		for p.cur.Kind != token.EOF && p.cur.Kind != expected {
			p.skip()
		}
		p.mode = ModeNormal
		if p.cur.Kind == expected {
			p.next()
		}
		return
	}
	if p.cur.Kind == expected {
		p.next()
		return
	}
	if p.cur.Kind == token.EOF {
		if expected == token.END {
			return
		}
		p.diagf("unexpected end of input, expected %s", expected)
		return
	}
	p.diagf("unexpected token %s (%q), expected %s", p.cur.Kind, p.cur.Text, expected)
	p.mode = ModePanic
	p.next()
}

// program := BEGIN Statements END
//
// After the statement list, anything that is neither END nor BEGIN is
// skipped; a nested BEGIN or a missing END is reported as incomplete
// recovery and the built tree is returned regardless.
func (p *Parser) program() (ast.NodeID, error) {
	prog := p.tree.NewNode(ast.Program)
	p.consume(token.BEGIN)

	stmts, err := p.statements()
	if err != nil {
		return ast.None, err
	}
	p.tree.AddChild(prog, stmts)

	for p.cur.Kind != token.EOF && p.cur.Kind != token.END && p.cur.Kind != token.BEGIN {
		p.skip()
	}
	if p.cur.Kind == token.BEGIN {
		p.diagf("nested BEGIN; error recovery may not be complete")
	}
	if p.cur.Kind == token.END {
		p.consume(token.END)
	} else {
		p.diagf("missing END; error recovery may not be complete")
	}
	return prog, nil
}

// statements := Statement*  (while the lookahead can start a statement)
//
// Stops accepting statements as soon as the parser is in ModePanic; the
// caller owns skipping to its own closing token.
func (p *Parser) statements() (ast.NodeID, error) {
	stmts := p.tree.NewNode(ast.Statements)
	for p.mode == ModeNormal && token.StatementStart(p.cur.Kind) {
		stmt, err := p.statement()
		if err != nil {
			return ast.None, err
		}
		p.tree.AddChild(stmts, stmt)
	}
	return stmts, nil
}

// statement := PrintStmt | VarDecl | Assignment | ForLoop
func (p *Parser) statement() (ast.NodeID, error) {
	if p.mode == ModePanic {
		for p.cur.Kind != token.EOF && p.cur.Kind != token.END && !token.StatementStart(p.cur.Kind) {
			p.skip()
		}
		p.mode = ModeNormal
		return p.tree.NewNode(ast.ErrorRecoveryStatement), nil
	}

	switch p.cur.Kind {
	case token.PRINT:
		return p.printStatement(), nil
	case token.INTEGER, token.REAL, token.STRING:
		return p.varDeclaration(), nil
	case token.IDENT:
		return p.assignment()
	case token.FOR:
		return p.forLoop()
	default:
		// Unreachable from statements, which gates on StatementStart.
		return ast.None, &cerrors.SyntaxError{Pos: p.pos(), Got: string(p.cur.Kind), Text: p.cur.Text}
	}
}

// printStatement := PRINT StringLiteral
func (p *Parser) printStatement() ast.NodeID {
	p.consume(token.PRINT)
	lit := p.tree.NewNode(ast.StringLiteral)
	p.tree.AddChild(lit, p.tree.NewLeaf(ast.Value, p.cur.Text))
	p.consume(token.STRING_LIT)

	stmt := p.tree.NewNode(ast.PrintStatement)
	p.tree.AddChild(stmt, lit)
	return stmt
}

// varDeclaration := (INTEGER|REAL|STRING) Identifier (COMMA Identifier)*
//
// One VarDeclaration node per COMMA list; one leaf per declared name, each
// tagged with the declared type as its kind.
func (p *Parser) varDeclaration() ast.NodeID {
	declType := p.cur.Kind
	decl := p.tree.NewNode(ast.VarDeclaration)
	p.consume(declType)

	p.tree.AddChild(decl, p.tree.NewLeaf(ast.Kind(declType), p.cur.Text))
	p.consume(token.IDENT)

	for p.cur.Kind == token.COMMA {
		p.consume(token.COMMA)
		p.tree.AddChild(decl, p.tree.NewLeaf(ast.Kind(declType), p.cur.Text))
		p.consume(token.IDENT)
	}
	return decl
}

// assignment := (Identifier ASSIGN Expression)+
//
// Greedy: consecutive identifier-led assignments collapse into one statement.
// A single assignment stays a bare Assignment node; two or more are grouped
// under an Assignments node.
func (p *Parser) assignment() (ast.NodeID, error) {
	var parts []ast.NodeID
	for p.mode == ModeNormal && p.cur.Kind == token.IDENT {
		name := p.cur.Text
		variable := p.tree.NewLeaf(ast.Variable, name)
		p.consume(token.IDENT)

		asg := p.tree.NewNode(ast.Assignment)
		p.tree.AddChild(asg, variable)
		if p.cur.Kind == token.ASSIGN {
			p.consume(token.ASSIGN)
			expr, err := p.expression()
			if err != nil {
				return ast.None, err
			}
			p.tree.AddChild(asg, expr)
		} else {
			p.diagf("expected %s after variable %q, got %s", token.ASSIGN, name, p.cur.Kind)
		}
		parts = append(parts, asg)
	}

	if len(parts) == 1 {
		return parts[0], nil
	}
	group := p.tree.NewNode(ast.Assignments)
	for _, part := range parts {
		p.tree.AddChild(group, part)
	}
	return group, nil
}

// forLoop := FOR Identifier ASSIGN Expression TO Expression Statements END
//
// The ForLoop node carries the folded bound texts as its value for
// diagnostic labeling, independent of the expression children. If the token
// after FOR is not an identifier, tokens are skipped until an identifier or
// END and an ErrorRecoveryForLoop placeholder with no bounds is returned.
func (p *Parser) forLoop() (ast.NodeID, error) {
	p.consume(token.FOR)

	if p.mode == ModePanic || p.cur.Kind != token.IDENT {
		p.diagf("expected loop variable after FOR, got %s", p.cur.Kind)
		for p.cur.Kind != token.EOF && p.cur.Kind != token.IDENT && p.cur.Kind != token.END {
			p.skip()
		}
		p.mode = ModeNormal
		return p.tree.NewNode(ast.ErrorRecoveryForLoop), nil
	}

	loopVar := p.tree.NewLeaf(ast.Variable, p.cur.Text)
	p.consume(token.IDENT)
	p.consume(token.ASSIGN)

	start, err := p.expression()
	if err != nil {
		return ast.None, err
	}
	p.consume(token.TO)
	end, err := p.expression()
	if err != nil {
		return ast.None, err
	}

	body, err := p.statements()
	if err != nil {
		return ast.None, err
	}
	p.consume(token.END)

	startText, _ := p.tree.Value(start)
	endText, _ := p.tree.Value(end)
	loop := p.tree.NewLeaf(ast.ForLoop, fmt.Sprintf("START : %s, END : %s", startText, endText))
	p.tree.AddChild(loop, loopVar)
	p.tree.AddChild(loop, start)
	p.tree.AddChild(loop, end)
	p.tree.AddChild(loop, body)
	return loop, nil
}

// expression := Term (Operator Term)*
//
// Not numeric evaluation: terms fold left to right into a single textual
// value with single-space separators, no precedence ("1 + 2 * 3" stays the
// literal string "1 + 2 * 3"). If the token after an operator cannot start a
// term, the parser enters ModePanic and returns an ErrorRecoveryExpression
// placeholder without consuming further; the enclosing production owns the
// resynchronization.
func (p *Parser) expression() (ast.NodeID, error) {
	text, err := p.term()
	if err != nil {
		return ast.None, err
	}
	for p.mode == ModeNormal && p.cur.Kind == token.OPERATOR {
		op := p.cur.Text
		p.consume(token.OPERATOR)
		if !token.TermStart(p.cur.Kind) {
			p.diagf("expected operand after %q, got %s", op, p.cur.Kind)
			p.mode = ModePanic
			return p.tree.NewNode(ast.ErrorRecoveryExpression), nil
		}
		right, err := p.term()
		if err != nil {
			return ast.None, err
		}
		text = text + " " + op + " " + right
	}
	return p.tree.NewLeaf(ast.Value, text), nil
}

// term := Identifier | IntLiteral | FloatLiteral | StringLiteral
//
// A malformed term is fatal: there is no synchronization point inside a
// term, so the error propagates out of Parse.
func (p *Parser) term() (string, error) {
	if !token.TermStart(p.cur.Kind) {
		return "", &cerrors.SyntaxError{Pos: p.pos(), Got: string(p.cur.Kind), Text: p.cur.Text}
	}
	text := p.cur.Text
	p.consume(p.cur.Kind)
	return text, nil
}
