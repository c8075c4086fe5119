package render

import (
	"strings"
	"testing"

	"github.com/blok-lang/blok/internal/compiler/ast"
	"github.com/blok-lang/blok/internal/compiler/lexer"
	"github.com/blok-lang/blok/internal/compiler/parser"
)

func parseTree(t *testing.T, input string) (*ast.Tree, ast.NodeID) {
	t.Helper()
	p := parser.New(lexer.New(input))
	root, err := p.Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return p.Tree(), root
}

func TestDOTStructure(t *testing.T) {
	tree, root := parseTree(t, `BEGIN PRINT "HI" END`)
	out := DOT(tree, root, DefaultOptions())

	for _, want := range []string{
		"digraph G {",
		"dpi=600;",
		"rankdir=LR;",
		`size="11,8.5!";`,
		`ratio="fill";`,
		`[label="Program"]`,
		`[label="Statements"]`,
		`[label="PrintStatement"]`,
		`[label="Value: HI"]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "}") {
		t.Error("output not closed")
	}

	// One edge per parent/child pair.
	if got := strings.Count(out, " -> "); got != 4 {
		t.Errorf("expected 4 edges, got %d", got)
	}
}

// Rendering is deterministic: same tree, byte-identical output.
func TestDOTDeterministic(t *testing.T) {
	tree, root := parseTree(t, `BEGIN INTEGER A, B A := 1 + 2 END`)
	first := DOT(tree, root, DefaultOptions())
	second := DOT(tree, root, DefaultOptions())
	if first != second {
		t.Error("two renderings of the same tree differ")
	}
}

// Equal labels never collapse into one graph node: identity comes from the
// arena handle, not the content.
func TestDOTDistinctNodesForEqualContent(t *testing.T) {
	tree := ast.NewTree()
	root := tree.NewNode(ast.Statements)
	a := tree.NewLeaf(ast.Value, "same")
	b := tree.NewLeaf(ast.Value, "same")
	tree.AddChild(root, a)
	tree.AddChild(root, b)

	out := DOT(tree, root, DefaultOptions())
	if got := strings.Count(out, `[label="Value: same"]`); got != 2 {
		t.Errorf("expected 2 distinct nodes, got %d:\n%s", got, out)
	}
}

func TestDOTEscapesLabels(t *testing.T) {
	tree := ast.NewTree()
	leaf := tree.NewLeaf(ast.Value, "say \"hi\"\nagain")

	out := DOT(tree, leaf, DefaultOptions())
	if !strings.Contains(out, `say \"hi\"\nagain`) {
		t.Errorf("label not escaped:\n%s", out)
	}
}

func TestText(t *testing.T) {
	tree, root := parseTree(t, `BEGIN PRINT "HI" END`)
	out := Text(tree, root)

	want := "Program\n" +
		"  Statements\n" +
		"    PrintStatement\n" +
		"      StringLiteral\n" +
		"        Value: HI\n"
	if out != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, out)
	}
}
