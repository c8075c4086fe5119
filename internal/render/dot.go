// Package render turns a parsed tree into text renderings: a Graphviz DOT
// digraph for external drawing tools, and an indented outline for terminals.
// It is a pure consumer of the tree's traversal contract: node identity is
// the arena handle, children are visited in stored order.
package render

import (
	"fmt"
	"strings"

	"github.com/blok-lang/blok/internal/compiler/ast"
)

// Options are the DOT graph attributes.
type Options struct {
	DPI     int    `yaml:"dpi"`
	RankDir string `yaml:"rankdir"`
	Size    string `yaml:"size"`
	Ratio   string `yaml:"ratio"`
}

func DefaultOptions() Options {
	return Options{
		DPI:     600,
		RankDir: "LR",
		Size:    "11,8.5!",
		Ratio:   "fill",
	}
}

// DOT renders the subtree rooted at root as a Graphviz digraph. Node ids in
// the output are the arena handles, so two renderings of the same tree are
// byte-identical and distinct nodes never share an id even when their labels
// are equal.
func DOT(t *ast.Tree, root ast.NodeID, opts Options) string {
	var b strings.Builder
	b.WriteString("digraph G {\n")
	fmt.Fprintf(&b, "dpi=%d;\n", opts.DPI)
	fmt.Fprintf(&b, "rankdir=%s;\n", opts.RankDir)
	fmt.Fprintf(&b, "size=%q;\n", opts.Size)
	fmt.Fprintf(&b, "ratio=%q;\n", opts.Ratio)

	ast.Walk(t, root, func(id ast.NodeID) {
		fmt.Fprintf(&b, "%d [label=\"%s\"]\n", id, escapeLabel(t.Label(id)))
		for _, child := range t.Children(id) {
			fmt.Fprintf(&b, "%d -> %d\n", id, child)
		}
	})

	b.WriteString("}")
	return b.String()
}

// Text renders the subtree rooted at root as an indented outline, one node
// per line.
func Text(t *ast.Tree, root ast.NodeID) string {
	var b strings.Builder
	var walk func(id ast.NodeID, depth int)
	walk = func(id ast.NodeID, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(t.Label(id))
		b.WriteString("\n")
		for _, child := range t.Children(id) {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
	return b.String()
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
