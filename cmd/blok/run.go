package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/blok-lang/blok/internal/catalog"
	"github.com/blok-lang/blok/internal/compiler/ast"
	"github.com/blok-lang/blok/internal/compiler/lexer"
	"github.com/blok-lang/blok/internal/compiler/parser"
	"github.com/blok-lang/blok/internal/compiler/token"
	"github.com/blok-lang/blok/internal/config"
)

// parseResult is everything one parse run produced.
type parseResult struct {
	Root  ast.NodeID
	Tree  *ast.Tree
	Diags int
	Err   error // fatal parse error, nil when recovered or clean
}

// parseFile reads, lexes and parses one source file, prints every diagnostic
// to stderr and records the run in the catalog. A fatal parse error is
// returned inside the result so callers can decide what remains usable.
func parseFile(path string, cfg *config.Config) (*parseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	source := string(data)

	start := time.Now()
	p := parser.New(lexer.New(source))
	root, parseErr := p.Parse()
	elapsed := time.Since(start)

	for _, d := range p.Diagnostics().Diagnostics {
		fmt.Fprintf(os.Stderr, "%s:%s\n", path, d.Error())
	}

	res := &parseResult{
		Root:  root,
		Tree:  p.Tree(),
		Diags: p.Diagnostics().Len(),
		Err:   parseErr,
	}
	recordRun(cfg, path, source, res, elapsed)
	return res, nil
}

func recordRun(cfg *config.Config, path, source string, res *parseResult, elapsed time.Duration) {
	cat, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		slog.Warn("catalog unavailable", "error", err)
		return
	}
	defer cat.Close()

	sum := sha256.Sum256([]byte(source))
	run := catalog.Run{
		File:        path,
		SourceSHA:   hex.EncodeToString(sum[:]),
		Tokens:      countTokens(source),
		Statements:  countStatements(res),
		Diagnostics: res.Diags,
		Fatal:       res.Err != nil,
		DurationUS:  elapsed.Microseconds(),
	}
	if res.Err != nil {
		run.Error = res.Err.Error()
	}
	if _, err := cat.Record(run); err != nil {
		slog.Warn("could not record run", "error", err)
	}
}

// countTokens enumerates a fresh scan; the parse's own token sequence is
// one-shot and already consumed.
func countTokens(source string) int {
	l := lexer.New(source)
	n := 0
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			return n
		}
		n++
	}
}

func countStatements(res *parseResult) int {
	if res.Err != nil && res.Root == ast.None {
		return 0
	}
	children := res.Tree.Children(res.Root)
	if len(children) == 0 {
		return 0
	}
	return len(res.Tree.Children(children[0]))
}
