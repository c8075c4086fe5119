package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blok-lang/blok/internal/compiler/ast"
	"github.com/blok-lang/blok/internal/config"
	"github.com/blok-lang/blok/internal/render"
)

var (
	dotOutput string
	dotRender bool
	dotOpen   bool
)

var dotCmd = &cobra.Command{
	Use:   "dot <file>",
	Short: "Emit a Graphviz DOT rendering of the syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}

		res, err := parseFile(args[0], cfg)
		if err != nil {
			return err
		}
		if res.Err != nil && res.Root == ast.None {
			return fmt.Errorf("%s: %w", args[0], res.Err)
		}
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], res.Err)
		}

		if dotOpen {
			dotRender = true
		}
		if dotRender && dotOutput == "" {
			dotOutput = "parse_tree.dot"
		}

		text := render.DOT(res.Tree, res.Root, cfg.Render)
		if dotOutput == "" {
			fmt.Println(text)
			return nil
		}
		if err := os.WriteFile(dotOutput, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dotOutput, err)
		}

		if !dotRender {
			return nil
		}
		png := strings.TrimSuffix(dotOutput, ".dot") + ".png"
		if out, err := exec.Command("dot", "-Tpng", dotOutput, "-o", png).CombinedOutput(); err != nil {
			return fmt.Errorf("running dot: %w\n%s", err, out)
		}
		if dotOpen {
			return openFile(png)
		}
		return nil
	},
}

func init() {
	dotCmd.Flags().StringVarP(&dotOutput, "output", "o", "", "write DOT text to this file instead of stdout")
	dotCmd.Flags().BoolVar(&dotRender, "render", false, "run 'dot -Tpng' on the output file")
	dotCmd.Flags().BoolVar(&dotOpen, "open", false, "open the rendered image (implies --render)")
}

func openFile(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
