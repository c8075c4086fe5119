package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blok-lang/blok/internal/compiler/ast"
	"github.com/blok-lang/blok/internal/config"
	"github.com/blok-lang/blok/internal/render"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print the syntax tree",
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

		fmt.Print(render.Text(res.Tree, res.Root))
		return nil
	},
}
