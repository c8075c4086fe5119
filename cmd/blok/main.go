package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blok",
	Short: "blok - front-end for the blok toy language",
	Long: `blok tokenizes and parses blok source files (BEGIN/END blocks with
typed declarations, assignments, PRINT and bounded FOR loops) and renders
the resulting syntax tree.

Commands:
  tokens   Dump the token stream for a source file
  parse    Parse a source file and print the syntax tree
  dot      Emit a Graphviz DOT rendering of the syntax tree
  history  List recorded parse runs
`,
	SilenceUsage: true,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd.AddCommand(tokensCmd, parseCmd, dotCmd, historyCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
