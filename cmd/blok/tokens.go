package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blok-lang/blok/internal/compiler/lexer"
	"github.com/blok-lang/blok/internal/compiler/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		l := lexer.New(string(data))
		for {
			tok := l.NextToken()
			if tok.Kind == token.EOF {
				return nil
			}
			fmt.Printf("%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Text)
		}
	},
}
