package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blok-lang/blok/internal/catalog"
	"github.com/blok-lang/blok/internal/config"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded parse runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}

		cat, err := catalog.Open(cfg.Catalog.Path)
		if err != nil {
			return err
		}
		defer cat.Close()

		runs, err := cat.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no recorded runs")
			return nil
		}

		for _, run := range runs {
			status := "ok"
			if run.Fatal {
				status = "fatal"
			} else if run.Diagnostics > 0 {
				status = "recovered"
			}
			fmt.Printf("%s  %-9s %s  tokens=%d statements=%d diagnostics=%d %dµs\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"), status, run.File,
				run.Tokens, run.Statements, run.Diagnostics, run.DurationUS)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
}
