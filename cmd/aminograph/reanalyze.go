package main

import (
	"github.com/spf13/cobra"
)

func newReanalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reanalyze <dir>",
		Short: "Regenerate output.dot, stats.json, node-stats, and details.txt from a saved graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReanalyze(args[0])
		},
	}
	return cmd
}

func runReanalyze(dir string) error {
	model, err := loadModel(dir)
	if err != nil {
		return err
	}
	aln, err := loadAlignment(dir, model, false)
	if err != nil {
		return err
	}
	g, err := loadGraph(dir, model, aln)
	if err != nil {
		return err
	}
	return buildReports(dir, aln, g)
}
