package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/winstonewert/aminograph/search"
)

func newBenchMovesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench-moves <dir>",
		Short: "Time one Optimize pass over a saved graph, without persisting the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchMoves(args[0])
		},
	}
	return cmd
}

func runBenchMoves(dir string) error {
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

	g.Compact()
	g.Probability()

	start := time.Now()
	search.Optimize(g)
	log().Step("optimize pass took %s", time.Since(start))
	return nil
}
