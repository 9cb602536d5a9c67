package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/winstonewert/aminograph/moveset"
	"github.com/winstonewert/aminograph/search"
	"github.com/winstonewert/aminograph/tracer"
)

func newDebugMoveCommand() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "debug-move <source-dir> <move>",
		Short: "Trace the scoring of a single candidate move without committing it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDebugMove(args[0], args[1], prefix)
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "label prefixed to every traced value")
	return cmd
}

func runDebugMove(sourceDir, moveLiteral, prefix string) error {
	model, err := loadModel(sourceDir)
	if err != nil {
		return err
	}
	aln, err := loadAlignment(sourceDir, model, false)
	if err != nil {
		return err
	}
	g, err := loadGraph(sourceDir, model, aln)
	if err != nil {
		return err
	}

	m, err := moveset.Parse(moveLiteral)
	if err != nil {
		return err
	}
	m = fixMoveIndex(m, aln)

	traceLogger := tracer.NewLogger(os.Stderr, true)
	trace := traceLogger.Tracer(prefix)

	candidate := search.DebugMove(g, m, trace)

	trace.Data("graph-probability", g.ProbabilityTraced(trace))
	trace.Data("new-probability", candidate.ProbabilityTraced(trace))
	return nil
}
