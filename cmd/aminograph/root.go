package main

import (
	"github.com/spf13/cobra"

	"github.com/winstonewert/aminograph/tracer"
)

var verbose bool

// newRootCommand builds the full aminograph command tree.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "aminograph",
		Short: "Infer and inspect ancestral-sequence DAGs over a protein alignment",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug-level messages to stderr")

	root.AddCommand(
		newInferCommand(),
		newExpandSearchCommand(),
		newApplyMoveCommand(),
		newApplyGroupCommand(),
		newDebugMoveCommand(),
		newBenchMovesCommand(),
		newReanalyzeCommand(),
	)
	return root
}

// log returns the CLI's shared stderr logger, at debug level when
// --verbose is set.
func log() tracer.Logger { return tracer.StderrLogger(verbose) }
