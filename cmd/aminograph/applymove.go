package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/winstonewert/aminograph/moveset"
	"github.com/winstonewert/aminograph/persist"
	"github.com/winstonewert/aminograph/search"
)

func newApplyMoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply-move <source-dir> <target-dir> <move>...",
		Short: "Replay one or more move literals against a saved graph, writing the result to a new directory",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApplyMove(args[0], args[1], args[2:])
		},
	}
	return cmd
}

func runApplyMove(sourceDir, targetDir string, moveLiterals []string) error {
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}
	for _, name := range []string{matrixFileName, parameterFileName, alignmentFileName} {
		if err := copyFile(filepath.Join(sourceDir, name), filepath.Join(targetDir, name)); err != nil {
			return err
		}
	}

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

	moves := make([]moveset.Move, len(moveLiterals))
	for i, literal := range moveLiterals {
		m, err := moveset.Parse(literal)
		if err != nil {
			return err
		}
		moves[i] = fixMoveIndex(m, aln)
	}

	search.ApplyMutation(g, moves)

	if err := persist.SaveToDir(targetDir, g); err != nil {
		return err
	}
	return buildReports(targetDir, aln, g)
}
