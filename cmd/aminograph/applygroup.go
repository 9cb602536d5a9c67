package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/persist"
	"github.com/winstonewert/aminograph/search"
)

func newApplyGroupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply-group <source-dir> <index> <original> <replacement> <target-dir>",
		Short: "Unify a group of nodes that share an (inherited, actual) residue pair under a new ancestor",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			original, err := aa.FromByte(args[2][0])
			if err != nil {
				return err
			}
			replacement, err := aa.FromByte(args[3][0])
			if err != nil {
				return err
			}
			return runApplyGroup(args[0], index, original, replacement, args[4])
		},
	}
	return cmd
}

func runApplyGroup(sourceDir string, index int, original, replacement aa.AminoAcid, targetDir string) error {
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

	position := fixIndex(index, aln)
	search.ApplyGroup(g, position, original, replacement)

	if err := persist.SaveToDir(targetDir, g); err != nil {
		return err
	}
	return buildReports(targetDir, aln, g)
}
