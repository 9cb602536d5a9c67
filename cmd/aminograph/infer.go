package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/config"
	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/logscalar"
	"github.com/winstonewert/aminograph/nnjoin"
	"github.com/winstonewert/aminograph/persist"
	"github.com/winstonewert/aminograph/search"
)

func newInferCommand() *cobra.Command {
	var (
		pamlPath   string
		rounds     int
		strictGaps bool
	)

	cmd := &cobra.Command{
		Use:   "infer <alignment.fasta> <output-dir>",
		Short: "Build a fresh ancestral-sequence DAG from a protein alignment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pamlPath == "" {
				return errors.New("aminograph infer: --paml is required (no substitution matrix is embedded in this build)")
			}
			return runInfer(args[0], args[1], pamlPath, rounds, strictGaps)
		},
	}

	cmd.Flags().StringVar(&pamlPath, "paml", "", "PAML exchangeability-matrix file")
	cmd.Flags().IntVar(&rounds, "rounds", config.DefaultInferRounds, "number of bucketed hill-climb rounds")
	cmd.Flags().BoolVar(&strictGaps, "strict-gap-exclusion", false, "exclude Gap from Simple-position classification")
	return cmd
}

func runInfer(alignmentPath, outputDir, pamlPath string, rounds int, strictGaps bool) error {
	logger := log()
	cfg := config.New(config.WithRounds(rounds), config.WithStrictSimpleGapExclusion(strictGaps))
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	if err := copyFile(pamlPath, filepath.Join(outputDir, matrixFileName)); err != nil {
		return err
	}
	if err := copyFile(alignmentPath, filepath.Join(outputDir, alignmentFileName)); err != nil {
		return err
	}

	model, err := loadModel(outputDir)
	if err != nil {
		return err
	}
	aln, err := loadAlignment(outputDir, model, cfg.StrictSimpleGapExclusion)
	if err != nil {
		return err
	}

	g := graph.New(model, aln)

	if len(aln.Positions) == 0 {
		fmt.Fprintln(os.Stderr, "All sequences are identical")
		return persist.SaveToDir(outputDir, g)
	}

	star := g.Clone()
	for position := range aln.Positions {
		star.SetAminoAcid(star.Root(), alignment.PositionIndex(position), aa.Gap)
	}

	logger.Step("building initial nearest-neighbor tree")
	nnjoin.Run(g)
	search.OptimizeParameter(g)
	search.OptimizeParameter(star)
	g.Validate()

	logger.Debugf("star parameter=%v tree parameter=%v", star.Parameter(), g.Parameter())
	if g.Probability().Less(star.Probability()) {
		logger.Step("swapping nearest-neighbor tree for preferred star phylogeny")
		g = star
	}

	movesLog, err := os.Create(filepath.Join(outputDir, movesLogFileName))
	if err != nil {
		return err
	}
	defer movesLog.Close()
	roundsLog, err := os.Create(filepath.Join(outputDir, roundsLogFileName))
	if err != nil {
		return err
	}
	defer roundsLog.Close()

	random := rand.New(rand.NewSource(config.DefaultSeed))

	for {
		g.Validate()
		logger.Step("hill climbing: %s", g.Probability())

		newGraph := g.Clone()
		logs := search.Optimize(newGraph)
		if err := writeMoveLogs(movesLog, logs); err != nil {
			return err
		}

		if g.Probability().Less(newGraph.Probability()) {
			g = newGraph
		} else {
			break
		}
	}

	if err := persist.SaveToDir(outputDir, g); err != nil {
		return err
	}

	search.RunBuckets(g, cfg.Rounds, cfg.ShuffleSize, random,
		func(entry search.MoveLog) {
			_ = appendMoveLog(movesLog, entry)
			_ = persist.SaveToDir(outputDir, g)
		},
		func(probability logscalar.Log) {
			_ = appendRoundsLog(roundsLog, probability)
		},
	)

	if err := persist.SaveToDir(outputDir, g); err != nil {
		return err
	}

	return buildReports(outputDir, aln, g)
}

func writeMoveLogs(w io.Writer, logs []search.MoveLog) error {
	for _, entry := range logs {
		if err := appendMoveLog(w, entry); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}
