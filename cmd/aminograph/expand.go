package main

import (
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/winstonewert/aminograph/config"
	"github.com/winstonewert/aminograph/logscalar"
	"github.com/winstonewert/aminograph/persist"
	"github.com/winstonewert/aminograph/search"
)

func newExpandSearchCommand() *cobra.Command {
	var (
		rounds     int
		seed       int64
		strictGaps bool
	)

	cmd := &cobra.Command{
		Use:   "expand-search <dir>",
		Short: "Resume bucketed hill-climbing on a previously saved graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpandSearch(args[0], rounds, seed, strictGaps)
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", config.DefaultExpandRounds, "number of bucketed hill-climb rounds")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "shuffle RNG seed")
	cmd.Flags().BoolVar(&strictGaps, "strict-gap-exclusion", false, "exclude Gap from Simple-position classification")
	_ = cmd.MarkFlagRequired("seed")
	return cmd
}

func runExpandSearch(dir string, rounds int, seed int64, strictGaps bool) error {
	cfg := config.New(config.WithRounds(rounds), config.WithSeed(seed), config.WithStrictSimpleGapExclusion(strictGaps))
	if err := cfg.Validate(); err != nil {
		return err
	}

	model, err := loadModel(dir)
	if err != nil {
		return err
	}
	aln, err := loadAlignment(dir, model, cfg.StrictSimpleGapExclusion)
	if err != nil {
		return err
	}
	g, err := loadGraph(dir, model, aln)
	if err != nil {
		return err
	}

	movesLog, err := os.OpenFile(filepath.Join(dir, movesLogFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer movesLog.Close()
	roundsLog, err := os.OpenFile(filepath.Join(dir, roundsLogFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer roundsLog.Close()

	random := rand.New(rand.NewSource(cfg.Seed))

	if err := persist.SaveToDir(dir, g); err != nil {
		return err
	}

	search.RunBuckets(g, cfg.Rounds, cfg.ShuffleSize, random,
		func(entry search.MoveLog) {
			_ = appendMoveLog(movesLog, entry)
			_ = persist.SaveToDir(dir, g)
		},
		func(probability logscalar.Log) {
			_ = appendRoundsLog(roundsLog, probability)
		},
	)

	return buildReports(dir, aln, g)
}
