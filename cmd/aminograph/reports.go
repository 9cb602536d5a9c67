package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/persist"
	"github.com/winstonewert/aminograph/ratemodel"
	"github.com/winstonewert/aminograph/report"
)

// buildReports regenerates output.dot, stats.json, node-stats, and
// details.txt for the graph currently persisted in dir. HTML and
// progress-bar rendering from the original CLI are dropped (see
// DESIGN.md); everything a plain-text or DOT consumer needs is still
// produced.
func buildReports(dir string, aln *alignment.Alignment, g *graph.Graph) error {
	logger := log()
	logger.Step("building reports in %s", dir)
	logger.Debugf("probability=%s prior=%s likelihood=%s", g.Probability(), g.Prior(), g.Likelihood())

	dotFile, err := os.Create(filepath.Join(dir, "output.dot"))
	if err != nil {
		return err
	}
	defer dotFile.Close()
	if err := report.WriteDOT(dotFile, g, aln); err != nil {
		return fmt.Errorf("aminograph: writing output.dot: %w", err)
	}

	statsFile, err := os.Create(filepath.Join(dir, "stats.json"))
	if err != nil {
		return err
	}
	defer statsFile.Close()
	encoder := json.NewEncoder(statsFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(g.FullStats()); err != nil {
		return fmt.Errorf("aminograph: writing stats.json: %w", err)
	}

	nodeStatsFile, err := os.Create(filepath.Join(dir, "node-stats"))
	if err != nil {
		return err
	}
	defer nodeStatsFile.Close()
	g.EnsureClean()
	for _, id := range g.NodeIDs() {
		if _, err := fmt.Fprintf(nodeStatsFile, "N%d %+v\n", int(id), g.Node(id).Stats); err != nil {
			return fmt.Errorf("aminograph: writing node-stats: %w", err)
		}
	}

	detailsFile, err := os.Create(filepath.Join(dir, "details.txt"))
	if err != nil {
		return err
	}
	defer detailsFile.Close()
	if err := report.WriteDetails(detailsFile, g); err != nil {
		return fmt.Errorf("aminograph: writing details.txt: %w", err)
	}

	return nil
}

// loadGraph rebuilds the graph persisted in dir against model/aln.
func loadGraph(dir string, model *ratemodel.Model, aln *alignment.Alignment) (*graph.Graph, error) {
	return persist.LoadFromDir(dir, model, aln)
}
