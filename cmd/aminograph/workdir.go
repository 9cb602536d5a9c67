package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/moveset"
	"github.com/winstonewert/aminograph/paml"
	"github.com/winstonewert/aminograph/ratemodel"
)

const (
	matrixFileName    = "matrix.paml"
	alignmentFileName = "alignment.fasta"
	parameterFileName = "parameter.txt"
	movesLogFileName  = "moves.log"
	roundsLogFileName = "rounds.log"
)

// loadModel reads dir/matrix.paml.
func loadModel(dir string) (*ratemodel.Model, error) {
	f, err := os.Open(filepath.Join(dir, matrixFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return paml.Read(f)
}

// loadAlignment reads dir/alignment.fasta against model.
func loadAlignment(dir string, model *ratemodel.Model, strictGapExclusion bool) (*alignment.Alignment, error) {
	f, err := os.Open(filepath.Join(dir, alignmentFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return alignment.ReadAlignment(f, model, strictGapExclusion)
}

// loadParameter reads dir/parameter.txt.
func loadParameter(dir string) (float64, error) {
	raw, err := os.ReadFile(filepath.Join(dir, parameterFileName))
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
}

// standardPositionMapping returns, for every raw alignment column, the
// PositionIndex it maps to if Standard (0 for Simple columns, mirroring
// the original's fix_index/fix_indexes placeholder mapping). CLI move
// literals address positions by raw alignment-column number; the search
// engine addresses them by Standard-position number, so every move read
// from the command line is translated through this mapping before use.
func standardPositionMapping(aln *alignment.Alignment) []alignment.PositionIndex {
	mapping := make([]alignment.PositionIndex, len(aln.RawPositions))
	cursor := 0
	for i, raw := range aln.RawPositions {
		if raw.IsStandard() {
			mapping[i] = alignment.PositionIndex(cursor)
			cursor++
		}
	}
	return mapping
}

// fixIndex translates a single raw alignment-column number, as typed on
// the command line, into the Standard-position space graph.Graph uses.
func fixIndex(index int, aln *alignment.Alignment) alignment.PositionIndex {
	return standardPositionMapping(aln)[index]
}

// fixMoveIndex translates a single raw-column PositionIndex, as typed on
// the command line, into the Standard-position space moveset.Move uses.
// Only SetAminoAcid and FloodFill moves carry a Position.
func fixMoveIndex(m moveset.Move, aln *alignment.Alignment) moveset.Move {
	switch m.Kind {
	case moveset.KindSetAminoAcid, moveset.KindFloodFill:
		mapping := standardPositionMapping(aln)
		m.Position = mapping[int(m.Position)]
	}
	return m
}
