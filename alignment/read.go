package alignment

import (
	"fmt"
	"io"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/fasta"
	"github.com/winstonewert/aminograph/ratemodel"
	"github.com/winstonewert/aminograph/stats"
)

// Alignment is the fully preprocessed input to the graph engine: display
// names, every raw column (classified Standard/Simple), the Standard-only
// position data the search operates on, and the baseline statistics
// contributed once, during preprocessing, by Simple columns.
type Alignment struct {
	SequenceIDs   []string
	RawPositions  []RawPosition
	Positions     []PositionData
	RootStats     stats.Stats
	OtherStats    stats.Stats
	SequenceStats []stats.Stats
}

// ReadAlignment parses a FASTA multiple sequence alignment, classifies each
// column, and folds Simple-column contributions into baseline statistics
// using model's stationary frequencies. strictGapExclusion selects the
// Simple-position classifier variant (see classifyColumn).
func ReadAlignment(r io.Reader, model *ratemodel.Model, strictGapExclusion bool) (*Alignment, error) {
	records, err := fasta.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	length := len(records[0].Sequence)
	sequenceIDs := make([]string, len(records))
	sequences := make([][]aa.AminoAcid, len(records))
	for i, rec := range records {
		if len(rec.Sequence) != length {
			return nil, fmt.Errorf("%w: %q has length %d, want %d", ErrUnequalLength, rec.ID, len(rec.Sequence), length)
		}
		sequenceIDs[i] = rec.ID
		row := make([]aa.AminoAcid, length)
		for col, letter := range rec.Sequence {
			acid, err := aa.FromByte(letter)
			if err != nil {
				return nil, fmt.Errorf("alignment: sequence %q: %w", rec.ID, err)
			}
			row[col] = acid
		}
		sequences[i] = row
	}

	rawPositions := make([]RawPosition, length)
	for col := 0; col < length; col++ {
		column := make([]aa.AminoAcid, len(records))
		for seq := range records {
			column[seq] = sequences[seq][col]
		}
		rawPositions[col] = classifyColumn(column, strictGapExclusion)
	}

	var positions []PositionData
	for _, raw := range rawPositions {
		if raw.IsStandard() {
			positions = append(positions, newPositionData(raw.Sequences))
		}
	}

	rootStats := stats.Zero()
	otherStats := stats.Zero()
	sequenceStats := make([]stats.Stats, len(records))
	for i := range sequenceStats {
		sequenceStats[i] = stats.Zero()
	}

	for _, raw := range rawPositions {
		if raw.IsStandard() {
			continue
		}
		reference := raw.Reference

		if reference == aa.Gap {
			for seqID, acid := range raw.Sequences {
				if acid != reference && acid != aa.Unknown {
					sequenceStats[seqID].Inserts.Record(true)
					sequenceStats[seqID].InsertProbability = sequenceStats[seqID].InsertProbability.Mul(model.Initial(acid))
				}
			}
			continue
		}

		rootStats.Initial.Record(true)
		rootStats.InsertProbability = rootStats.InsertProbability.Mul(model.Initial(reference))

		otherStats.Inserts.Record(false)
		otherStats.RecordTransition(reference, reference)
		otherStats.Deletes.Record(false)

		for seqID, acid := range raw.Sequences {
			switch {
			case acid == reference:
				sequenceStats[seqID].Inserts.Record(false)
				sequenceStats[seqID].RecordTransition(reference, acid)
				sequenceStats[seqID].Deletes.Record(false)
			case acid == aa.Gap:
				sequenceStats[seqID].Inserts.Record(false)
				sequenceStats[seqID].Deletes.Record(true)
			case acid != aa.Unknown:
				sequenceStats[seqID].Inserts.Record(false)
				sequenceStats[seqID].RecordTransition(reference, acid)
				sequenceStats[seqID].Deletes.Record(false)
			}
		}
	}

	return &Alignment{
		SequenceIDs:   sequenceIDs,
		RawPositions:  rawPositions,
		Positions:     positions,
		RootStats:     rootStats,
		OtherStats:    otherStats,
		SequenceStats: sequenceStats,
	}, nil
}
