package alignment

import "github.com/winstonewert/aminograph/aa"

// SequenceID indexes an input sequence (and its display name) within an
// Alignment. It is also used as the graph engine's NodeKind discriminant
// for leaf nodes.
type SequenceID int

// PositionIndex enumerates Standard positions only, in original column
// order. It indexes Alignment.Positions and every Node's per-position
// amino-acid state.
type PositionIndex int

// RawPositionIndex enumerates every alignment column (Standard and Simple
// alike), in original column order. It is the index space CLI move
// literals and the persisted amino_acids string use.
type RawPositionIndex int

// RawPositionKind tags a RawPosition as Standard (participates in search)
// or Simple (folded into baseline statistics once, during preprocessing).
type RawPositionKind int

const (
	RawStandard RawPositionKind = iota
	RawSimple
)

// RawPosition is one raw alignment column, before or after classification.
// Sequences holds the observed residue for every input sequence at this
// column, regardless of Kind. Reference is meaningful only when
// Kind == RawSimple: it is the single majority residue the column is
// measured against.
type RawPosition struct {
	Kind      RawPositionKind
	Reference aa.AminoAcid
	Sequences []aa.AminoAcid
}

// IsStandard reports whether this column participates in the graph search.
func (r RawPosition) IsStandard() bool { return r.Kind == RawStandard }

// PositionData is the per-Standard-position record the graph engine reads:
// the observed residues, the subset of residues occurring at least twice
// (Candidates — the only labels a structural move may assign here), and a
// full occurrence count.
type PositionData struct {
	Sequences  []aa.AminoAcid
	Candidates []aa.AminoAcid
	Counts     aa.Map[int]
}
