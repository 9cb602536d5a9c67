package moveset

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/graph"
)

// Kind discriminates the eight structural/amino-acid move variants.
type Kind int

const (
	KindRefactor Kind = iota
	KindRemove
	KindAddEdge
	KindRemoveEdge
	KindChangeEdge
	KindReparent
	KindSetAminoAcid
	KindFloodFill
)

// Move is a single structural or amino-acid mutation, in the uniform
// shape the search driver enumerates, validates, and applies. Which
// fields are meaningful depends on Kind; see the constructors below for
// the field each one actually reads.
type Move struct {
	Kind    Kind
	A, B, C graph.NodeID
	// Position is a Standard-position index, the space graph.Graph itself
	// uses. String/Parse read and write it as a bare integer; translating
	// between that and the CLI's raw alignment-column numbering is the
	// caller's responsibility (see alignment.RawPositionIndex).
	Position  alignment.PositionIndex
	AminoAcid aa.AminoAcid
}

// Refactor inserts a new node above lhs and rhs's common ancestry.
func Refactor(lhs, rhs graph.NodeID) Move { return Move{Kind: KindRefactor, A: lhs, B: rhs} }

// Remove bypasses and deletes node.
func Remove(node graph.NodeID) Move { return Move{Kind: KindRemove, A: node} }

// AddEdge adds the parent edge lhs -> rhs.
func AddEdge(lhs, rhs graph.NodeID) Move { return Move{Kind: KindAddEdge, A: lhs, B: rhs} }

// RemoveEdge removes the parent edge source -> destination.
func RemoveEdge(source, destination graph.NodeID) Move {
	return Move{Kind: KindRemoveEdge, A: source, B: destination}
}

// ChangeEdge replaces the parent edge source -> destination with
// source -> newDestination.
func ChangeEdge(source, destination, newDestination graph.NodeID) Move {
	return Move{Kind: KindChangeEdge, A: source, B: destination, C: newDestination}
}

// Reparent drops all of child's parents and adds child -> parent.
func Reparent(child, parent graph.NodeID) Move {
	return Move{Kind: KindReparent, A: child, B: parent}
}

// SetAminoAcid assigns node's actual residue at position.
func SetAminoAcid(node graph.NodeID, position alignment.PositionIndex, acid aa.AminoAcid) Move {
	return Move{Kind: KindSetAminoAcid, A: node, Position: position, AminoAcid: acid}
}

// FloodFill runs the flood-fill optimiser at (node, position, acid).
func FloodFill(node graph.NodeID, position alignment.PositionIndex, acid aa.AminoAcid) Move {
	return Move{Kind: KindFloodFill, A: node, Position: position, AminoAcid: acid}
}

func nodeLabel(id graph.NodeID) string { return fmt.Sprintf("N%d", int(id)) }

// String renders a Move in the CLI's literal syntax, e.g.
// "refactor:N1,N2" or "set-amino-acid:N3@4=A".
func (m Move) String() string {
	switch m.Kind {
	case KindRefactor:
		return fmt.Sprintf("refactor:%s,%s", nodeLabel(m.A), nodeLabel(m.B))
	case KindRemove:
		return fmt.Sprintf("remove:%s", nodeLabel(m.A))
	case KindAddEdge:
		return fmt.Sprintf("add-edge:%s-%s", nodeLabel(m.A), nodeLabel(m.B))
	case KindRemoveEdge:
		return fmt.Sprintf("remove-edge:%s-%s", nodeLabel(m.A), nodeLabel(m.B))
	case KindChangeEdge:
		return fmt.Sprintf("change-edge:%s-%s,%s", nodeLabel(m.A), nodeLabel(m.B), nodeLabel(m.C))
	case KindReparent:
		return fmt.Sprintf("reparent:%s-%s", nodeLabel(m.A), nodeLabel(m.B))
	case KindSetAminoAcid:
		return fmt.Sprintf("set-amino-acid:%s@%d=%s", nodeLabel(m.A), int(m.Position), string(m.AminoAcid.Byte()))
	case KindFloodFill:
		return fmt.Sprintf("flood:%s@%d=%s", nodeLabel(m.A), int(m.Position), string(m.AminoAcid.Byte()))
	default:
		panic("moveset: unknown move kind")
	}
}

var (
	reRefactor     = regexp.MustCompile(`^refactor:(N\d+),(N\d+)$`)
	reRemove       = regexp.MustCompile(`^remove:(N\d+)$`)
	reAddEdge      = regexp.MustCompile(`^add-edge:(N\d+)-(N\d+)$`)
	reRemoveEdge   = regexp.MustCompile(`^remove-edge:(N\d+)-(N\d+)$`)
	reChangeEdge   = regexp.MustCompile(`^change-edge:(N\d+)-(N\d+),(N\d+)$`)
	reReparent     = regexp.MustCompile(`^reparent:(N\d+)-(N\d+)$`)
	reSetAminoAcid = regexp.MustCompile(`^set-amino-acid:(N\d+)@(\d+)=(.)$`)
	reFloodFill    = regexp.MustCompile(`^flood:(N\d+)@(\d+)=(.)$`)
)

func parseNode(label string) graph.NodeID {
	n, err := strconv.Atoi(label[1:])
	if err != nil {
		panic(err)
	}
	return graph.NodeID(n)
}

// Parse parses a Move from its literal syntax (the inverse of String).
func Parse(s string) (Move, error) {
	if m := reRefactor.FindStringSubmatch(s); m != nil {
		return Refactor(parseNode(m[1]), parseNode(m[2])), nil
	}
	if m := reRemove.FindStringSubmatch(s); m != nil {
		return Remove(parseNode(m[1])), nil
	}
	if m := reAddEdge.FindStringSubmatch(s); m != nil {
		return AddEdge(parseNode(m[1]), parseNode(m[2])), nil
	}
	if m := reRemoveEdge.FindStringSubmatch(s); m != nil {
		return RemoveEdge(parseNode(m[1]), parseNode(m[2])), nil
	}
	if m := reChangeEdge.FindStringSubmatch(s); m != nil {
		return ChangeEdge(parseNode(m[1]), parseNode(m[2]), parseNode(m[3])), nil
	}
	if m := reReparent.FindStringSubmatch(s); m != nil {
		return Reparent(parseNode(m[1]), parseNode(m[2])), nil
	}
	if m := reSetAminoAcid.FindStringSubmatch(s); m != nil {
		position, err := strconv.Atoi(m[2])
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, s)
		}
		acid, err := aa.FromByte(m[3][0])
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, s)
		}
		return SetAminoAcid(parseNode(m[1]), alignment.PositionIndex(position), acid), nil
	}
	if m := reFloodFill.FindStringSubmatch(s); m != nil {
		position, err := strconv.Atoi(m[2])
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, s)
		}
		acid, err := aa.FromByte(m[3][0])
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, s)
		}
		return FloodFill(parseNode(m[1]), alignment.PositionIndex(position), acid), nil
	}
	return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, s)
}
