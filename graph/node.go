package graph

import (
	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/ratemodel"
	"github.com/winstonewert/aminograph/stats"
)

// NodeID is a stable handle into a Graph's node arena. It never changes
// value for the lifetime of a node and is never reused while the node is
// live; Compact renumbers handles only as an explicit, opt-in operation.
type NodeID int

// NodeKindTag discriminates the three roles a node can play.
type NodeKindTag int

const (
	KindRoot NodeKindTag = iota
	KindLeaf
	KindOther
)

// NodeKind tags a node as the unique Root, a Leaf bound to one input
// sequence, or an Other (interior) node created by a structural move.
// Sequence is meaningful only when Tag == KindLeaf.
type NodeKind struct {
	Tag      NodeKindTag
	Sequence alignment.SequenceID
}

// RootKind returns the Root node kind.
func RootKind() NodeKind { return NodeKind{Tag: KindRoot} }

// LeafKind returns the Leaf node kind bound to sequence.
func LeafKind(sequence alignment.SequenceID) NodeKind {
	return NodeKind{Tag: KindLeaf, Sequence: sequence}
}

// OtherKind returns the Other (interior) node kind.
func OtherKind() NodeKind { return NodeKind{Tag: KindOther} }

// IsLeaf reports whether this kind is Leaf.
func (k NodeKind) IsLeaf() bool { return k.Tag == KindLeaf }

// Inheritance is the (residue, height) pair folded over a node's parents:
// the residue of the deepest ancestor chain, or Unknown if two parents'
// chains reach the same height with different residues.
type Inheritance struct {
	Acid   aa.AminoAcid
	Height uint8
}

// newInheritance returns the fold's starting value, and the Root's
// conceptual inherited value.
func newInheritance() Inheritance {
	return Inheritance{Acid: aa.Gap, Height: 0}
}

// Update folds one more parent's NodeAminoAcid into the running
// inheritance, per the deepest-chain-wins / tie-breaks-to-Unknown rule.
func (in Inheritance) Update(parent NodeAminoAcid) Inheritance {
	switch {
	case parent.Height > in.Height:
		return Inheritance{Acid: parent.AminoAcid, Height: parent.Height}
	case parent.Height == in.Height && parent.AminoAcid != in.Acid:
		return Inheritance{Acid: aa.Unknown, Height: in.Height}
	default:
		return in
	}
}

// Changes reports 0 if other matches the inherited residue, 1 otherwise —
// the per-position transition count the flood-fill optimiser minimizes.
func (in Inheritance) Changes(other aa.AminoAcid) int {
	if in.Acid == other {
		return 0
	}
	return 1
}

// NodeAminoAcid is one node's state at one Standard position: the actual
// residue, the inherited value folded from parents (absent until
// EnsureDerived computes it), whether this position is pending
// re-propagation to children, and the height used to break inheritance
// ties.
type NodeAminoAcid struct {
	Inherited    Inheritance
	HasInherited bool
	AminoAcid    aa.AminoAcid
	Pending      bool
	Height       uint8
}

// Node is one vertex of the DAG: its kind, parent/child handles, actual
// amino-acid state at every Standard position, cached statistics (nil
// until EnsureClean computes them), and dirty-tracking flags.
//
// Node values are never mutated after being stored in a Graph's slab — a
// Graph obtained via Clone shares *Node pointers with its source, and
// mutation always goes through uniqueNode, which replaces the slab entry
// with a fresh *Node rather than editing the shared one in place.
type Node struct {
	Kind           NodeKind
	Parents        []NodeID
	Children       []NodeID
	AminoAcids     []NodeAminoAcid
	Stats          *stats.Stats
	ParentsDirty   bool
	DirtyPositions []alignment.PositionIndex
}

// clone returns a deep copy safe to mutate independently of n: Parents,
// Children, AminoAcids, and DirtyPositions get fresh backing arrays.
// Stats, if present, is never mutated in place (always replaced wholesale)
// so sharing the pointer is safe.
func (n *Node) clone() *Node {
	return &Node{
		Kind:           n.Kind,
		Parents:        append([]NodeID(nil), n.Parents...),
		Children:       append([]NodeID(nil), n.Children...),
		AminoAcids:     append([]NodeAminoAcid(nil), n.AminoAcids...),
		Stats:          n.Stats,
		ParentsDirty:   n.ParentsDirty,
		DirtyPositions: append([]alignment.PositionIndex(nil), n.DirtyPositions...),
	}
}

// hasParent reports whether parent appears in n.Parents.
func (n *Node) hasParent(parent NodeID) bool {
	for _, p := range n.Parents {
		if p == parent {
			return true
		}
	}
	return false
}

// hasChild reports whether child appears in n.Children.
func (n *Node) hasChild(child NodeID) bool {
	for _, c := range n.Children {
		if c == child {
			return true
		}
	}
	return false
}

// removeNodeID returns ids with every occurrence of target removed,
// preserving order.
func removeNodeID(ids []NodeID, target NodeID) []NodeID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// computeInheritedForPosition folds position's NodeAminoAcid across n's
// current parents, reading parent state from nodes.
func (n *Node) computeInheritedForPosition(nodes *nodeSlab, position alignment.PositionIndex) Inheritance {
	inheritance := newInheritance()
	for _, parent := range n.Parents {
		inheritance = inheritance.Update(nodes.MustGet(parent).AminoAcids[position])
	}
	return inheritance
}

// computeHeightForPosition derives a node's height at position from its
// already-computed Inherited value: the inherited height, bumped by one
// whenever the actual residue diverges from the inherited residue.
func (n *Node) computeHeightForPosition(position alignment.PositionIndex) uint8 {
	inherited := n.AminoAcids[position].Inherited
	if inherited.Acid == n.AminoAcids[position].AminoAcid {
		return inherited.Height
	}
	return inherited.Height + 1
}

// computeStats recomputes this node's Stats record from scratch: the
// alignment's baseline contribution for this node's kind, folded with
// per-position insert/delete/transition/penalty events and the two
// structural penalties (isolated non-root, under-branched non-leaf).
func (n *Node) computeStats(aln *alignment.Alignment, model *ratemodel.Model) stats.Stats {
	var s stats.Stats
	switch n.Kind.Tag {
	case KindRoot:
		s = aln.RootStats
	case KindLeaf:
		s = aln.SequenceStats[n.Kind.Sequence]
	default:
		s = aln.OtherStats
	}

	if n.Kind.Tag == KindRoot {
		for _, na := range n.AminoAcids {
			if na.AminoAcid.IsResidue() {
				s.Initial.Record(true)
				s.InsertProbability = s.InsertProbability.Mul(model.Initial(na.AminoAcid))
			}
		}
		s.Initial.Record(false)
	} else {
		for _, na := range n.AminoAcids {
			inherited := na.Inherited.Acid
			switch {
			case na.AminoAcid == aa.Unknown:
				// no contribution
			case inherited == aa.Gap && na.AminoAcid == aa.Gap:
				// no contribution
			case inherited == aa.Gap:
				s.Inserts.Record(true)
				s.InsertProbability = s.InsertProbability.Mul(model.Initial(na.AminoAcid))
			case na.AminoAcid == aa.Gap:
				s.Deletes.Record(true)
				s.Inserts.Record(false)
			case inherited == aa.Unknown:
				s.Penalty++
			default:
				s.Deletes.Record(false)
				s.Inserts.Record(false)
				s.RecordTransition(inherited, na.AminoAcid)
			}
		}
		s.Inserts.Record(false)
	}

	if n.Kind.Tag != KindRoot && len(n.Parents) < 1 {
		s.Penalty++
	}
	if !n.Kind.IsLeaf() && len(n.Children) < 2 {
		s.Penalty++
	}

	return s
}
