package moveset

import "github.com/winstonewert/aminograph/graph"

func contains(ids []graph.NodeID, target graph.NodeID) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

// Valid reports whether m may be applied to g, given the reachability
// closure in guide. guide must have been computed against g's current
// state — a Guide taken before an earlier move in the same batch is
// stale and will misjudge cycles.
func (m Move) Valid(g *graph.Graph, guide *Guide) bool {
	switch m.Kind {
	case KindRefactor:
		return g.HasNodeID(m.A) && g.HasNodeID(m.B) &&
			g.Node(m.A).Kind.Tag != graph.KindRoot &&
			g.Node(m.B).Kind.Tag != graph.KindRoot

	case KindRemove:
		return g.HasNodeID(m.A) && g.Node(m.A).Kind.Tag == graph.KindOther

	case KindAddEdge:
		if !g.HasNodeID(m.A) || !g.HasNodeID(m.B) {
			return false
		}
		lhs, rhs := g.Node(m.A), g.Node(m.B)
		return !contains(lhs.Parents, m.B) &&
			!guide.reachableFrom(m.B, m.A) &&
			lhs.Kind.Tag != graph.KindRoot &&
			!rhs.Kind.IsLeaf()

	case KindRemoveEdge:
		if !g.HasNodeID(m.A) || !g.HasNodeID(m.B) {
			return false
		}
		source := g.Node(m.A)
		return contains(source.Parents, m.B) && len(source.Parents) != 1

	case KindChangeEdge:
		if !g.HasNodeID(m.A) || !g.HasNodeID(m.B) || !g.HasNodeID(m.C) {
			return false
		}
		source := g.Node(m.A)
		newDestination := g.Node(m.C)
		return contains(source.Parents, m.B) &&
			!guide.reachableFrom(m.C, m.A) &&
			!newDestination.Kind.IsLeaf()

	case KindReparent:
		if !g.HasNodeID(m.A) || !g.HasNodeID(m.B) {
			return false
		}
		child, parent := g.Node(m.A), g.Node(m.B)
		return !guide.reachableFrom(m.B, m.A) &&
			child.Kind.Tag != graph.KindRoot &&
			!parent.Kind.IsLeaf()

	case KindSetAminoAcid, KindFloodFill:
		if !g.HasNodeID(m.A) {
			return false
		}
		node := g.Node(m.A)
		return !node.Kind.IsLeaf() && node.AminoAcids[m.Position].AminoAcid != m.AminoAcid

	default:
		return false
	}
}
