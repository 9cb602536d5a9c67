package moveset

import (
	"github.com/winstonewert/aminograph/floodfill"
	"github.com/winstonewert/aminograph/graph"
)

// Apply performs m against g, which must already satisfy m.Valid(g,
// guide), and returns the nodes whose neighbourhood a follow-up
// analyze-amino-acids probe may improve. guide is read-only: Apply never
// recomputes or mutates it, matching the fixed-snapshot contract a
// caller applying several moves in sequence must uphold (recompute a
// fresh Guide between moves).
func (m Move) Apply(g *graph.Graph, guide *Guide, tracer graph.Tracer) []graph.NodeID {
	switch m.Kind {
	case KindRefactor:
		return applyRefactor(g, guide, m.A, m.B, tracer)
	case KindRemove:
		return applyRemove(g, guide, m.A, tracer)
	case KindAddEdge:
		return applyAddEdge(g, guide, m.A, m.B)
	case KindRemoveEdge:
		g.RemoveEdge(m.A, m.B)
		return []graph.NodeID{m.A, m.B}
	case KindChangeEdge:
		g.RemoveEdge(m.A, m.B)
		g.AddEdge(m.A, m.C)
		return []graph.NodeID{m.A, m.B, m.C}
	case KindReparent:
		return applyReparent(g, m.A, m.B)
	case KindSetAminoAcid:
		g.SetAminoAcid(m.A, m.Position, m.AminoAcid)
		return nil
	case KindFloodFill:
		floodfill.Run(g, m.A, m.Position, m.AminoAcid, -1, tracer)
		return nil
	default:
		panic("moveset: unknown move kind")
	}
}

func applyRefactor(g *graph.Graph, guide *Guide, lhs, rhs graph.NodeID, tracer graph.Tracer) []graph.NodeID {
	var commonParents []graph.NodeID
	for _, p := range g.Node(lhs).Parents {
		if contains(g.Node(rhs).Parents, p) {
			commonParents = append(commonParents, p)
		}
	}

	if len(commonParents) == 0 {
		for i := len(guide.Order) - 1; i >= 0; i-- {
			node := guide.Order[i]
			if node == lhs || node == rhs {
				continue
			}
			if guide.reachableFrom(lhs, node) && guide.reachableFrom(rhs, node) {
				commonParents = append(commonParents, node)
				break
			}
		}
	}

	newNodeID := g.CreateNode(commonParents[0])

	for _, parent := range commonParents {
		g.RemoveEdge(lhs, parent)
		g.RemoveEdge(rhs, parent)
		g.AddEdge(newNodeID, parent)
	}

	toReconsider := append([]graph.NodeID{newNodeID, lhs, rhs}, commonParents...)

	g.AddEdge(lhs, newNodeID)
	g.AddEdge(rhs, newNodeID)

	return toReconsider
}

func applyRemove(g *graph.Graph, guide *Guide, node graph.NodeID, tracer graph.Tracer) []graph.NodeID {
	floodfill.Analyze(g, node, -1, tracer)

	children := append([]graph.NodeID(nil), g.Node(node).Children...)
	parents := append([]graph.NodeID(nil), g.Node(node).Parents...)

	for _, child := range children {
		g.RemoveEdge(child, node)
		var other []graph.NodeID
		for _, p := range g.Node(child).Parents {
			if p != node {
				other = append(other, p)
			}
		}
		for _, parent := range parents {
			redundant := false
			for _, o := range other {
				if guide.reachableFrom(o, parent) {
					redundant = true
					break
				}
			}
			if !redundant {
				g.AddEdge(child, parent)
			}
		}
	}
	for _, parent := range parents {
		g.RemoveEdge(node, parent)
	}

	g.RemoveNode(node)

	return append(children, parents...)
}

func applyAddEdge(g *graph.Graph, guide *Guide, lhs, rhs graph.NodeID) []graph.NodeID {
	g.AddEdge(lhs, rhs)
	for _, child := range append([]graph.NodeID(nil), g.Node(rhs).Children...) {
		if guide.reachableFrom(child, lhs) {
			g.RemoveEdge(child, rhs)
		}
	}
	return []graph.NodeID{lhs, rhs}
}

func applyReparent(g *graph.Graph, child, parent graph.NodeID) []graph.NodeID {
	oldParents := append([]graph.NodeID(nil), g.Node(child).Parents...)
	for _, old := range oldParents {
		g.RemoveEdge(child, old)
	}
	g.AddEdge(child, parent)

	return append([]graph.NodeID{child, parent}, oldParents...)
}

// QuickCleanup repeatedly removes any non-leaf node with fewer than two
// children, rewiring its children to its parents (promoting a child to
// Root if the removed node was Root), until no such node remains.
func QuickCleanup(g *graph.Graph) {
	for {
		var dead []graph.NodeID
		for _, id := range g.NodeIDs() {
			node := g.Node(id)
			if !node.Kind.IsLeaf() && len(node.Children) < 2 {
				dead = append(dead, id)
			}
		}
		if len(dead) == 0 {
			return
		}

		for _, node := range dead {
			if !g.HasNodeID(node) {
				continue
			}
			children := append([]graph.NodeID(nil), g.Node(node).Children...)
			parents := append([]graph.NodeID(nil), g.Node(node).Parents...)

			for _, child := range children {
				g.RemoveEdge(child, node)
				for _, parent := range parents {
					g.AddEdge(child, parent)
				}
			}
			for _, parent := range parents {
				g.RemoveEdge(node, parent)
			}
			if g.Node(node).Kind.Tag == graph.KindRoot {
				g.MakeRoot(children[0])
			}
			g.RemoveNode(node)
		}
	}
}
