package nnjoin

import (
	"github.com/winstonewert/aminograph/floodfill"
	"github.com/winstonewert/aminograph/graph"
)

// Run repeatedly finds the two of Root's current children whose actual
// residues agree at the most Standard positions, hangs a new node above
// that pair, and re-derives the three affected nodes' inherited state,
// until at most two children remain directly under Root. It then
// collapses any interior node left behind that turned out to agree with
// its parent at every position — a join that didn't earn its keep.
//
// Run operates on g's current Root children only, whatever they are when
// it is called; the CLI calls it once, immediately after graph.New,
// before any search round.
func Run(g *graph.Graph) {
	root := g.Root()

	for {
		var candidates []graph.NodeID
		for _, id := range g.NodeIDs() {
			for _, parent := range g.Node(id).Parents {
				if parent == root {
					candidates = append(candidates, id)
					break
				}
			}
		}

		if len(candidates) <= 2 {
			break
		}

		bestLHS, bestRHS, bestScore := candidates[0], candidates[1], -1
		for i := 0; i < len(candidates); i++ {
			for j := i + 1; j < len(candidates); j++ {
				score := agreementScore(g, candidates[i], candidates[j])
				if score > bestScore {
					bestLHS, bestRHS, bestScore = candidates[i], candidates[j], score
				}
			}
		}

		node := g.CreateNode(root)
		g.RemoveEdge(bestLHS, root)
		g.RemoveEdge(bestRHS, root)
		g.AddEdge(bestLHS, node)
		g.AddEdge(bestRHS, node)
		g.AddEdge(node, root)

		floodfill.Analyze(g, bestLHS, 0, graph.NullTracer{})
		floodfill.Analyze(g, bestRHS, 0, graph.NullTracer{})
		floodfill.Analyze(g, node, 0, graph.NullTracer{})
	}

	g.EnsureDerived()
	for _, id := range g.NodeIDs() {
		if !g.HasNodeID(id) || g.Node(id).Kind.Tag != graph.KindOther {
			continue
		}
		if agreesWithParentEverywhere(g, id) {
			collapse(g, id)
		}
	}
}

// agreementScore counts the Standard positions at which lhs and rhs's
// actual residues match, the similarity metric Run maximises when
// choosing which pair of children to join next.
func agreementScore(g *graph.Graph, lhs, rhs graph.NodeID) int {
	lhsAcids := g.Node(lhs).AminoAcids
	rhsAcids := g.Node(rhs).AminoAcids
	score := 0
	for i := range lhsAcids {
		if lhsAcids[i].AminoAcid == rhsAcids[i].AminoAcid {
			score++
		}
	}
	return score
}

// agreesWithParentEverywhere reports whether node's actual residue
// equals its inherited residue at every Standard position.
func agreesWithParentEverywhere(g *graph.Graph, node graph.NodeID) bool {
	for _, amino := range g.Node(node).AminoAcids {
		if amino.Inherited.Acid != amino.AminoAcid {
			return false
		}
	}
	return true
}

// collapse removes node, rewiring its children directly to its parents.
func collapse(g *graph.Graph, node graph.NodeID) {
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
	g.RemoveNode(node)
}
