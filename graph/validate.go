package graph

import (
	"fmt"

	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/slab"
	"github.com/winstonewert/aminograph/stats"
)

// Validate recomputes every derived value from scratch and panics if it
// disagrees with what the graph currently has cached. It exists for tests
// and debugging, never for production control flow: a panic here means a
// dirty-tracking or copy-on-write invariant has been broken somewhere.
func (g *Graph) Validate() {
	g.EnsureClean()

	var edgeCount int
	for _, id := range g.nodes.Handles() {
		edgeCount += len(g.nodes.MustGet(id).Parents)
	}
	if edgeCount != g.edgeCount {
		panic(fmt.Sprintf("graph: edge count mismatch: recorded %d, actual %d", g.edgeCount, edgeCount))
	}

	var recomputed stats.Stats
	for _, id := range g.nodes.Handles() {
		node := g.nodes.MustGet(id)

		want := node.computeStats(g.alignment, g.model)
		if *node.Stats != want {
			panic(fmt.Sprintf("graph: node %s stats mismatch: recorded %+v, actual %+v", nodeLabel(id), *node.Stats, want))
		}

		for i := range g.alignment.Positions {
			position := alignment.PositionIndex(i)

			height := node.AminoAcids[position].Height
			wantHeight := node.computeHeightForPosition(position)
			if height != wantHeight {
				panic(fmt.Sprintf("graph: node %s position %d height mismatch: recorded %d, actual %d", nodeLabel(id), i, height, wantHeight))
			}

			inherited := node.AminoAcids[position].Inherited
			wantInherited := node.computeInheritedForPosition(g.nodes, position)
			if inherited != wantInherited {
				panic(fmt.Sprintf("graph: node %s position %d inherited mismatch: recorded %+v, actual %+v", nodeLabel(id), i, inherited, wantInherited))
			}
		}

		recomputed = recomputed.Add(*node.Stats)
	}

	if recomputed.Penalty != g.Stats.Penalty {
		panic(fmt.Sprintf("graph: aggregate penalty mismatch: recorded %d, actual %d", g.Stats.Penalty, recomputed.Penalty))
	}
	if recomputed.InsertProbability != g.Stats.InsertProbability {
		panic("graph: aggregate insert probability mismatch")
	}
	if recomputed.Transitions != g.Stats.Transitions {
		panic("graph: aggregate transitions mismatch")
	}
	if recomputed.Deletes != g.Stats.Deletes {
		panic("graph: aggregate deletes mismatch")
	}
	if recomputed.Inserts != g.Stats.Inserts {
		panic("graph: aggregate inserts mismatch")
	}

	for _, id := range g.nodes.Handles() {
		node := g.nodes.MustGet(id)
		for _, parent := range node.Parents {
			if !g.nodes.MustGet(parent).hasChild(id) {
				panic(fmt.Sprintf("graph: %s lists %s as parent, but %s does not list %s as child", nodeLabel(id), nodeLabel(parent), nodeLabel(parent), nodeLabel(id)))
			}
		}
		for _, child := range node.Children {
			if !g.nodes.MustGet(child).hasParent(id) {
				panic(fmt.Sprintf("graph: %s lists %s as child, but %s does not list %s as parent", nodeLabel(id), nodeLabel(child), nodeLabel(child), nodeLabel(id)))
			}
		}
	}

	released := slab.NewSet[NodeID]()
	remaining := g.nodes.Len()
	for remaining > 0 {
		progressed := false
		for _, id := range g.nodes.Handles() {
			if released.Contains(id) {
				continue
			}
			node := g.nodes.MustGet(id)
			ready := true
			for _, parent := range node.Parents {
				if !released.Contains(parent) {
					ready = false
					break
				}
			}
			if ready {
				released.Add(id)
				remaining--
				progressed = true
			}
		}
		if !progressed {
			panic("graph: cycle detected during validation")
		}
	}
}
