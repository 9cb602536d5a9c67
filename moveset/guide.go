package moveset

import (
	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/slab"
)

// Guide is a snapshot of a graph's topological order plus, for every
// node, the full set of nodes reachable by walking parent edges
// (including the node itself). AddEdge/ChangeEdge/Reparent validity all
// reduce to a membership check against this closure: "would adding this
// edge create a cycle".
type Guide struct {
	Order     []graph.NodeID
	Reachable *slab.Map[graph.NodeID, *slab.Set[graph.NodeID]]
}

// NewGuide computes a Guide for g's current state. Computing it is O(V*E)
// in the worst case: each node's reachable set is built once, by unioning
// its parents' already-computed sets (each up to V members), walking in
// topological order so every parent is resolved before its children.
func NewGuide(g *graph.Graph) *Guide {
	order := g.TopologicalOrder().Order

	reachable := slab.NewMap[graph.NodeID, *slab.Set[graph.NodeID]]()
	for _, id := range order {
		nodeReachable := slab.NewSet[graph.NodeID]()
		nodeReachable.Add(id)
		for _, parent := range g.Node(id).Parents {
			parentReachable, _ := reachable.Get(parent)
			for _, other := range parentReachable.Members() {
				nodeReachable.Add(other)
			}
		}
		reachable.Put(id, nodeReachable)
	}

	return &Guide{Order: order, Reachable: reachable}
}

// reachableFrom reports whether target is reachable from source by
// walking parent edges (target is an ancestor of source, or target ==
// source).
func (gu *Guide) reachableFrom(source, target graph.NodeID) bool {
	set, ok := gu.Reachable.Get(source)
	if !ok {
		return false
	}
	return set.Contains(target)
}
