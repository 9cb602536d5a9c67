package graph

import "github.com/winstonewert/aminograph/slab"

// TopologicalOrder is an immutable snapshot of a valid topological
// ordering of the graph's nodes, plus each node's position within it.
// Graph replaces this wholesale (never mutates it in place) whenever an
// edge changes the order, so a previously obtained *TopologicalOrder
// remains a valid, stable read even after the Graph that produced it has
// moved on.
type TopologicalOrder struct {
	Order     []NodeID
	Indexes   *slab.Map[NodeID, int]
	NextIndex int
}

// computeTopologicalOrder performs an iterative release-based topological
// sort: a node is released once every parent has already been released.
// Complexity: O(V^2) in the worst case (re-scans unreleased nodes each
// pass), acceptable since this only runs when an edge addition/removal
// actually perturbs relative node order, not on every mutation.
func computeTopologicalOrder(nodes *nodeSlab) *TopologicalOrder {
	remaining := nodes.Len()
	released := slab.NewSet[NodeID]()
	order := make([]NodeID, 0, remaining)

	for remaining > 0 {
		progressed := false
		nodes.Each(func(id NodeID, n *Node) {
			if released.Contains(id) {
				return
			}
			for _, parent := range n.Parents {
				if !released.Contains(parent) {
					return
				}
			}
			order = append(order, id)
			released.Add(id)
			remaining--
			progressed = true
		})
		if !progressed {
			panic("graph: cycle detected while computing topological order")
		}
	}

	indexes := slab.NewMap[NodeID, int]()
	for i, id := range order {
		indexes.Put(id, i)
	}

	return &TopologicalOrder{Order: order, Indexes: indexes, NextIndex: len(order)}
}
