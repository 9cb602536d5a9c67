package floodfill

import (
	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/slab"
)

// floodContext carries the state a single Run call's recursive descent
// shares: the position under consideration, and the set of nodes already
// visited (a node reachable by more than one path through the DAG is
// decided only once).
type floodContext struct {
	g     *graph.Graph
	index alignment.PositionIndex
	seen  *slab.Set[graph.NodeID]
}

// flood decides, for node and every unseen descendant reachable from it,
// whether flipping to newAminoAcid (given the hypothetical inheritance
// newInheritance node would carry under the change) reduces the total
// transition count versus leaving node as-is. It returns the net change
// in transition count of whichever branch (flip or keep) it chose, and
// appends every node it decided to flip to changes.
func (c *floodContext) flood(newInheritance graph.Inheritance, nodeID graph.NodeID, newAminoAcid aa.AminoAcid, changes *[]graph.NodeID) int {
	node := c.g.Node(nodeID)

	currentInherits := c.g.InheritedForPosition(nodeID, c.index)
	currentAminoAcid := node.AminoAcids[c.index].AminoAcid
	currentChanges := currentInherits.Changes(currentAminoAcid)
	newChanges := newInheritance.Changes(newAminoAcid)

	downstreamHeight := newInheritance.Height
	if newAminoAcid != newInheritance.Acid {
		downstreamHeight++
	}
	downstream := graph.Inheritance{Acid: newAminoAcid, Height: downstreamHeight}

	deltaWithChange := newChanges - currentChanges
	localChanges := len(*changes)

	for _, child := range node.Children {
		if c.seen.Contains(child) {
			continue
		}
		c.seen.Add(child)

		childNode := c.g.Node(child)
		childCurrentInherits := c.g.InheritedForPosition(child, c.index)

		newInherits := downstream
		for _, parent := range childNode.Parents {
			if parent == nodeID {
				continue
			}
			newInherits = newInherits.Update(c.g.Node(parent).AminoAcids[c.index])
		}

		var cost int
		childAminoAcid := childNode.AminoAcids[c.index].AminoAcid
		if childNode.Kind.IsLeaf() || newInherits != downstream || childAminoAcid != currentAminoAcid {
			cost = newInherits.Changes(childAminoAcid) - childCurrentInherits.Changes(childAminoAcid)
		} else {
			cost = c.flood(newInherits, child, newAminoAcid, changes)
		}
		deltaWithChange += cost
	}

	deltaWithoutChange := newInheritance.Changes(currentAminoAcid) - currentChanges

	if deltaWithChange <= deltaWithoutChange {
		*changes = append(*changes, nodeID)
		return deltaWithChange
	}
	*changes = (*changes)[:localChanges]
	return deltaWithoutChange
}

// Run attempts to set node's actual residue at index to acid, flooding
// the decision down to whichever descendants benefit, and commits the
// whole batch only if the total transition-count delta plus bias is
// negative and at least one node is affected. It reports whether the
// change was committed.
func Run(g *graph.Graph, node graph.NodeID, index alignment.PositionIndex, acid aa.AminoAcid, bias int, tracer graph.Tracer) bool {
	g.EnsureDerived()

	ctx := &floodContext{g: g, index: index, seen: slab.NewSet[graph.NodeID]()}
	inherits := g.InheritedForPosition(node, index)

	var changes []graph.NodeID
	delta := ctx.flood(inherits, node, acid, &changes)

	if delta+bias < 0 && len(changes) > 0 {
		for _, change := range changes {
			g.SetAminoAcid(change, index, acid)
		}
		return true
	}
	return false
}

// Analyze scans every Standard position where node's actual residue
// disagrees with its inherited value. For each, it first tries pushing
// the actual up into each parent via Run; failing that, it tries pulling
// node down to its inherited value (unless that would leave the Root
// with an actual Gap). Neither attempt commits anything unless Run's
// delta+bias threshold is met.
func Analyze(g *graph.Graph, node graph.NodeID, bias int, tracer graph.Tracer) {
	g.EnsureDerived()

	positions := len(g.Alignment().Positions)
PositionLoop:
	for i := 0; i < positions; i++ {
		position := alignment.PositionIndex(i)

		inherited := g.InheritedForPosition(node, position)
		actual := g.Node(node).AminoAcids[position].AminoAcid
		if inherited.Acid == actual {
			continue
		}

		if actual != aa.Unknown {
			for _, parent := range append([]graph.NodeID(nil), g.Node(node).Parents...) {
				if Run(g, parent, position, actual, bias, tracer) {
					continue PositionLoop
				}
			}
		}

		nodeKind := g.Node(node).Kind
		canPullDown := inherited.Acid != aa.Unknown && !nodeKind.IsLeaf() &&
			(inherited.Acid != aa.Gap || nodeKind.Tag != graph.KindRoot)
		if canPullDown {
			Run(g, node, position, inherited.Acid, bias, tracer)
		}
	}
}
