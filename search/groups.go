package search

import (
	"sort"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/moveset"
)

// groupCandidate is one node whose actual residue at a position diverges
// from what it inherited — the raw material OptimizeGroups groups by
// (position, inherited, actual) before proposing a unifying ancestor.
type groupCandidate struct {
	position  alignment.PositionIndex
	inherited aa.AminoAcid
	actual    aa.AminoAcid
	node      graph.NodeID
}

// findHook returns the latest (in reverse topological order) node that
// is a common strict ancestor of every node in nodes — the node
// ApplyGroup/OptimizeGroups hangs the new unifying node from.
func findHook(guide *moveset.Guide, nodes []graph.NodeID) (graph.NodeID, bool) {
	for i := len(guide.Order) - 1; i >= 0; i-- {
		candidate := guide.Order[i]
		isAncestorOfAll := true
		for _, node := range nodes {
			if node == candidate {
				isAncestorOfAll = false
				break
			}
			reachable, ok := guide.Reachable.Get(node)
			if !ok || !reachable.Contains(candidate) {
				isAncestorOfAll = false
				break
			}
		}
		if isAncestorOfAll {
			return candidate, true
		}
	}
	return 0, false
}

// ApplyGroup unconditionally creates a new node hung from the latest
// common ancestor of every node whose residue at index already equals
// replacement but was inherited as original, and adds it as an extra
// parent of each of them (their existing parents are kept). Unlike OptimizeGroups this never checks whether the result
// improves the posterior — it is the primitive the CLI's apply-group
// command replays from a saved group description.
func ApplyGroup(g *graph.Graph, index alignment.PositionIndex, original, replacement aa.AminoAcid) {
	g.EnsureDerived()

	var nodes []graph.NodeID
	for _, id := range g.NodeIDs() {
		amino := g.Node(id).AminoAcids[index]
		if amino.Inherited.Acid == original && amino.AminoAcid == replacement {
			nodes = append(nodes, id)
		}
	}

	guide := moveset.NewGuide(g)
	hook, ok := findHook(guide, nodes)
	if !ok {
		return
	}

	newNode := g.CreateNode(hook)
	g.AddEdge(newNode, hook)
	g.SetAminoAcid(newNode, index, replacement)
	for _, node := range nodes {
		g.AddEdge(node, newNode)
	}
}

// OptimizeGroups scans every node for a position where its actual
// residue diverges from its inherited one (and is not Unknown), groups
// the divergences by (position, inherited, actual), and for every group
// of more than two nodes not including Root tries hanging a new node
// with that residue from their latest common ancestor — keeping the
// change only if it raises the posterior. This captures a single
// substitution shared convergently across an otherwise-unrelated set of
// lineages as one ancestral event instead of many independent ones.
func OptimizeGroups(g *graph.Graph) {
	g.EnsureDerived()

	var candidates []groupCandidate
	for _, id := range g.NodeIDs() {
		for index, amino := range g.Node(id).AminoAcids {
			if amino.Inherited.Acid != amino.AminoAcid && amino.AminoAcid != aa.Unknown {
				candidates = append(candidates, groupCandidate{
					position:  alignment.PositionIndex(index),
					inherited: amino.Inherited.Acid,
					actual:    amino.AminoAcid,
					node:      id,
				})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.position != b.position {
			return a.position < b.position
		}
		if a.inherited != b.inherited {
			return a.inherited < b.inherited
		}
		if a.actual != b.actual {
			return a.actual < b.actual
		}
		return a.node < b.node
	})

	guide := moveset.NewGuide(g)
	root := g.Root()

	i := 0
	for i < len(candidates) {
		j := i + 1
		for j < len(candidates) &&
			candidates[j].position == candidates[i].position &&
			candidates[j].inherited == candidates[i].inherited &&
			candidates[j].actual == candidates[i].actual {
			j++
		}
		group := candidates[i:j]
		i = j

		if len(group) <= 2 {
			continue
		}

		var nodes []graph.NodeID
		includesRoot := false
		allLive := true
		for _, c := range group {
			if c.node == root {
				includesRoot = true
			}
			if !g.HasNodeID(c.node) {
				allLive = false
			}
			nodes = append(nodes, c.node)
		}
		if includesRoot || !allLive {
			continue
		}

		hook, ok := findHook(guide, nodes)
		if !ok {
			continue
		}

		newGraph := g.Clone()
		newNode := newGraph.CreateNode(hook)
		newGraph.AddEdge(newNode, hook)
		newGraph.SetAminoAcid(newNode, group[0].position, group[0].actual)
		for _, node := range nodes {
			newGraph.AddEdge(node, newNode)
		}

		if g.Probability().Less(newGraph.Probability()) {
			g.ReplaceWith(newGraph)
			guide = moveset.NewGuide(g)
		}
	}
}
