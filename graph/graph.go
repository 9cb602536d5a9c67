package graph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/logscalar"
	"github.com/winstonewert/aminograph/ratemodel"
	"github.com/winstonewert/aminograph/slab"
	"github.com/winstonewert/aminograph/stats"
)

type nodeSlab = slab.Slab[NodeID, *Node]

// Tracer receives named intermediate values on the way to a final score,
// and returns the value passed to Close unchanged. Graph.ProbabilityTraced
// accepts any Tracer; Probability uses NullTracer.
type Tracer interface {
	Data(name string, value logscalar.Log)
	Close(value logscalar.Log) logscalar.Log
}

// NullTracer discards every reported value.
type NullTracer struct{}

// Data is a no-op.
func (NullTracer) Data(string, logscalar.Log) {}

// Close returns value unchanged.
func (NullTracer) Close(value logscalar.Log) logscalar.Log { return value }

// Graph is the incremental DAG-scoring engine: see package doc for the
// copy-on-write and dirty-tracking design this type implements.
type Graph struct {
	alignment     *alignment.Alignment
	model         *ratemodel.Model
	nodes         *nodeSlab
	edgeCount     int
	topo          *TopologicalOrder
	dirty         bool
	parameterized *ratemodel.Parameterized

	// PriorAdjustment caches the combinatorial prior term, which depends
	// only on node/edge counts, not on any node's stats; nil means it
	// must be recomputed (any edge or node-count change invalidates it).
	PriorAdjustment *logscalar.Log

	// Stats is the aggregate of every node's cached Stats plus the
	// alignment's baseline contribution; valid only when !dirty.
	Stats stats.Stats
}

// New builds the initial star-topology graph: one Root node whose actual
// residue at each Standard position is the position's plurality residue,
// and one Leaf per alignment sequence, each parented directly by Root.
func New(model *ratemodel.Model, aln *alignment.Alignment) *Graph {
	nodes := slab.New[NodeID, *Node]()

	rootAminoAcids := make([]NodeAminoAcid, len(aln.Positions))
	for i, data := range aln.Positions {
		rootAminoAcids[i] = NodeAminoAcid{AminoAcid: plurality(data), Pending: true}
	}
	rootID := nodes.Insert(&Node{
		Kind:           RootKind(),
		AminoAcids:     rootAminoAcids,
		ParentsDirty:   true,
		DirtyPositions: nil,
	})

	var children []NodeID
	for seq := range aln.SequenceIDs {
		seqID := alignment.SequenceID(seq)
		leafAminoAcids := make([]NodeAminoAcid, len(aln.Positions))
		for i, data := range aln.Positions {
			leafAminoAcids[i] = NodeAminoAcid{AminoAcid: data.Sequences[seqID], Pending: true}
		}
		childID := nodes.Insert(&Node{
			Kind:           LeafKind(seqID),
			Parents:        []NodeID{rootID},
			AminoAcids:     leafAminoAcids,
			ParentsDirty:   true,
			DirtyPositions: nil,
		})
		children = append(children, childID)
	}
	root := nodes.MustGet(rootID).clone()
	root.Children = children
	nodes.Set(rootID, root)

	parameterized, err := model.Parameterize(1.0)
	if err != nil {
		panic(err)
	}

	g := &Graph{
		alignment:     aln,
		model:         model,
		nodes:         nodes,
		edgeCount:     len(aln.SequenceIDs),
		dirty:         true,
		parameterized: parameterized,
	}
	g.topo = computeTopologicalOrder(g.nodes)
	return g
}

// plurality returns the most common residue observed at a Standard
// position, the Root's initial guess before any search has run.
func plurality(data alignment.PositionData) aa.AminoAcid {
	best := aa.Gap
	bestCount := -1
	data.Counts.Each(func(acid aa.AminoAcid, count int) {
		if count > bestCount {
			best = acid
			bestCount = count
		}
	})
	return best
}

// Alignment returns the alignment this graph scores against.
func (g *Graph) Alignment() *alignment.Alignment { return g.alignment }

// Model returns the unparameterised substitution model.
func (g *Graph) Model() *ratemodel.Model { return g.model }

// ParameterizedModel returns the substitution matrix at the graph's
// current rate parameter.
func (g *Graph) ParameterizedModel() *ratemodel.Parameterized { return g.parameterized }

// Parameter returns the graph's current rate parameter.
func (g *Graph) Parameter() float64 { return g.parameterized.Parameter() }

// SetParameter reparameterises the substitution model at rate t. Unlike
// structural mutations this does not touch any node: all cached per-node
// Stats remain valid, only the likelihood term that reads the
// substitution matrix changes.
func (g *Graph) SetParameter(t float64) error {
	if t < 0 {
		return ErrNegativeParameter
	}
	parameterized, err := g.model.Parameterize(t)
	if err != nil {
		return err
	}
	g.parameterized = parameterized
	return nil
}

// Root returns the handle of the unique Root node.
func (g *Graph) Root() NodeID {
	var root NodeID
	found := false
	g.nodes.Each(func(id NodeID, n *Node) {
		if n.Kind.Tag == KindRoot {
			root = id
			found = true
		}
	})
	if !found {
		panic("graph: no root node")
	}
	return root
}

// NodeIDs returns every live node handle, in ascending arena order.
func (g *Graph) NodeIDs() []NodeID { return g.nodes.Handles() }

// HasNodeID reports whether id refers to a live node.
func (g *Graph) HasNodeID(id NodeID) bool { return g.nodes.Contains(id) }

// Node returns the node stored at id. The returned pointer must be
// treated as read-only: callers never mutate it directly, only through
// Graph methods.
func (g *Graph) Node(id NodeID) *Node { return g.nodes.MustGet(id) }

// EdgeCount returns the current total number of parent-child edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// TopologicalOrder returns the current topological-order snapshot.
func (g *Graph) TopologicalOrder() *TopologicalOrder { return g.topo }

// InheritedForPosition returns node's already-computed Inherited value at
// position. Callers must call EnsureDerived first.
func (g *Graph) InheritedForPosition(node NodeID, position alignment.PositionIndex) Inheritance {
	return g.nodes.MustGet(node).AminoAcids[position].Inherited
}

// uniqueNode replaces id's slab entry with a fresh, independently
// mutable *Node and returns it — the copy-on-write step every mutating
// operation performs before editing a node's fields.
func (g *Graph) uniqueNode(id NodeID) *Node {
	fresh := g.nodes.MustGet(id).clone()
	g.nodes.Set(id, fresh)
	return fresh
}

// ensureNodeDirty retires id's cached Stats (if any), subtracting it from
// the graph aggregate so a subsequent EnsureClean recomputes it fresh.
func (g *Graph) ensureNodeDirty(id NodeID) {
	node := g.nodes.MustGet(id)
	if node.Stats == nil {
		return
	}
	fresh := g.uniqueNode(id)
	g.Stats = g.Stats.Sub(*fresh.Stats)
	fresh.Stats = nil
}

func (g *Graph) ensurePriorAdjustmentDirty() {
	g.PriorAdjustment = nil
}

// AddEdge adds the parent edge destination -> source (source gains
// destination as a parent). A no-op if the edge already exists. source
// must not be Root; destination must not be a Leaf.
func (g *Graph) AddEdge(source, destination NodeID) {
	if g.nodes.MustGet(source).hasParent(destination) {
		return
	}
	if g.nodes.MustGet(source).Kind.Tag == KindRoot {
		panic("graph: Root cannot gain a parent")
	}
	if g.nodes.MustGet(destination).Kind.IsLeaf() {
		panic("graph: Leaf cannot gain a child")
	}

	g.ensureNodeDirty(source)
	g.ensureNodeDirty(destination)
	g.ensurePriorAdjustmentDirty()

	src := g.uniqueNode(source)
	src.Parents = append(src.Parents, destination)
	src.ParentsDirty = true

	dst := g.uniqueNode(destination)
	dst.Children = append(dst.Children, source)

	g.edgeCount++

	sourceIndex, _ := g.topo.Indexes.Get(source)
	destIndex, _ := g.topo.Indexes.Get(destination)
	if sourceIndex < destIndex {
		g.topo = computeTopologicalOrder(g.nodes)
	}
	g.dirty = true
}

// RemoveEdge removes the parent edge destination -> source. A no-op if
// the edge does not exist.
func (g *Graph) RemoveEdge(source, destination NodeID) {
	if !g.nodes.MustGet(source).hasParent(destination) {
		return
	}
	g.ensureNodeDirty(source)
	g.ensureNodeDirty(destination)
	g.ensurePriorAdjustmentDirty()

	src := g.uniqueNode(source)
	src.Parents = removeNodeID(src.Parents, destination)
	src.ParentsDirty = true

	dst := g.uniqueNode(destination)
	dst.Children = removeNodeID(dst.Children, source)

	g.edgeCount--
	g.dirty = true
}

// RemoveNode deletes source, which must currently have neither parents
// nor children.
func (g *Graph) RemoveNode(source NodeID) {
	node := g.nodes.MustGet(source)
	if len(node.Parents) != 0 || len(node.Children) != 0 {
		panic("graph: RemoveNode requires an isolated node")
	}
	g.ensureNodeDirty(source)
	g.ensurePriorAdjustmentDirty()

	g.nodes.Remove(source)
	g.topo = &TopologicalOrder{
		Order:     removeNodeID(append([]NodeID(nil), g.topo.Order...), source),
		Indexes:   g.topo.Indexes,
		NextIndex: g.topo.NextIndex,
	}
	g.dirty = true
}

// CreateNode inserts a fresh Other node whose actual amino acids are
// copied from copyFrom (inherited state recomputed from scratch), with
// no parents or children yet.
func (g *Graph) CreateNode(copyFrom NodeID) NodeID {
	source := g.nodes.MustGet(copyFrom)
	aminoAcids := make([]NodeAminoAcid, len(source.AminoAcids))
	for i, na := range source.AminoAcids {
		aminoAcids[i] = NodeAminoAcid{AminoAcid: na.AminoAcid, Pending: true}
	}

	g.ensurePriorAdjustmentDirty()

	newID := g.nodes.Insert(&Node{
		Kind:         OtherKind(),
		AminoAcids:   aminoAcids,
		ParentsDirty: true,
	})

	indexes := g.topo.Indexes.Clone()
	indexes.Put(newID, g.topo.NextIndex)
	g.topo = &TopologicalOrder{
		Order:     append(append([]NodeID(nil), g.topo.Order...), newID),
		Indexes:   indexes,
		NextIndex: g.topo.NextIndex + 1,
	}
	g.dirty = true

	return newID
}

// MakeRoot promotes an Other node to Root. id must currently be Other.
func (g *Graph) MakeRoot(id NodeID) {
	node := g.nodes.MustGet(id)
	if node.Kind.Tag != KindOther {
		panic("graph: MakeRoot requires an Other node")
	}
	g.uniqueNode(id).Kind = RootKind()
}

// SetAminoAcid sets node's actual residue at position, marking the
// position (and its propagation to children) dirty. node must not be a
// Leaf; acid must not be Unknown. A no-op if the residue is unchanged.
func (g *Graph) SetAminoAcid(node NodeID, index alignment.PositionIndex, acid aa.AminoAcid) {
	target := g.nodes.MustGet(node)
	if target.Kind.IsLeaf() {
		panic("graph: cannot set amino acid on a Leaf")
	}
	if acid == aa.Unknown {
		panic("graph: " + ErrUnknownAminoAcid.Error())
	}
	if target.AminoAcids[index].AminoAcid == acid {
		return
	}

	fresh := g.uniqueNode(node)
	fresh.DirtyPositions = append(fresh.DirtyPositions, index)
	fresh.AminoAcids[index].AminoAcid = acid
	fresh.AminoAcids[index].Pending = true

	g.dirty = true
}

// EnsureDerived recomputes inherited/height/pending state for every
// flagged position, in topological order, propagating dirtiness to
// children. A no-op if nothing is dirty.
func (g *Graph) EnsureDerived() {
	if !g.dirty {
		return
	}

	for _, nodeID := range g.topo.Order {
		node := g.nodes.MustGet(nodeID)
		if !node.ParentsDirty && len(node.DirtyPositions) == 0 {
			continue
		}

		var positions []alignment.PositionIndex
		if node.ParentsDirty {
			fresh := g.uniqueNode(nodeID)
			fresh.DirtyPositions = nil
			node = fresh
			positions = make([]alignment.PositionIndex, len(g.alignment.Positions))
			for i := range positions {
				positions[i] = alignment.PositionIndex(i)
			}
		} else {
			positions = dedupPositions(node.DirtyPositions)
			fresh := g.uniqueNode(nodeID)
			fresh.DirtyPositions = nil
			node = fresh
		}

		positionChanged := false

		for _, position := range positions {
			na := node.AminoAcids[position]
			incomingChanged := false

			if node.ParentsDirty || !na.HasInherited {
				inherited := node.computeInheritedForPosition(g.nodes, position)
				if !na.HasInherited || na.Inherited != inherited {
					node.AminoAcids[position].Inherited = inherited
					node.AminoAcids[position].HasInherited = true
					incomingChanged = true
					positionChanged = true
				}
			}

			heightChanged := false
			if incomingChanged || na.Pending {
				height := node.computeHeightForPosition(position)
				if node.AminoAcids[position].Height != height {
					node.AminoAcids[position].Height = height
					heightChanged = true
				}
			}

			if na.Pending {
				positionChanged = true
			}

			if na.Pending || heightChanged {
				for _, child := range node.Children {
					childNode := g.uniqueNode(child)
					if !childNode.ParentsDirty {
						childNode.DirtyPositions = append(childNode.DirtyPositions, position)
					}
					childNode.AminoAcids[position].HasInherited = false
				}
				node.AminoAcids[position].Pending = false
			}
		}

		if positionChanged {
			g.ensureNodeDirty(nodeID)
			node = g.nodes.MustGet(nodeID)
		}
		if node.ParentsDirty {
			node.ParentsDirty = false
		}
	}
}

// dedupPositions sorts and removes duplicate positions, mirroring the
// original's sort+dedup of its swapped-out dirty_positions buffer.
func dedupPositions(positions []alignment.PositionIndex) []alignment.PositionIndex {
	sorted := append([]alignment.PositionIndex(nil), positions...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	out := sorted[:0]
	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			out = append(out, p)
		}
	}
	return out
}

// EnsureClean calls EnsureDerived, then recomputes any missing per-node
// Stats and folds them into the graph aggregate.
func (g *Graph) EnsureClean() {
	if !g.dirty {
		return
	}
	g.EnsureDerived()

	for _, nodeID := range g.nodes.Handles() {
		node := g.nodes.MustGet(nodeID)
		if node.Stats != nil {
			continue
		}
		computed := node.computeStats(g.alignment, g.model)
		g.Stats = g.Stats.Add(computed)
		g.uniqueNode(nodeID).Stats = &computed
	}
	g.dirty = false
}

// Likelihood returns the likelihood factor of the posterior score.
func (g *Graph) Likelihood() logscalar.Log {
	g.EnsureClean()
	return g.Stats.Likelihood(g.parameterized)
}

// Prior returns the prior factor of the posterior score.
func (g *Graph) Prior() logscalar.Log {
	g.EnsureClean()
	if g.PriorAdjustment == nil {
		adjustment := g.computePriorAdjustment()
		g.PriorAdjustment = &adjustment
	}
	return g.Stats.Prior().Mul(*g.PriorAdjustment)
}

// Probability returns prior x likelihood, the score the hill-climbing
// search maximises.
func (g *Graph) Probability() logscalar.Log {
	return g.ProbabilityTraced(NullTracer{})
}

// ProbabilityTraced is Probability with intermediate prior/likelihood
// values reported to tracer.
func (g *Graph) ProbabilityTraced(tracer Tracer) logscalar.Log {
	prior := g.Prior()
	likelihood := g.Likelihood()
	tracer.Data("prior", prior)
	tracer.Data("likelihood", likelihood)
	return tracer.Close(prior.Mul(likelihood))
}

// computePriorAdjustment evaluates the combinatorial prior term, which
// depends only on node/edge/leaf counts:
//
//	Beta(otherNodes, 2) * Beta(extraEdges+1, n) * otherNodes^(-edgeCount) *
//	    Gamma(otherNodes) * [2 if otherNodes == 1 else 1]
//
// the middle Beta term is dropped (treated as one) when extraEdges == 0.
func (g *Graph) computePriorAdjustment() logscalar.Log {
	totalNodes := g.nodes.Len()
	leafCount := len(g.alignment.SequenceIDs)
	otherNodes := totalNodes - leafCount
	extraEdges := g.edgeCount + 1 - totalNodes

	result := logscalar.Beta(otherNodes, 2)
	if extraEdges != 0 {
		result = result.Mul(logscalar.Beta(extraEdges+1, totalNodes))
	}
	result = result.Mul(logscalar.FromInt(otherNodes).PowInt(-g.edgeCount))
	result = result.Mul(logscalar.Gamma(otherNodes))
	if otherNodes == 1 {
		result = result.Mul(logscalar.Pow2(1.0))
	}
	return result
}

// Classify reports the graph's topology shape: "star" (untouched initial
// seed), "tree" (no extra edges beyond a spanning tree), or "dag".
func (g *Graph) Classify() string {
	g.EnsureClean()
	extraEdges := g.edgeCount - g.nodes.Len() + 1
	switch {
	case g.nodes.Len() == len(g.alignment.SequenceIDs)+1:
		return "star"
	case extraEdges == 0:
		return "tree"
	default:
		return "dag"
	}
}

// FullStats is a snapshot of every aggregate measurement the CLI reports.
type FullStats struct {
	Stats          stats.Stats
	EdgeCount      int
	NodeCount      int
	LeafCount      int
	Probability    logscalar.Log
	Prior          logscalar.Log
	Likelihood     logscalar.Log
	Classification string
}

// FullStats computes a FullStats snapshot of the current graph state.
func (g *Graph) FullStats() FullStats {
	return FullStats{
		Stats:          g.Stats,
		EdgeCount:      g.edgeCount,
		NodeCount:      g.nodes.Len(),
		LeafCount:      len(g.alignment.SequenceIDs),
		Probability:    g.Probability(),
		Prior:          g.Prior(),
		Likelihood:     g.Likelihood(),
		Classification: g.Classify(),
	}
}

// Compact renumbers every node handle to a dense 0..n-1 range, discarding
// the free-list gaps left behind by removed nodes. Existing NodeID values
// held outside the graph (e.g. in a move literal) are invalidated by this
// call.
func (g *Graph) Compact() {
	fresh := slab.New[NodeID, *Node]()
	mapping := make(map[NodeID]NodeID, g.nodes.Len())

	for _, id := range g.nodes.Handles() {
		mapping[id] = fresh.Insert(g.nodes.MustGet(id))
	}

	for _, id := range fresh.Handles() {
		node := fresh.MustGet(id).clone()
		for i, p := range node.Parents {
			node.Parents[i] = mapping[p]
		}
		for i, c := range node.Children {
			node.Children[i] = mapping[c]
		}
		fresh.Set(id, node)
	}

	g.nodes = fresh
	g.topo = computeTopologicalOrder(g.nodes)
}

// Clone returns an independent copy-on-write snapshot of g: mutating the
// clone never affects g, and vice versa, until a mutation forces a node
// to be uniquely copied (see uniqueNode). This is the Go counterpart of
// the original engine's cheap Arc-backed Graph::clone — the search
// driver calls it once per candidate move to score a hypothetical
// mutation without disturbing the graph it is trying to improve.
func (g *Graph) Clone() *Graph {
	var priorAdjustment *logscalar.Log
	if g.PriorAdjustment != nil {
		value := *g.PriorAdjustment
		priorAdjustment = &value
	}
	return &Graph{
		alignment:       g.alignment,
		model:           g.model,
		nodes:           g.nodes.Clone(),
		edgeCount:       g.edgeCount,
		topo:            g.topo,
		dirty:           g.dirty,
		parameterized:   g.parameterized,
		PriorAdjustment: priorAdjustment,
		Stats:           g.Stats,
	}
}

// ReplaceWith overwrites g's entire state with other's, the Go
// counterpart of the original search driver's "*graph = new_graph"
// rebinding: callers holding a *Graph (e.g. the hill-climb loop in the
// search package) use this to commit a candidate built via Clone once it
// scores better, without having to thread a fresh pointer back through
// every caller.
func (g *Graph) ReplaceWith(other *Graph) { *g = *other }

// nodeLabel formats a node handle as the persisted "N<id>" label.
func nodeLabel(id NodeID) string { return fmt.Sprintf("N%d", int(id)) }

// parseNodeLabel is the inverse of nodeLabel.
func parseNodeLabel(label string) (NodeID, error) {
	trimmed := strings.TrimPrefix(label, "N")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNodeLabel, label)
	}
	return NodeID(n), nil
}
