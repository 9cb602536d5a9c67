package floodfill_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/floodfill"
	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/ratemodel"
)

func uniformModel() *ratemodel.Model {
	exch := mat.NewDense(aa.Count, aa.Count, nil)
	for i := 0; i < aa.Count; i++ {
		for j := 0; j < aa.Count; j++ {
			if i != j {
				exch.Set(i, j, 1.0)
			}
		}
	}
	var freq [aa.Count]float64
	for i := range freq {
		freq[i] = 1.0 / aa.Count
	}
	return ratemodel.New(exch, freq)
}

// findLeaf returns the NodeID of the leaf bound to the sequence labeled
// name in fasta order.
func findLeaf(t *testing.T, g *graph.Graph, aln *alignment.Alignment, name string) graph.NodeID {
	t.Helper()
	for i, id := range aln.SequenceIDs {
		if id == name {
			for _, nodeID := range g.NodeIDs() {
				node := g.Node(nodeID)
				if node.Kind.IsLeaf() && int(node.Kind.Sequence) == i {
					return nodeID
				}
			}
		}
	}
	t.Fatalf("no leaf named %s", name)
	return 0
}

// pushUpFixture builds a Root with two subtrees at one Standard position:
// an interior node P hung from Root with leaf children a=Ala, b=Thr,
// c=Thr, and two leaves left attached directly to Root (out1=Ala,
// out2=Thr) so the column carries two residues each repeating at least
// twice, forcing the Standard classification this test depends on.
// parentActual seeds P's own actual residue before Analyze runs.
func pushUpFixture(t *testing.T, parentActual aa.AminoAcid) (g *graph.Graph, p, leafA, leafB, leafC graph.NodeID) {
	t.Helper()
	const fasta = `>a
A
>b
T
>c
T
>out1
A
>out2
T
`
	model := uniformModel()
	aln, err := alignment.ReadAlignment(strings.NewReader(fasta), model, false)
	require.NoError(t, err)
	require.Len(t, aln.Positions, 1)

	g = graph.New(model, aln)
	root := g.Root()

	leafA = findLeaf(t, g, aln, "a")
	leafB = findLeaf(t, g, aln, "b")
	leafC = findLeaf(t, g, aln, "c")

	p = g.CreateNode(root)
	g.AddEdge(p, root)
	for _, leaf := range []graph.NodeID{leafA, leafB, leafC} {
		g.RemoveEdge(leaf, root)
		g.AddEdge(leaf, p)
	}
	g.SetAminoAcid(p, alignment.PositionIndex(0), parentActual)
	g.EnsureDerived()
	return g, p, leafA, leafB, leafC
}

// TestAnalyze_MinorityLeafDoesNotPushUp mirrors the minority-leaf scenario:
// P already agrees with its majority children (Thr), so analyzing the one
// leaf that disagrees (Ala) must not push Ala up into P.
func TestAnalyze_MinorityLeafDoesNotPushUp(t *testing.T) {
	g, p, leafA, _, _ := pushUpFixture(t, aa.Thr)
	position := alignment.PositionIndex(0)

	floodfill.Analyze(g, leafA, 0, graph.NullTracer{})

	assert.Equal(t, aa.Thr, g.Node(p).AminoAcids[position].AminoAcid)
	assert.Equal(t, aa.Ala, g.Node(leafA).AminoAcids[position].AminoAcid)
}

// TestAnalyze_MajorityLeafPushesUpToParent mirrors the majority-leaf
// scenario: P starts disagreeing with its Thr-majority children, so
// analyzing one of those majority leaves must push Thr up into P.
func TestAnalyze_MajorityLeafPushesUpToParent(t *testing.T) {
	g, p, _, leafB, _ := pushUpFixture(t, aa.Ala)
	position := alignment.PositionIndex(0)

	floodfill.Analyze(g, leafB, 0, graph.NullTracer{})

	assert.Equal(t, aa.Thr, g.Node(p).AminoAcids[position].AminoAcid)
}

// TestAnalyze_PullsDownToInheritedRoot builds Root=Ala with an interior
// child M=Thr that disagrees with it. M's own children (Ala, Ala, Thr)
// and enough unrelated Root-attached leaves make pushing Thr up into
// Root strictly worse, so Analyze must instead pull M down to Root's
// Ala, the pull-down half of analyze_amino_acids this package implements
// when a push up is not an improvement.
func TestAnalyze_PullsDownToInheritedRoot(t *testing.T) {
	const fasta = `>leaf1
A
>leaf2
A
>leaf3
T
>out1
A
>out2
A
>out3
A
>out4
T
`
	model := uniformModel()
	aln, err := alignment.ReadAlignment(strings.NewReader(fasta), model, false)
	require.NoError(t, err)
	require.Len(t, aln.Positions, 1)

	g := graph.New(model, aln)
	root := g.Root()
	position := alignment.PositionIndex(0)
	require.Equal(t, aa.Ala, g.Node(root).AminoAcids[position].AminoAcid)

	leaf1 := findLeaf(t, g, aln, "leaf1")
	leaf2 := findLeaf(t, g, aln, "leaf2")
	leaf3 := findLeaf(t, g, aln, "leaf3")

	m := g.CreateNode(root)
	g.AddEdge(m, root)
	for _, leaf := range []graph.NodeID{leaf1, leaf2, leaf3} {
		g.RemoveEdge(leaf, root)
		g.AddEdge(leaf, m)
	}
	g.SetAminoAcid(m, position, aa.Thr)
	g.EnsureDerived()

	floodfill.Analyze(g, m, 0, graph.NullTracer{})

	assert.Equal(t, aa.Ala, g.Node(m).AminoAcids[position].AminoAcid)
	assert.Equal(t, aa.Ala, g.Node(root).AminoAcids[position].AminoAcid)
}

// TestRun_RejectsChangeThatWorsensCost exercises Run directly: flipping a
// leaf's own parent to the leaf's minority residue costs more than it
// saves, so Run must report no change applied.
func TestRun_RejectsChangeThatWorsensCost(t *testing.T) {
	g, p, leafA, _, _ := pushUpFixture(t, aa.Thr)
	position := alignment.PositionIndex(0)

	applied := floodfill.Run(g, p, position, aa.Ala, 0, graph.NullTracer{})

	assert.False(t, applied)
	assert.Equal(t, aa.Thr, g.Node(p).AminoAcids[position].AminoAcid)
}
