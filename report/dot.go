package report

import (
	"io"
	"strconv"
	"text/template"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/graph"
)

type dotChange struct {
	Position  int
	AminoAcid byte
	Height    uint8
}

type dotNode struct {
	ID       graph.NodeID
	Label    string
	Children []graph.NodeID
	Changes  []dotChange
}

var dotTemplate = template.Must(template.New("dot").Parse(`digraph {
{{range .Nodes}}N{{.ID}} [shape=rectangle,label=<
<b>{{.Label}}</b><br/>
{{range .Changes}}<i>{{.Position}}{{printf "%c" .AminoAcid}}[{{.Height}}]</i><br/>
{{end}}>]
{{range .Children}}N{{.}} -> N{{$.ID}}
{{end}}{{end}}}
`))

// WriteDOT renders g as a Graphviz DOT digraph to w, labelling every
// node with its display name (sequence name for a Leaf, "Root" for
// Root, "N<id>" otherwise) and every Standard position where its actual
// residue diverges from what it inherited.
func WriteDOT(w io.Writer, g *graph.Graph, aln *alignment.Alignment) error {
	g.EnsureDerived()

	var nodes []dotNode

	for _, id := range g.NodeIDs() {
		node := g.Node(id)

		label := "Root"
		switch node.Kind.Tag {
		case graph.KindLeaf:
			label = aln.SequenceIDs[node.Kind.Sequence]
		case graph.KindOther:
			label = "N" + strconv.Itoa(int(id))
		}

		var changes []dotChange
		if len(node.Parents) > 0 {
			for position, amino := range node.AminoAcids {
				if amino.AminoAcid.IsResidue() || amino.AminoAcid == aa.Gap {
					inherited := g.InheritedForPosition(id, alignment.PositionIndex(position))
					if inherited.Acid != amino.AminoAcid {
						changes = append(changes, dotChange{
							Position:  position + 1,
							AminoAcid: amino.AminoAcid.Byte(),
							Height:    amino.Height,
						})
					}
				}
			}
		}

		nodes = append(nodes, dotNode{ID: id, Label: label, Children: node.Children, Changes: changes})
	}

	data := struct{ Nodes []dotNode }{Nodes: nodes}
	return dotTemplate.Execute(w, data)
}
