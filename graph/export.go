package graph

import (
	"fmt"
	"sort"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/ratemodel"
	"github.com/winstonewert/aminograph/slab"
)

// ExportedNodeKind is the persisted node-kind discriminant.
type ExportedNodeKind string

const (
	ExportedLeaf  ExportedNodeKind = "leaf"
	ExportedRoot  ExportedNodeKind = "root"
	ExportedOther ExportedNodeKind = "other"
)

// ExportedNode is the persistence-ready form of one node: its kind, the
// display name of its bound sequence (Leaf only), its parents' labels,
// and its full amino-acid string (one byte per raw alignment column,
// Simple columns included per the rules in Exported/FromExported).
type ExportedNode struct {
	Kind       ExportedNodeKind `json:"kind"`
	SequenceID *string          `json:"sequence_id,omitempty"`
	Parents    []string         `json:"parents"`
	AminoAcids string           `json:"amino_acids"`
}

// ExportedGraph is the full persisted graph: node label ("N<id>") to
// ExportedNode.
type ExportedGraph map[string]ExportedNode

// Exported renders the current graph to its persistence form.
func (g *Graph) Exported() ExportedGraph {
	out := make(ExportedGraph, g.nodes.Len())

	for _, id := range g.nodes.Handles() {
		node := g.nodes.MustGet(id)

		var aminoAcids []byte
		standardCursor := 0
		for _, raw := range g.alignment.RawPositions {
			var acid aa.AminoAcid
			if raw.IsStandard() {
				acid = node.AminoAcids[standardCursor].AminoAcid
				standardCursor++
			} else {
				switch node.Kind.Tag {
				case KindLeaf:
					acid = raw.Sequences[node.Kind.Sequence]
				default:
					acid = raw.Reference
				}
			}
			aminoAcids = append(aminoAcids, acid.Byte())
		}

		var kind ExportedNodeKind
		var sequenceID *string
		switch node.Kind.Tag {
		case KindLeaf:
			kind = ExportedLeaf
			name := g.alignment.SequenceIDs[node.Kind.Sequence]
			sequenceID = &name
		case KindRoot:
			kind = ExportedRoot
		default:
			kind = ExportedOther
		}

		parents := make([]string, len(node.Parents))
		for i, p := range node.Parents {
			parents[i] = nodeLabel(p)
		}
		sort.Strings(parents)

		out[nodeLabel(id)] = ExportedNode{
			Kind:       kind,
			SequenceID: sequenceID,
			Parents:    parents,
			AminoAcids: string(aminoAcids),
		}
	}

	return out
}

// FromExported rebuilds a Graph from its persistence form, parameterising
// the substitution model at parameter.
func FromExported(model *ratemodel.Model, aln *alignment.Alignment, parameter float64, exported ExportedGraph) (*Graph, error) {
	sequenceByName := make(map[string]alignment.SequenceID, len(aln.SequenceIDs))
	for i, name := range aln.SequenceIDs {
		sequenceByName[name] = alignment.SequenceID(i)
	}

	nodes := slab.New[NodeID, *Node]()

	for label, exportedNode := range exported {
		id, err := parseNodeLabel(label)
		if err != nil {
			return nil, err
		}

		var kind NodeKind
		switch exportedNode.Kind {
		case ExportedLeaf:
			if exportedNode.SequenceID == nil {
				return nil, fmt.Errorf("%w: %q", ErrSequenceNotFound, label)
			}
			seq, ok := sequenceByName[*exportedNode.SequenceID]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrSequenceNotFound, *exportedNode.SequenceID)
			}
			kind = LeafKind(seq)
		case ExportedRoot:
			kind = RootKind()
		default:
			kind = OtherKind()
		}

		aminoAcids, err := standardAminoAcids(aln, exportedNode.AminoAcids)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", label, err)
		}

		nodes.Put(id, &Node{Kind: kind, AminoAcids: aminoAcids, ParentsDirty: true})
	}

	parameterized, err := model.Parameterize(parameter)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		alignment:     aln,
		model:         model,
		nodes:         nodes,
		edgeCount:     0,
		dirty:         true,
		parameterized: parameterized,
	}
	g.topo = computeTopologicalOrder(g.nodes)

	for label, exportedNode := range exported {
		id, err := parseNodeLabel(label)
		if err != nil {
			return nil, err
		}
		for _, parentLabel := range exportedNode.Parents {
			parentID, err := parseNodeLabel(parentLabel)
			if err != nil {
				return nil, err
			}
			g.AddEdge(id, parentID)
		}
	}

	return g, nil
}

// standardAminoAcids parses an exported amino-acid string back into the
// per-Standard-position NodeAminoAcid slice, skipping Simple columns (the
// same filter Exported applies when writing).
func standardAminoAcids(aln *alignment.Alignment, raw string) ([]NodeAminoAcid, error) {
	bytes := []byte(raw)
	if len(bytes) != len(aln.RawPositions) {
		return nil, fmt.Errorf("amino acid string has length %d, want %d", len(bytes), len(aln.RawPositions))
	}

	out := make([]NodeAminoAcid, 0, len(aln.Positions))
	for i, rawPosition := range aln.RawPositions {
		if !rawPosition.IsStandard() {
			continue
		}
		acid, err := aa.FromByte(bytes[i])
		if err != nil {
			return nil, fmt.Errorf("%w at column %d", ErrUnrecognizedAminoAcidByte, i)
		}
		out = append(out, NodeAminoAcid{AminoAcid: acid, Pending: true})
	}
	return out, nil
}
