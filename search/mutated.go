package search

import (
	"github.com/winstonewert/aminograph/floodfill"
	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/moveset"
)

// mutated returns the graph that results from applying m to a clone of
// g: the move itself, a QuickCleanup pass, and then — for every node the
// move touched that is still live — a local amino-acid re-analysis kept
// only if it raises the probability further. This is what lets a single
// structural move "pull along" the residue reassignments it makes
// beneficial, without forcing every caller to run the full amino-acid
// optimiser over the whole graph.
func mutated(g *graph.Graph, m moveset.Move, guide *moveset.Guide) *graph.Graph {
	return mutatedTraced(g, m, guide, graph.NullTracer{})
}

// mutatedTraced is mutated with every Apply/Analyze call routed through
// tracer, the path DebugMove uses to surface intermediate scores.
func mutatedTraced(g *graph.Graph, m moveset.Move, guide *moveset.Guide, tracer graph.Tracer) *graph.Graph {
	newGraph := g.Clone()
	updated := m.Apply(newGraph, guide, tracer)
	moveset.QuickCleanup(newGraph)

	current := newGraph.Probability()
	for _, node := range updated {
		if !newGraph.HasNodeID(node) {
			continue
		}
		subGraph := newGraph.Clone()
		floodfill.Analyze(subGraph, node, 0, tracer)
		if probability := subGraph.Probability(); current.Less(probability) {
			current = probability
			newGraph = subGraph
		}
	}

	return newGraph
}

// DebugMove evaluates m against a clone of g exactly as Optimize's
// candidate-scoring path would, but never commits it: it returns the
// hypothetical result so a caller (the CLI's debug-move command) can
// trace both g's current probability and the candidate's through tracer
// for inspection, without disturbing g.
func DebugMove(g *graph.Graph, m moveset.Move, tracer graph.Tracer) *graph.Graph {
	guide := moveset.NewGuide(g)
	return mutatedTraced(g, m, guide, tracer)
}

// ApplyMutation applies moves to g in sequence, each through the same
// mutated-plus-reanalysis path Optimize uses, committing every step
// unconditionally (no probability gate) — the path the CLI's apply-move
// command uses to replay a move list saved from an earlier run.
func ApplyMutation(g *graph.Graph, moves []moveset.Move) {
	for _, m := range moves {
		guide := moveset.NewGuide(g)
		g.ReplaceWith(mutated(g, m, guide))
	}
}
