package search

import "github.com/winstonewert/aminograph/graph"

// Run performs one full optimisation round against g: a hill-climbing
// pass over every structural/amino-acid move, a convergent-residue group
// pass, a rate-parameter line search, and finally Compact to drop the
// handle gaps any removed nodes left behind. It returns the MoveLogs
// Optimize committed, for the caller to report or persist.
func Run(g *graph.Graph) []MoveLog {
	logs := Optimize(g)
	OptimizeGroups(g)
	OptimizeParameter(g)
	g.Compact()
	return logs
}
