package search

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/winstonewert/aminograph/graph"
)

// nelderMeadMaxIterations bounds the search, matching the original's
// max_iters(1_000_000) — unreachable in practice for a 1-D simplex that
// converges in dozens of steps, but kept as a hard backstop.
const nelderMeadMaxIterations = 1_000_000

// objective evaluates -log2(likelihood) at rate x[0], the quantity
// optimize.NelderMead minimises; it returns +Inf for a negative rate so
// the simplex never steps the solver into Parameterize's invalid domain.
func objective(g *graph.Graph, x []float64) float64 {
	t := x[0]
	if t < 0 {
		return math.Inf(1)
	}
	parameterized, err := g.Model().Parameterize(t)
	if err != nil {
		return math.Inf(1)
	}
	return -g.Stats.Likelihood(parameterized).Log2()
}

// OptimizeParameter runs gonum's Nelder-Mead simplex search for the rate
// parameter that maximises the graph's likelihood given its current
// per-transition statistics, and commits the result only if it actually
// raises the likelihood over the parameter g already has — Nelder-Mead
// has no guarantee of monotonic improvement, so the candidate is checked
// against the baseline rather than trusted blindly.
func OptimizeParameter(g *graph.Graph) {
	g.EnsureClean()

	baseline := g.Stats.Likelihood(g.ParameterizedModel())
	current := g.Parameter()

	problem := optimize.Problem{
		Func: func(x []float64) float64 { return objective(g, x) },
	}
	settings := &optimize.Settings{MajorIterations: nelderMeadMaxIterations}

	result, err := optimize.Minimize(problem, []float64{current}, settings, &optimize.NelderMead{})
	if err != nil || result == nil {
		return
	}

	best := result.X[0]
	parameterized, err := g.Model().Parameterize(best)
	if err != nil {
		return
	}
	if baseline.Less(g.Stats.Likelihood(parameterized)) {
		_ = g.SetParameter(best)
	}
}
