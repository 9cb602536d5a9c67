package report

import (
	"io"
	"text/template"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/logscalar"
)

type detailsStat struct {
	Active, Inactive int
	Score            logscalar.Log
}

type detailsData struct {
	InsertProbability  logscalar.Log
	TransitionsKept    int
	TransitionsChanged int
	TransitionsScore   logscalar.Log
	Inserts            detailsStat
	Deletes            detailsStat
	Initial            detailsStat
	Likelihood         logscalar.Log

	Penalty       int
	PenaltyScore  logscalar.Log
	OtherNodes    int
	NodesScore    logscalar.Log
	EdgeCount     int
	EdgesScore    logscalar.Log
	ReorderScore  logscalar.Log
	HasStarAdjust bool
	Prior         logscalar.Log

	Probability logscalar.Log
}

var detailsTemplate = template.Must(template.New("details").Parse(
	`Likelihood
	InsertSeq	{{.InsertProbability}}		{{.InsertProbability}}
	Transitions 	{{.TransitionsKept}}	{{.TransitionsChanged}}	{{.TransitionsScore}}
	Inserts  	{{.Inserts.Active}}	{{.Inserts.Inactive}}	{{.Inserts.Score}}
	Deletes  	{{.Deletes.Active}}	{{.Deletes.Inactive}}	{{.Deletes.Score}}
	Initial  	{{.Initial.Active}}	{{.Initial.Inactive}}	{{.Initial.Score}}
	Total     			{{.Likelihood}}
Prior
	Penalty  	{{.Penalty}}		{{.PenaltyScore}}
	+Nodes    	{{.OtherNodes}}		{{.NodesScore}}
	Edge Orders	{{.EdgeCount}}		{{.EdgesScore}}
	Reordering	{{.OtherNodes}}		{{.ReorderScore}}
{{if .HasStarAdjust}}	Star Adjustment			2.00
{{end}}	Total     			{{.Prior}}
Total     				{{.Probability}}
`))

// transitionSplit returns the number of observed transitions that kept a
// residue unchanged (the diagonal) versus the number that changed it.
func transitionSplit(transitions aa.Map[aa.Map[int]]) (kept, changed int) {
	for _, from := range aa.All() {
		row := transitions.Get(from)
		for _, to := range aa.All() {
			count := row.Get(to)
			if from == to {
				kept += count
			} else {
				changed += count
			}
		}
	}
	return kept, changed
}

// WriteDetails renders a line-by-line breakdown of g's posterior score —
// every Beta-counter, the substitution-matrix product, and the terms of
// the combinatorial prior — to w. The extra-edge Beta term has no line of
// its own; it is included in the prior Total.
func WriteDetails(w io.Writer, g *graph.Graph) error {
	g.EnsureClean()
	stats := g.Stats

	kept, changed := transitionSplit(stats.Transitions)
	other := len(g.NodeIDs()) - len(g.Alignment().SequenceIDs)

	data := detailsData{
		InsertProbability:  stats.InsertProbability.Unfix(),
		TransitionsKept:    kept,
		TransitionsChanged: changed,
		TransitionsScore:   g.ParameterizedModel().Likelihood(stats.Transitions),
		Inserts:            detailsStat{Active: stats.Inserts.Active, Inactive: stats.Inserts.Inactive, Score: stats.Inserts.Likelihood()},
		Deletes:            detailsStat{Active: stats.Deletes.Active, Inactive: stats.Deletes.Inactive, Score: stats.Deletes.Likelihood()},
		Initial:            detailsStat{Active: stats.Initial.Active, Inactive: stats.Initial.Inactive, Score: stats.Initial.Likelihood()},
		Likelihood:         g.Likelihood(),

		Penalty:       stats.Penalty,
		PenaltyScore:  stats.Prior(),
		OtherNodes:    other,
		NodesScore:    logscalar.Beta(other, 2),
		EdgeCount:     g.EdgeCount(),
		EdgesScore:    logscalar.FromInt(other).PowInt(-g.EdgeCount()),
		ReorderScore:  logscalar.Gamma(other),
		HasStarAdjust: other == 1,
		Prior:         g.Prior(),

		Probability: g.Probability(),
	}

	return detailsTemplate.Execute(w, data)
}
