// Package aminograph infers a most-probable ancestral-sequence DAG from a
// multiple amino-acid alignment.
//
// Given a FASTA alignment and a PAML-style substitution model, aminograph
// builds a star topology (one Root, one Leaf per sequence) and repeatedly
// proposes structural moves — splitting groups of nodes off under a new
// ancestor, flooding a residue change down agreeing descendants, nudging
// the model's rate parameter — keeping each move only when it raises the
// graph's posterior probability (prior over topology and residue changes,
// times sequence likelihood under the model). The result is a DAG whose
// interior nodes are reconstructed ancestors and whose edges are scored
// against an explicit cost of residue transitions.
//
// # Packages
//
//	aa         the 20 standard residues, Gap, and Unknown
//	alignment  FASTA parsing and per-column Standard/Simple classification
//	paml       substitution-matrix file parsing
//	ratemodel  the parameterised rate matrix and its matrix exponential
//	graph      the node DAG: inheritance folding, probability, mutation
//	moveset    the structural and amino-acid moves, their validity checks, and the reachability Guide
//	floodfill  the inheritance flood-fill move and its analyze pass
//	search     hill-climbing and the Nelder-Mead rate-parameter search
//	persist    graph.json and parameter.txt serialization to a run directory
//	report     DOT and posterior-score breakdown (details.txt) rendering
//	tracer     progress logging, and the score tracer debug-move uses
//	config     tunable defaults for infer/expand rounds
//
// cmd/aminograph wires these into the infer, expand-search, reanalyze,
// apply-group, apply-move, debug-move, and bench-moves subcommands, built on
// github.com/spf13/cobra and logging through github.com/rs/zerolog.
package aminograph
