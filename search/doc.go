// Package search drives the hill-climbing optimisation loop: evaluating
// every candidate structural/amino-acid move against a graph's current
// posterior, committing whichever improve it, and the supporting
// diversification (random shuffles) and continuous-parameter tuning
// (rate-parameter line search) that round out one optimisation pass.
package search
