// Package report renders a graph as a Graphviz DOT diagram and as a
// human-readable breakdown of its posterior score, the two artifacts the
// CLI's infer, expand-search, apply-move, apply-group and reanalyze
// commands leave behind for a human to read.
package report
