// Package persist writes and reads a graph.ExportedGraph as JSON, the
// on-disk form the CLI's infer/expand-search commands save between runs
// and apply-move/apply-group/reanalyze load back in.
package persist
