// Package floodfill implements the inheritance flood-fill optimiser: given
// a candidate residue for one node, it decides which of that node's
// non-leaf descendants should also flip to the candidate so the total
// transition count strictly improves, and the higher-level
// analyze-amino-acids pass that drives it from every node whose actual
// residue currently disagrees with its inherited one.
package floodfill
