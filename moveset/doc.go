// Package moveset defines the structural and amino-acid vocabulary the
// search driver mutates a graph.Graph with: the eight Move kinds,
// their validity predicates, their appliers, and the Guide (a
// reachability closure over the current topological order) that the
// no-new-cycle and no-redundant-edge checks read.
//
// A Move's Apply never checks its own Valid — callers must confirm
// validity first — and always runs against a fixed Guide snapshot taken
// before the graph started mutating; Guide is never updated mid-Apply.
package moveset
