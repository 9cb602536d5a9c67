// Package graph is the incremental DAG-scoring engine: nodes hold
// per-position amino-acid state (actual, inherited, height), cached
// statistics, and dirty flags; Graph maintains a topological order, total
// edge count, and a global aggregate used to evaluate prior x likelihood.
//
// Nodes are copy-on-write: a Graph clone shares *Node pointers with its
// source until a mutating call (AddEdge, SetAminoAcid, ...) touches a node,
// at which point that node alone is replaced with a fresh copy via
// uniqueNode. This keeps clone cost proportional to the touched set, the
// property the hill-climbing driver's heavy parallel cloning depends on.
//
// Two-phase recompute: EnsureDerived walks the topological order
// recomputing inherited/height/pending for flagged positions and
// propagating dirtiness to children; EnsureClean then recomputes any
// missing per-node Stats and folds them into the graph aggregate. Validate
// recomputes everything from scratch and panics on any mismatch, the same
// role as the original implementation's debug assertions.
package graph
