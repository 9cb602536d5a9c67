// Package stats defines the per-node and aggregate statistics record used
// by both alignment preprocessing (baseline contributions from Simple
// positions) and the graph engine (per-node contributions from Standard
// positions): a Beta-counted active/inactive pair (Stat), and the full
// per-node record (Stats) combining penalty, initial/insert/delete
// counters, the accumulated insertion-probability product, and the 20x20
// substitution transition-count matrix.
//
// It is a standalone package (rather than living in graph, alongside the
// engine that owns it) because alignment.ReadAlignment must produce Stats
// baselines without importing graph, and graph must consume Alignment
// without alignment importing it back — putting Stats here breaks that
// cycle.
package stats
