// Package aa defines the fixed 22-symbol amino-acid alphabet used throughout
// aminograph: the 20 standard residues plus Gap and Unknown, a compact
// bitset over residues and Gap (Set), and a 21-slot fixed array keyed by
// residue or Gap (Map[V]).
//
// Complexity: every operation in this package is O(1); there is no
// allocation on the hot path (Map[V] is a plain array, Set a uint32).
package aa
