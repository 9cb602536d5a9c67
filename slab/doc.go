// Package slab implements a free-list arena: a generic Slab[H, V] maps
// stable small-integer handles to values, reusing freed slots on the next
// insert. Set[H] and Map[H, V] are the same arena used respectively
// as a handle presence set and as a sparse handle-keyed map, matching the
// three collection types the graph engine layers on top of its node arena.
package slab
