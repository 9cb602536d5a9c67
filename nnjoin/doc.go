// Package nnjoin builds a starting tree better than the flat star
// topology graph.New produces: greedily pairing the two most-similar
// root children under a new intermediate node until at most two remain,
// then dropping any interior node that turned out to agree with its
// parent everywhere.
package nnjoin
