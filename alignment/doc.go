// Package alignment turns FASTA records into the preprocessed form the
// graph engine scores against: each column is classified as Standard
// (variable, participates in search) or Simple (dominated by one residue
// with at most one minority, accounted for once in baseline statistics and
// never touched by the graph thereafter).
package alignment
