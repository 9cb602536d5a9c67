// Package paml reads PAML-format amino-acid exchangeability matrices: 19
// lines giving rows 2..20 of a lower-triangular 20x20 matrix, a blank line,
// then a final line of 20 stationary frequencies terminated with ";".
package paml
