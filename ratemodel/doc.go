// Package ratemodel turns a PAML-format amino-acid exchangeability matrix
// and stationary-frequency vector into a parameterised substitution model:
// a continuous-time rate matrix Q, and, for a scalar rate parameter t, the
// substitution-probability matrix M(t) = exp(Q*t) used by the likelihood
// term of the scoring model.
package ratemodel
