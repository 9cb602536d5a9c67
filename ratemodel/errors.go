package ratemodel

import "errors"

// ErrNegativeParameter indicates Parameterize was called with t < 0; the
// rate-parameter optimiser (package search) must never do this — its
// objective function returns +Inf for negative t instead of calling here.
var ErrNegativeParameter = errors.New("ratemodel: rate parameter must be non-negative")
