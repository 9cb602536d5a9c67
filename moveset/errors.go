package moveset

import "errors"

// ErrMalformedMove is returned by Parse when a string does not match any
// move's literal syntax.
var ErrMalformedMove = errors.New("moveset: malformed move literal")
