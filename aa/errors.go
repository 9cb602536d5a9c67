package aa

import "errors"

// Sentinel errors for the aa package. Callers should branch with errors.Is,
// never string comparison.
var (
	// ErrUnrecognizedByte indicates a byte outside the residue alphabet
	// (ACDEFGHIKLMNPQRSTVWY, plus X for Unknown and - for Gap).
	ErrUnrecognizedByte = errors.New("aa: unrecognized residue byte")

	// ErrNoIndex indicates AminoAcid.Index was called on Unknown, which has
	// no position in the 20-wide (or 21-wide, Gap-inclusive) numeric arrays.
	ErrNoIndex = errors.New("aa: symbol has no numeric index")
)
