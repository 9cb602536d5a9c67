package graph

import "errors"

// Sentinel errors for the graph package.
var (
	// ErrNegativeParameter is returned by SetParameter for a negative rate.
	ErrNegativeParameter = errors.New("graph: rate parameter must be non-negative")

	// ErrUnknownAminoAcid carries the message SetAminoAcid panics with when
	// asked to assign the Unknown symbol, which structural moves may never
	// emit; SetAminoAcid has no error result, so it is never returned.
	ErrUnknownAminoAcid = errors.New("graph: cannot assign Unknown as an actual amino acid")

	// ErrSequenceNotFound is returned by FromExported when an exported
	// leaf's sequence_id does not match any alignment sequence.
	ErrSequenceNotFound = errors.New("graph: exported sequence id not found in alignment")

	// ErrMalformedNodeLabel is returned by FromExported when a node label
	// is not of the form "N<integer>".
	ErrMalformedNodeLabel = errors.New("graph: malformed exported node label")

	// ErrUnrecognizedAminoAcidByte is returned by FromExported when an
	// exported amino_acids string contains a byte outside the known
	// alphabet.
	ErrUnrecognizedAminoAcidByte = errors.New("graph: unrecognized amino acid byte in exported node")
)
