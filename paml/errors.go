package paml

import "errors"

// Sentinel errors for the paml package.
var (
	// ErrWrongColumnCount indicates a triangular-matrix row did not have
	// exactly as many numbers as its row index.
	ErrWrongColumnCount = errors.New("paml: wrong number of columns on matrix row")

	// ErrExpectedBlankLine indicates the separator line between the matrix
	// and the frequency row was not blank.
	ErrExpectedBlankLine = errors.New("paml: expected blank line after matrix")

	// ErrWrongFrequencyCount indicates the frequency line did not have
	// exactly 20 entries.
	ErrWrongFrequencyCount = errors.New("paml: expected 20 stationary frequencies")

	// ErrUnexpectedEOF indicates the file ended before all matrix rows or
	// the frequency line were read.
	ErrUnexpectedEOF = errors.New("paml: unexpected end of file")
)
