package paml

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/ratemodel"
)

// Read parses a PAML exchangeability matrix and stationary-frequency row
// and builds the corresponding ratemodel.Model.
func Read(r io.Reader) (*ratemodel.Model, error) {
	scanner := bufio.NewScanner(r)

	exch := mat.NewDense(aa.Count, aa.Count, nil)

	for row := 1; row < aa.Count; row++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: expected row %d", ErrUnexpectedEOF, row)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != row {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrWrongColumnCount, row, len(fields), row)
		}
		for column, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("paml: row %d column %d: %w", row, column, err)
			}
			exch.Set(row, column, value)
			exch.Set(column, row, value)
		}
	}

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: expected blank separator line", ErrUnexpectedEOF)
	}
	if strings.TrimSpace(scanner.Text()) != "" {
		return nil, fmt.Errorf("%w: got %q", ErrExpectedBlankLine, scanner.Text())
	}

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: expected frequency line", ErrUnexpectedEOF)
	}
	freqLine := strings.TrimRight(strings.TrimSpace(scanner.Text()), ";")
	fields := strings.Fields(freqLine)
	if len(fields) != aa.Count {
		return nil, fmt.Errorf("%w: got %d", ErrWrongFrequencyCount, len(fields))
	}

	var frequencies [aa.Count]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("paml: frequency %d: %w", i, err)
		}
		frequencies[i] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("paml: scan failed: %w", err)
	}

	return ratemodel.New(exch, frequencies), nil
}
