package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is a single FASTA entry: its header name and raw sequence bytes,
// concatenated across any wrapped sequence lines.
type Record struct {
	ID       string
	Sequence []byte
}

// ReadAll parses every record in r. It does not validate the residue
// alphabet or equal-length invariant; callers needing those checks apply
// them afterward (alignment.ReadAlignment does both).
func ReadAll(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []Record
	var current *Record
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			if current != nil && len(current.Sequence) == 0 {
				return nil, fmt.Errorf("%w: %q (line %d)", ErrEmptyRecord, current.ID, lineNo)
			}
			name := strings.TrimSpace(strings.TrimPrefix(line, ">"))
			if name == "" {
				return nil, fmt.Errorf("%w (line %d)", ErrEmptyHeader, lineNo)
			}
			records = append(records, Record{ID: name})
			current = &records[len(records)-1]
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("%w (line %d)", ErrNoHeader, lineNo)
		}
		current.Sequence = append(current.Sequence, []byte(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: scan failed: %w", err)
	}
	if current != nil && len(current.Sequence) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyRecord, current.ID)
	}

	return records, nil
}
