package main

import (
	"fmt"
	"io"

	"github.com/winstonewert/aminograph/logscalar"
	"github.com/winstonewert/aminograph/search"
)

// appendMoveLog writes one moves.log line in the original's
// move\tprobability\tkind column order.
func appendMoveLog(w io.Writer, entry search.MoveLog) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Move, entry.Probability, entry.Kind)
	return err
}

// appendRoundsLog writes one rounds.log line: the graph's probability
// before that round's work.
func appendRoundsLog(w io.Writer, probability logscalar.Log) error {
	_, err := fmt.Fprintf(w, "%s\n", probability)
	return err
}
