package tracer

import (
	"github.com/rs/zerolog"

	"github.com/winstonewert/aminograph/logscalar"
)

// ZerologTracer implements graph.Tracer by emitting one debug-level
// zerolog event per reported value, duck-typed against graph.Tracer
// rather than importing the graph package directly (tracer sits above
// graph in the dependency order: graph must stay free of logging
// concerns, since its narrower Tracer interface is also satisfied by
// graph.NullTracer with no import of this package at all).
type ZerologTracer struct {
	zl zerolog.Logger
}

// Data logs name and value at debug level.
func (t ZerologTracer) Data(name string, value logscalar.Log) {
	t.zl.Debug().Str("name", name).Float64("value", value.Float()).Msg("trace")
}

// Close logs the final value under the name "result" and returns it
// unchanged, matching graph.NullTracer's passthrough contract.
func (t ZerologTracer) Close(value logscalar.Log) logscalar.Log {
	t.zl.Debug().Float64("value", value.Float()).Msg("result")
	return value
}
