package tracer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/logscalar"
	"github.com/winstonewert/aminograph/tracer"
)

func TestZerologTracer_SatisfiesGraphTracer(t *testing.T) {
	var _ graph.Tracer = tracer.ZerologTracer{}
}

func TestZerologTracer_ClosePassesValueThrough(t *testing.T) {
	var buf bytes.Buffer
	logger := tracer.NewLogger(&buf, true)
	tr := logger.Tracer("probability")

	tr.Data("prior", logscalar.One())
	got := tr.Close(logscalar.Zero())

	assert.Equal(t, logscalar.Zero(), got)
	assert.NotEmpty(t, buf.String())
}

func TestStepLogsAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := tracer.NewLogger(&buf, false)
	logger.Step("round %d accepted", 3)

	assert.Contains(t, buf.String(), "round 3 accepted")
}
