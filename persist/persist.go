package persist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/ratemodel"
)

const (
	graphFileName     = "graph.json"
	parameterFileName = "parameter.txt"
)

// WriteGraph pretty-prints g's exported form to w as JSON, the format
// every CLI command round-trips a graph through between invocations.
func WriteGraph(w io.Writer, g *graph.Graph) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(g.Exported())
}

// ReadGraph parses an exported graph from r and rebuilds it against
// model/aln at the given rate parameter.
func ReadGraph(r io.Reader, model *ratemodel.Model, aln *alignment.Alignment, parameter float64) (*graph.Graph, error) {
	var exported graph.ExportedGraph
	if err := json.NewDecoder(r).Decode(&exported); err != nil {
		return nil, fmt.Errorf("persist: decode graph.json: %w", err)
	}
	return graph.FromExported(model, aln, parameter, exported)
}

// SaveToDir writes graph.json and parameter.txt into dir, the pair every
// command that commits a graph back to disk produces together.
func SaveToDir(dir string, g *graph.Graph) error {
	graphFile, err := os.Create(filepath.Join(dir, graphFileName))
	if err != nil {
		return err
	}
	defer graphFile.Close()
	if err := WriteGraph(graphFile, g); err != nil {
		return err
	}

	parameter := strconv.FormatFloat(g.Parameter(), 'g', -1, 64)
	return os.WriteFile(filepath.Join(dir, parameterFileName), []byte(parameter), 0o644)
}

// LoadFromDir reads graph.json and parameter.txt from dir and rebuilds
// the graph they describe against model/aln.
func LoadFromDir(dir string, model *ratemodel.Model, aln *alignment.Alignment) (*graph.Graph, error) {
	parameterBytes, err := os.ReadFile(filepath.Join(dir, parameterFileName))
	if err != nil {
		return nil, err
	}
	parameter, err := strconv.ParseFloat(strings.TrimSpace(string(parameterBytes)), 64)
	if err != nil {
		return nil, fmt.Errorf("persist: parse parameter.txt: %w", err)
	}

	graphFile, err := os.Open(filepath.Join(dir, graphFileName))
	if err != nil {
		return nil, err
	}
	defer graphFile.Close()

	return ReadGraph(graphFile, model, aln, parameter)
}
