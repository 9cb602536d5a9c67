package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winstonewert/aminograph/aa"
)

func rootMoveLiteral(t *testing.T, dir string) string {
	t.Helper()
	model, err := loadModel(dir)
	require.NoError(t, err)
	aln, err := loadAlignment(dir, model, false)
	require.NoError(t, err)
	g, err := loadGraph(dir, model, aln)
	require.NoError(t, err)
	return fmt.Sprintf("set-amino-acid:N%d@0=A", int(g.Root()))
}

func TestRunInfer_ProducesWorkingDirectoryAndReports(t *testing.T) {
	fixtureDir := t.TempDir()
	pamlPath, alignmentPath, err := tempAlignmentFixture(fixtureDir)
	require.NoError(t, err)

	outputDir := filepath.Join(t.TempDir(), "run")
	require.NoError(t, runInfer(alignmentPath, outputDir, pamlPath, 1, false))

	for _, name := range []string{
		matrixFileName, alignmentFileName, parameterFileName,
		"graph.json", movesLogFileName, roundsLogFileName,
		"output.dot", "stats.json", "node-stats", "details.txt",
	} {
		_, statErr := os.Stat(filepath.Join(outputDir, name))
		assert.NoErrorf(t, statErr, "expected %s to exist", name)
	}
}

func TestRunReanalyze_RegeneratesReportsFromSavedGraph(t *testing.T) {
	fixtureDir := t.TempDir()
	pamlPath, alignmentPath, err := tempAlignmentFixture(fixtureDir)
	require.NoError(t, err)

	outputDir := filepath.Join(t.TempDir(), "run")
	require.NoError(t, runInfer(alignmentPath, outputDir, pamlPath, 1, false))

	dotPath := filepath.Join(outputDir, "output.dot")
	require.NoError(t, os.Remove(dotPath))

	require.NoError(t, runReanalyze(outputDir))
	_, statErr := os.Stat(dotPath)
	assert.NoError(t, statErr)
}

func TestRunApplyGroup_WritesToTargetDirWithoutMutatingSource(t *testing.T) {
	fixtureDir := t.TempDir()
	pamlPath, alignmentPath, err := tempAlignmentFixture(fixtureDir)
	require.NoError(t, err)

	sourceDir := filepath.Join(t.TempDir(), "source")
	require.NoError(t, runInfer(alignmentPath, sourceDir, pamlPath, 1, false))

	model, err := loadModel(sourceDir)
	require.NoError(t, err)
	aln, err := loadAlignment(sourceDir, model, false)
	require.NoError(t, err)
	require.NotEmpty(t, aln.Positions)

	targetDir := filepath.Join(t.TempDir(), "target")
	require.NoError(t, runApplyGroup(sourceDir, 0, aa.AminoAcid(0), aa.AminoAcid(0), targetDir))

	_, statErr := os.Stat(filepath.Join(targetDir, "graph.json"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(targetDir, "output.dot"))
	assert.NoError(t, statErr)
}

func TestRunApplyMove_ReplaysSetAminoAcidLiteral(t *testing.T) {
	fixtureDir := t.TempDir()
	pamlPath, alignmentPath, err := tempAlignmentFixture(fixtureDir)
	require.NoError(t, err)

	sourceDir := filepath.Join(t.TempDir(), "source")
	require.NoError(t, runInfer(alignmentPath, sourceDir, pamlPath, 1, false))

	literal := rootMoveLiteral(t, sourceDir)

	targetDir := filepath.Join(t.TempDir(), "target")
	require.NoError(t, runApplyMove(sourceDir, targetDir, []string{literal}))

	_, statErr := os.Stat(filepath.Join(targetDir, "graph.json"))
	assert.NoError(t, statErr)
}

func TestRunDebugMove_DoesNotMutateSource(t *testing.T) {
	fixtureDir := t.TempDir()
	pamlPath, alignmentPath, err := tempAlignmentFixture(fixtureDir)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "run")
	require.NoError(t, runInfer(alignmentPath, dir, pamlPath, 1, false))

	literal := rootMoveLiteral(t, dir)

	before, err := os.ReadFile(filepath.Join(dir, "graph.json"))
	require.NoError(t, err)

	require.NoError(t, runDebugMove(dir, literal, "test"))

	after, err := os.ReadFile(filepath.Join(dir, "graph.json"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRunBenchMoves_DoesNotPersist(t *testing.T) {
	fixtureDir := t.TempDir()
	pamlPath, alignmentPath, err := tempAlignmentFixture(fixtureDir)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "run")
	require.NoError(t, runInfer(alignmentPath, dir, pamlPath, 1, false))

	info, err := os.Stat(filepath.Join(dir, "graph.json"))
	require.NoError(t, err)
	before := info.ModTime()

	require.NoError(t, runBenchMoves(dir))

	info, err = os.Stat(filepath.Join(dir, "graph.json"))
	require.NoError(t, err)
	assert.Equal(t, before, info.ModTime())
}
