package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/ratemodel"
)

func uniformTestModel() *ratemodel.Model {
	exch := mat.NewDense(aa.Count, aa.Count, nil)
	for i := 0; i < aa.Count; i++ {
		for j := 0; j < aa.Count; j++ {
			if i != j {
				exch.Set(i, j, 1.0)
			}
		}
	}
	var freq [aa.Count]float64
	for i := range freq {
		freq[i] = 1.0 / aa.Count
	}
	return ratemodel.New(exch, freq)
}

// writeUniformPAML writes a PAML file with a flat exchangeability matrix
// and uniform frequencies, the same shape paml_test's sampleFile builds.
func writeUniformPAML(path string) error {
	var b strings.Builder
	for row := 1; row < aa.Count; row++ {
		for col := 0; col < row; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("1.0")
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for i := 0; i < aa.Count; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%f", 1.0/float64(aa.Count))
	}
	b.WriteString(";\n")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func writeFastaFixture(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}

func tempAlignmentFixture(dir string) (pamlPath, alignmentPath string, err error) {
	pamlPath = filepath.Join(dir, "fixture.paml")
	alignmentPath = filepath.Join(dir, "fixture.fasta")
	if err = writeUniformPAML(pamlPath); err != nil {
		return "", "", err
	}
	if err = writeFastaFixture(alignmentPath, mixedColumnsAlignment); err != nil {
		return "", "", err
	}
	return pamlPath, alignmentPath, nil
}
