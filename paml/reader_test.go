package paml_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winstonewert/aminograph/paml"
)

func sampleFile() string {
	var b strings.Builder
	for row := 1; row < 20; row++ {
		for col := 0; col < row; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("1.0")
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for i := 0; i < 20; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%f", 1.0/20.0)
	}
	b.WriteString(";\n")
	return b.String()
}

func TestRead_ValidFile(t *testing.T) {
	model, err := paml.Read(strings.NewReader(sampleFile()))
	require.NoError(t, err)
	require.NotNil(t, model)
}

func TestRead_WrongColumnCount(t *testing.T) {
	bad := "1.0 2.0\n" // row 1 must have exactly 1 entry
	_, err := paml.Read(strings.NewReader(bad))
	assert.ErrorIs(t, err, paml.ErrWrongColumnCount)
}

func TestRead_MissingBlankLine(t *testing.T) {
	var b strings.Builder
	for row := 1; row < 20; row++ {
		for col := 0; col < row; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("1.0")
		}
		b.WriteByte('\n')
	}
	b.WriteString("not blank\n")
	_, err := paml.Read(strings.NewReader(b.String()))
	assert.ErrorIs(t, err, paml.ErrExpectedBlankLine)
}
