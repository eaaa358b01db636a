package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equinor/aps-gaussfield/gaussfield"
)

func TestParseFlavourKnownValues(t *testing.T) {
	cases := map[string]gaussfield.Flavour{
		"simple":   gaussfield.Simple,
		"standard": gaussfield.Standard,
		"detailed": gaussfield.Detailed,
	}
	for name, want := range cases {
		got, err := parseFlavour(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParseFlavourRejectsUnknown(t *testing.T) {
	_, err := parseFlavour("exotic")
	require.Error(t, err)
}

func TestRunDrawsAndPrintsGrid(t *testing.T) {
	f := &flags{
		nx: 5, ny: 5, xsize: 4, ysize: 4,
		variant: int(gaussfield.VariantSpherical),
		seed:    12345,
		range1:  2, range2: 2,
		flavour:  "simple",
		logLevel: 0,
	}
	require.NoError(t, run(f))
}

func TestRunUnknownVariantDoesNotError(t *testing.T) {
	f := &flags{
		nx: 5, ny: 5, xsize: 4, ysize: 4,
		variant: 0,
		seed:    1,
		range1:  2, range2: 2,
		flavour:  "simple",
		logLevel: 0,
	}
	require.NoError(t, run(f))
}

func TestRunRejectsTooSmallGrid(t *testing.T) {
	f := &flags{
		nx: 1, ny: 5, xsize: 4, ysize: 4,
		variant: int(gaussfield.VariantExponential),
		seed:    1,
		range1:  1, range2: 1,
		flavour:  "simple",
		logLevel: 0,
	}
	require.Error(t, run(f))
}

func TestNewRootCmdRunsWithFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--nx=5", "--ny=5", "--xsize=4", "--ysize=4",
		"--variant=1", "--seed=7", "--range1=2", "--range2=2",
		"--flavour=simple", "--log-level=0",
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
}
