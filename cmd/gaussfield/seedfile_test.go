package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.txt")
	require.NoError(t, writeSeedFile(path, 123456))

	got, err := readSeedFile(path)
	require.NoError(t, err)
	require.Equal(t, uint32(123456), got)
}

func TestReadSeedFileTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.txt")
	require.NoError(t, writeSeedFile(path, 42))

	got, err := readSeedFile(path)
	require.NoError(t, err)
	require.Equal(t, uint32(42), got)
}

func TestReadSeedFileMissingPath(t *testing.T) {
	_, err := readSeedFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestReadSeedFileRejectsNonNumeric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.txt")
	require.NoError(t, os.WriteFile(path, []byte("not-a-number"), 0o644))

	_, err := readSeedFile(path)
	require.Error(t, err)
}
