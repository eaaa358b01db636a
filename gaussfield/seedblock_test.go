package gaussfield_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equinor/aps-gaussfield/corr"
	"github.com/equinor/aps-gaussfield/distuv"
	"github.com/equinor/aps-gaussfield/gaussfield"
)

func TestSeedBlockDrawSimpleFillsAnchors(t *testing.T) {
	mxind := 17 // d = (17-1)/4 = 4
	g := gaussfield.NewGrid(1, mxind, 1, mxind)
	model := corr.NewExponential(8, 8, 0, 1)
	src := &distuv.CachedNormal{Src: distuv.NewSource(42)}

	require.NoError(t, (gaussfield.SeedBlock{}).DrawSimple(g, mxind, model, src))

	// Every 5x5 anchor position at stride d=4 should hold a non-zero
	// value: the grid starts all-zero, and an exact zero from 25
	// continuous draws is implausible.
	nonZero := 0
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if g.At(1+4*i, 1+4*j) != 0 {
				nonZero++
			}
		}
	}
	require.Equal(t, 25, nonZero)
}

func TestSeedBlockDrawSimpleIsDeterministic(t *testing.T) {
	mxind := 17
	model := corr.NewGaussian(8, 8, 0, 1)

	g1 := gaussfield.NewGrid(1, mxind, 1, mxind)
	src1 := &distuv.CachedNormal{Src: distuv.NewSource(7)}
	require.NoError(t, (gaussfield.SeedBlock{}).DrawSimple(g1, mxind, model, src1))

	g2 := gaussfield.NewGrid(1, mxind, 1, mxind)
	src2 := &distuv.CachedNormal{Src: distuv.NewSource(7)}
	require.NoError(t, (gaussfield.SeedBlock{}).DrawSimple(g2, mxind, model, src2))

	require.Equal(t, g1.At(1, 1), g2.At(1, 1))
	require.Equal(t, g1.At(9, 13), g2.At(9, 13))
}

func TestSeedBlockDrawOrdinaryFillsAnchors(t *testing.T) {
	mxind := 17
	g := gaussfield.NewGrid(1, mxind, 1, mxind)
	// A long range keeps c0 = corr(16,16) near 1 and every c0 - corr
	// entry small, so the ordinary-form matrix is positive definite.
	// (With range 8, c0 would be 0 and the diagonal would fail Cholesky.)
	model := corr.NewSpherical3(1000, 1000, 0, 1)
	src := &distuv.CachedNormal{Src: distuv.NewSource(3)}

	require.NoError(t, (gaussfield.SeedBlock{}).DrawOrdinary(g, mxind, model, src))
	require.NotEqual(t, 0.0, g.At(1, 1))
}
