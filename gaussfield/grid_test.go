package gaussfield_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equinor/aps-gaussfield/gaussfield"
)

func TestGridSetAndAt(t *testing.T) {
	g := gaussfield.NewGrid(1, 5, 1, 5)
	g.Set(3, 4, 2.5)
	require.Equal(t, 2.5, g.At(3, 4))
	require.Equal(t, 0.0, g.At(1, 1))
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := gaussfield.NewGrid(1, 3, 1, 3)
	g.Set(2, 2, 7)
	cp := g.Clone()
	cp.Set(2, 2, -7)
	require.Equal(t, 7.0, g.At(2, 2))
	require.Equal(t, -7.0, cp.At(2, 2))
}

func TestGridSubCropsWindow(t *testing.T) {
	g := gaussfield.NewGrid(1, 5, 1, 5)
	for j := 1; j <= 5; j++ {
		for i := 1; i <= 5; i++ {
			g.Set(i, j, float64(i*10+j))
		}
	}
	sub := g.Sub(2, 3, 2, 3)
	xstart, xend, ystart, yend := sub.Bounds()
	require.Equal(t, 2, xstart)
	require.Equal(t, 3, xend)
	require.Equal(t, 2, ystart)
	require.Equal(t, 3, yend)
	require.Equal(t, g.At(2, 2), sub.At(2, 2))
	require.Equal(t, g.At(3, 3), sub.At(3, 3))
}

func TestGridSubOutOfBoundsPanics(t *testing.T) {
	g := gaussfield.NewGrid(1, 3, 1, 3)
	require.Panics(t, func() { g.Sub(0, 3, 1, 3) })
}

func TestGridIndexOutOfBoundsPanics(t *testing.T) {
	g := gaussfield.NewGrid(1, 3, 1, 3)
	require.Panics(t, func() { g.At(4, 1) })
}
