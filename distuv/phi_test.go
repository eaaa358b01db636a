package distuv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equinor/aps-gaussfield/distuv"
)

func TestPhiKnownValues(t *testing.T) {
	require.InDelta(t, 0.5, distuv.Phi(0), 1e-6)
	require.InDelta(t, 0.8413447, distuv.Phi(1), 1e-6)
	require.InDelta(t, 0.1586553, distuv.Phi(-1), 1e-6)
	require.InDelta(t, 0.9772499, distuv.Phi(2), 1e-6)
}

func TestPhiInverseRoundTrip(t *testing.T) {
	for _, x := range []float64{-3, -1.5, -0.5, 0.1, 0.9, 1.5, 3} {
		y := distuv.Phi(x)
		got := distuv.PhiInverse(y)
		require.InDelta(t, x, got, 1e-6)
	}
}

func TestPhiInverseBounds(t *testing.T) {
	require.True(t, distuv.PhiInverse(0) < 0)
	require.True(t, distuv.PhiInverse(1) > 0)
	require.Equal(t, 0.0, distuv.PhiInverse(0.5))
}

func TestPhiInversePanicsOutsideUnitInterval(t *testing.T) {
	require.Panics(t, func() { distuv.PhiInverse(-0.1) })
	require.Panics(t, func() { distuv.PhiInverse(1.1) })
}
