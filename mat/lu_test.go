package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	gmat "github.com/equinor/aps-gaussfield/mat"
)

func TestLUSolve(t *testing.T) {
	n := 3
	a := []float64{
		2, 1, 1,
		4, 3, 3,
		8, 7, 9,
	}
	b := []float64{4, 10, 24}

	var lu gmat.LU
	require.NoError(t, lu.Factorize(n, a))
	x := lu.Solve(b)

	// Verify A*x == b.
	for i := 0; i < n; i++ {
		got := 0.0
		for j := 0; j < n; j++ {
			got += a[i*n+j] * x[j]
		}
		require.InDelta(t, b[i], got, 1e-9)
	}
}

func TestLUFactorizeSingular(t *testing.T) {
	n := 2
	a := []float64{
		1, 2,
		2, 4, // row 2 = 2*row 1
	}
	var lu gmat.LU
	err := lu.Factorize(n, a)
	require.Error(t, err)
	var se *gmat.SingularError
	require.ErrorAs(t, err, &se)
}

func TestRcondEstimateWellConditioned(t *testing.T) {
	n := 2
	a := []float64{1, 0, 0, 1} // identity: rcond should be 1
	var lu gmat.LU
	require.NoError(t, lu.Factorize(n, a))
	norms := gmat.ColumnNorms1(n, a)
	rcond := lu.RcondEstimate(norms)
	require.InDelta(t, 1.0, rcond, 1e-9)
}

func TestRcondEstimateNearSingularIsSmall(t *testing.T) {
	n := 2
	eps := 1e-12
	a := []float64{1, 1, 1, 1 + eps}
	var lu gmat.LU
	require.NoError(t, lu.Factorize(n, a))
	norms := gmat.ColumnNorms1(n, a)
	rcond := lu.RcondEstimate(norms)
	require.Less(t, rcond, 1e-6)
}
