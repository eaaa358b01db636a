package mat_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	gmat "github.com/equinor/aps-gaussfield/mat"
)

func TestCholeskyRoundTrip(t *testing.T) {
	n := 3
	raw := []float64{
		4, 2, 2,
		2, 5, 1,
		2, 1, 6,
	}
	sym := gmat.NewSymDense(n, append([]float64(nil), raw...))

	var c gmat.Cholesky
	require.NoError(t, c.Factorize(sym))

	got := make([][]float64, n)
	for i := 0; i < n; i++ {
		got[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			s := 0.0
			for k := 0; k <= minInt(i, j); k++ {
				s += c.At(i, k) * c.At(j, k)
			}
			got[i][j] = s
		}
	}
	want := make([][]float64, n)
	for i := 0; i < n; i++ {
		want[i] = raw[i*n : i*n+n]
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("L*L^T != A (-want +got):\n%s", diff)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func TestCholeskyRejectsNonPositiveDefinite(t *testing.T) {
	sym := gmat.NewSymDense(2, []float64{
		1, 2,
		2, 1, // not PD: determinant negative
	})
	var c gmat.Cholesky
	err := c.Factorize(sym)
	require.Error(t, err)
	var npd *gmat.NotPositiveDefiniteError
	require.ErrorAs(t, err, &npd)
}

func TestCholeskyApplyTo(t *testing.T) {
	sym := gmat.NewSymDense(2, []float64{1, 0, 0, 1})
	var c gmat.Cholesky
	require.NoError(t, c.Factorize(sym))
	z := []float64{1, 2}
	got := c.ApplyTo(z, 2)
	require.InDeltaSlice(t, []float64{1, 2}, got, 1e-12)
}
