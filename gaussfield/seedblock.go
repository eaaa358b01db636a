package gaussfield

import (
	"github.com/equinor/aps-gaussfield/corr"
	"github.com/equinor/aps-gaussfield/distuv"
	"github.com/equinor/aps-gaussfield/mat"
)

// SeedBlock draws the 5x5 anchor block the detailed flavour uses to
// bootstrap its working grid, in place of the corner-growing scheme
// simple/standard flavours use. Ported from inits_grid/inito_grid in
// simGauss2D.cpp.
type SeedBlock struct{}

// stride returns d = (mxind-1)/4, the physical spacing between anchor
// nodes in the 5x5 subgrid.
func stride(mxind int) int {
	return (mxind - 1) / 4
}

// DrawSimple builds the 25x25 unit-diagonal covariance matrix
// K[i][j] = model.CorrInt((i-l)*d, (j-m)*d) over the 5x5 anchor
// positions, Cholesky-factors it as K = L*L^T, draws 25 fresh N(0,1)
// variates z, and writes L*z into the working grid's anchor nodes. Returns a
// *KernelError wrapping the Cholesky failure if K is not positive
// definite.
func (SeedBlock) DrawSimple(g *Grid, mxind int, model corr.Model, src *distuv.CachedNormal) error {
	d := stride(mxind)
	k := mat.NewSymDense(25, nil)
	for i := 1; i <= 5; i++ {
		for j := 1; j <= 5; j++ {
			row := seedIndex(i, j)
			k.SetSym(row, row, 1.0)
			for n := 0; n < row; n++ {
				l, m := seedCoord(n)
				dix := (i - l) * d
				diy := (j - m) * d
				k.SetSym(row, n, model.CorrInt(dix, diy))
			}
		}
	}
	return drawSeedBlock(g, mxind, d, k, src)
}

// DrawOrdinary is the ordinary-kriging counterpart of DrawSimple:
// off-diagonal entries are c0 - corr and diagonal entries are c0,
// where c0 = model.CorrInt(mxind-1, mxind-1). Ported from inito_grid.
func (SeedBlock) DrawOrdinary(g *Grid, mxind int, model corr.Model, src *distuv.CachedNormal) error {
	d := stride(mxind)
	c0 := model.CorrInt(mxind-1, mxind-1)
	k := mat.NewSymDense(25, nil)
	for i := 1; i <= 5; i++ {
		for j := 1; j <= 5; j++ {
			row := seedIndex(i, j)
			k.SetSym(row, row, c0)
			for n := 0; n < row; n++ {
				l, m := seedCoord(n)
				dix := (i - l) * d
				diy := (j - m) * d
				k.SetSym(row, n, c0-model.CorrInt(dix, diy))
			}
		}
	}
	return drawSeedBlock(g, mxind, d, k, src)
}

// seedIndex flattens 1-based (i,j) in [1,5]x[1,5] to a 0-based row
// index in [0,25), matching k = j + 5*(i-1) (1-based) from spec.md
// §4.5.
func seedIndex(i, j int) int {
	return (j - 1) + (i-1)*5
}

// seedCoord inverts seedIndex, returning the 1-based (i,j) pair whose
// flattened index is row.
func seedCoord(row int) (i, j int) {
	return row/5 + 1, row%5 + 1
}

func drawSeedBlock(g *Grid, mxind, d int, k *mat.SymDense, src *distuv.CachedNormal) error {
	var chol mat.Cholesky
	if err := chol.Factorize(k); err != nil {
		return &KernelError{Component: "seed block", Detail: "25x25 covariance is not positive definite", Err: err}
	}

	noise := make([]float64, 25)
	for i := range noise {
		noise[i] = src.Sample(1.0)
	}

	for i := 1; i <= 5; i++ {
		for j := 1; j <= 5; j++ {
			row := seedIndex(i, j)
			value := chol.ApplyTo(noise, row+1)[row]
			x := d*(i-1) + 1
			y := d*(j-1) + 1
			g.Set(x, y, value)
		}
	}
	return nil
}
