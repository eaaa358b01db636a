// Package gaussfield implements the dyadic sequential-Gaussian field
// engine: the working grid, seed-block initialiser, refinement
// driver, and post-draw validation of spec.md §4.5-4.7, wired
// together behind the single DrawGauss2D entry point of spec.md §6.
// Ported from SimGaussField2D's drawGridSimple/Standard/Detailed
// (simGauss2D.cpp).
package gaussfield

import (
	"fmt"
	"math"

	"github.com/equinor/aps-gaussfield/corr"
	"github.com/equinor/aps-gaussfield/distuv"
)

// Variant selects the correlation family DrawGauss2D builds, matching
// the four values spec.md §6 documents for draw_gauss_2d.
type Variant int

const (
	VariantSpherical      Variant = 1
	VariantExponential    Variant = 2
	VariantGaussian       Variant = 3
	VariantGenExponential Variant = 4
)

func buildModel(variant Variant, r1, r2, angleRad, power float64) (corr.Model, bool) {
	const sill = 1.0
	switch variant {
	case VariantSpherical:
		return corr.NewSpherical3(r1, r2, angleRad, sill), true
	case VariantExponential:
		return corr.NewExponential(r1, r2, angleRad, sill), true
	case VariantGaussian:
		return corr.NewGaussian(r1, r2, angleRad, sill), true
	case VariantGenExponential:
		return corr.NewGeneralizedExponential(r1, r2, angleRad, sill, power), true
	default:
		return nil, false
	}
}

func areaMessage(xsize, ysize float64) string {
	return fmt.Sprintf("Area of simulated field is (%f,%f)", xsize, ysize)
}

// dyadicOrder returns (m, mxind) for the working grid spanning
// max(nx,ny): m = ceil(log2(max(nx,ny)-1)), mxind = 2^m + 1.
func dyadicOrder(nx, ny int) (m, mxind int) {
	n := nx
	if ny > n {
		n = ny
	}
	m = int(math.Ceil(math.Log2(float64(n - 1))))
	mxind = (1 << uint(m)) + 1
	return m, mxind
}

// DrawGauss2D is the single entry point spec.md §6 describes. nx, ny
// must be >= 2 and xsize, ysize > 0; angleDeg is converted to radians
// before use; power is consulted only for VariantGenExponential. An
// unknown variant returns (nil, nil) -- no error -- per spec.md §6/§8
// scenario 5. Any other illegal argument, non-convergent eigensolver,
// singular pattern solve, or non-PD seed Cholesky is fatal and
// returned as a *KernelError; the returned grid is nil whenever error
// is non-nil. Post-draw validation (spec.md §4.7) is not folded into
// this call: callers that want the CHECK warning run Validate on the
// returned grid themselves, matching the original's separation
// between drawGrid* and checkSimulatedVariance.
func DrawGauss2D(nx, ny int, xsize, ysize float64, variant Variant, seed uint32, r1, r2, angleDeg, power float64, flavour Flavour) (*Grid, error) {
	if nx < 2 || ny < 2 {
		return nil, &KernelError{Component: "draw_gauss_2d", Detail: "nx and ny must each be >= 2"}
	}
	if nx*ny < 2 {
		return nil, &KernelError{Component: "draw_gauss_2d", Detail: "nx*ny must be >= 2"}
	}
	if xsize <= 0 || ysize <= 0 {
		return nil, &KernelError{Component: "draw_gauss_2d", Detail: "xsize and ysize must be positive"}
	}

	if variant >= VariantSpherical && variant <= VariantGenExponential {
		if r1 <= 0 || r2 <= 0 {
			return nil, &KernelError{Component: "draw_gauss_2d", Detail: "ranges must be positive"}
		}
		if variant == VariantGenExponential && (power <= 0 || power > 2) {
			return nil, &KernelError{Component: "draw_gauss_2d", Detail: "power must be in (0, 2]"}
		}
	}

	angleRad := angleDeg * math.Pi / 180.0
	model, ok := buildModel(variant, r1, r2, angleRad, power)
	if !ok {
		return nil, nil
	}

	model.RescaleToGrid(nx, ny, xsize, ysize)
	defer model.RescaleToPhysical(nx, ny, xsize, ysize)

	m, _ := dyadicOrder(nx, ny)
	src := &distuv.CachedNormal{Src: distuv.NewSource(seed)}
	engine := NewEngine(model, src, m)

	var err error
	switch flavour {
	case Standard:
		err = engine.DrawStandard(xsize, ysize)
	case Detailed:
		err = engine.DrawDetailed()
	default:
		err = engine.DrawSimple()
	}
	if err != nil {
		return nil, err
	}

	return engine.Grid().Sub(1, nx, 1, ny), nil
}
