// Package kriging implements the engine's pattern catalogue and
// kriging weight cache: the fixed-capacity store of neighbour-offset
// templates and the simple/ordinary-kriging weights solved for each
// one. Ported from SimGaussField2D's c_patt/c_weights/c_resvar common
// block and its init_weights_s/init_weights_o routines
// (simGauss2D.cpp).
package kriging

import (
	"fmt"
	"math"

	"github.com/equinor/aps-gaussfield/corr"
	"github.com/equinor/aps-gaussfield/mat"
)

// MaxPatterns and MaxNeighbours are the original engine's fixed
// capacities: up to 30 distinct geometric neighbourhood patterns per
// refinement level, each with up to 30 neighbours.
const (
	MaxPatterns   = 30
	MaxNeighbours = 30
)

// epsCond is the original's EPS_COND: 1*DBL_EPSILON, the reciprocal-
// condition-number floor below which a pattern's covariance matrix is
// treated as numerically singular.
const epsCond = 1.0 * epsilon

const epsilon = 2.220446049250313e-16

// Offset is a single neighbour displacement, in grid-node units.
type Offset struct {
	Dx, Dy int
}

// SingularPatternError reports that a pattern's covariance matrix
// failed the reciprocal-condition-number check during SolveSimple or
// SolveOrdinary. This is a KERNEL-category failure: fatal for the
// enclosing draw.
type SingularPatternError struct {
	Pattern int
	Rcond   float64
}

func (e *SingularPatternError) Error() string {
	return fmt.Sprintf("kriging: pattern %d covariance matrix is singular (rcond=%g)", e.Pattern, e.Rcond)
}

// Catalogue is the fixed-capacity offset/weight/residual-variance
// store shared by every node drawn at a given refinement level. It is
// rebuilt (ResetOffsets + SetOffset + Solve*) once per level and then
// consulted by every node sharing a pattern id, which is the sole
// mechanism that keeps the simulation tractable.
type Catalogue struct {
	offsets [MaxPatterns + 1][MaxNeighbours + 1]Offset
	weights [MaxPatterns + 1][MaxNeighbours + 1]float64
	resVar  [MaxPatterns + 1]float64
	n       [MaxPatterns + 1]int
}

// ResetOffsets zeros every stored offset, weight, and residual
// variance. Called at the start of every refinement level.
func (c *Catalogue) ResetOffsets() {
	for p := range c.offsets {
		for k := range c.offsets[p] {
			c.offsets[p][k] = Offset{}
			c.weights[p][k] = 0
		}
		c.resVar[p] = 0
		c.n[p] = 0
	}
}

// SetOffset writes offsets[p][k] = (ux*lag, uy*lag), the direction
// vector ux,uy scaled to the current refinement lag. Pattern and slot
// ids are 1-based, matching the original's c_patt bookkeeping and the
// rest of this package's public numbering.
func (c *Catalogue) SetOffset(pattern, lag, slot, ux, uy int) {
	c.offsets[pattern][slot] = Offset{Dx: ux * lag, Dy: uy * lag}
	if slot > c.n[pattern] {
		c.n[pattern] = slot
	}
}

// Weight returns the kriging weight for neighbour slot of pattern,
// valid after a Solve* call for that pattern.
func (c *Catalogue) Weight(pattern, slot int) float64 {
	return c.weights[pattern][slot]
}

// Offsets returns the n neighbour offsets currently stored for
// pattern.
func (c *Catalogue) Offsets(pattern, n int) []Offset {
	out := make([]Offset, n)
	for k := 1; k <= n; k++ {
		out[k-1] = c.offsets[pattern][k]
	}
	return out
}

// ResidualVariance returns the residual (conditional) variance stored
// for pattern after a Solve* call.
func (c *Catalogue) ResidualVariance(pattern int) float64 {
	return c.resVar[pattern]
}

// SolveSimple builds the n x n covariance matrix C (unit diagonal,
// C[i][j] = model.CorrInt(offsets[i]-offsets[j])) and the n-vector
// c (c[i] = model.CorrInt(offsets[i])) for the given pattern, solves
// C*w = c via LU with a reciprocal-condition check, and stores the
// weights plus residual variance r = 1 - w.c (clamped to >= 0).
// Ported from init_weights_s.
func (c *Catalogue) SolveSimple(pattern, n int, model corr.Model) error {
	if n == 0 {
		c.resVar[pattern] = 1
		return nil
	}
	a := make([]float64, n*n)
	rhs := make([]float64, n)
	corrToCentre := make([]float64, n)

	for i := 0; i < n; i++ {
		a[i*n+i] = 1.0
		oi := c.offsets[pattern][i+1]
		corrToCentre[i] = model.CorrInt(oi.Dx, oi.Dy)
		rhs[i] = corrToCentre[i]
		for j := i + 1; j < n; j++ {
			oj := c.offsets[pattern][j+1]
			v := model.CorrInt(oi.Dx-oj.Dx, oi.Dy-oj.Dy)
			a[i*n+j] = v
			a[j*n+i] = v
		}
	}

	var lu mat.LU
	if err := lu.Factorize(n, a); err != nil {
		return &SingularPatternError{Pattern: pattern}
	}
	rcond := lu.RcondEstimate(mat.ColumnNorms1(n, a))
	if math.Abs(rcond) < epsCond {
		return &SingularPatternError{Pattern: pattern, Rcond: rcond}
	}
	w := lu.Solve(rhs)

	r := 1.0
	for i := 0; i < n; i++ {
		c.weights[pattern][i+1] = w[i]
		r -= w[i] * corrToCentre[i]
	}
	if r < 0 {
		r = 0
	}
	c.resVar[pattern] = r
	c.n[pattern] = n
	return nil
}

// SolveOrdinary builds the (n+1) x (n+1) augmented ordinary-kriging
// system (zero diagonal on the first n rows/cols, a border row/column
// of ones, a zero corner, right-hand side c extended by 1), solves it
// the same way as SolveSimple, and stores the first n entries as
// weights and r = w.c + mu (the Lagrange multiplier, the (n+1)-th
// solution entry), clamped to >= 0. Ported from init_weights_o.
func (c *Catalogue) SolveOrdinary(pattern, n int, model corr.Model) error {
	if n == 0 {
		c.resVar[pattern] = 0
		return nil
	}
	m := n + 1
	a := make([]float64, m*m)
	rhs := make([]float64, m)
	corrToCentre := make([]float64, n)

	for i := 0; i < n; i++ {
		a[i*m+i] = 0.0
		oi := c.offsets[pattern][i+1]
		corrToCentre[i] = model.CorrInt(oi.Dx, oi.Dy)
		rhs[i] = corrToCentre[i]
		for j := i + 1; j < n; j++ {
			oj := c.offsets[pattern][j+1]
			v := model.CorrInt(oi.Dx-oj.Dx, oi.Dy-oj.Dy)
			a[i*m+j] = v
			a[j*m+i] = v
		}
		a[i*m+n] = 1.0
		a[n*m+i] = 1.0
	}
	a[n*m+n] = 0.0
	rhs[n] = 1.0

	var lu mat.LU
	if err := lu.Factorize(m, a); err != nil {
		return &SingularPatternError{Pattern: pattern}
	}
	rcond := lu.RcondEstimate(mat.ColumnNorms1(m, a))
	if math.Abs(rcond) < epsCond {
		return &SingularPatternError{Pattern: pattern, Rcond: rcond}
	}
	w := lu.Solve(rhs)

	r := 0.0
	for i := 0; i < n; i++ {
		c.weights[pattern][i+1] = w[i]
		r += w[i] * corrToCentre[i]
	}
	r += w[n]
	if r < 0 {
		r = 0
	}
	c.resVar[pattern] = r
	c.n[pattern] = n
	return nil
}
