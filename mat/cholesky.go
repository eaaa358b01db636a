package mat

import "math"

// diagTol and pivotTol are the original engine's exact Cholesky
// validity thresholds: a diagonal entry at or below diagTol before
// the square root, or a pivot at or below pivotTol after subtracting
// the accumulated squared row sum, marks the matrix as not positive
// definite. Ported verbatim from lib_matr_cholesky.
const (
	diagTol   = 1e-10
	pivotTol  = 1e-12
)

// NotPositiveDefiniteError reports that a matrix submitted to
// Cholesky.Factorize failed the original engine's diagonal/pivot
// validity checks.
type NotPositiveDefiniteError struct {
	Index int // row at which the factorization failed
}

func (e *NotPositiveDefiniteError) Error() string {
	return "mat: matrix is not positive definite (or singular) for Cholesky factorization"
}

// Cholesky holds the lower-triangular factor L of a symmetric
// positive-definite matrix A = L*L^T. Unlike gonum's Cholesky (LAPACK
// dpotrf, which pivots internally in some code paths), this is an
// unpivoted, textbook factorisation: the engine's seed-block draw
// depends on exactly this algorithm and its failure thresholds
// (lib_matr_cholesky).
type Cholesky struct {
	n   int
	l   []float64 // lower triangle, row-major, n*n; upper triangle unused
	ok  bool
}

// Factorize overwrites the receiver with the Cholesky factor of a,
// read from its lower triangle. It returns an error (and leaves the
// receiver in a failed state) if a diagonal or accumulated pivot falls
// at or below the original's tolerance.
func (c *Cholesky) Factorize(a *SymDense) error {
	n := a.SymmetricDim()
	l := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			l[i*n+j] = a.At(i, j)
		}
	}

	for i := 0; i < n; i++ {
		if l[i*n+i] <= diagTol {
			c.ok = false
			return &NotPositiveDefiniteError{Index: i}
		}
		for j := 0; j < i; j++ {
			r := 0.0
			for k := 0; k < j; k++ {
				r += l[i*n+k] * l[j*n+k]
			}
			l[i*n+j] = (l[i*n+j] - r) / l[j*n+j]
		}
		r := 0.0
		for k := 0; k < i; k++ {
			r += l[i*n+k] * l[i*n+k]
		}
		r = l[i*n+i] - r
		if r <= pivotTol {
			c.ok = false
			return &NotPositiveDefiniteError{Index: i}
		}
		l[i*n+i] = math.Sqrt(r)
	}

	c.n = n
	c.l = l
	c.ok = true
	return nil
}

// Dim returns the order of the factorized matrix.
func (c *Cholesky) Dim() int { return c.n }

// At returns L[i][j] (zero above the diagonal). Panics if the last
// Factorize call failed.
func (c *Cholesky) At(i, j int) float64 {
	if !c.ok {
		panic(badFact)
	}
	if j > i {
		return 0
	}
	return c.l[i*c.n+j]
}

// ApplyTo computes L*z for a vector z of length Dim(), using only the
// first upTo rows of L (upTo == Dim() for the full product). This is
// the operation the seed-block initialiser needs: each anchor node's
// value is a partial row-times-noise dot product.
func (c *Cholesky) ApplyTo(z []float64, upTo int) []float64 {
	if !c.ok {
		panic(badFact)
	}
	out := make([]float64, upTo)
	for i := 0; i < upTo; i++ {
		s := 0.0
		for k := 0; k <= i; k++ {
			s += c.l[i*c.n+k] * z[k]
		}
		out[i] = s
	}
	return out
}
