// Package distmv provides a multivariate Gaussian workspace. The
// gaussfield engine does not use it: its seed block is drawn with
// mat.Cholesky. Unlike gonum's own distmv.Normal (which factorizes its
// covariance with a BLAS/LAPACK Cholesky and rejects any
// non-positive-definite input outright), this workspace
// eigendecomposes the covariance with mat.EigenSym and rejects a
// matrix only when one of its computed eigenvalues is below zero, so
// positive semi-definite matrices with zero eigenvalues are accepted.
// No tolerance is applied: a tiny negative eigenvalue from rounding is
// rejected too.
package distmv

import (
	"fmt"
	"math"

	"github.com/equinor/aps-gaussfield/distuv"
	"github.com/equinor/aps-gaussfield/mat"
)

// NegativeEigenvalueError reports that initializing a
// MultiNormalWorkspace found one or more negative eigenvalues in the
// supplied covariance matrix. Indices names which eigen-slots failed,
// in ascending order, as returned by EigenSym (unsorted order, the
// same order the workspace stores them in).
type NegativeEigenvalueError struct {
	Indices []int
	Values  []float64
}

func (e *NegativeEigenvalueError) Error() string {
	return fmt.Sprintf("distmv: covariance matrix has %d negative eigenvalue(s)", len(e.Indices))
}

// MultiNormalWorkspace draws samples from a multivariate normal
// distribution via its eigendecomposition: Sigma = Q diag(lambda) Q^T,
// U[j][i] = Q[j][i] * sqrt(lambda_i), so that a draw is
//
//	x = U*z + mu
//
// for z a vector of independent standard normal samples. This mirrors
// RandomGenerator::initMultiNormalCovariance/multiNormal, which builds
// the same U matrix; any negative eigenvalue makes SetCovariance
// return a *NegativeEigenvalueError naming its index.
type MultiNormalWorkspace struct {
	dim int
	u   *mat.Dense // n x n, U[j][i] = Q[j][i]*sqrt(lambda_i)
}

// NewMultiNormalWorkspace allocates a workspace for the given
// dimension. The workspace must be initialized with SetCovariance
// before Draw can be called.
func NewMultiNormalWorkspace(dim int) *MultiNormalWorkspace {
	if dim <= 0 {
		panic("distmv: dimension must be positive")
	}
	return &MultiNormalWorkspace{dim: dim}
}

// Dim returns the workspace's configured dimension.
func (w *MultiNormalWorkspace) Dim() int { return w.dim }

// SetCovariance eigendecomposes sigma and stores the eigen-root matrix
// U used by Draw. Returns a *NegativeEigenvalueError (without
// modifying the workspace's existing U, if any) if sigma has one or
// more eigenvalues below zero.
func (w *MultiNormalWorkspace) SetCovariance(sigma *mat.SymDense) error {
	n := sigma.SymmetricDim()
	if n != w.dim {
		panic("distmv: covariance dimension does not match workspace")
	}

	var eig mat.EigenSym
	if err := eig.Factorize(sigma, true); err != nil {
		return fmt.Errorf("distmv: eigendecomposition failed: %w", err)
	}
	vals := eig.Values(nil)
	vecs := eig.Vectors()

	var negIdx []int
	var negVals []float64
	u := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		lambda := vals[i]
		if lambda < 0 {
			negIdx = append(negIdx, i)
			negVals = append(negVals, lambda)
			continue
		}
		root := sqrtNonNegative(lambda)
		for j := 0; j < n; j++ {
			u.Set(j, i, vecs.At(j, i)*root)
		}
	}
	if len(negIdx) > 0 {
		return &NegativeEigenvalueError{Indices: negIdx, Values: negVals}
	}
	w.u = u
	return nil
}

func sqrtNonNegative(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Sqrt(x)
}

// Draw fills dst (or allocates it, if nil) with a sample from the
// workspace's multinormal distribution with mean mu, consuming
// dim standard normal draws from normalSrc (the odd-dimension case
// discards the unused half of the final Box-Muller pair, as the
// engine's multiNormal does when dim is odd).
func (w *MultiNormalWorkspace) Draw(dst, mu []float64, normalSrc *distuv.Normal) []float64 {
	if w.u == nil {
		panic("distmv: workspace covariance not set")
	}
	n := w.dim
	if len(mu) != n {
		panic("distmv: mean length mismatch")
	}
	if dst == nil {
		dst = make([]float64, n)
	} else if len(dst) != n {
		panic("distmv: destination length mismatch")
	}

	z := make([]float64, n)
	for i := 0; i < n; i++ {
		z[i] = normalSrc.Rand()
	}
	if n%2 == 1 {
		normalSrc.Reset()
	}

	for i := 0; i < n; i++ {
		s := 0.0
		for j := 0; j < n; j++ {
			s += w.u.At(i, j) * z[j]
		}
		dst[i] = s + mu[i]
	}
	return dst
}
