package mat

import "math"

// SingularError reports that LU.Factorize detected an exactly zero
// pivot. A factorization that succeeds but whose RcondEstimate is
// below a caller's tolerance is reported by that caller, not by this
// type.
type SingularError struct {
	// Index is the pivot row at which a zero diagonal was found.
	Index int
}

func (e *SingularError) Error() string {
	return "mat: matrix is singular"
}

// LU holds a partial-pivoting LU factorization of a general matrix,
// A = P*L*U, together with enough state to estimate its reciprocal
// condition number in the LINPACK style (dgeco/dgefa), which is the
// policy the engine uses to reject ill-conditioned pattern and seed
// systems (spec: treat |rcond| below a tolerance near machine epsilon
// as singular).
type LU struct {
	n     int
	lu    []float64 // row-major n*n, combined L (unit diagonal implied) and U
	pivot []int     // row index used at each elimination step
	sign  float64    // +1 or -1, parity of the row interchanges
}

// Factorize computes the LU decomposition of the n x n matrix a
// (row-major, n*n) with partial pivoting. a is not modified; the
// factorization is stored in the receiver. Returns a *SingularError if
// a zero pivot is encountered.
func (lu *LU) Factorize(n int, a []float64) error {
	if len(a) != n*n {
		panic(badDim)
	}
	m := make([]float64, n*n)
	copy(m, a)
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	signVal := 1.0

	for k := 0; k < n; k++ {
		// Partial pivot: largest magnitude entry in column k, rows k..n-1.
		p := k
		best := math.Abs(m[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(m[i*n+k]); v > best {
				best, p = v, i
			}
		}
		if best == 0 {
			lu.n = 0
			return &SingularError{Index: k}
		}
		if p != k {
			for j := 0; j < n; j++ {
				m[k*n+j], m[p*n+j] = m[p*n+j], m[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
			signVal = -signVal
		}
		pivotVal := m[k*n+k]
		for i := k + 1; i < n; i++ {
			factor := m[i*n+k] / pivotVal
			m[i*n+k] = factor
			if factor != 0 {
				for j := k + 1; j < n; j++ {
					m[i*n+j] -= factor * m[k*n+j]
				}
			}
		}
	}

	lu.n = n
	lu.lu = m
	lu.pivot = piv
	lu.sign = signVal
	return nil
}

// Solve solves A*x = b for x, given the stored factorization. b is
// read but not modified; the solution is returned in a freshly
// allocated slice.
func (lu *LU) Solve(b []float64) []float64 {
	n := lu.n
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = b[lu.pivot[i]]
	}
	// Forward substitution, unit lower triangle.
	for i := 0; i < n; i++ {
		s := y[i]
		for k := 0; k < i; k++ {
			s -= lu.lu[i*n+k] * y[k]
		}
		y[i] = s
	}
	// Back substitution, upper triangle.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := y[i]
		for k := i + 1; k < n; k++ {
			s -= lu.lu[i*n+k] * x[k]
		}
		x[i] = s / lu.lu[i*n+i]
	}
	return x
}

// RcondEstimate returns an estimate of the reciprocal of the 1-norm
// condition number of the originally factorized matrix, using the
// LINPACK dgeco heuristic: solve U^T*w = e and L^T*v = w choosing the
// sign of each component of e to maximise local growth (the "trial
// direction" that approximates the direction of the largest element of
// the inverse), then solve the two corresponding forward systems.
// rcond = (1/norm) / (norm(inverse-direction)), where norm is the
// matrix's 1-norm: the largest of aColNorms, the column 1-norms of the
// original matrix that the caller passes in (see ColumnNorms1).
func (lu *LU) RcondEstimate(aColNorms []float64) float64 {
	n := lu.n
	anorm := 0.0
	for _, c := range aColNorms {
		if c > anorm {
			anorm = c
		}
	}
	if anorm == 0 {
		return 0
	}

	// Solve U^T * w = e, choosing e[k] = +-1 to maximize |w[k]|.
	w := make([]float64, n)
	for k := 0; k < n; k++ {
		ukk := lu.lu[k*n+k]
		sum := 0.0
		for i := 0; i < k; i++ {
			sum += lu.lu[i*n+k] * w[i]
		}
		ekPlus := 1.0 - sum
		ekMinus := -1.0 - sum
		var wk float64
		if ukk == 0 {
			wk = 1.0
		} else if math.Abs(ekPlus) >= math.Abs(ekMinus) {
			wk = ekPlus / ukk
		} else {
			wk = ekMinus / ukk
		}
		w[k] = wk
	}

	// Solve L^T * v = w (unit upper triangle in transpose), back to front.
	v := make([]float64, n)
	copy(v, w)
	for i := n - 1; i >= 0; i-- {
		s := v[i]
		for k := i + 1; k < n; k++ {
			s -= lu.lu[k*n+i] * v[k]
		}
		v[i] = s
	}
	ynorm := norm1(v)

	// Solve L*y = v, then U*z = y; z approximates the direction in
	// which A is closest to singular.
	y := make([]float64, n)
	copy(y, v)
	for i := 0; i < n; i++ {
		s := y[i]
		for k := 0; k < i; k++ {
			s -= lu.lu[i*n+k] * y[k]
		}
		y[i] = s
	}
	z := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := y[i]
		for k := i + 1; k < n; k++ {
			s -= lu.lu[i*n+k] * z[k]
		}
		z[i] = s / lu.lu[i*n+i]
	}
	znorm := norm1(z)
	if znorm == 0 {
		return 0
	}

	rcond := (ynorm / znorm) / anorm
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) {
		return 0
	}
	return rcond
}

func norm1(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += math.Abs(x)
	}
	return s
}

// ColumnNorms1 returns the 1-norm of each column of the n x n
// row-major matrix a, for use as RcondEstimate's aColNorms argument.
func ColumnNorms1(n int, a []float64) []float64 {
	norms := make([]float64, n)
	for j := 0; j < n; j++ {
		s := 0.0
		for i := 0; i < n; i++ {
			s += math.Abs(a[i*n+j])
		}
		norms[j] = s
	}
	return norms
}
