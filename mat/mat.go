// Package mat implements the dense linear-algebra kernel the fractal
// Gaussian field engine is built on: symmetric eigendecomposition,
// Cholesky factorisation, and LU factorisation with a LINPACK-style
// reciprocal condition number estimate.
//
// The API shapes (Factorize, Values/Vectors, SymDense) follow
// gonum.org/v1/gonum/mat, but the algorithms are deliberately the ones
// the original Fortran-derived C++ core used rather than LAPACK's: the
// engine's reproducibility and residual-variance clamping depend on
// this exact numerical behaviour (unsorted eigenpairs, unpivoted
// Cholesky, LINPACK dgeco-style condition estimation).
package mat

import "fmt"

const (
	badDim    = "mat: dimension mismatch"
	badFact   = "mat: use without successful factorization"
	badNoVect = "mat: eigenvectors not computed"
)

// Dense is a dense, general, row-major matrix.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense creates a new Dense matrix of the given size. If data is
// non-nil it is used as backing storage (len(data) must equal
// rows*cols); otherwise a zeroed slice is allocated.
func NewDense(rows, cols int, data []float64) *Dense {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("mat: non-positive dimension %d x %d", rows, cols))
	}
	if data == nil {
		data = make([]float64, rows*cols)
	} else if len(data) != rows*cols {
		panic(badDim)
	}
	return &Dense{rows: rows, cols: cols, data: data}
}

// Dims returns the number of rows and columns of the matrix.
func (d *Dense) Dims() (r, c int) { return d.rows, d.cols }

// At returns the value at row i, column j.
func (d *Dense) At(i, j int) float64 { return d.data[i*d.cols+j] }

// Set sets the value at row i, column j.
func (d *Dense) Set(i, j int, v float64) { d.data[i*d.cols+j] = v }

// RawRowView returns a view of row i. Mutating it mutates the matrix.
func (d *Dense) RawRowView(i int) []float64 {
	return d.data[i*d.cols : (i+1)*d.cols]
}

// Clone returns a deep copy of d.
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)
	return &Dense{rows: d.rows, cols: d.cols, data: cp}
}

// SymDense is a dense symmetric matrix. SetSym writes both (i,j) and
// (j,i); At returns the stored entry as is, so data passed to
// NewSymDense must itself be symmetric.
type SymDense struct {
	n    int
	data []float64 // n*n, row-major, both triangles kept in sync by SetSym
}

// NewSymDense creates a new n x n symmetric matrix. If data is
// non-nil it is used as backing storage (len(data) must equal n*n).
func NewSymDense(n int, data []float64) *SymDense {
	if n <= 0 {
		panic(fmt.Sprintf("mat: non-positive dimension %d", n))
	}
	if data == nil {
		data = make([]float64, n*n)
	} else if len(data) != n*n {
		panic(badDim)
	}
	return &SymDense{n: n, data: data}
}

// SymmetricDim returns the order of the matrix.
func (s *SymDense) SymmetricDim() int { return s.n }

// At returns the value at row i, column j.
func (s *SymDense) At(i, j int) float64 { return s.data[i*s.n+j] }

// SetSym sets both (i,j) and (j,i) to v.
func (s *SymDense) SetSym(i, j int, v float64) {
	s.data[i*s.n+j] = v
	s.data[j*s.n+i] = v
}

// Clone returns a deep copy of s.
func (s *SymDense) Clone() *SymDense {
	cp := make([]float64, len(s.data))
	copy(cp, s.data)
	return &SymDense{n: s.n, data: cp}
}

// Vector is a dense float64 vector.
type Vector struct {
	data []float64
}

// NewVector creates a vector of the given length, optionally backed
// by data (len(data) must equal n).
func NewVector(n int, data []float64) *Vector {
	if data == nil {
		data = make([]float64, n)
	} else if len(data) != n {
		panic(badDim)
	}
	return &Vector{data: data}
}

// Len returns the length of the vector.
func (v *Vector) Len() int { return len(v.data) }

// AtVec returns the i-th element.
func (v *Vector) AtVec(i int) float64 { return v.data[i] }

// SetVec sets the i-th element.
func (v *Vector) SetVec(i int, val float64) { v.data[i] = val }

// RawVector exposes the backing slice. Mutating it mutates v.
func (v *Vector) RawVector() []float64 { return v.data }
