package gaussfield

import (
	"fmt"

	"github.com/equinor/aps-gaussfield/internal/severity"
)

// KernelError reports a fatal numerical failure during a draw: a
// singular pattern solve, a non-convergent eigensolver, a non-PD seed
// Cholesky, or an illegal argument. KERNEL and ALLOC failures abort
// the call; no partial grid is ever returned alongside one.
type KernelError struct {
	Component string // e.g. "pattern solve", "seed block", "draw_gauss_2d"
	Detail    string
	Err       error // wrapped cause, if any
}

func (e *KernelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gaussfield: KERNEL failure in %s: %s: %v", e.Component, e.Detail, e.Err)
	}
	return fmt.Sprintf("gaussfield: KERNEL failure in %s: %s", e.Component, e.Detail)
}

func (e *KernelError) Unwrap() error            { return e.Err }
func (e *KernelError) Category() severity.Category { return severity.KERNEL }
func (e *KernelError) Level() severity.Level       { return severity.Detailed }

// AllocError reports that allocating the working grid, pattern
// catalogue, or a workspace failed.
type AllocError struct {
	Component string
	Detail    string
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("gaussfield: ALLOC failure in %s: %s", e.Component, e.Detail)
}
func (e *AllocError) Category() severity.Category { return severity.ALLOC }
func (e *AllocError) Level() severity.Level       { return severity.Brief }

// CheckWarning reports that a successfully drawn grid's empirical
// mean or standard deviation fell outside the +-5 tolerance. It is
// never returned as an error alongside a nil grid: the grid is always
// valid when a CheckWarning is produced.
type CheckWarning struct {
	Mean   float64
	StdDev float64
}

func (w *CheckWarning) Error() string {
	return fmt.Sprintf("gaussfield: CHECK warning: mean=%.4f stddev=%.4f outside +-5 tolerance", w.Mean, w.StdDev)
}
func (w *CheckWarning) Category() severity.Category { return severity.CHECK }
func (w *CheckWarning) Level() severity.Level       { return severity.Brief }
