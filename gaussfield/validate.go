package gaussfield

import (
	"math"

	"github.com/equinor/aps-gaussfield/stat/running"
)

// tolerance is the +-5 bound spec.md §4.7 applies to both the
// empirical mean and standard deviation of a completed draw.
const tolerance = 5.0

// Validate streams every cell of g through a Welford accumulator and
// returns a *CheckWarning if the empirical mean or standard deviation
// falls outside +-5. It never rejects the grid: a successful draw is
// always returned regardless of what Validate reports. Ported from
// checkSimulatedVariance.
func Validate(g *Grid) *CheckWarning {
	var stats running.Stats
	xstart, xend, ystart, yend := g.Bounds()
	for j := ystart; j <= yend; j++ {
		for i := xstart; i <= xend; i++ {
			stats.Accum(g.At(i, j))
		}
	}
	mean := stats.Mean()
	stddev := math.Sqrt(stats.Variance())
	if math.Abs(mean) > tolerance || math.Abs(stddev) > tolerance {
		return &CheckWarning{Mean: mean, StdDev: stddev}
	}
	return nil
}
