package kriging_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equinor/aps-gaussfield/corr"
	"github.com/equinor/aps-gaussfield/kriging"
)

func TestSolveSimpleFourCornerPattern(t *testing.T) {
	var cat kriging.Catalogue
	cat.ResetOffsets()
	model := corr.NewExponential(2, 2, 0, 1)

	n := kriging.PatternBuilder{}.Install(&cat, 1, 1, kriging.Simple, kriging.RoleCentre)
	require.Equal(t, 4, n)

	require.NoError(t, cat.SolveSimple(1, n, model))

	// Residual variance must equal 1 - w.c computed directly.
	offsets := cat.Offsets(1, n)
	rhs := make([]float64, n)
	for i, o := range offsets {
		rhs[i] = model.CorrInt(o.Dx, o.Dy)
	}
	wc := 0.0
	for i := range rhs {
		wc += cat.Weight(1, i+1) * rhs[i]
	}
	require.InDelta(t, 1-wc, cat.ResidualVariance(1), 1e-9)
	require.GreaterOrEqual(t, cat.ResidualVariance(1), 0.0)
}

func TestSolveOrdinaryWeightsSumToOne(t *testing.T) {
	var cat kriging.Catalogue
	cat.ResetOffsets()
	model := corr.NewSpherical3(3, 3, 0, 1)

	n := kriging.PatternBuilder{}.Install(&cat, 1, 1, kriging.Simple, kriging.RoleTilted)
	require.NoError(t, cat.SolveOrdinary(1, n, model))

	sum := 0.0
	for i := 1; i <= n; i++ {
		sum += cat.Weight(1, i)
	}
	require.InDelta(t, 1.0, sum, 1e-9)
	require.GreaterOrEqual(t, cat.ResidualVariance(1), 0.0)
}

func TestSolveSimpleRejectsSingularPattern(t *testing.T) {
	var cat kriging.Catalogue
	cat.ResetOffsets()
	// White noise at non-zero lag makes every off-diagonal correlation
	// zero, so the covariance matrix is the identity: well-conditioned,
	// not singular. Use an ill-conditioned configuration instead: two
	// coincident offsets (duplicate direction), which makes C singular.
	model := corr.NewExponential(100, 100, 0, 1)
	cat.SetOffset(1, 1, 1, 1, 0)
	cat.SetOffset(1, 1, 2, 1, 0) // duplicate neighbour: rows 1,2 of C are identical

	err := cat.SolveSimple(1, 2, model)
	require.Error(t, err)
	var se *kriging.SingularPatternError
	require.ErrorAs(t, err, &se)
}

func TestPatternBuilderRingSizes(t *testing.T) {
	b := kriging.PatternBuilder{}
	var cat kriging.Catalogue

	cat.ResetOffsets()
	nSimple := b.Install(&cat, 1, 1, kriging.Simple, kriging.RoleCentre)
	require.Equal(t, 4, nSimple)

	cat.ResetOffsets()
	nStandard := b.Install(&cat, 1, 1, kriging.Standard, kriging.RoleCentre)
	require.Equal(t, 6, nStandard)

	cat.ResetOffsets()
	nDetailed := b.Install(&cat, 1, 1, kriging.Detailed, kriging.RoleCentre)
	require.Equal(t, 12, nDetailed)
}

func TestResetOffsetsClearsState(t *testing.T) {
	var cat kriging.Catalogue
	model := corr.NewExponential(2, 2, 0, 1)
	n := kriging.PatternBuilder{}.Install(&cat, 1, 1, kriging.Simple, kriging.RoleCentre)
	require.NoError(t, cat.SolveSimple(1, n, model))
	require.NotZero(t, cat.ResidualVariance(1))

	cat.ResetOffsets()
	require.Zero(t, cat.ResidualVariance(1))
	require.Zero(t, cat.Weight(1, 1))
}
