package severity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equinor/aps-gaussfield/internal/severity"
)

type fakeDiagnostic struct {
	cat severity.Category
	lvl severity.Level
}

func (f *fakeDiagnostic) Error() string              { return "fake" }
func (f *fakeDiagnostic) Category() severity.Category { return f.cat }
func (f *fakeDiagnostic) Level() severity.Level       { return f.lvl }

func TestCategoryString(t *testing.T) {
	require.Equal(t, "KERNEL", severity.KERNEL.String())
	require.Equal(t, "ALLOC", severity.ALLOC.String())
	require.Equal(t, "CHECK", severity.CHECK.String())
}

func TestDiagnosticSatisfiesError(t *testing.T) {
	var d error = &fakeDiagnostic{cat: severity.KERNEL, lvl: severity.Brief}
	var sd severity.Diagnostic
	require.True(t, errors.As(d, &sd))
	require.Equal(t, severity.KERNEL, sd.Category())
	require.Equal(t, severity.Brief, sd.Level())
}
