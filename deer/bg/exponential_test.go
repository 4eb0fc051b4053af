package bg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-deer/internal/testutil"
)

func TestExponentialKnownValues(t *testing.T) {
	b, err := Exponential{}.Evaluate([]float64{0, 1, 2}, []float64{0.5})
	require.NoError(t, err)

	want := []float64{1, math.Exp(-0.5), math.Exp(-1)}
	testutil.RequireSliceNearlyEqual(t, b, want, 1e-15)
}

func TestExponentialMatchesFormula(t *testing.T) {
	axis := testutil.TimeAxis(-1, 0.25, 20)
	kappa := 1.7
	depth := 0.4

	b, err := Exponential{}.Evaluate(axis, []float64{kappa}, depth)
	require.NoError(t, err)

	want := make([]float64, len(axis))
	for i, ti := range axis {
		want[i] = math.Exp(-depth * kappa * math.Abs(ti))
	}
	testutil.RequireSliceNearlyEqual(t, b, want, 1e-15)
}

func TestExponentialDepthFoldsIntoRate(t *testing.T) {
	axis := testutil.TimeAxis(0, 0.2, 25)

	scaled, err := Exponential{}.Evaluate(axis, []float64{0.8}, 0.5)
	require.NoError(t, err)

	folded, err := Exponential{}.Evaluate(axis, []float64{0.4})
	require.NoError(t, err)

	testutil.RequireSliceNearlyEqual(t, scaled, folded, 1e-14)
}
