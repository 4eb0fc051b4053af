package bg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-deer/internal/testutil"
)

func TestStretchedExpReducesToExponential(t *testing.T) {
	axis := testutil.TimeAxis(-2, 0.2, 30)

	stretched, err := StretchedExp{}.Evaluate(axis, []float64{0.6, 1}, 0.8)
	require.NoError(t, err)

	plain, err := Exponential{}.Evaluate(axis, []float64{0.6}, 0.8)
	require.NoError(t, err)

	testutil.RequireSliceNearlyEqual(t, stretched, plain, 1e-14)
}

func TestProdStretchedExpIsProduct(t *testing.T) {
	axis := testutil.TimeAxis(0, 0.15, 40)

	prod, err := ProdStretchedExp{}.Evaluate(axis, []float64{0.3, 1.2, 0.1, 2.5}, 0.6)
	require.NoError(t, err)

	first, err := StretchedExp{}.Evaluate(axis, []float64{0.3, 1.2}, 0.6)
	require.NoError(t, err)
	second, err := StretchedExp{}.Evaluate(axis, []float64{0.1, 2.5}, 0.6)
	require.NoError(t, err)

	want := make([]float64, len(axis))
	for i := range want {
		want[i] = first[i] * second[i]
	}
	testutil.RequireSliceNearlyEqual(t, prod, want, 1e-14)
}

func TestSumStretchedExpIsWeightedSum(t *testing.T) {
	axis := testutil.TimeAxis(0, 0.15, 40)
	w1 := 0.3

	sum, err := SumStretchedExp{}.Evaluate(axis, []float64{0.3, 1.2, w1, 0.1, 2.5}, 0.6)
	require.NoError(t, err)

	first, err := StretchedExp{}.Evaluate(axis, []float64{0.3, 1.2}, 0.6)
	require.NoError(t, err)
	second, err := StretchedExp{}.Evaluate(axis, []float64{0.1, 2.5}, 0.6)
	require.NoError(t, err)

	want := make([]float64, len(axis))
	for i := range want {
		want[i] = w1*first[i] + (1-w1)*second[i]
	}
	testutil.RequireSliceNearlyEqual(t, sum, want, 1e-14)
}

func TestSumStretchedExpFullWeightIsFirstComponent(t *testing.T) {
	axis := testutil.TimeAxis(0, 0.25, 16)

	sum, err := SumStretchedExp{}.Evaluate(axis, []float64{0.4, 1.5, 1, 99, 3})
	require.NoError(t, err)

	first, err := StretchedExp{}.Evaluate(axis, []float64{0.4, 1.5})
	require.NoError(t, err)

	testutil.RequireSliceNearlyEqual(t, sum, first, 1e-14)
}
