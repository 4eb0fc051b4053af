package bg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-deer/internal/testutil"
)

func TestHomFractalDimensionThreeMatchesHom3D(t *testing.T) {
	axis := testutil.TimeAxis(0, 0.2, 30)

	// At d = 3 the closed-form constants collapse to the plain
	// homogeneous-3D expression; the concentrations differ by 1e6 because
	// the fractal conversion is c*1e-6*10^-d*NA while hom3d's uM
	// conversion is c*1e-6*1e3*NA.
	fractal, err := HomFractal{}.Evaluate(axis, []float64{50e6, 3}, 0.9)
	require.NoError(t, err)

	plain, err := Hom3D{}.Evaluate(axis, []float64{50}, 0.9)
	require.NoError(t, err)

	testutil.RequireSliceNearlyEqual(t, fractal, plain, 1e-12)
}

func TestHomFractalQuadratureBranchAgreesNearThree(t *testing.T) {
	axis := testutil.TimeAxis(0.25, 0.25, 12)

	closed, err := HomFractal{}.Evaluate(axis, []float64{50, 3})
	require.NoError(t, err)

	for _, d := range []float64{3 - 1e-6, 3 + 1e-6} {
		general, err := HomFractal{}.Evaluate(axis, []float64{50, d})
		require.NoError(t, err)
		testutil.RequireFinite(t, general)
		testutil.RequireSliceNearlyEqual(t, general, closed, 1e-4)
	}
}

func TestHomFractalFiniteAcrossDimensionRange(t *testing.T) {
	axis := testutil.TimeAxis(0, 0.25, 16)

	for _, d := range []float64{0.5, 1, 1.5, 2, 2.5, 3.5, 4, 5, 5.5} {
		b, err := HomFractal{}.Evaluate(axis, []float64{50, d})
		require.NoError(t, err, "d = %v", d)
		testutil.RequireFinite(t, b)

		assert.InDelta(t, 1.0, b[0], 1e-12, "d = %v", d)
		for i := 1; i < len(b); i++ {
			assert.LessOrEqual(t, b[i], b[i-1]+1e-12, "d = %v sample %d", d, i)
		}
	}
}

func TestHomFractalSingularDimensionPropagatesNaN(t *testing.T) {
	axis := testutil.TimeAxis(0, 0.5, 4)

	// d = 6 hits Gamma(-2); no interception, no error, NaN output.
	b, err := HomFractal{}.Evaluate(axis, []float64{50, 6})
	require.NoError(t, err)
	require.Len(t, b, len(axis))

	for i, v := range b {
		assert.True(t, math.IsNaN(v), "sample %d = %v", i, v)
	}
}
