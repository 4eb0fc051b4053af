package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if the two curves differ in length or if
// any sample pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("curve length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("sample %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any sample of the curve is NaN or Inf. Decay
// curves for in-bounds parameters must stay finite; non-finite values are
// reserved for degenerate inputs the models deliberately do not clamp.
func RequireFinite(t *testing.T, curve []float64) {
	t.Helper()
	for i, v := range curve {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d: non-finite value %v", i, v)
		}
	}
}
