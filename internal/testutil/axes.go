package testutil

// TimeAxis returns n evenly spaced time samples starting at start with the
// given step, in microseconds.
func TimeAxis(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// SymmetricAxis returns 2n+1 samples from -span to +span, including zero.
func SymmetricAxis(span float64, n int) []float64 {
	out := make([]float64, 2*n+1)
	step := span / float64(n)
	for i := range out {
		out[i] = step * float64(i-n)
	}
	return out
}
