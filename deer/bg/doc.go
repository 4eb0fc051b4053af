// Package bg provides parametric background models for time-domain dipolar
// spectroscopy (DEER/PELDOR) signals.
//
// A background model describes the slowly decaying, non-oscillatory part of
// a dipolar time trace caused by spins outside the pair of interest. During
// data analysis this decay is divided out of the measured signal before the
// distance information is extracted.
//
// Every model implements [Model]. Describe returns the metadata a fitting
// layer needs to build its search space (parameter names, units, start
// values and box bounds); Evaluate computes the decay curve over a time
// axis in microseconds, with an optional trailing modulation depth that
// defaults to 1:
//
//	b, err := bg.Exponential{}.Evaluate(t, []float64{0.35})
//	b, err = bg.Exponential{}.Evaluate(t, []float64{0.35}, 0.4)
//
// Available models:
//
//   - [Exponential]:      single-rate exponential decay
//   - [Hom3D]:            homogeneous spin distribution in a 3D medium
//   - [ExcludedVolume]:   homogeneous 3D distribution with excluded volume
//   - [HomFractal]:       homogeneous distribution in a fractal medium
//   - [StretchedExp]:     stretched exponential
//   - [ProdStretchedExp]: product of two stretched exponentials
//   - [SumStretchedExp]:  weighted sum of two stretched exponentials
//   - [Poly1], [Poly2], [Poly3]: polynomial backgrounds in |t|
//
// Evaluation is pure and allocation-per-call; the only process-wide state
// is the excluded-volume reduction-factor table, built once and read-only
// afterwards, so independent callers may evaluate models concurrently.
//
// Out-of-range physical parameters are not clamped: degenerate inputs (for
// example a fractal dimensionality whose gamma-function term is singular)
// propagate as non-finite values. Bounding the search space to the
// descriptor's Lower/Upper is the caller's responsibility.
package bg
