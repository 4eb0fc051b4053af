// Package exvol provides the excluded-volume reduction-factor table used by
// the hom3dex background model.
//
// The reduction factor alpha(dR) weakens the homogeneous-3D dipolar
// background when spins cannot approach an observer closer than an exclusion
// distance R. It depends only on the dimensionless argument
// dR = A*|t|/R^3 (A the dipolar constant) and is given by
//
//	alpha(dR) = (3*sqrt(3)/(2*pi)) * Int[0..dR] (1 - g(x))/x^2 dx
//	g(x)      = Int[0..1] cos(x*(1 - 3*u^2)) du
//
// which approaches 1 - (3*sqrt(3)/(2*pi))/dR for large dR. The table covers
// the strongly curved small-dR regime; beyond it callers switch to that
// closed asymptote.
package exvol

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/interp"
)

const (
	maxDR      = 200.0
	stepDR     = 0.05
	innerNodes = 1000
)

// asymptoteScale is 3*sqrt(3)/(2*pi), the prefactor shared by the table
// normalization and the large-dR asymptote.
var asymptoteScale = 3 * math.Sqrt(3) / (2 * math.Pi)

// Table holds the reduction factor tabulated over dR. It is immutable after
// construction and safe for concurrent readers.
type Table struct {
	dR    []float64
	alpha []float64
	pl    interp.PiecewiseLinear
}

// Build computes a fresh table by quadrature over the fixed dR grid.
func Build() *Table {
	n := int(maxDR/stepDR) + 1

	dR := make([]float64, n)
	h := make([]float64, n)
	for i := range dR {
		dR[i] = float64(i) * stepDR
		h[i] = integrand(dR[i])
	}

	// Cumulative trapezoid of the outer integrand, then normalize so that
	// alpha -> 1 as dR -> inf.
	alpha := make([]float64, n)
	acc := 0.0
	for i := 1; i < n; i++ {
		acc += 0.5 * (h[i-1] + h[i]) * stepDR
		alpha[i] = acc
	}
	vecmath.ScaleBlock(alpha, alpha, asymptoteScale)

	t := &Table{dR: dR, alpha: alpha}
	if err := t.pl.Fit(dR, alpha); err != nil {
		// The grid is strictly increasing by construction.
		panic(err)
	}

	return t
}

var (
	sharedOnce sync.Once
	sharedTab  *Table
)

// Shared returns the process-wide table, building it on first use. The build
// runs at most once; the result is never mutated.
func Shared() *Table {
	sharedOnce.Do(func() { sharedTab = Build() })
	return sharedTab
}

// Values returns the aligned domain and reduction-factor sequences.
// Callers must treat both as read-only.
func (t *Table) Values() (dR, alpha []float64) {
	return t.dR, t.alpha
}

// MaxDR returns the largest tabulated domain value. At and beyond it the
// closed asymptote Asymptote should be used instead of Reduction.
func (t *Table) MaxDR() float64 {
	return t.dR[len(t.dR)-1]
}

// Reduction returns alpha linearly interpolated at dR, valid on
// [0, MaxDR].
func (t *Table) Reduction(dR float64) float64 {
	return t.pl.Predict(dR)
}

// Asymptote returns the limiting dR->inf expression for alpha.
func Asymptote(dR float64) float64 {
	return 1 - asymptoteScale/dR
}

// integrand is (1 - g(x))/x^2 with its finite x->0 limit of 2/5.
func integrand(x float64) float64 {
	if x == 0 {
		return 0.4
	}

	g := quad.Fixed(func(u float64) float64 {
		return math.Cos(x * (1 - 3*u*u))
	}, 0, 1, innerNodes, nil, 0)

	return (1 - g) / (x * x)
}
