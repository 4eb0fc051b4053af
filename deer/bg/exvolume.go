package bg

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-deer/deer/exvol"
)

// ExcludedVolume models a homogeneous 3D spin distribution with an
// excluded volume of radius R around each observed spin. The zero value
// uses the shared reduction-factor table; use NewExcludedVolume to inject
// a specific one.
type ExcludedVolume struct {
	table *exvol.Table
}

// NewExcludedVolume returns the model bound to the given table.
func NewExcludedVolume(table *exvol.Table) ExcludedVolume {
	return ExcludedVolume{table: table}
}

func (ExcludedVolume) Name() string { return "hom3dex" }

func (ExcludedVolume) Describe() Descriptor {
	return Descriptor{
		Parameters: []string{"Fractal Concentration of pumped spins", "Exclusion distance"},
		Units:      []string{"umol/dm^d", "nm"},
		Start:      []float64{50, 1},
		Lower:      []float64{0.01, 0.01},
		Upper:      []float64{5000, 20},
	}
}

func (m ExcludedVolume) Evaluate(t, param []float64, lam ...float64) ([]float64, error) {
	depth, err := resolveArgs(param, 2, lam)
	if err != nil {
		return nil, err
	}

	conc := spinsPerCubicMetre(param[0])
	r := param[1]

	dt := absSeconds(t)
	alpha := m.reduction(dt, r)

	// K(t) = 8*pi^2/(9*sqrt(3)) * A * |t| * alpha(t)
	out := make([]float64, len(t))
	vecmath.MulBlock(out, dt, alpha)
	vecmath.ScaleBlock(out, out, 8*math.Pi*math.Pi/(9*math.Sqrt(3))*dipolarConst)

	for i, k := range out {
		out[i] = math.Exp(-depth * conc * k)
	}

	return out, nil
}

// reduction computes alpha per sample: table interpolation inside the
// tabulated domain, closed asymptote beyond it. R == 0 means no excluded
// volume; alpha is 1 everywhere and the table is never consulted.
func (m ExcludedVolume) reduction(dt []float64, r float64) []float64 {
	alpha := make([]float64, len(dt))

	if r == 0 {
		for i := range alpha {
			alpha[i] = 1
		}

		return alpha
	}

	tab := m.table
	if tab == nil {
		tab = exvol.Shared()
	}

	r3 := r * 1e-9
	r3 = r3 * r3 * r3
	limit := tab.MaxDR()

	for i, dti := range dt {
		dR := dipolarConst * dti / r3
		if dR < limit {
			alpha[i] = tab.Reduction(dR)
		} else {
			alpha[i] = exvol.Asymptote(dR)
		}
	}

	return alpha
}
