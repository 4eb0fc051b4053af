package bg

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// StretchedExp is the stretched exponential background model
// exp(-lam*kappa*|t|^d).
type StretchedExp struct{}

func (StretchedExp) Name() string { return "strexp" }

func (StretchedExp) Describe() Descriptor {
	return Descriptor{
		Parameters: []string{"Decay Rate", "Stretch factor"},
		Units:      []string{"us-1", ""},
		Start:      []float64{0.25, 1},
		Lower:      []float64{0, 0},
		Upper:      []float64{200, 6},
	}
}

func (StretchedExp) Evaluate(t, param []float64, lam ...float64) ([]float64, error) {
	depth, err := resolveArgs(param, 2, lam)
	if err != nil {
		return nil, err
	}

	return strexpCurve(t, depth, param[0], param[1]), nil
}

// ProdStretchedExp is the product of two stretched exponentials.
type ProdStretchedExp struct{}

func (ProdStretchedExp) Name() string { return "prodstrexp" }

func (ProdStretchedExp) Describe() Descriptor {
	return Descriptor{
		Parameters: []string{
			"Decay Rate of 1st component",
			"Stretch factor of 1st component",
			"Decay Rate of 2nd component",
			"Stretch factor of 2nd component",
		},
		Units: []string{"us-1", "", "us-1", ""},
		Start: []float64{0.25, 1, 0.25, 1},
		Lower: []float64{0, 0, 0, 0},
		Upper: []float64{200, 6, 200, 6},
	}
}

func (ProdStretchedExp) Evaluate(t, param []float64, lam ...float64) ([]float64, error) {
	depth, err := resolveArgs(param, 4, lam)
	if err != nil {
		return nil, err
	}

	out := strexpCurve(t, depth, param[0], param[1])
	vecmath.MulBlockInPlace(out, strexpCurve(t, depth, param[2], param[3]))

	return out, nil
}

// SumStretchedExp is the weighted sum of two stretched exponentials,
// w1*B1 + (1-w1)*B2.
type SumStretchedExp struct{}

func (SumStretchedExp) Name() string { return "sumstrexp" }

func (SumStretchedExp) Describe() Descriptor {
	return Descriptor{
		Parameters: []string{
			"Decay Rate of 1st component",
			"Stretch factor of 1st component",
			"Amplitude of 1st component",
			"Decay Rate of 2nd component",
			"Stretch factor of 2nd component",
		},
		Units: []string{"us-1", "", "", "us-1", ""},
		Start: []float64{0.25, 1, 0.5, 0.25, 1},
		Lower: []float64{0, 0, 0, 0, 0},
		Upper: []float64{200, 6, 1, 200, 6},
	}
}

func (SumStretchedExp) Evaluate(t, param []float64, lam ...float64) ([]float64, error) {
	depth, err := resolveArgs(param, 5, lam)
	if err != nil {
		return nil, err
	}

	w1 := param[2]

	out := strexpCurve(t, depth, param[0], param[1])
	vecmath.ScaleBlock(out, out, w1)

	second := strexpCurve(t, depth, param[3], param[4])
	vecmath.ScaleBlock(second, second, 1-w1)
	vecmath.AddBlockInPlace(out, second)

	return out, nil
}

func strexpCurve(t []float64, depth, kappa, d float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = math.Exp(-depth * kappa * math.Pow(math.Abs(ti), d))
	}

	return out
}
