package bg

import "math"

// Exponential is the single-rate exponential background model
// exp(-lam*kappa*|t|).
type Exponential struct{}

func (Exponential) Name() string { return "exp" }

func (Exponential) Describe() Descriptor {
	return Descriptor{
		Parameters: []string{"Decay Rate"},
		Units:      []string{"us-1"},
		Start:      []float64{0.35},
		Lower:      []float64{0},
		Upper:      []float64{200},
	}
}

func (Exponential) Evaluate(t, param []float64, lam ...float64) ([]float64, error) {
	depth, err := resolveArgs(param, 1, lam)
	if err != nil {
		return nil, err
	}

	kappa := param[0]

	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = math.Exp(-depth * kappa * math.Abs(ti))
	}

	return out, nil
}
