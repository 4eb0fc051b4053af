package bg

import "math"

// Hom3D models the background of a homogeneous distribution of pumped
// spins in a three-dimensional medium.
type Hom3D struct{}

func (Hom3D) Name() string { return "hom3d" }

func (Hom3D) Describe() Descriptor {
	return Descriptor{
		Parameters: []string{"Concentration of pumped spins"},
		Units:      []string{"uM"},
		Start:      []float64{50},
		Lower:      []float64{0.01},
		Upper:      []float64{5000},
	}
}

func (Hom3D) Evaluate(t, param []float64, lam ...float64) ([]float64, error) {
	depth, err := resolveArgs(param, 1, lam)
	if err != nil {
		return nil, err
	}

	conc := spinsPerCubicMetre(param[0])
	rate := 8 * math.Pi * math.Pi / (9 * math.Sqrt(3)) * depth * conc * dipolarConst

	out := absSeconds(t)
	for i, dti := range out {
		out[i] = math.Exp(-rate * dti)
	}

	return out, nil
}
