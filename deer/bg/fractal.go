package bg

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// quadNodes is the Gauss-Legendre node count for the fractal lattice sum.
// The integrand has a kink at z = 1/sqrt(3); 1000 nodes keep the result
// accurate to well below the fitting tolerance.
const quadNodes = 1000

// HomFractal models the background of spins homogeneously distributed in
// a medium of fractal dimension d in (0, 6).
//
// Dimensionalities whose gamma-function term is singular are not
// intercepted: apart from the exactly handled d = 3 they yield non-finite
// curves. The descriptor bounds keep a fitting layer away from them.
type HomFractal struct{}

func (HomFractal) Name() string { return "homfractal" }

func (HomFractal) Describe() Descriptor {
	return Descriptor{
		Parameters: []string{"Fractal Concentration of pumped spins", "Fractal dimensionality"},
		Units:      []string{"umol/dm^d", ""},
		Start:      []float64{50, 3},
		Lower:      []float64{0.01, math.Nextafter(0, 6)},
		Upper:      []float64{5000, math.Nextafter(6, 0)},
	}
}

func (HomFractal) Evaluate(t, param []float64, lam ...float64) ([]float64, error) {
	depth, err := resolveArgs(param, 2, lam)
	if err != nil {
		return nil, err
	}

	d := param[1]

	// umol/dm^d -> mol/m^d -> spins/m^d
	conc := param[0] * 1e-6 * math.Pow(10, -d) * avogadro

	var cConst, lattice float64
	if d == 3 {
		// Closed form; the general expression is 0 * Inf here.
		cConst = -math.Pi / 2
		lattice = 4 / (3 * math.Sqrt(3))
	} else {
		cConst = math.Cos(d*math.Pi/6) * math.Gamma(-d/3)
		lattice = quad.Fixed(func(z float64) float64 {
			return math.Pow(math.Abs(1-3*z*z), d/3)
		}, 0, 1, quadNodes, nil, 0)
	}

	rate := 4 * math.Pi / 3 * cConst * lattice * depth * conc * math.Pow(dipolarConst, d/3)

	out := absSeconds(t)
	for i, dti := range out {
		out[i] = math.Exp(rate * math.Pow(dti, d/3))
	}

	return out, nil
}
