package bg

import "math"

// Poly1 is the first-order polynomial background model in |t|.
type Poly1 struct{}

func (Poly1) Name() string { return "poly1" }

func (Poly1) Describe() Descriptor {
	return Descriptor{
		Parameters: []string{"Intercept", "1st-order coefficient"},
		Units:      []string{"", "us-1"},
		Start:      []float64{1, -1},
		Lower:      []float64{0, -200},
		Upper:      []float64{200, 200},
	}
}

func (Poly1) Evaluate(t, param []float64, lam ...float64) ([]float64, error) {
	depth, err := resolveArgs(param, 2, lam)
	if err != nil {
		return nil, err
	}

	return polyCurve(t, param, depth), nil
}

// Poly2 is the second-order polynomial background model in |t|.
type Poly2 struct{}

func (Poly2) Name() string { return "poly2" }

func (Poly2) Describe() Descriptor {
	return Descriptor{
		Parameters: []string{"Intercept", "1st-order coefficient", "2nd-order coefficient"},
		Units:      []string{"", "us-1", "us-2"},
		Start:      []float64{1, -1, -1},
		Lower:      []float64{0, -200, -200},
		Upper:      []float64{200, 200, 200},
	}
}

func (Poly2) Evaluate(t, param []float64, lam ...float64) ([]float64, error) {
	depth, err := resolveArgs(param, 3, lam)
	if err != nil {
		return nil, err
	}

	return polyCurve(t, param, depth), nil
}

// Poly3 is the third-order polynomial background model in |t|.
type Poly3 struct{}

func (Poly3) Name() string { return "poly3" }

func (Poly3) Describe() Descriptor {
	return Descriptor{
		Parameters: []string{"Intercept", "1st-order coefficient", "2nd-order coefficient", "3rd-order coefficient"},
		Units:      []string{"", "us-1", "us-2", "us-3"},
		Start:      []float64{1, -1, -1, -1},
		Lower:      []float64{0, -200, -200, -200},
		Upper:      []float64{200, 200, 200, 200},
	}
}

func (Poly3) Evaluate(t, param []float64, lam ...float64) ([]float64, error) {
	depth, err := resolveArgs(param, 4, lam)
	if err != nil {
		return nil, err
	}

	return polyCurve(t, param, depth), nil
}

// polyCurve evaluates the model polynomial over |t|. Coefficients arrive
// intercept-first; every coefficient except the intercept is scaled by the
// modulation depth, then the polynomial is evaluated by Horner's rule in
// descending-power order.
func polyCurve(t, param []float64, depth float64) []float64 {
	desc := make([]float64, len(param))
	for i, p := range param {
		desc[len(param)-1-i] = p
	}

	for i := 0; i < len(desc)-1; i++ {
		desc[i] *= depth
	}

	out := make([]float64, len(t))
	for i, ti := range t {
		x := math.Abs(ti)

		acc := 0.0
		for _, c := range desc {
			acc = acc*x + c
		}

		out[i] = acc
	}

	return out
}
