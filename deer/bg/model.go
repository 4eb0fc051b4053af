package bg

// Descriptor describes a model's parameter space. The five slices are
// aligned, one entry per parameter.
type Descriptor struct {
	// Parameters holds display names.
	Parameters []string
	// Units holds unit strings; empty for dimensionless parameters.
	Units []string
	// Start holds optimization start values.
	Start []float64
	// Lower and Upper hold the box bounds used during fitting.
	Lower []float64
	Upper []float64
}

// NumParams returns the model's parameter count.
func (d Descriptor) NumParams() int {
	return len(d.Parameters)
}

// Model is a parametric background decay model.
type Model interface {
	// Name returns the short model identifier, e.g. "hom3d".
	Name() string

	// Describe returns the parameter metadata. It is pure and returns
	// fresh slices on every call.
	Describe() Descriptor

	// Evaluate computes the decay curve over a time axis in microseconds.
	// The optional trailing argument is the modulation depth lambda,
	// defaulting to 1; passing more than one trailing value is an error.
	// The returned curve is aligned one-to-one with t.
	Evaluate(t, param []float64, lam ...float64) ([]float64, error)
}

// resolveArgs applies the call contract shared by every model: at most one
// modulation depth (default 1) and an exact parameter count. It runs before
// any physical computation.
func resolveArgs(param []float64, npar int, lam []float64) (float64, error) {
	if len(lam) > 1 {
		return 0, ErrArgumentCount
	}

	if len(param) != npar {
		return 0, parameterCountError(npar, len(param))
	}

	if len(lam) == 1 {
		return lam[0], nil
	}

	return 1, nil
}

// All returns one instance of every background model.
func All() []Model {
	return []Model{
		Exponential{},
		Hom3D{},
		ExcludedVolume{},
		HomFractal{},
		StretchedExp{},
		ProdStretchedExp{},
		SumStretchedExp{},
		Poly1{},
		Poly2{},
		Poly3{},
	}
}

// ByName returns the model with the given name.
func ByName(name string) (Model, bool) {
	for _, m := range All() {
		if m.Name() == name {
			return m, true
		}
	}

	return nil, false
}
