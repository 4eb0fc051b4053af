package bg

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentCount indicates that Evaluate received more than one
	// trailing modulation depth.
	ErrArgumentCount = errors.New("bg: evaluate takes a time axis, a parameter vector and at most one modulation depth")

	// ErrParameterCount indicates a parameter vector whose length does not
	// match the model's declared parameter count.
	ErrParameterCount = errors.New("bg: wrong number of model parameters")
)

func parameterCountError(npar, got int) error {
	return fmt.Errorf("%w: model requires %d, got %d", ErrParameterCount, npar, got)
}
