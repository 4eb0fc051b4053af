package bg

import "math"

// CODATA 2018 values.
const (
	avogadro      = 6.02214076e23    // Avogadro constant, mol^-1
	bohrMagneton  = 9.2740100783e-24 // Bohr magneton, J/T
	magneticConst = 1.25663706212e-6 // magnetic constant, N A^-2
	planck        = 6.62607015e-34   // Planck constant, J/Hz
	gFree         = 2.00231930436256 // free-electron g factor
)

// dipolarConst is (mu0/4pi)*(ge*muB)^2/hbar in m^3 s^-1. It governs the
// dipolar coupling strength between two electron spins.
var dipolarConst = func() float64 {
	hbar := planck / (2 * math.Pi)
	m := gFree * bohrMagneton

	return magneticConst / (4 * math.Pi) * m * m / hbar
}()

// spinsPerCubicMetre converts a concentration in umol/L to spins/m^3.
func spinsPerCubicMetre(conc float64) float64 {
	return conc * 1e-6 * 1e3 * avogadro
}

// absSeconds returns |t| converted from microseconds to seconds.
func absSeconds(t []float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = math.Abs(ti) * 1e-6
	}

	return out
}
