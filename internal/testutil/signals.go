package testutil

// PulseParams is a pulse parameter set used across package tests.
type PulseParams struct {
	Name       string
	DecayTime  float64
	RiseTime   float64
	Amplitude  float64
	Baseline   float64
	TimeOffset float64
}

// Reference is the canonical parameter set: a 50-unit decay with a
// 5-unit Gaussian rise, unit amplitude and no offset.
var Reference = PulseParams{
	Name:      "reference",
	DecayTime: 50,
	RiseTime:  5,
	Amplitude: 1,
}

// PulseTable returns a spread of valid parameter sets covering slow and fast
// scintillators, shifted origins and non-unit amplitudes.
func PulseTable() []PulseParams {
	return []PulseParams{
		Reference,
		{Name: "fast plastic", DecayTime: 2.4, RiseTime: 0.9, Amplitude: 3},
		{Name: "csi", DecayTime: 1000, RiseTime: 20, Amplitude: 0.5},
		{Name: "shifted", DecayTime: 50, RiseTime: 5, Amplitude: 1, Baseline: 12, TimeOffset: 250},
		{Name: "negative offset", DecayTime: 40, RiseTime: 10, Amplitude: 2, TimeOffset: -100},
	}
}

// Ramp returns n samples of lo, lo+step, ... .
func Ramp(lo, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
