// Package pulse models the voltage-vs-time response of a scintillator-based
// radiation detector and characterizes it numerically.
//
// The pulse is the convolution of a Gaussian rise kernel (width riseTime)
// with a single exponential decay (time constant decayTime):
//
//	shape(t) = ½·A·σ·λ · exp(λσ²/2 − λ(t−t₀)) · erfc((λσ² − (t−t₀)) / (σ√2))
//
// with λ = 1/decayTime, σ = riseTime, t₀ = timeOffset and A the amplitude
// constant. All numerical scans run over the fixed domain
// [t₀ − 5σ, t₀ + 100·decayTime) with a default resolution of 10 000 samples:
//
//   - Max: peak time and value
//   - RiseTime: 10 % to 90 % of peak on the leading edge
//   - DecayTime: 90 % to 10 % of peak on the trailing edge
//   - Area: trapezoidal integral, and Normalise to rescale it
//   - Spectrum: FFT magnitude of the sampled pulse and its bandwidth
//
// # Usage
//
//	m, err := pulse.NewModel(50, 5, 1, 0, 0)
//	if err != nil {
//		return err
//	}
//	if err := m.Normalise(1); err != nil {
//		return err
//	}
//	peak, err := m.Max()
//	fmt.Printf("peak %.3f at t=%.2f\n", peak.Value, peak.Time)
//
// A Model is safe for concurrent reads. Normalise mutates the amplitude and
// must not run concurrently with other calls on the same Model.
package pulse
