package pulse

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-pulse/dsp/core"
	"github.com/cwbudde/algo-pulse/dsp/signal"
	"github.com/cwbudde/algo-pulse/dsp/spectrum"
)

// Spectrum is the one-sided spectrum of a sampled pulse.
// Magnitudes are scaled by the sample period so that they approximate the
// continuous Fourier transform; Magnitude[0] is the pulse area. Power holds
// the squared magnitudes.
type Spectrum struct {
	Freqs     []float64
	Magnitude []float64
	Power     []float64
	BinWidth  float64
}

// Spectrum samples the whole domain at sampleRate, zero-pads to size points
// and returns its FFT magnitude and power. size must be a power of two of at
// least 2 and hold every domain sample; ErrInvalidSize is returned otherwise.
func (m *Model) Spectrum(sampleRate float64, size int) (Spectrum, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Spectrum{}, ErrInvalidSampleRate
	}
	if size < 2 || size&(size-1) != 0 {
		return Spectrum{}, fmt.Errorf("%w: %d is not a power of two >= 2", ErrInvalidSize, size)
	}

	if (m.high-m.low)*sampleRate > float64(size)+1 {
		return Spectrum{}, fmt.Errorf("%w: domain needs more than %d samples", ErrInvalidSize, size)
	}

	gen := signal.NewGenerator(core.WithSampleRate(sampleRate))
	times, err := core.Arange(m.low, m.high, gen.Period())
	if err != nil {
		return Spectrum{}, fmt.Errorf("%w: %w", ErrInvalidSampleRate, err)
	}
	if len(times) > size {
		return Spectrum{}, fmt.Errorf("%w: %d samples cover the domain, size is %d", ErrInvalidSize, len(times), size)
	}

	samples, err := gen.Render(m, times[0], len(times))
	if err != nil {
		return Spectrum{}, fmt.Errorf("pulse: render: %w", err)
	}

	in := make([]complex128, size)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Spectrum{}, fmt.Errorf("pulse: failed to create FFT plan: %w", err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("pulse: FFT failed: %w", err)
	}

	bins := spectrum.OneSided(out)
	mag := spectrum.Magnitude(bins)
	pow := spectrum.Power(bins)
	period := gen.Period()
	for i := range mag {
		mag[i] *= period
		pow[i] *= period * period
	}

	freqs, err := spectrum.Frequencies(size, sampleRate)
	if err != nil {
		return Spectrum{}, fmt.Errorf("pulse: %w", err)
	}

	return Spectrum{
		Freqs:     freqs,
		Magnitude: mag,
		Power:     pow,
		BinWidth:  gen.Config().SampleRate / float64(size),
	}, nil
}

// Bandwidth returns the first frequency at which the magnitude has dropped
// dB decibels below its DC value, interpolated between bins.
func (s Spectrum) Bandwidth(dB float64) (float64, error) {
	if !(dB > 0) || math.IsInf(dB, 0) {
		return 0, fmt.Errorf("%w: attenuation must be > 0 dB, got %v", ErrInvalidParameter, dB)
	}
	if len(s.Magnitude) == 0 {
		return 0, fmt.Errorf("%w: empty spectrum", ErrNotFound)
	}

	level := s.Magnitude[0] * core.DBToLinear(-dB)
	f, err := spectrum.FallingCrossing(s.Freqs, s.Magnitude, level)
	if errors.Is(err, spectrum.ErrNoCrossing) {
		return 0, fmt.Errorf("%w: magnitude stays above -%v dB", ErrNotFound, dB)
	}
	if err != nil {
		return 0, fmt.Errorf("pulse: %w", err)
	}
	return f, nil
}

// Response returns the magnitude of every bin in dB relative to the
// largest bin, which for a pulse is DC.
func (s Spectrum) Response() ([]float64, error) {
	rel, err := signal.Normalize(s.Magnitude, 1)
	if err != nil {
		return nil, fmt.Errorf("pulse: %w", err)
	}
	for i, v := range rel {
		rel[i] = core.LinearToDB(v)
	}
	return rel, nil
}

// TransferMagnitude returns the analytic Fourier magnitude of the pulse at
// frequency f:
//
//	|H(f)| = area · exp(−(2πfσ)²/2) / √(1 + (2πfτ)²)
func (m *Model) TransferMagnitude(f float64) float64 {
	w := 2 * math.Pi * f
	gauss := math.Exp(-(w * m.riseTime) * (w * m.riseTime) / 2)
	pole := math.Sqrt(1 + (w*m.decayTime)*(w*m.decayTime))
	return m.AnalyticArea() * gauss / pole
}
