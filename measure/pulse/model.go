package pulse

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

// Errors returned by pulse model functions.
var (
	ErrInvalidParameter  = errors.New("pulse: invalid parameter")
	ErrInvalidRange      = errors.New("pulse: invalid integration range")
	ErrNotFound          = errors.New("pulse: not found within scan resolution")
	ErrZeroArea          = errors.New("pulse: measured area is zero")
	ErrInvalidSampleRate = errors.New("pulse: sample rate must be positive")
	ErrInvalidSize       = errors.New("pulse: invalid transform size")
)

const (
	// DefaultSteps is the scan and integration resolution used when none is given.
	DefaultSteps = 10000

	// Domain bounds in units of the rise and decay time.
	domainRiseWidths  = 5
	domainDecayWidths = 100
)

// CrossingMode selects how RiseTime and DecayTime latch threshold crossings.
type CrossingMode int

const (
	// CrossingThreshold latches the first crossing of the lower threshold and
	// reports the time to the first subsequent crossing of the upper one
	// (10–90 % for rise, 90–10 % for fall).
	CrossingThreshold CrossingMode = iota

	// CrossingLegacy never latches the first crossing, so the reported value
	// is the absolute time of the second crossing (90 % on the rise, 10 % on
	// the fall). It reproduces results of older analyses that relied on
	// this behaviour.
	CrossingLegacy
)

func (c CrossingMode) String() string {
	switch c {
	case CrossingThreshold:
		return "threshold"
	case CrossingLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Option configures a Model.
type Option func(*Model)

// WithSteps sets the number of samples used by scans and by Area when no
// explicit sample count is given. Values below 3 are ignored.
func WithSteps(steps int) Option {
	return func(m *Model) {
		if steps >= 3 {
			m.steps = steps
		}
	}
}

// WithCrossingMode selects the threshold-crossing behaviour of RiseTime and
// DecayTime.
func WithCrossingMode(mode CrossingMode) Option {
	return func(m *Model) {
		if mode == CrossingThreshold || mode == CrossingLegacy {
			m.mode = mode
		}
	}
}

// Model is an analytic scintillator pulse.
type Model struct {
	decayTime  float64
	riseTime   float64
	amplitude  float64
	baseline   float64
	timeOffset float64

	// derived once in NewModel
	decayRate float64
	low       float64
	high      float64

	steps int
	mode  CrossingMode
}

// NewModel creates a pulse model. decayTime and riseTime must be positive
// and every parameter must be finite. baseline is carried for callers but
// does not enter the shape.
func NewModel(decayTime, riseTime, amplitude, baseline, timeOffset float64, opts ...Option) (*Model, error) {
	params := []struct {
		name  string
		value float64
	}{
		{"decay time", decayTime},
		{"rise time", riseTime},
		{"amplitude", amplitude},
		{"baseline", baseline},
		{"time offset", timeOffset},
	}
	for _, p := range params {
		if !core.IsFinite(p.value) {
			return nil, fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameter, p.name, p.value)
		}
	}
	if decayTime <= 0 {
		return nil, fmt.Errorf("%w: decay time must be > 0, got %v", ErrInvalidParameter, decayTime)
	}
	if riseTime <= 0 {
		return nil, fmt.Errorf("%w: rise time must be > 0, got %v", ErrInvalidParameter, riseTime)
	}

	m := &Model{
		decayTime:  decayTime,
		riseTime:   riseTime,
		amplitude:  amplitude,
		baseline:   baseline,
		timeOffset: timeOffset,
		decayRate:  1 / decayTime,
		low:        timeOffset - domainRiseWidths*riseTime,
		high:       timeOffset + domainDecayWidths*decayTime,
		steps:      DefaultSteps,
		mode:       CrossingThreshold,
	}
	if !(m.low < m.high) {
		return nil, fmt.Errorf("%w: empty domain [%v, %v)", ErrInvalidParameter, m.low, m.high)
	}

	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m, nil
}

// DecayTimeConstant returns the exponential decay time constant.
func (m *Model) DecayTimeConstant() float64 { return m.decayTime }

// RiseTimeConstant returns the width of the Gaussian rise kernel.
func (m *Model) RiseTimeConstant() float64 { return m.riseTime }

// Amplitude returns the current amplitude constant.
func (m *Model) Amplitude() float64 { return m.amplitude }

// Baseline returns the baseline the model was created with.
func (m *Model) Baseline() float64 { return m.baseline }

// TimeOffset returns the pulse origin.
func (m *Model) TimeOffset() float64 { return m.timeOffset }

// DecayRate returns 1/decayTime.
func (m *Model) DecayRate() float64 { return m.decayRate }

// Domain returns the half-open scan window [low, high).
func (m *Model) Domain() (low, high float64) { return m.low, m.high }

// Steps returns the scan resolution.
func (m *Model) Steps() int { return m.steps }

// Mode returns the crossing mode used by RiseTime and DecayTime.
func (m *Model) Mode() CrossingMode { return m.mode }

// Shape evaluates the pulse at time t.
//
// For large erfc arguments the exponential and erfc factors are merged into
// exp(a-x²)·erfcx(x), which stays finite where exp(a) alone overflows and
// erfc(x) alone underflows.
func (m *Model) Shape(t float64) float64 {
	sigma := m.riseTime
	lambda := m.decayRate
	u := t - m.timeOffset

	a := lambda*sigma*sigma/2 - lambda*u
	x := (lambda*sigma*sigma - u) / (sigma * math.Sqrt2)
	scale := 0.5 * m.amplitude * sigma * lambda

	if x > scaledErfcCutoff {
		return scale * math.Exp(a-x*x) * scaledErfc(x)
	}
	return scale * math.Exp(a) * math.Erfc(x)
}

// scaledErfcCutoff is where the asymptotic series of scaledErfc reaches
// float64 precision.
const scaledErfcCutoff = 6

// scaledErfc returns exp(x²)·erfc(x) for x > scaledErfcCutoff using the
// asymptotic series 1/(x√π)·Σ (-1)ⁿ (2n-1)!!/(2x²)ⁿ, summed until its
// terms stop shrinking.
func scaledErfc(x float64) float64 {
	x2 := 2 * x * x
	term, sum := 1.0, 1.0
	for n := 1; n < 60; n++ {
		next := term * float64(2*n-1) / x2
		if next >= term {
			break
		}
		term = next
		if n%2 == 1 {
			sum -= term
		} else {
			sum += term
		}
		if term < 1e-17 {
			break
		}
	}
	return sum / (x * math.SqrtPi)
}

// AnalyticArea returns the integral of Shape over the whole real line,
//
//	A·σ·exp(λσ²/2 − λ²σ²/2),
//
// which the numeric Area over the default domain approximates.
func (m *Model) AnalyticArea() float64 {
	s2 := m.riseTime * m.riseTime
	l := m.decayRate
	return m.amplitude * m.riseTime * math.Exp(l*s2/2-l*l*s2/2)
}
