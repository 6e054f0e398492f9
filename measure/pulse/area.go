package pulse

import (
	"fmt"

	"github.com/cwbudde/algo-pulse/dsp/core"
	"gonum.org/v1/gonum/integrate"
)

// Area integrates the pulse over [tLow, tHigh] with the trapezoidal rule on
// nSamples uniform intervals, i.e. the mean of the left and right Riemann
// sums.
//
// tLow == tHigh == 0 selects the model domain. nSamples <= 0 selects Steps
// (10 000 by default).
func (m *Model) Area(tLow, tHigh float64, nSamples int) (float64, error) {
	if tLow == 0 && tHigh == 0 {
		tLow, tHigh = m.low, m.high
	}
	if !core.IsFinite(tLow) || !core.IsFinite(tHigh) {
		return 0, fmt.Errorf("%w: non-finite bounds [%v, %v]", ErrInvalidRange, tLow, tHigh)
	}
	if tHigh <= tLow {
		return 0, fmt.Errorf("%w: upper bound %v must exceed lower bound %v", ErrInvalidRange, tHigh, tLow)
	}
	if nSamples <= 0 {
		nSamples = m.steps
	}

	x, err := core.Span(nSamples+1, tLow, tHigh)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	y := make([]float64, len(x))
	for i, t := range x {
		y[i] = m.Shape(t)
	}

	return integrate.Trapezoidal(x, y), nil
}

// Normalise rescales the amplitude so that Area over the default domain
// equals norm. The amplitude is left untouched when the area cannot be
// measured or is zero.
func (m *Model) Normalise(norm float64) error {
	if !core.IsFinite(norm) {
		return fmt.Errorf("%w: norm must be finite, got %v", ErrInvalidParameter, norm)
	}

	area, err := m.Area(0, 0, 0)
	if err != nil {
		return err
	}
	if area == 0 || !core.IsFinite(area) {
		return fmt.Errorf("%w: got %v", ErrZeroArea, area)
	}

	m.amplitude = m.amplitude / area * norm
	return nil
}
