package pulse

import (
	"fmt"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

// Peak is the sampled maximum of a pulse.
type Peak struct {
	Time  float64
	Value float64
}

// Max scans the domain in Steps samples and returns the largest sample.
// Equal maxima resolve to the earliest sample.
//
// ErrNotFound is returned when the maximum lies on the first or last sample
// (the peak is not bracketed by the domain at this resolution) or when the
// shape evaluates to a non-finite value.
func (m *Model) Max() (Peak, error) {
	grid, err := core.HalfOpen(m.steps, m.low, m.high)
	if err != nil {
		return Peak{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var best Peak
	bestIdx := -1
	for i, t := range grid {
		v := m.Shape(t)
		if !core.IsFinite(v) {
			return Peak{}, fmt.Errorf("%w: non-finite shape at t=%v", ErrNotFound, t)
		}
		if bestIdx < 0 || v > best.Value {
			best = Peak{Time: t, Value: v}
			bestIdx = i
		}
	}

	if bestIdx == 0 || bestIdx == len(grid)-1 {
		return Peak{}, fmt.Errorf("%w: peak at domain edge t=%v", ErrNotFound, best.Time)
	}
	return best, nil
}
