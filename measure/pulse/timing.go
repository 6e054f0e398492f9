package pulse

import (
	"fmt"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

// Threshold fractions of the peak value.
const (
	lowFraction  = 0.1
	highFraction = 0.9
)

// RiseTime returns the time the leading edge takes to go from 10 % to 90 %
// of the peak value. With CrossingLegacy it returns the absolute time of the
// 90 % crossing instead.
func (m *Model) RiseTime() (float64, error) {
	t10, t90, err := m.RiseEdges()
	if err != nil {
		return 0, err
	}
	return t90 - t10, nil
}

// DecayTime returns the time the trailing edge takes to fall from 90 % to
// 10 % of the peak value. With CrossingLegacy it returns the absolute time
// of the 10 % crossing instead.
func (m *Model) DecayTime() (float64, error) {
	t90, t10, err := m.FallEdges()
	if err != nil {
		return 0, err
	}
	return t10 - t90, nil
}

// RiseEdges returns the times at which the leading edge first exceeds 10 %
// and then 90 % of the peak value. The edge is scanned over
// [domainLow, peakTime) in Steps samples. In legacy mode t10 is always 0.
func (m *Model) RiseEdges() (t10, t90 float64, err error) {
	peak, err := m.Max()
	if err != nil {
		return 0, 0, err
	}

	t10, t90, err = m.crossings(m.low, peak.Time,
		func(v float64) bool { return v > peak.Value*lowFraction },
		func(v float64) bool { return v > peak.Value*highFraction },
	)
	if err != nil {
		return 0, 0, fmt.Errorf("rise edge: %w", err)
	}
	return t10, t90, nil
}

// FallEdges returns the times at which the trailing edge first drops below
// 90 % and then 10 % of the peak value. The edge is scanned over
// [peakTime, domainHigh) in Steps samples. In legacy mode t90 is always 0.
func (m *Model) FallEdges() (t90, t10 float64, err error) {
	peak, err := m.Max()
	if err != nil {
		return 0, 0, err
	}

	t90, t10, err = m.crossings(peak.Time, m.high,
		func(v float64) bool { return v < peak.Value*highFraction },
		func(v float64) bool { return v < peak.Value*lowFraction },
	)
	if err != nil {
		return 0, 0, fmt.Errorf("fall edge: %w", err)
	}
	return t90, t10, nil
}

// crossings scans [lo, hi) in ascending time. It latches the first sample
// satisfying first, then returns at the first later sample satisfying second.
func (m *Model) crossings(lo, hi float64, first, second func(float64) bool) (t1, t2 float64, err error) {
	grid, err := core.HalfOpen(m.steps, lo, hi)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: empty window [%v, %v): %w", ErrNotFound, lo, hi, err)
	}

	latched := m.mode == CrossingLegacy
	for _, t := range grid {
		v := m.Shape(t)
		if !latched {
			if first(v) {
				t1 = t
				latched = true
			}
			continue
		}
		if second(v) {
			return t1, t, nil
		}
	}

	if !latched {
		return 0, 0, fmt.Errorf("%w: first threshold never crossed in [%v, %v)", ErrNotFound, lo, hi)
	}
	return 0, 0, fmt.Errorf("%w: second threshold never crossed in [%v, %v)", ErrNotFound, lo, hi)
}
