package core

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidGrid is returned when grid bounds or spacing cannot produce any point.
var ErrInvalidGrid = errors.New("core: invalid sample grid")

// Arange returns the evenly spaced points start + i*step over the half-open
// interval [start, end), in ascending order.
//
// Points are computed from their index rather than by accumulating step, so
// the count is exactly ceil((end-start)/step) and no rounding drift adds a
// trailing point at end.
func Arange(start, end, step float64) ([]float64, error) {
	if !IsFinite(start) || !IsFinite(end) || !IsFinite(step) {
		return nil, fmt.Errorf("%w: non-finite bounds [%v, %v) step %v", ErrInvalidGrid, start, end, step)
	}
	if step <= 0 || end <= start {
		return nil, fmt.Errorf("%w: [%v, %v) step %v", ErrInvalidGrid, start, end, step)
	}

	n := int(math.Ceil((end - start) / step))
	// Guard against the last index landing on end through rounding.
	for n > 0 && start+float64(n-1)*step >= end {
		n--
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: [%v, %v) step %v", ErrInvalidGrid, start, end, step)
	}

	return fill(start, step, n), nil
}

// HalfOpen returns n evenly spaced points over the half-open interval
// [start, end), the i-th at start + i*(end-start)/n.
func HalfOpen(n int, start, end float64) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: half-open grid needs at least 1 point, got %d", ErrInvalidGrid, n)
	}
	if !IsFinite(start) || !IsFinite(end) || end <= start {
		return nil, fmt.Errorf("%w: [%v, %v)", ErrInvalidGrid, start, end)
	}
	return fill(start, (end-start)/float64(n), n), nil
}

func fill(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Span returns n evenly spaced points over the closed interval [lo, hi].
// n must be at least 2.
func Span(n int, lo, hi float64) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: span needs at least 2 points, got %d", ErrInvalidGrid, n)
	}
	if !IsFinite(lo) || !IsFinite(hi) || hi <= lo {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidGrid, lo, hi)
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}
