package core

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-pulse/internal/testutil"
)

func TestArange(t *testing.T) {
	tests := []struct {
		name      string
		start     float64
		end       float64
		step      float64
		wantLen   int
		wantFirst float64
		wantLast  float64
	}{
		{name: "exact", start: 0, end: 1, step: 0.25, wantLen: 4, wantFirst: 0, wantLast: 0.75},
		{name: "partial", start: 0, end: 1, step: 0.3, wantLen: 4, wantFirst: 0, wantLast: 0.9},
		{name: "negative start", start: -25, end: 5000, step: 0.5, wantLen: 10050, wantFirst: -25, wantLast: 4999.5},
		{name: "tenth", start: 0, end: 1, step: 0.1, wantLen: 10, wantFirst: 0, wantLast: 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Arange(tt.start, tt.end, tt.step)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if got[0] != tt.wantFirst {
				t.Fatalf("first = %v, want %v", got[0], tt.wantFirst)
			}
			if math.Abs(got[len(got)-1]-tt.wantLast) > 1e-12 {
				t.Fatalf("last = %v, want %v", got[len(got)-1], tt.wantLast)
			}
			for i := 1; i < len(got); i++ {
				if got[i] <= got[i-1] {
					t.Fatalf("not ascending at %d: %v <= %v", i, got[i], got[i-1])
				}
			}
			if got[len(got)-1] >= tt.end {
				t.Fatalf("last point %v not below end %v", got[len(got)-1], tt.end)
			}
		})
	}
}

func TestArangeInvalid(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step float64
	}{
		{"zero step", 0, 1, 0},
		{"negative step", 0, 1, -0.1},
		{"empty interval", 1, 1, 0.1},
		{"reversed", 2, 1, 0.1},
		{"nan", math.NaN(), 1, 0.1},
		{"inf step", 0, 1, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Arange(tt.start, tt.end, tt.step)
			if !errors.Is(err, ErrInvalidGrid) {
				t.Fatalf("err = %v, want ErrInvalidGrid", err)
			}
		})
	}
}

func TestSpan(t *testing.T) {
	got, err := Span(5, -1, 1)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, testutil.Ramp(-1, 0.5, 5), 1e-15)

	if _, err := Span(1, 0, 1); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("Span(1) err = %v, want ErrInvalidGrid", err)
	}
	if _, err := Span(3, 1, 0); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("Span reversed err = %v, want ErrInvalidGrid", err)
	}
}

func TestArangeMatchesRamp(t *testing.T) {
	got, err := Arange(-25, 5000, 0.5025)
	if err != nil {
		t.Fatal(err)
	}
	d, err := testutil.MaxAbsDiff(got, testutil.Ramp(-25, 0.5025, len(got)))
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Fatalf("Arange deviates from start+i*step by %v", d)
	}
}

func TestHalfOpen(t *testing.T) {
	got, err := HalfOpen(4, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.25, 0.5, 0.75}, 0)

	// Same points as Arange with the matching step.
	grid, err := HalfOpen(10000, -25, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if len(grid) != 10000 || grid[0] != -25 {
		t.Fatalf("len = %d, first = %v", len(grid), grid[0])
	}
	d, err := testutil.MaxAbsDiff(grid, testutil.Ramp(-25, 5025.0/10000, 10000))
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Fatalf("HalfOpen deviates from start+i*step by %v", d)
	}
	if grid[len(grid)-1] >= 5000 {
		t.Fatalf("last point %v not below end", grid[len(grid)-1])
	}
}

func TestHalfOpenInvalid(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		start, end float64
	}{
		{"zero points", 0, 0, 1},
		{"empty interval", 4, 1, 1},
		{"reversed", 4, 2, 1},
		{"inf end", 4, 0, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := HalfOpen(tt.n, tt.start, tt.end); !errors.Is(err, ErrInvalidGrid) {
				t.Fatalf("err = %v, want ErrInvalidGrid", err)
			}
		})
	}
}
