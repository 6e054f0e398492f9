package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRelErr(t *testing.T) {
	if got := RelErr(1.01, 1); math.Abs(got-0.01) > 1e-12 {
		t.Fatalf("RelErr(1.01, 1) = %v, want 0.01", got)
	}
	if got := RelErr(-0.5, 0); got != 0.5 {
		t.Fatalf("RelErr(-0.5, 0) = %v, want 0.5", got)
	}
}

func TestRequireHelpersPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-9}, 1e-6)
	RequireRelNear(t, "value", 100.05, 100, 1e-3)
	RequireFinite(t, []float64{0, -1, 1e300})
}
