package pulse

import (
	"testing"

	"github.com/cwbudde/algo-pulse/internal/testutil"
)

func BenchmarkShape(b *testing.B) {
	m := newModel(b, testutil.Reference)

	for b.Loop() {
		_ = m.Shape(9.17)
	}
}

func BenchmarkMax(b *testing.B) {
	m := newModel(b, testutil.Reference)

	for b.Loop() {
		if _, err := m.Max(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRiseTime(b *testing.B) {
	m := newModel(b, testutil.Reference)

	for b.Loop() {
		if _, err := m.RiseTime(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkArea(b *testing.B) {
	m := newModel(b, testutil.Reference)

	for b.Loop() {
		if _, err := m.Area(0, 0, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSpectrum(b *testing.B) {
	m := newModel(b, testutil.Reference)

	for b.Loop() {
		if _, err := m.Spectrum(1, 16384); err != nil {
			b.Fatal(err)
		}
	}
}
