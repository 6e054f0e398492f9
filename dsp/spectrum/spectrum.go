package spectrum

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// ErrNoCrossing is returned when a spectrum never falls to the requested level.
var ErrNoCrossing = errors.New("spectrum: level never crossed")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(re, im []float64, in []complex128) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(re, im, in)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(re, im, in)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// OneSided returns the non-negative frequency half (DC through Nyquist) of
// a full-length spectrum of a real signal. The result aliases in.
func OneSided(in []complex128) []complex128 {
	if len(in) == 0 {
		return nil
	}
	return in[:len(in)/2+1]
}

// Frequencies returns the center frequency of each of the n/2+1 one-sided
// bins of an n-point transform sampled at sampleRate.
func Frequencies(n int, sampleRate float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("frequencies size must be > 0: %d", n)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("frequencies sampleRate must be > 0: %f", sampleRate)
	}
	binWidth := sampleRate / float64(n)
	out := make([]float64, n/2+1)
	for i := range out {
		out[i] = float64(i) * binWidth
	}
	return out, nil
}

// FallingCrossing returns the first frequency at which values drops below
// level, linearly interpolated between the two bracketing bins.
//
// freqs must be strictly increasing and the same length as values.
func FallingCrossing(freqs, values []float64, level float64) (float64, error) {
	if len(freqs) == 0 || len(freqs) != len(values) {
		return 0, fmt.Errorf("crossing requires equal non-empty inputs: %d, %d", len(freqs), len(values))
	}
	for i := 1; i < len(freqs); i++ {
		if !(freqs[i] > freqs[i-1]) {
			return 0, fmt.Errorf("crossing frequencies must be strictly increasing at index %d", i)
		}
	}
	if values[0] < level {
		return freqs[0], nil
	}

	for i := 1; i < len(values); i++ {
		if values[i] >= level {
			continue
		}
		v0, v1 := values[i-1], values[i]
		frac := (v0 - level) / (v0 - v1)
		return freqs[i-1] + frac*(freqs[i]-freqs[i-1]), nil
	}

	return 0, ErrNoCrossing
}
