package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

// Shaper is a continuous-time waveform that can be evaluated at any time.
type Shaper interface {
	Shape(t float64) float64
}

// ShaperFunc adapts an ordinary function to the [Shaper] interface.
type ShaperFunc func(t float64) float64

// Shape calls f(t).
func (f ShaperFunc) Shape(t float64) float64 { return f(t) }

// Generator samples continuous shapes on a uniform time grid.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg: core.ApplyProcessorOptions(opts...),
	}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Period returns the time between two consecutive samples.
func (g *Generator) Period() float64 {
	return 1 / g.cfg.SampleRate
}

// Render samples s at start + i/sampleRate for i in [0, samples).
func (g *Generator) Render(s Shaper, start float64, samples int) ([]float64, error) {
	return g.RenderInto(nil, s, start, samples)
}

// RenderInto is like Render but reuses dst when it has enough capacity.
func (g *Generator) RenderInto(dst []float64, s Shaper, start float64, samples int) ([]float64, error) {
	if s == nil {
		return nil, fmt.Errorf("render shape must not be nil")
	}
	if samples <= 0 {
		return nil, fmt.Errorf("render samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("render sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if !core.IsFinite(start) {
		return nil, fmt.Errorf("render start must be finite: %f", start)
	}

	out := core.EnsureLen(dst, samples)
	period := g.Period()
	for i := range out {
		out[i] = s.Shape(start + float64(i)*period)
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
