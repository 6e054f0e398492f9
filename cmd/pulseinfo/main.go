// Command pulseinfo prints the characteristics of scintillator pulse models.
//
// Usage:
//
//	pulseinfo [flags] [preset-name ...]
//
// Without arguments it prints info for all known presets. A custom pulse is
// analysed when both -decay and -rise are given; giving only one of them, a
// non-positive value or preset names alongside them is a usage error.
//
// Examples:
//
//	pulseinfo nai lyso
//	pulseinfo -decay 50 -rise 5
//	pulseinfo -norm 1 -legacy plastic
//	pulseinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pulse/dsp/core"
	"github.com/cwbudde/algo-pulse/measure/pulse"
)

type presetEntry struct {
	name      string
	decayTime float64 // ns
	riseTime  float64 // ns
}

var registry = []presetEntry{
	{"plastic", 2.4, 0.9},
	{"baf2-fast", 0.8, 0.4},
	{"labr3", 16, 2},
	{"lyso", 40, 3},
	{"nai", 230, 10},
	{"bgo", 300, 10},
	{"csi-tl", 1000, 20},
}

const maxSpectrumSize = 1 << 20

var errUsage = errors.New("invalid usage")

func main() {
	decay := flag.Float64("decay", 0, "decay time of a custom pulse")
	rise := flag.Float64("rise", 0, "rise time of a custom pulse")
	amplitude := flag.Float64("amp", 1, "amplitude constant")
	offset := flag.Float64("offset", 0, "time offset of the pulse origin")
	norm := flag.Float64("norm", math.NaN(), "normalise the pulse area to this value before analysis")
	steps := flag.Int("steps", pulse.DefaultSteps, "scan and integration resolution")
	legacy := flag.Bool("legacy", false, "use legacy rise/fall crossing logic")
	rate := flag.Float64("rate", 0, "spectrum sample rate (0 = ten samples per rise time)")
	size := flag.Int("size", 0, "spectrum FFT size (0 = cover the whole domain)")
	bwDB := flag.Float64("bw", 3, "bandwidth attenuation in dB")
	list := flag.Bool("list", false, "list available preset names")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pulseinfo [flags] [preset-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints peak, timing, area and bandwidth of scintillator pulses.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all presets.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pulseinfo nai lyso\n")
		fmt.Fprintf(os.Stderr, "  pulseinfo -decay 50 -rise 5\n")
		fmt.Fprintf(os.Stderr, "  pulseinfo -list\n")
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		printList()
		return
	}

	entries, err := selectEntries(*decay, *rise, flag.Args(), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	if len(entries) == 0 {
		logger.Error("no matching presets")
		os.Exit(1)
	}

	opts := []pulse.Option{pulse.WithSteps(*steps)}
	if *legacy {
		opts = append(opts, pulse.WithCrossingMode(pulse.CrossingLegacy))
	}

	a := analysis{
		amplitude: *amplitude,
		offset:    *offset,
		norm:      *norm,
		opts:      opts,
		rate:      *rate,
		size:      *size,
		bwDB:      *bwDB,
		logger:    logger,
	}
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, a.run(e))
	}

	if err := printTable(os.Stdout, rows); err != nil {
		logger.Error("failed to write output", "err", err)
		os.Exit(1)
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

// selectEntries returns the custom pulse when -decay or -rise is set and
// the named presets otherwise.
func selectEntries(decay, rise float64, names []string, logger *slog.Logger) ([]presetEntry, error) {
	if decay == 0 && rise == 0 {
		return resolveEntries(names, logger), nil
	}
	if !(decay > 0) || !(rise > 0) {
		return nil, fmt.Errorf("%w: a custom pulse needs -decay > 0 and -rise > 0, got %v and %v", errUsage, decay, rise)
	}
	if len(names) > 0 {
		return nil, fmt.Errorf("%w: preset names %v given with a custom pulse", errUsage, names)
	}
	return []presetEntry{{"custom", decay, rise}}, nil
}

func resolveEntries(names []string, logger *slog.Logger) []presetEntry {
	if len(names) == 0 {
		return append([]presetEntry(nil), registry...)
	}

	byName := make(map[string]presetEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []presetEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			logger.Warn("unknown preset (use -list to see available)", "name", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

type analysis struct {
	amplitude float64
	offset    float64
	norm      float64
	opts      []pulse.Option
	rate      float64
	size      int
	bwDB      float64
	logger    *slog.Logger
}

type row struct {
	name      string
	decayTime float64
	riseTime  float64
	peak      pulse.Peak
	rise      float64
	fall      float64
	area      float64
	bandwidth float64
	nyquistDB float64
	err       error
}

func (a analysis) run(e presetEntry) row {
	r := row{name: e.name, decayTime: e.decayTime, riseTime: e.riseTime}
	log := a.logger.With("pulse", e.name)

	m, err := pulse.NewModel(e.decayTime, e.riseTime, a.amplitude, 0, a.offset, a.opts...)
	if err != nil {
		log.Error("invalid pulse", "err", err)
		r.err = err
		return r
	}
	low, high := m.Domain()
	log.Debug("model created", "domainLow", low, "domainHigh", high, "steps", m.Steps(), "mode", m.Mode())

	if !math.IsNaN(a.norm) {
		if err := m.Normalise(a.norm); err != nil {
			log.Error("normalise failed", "err", err)
			r.err = err
			return r
		}
		log.Debug("normalised", "amplitude", m.Amplitude())
	}

	if r.peak, err = m.Max(); err != nil {
		log.Error("peak search failed", "err", err)
		r.err = err
		return r
	}
	if r.rise, err = m.RiseTime(); err != nil {
		log.Error("rise time failed", "err", err)
		r.err = err
		return r
	}
	if r.fall, err = m.DecayTime(); err != nil {
		log.Error("decay time failed", "err", err)
		r.err = err
		return r
	}
	if r.area, err = m.Area(0, 0, 0); err != nil {
		log.Error("area failed", "err", err)
		r.err = err
		return r
	}

	cfg := spectrumConfig(e, a.rate, a.size)
	log.Debug("spectrum", "sampleRate", cfg.SampleRate, "size", cfg.BlockSize)
	s, err := m.Spectrum(cfg.SampleRate, cfg.BlockSize)
	if err != nil {
		log.Error("spectrum failed", "err", err)
		r.err = err
		return r
	}
	if r.bandwidth, err = s.Bandwidth(a.bwDB); err != nil {
		log.Error("bandwidth failed", "err", err)
		r.err = err
		return r
	}
	resp, err := s.Response()
	if err != nil {
		log.Error("response failed", "err", err)
		r.err = err
		return r
	}
	r.nyquistDB = resp[len(resp)-1]
	return r
}

// spectrumConfig picks a sample rate resolving the rise and an FFT size
// covering the whole domain unless the caller overrides them.
func spectrumConfig(e presetEntry, rate float64, size int) core.ProcessorConfig {
	if rate <= 0 {
		rate = 10 / e.riseTime
	}
	if size <= 0 {
		span := 5*e.riseTime + 100*e.decayTime
		fit := nextPowerOf2(int(math.Ceil(span * rate)))
		size = int(core.Clamp(float64(fit), 2, maxSpectrumSize))
	}
	return core.ApplyProcessorOptions(core.WithSampleRate(rate), core.WithBlockSize(size))
}

func nextPowerOf2(n int) int {
	p := 2
	for p < n {
		p <<= 1
	}
	return p
}

func printTable(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Pulse\tDecay\tRise\tPeak t\tPeak\tRise 10-90\tFall 90-10\tArea\tBandwidth\tNyquist dB\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t-----\t----\t------\t----\t----------\t----------\t----\t---------\t----------\n"); err != nil {
		return err
	}

	for _, r := range rows {
		if r.err != nil {
			if _, err := fmt.Fprintf(tw, "%s\t%g\t%g\terror: %v\n", r.name, r.decayTime, r.riseTime, r.err); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(tw, "%s\t%g\t%g\t%.3f\t%.6g\t%.3f\t%.3f\t%.6g\t%.4g\t%.1f\n",
			r.name,
			r.decayTime,
			r.riseTime,
			r.peak.Time,
			r.peak.Value,
			r.rise,
			r.fall,
			r.area,
			r.bandwidth,
			r.nyquistDB,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}
