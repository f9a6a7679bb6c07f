// harness.go -- run the whole comparison
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package strhash

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Config describes one run
type Config struct {
	CorpusSize       int
	WarmupIterations int
	Iterations       int

	// Seed for the corpus generator; log it to reproduce a run
	Seed uint64

	// Variant names, in report order. The first is the baseline.
	Variants []string

	// Corpus, if non-nil, is used as is instead of generating one;
	// CorpusSize and Seed are ignored.
	Corpus Corpus

	// Verbose adds bucket occupancy and collision samples to the report
	Verbose bool
}

// DefaultConfig returns the standard run: 10,000 strings, 100,000
// warmup passes, 1,000,000 timed passes, hashCode vs. murmur3 and a
// fresh random seed.
func DefaultConfig() Config {
	return Config{
		CorpusSize:       DefaultCorpusSize,
		WarmupIterations: DefaultWarmupIterations,
		Iterations:       DefaultIterations,
		Seed:             RandomSeed(),
		Variants:         append([]string(nil), DefaultVariants...),
	}
}

func (c *Config) validate() error {
	if c.Corpus == nil && c.CorpusSize < 0 {
		return fmt.Errorf("config: corpus size %d: %w", c.CorpusSize, ErrNegativeCount)
	}
	if c.WarmupIterations < 0 {
		return fmt.Errorf("config: warmup %d: %w", c.WarmupIterations, ErrNegativeIterations)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("config: iterations %d: %w", c.Iterations, ErrNegativeIterations)
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("config: %w", ErrNoVariants)
	}
	return nil
}

// Harness drives a run: generate -> warmup -> measure -> analyze -> report.
// Any failing stage ends the run; no partial report is printed.
type Harness struct {
	cfg      Config
	variants []Variant
	out      io.Writer
	log      *slog.Logger
}

// NewHarness validates 'cfg' against registry 'reg'. Progress and the
// final report are written to 'out'; 'log' may be nil.
func NewHarness(cfg Config, reg *Registry, out io.Writer, log *slog.Logger) (*Harness, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	vs, err := reg.Select(cfg.Variants...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := &Harness{
		cfg:      cfg,
		variants: vs,
		out:      out,
		log:      log,
	}
	return h, nil
}

// Run executes every stage in order and prints the report
func (h *Harness) Run() (*Report, error) {
	ew := newErrWriter(h.out)

	c, err := h.corpus()
	if err != nil {
		return nil, err
	}

	ew.Printf("Warming up...\n")
	start := time.Now()
	if err := Warmup(c, h.variants, h.cfg.WarmupIterations); err != nil {
		return nil, err
	}
	h.log.Debug("warmup done", "stage", "warmup",
		"iterations", h.cfg.WarmupIterations, "elapsed", time.Since(start))

	rep := &Report{
		Verbose: h.cfg.Verbose,
	}

	for _, v := range h.variants {
		ew.Printf("\nTesting %s...\n", v.Name)
		r, err := Measure(c, v, h.cfg.Iterations)
		if err != nil {
			return nil, err
		}

		h.log.Debug("measured", "stage", "measure", "variant", v.Name,
			"elapsed", r.Elapsed, "throughput", r.Throughput())
		rep.Results = append(rep.Results, r)
	}

	for _, v := range h.variants {
		cr, err := Analyze(c, v)
		if err != nil {
			return nil, err
		}

		h.log.Debug("analyzed", "stage", "analyze", "variant", v.Name,
			"collisions", cr.Collisions, "occupied", cr.Occupied, "buckets", cr.Buckets)
		rep.Collisions = append(rep.Collisions, cr)
	}

	if err := ew.Error(); err != nil {
		return nil, fmt.Errorf("progress: %w", err)
	}

	if err := rep.Print(h.out); err != nil {
		return nil, err
	}
	return rep, nil
}

func (h *Harness) corpus() (Corpus, error) {
	if h.cfg.Corpus != nil {
		h.log.Info("using supplied corpus", "stage", "corpus", "size", len(h.cfg.Corpus))
		return h.cfg.Corpus, nil
	}

	c, err := NewGenerator(h.cfg.Seed).Generate(h.cfg.CorpusSize)
	if err != nil {
		return nil, err
	}

	h.log.Info("generated corpus", "stage", "corpus", "size", len(c), "seed", h.cfg.Seed)
	return c, nil
}
