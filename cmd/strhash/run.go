// run.go -- 'run' command implementation
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

package main

import (
	"fmt"
	"os"

	"github.com/opencoff/go-strhash"
	flag "github.com/opencoff/pflag"
)

type runCommand struct{}

func init() {
	m := runCommand{}
	registerCommand("run", &m)
}

func (m *runCommand) run(args []string, opt *Option) error {
	var corpusFile string

	cfg := strhash.DefaultConfig()

	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.IntVarP(&cfg.CorpusSize, "count", "n", strhash.DefaultCorpusSize, "Generate `N` corpus strings")
	fs.IntVarP(&cfg.WarmupIterations, "warmup", "w", strhash.DefaultWarmupIterations, "Run `N` warmup passes")
	fs.IntVarP(&cfg.Iterations, "iterations", "i", strhash.DefaultIterations, "Run `N` timed passes per variant")
	fs.Uint64VarP(&cfg.Seed, "seed", "s", 0, "Seed the corpus generator with `S` (default: random)")
	fs.StringSliceVarP(&cfg.Variants, "hash", "H", strhash.DefaultVariants, "Compare hash variants `H1,H2,..`; the first is the baseline")
	fs.StringVarP(&corpusFile, "file", "f", "", "Read the corpus from `FILE` instead of generating it")
	fs.Usage = func() {
		fmt.Printf(`Usage: run [options]

Generate a corpus, warm up every hash variant, time each one and count
its collisions. See 'list' for the available variants.

Options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}

	err := fs.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if !fs.Changed("seed") {
		cfg.Seed = strhash.RandomSeed()
	}
	cfg.Verbose = opt.verbose

	if len(corpusFile) > 0 {
		cfg.Corpus, err = strhash.LoadCorpus(corpusFile)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}

	h, err := strhash.NewHarness(cfg, strhash.DefaultRegistry(), os.Stdout, opt.log)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if _, err = h.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
