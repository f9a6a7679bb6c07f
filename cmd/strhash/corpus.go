// corpus.go -- 'corpus' command implementation
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
	"bufio"
	"fmt"
	"os"

	"github.com/opencoff/go-strhash"
	flag "github.com/opencoff/pflag"
)

type corpusCommand struct{}

func init() {
	m := corpusCommand{}
	registerCommand("corpus", &m)
}

func (m *corpusCommand) run(args []string, opt *Option) error {
	var count int
	var seed uint64

	fs := flag.NewFlagSet("corpus", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.IntVarP(&count, "count", "n", strhash.DefaultCorpusSize, "Generate `N` corpus strings")
	fs.Uint64VarP(&seed, "seed", "s", 0, "Seed the corpus generator with `S` (default: random)")
	fs.Usage = func() {
		fmt.Printf(`Usage: corpus [options]

Print a generated corpus, one string per line. The output can be fed
back with 'run --file'.

Options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}

	err := fs.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	if !fs.Changed("seed") {
		seed = strhash.RandomSeed()
	}

	c, err := strhash.NewGenerator(seed).Generate(count)
	if err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	opt.log.Info("generated corpus", "size", len(c), "seed", seed)

	wr := bufio.NewWriter(os.Stdout)
	for _, s := range c {
		wr.WriteString(s)
		wr.WriteByte('\n')
	}

	if err := wr.Flush(); err != nil {
		return fmt.Errorf("corpus: %w", err)
	}
	return nil
}
