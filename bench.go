// bench.go -- warmup and throughput measurement
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
	"time"
)

// Default pass counts
const (
	DefaultCorpusSize       = 10_000
	DefaultWarmupIterations = 100_000
	DefaultIterations       = 1_000_000
)

// hash results are folded into sink so the compiler can't drop the calls
var sink uint32

// BenchmarkResult is the outcome of timing one variant
type BenchmarkResult struct {
	Variant    string
	Iterations int
	CorpusSize int
	Elapsed    time.Duration
}

// Millis returns the elapsed time in whole milliseconds
func (r BenchmarkResult) Millis() int64 {
	return r.Elapsed.Milliseconds()
}

// Hashes returns the total number of hash evaluations timed
func (r BenchmarkResult) Hashes() uint64 {
	return uint64(r.Iterations) * uint64(r.CorpusSize)
}

// Throughput returns corpus strings hashed per second. It is zero when
// nothing was hashed or no time elapsed.
func (r BenchmarkResult) Throughput() float64 {
	n := r.Hashes()
	if n == 0 || r.Elapsed <= 0 {
		return 0
	}
	return float64(n) / r.Elapsed.Seconds()
}

// Warmup runs 'iterations' full corpus passes of every variant in 'vs'
// and discards the results. A panicking variant aborts the warmup.
func Warmup(c Corpus, vs []Variant, iterations int) error {
	if iterations < 0 {
		return fmt.Errorf("warmup: %d: %w", iterations, ErrNegativeIterations)
	}
	if len(vs) == 0 {
		return fmt.Errorf("warmup: %w", ErrNoVariants)
	}

	for _, v := range vs {
		err := guard("warmup "+v.Name, func() {
			for i := 0; i < iterations; i++ {
				sink ^= pass(c, v.Fn)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Measure times 'iterations' full passes of variant 'v' over 'c'.
// Callers must measure variants one after another; never concurrently.
func Measure(c Corpus, v Variant, iterations int) (BenchmarkResult, error) {
	r := BenchmarkResult{
		Variant:    v.Name,
		Iterations: iterations,
		CorpusSize: len(c),
	}

	if iterations < 0 {
		return r, fmt.Errorf("measure %s: %d: %w", v.Name, iterations, ErrNegativeIterations)
	}

	var x uint32
	start := time.Now()
	err := guard("measure "+v.Name, func() {
		for i := 0; i < iterations; i++ {
			x ^= pass(c, v.Fn)
		}
	})
	r.Elapsed = time.Since(start)
	if err != nil {
		return r, err
	}

	sink ^= x
	return r, nil
}

func pass(c Corpus, fn HashFunc) uint32 {
	var x uint32
	for _, s := range c {
		x ^= fn(s)
	}
	return x
}

// run fn and turn a panic into ErrVariantFailed
func guard(who string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errVariant(who, r)
		}
	}()

	fn()
	return nil
}

// Verdict describes how one result relates to another
type Verdict int

const (
	Undefined Verdict = iota
	Faster
	Slower
	Same
)

func (v Verdict) String() string {
	switch v {
	case Faster:
		return "faster"
	case Slower:
		return "slower"
	case Same:
		return "same"
	default:
		return "undefined"
	}
}

// Comparison relates the elapsed time of result A to result B
type Comparison struct {
	A, B    string
	Factor  float64
	Verdict Verdict
}

// Compare returns max(ta, tb)/min(ta, tb) and whether 'a' is faster or
// slower than 'b'. If either elapsed time is zero the ratio is Undefined.
func Compare(a, b BenchmarkResult) Comparison {
	cmp := Comparison{
		A: a.Variant,
		B: b.Variant,
	}

	ta, tb := a.Elapsed, b.Elapsed
	if ta <= 0 || tb <= 0 {
		return cmp
	}

	switch {
	case ta < tb:
		cmp.Verdict = Faster
		cmp.Factor = float64(tb) / float64(ta)
	case ta > tb:
		cmp.Verdict = Slower
		cmp.Factor = float64(ta) / float64(tb)
	default:
		cmp.Verdict = Same
		cmp.Factor = 1.0
	}
	return cmp
}

// String renders the comparison as a sentence
func (c Comparison) String() string {
	switch c.Verdict {
	case Faster, Slower:
		return fmt.Sprintf("%s is %.2fx %s than %s", c.A, c.Factor, c.Verdict, c.B)
	case Same:
		return fmt.Sprintf("%s is as fast as %s", c.A, c.B)
	default:
		return fmt.Sprintf("%s vs. %s: ratio undefined (zero elapsed time)", c.A, c.B)
	}
}
