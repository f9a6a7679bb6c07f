// report.go -- human readable results
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
	"math"

	"github.com/dustin/go-humanize"
)

// Report collects everything a run produced. Results and Collisions are
// in variant order; the first variant is the baseline for comparisons.
type Report struct {
	Results    []BenchmarkResult
	Collisions []CollisionReport

	// Verbose adds bucket occupancy and colliding samples
	Verbose bool
}

// Comparisons relates every result to the first one
func (r *Report) Comparisons() []Comparison {
	if len(r.Results) < 2 {
		return nil
	}

	base := r.Results[0]
	cmps := make([]Comparison, 0, len(r.Results)-1)
	for _, o := range r.Results[1:] {
		cmps = append(cmps, Compare(base, o))
	}
	return cmps
}

// Print writes the results block followed by the collision block to 'w'.
// It returns the first write error, if any.
func (r *Report) Print(w io.Writer) error {
	ew := newErrWriter(w)

	ew.Printf("\nResults:\n")
	for _, b := range r.Results {
		ew.Printf("%s: %d ms (%s strings/sec)\n", b.Variant, b.Millis(), throughput(b))
	}
	for _, c := range r.Comparisons() {
		ew.Printf("%s\n", c)
	}

	ew.Printf("\nTesting collision rates...\n")
	for _, c := range r.Collisions {
		ew.Printf("%s collisions: %d\n", c.Variant, c.Collisions)
		if !r.Verbose {
			continue
		}

		ew.Printf("  buckets: %s/%s occupied (%.1f%%)\n",
			humanize.Comma(int64(c.Occupied)), humanize.Comma(int64(c.Buckets)),
			100.0*c.Occupancy())
		for _, p := range c.Samples {
			ew.Printf("  0x%08x: %q <-> %q\n", p.Hash, p.First, p.Second)
		}
	}

	if err := ew.Error(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

func throughput(b BenchmarkResult) string {
	return humanize.Comma(int64(math.Round(b.Throughput())))
}
