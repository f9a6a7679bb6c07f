// report_test.go -- test suite for the report printer
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
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleReport() *Report {
	return &Report{
		Results: []BenchmarkResult{
			{HashCode, 1000, 10000, 2 * time.Second},
			{Murmur3, 1000, 10000, 5 * time.Second},
		},
		Collisions: []CollisionReport{
			{Variant: HashCode, CorpusSize: 10000, Collisions: 3, Buckets: 16384, Occupied: 8000,
				Samples: []CollisionPair{{0x840, "Aa", "BB"}}},
			{Variant: Murmur3, CorpusSize: 10000, Collisions: 0, Buckets: 16384, Occupied: 7900},
		},
	}
}

func TestReportPrint(t *testing.T) {
	assert := newAsserter(t)

	var buf bytes.Buffer
	err := sampleReport().Print(&buf)
	assert(err == nil, "print: %s", err)

	exp := `
Results:
hashCode: 2000 ms (5,000,000 strings/sec)
murmur3: 5000 ms (2,000,000 strings/sec)
hashCode is 2.50x faster than murmur3

Testing collision rates...
hashCode collisions: 3
murmur3 collisions: 0
`
	assert(buf.String() == exp, "report mismatch:\nexp:\n%s\nsaw:\n%s", exp, buf.String())
}

func TestReportVerbose(t *testing.T) {
	assert := newAsserter(t)

	var buf bytes.Buffer
	r := sampleReport()
	r.Verbose = true
	err := r.Print(&buf)
	assert(err == nil, "print: %s", err)

	s := buf.String()
	assert(strings.Contains(s, "  buckets: 8,000/16,384 occupied (48.8%)\n"), "missing bucket line:\n%s", s)
	assert(strings.Contains(s, "  0x00000840: \"Aa\" <-> \"BB\"\n"), "missing sample line:\n%s", s)
}

func TestReportComparisons(t *testing.T) {
	assert := newAsserter(t)

	r := &Report{}
	assert(r.Comparisons() == nil, "empty report has comparisons")

	r.Results = []BenchmarkResult{
		{"a", 1, 1, 100 * time.Millisecond},
		{"b", 1, 1, 50 * time.Millisecond},
		{"c", 1, 1, 400 * time.Millisecond},
	}

	cmps := r.Comparisons()
	assert(len(cmps) == 2, "exp 2 comparisons, saw %d", len(cmps))
	assert(cmps[0].A == "a" && cmps[0].B == "b" && cmps[0].Verdict == Slower, "a vs b: %+v", cmps[0])
	assert(cmps[1].A == "a" && cmps[1].B == "c" && cmps[1].Verdict == Faster, "a vs c: %+v", cmps[1])
}

type failWriter struct {
	n int
}

var errDiskFull = errors.New("disk full")

func (f *failWriter) Write(b []byte) (int, error) {
	if f.n == 0 {
		return 0, errDiskFull
	}
	f.n--
	return len(b), nil
}

type shortWriter struct{}

func (shortWriter) Write(b []byte) (int, error) {
	return len(b) / 2, nil
}

func TestReportWriteError(t *testing.T) {
	assert := newAsserter(t)

	err := sampleReport().Print(&failWriter{n: 2})
	assert(isErr(err, errDiskFull), "exp errDiskFull, saw %v", err)

	err = sampleReport().Print(shortWriter{})
	assert(err != nil && strings.Contains(err.Error(), "short write"), "exp short write, saw %v", err)
}
