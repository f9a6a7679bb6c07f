// collision.go -- single pass collision analysis
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

	"github.com/hashicorp/golang-lru/arc/v2"
)

const (
	// number of hash -> first string mappings retained for sampling
	witnessCacheSize = 4096

	// max colliding pairs reported per variant
	maxSamples = 4
)

// CollisionPair is two distinct corpus strings with the same hash
type CollisionPair struct {
	Hash   uint32
	First  string
	Second string
}

// CollisionReport is the outcome of analyzing one variant.
//
// Collisions counts, in one forward pass, every hash value that was
// already produced earlier in the same pass. The first occurrence of a
// value never counts; every later one does, whatever string produced it.
type CollisionReport struct {
	Variant    string
	CorpusSize int
	Collisions int

	// Hashes reduced into Buckets (a power of 2 >= CorpusSize) slots;
	// Occupied is how many slots were hit.
	Buckets  uint64
	Occupied uint64

	// Samples holds up to maxSamples colliding pairs of distinct strings.
	// It is best effort: pairs whose first string has been evicted from
	// the witness cache are not reported.
	Samples []CollisionPair
}

// Rate returns collisions per corpus string
func (r CollisionReport) Rate() float64 {
	if r.CorpusSize == 0 {
		return 0
	}
	return float64(r.Collisions) / float64(r.CorpusSize)
}

// Occupancy returns the fraction of buckets hit
func (r CollisionReport) Occupancy() float64 {
	if r.Buckets == 0 {
		return 0
	}
	return float64(r.Occupied) / float64(r.Buckets)
}

// Analyze counts collisions of variant 'v' over corpus 'c'. Each call
// starts with a fresh accumulator so variants are judged independently.
func Analyze(c Corpus, v Variant) (CollisionReport, error) {
	r := CollisionReport{
		Variant:    v.Name,
		CorpusSize: len(c),
		Buckets:    nextpow2(uint64(len(c))),
	}

	witness, err := arc.NewARC[uint32, string](witnessCacheSize)
	if err != nil {
		return r, fmt.Errorf("analyze %s: %w", v.Name, err)
	}

	seen := make(map[uint32]struct{}, len(c))
	mask := r.Buckets - 1
	bv := newBitVector(r.Buckets)

	err = guard("analyze "+v.Name, func() {
		for _, s := range c {
			h := v.Fn(s)
			bv.Set(uint64(h) & mask)

			if _, ok := seen[h]; !ok {
				seen[h] = struct{}{}
				witness.Add(h, s)
				continue
			}

			r.Collisions++
			if len(r.Samples) < maxSamples {
				if first, ok := witness.Get(h); ok && first != s {
					r.Samples = append(r.Samples, CollisionPair{h, first, s})
				}
			}
		}
	})
	if err != nil {
		return r, err
	}

	r.Occupied = bv.Count()
	return r, nil
}
