// collision_test.go -- test suite for collision analysis
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
	"testing"
)

func allVariants() []Variant {
	return append(DefaultRegistry().Variants(), constVariant)
}

func TestAnalyzeEmpty(t *testing.T) {
	assert := newAsserter(t)

	for _, v := range allVariants() {
		r, err := Analyze(Corpus{}, v)
		assert(err == nil, "%s: %s", v.Name, err)
		assert(r.Collisions == 0, "%s: empty corpus has %d collisions", v.Name, r.Collisions)
		assert(r.Occupied == 0, "%s: empty corpus occupies %d buckets", v.Name, r.Occupied)
		assert(r.Rate() == 0, "%s: rate %f", v.Name, r.Rate())
	}
}

func TestAnalyzeDuplicates(t *testing.T) {
	assert := newAsserter(t)

	c := Corpus{"a", "a", "b"}
	for _, v := range DefaultRegistry().Variants() {
		r, err := Analyze(c, v)
		assert(err == nil, "%s: %s", v.Name, err)
		assert(r.Collisions == 1, "%s: exp 1 collision, saw %d", v.Name, r.Collisions)
		assert(len(r.Samples) == 0, "%s: equal strings reported as a sample", v.Name)
	}
}

func TestAnalyzeHashCodeCollision(t *testing.T) {
	assert := newAsserter(t)

	// "Aa" and "BB" share a JVM hashCode; so do all 2^3 strings built
	// from those two blocks.
	c := Corpus{"AaAaAa", "AaAaBB", "AaBBAa", "AaBBBB", "BBAaAa", "BBAaBB", "BBBBAa", "BBBBBB"}
	r, err := Analyze(c, Variant{HashCode, JavaHashCode})
	assert(err == nil, "analyze: %s", err)
	assert(r.Collisions == len(c)-1, "exp %d collisions, saw %d", len(c)-1, r.Collisions)
	assert(r.Occupied == 1, "exp 1 occupied bucket, saw %d", r.Occupied)
	assert(len(r.Samples) == maxSamples, "exp %d samples, saw %d", maxSamples, len(r.Samples))

	for _, p := range r.Samples {
		assert(p.First == "AaAaAa", "sample first: %q", p.First)
		assert(p.First != p.Second, "sample has equal strings")
		assert(JavaHashCode(p.Second) == p.Hash, "sample hash mismatch")
	}
}

func TestAnalyzeConstant(t *testing.T) {
	assert := newAsserter(t)

	r, err := Analyze(Corpus(keyw), constVariant)
	assert(err == nil, "analyze: %s", err)
	assert(r.Collisions == len(keyw)-1, "exp %d collisions, saw %d", len(keyw)-1, r.Collisions)
	assert(r.Buckets == 32, "exp 32 buckets, saw %d", r.Buckets)
	assert(r.Occupied == 1, "exp 1 occupied bucket, saw %d", r.Occupied)
}

func TestAnalyzeIndependent(t *testing.T) {
	assert := newAsserter(t)

	c, err := NewGenerator(5).Generate(2000)
	assert(err == nil, "generate: %s", err)

	// each call must start from an empty accumulator
	for _, v := range allVariants() {
		a, err := Analyze(c, v)
		assert(err == nil, "%s: %s", v.Name, err)
		b, err := Analyze(c, v)
		assert(err == nil, "%s: %s", v.Name, err)
		assert(a.Collisions == b.Collisions, "%s: %d vs. %d", v.Name, a.Collisions, b.Collisions)
		assert(a.Collisions >= 0 && a.Collisions <= len(c), "%s: %d out of range", v.Name, a.Collisions)
	}
}

func TestAnalyzeMonotonic(t *testing.T) {
	assert := newAsserter(t)

	c, err := NewGenerator(9).Generate(300)
	assert(err == nil, "generate: %s", err)

	// repeat a tail so collisions are guaranteed to show up
	c = append(c, c[100:150]...)

	v := Variant{"lowbits", func(s string) uint32 { return JavaHashCode(s) & 0xff }}
	for _, vv := range append(allVariants(), v) {
		prev := 0
		for n := 0; n <= len(c); n += 7 {
			r, err := Analyze(c[:n], vv)
			assert(err == nil, "%s: %s", vv.Name, err)
			assert(r.Collisions >= prev, "%s: prefix %d: %d < %d", vv.Name, n, r.Collisions, prev)
			prev = r.Collisions
		}

		r, _ := Analyze(c, vv)
		assert(r.Collisions >= 50, "%s: exp >= 50 collisions, saw %d", vv.Name, r.Collisions)
	}
}

func TestAnalyzePanic(t *testing.T) {
	assert := newAsserter(t)

	_, err := Analyze(Corpus(keyw), panicVariant("pediment"))
	assert(isErr(err, ErrVariantFailed), "exp ErrVariantFailed, saw %v", err)
}

func TestAnalyzeOccupancy(t *testing.T) {
	assert := newAsserter(t)

	c, err := NewGenerator(3).Generate(4096)
	assert(err == nil, "generate: %s", err)

	r, err := Analyze(c, Variant{XXH3, xxh3Hash})
	assert(err == nil, "analyze: %s", err)
	assert(r.Buckets == 4096, "exp 4096 buckets, saw %d", r.Buckets)

	// n keys in n buckets fill about 1 - 1/e of them
	occ := r.Occupancy()
	assert(occ > 0.55 && occ < 0.70, "xxh3 occupancy %f out of range", occ)
}

func TestNextPow2(t *testing.T) {
	assert := newAsserter(t)

	tests := [][2]uint64{{0, 1}, {1, 1}, {2, 2}, {3, 4}, {20, 32}, {10000, 16384}, {16384, 16384}}
	for _, tc := range tests {
		assert(nextpow2(tc[0]) == tc[1], "nextpow2(%d): exp %d, saw %d", tc[0], tc[1], nextpow2(tc[0]))
	}
}
