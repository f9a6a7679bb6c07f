// hashes.go -- built-in hash variants
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
	"unicode/utf16"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/opencoff/go-fasthash"
	"github.com/twmb/murmur3"
	"github.com/zeebo/xxh3"
)

// Names of the built-in variants
const (
	HashCode = "hashCode"
	Murmur3  = "murmur3"
	XXH3     = "xxh3"
	XXHash   = "xxhash"
	SipHash  = "siphash"
	FastHash = "fasthash"
	FNV1a    = "fnv1a"
)

// DefaultVariants are compared when the caller doesn't pick any
var DefaultVariants = []string{HashCode, Murmur3}

// Fixed seeds and keys. The murmur seed is the one commonly used by
// the JVM MurmurHash implementations.
const (
	murmurSeed   uint32 = 0x9747b28c
	fasthashSeed uint64 = 0xdeadbeefbaadf00d
	sipK0        uint64 = 0x0706050403020100
	sipK1        uint64 = 0x0f0e0d0c0b0a0908
)

// DefaultRegistry returns a new registry with all the built-in variants
func DefaultRegistry() *Registry {
	r := NewRegistry()

	builtins := []Variant{
		{HashCode, JavaHashCode},
		{Murmur3, murmur3Hash},
		{XXH3, xxh3Hash},
		{XXHash, xxhashHash},
		{SipHash, sipHash},
		{FastHash, fastHash},
		{FNV1a, fnv1aHash},
	}

	for _, v := range builtins {
		if err := r.Register(v.Name, v.Fn); err != nil {
			panic(err)
		}
	}
	return r
}

// JavaHashCode is the polynomial string hash of the JVM:
//
//	h = s[0]*31^(n-1) + s[1]*31^(n-2) + ... + s[n-1]
//
// computed over UTF-16 code units with 32-bit wraparound. The result is
// bit-identical to String.hashCode() reinterpreted as unsigned.
func JavaHashCode(s string) uint32 {
	var h uint32

	for _, r := range s {
		if r < 0x10000 {
			h = 31*h + uint32(r)
			continue
		}

		hi, lo := utf16.EncodeRune(r)
		h = 31*h + uint32(hi)
		h = 31*h + uint32(lo)
	}
	return h
}

func murmur3Hash(s string) uint32 {
	return murmur3.SeedSum32(murmurSeed, []byte(s))
}

func xxh3Hash(s string) uint32 {
	return fold(xxh3.HashString(s))
}

func xxhashHash(s string) uint32 {
	return fold(xxhash.Sum64String(s))
}

func sipHash(s string) uint32 {
	return fold(siphash.Hash(sipK0, sipK1, []byte(s)))
}

func fastHash(s string) uint32 {
	return fold(fasthash.Hash64(fasthashSeed, []byte(s)))
}

// 32-bit FNV-1a
func fnv1aHash(s string) uint32 {
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)

	h := uint32(offset32)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime32
	}
	return h
}
