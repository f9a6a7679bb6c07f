// utils.go -- utility functions
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
	"crypto/rand"
	"encoding/binary"
	"io"
)

// fold a 64-bit hash into the common 32-bit output domain
func fold(h uint64) uint32 {
	return uint32(h) ^ uint32(h>>32)
}

// RandomSeed returns a fresh seed for NewGenerator from crypto/rand
func RandomSeed() uint64 {
	return rand64()
}

func rand64() uint64 {
	var b [8]byte

	_, err := io.ReadFull(rand.Reader, b[:])
	if err != nil {
		panic("can't read crypto/rand")
	}

	return binary.BigEndian.Uint64(b[:])
}

// return next power of 2
func nextpow2(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	n = n - 1
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
