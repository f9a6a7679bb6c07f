// helpers_test.go - helper routines for tests
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
	"errors"
	"fmt"
	"runtime"
	"testing"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

// fixed clock for reproducible timestamp strings
func fixedClock(t0 int64) func() int64 {
	return func() int64 {
		return t0
	}
}

// a variant that hashes everything to the same value
var constVariant = Variant{"const", func(string) uint32 { return 7 }}

// a variant that blows up on the given input
func panicVariant(bad string) Variant {
	return Variant{"panicky", func(s string) uint32 {
		if s == bad {
			panic("bad input")
		}
		return JavaHashCode(s)
	}}
}

// a variant that counts how often it is called
func countingVariant(n *int) Variant {
	return Variant{"counting", func(s string) uint32 {
		*n++
		return uint32(len(s))
	}}
}

func isErr(err, target error) bool {
	return errors.Is(err, target)
}

var keyw = []string{
	"expectoration",
	"mizzenmastman",
	"stockfather",
	"pictorialness",
	"villainous",
	"unquality",
	"sized",
	"Tarahumari",
	"endocrinotherapy",
	"quicksandy",
	"heretics",
	"pediment",
	"spleen's",
	"Shepard's",
	"paralyzed",
	"megahertzes",
	"Richardson's",
	"mechanics's",
	"Springfield",
	"burlesques",
}
