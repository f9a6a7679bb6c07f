// errors.go - public errors exposed by strhash
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
)

var (
	// ErrNegativeCount is returned when a corpus of negative size is requested
	ErrNegativeCount = errors.New("corpus size must not be negative")

	// ErrNegativeIterations is returned when warmup or measurement is asked
	// to run a negative number of passes
	ErrNegativeIterations = errors.New("iteration count must not be negative")

	// ErrNoVariants is returned when a run has no hash variants to compare
	ErrNoVariants = errors.New("no hash variants selected")

	// ErrEmptyVariantName is returned when registering a variant without a
	// name or without a function
	ErrEmptyVariantName = errors.New("variant name or function is empty")

	// ErrDuplicateVariant is returned when a variant name is registered twice
	ErrDuplicateVariant = errors.New("variant already registered")

	// ErrUnknownVariant is returned when looking up a name that isn't registered
	ErrUnknownVariant = errors.New("no such variant")

	// ErrVariantFailed is returned when a hash function panics while it is
	// being exercised. The run is aborted.
	ErrVariantFailed = errors.New("hash variant failed")

	// ErrEmptyCorpusFile is returned when a corpus file has no usable lines
	ErrEmptyCorpusFile = errors.New("corpus file has no entries")
)

func errVariant(who string, v any) error {
	return fmt.Errorf("%s: %w: %v", who, ErrVariantFailed, v)
}
