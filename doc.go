// doc.go - top level documentation
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

// Package strhash compares non-cryptographic string hash functions on
// throughput and collision behavior.
//
// A run is strictly linear and single threaded:
//
//  1. Generate a corpus: a mixed population of UUIDs, timestamps,
//     random alphanumerics and URL-like strings.
//  2. Warm up every hash variant against the corpus.
//  3. Time repeated full-corpus passes, one variant at a time.
//  4. Count collisions for each variant in a single forward pass.
//  5. Print a human readable report.
//
// Hash functions are opaque: a variant is just a name and a
// func(string) uint32. The caller may register any number of them in a
// Registry; DefaultRegistry() carries the JVM compatible polynomial hash
// ("hashCode"), murmur3 and a handful of other well known functions.
//
// The primary interface is the 'Harness'; the individual stages
// (Generator, Warmup, Measure, Analyze, Report) are exported so they can
// be used on their own.
package strhash
