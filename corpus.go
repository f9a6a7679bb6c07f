// corpus.go -- synthetic string corpus
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
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Corpus is the ordered string population used for every stage of a run.
// Order matters: collision counts depend on it. Nothing in this package
// modifies a Corpus after it is built.
type Corpus []string

// Category is the shape of a corpus string; it is picked by index mod 4.
type Category int

const (
	CategoryUUID Category = iota
	CategoryTimestamp
	CategoryRandom
	CategoryURL

	numCategories = 4
)

// URLPrefix is the fixed prefix of every CategoryURL string
const URLPrefix = "https://example.com/path/"

const alnum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func (c Category) String() string {
	switch c {
	case CategoryUUID:
		return "uuid"
	case CategoryTimestamp:
		return "timestamp"
	case CategoryRandom:
		return "random"
	case CategoryURL:
		return "url"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// CategoryOf returns the category of the string at corpus index 'i'
func CategoryOf(i int) Category {
	return Category(i % numCategories)
}

// Generator builds corpora from an explicit, seedable random source.
// Two generators with the same seed (and clock) emit identical corpora.
type Generator struct {
	src *rand.ChaCha8
	rng *rand.Rand

	// nanosecond clock for CategoryTimestamp; the generator forces the
	// emitted values to be strictly increasing.
	clock func() int64
	last  int64
}

// NewGenerator returns a generator whose randomness is derived entirely
// from 'seed'.
func NewGenerator(seed uint64) *Generator {
	var key [32]byte

	binary.LittleEndian.PutUint64(key[:8], seed)
	src := rand.NewChaCha8(key)
	g := &Generator{
		src:   src,
		rng:   rand.New(src),
		clock: func() int64 { return time.Now().UnixNano() },
	}
	return g
}

// Generate returns a corpus of exactly 'count' strings. The string at
// index i has shape CategoryOf(i).
func (g *Generator) Generate(count int) (Corpus, error) {
	if count < 0 {
		return nil, fmt.Errorf("generate %d: %w", count, ErrNegativeCount)
	}

	c := make(Corpus, 0, count)
	for i := 0; i < count; i++ {
		s, err := g.item(i)
		if err != nil {
			return nil, fmt.Errorf("generate: item %d: %w", i, err)
		}
		c = append(c, s)
	}
	return c, nil
}

func (g *Generator) item(i int) (string, error) {
	switch CategoryOf(i) {
	case CategoryUUID:
		u, err := uuid.NewRandomFromReader(g.src)
		if err != nil {
			return "", err
		}
		return u.String(), nil

	case CategoryTimestamp:
		return strconv.FormatInt(g.tick(), 10), nil

	case CategoryRandom:
		return g.randomString(10 + i%20), nil

	default:
		u, err := uuid.NewRandomFromReader(g.src)
		if err != nil {
			return "", err
		}
		return URLPrefix + strconv.Itoa(i) + "/" + u.String(), nil
	}
}

func (g *Generator) tick() int64 {
	t := g.clock()
	if t <= g.last {
		t = g.last + 1
	}
	g.last = t
	return t
}

func (g *Generator) randomString(n int) string {
	var sb strings.Builder

	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(alnum[g.rng.IntN(len(alnum))])
	}
	return sb.String()
}
