// corpusfile.go -- read a corpus from a text file
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
	"fmt"
	"os"

	"github.com/opencoff/go-mmap"
)

// LoadCorpus reads a newline delimited corpus from file 'fn'. Each
// non-empty line is one entry; a trailing '\r' is stripped. The file is
// memory mapped while it is read; the returned strings are copies and
// remain valid after the mapping is gone.
func LoadCorpus(fn string) (Corpus, error) {
	fd, err := os.Open(fn)
	if err != nil {
		return nil, err
	}

	defer fd.Close()

	st, err := fd.Stat()
	if err != nil {
		return nil, fmt.Errorf("%s: can't stat: %w", fn, err)
	}

	if st.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", fn, ErrEmptyCorpusFile)
	}

	mm := mmap.New(fd)
	mapping, err := mm.Map(st.Size(), 0, mmap.PROT_READ, mmap.F_READAHEAD)
	if err != nil {
		return nil, fmt.Errorf("%s: can't mmap %d bytes: %w", fn, st.Size(), err)
	}

	defer mapping.Unmap()

	c := splitLines(mapping.Bytes())
	if len(c) == 0 {
		return nil, fmt.Errorf("%s: %w", fn, ErrEmptyCorpusFile)
	}
	return c, nil
}

func splitLines(b []byte) Corpus {
	c := make(Corpus, 0, bytes.Count(b, []byte{'\n'})+1)
	for len(b) > 0 {
		var line []byte

		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			line, b = b, nil
		} else {
			line, b = b[:i], b[i+1:]
		}

		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}

		// string() copies out of the mapping
		c = append(c, string(line))
	}
	return c
}
