// Package rng provides a seedable, deterministic randomness source for
// polynomial sampling.
//
// A [Reader] expands a seed with the Blake2b XOF, with domain separation,
// so that the same seed always yields the same polynomials. It exists for
// reproducible tests and test vectors; production dealers should sample
// from crypto/rand.Reader.
package rng

import (
	"errors"

	"golang.org/x/crypto/blake2b"
)

// DefaultPrefix is the domain separation prefix absorbed before the seed.
const DefaultPrefix = "BLSDKG-BN254-BLAKE2BXOF-v1"

// ErrEmptySeed is returned by New for a zero-length seed.
var ErrEmptySeed = errors.New("rng: empty seed")

// Reader is a deterministic byte stream derived from a seed.
// A Reader is not safe for concurrent use.
type Reader struct {
	xof blake2b.XOF
}

// New returns a Reader expanding seed under [DefaultPrefix].
func New(seed []byte) (*Reader, error) {
	return NewWithPrefix(DefaultPrefix, seed)
}

// NewWithPrefix returns a Reader expanding seed under a caller-chosen
// domain separation prefix. Distinct prefixes give independent streams
// for the same seed.
func NewWithPrefix(prefix string, seed []byte) (*Reader, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		return nil, err
	}
	xof.Write([]byte(prefix))
	xof.Write(seed)
	return &Reader{xof: xof}, nil
}

// Read fills p with the next bytes of the stream.
func (r *Reader) Read(p []byte) (int, error) {
	return r.xof.Read(p)
}
