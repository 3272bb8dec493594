// Package frost implements the Frost hash, a keyless 512-bit hash built from
// an input-dependent substitution-permutation network over eight 64-bit
// words.
package frost

import (
	"encoding/hex"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/cryptix-network/frost/internal/consts"
	"github.com/cryptix-network/frost/internal/utils"
)

const (
	// Size is the number of bytes in a digest.
	Size = consts.Size

	// Words is the number of 64-bit words in a digest.
	Words = consts.Words
)

// Digest is the output of Hash: the final state, word 0 first.
type Digest [Words]uint64

// Hash absorbs each block in order into a zero state and returns the result.
// Padding is applied per block, so the way a message is split into blocks
// changes the digest. Hash with no blocks returns the zero digest.
func Hash(blocks ...[]byte) Digest {
	var h hasher
	for _, block := range blocks {
		h.absorb(block)
	}
	return h.digest()
}

// Sum512 hashes data as a single block and returns the digest bytes.
func Sum512(data []byte) [Size]byte {
	return Hash(data).Bytes()
}

// Bytes returns the digest with every word written big-endian, so that its
// hex encoding matches String.
func (d Digest) Bytes() (out [Size]byte) {
	utils.WordsToBytes((*[Words]uint64)(&d), &out)
	return out
}

// String renders each word as 16 lowercase hex digits, concatenated in word
// order with no separators.
func (d Digest) String() string {
	b := d.Bytes()
	return hex.EncodeToString(b[:])
}

// IsZero reports whether every word is zero.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// DiffBits counts the bits that differ between d and o.
func (d Digest) DiffBits(o Digest) (n int) {
	for i := range d {
		n += bits.OnesCount64(d[i] ^ o[i])
	}
	return n
}

// ParseDigest is the inverse of Digest.String.
func ParseDigest(s string) (d Digest, err error) {
	if len(s) != 2*Size {
		return d, errors.Errorf("invalid digest length: %d", len(s))
	}
	var buf [Size]byte
	if _, err := hex.Decode(buf[:], []byte(s)); err != nil {
		return d, errors.Wrap(err, "invalid digest")
	}
	for i := range d {
		for _, b := range buf[8*i : 8*i+8] {
			d[i] = d[i]<<8 | uint64(b)
		}
	}
	return d, nil
}
