package frost

import (
	"github.com/cryptix-network/frost/internal/utils"
)

//
// hasher contains state for a frost hash
//

type hasher struct {
	state [8]uint64
	sbox  [256]byte
	buf   []byte
}

// absorb pads one block, folds it into the state and permutes. Blocks longer
// than 64 bytes wrap around and fold into the same words again before the
// single permutation.
func (a *hasher) absorb(block []byte) {
	a.buf = appendPad(a.buf[:0], block)
	utils.XorBlock(&a.state, a.buf)
	permute(&a.state, a.buf, &a.sbox)
}

func (a *hasher) digest() Digest {
	return Digest(a.state)
}
