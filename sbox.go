package frost

import (
	"github.com/cryptix-network/frost/internal/consts"
)

var identity = func() (s [256]byte) {
	for i := range s {
		s[i] = byte(i)
	}
	return s
}()

// generateSBox fills sbox with a permutation of the byte values derived from
// seed and the block being absorbed. The table only ever changes by swaps.
func generateSBox(seed uint64, input []byte, sbox *[256]byte) {
	*sbox = identity

	if len(input) > 7 {
		seed ^= uint64(input[2])<<16 ^ uint64(input[5])<<8 ^ uint64(input[7])
	} else {
		for i, b := range input {
			seed ^= uint64(b) << (8 * (uint(i) & 7))
		}
	}

	// both passes draw from the same generator; it is not reseeded
	state := seed
	for i := uint64(255); i >= 1; i-- {
		state = state*consts.LCGMul1 + consts.LCGInc
		j := state % (i + 1)
		sbox[i], sbox[j] = sbox[j], sbox[i]
	}
	for i := uint64(255); i >= 1; i-- {
		state = state*consts.LCGMul2 + consts.LCGInc
		j := state % (i + 1)
		sbox[i], sbox[j] = sbox[j], sbox[i]
	}
}
