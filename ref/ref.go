// Package ref is a direct, unoptimized rendition of the frost hash. It exists
// so the optimized code in the root package has something to be checked
// against.
package ref

import (
	"math/bits"

	"github.com/cryptix-network/frost/internal/consts"
)

// GenerateSBox derives the substitution table for one block.
func GenerateSBox(seed uint64, input []byte) [256]byte {
	var sbox [256]byte
	for i := range sbox {
		sbox[i] = byte(i)
	}

	if len(input) > 7 {
		seed ^= uint64(input[2]) << 16
		seed ^= uint64(input[5]) << 8
		seed ^= uint64(input[7])
	} else {
		for i, b := range input {
			seed ^= uint64(b) << (8 * (uint(i) % 8))
		}
	}

	state := seed
	for i := 255; i >= 1; i-- {
		state = state*consts.LCGMul1 + consts.LCGInc
		j := state % uint64(i+1)
		sbox[i], sbox[j] = sbox[j], sbox[i]
	}
	for i := 255; i >= 1; i-- {
		state = state*consts.LCGMul2 + consts.LCGInc
		j := state % uint64(i+1)
		sbox[i], sbox[j] = sbox[j], sbox[i]
	}

	return sbox
}

// BitMix is the per-word non-linear step of a round.
func BitMix(x, rc uint64, input []byte) uint64 {
	x += rc
	x ^= bits.RotateLeft64(x, 7)
	x += bits.RotateLeft64(x, 17)
	x ^= x * consts.MixMul1
	x -= bits.RotateLeft64(x, -19)
	x ^= bits.RotateLeft64(rc, 11)
	x ^= bits.RotateLeft64(x*consts.MixMul2, 23)

	if len(input) > 6 {
		b3 := uint64(input[3])
		b6 := uint64(input[6])
		x ^= bits.RotateLeft64(b3*consts.MixByte3^b6*consts.MixByte6, 13)
	}
	return x
}

// Substitute runs every byte of x through the table.
func Substitute(x uint64, sbox *[256]byte) uint64 {
	var out uint64
	for i := 0; i < 8; i++ {
		b := byte(x >> (8 * i))
		out |= uint64(sbox[b]) << (8 * i)
	}
	return out
}

// Diffuse mixes every word with four neighbors, all reads taken from the
// state as it was before the step.
func Diffuse(state *[8]uint64, round int) {
	pre := *state
	for i := 0; i < 8; i++ {
		left := pre[(i+7)%8]
		right := pre[(i+1)%8]
		center := pre[(i+4)%8]
		extra := pre[(i+3)%8]

		state[i] ^= bits.RotateLeft64(left, (round+2*i)%64)
		state[i] ^= bits.RotateLeft64(right, -((round + 3*i) % 64))
		state[i] ^= bits.RotateLeft64(center, 11)
		state[i] ^= bits.RotateLeft64(extra*consts.Golden, (round+5*i)%64)
	}
}

// Permute applies the full 24 round network to state.
func Permute(state *[8]uint64, input []byte) {
	var seed uint64
	for _, w := range state {
		seed ^= w
	}
	sbox := GenerateSBox(seed, input)

	for round := 0; round < consts.Rounds; round++ {
		rc := consts.RoundConstants[round%len(consts.RoundConstants)]
		for i := range state {
			state[i] = BitMix(state[i], rc, input)
		}
		for i := range state {
			state[i] = Substitute(state[i], &sbox)
		}
		Diffuse(state, round)
	}
}

// Pad appends 0x80 and then zeros up to a multiple of 8 bytes.
func Pad(block []byte) []byte {
	padded := append([]byte(nil), block...)
	padded = append(padded, consts.PadStart)
	for len(padded)%8 != 0 {
		padded = append(padded, 0)
	}
	return padded
}

// Hash absorbs every block in order into a zero state.
func Hash(blocks [][]byte) [8]uint64 {
	var state [8]uint64
	for _, block := range blocks {
		padded := Pad(block)
		for k := 0; k*8 < len(padded); k++ {
			var val uint64
			for j, b := range padded[k*8 : k*8+8] {
				val |= uint64(b) << (8 * j)
			}
			state[k%8] ^= val
		}
		Permute(&state, padded)
	}
	return state
}
