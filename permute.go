package frost

import (
	"math/bits"

	"github.com/cryptix-network/frost/internal/consts"
)

func bitMix(x, rc uint64, input []byte) uint64 {
	x += rc
	x ^= bits.RotateLeft64(x, 7)
	x += bits.RotateLeft64(x, 17)
	x ^= x * consts.MixMul1
	x -= bits.RotateLeft64(x, -19)
	x ^= bits.RotateLeft64(rc, 11)
	x ^= bits.RotateLeft64(x*consts.MixMul2, 23)

	if len(input) > 6 {
		b3, b6 := uint64(input[3]), uint64(input[6])
		x ^= bits.RotateLeft64(b3*consts.MixByte3^b6*consts.MixByte6, 13)
	}
	return x
}

func substitute(x uint64, s *[256]byte) uint64 {
	return uint64(s[byte(x)]) |
		uint64(s[byte(x>>8)])<<8 |
		uint64(s[byte(x>>16)])<<16 |
		uint64(s[byte(x>>24)])<<24 |
		uint64(s[byte(x>>32)])<<32 |
		uint64(s[byte(x>>40)])<<40 |
		uint64(s[byte(x>>48)])<<48 |
		uint64(s[byte(x>>56)])<<56
}

// diffuse couples every word with the words at offsets -1, +1, +4 and +3.
// Every read comes from the state as it was on entry.
func diffuse(s *[8]uint64, round int) {
	s0, s1, s2, s3, s4, s5, s6, s7 := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]

	m0 := s0 * consts.Golden
	m1 := s1 * consts.Golden
	m2 := s2 * consts.Golden
	m3 := s3 * consts.Golden
	m4 := s4 * consts.Golden
	m5 := s5 * consts.Golden
	m6 := s6 * consts.Golden
	m7 := s7 * consts.Golden

	r := round
	s[0] = s0 ^ rotl(s7, r) ^ rotr(s1, r) ^ bits.RotateLeft64(s4, 11) ^ rotl(m3, r)
	s[1] = s1 ^ rotl(s0, r+2) ^ rotr(s2, r+3) ^ bits.RotateLeft64(s5, 11) ^ rotl(m4, r+5)
	s[2] = s2 ^ rotl(s1, r+4) ^ rotr(s3, r+6) ^ bits.RotateLeft64(s6, 11) ^ rotl(m5, r+10)
	s[3] = s3 ^ rotl(s2, r+6) ^ rotr(s4, r+9) ^ bits.RotateLeft64(s7, 11) ^ rotl(m6, r+15)
	s[4] = s4 ^ rotl(s3, r+8) ^ rotr(s5, r+12) ^ bits.RotateLeft64(s0, 11) ^ rotl(m7, r+20)
	s[5] = s5 ^ rotl(s4, r+10) ^ rotr(s6, r+15) ^ bits.RotateLeft64(s1, 11) ^ rotl(m0, r+25)
	s[6] = s6 ^ rotl(s5, r+12) ^ rotr(s7, r+18) ^ bits.RotateLeft64(s2, 11) ^ rotl(m1, r+30)
	s[7] = s7 ^ rotl(s6, r+14) ^ rotr(s0, r+21) ^ bits.RotateLeft64(s3, 11) ^ rotl(m2, r+35)
}

// rotations are taken mod 64, which math/bits already does for us.
func rotl(x uint64, k int) uint64 { return bits.RotateLeft64(x, k) }
func rotr(x uint64, k int) uint64 { return bits.RotateLeft64(x, -k) }

// permute runs the full network over s, deriving a fresh table from the
// state and the absorbed block.
func permute(s *[8]uint64, input []byte, sbox *[256]byte) {
	seed := s[0] ^ s[1] ^ s[2] ^ s[3] ^ s[4] ^ s[5] ^ s[6] ^ s[7]
	generateSBox(seed, input, sbox)

	for round := 0; round < consts.Rounds; round++ {
		rc := consts.RoundConstants[round%len(consts.RoundConstants)]

		s[0] = substitute(bitMix(s[0], rc, input), sbox)
		s[1] = substitute(bitMix(s[1], rc, input), sbox)
		s[2] = substitute(bitMix(s[2], rc, input), sbox)
		s[3] = substitute(bitMix(s[3], rc, input), sbox)
		s[4] = substitute(bitMix(s[4], rc, input), sbox)
		s[5] = substitute(bitMix(s[5], rc, input), sbox)
		s[6] = substitute(bitMix(s[6], rc, input), sbox)
		s[7] = substitute(bitMix(s[7], rc, input), sbox)

		diffuse(s, round)
	}
}
