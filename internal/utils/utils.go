package utils

import (
	"encoding/binary"
	"unsafe"

	"github.com/cryptix-network/frost/internal/consts"
)

// LoadWord assembles the first 8 bytes of b into a word, byte j landing in
// bits 8j through 8j+7. b must hold at least 8 bytes.
func LoadWord(b []byte) uint64 {
	if consts.IsLittleEndian {
		return *(*uint64)(unsafe.Pointer(&b[0]))
	}
	return binary.LittleEndian.Uint64(b)
}

// XorBlock folds an 8-byte aligned block into the words, chunk k going into
// words[k%8].
func XorBlock(words *[8]uint64, block []byte) {
	for k := 0; len(block) >= 8; k++ {
		words[k&7] ^= LoadWord(block)
		block = block[8:]
	}
}

// WordsToBytes writes each word big-endian, word 0 first.
func WordsToBytes(words *[8]uint64, out *[64]byte) {
	binary.BigEndian.PutUint64(out[0*8:], words[0])
	binary.BigEndian.PutUint64(out[1*8:], words[1])
	binary.BigEndian.PutUint64(out[2*8:], words[2])
	binary.BigEndian.PutUint64(out[3*8:], words[3])
	binary.BigEndian.PutUint64(out[4*8:], words[4])
	binary.BigEndian.PutUint64(out[5*8:], words[5])
	binary.BigEndian.PutUint64(out[6*8:], words[6])
	binary.BigEndian.PutUint64(out[7*8:], words[7])
}
