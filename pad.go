package frost

import "github.com/cryptix-network/frost/internal/consts"

// paddedLen is the length of block after padding: at least one byte longer,
// rounded up to a multiple of 8.
func paddedLen(n int) int {
	return (n + consts.WordLen) &^ (consts.WordLen - 1)
}

// appendPad appends block, the 0x80 terminator and zero fill to dst.
func appendPad(dst, block []byte) []byte {
	dst = append(dst, block...)
	dst = append(dst, consts.PadStart)
	for len(dst)%consts.WordLen != 0 {
		dst = append(dst, 0)
	}
	return dst
}

func pad(block []byte) []byte {
	return appendPad(make([]byte, 0, paddedLen(len(block))), block)
}
