package frost

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/cryptix-network/frost/ref"
)

func BenchmarkGenerateSBox(b *testing.B) {
	var sbox [256]byte
	input := []byte("benchmark")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		generateSBox(uint64(i), input, &sbox)
	}
}

func BenchmarkPermute(b *testing.B) {
	var s [8]uint64
	var sbox [256]byte
	input := make([]byte, 64)

	b.SetBytes(64)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		permute(&s, input, &sbox)
	}
}

func BenchmarkBasic(b *testing.B) {
	sizes := []int64{1, 16, 64, 256, 1024, 4096, 16 * 1024, 64 * 1024}

	for _, size := range sizes {
		size := size
		input := bytes.Repeat([]byte{0xaa}, int(size))

		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(size)

			for i := 0; i < b.N; i++ {
				_ = Hash(input)
			}
		})
	}
}

func BenchmarkReference(b *testing.B) {
	input := bytes.Repeat([]byte{0xaa}, 1024)

	b.SetBytes(1024)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = ref.Hash([][]byte{input})
	}
}

func BenchmarkBlocks(b *testing.B) {
	run := func(b *testing.B, n int) {
		blocks := make([][]byte, n)
		for i := range blocks {
			blocks[i] = make([]byte, 64)
		}
		b.ReportAllocs()
		b.SetBytes(int64(64 * n))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = Hash(blocks...)
		}
	}

	for _, n := range []int{1, 4, 16, 64} {
		b.Run(fmt.Sprintf("%04d_block", n), func(b *testing.B) { run(b, n) })
	}
}
