package ref

import (
	"fmt"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func hex(s [8]uint64) (out string) {
	for _, w := range s {
		out += fmt.Sprintf("%016x", w)
	}
	return out
}

func TestHash(t *testing.T) {
	assert.Equal(t, Hash(nil), [8]uint64{})
	assert.Equal(t, hex(Hash([][]byte{[]byte("determinism_test_input_data")})), ""+
		"c453cf3a29036c846baf76c88e20e3b0d61dc956e315c02f725ae0d46905f3a8"+
		"486724dc56a7c1091633b8c152c952d8884371a8e1ad2b90d2b76c86ba81b3ce")
	assert.Equal(t, hex(Hash([][]byte{{}})), ""+
		"6c340fe05e84a4e42803a6309f246dc8cbb82382ce3d0e8493483a86ba82562d"+
		"72c55433651eb3dcd83188e9ba1c49a0c2fb2a76eaf69ad83c93773131daafab")
}

func TestGenerateSBox(t *testing.T) {
	for i := 0; i < 1e4; i++ {
		input := make([]byte, pcg.Uint32()%16)
		for j := range input {
			input[j] = byte(pcg.Uint32())
		}
		sbox := GenerateSBox(pcg.Uint64(), input)

		var seen [256]bool
		for _, v := range sbox {
			assert.That(t, !seen[v])
			seen[v] = true
		}
	}
}

func TestPad(t *testing.T) {
	for n := 0; n < 64; n++ {
		padded := Pad(make([]byte, n))
		assert.Equal(t, len(padded)%8, 0)
		assert.That(t, len(padded) > n)
		assert.Equal(t, padded[n], byte(0x80))
	}
}

func TestDiffuse(t *testing.T) {
	// every word reads the pre-step state, so a single set word spreads to
	// exactly its four readers in one step
	var s [8]uint64
	s[0] = 1
	Diffuse(&s, 0)

	for i, w := range s {
		switch i {
		case 0, 1, 7, 4, 5:
			assert.That(t, w != 0)
		default:
			assert.Equal(t, w, uint64(0))
		}
	}
}
