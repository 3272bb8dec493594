package consts

import (
	"golang.org/x/sys/cpu"
)

// IsLittleEndian reports whether words can be loaded straight out of a byte
// buffer without reordering.
var IsLittleEndian = !cpu.IsBigEndian

const Rounds = 24

var RoundConstants = [Rounds]uint64{
	0x243F6A8885A308D3, 0x13198A2E03707344, 0xA4093822299F31D0, 0x082EFA98EC4E6C89,
	0x452821E638D01377, 0xBE5466CF34E90C6C, 0xC0AC29B7C97C50DD, 0x3F84D5B5B5470917,
	0x9216D5D98979FB1B, 0xD1310BA698DFB5AC, 0x2FFD72DBD01ADFB7, 0xB8E1AFED6A267E96,
	0x9B05688C2B3E6C1F, 0x1F83D9ABFB41BD6B, 0x5BE0CD19137E2179, 0xCBBB9D5DC1059ED8,
	0x629A292A367CD507, 0x9159015A3070DD17, 0x152FECD8F70E5939, 0x67332667FFC00B31,
	0x8EB44A8768581511, 0xDB0C2E0D64F98FA7, 0x47B5481DBEFA4FA4, 0x0FC19DC68B8CD5B5,
}

const (
	Words    = 8
	WordLen  = 8
	Size     = Words * WordLen
	PadStart = 0x80
)

// linear congruential multipliers for the two s-box shuffle passes
const (
	LCGMul1 = 6364136223846793005
	LCGMul2 = 1442695040888963407
	LCGInc  = 1
)

const (
	MixMul1  = 0x94D049BB133111EB
	MixMul2  = 0xA24BAED4963EE407
	MixByte3 = 0xDEADBEEFDEADBEEF
	MixByte6 = 0xBADF00D1BADF00D1
	Golden   = 0x9E3779B97F4A7C15
)
