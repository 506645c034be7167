package bitops

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name     string
		v        uint64
		n        uint
		expected uint64
	}{
		{"Nibble", 0b1101, 4, 0b1011},
		{"ByteAsymmetric", 0xF9, 8, 0x9F},
		{"ByteInWiderWord", 0x01, 8, 0x80},
		{"Width16", 0x8003, 16, 0xC001},
		{"Width32Poly", 0x04C11DB7, 32, 0xEDB88320},
		{"Width64Poly", 0x42F0E1EBA9EA3693, 64, 0xC96C5795D7870F42},
		{"Zero", 0, 64, 0},
		{"AllOnes", 0xFFFF, 16, 0xFFFF},
		{"SingleBit", 1, 64, 1 << 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reverse(tt.v, tt.n))
		})
	}
}

func TestReverseInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []uint{8, 16, 32, 64} {
		mask := ^uint64(0) >> (64 - n)
		for i := 0; i < 1000; i++ {
			v := rng.Uint64() & mask
			assert.Equal(t, v, Reverse(Reverse(v, n), n), "n=%d v=%#x", n, v)
		}
	}
}

func TestSwapBytes(t *testing.T) {
	tests := []struct {
		name     string
		v        uint64
		width    uint
		expected uint64
	}{
		{"Width8Identity", 0xAB, 8, 0xAB},
		{"Width16", 0x1234, 16, 0x3412},
		{"Width32", 0x12345678, 32, 0x78563412},
		{"Width64", 0x0102030405060708, 64, 0x0807060504030201},
		{"Width16HighBitsIgnored", 0xFFFF0000_0000ABCD, 16, 0xCDAB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SwapBytes(tt.v, tt.width))
		})
	}
}

func TestReverseByte(t *testing.T) {
	assert.Equal(t, byte(0x80), ReverseByte(0x01))
	assert.Equal(t, byte(0x9F), ReverseByte(0xF9))
	for b := 0; b < 256; b++ {
		assert.Equal(t, byte(b), ReverseByte(ReverseByte(byte(b))))
	}
}
