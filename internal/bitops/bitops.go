// Package bitops provides the bit-reversal and byte-order primitives the
// CRC table builder and consume kernels are built on. All functions are
// pure and allocation-free.
package bitops

import "math/bits"

// Reverse reverses the low n bits of v. Bits above n are zero in the
// result. n must be in [1, 64].
//
//	Reverse(0b1101, 4)  == 0b1011
//	Reverse(0xF9, 8)    == 0x9F
func Reverse(v uint64, n uint) uint64 {
	return bits.Reverse64(v) >> (64 - n)
}

// SwapBytes reverses the byte order of a width-bit integer held in the low
// bits of v. Width must be 8, 16, 32 or 64; width 8 is the identity.
func SwapBytes(v uint64, width uint) uint64 {
	switch width {
	case 8:
		return v
	case 16:
		return uint64(bits.ReverseBytes16(uint16(v)))
	case 32:
		return uint64(bits.ReverseBytes32(uint32(v)))
	default:
		return bits.ReverseBytes64(v)
	}
}

// ReverseByte reverses the bits of a single byte.
func ReverseByte(b byte) byte {
	return bits.Reverse8(b)
}
