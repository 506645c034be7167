// Package crctab builds the 32x256 lookup tables that drive the
// word-parallel CRC kernels.
//
// Row 0 is the classic single-byte CRC table for the polynomial. Rows 1-31
// extend row 0 with precomputed shifts: entry [j][i] is the CRC of byte i
// followed by j zero bytes, starting from a zero register. That lets the
// kernels fold up to eight consecutive 32-bit input words through table
// lookups instead of chaining 8-bit steps, because the rows encode how far
// each byte still has to travel through the register.
//
// The reflected and forward recurrences are deliberately asymmetric:
// reflected CRCs fold bytes out of the low end of the register while
// forward CRCs fold out of the high end. Do not unify them.
package crctab

import "github.com/hupe1980/crcgo/internal/bitops"

// Rows is the number of precomputed shift levels. Eight 32-bit words per
// block means the oldest byte is 31 positions away from the newest.
const Rows = 32

// Table holds width-masked partial CRC values indexed by shift level and
// byte value. Immutable after New returns.
type Table [Rows][256]uint64

// New builds the lookup table for a width-bit CRC over the given
// polynomial. Width must be 16, 32 or 64 (validated by the caller).
// Entries are reflected when reflect is true.
func New(width uint, poly uint64, reflect bool) *Table {
	mask := ^uint64(0) >> (64 - width)
	poly &= mask

	t := new(Table)
	for i := 0; i < 256; i++ {
		t[0][i] = tableValue(byte(i), width, poly, reflect, mask)
	}

	if reflect {
		for i := 0; i < 256; i++ {
			for j := 1; j < Rows; j++ {
				prev := t[j-1][i]
				t[j][i] = prev>>8 ^ t[0][prev&0xFF]
			}
		}
		return t
	}

	shift := width - 8
	for i := 0; i < 256; i++ {
		for j := 1; j < Rows; j++ {
			prev := t[j-1][i]
			t[j][i] = prev<<8&mask ^ t[0][prev>>shift&0xFF]
		}
	}
	return t
}

// tableValue runs the 8-round bitwise CRC step for a single byte: the byte
// sits in the top 8 bits of the register and each round shifts left once,
// XORing the polynomial whenever the top bit falls out.
func tableValue(b byte, width uint, poly uint64, reflect bool, mask uint64) uint64 {
	if reflect {
		b = bitops.ReverseByte(b)
	}
	highBit := uint64(1) << (width - 1)
	v := uint64(b) << (width - 8)
	for i := 0; i < 8; i++ {
		if v&highBit != 0 {
			v = v<<1&mask ^ poly
		} else {
			v = v << 1 & mask
		}
	}
	if reflect {
		return bitops.Reverse(v, width)
	}
	return v
}
