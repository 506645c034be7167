package crcgo

import (
	"encoding/binary"

	"github.com/hupe1980/crcgo/internal/bitops"
)

// The word kernels reinterpret the input as little-endian 32-bit words and
// fold 1, 2, 4 or 8 of them per round through the higher table rows. The
// row of a byte is four times its word distance from the newest word, so
// every byte's lookup already accounts for how far it still travels
// through the register. The running register is XOR-combined into the
// first one or two words before lookup: directly in the reflected case,
// byte-swapped in the forward case so register byte order lines up with
// the incoming stream.
//
// The single-word kernels additionally carry the register residual
// (reg>>32 reflected, reg<<32 forward). The residual is zero for 16- and
// 32-bit CRCs but keeps 64-bit CRCs exact when only half of the register
// fits into the folded word.
//
// Tail bytes that do not fill a word block always go through the
// byte-wise step, so results are chunking-independent.

// consumeBytes is the byte-at-a-time path, also used for block tails.
func (c *Crc) consumeBytes(p []byte) {
	t := &c.table[0]
	reg := c.reg
	if c.reflectIn {
		for _, b := range p {
			reg = reg>>8 ^ t[(reg^uint64(b))&0xFF]
		}
	} else {
		shift, mask := c.shift, c.mask
		for _, b := range p {
			reg = reg<<8&mask ^ t[(reg>>shift^uint64(b))&0xFF]
		}
	}
	c.reg = reg
}

// consumeWords1 folds one 32-bit word per round.
func (c *Crc) consumeWords1(p []byte) {
	t := c.table
	reg := c.reg
	if c.reflectIn {
		for len(p) >= 4 {
			w := binary.LittleEndian.Uint32(p) ^ uint32(reg)
			reg = t[0][w>>24&0xFF] ^
				t[1][w>>16&0xFF] ^
				t[2][w>>8&0xFF] ^
				t[3][w&0xFF] ^
				reg>>32
			p = p[4:]
		}
	} else {
		width, mask := c.width, c.mask
		for len(p) >= 4 {
			w := binary.LittleEndian.Uint32(p) ^ uint32(bitops.SwapBytes(reg, width))
			reg = t[0][w>>24&0xFF] ^
				t[1][w>>16&0xFF] ^
				t[2][w>>8&0xFF] ^
				t[3][w&0xFF] ^
				reg<<32&mask
			p = p[4:]
		}
	}
	c.reg = reg
	c.consumeBytes(p)
}

// consumeWords2 folds two 32-bit words per round. The full register fits
// into the two words, so no residual term remains.
func (c *Crc) consumeWords2(p []byte) {
	t := c.table
	reg := c.reg
	if c.reflectIn {
		for len(p) >= 8 {
			w1 := binary.LittleEndian.Uint32(p) ^ uint32(reg)
			w2 := binary.LittleEndian.Uint32(p[4:]) ^ uint32(reg>>32)

			reg = t[0][w2>>24&0xFF] ^
				t[1][w2>>16&0xFF] ^
				t[2][w2>>8&0xFF] ^
				t[3][w2&0xFF] ^
				t[4][w1>>24&0xFF] ^
				t[5][w1>>16&0xFF] ^
				t[6][w1>>8&0xFF] ^
				t[7][w1&0xFF]
			p = p[8:]
		}
	} else {
		width := c.width
		for len(p) >= 8 {
			swapped := bitops.SwapBytes(reg, width)
			w1 := binary.LittleEndian.Uint32(p) ^ uint32(swapped)
			w2 := binary.LittleEndian.Uint32(p[4:]) ^ uint32(swapped>>32)

			reg = t[0][w2>>24&0xFF] ^
				t[1][w2>>16&0xFF] ^
				t[2][w2>>8&0xFF] ^
				t[3][w2&0xFF] ^
				t[4][w1>>24&0xFF] ^
				t[5][w1>>16&0xFF] ^
				t[6][w1>>8&0xFF] ^
				t[7][w1&0xFF]
			p = p[8:]
		}
	}
	c.reg = reg
	c.consumeBytes(p)
}

// consumeWords4 folds four 32-bit words per round.
func (c *Crc) consumeWords4(p []byte) {
	t := c.table
	reg := c.reg
	if c.reflectIn {
		for len(p) >= 16 {
			w1 := binary.LittleEndian.Uint32(p) ^ uint32(reg)
			w2 := binary.LittleEndian.Uint32(p[4:]) ^ uint32(reg>>32)
			w3 := binary.LittleEndian.Uint32(p[8:])
			w4 := binary.LittleEndian.Uint32(p[12:])

			reg = t[0][w4>>24&0xFF] ^
				t[1][w4>>16&0xFF] ^
				t[2][w4>>8&0xFF] ^
				t[3][w4&0xFF] ^
				t[4][w3>>24&0xFF] ^
				t[5][w3>>16&0xFF] ^
				t[6][w3>>8&0xFF] ^
				t[7][w3&0xFF]
			reg ^= t[8][w2>>24&0xFF] ^
				t[9][w2>>16&0xFF] ^
				t[10][w2>>8&0xFF] ^
				t[11][w2&0xFF] ^
				t[12][w1>>24&0xFF] ^
				t[13][w1>>16&0xFF] ^
				t[14][w1>>8&0xFF] ^
				t[15][w1&0xFF]
			p = p[16:]
		}
	} else {
		width := c.width
		for len(p) >= 16 {
			swapped := bitops.SwapBytes(reg, width)
			w1 := binary.LittleEndian.Uint32(p) ^ uint32(swapped)
			w2 := binary.LittleEndian.Uint32(p[4:]) ^ uint32(swapped>>32)
			w3 := binary.LittleEndian.Uint32(p[8:])
			w4 := binary.LittleEndian.Uint32(p[12:])

			reg = t[0][w4>>24&0xFF] ^
				t[1][w4>>16&0xFF] ^
				t[2][w4>>8&0xFF] ^
				t[3][w4&0xFF] ^
				t[4][w3>>24&0xFF] ^
				t[5][w3>>16&0xFF] ^
				t[6][w3>>8&0xFF] ^
				t[7][w3&0xFF]
			reg ^= t[8][w2>>24&0xFF] ^
				t[9][w2>>16&0xFF] ^
				t[10][w2>>8&0xFF] ^
				t[11][w2&0xFF] ^
				t[12][w1>>24&0xFF] ^
				t[13][w1>>16&0xFF] ^
				t[14][w1>>8&0xFF] ^
				t[15][w1&0xFF]
			p = p[16:]
		}
	}
	c.reg = reg
	c.consumeBytes(p)
}

// consumeWords8 folds eight 32-bit words per round, the deepest available
// interleave.
func (c *Crc) consumeWords8(p []byte) {
	t := c.table
	reg := c.reg
	if c.reflectIn {
		for len(p) >= 32 {
			w1 := binary.LittleEndian.Uint32(p) ^ uint32(reg)
			w2 := binary.LittleEndian.Uint32(p[4:]) ^ uint32(reg>>32)
			w3 := binary.LittleEndian.Uint32(p[8:])
			w4 := binary.LittleEndian.Uint32(p[12:])
			w5 := binary.LittleEndian.Uint32(p[16:])
			w6 := binary.LittleEndian.Uint32(p[20:])
			w7 := binary.LittleEndian.Uint32(p[24:])
			w8 := binary.LittleEndian.Uint32(p[28:])

			reg = t[0][w8>>24&0xFF] ^
				t[1][w8>>16&0xFF] ^
				t[2][w8>>8&0xFF] ^
				t[3][w8&0xFF] ^
				t[4][w7>>24&0xFF] ^
				t[5][w7>>16&0xFF] ^
				t[6][w7>>8&0xFF] ^
				t[7][w7&0xFF]
			reg ^= t[8][w6>>24&0xFF] ^
				t[9][w6>>16&0xFF] ^
				t[10][w6>>8&0xFF] ^
				t[11][w6&0xFF] ^
				t[12][w5>>24&0xFF] ^
				t[13][w5>>16&0xFF] ^
				t[14][w5>>8&0xFF] ^
				t[15][w5&0xFF]
			reg ^= t[16][w4>>24&0xFF] ^
				t[17][w4>>16&0xFF] ^
				t[18][w4>>8&0xFF] ^
				t[19][w4&0xFF] ^
				t[20][w3>>24&0xFF] ^
				t[21][w3>>16&0xFF] ^
				t[22][w3>>8&0xFF] ^
				t[23][w3&0xFF]
			reg ^= t[24][w2>>24&0xFF] ^
				t[25][w2>>16&0xFF] ^
				t[26][w2>>8&0xFF] ^
				t[27][w2&0xFF] ^
				t[28][w1>>24&0xFF] ^
				t[29][w1>>16&0xFF] ^
				t[30][w1>>8&0xFF] ^
				t[31][w1&0xFF]
			p = p[32:]
		}
	} else {
		width := c.width
		for len(p) >= 32 {
			swapped := bitops.SwapBytes(reg, width)
			w1 := binary.LittleEndian.Uint32(p) ^ uint32(swapped)
			w2 := binary.LittleEndian.Uint32(p[4:]) ^ uint32(swapped>>32)
			w3 := binary.LittleEndian.Uint32(p[8:])
			w4 := binary.LittleEndian.Uint32(p[12:])
			w5 := binary.LittleEndian.Uint32(p[16:])
			w6 := binary.LittleEndian.Uint32(p[20:])
			w7 := binary.LittleEndian.Uint32(p[24:])
			w8 := binary.LittleEndian.Uint32(p[28:])

			reg = t[0][w8>>24&0xFF] ^
				t[1][w8>>16&0xFF] ^
				t[2][w8>>8&0xFF] ^
				t[3][w8&0xFF] ^
				t[4][w7>>24&0xFF] ^
				t[5][w7>>16&0xFF] ^
				t[6][w7>>8&0xFF] ^
				t[7][w7&0xFF]
			reg ^= t[8][w6>>24&0xFF] ^
				t[9][w6>>16&0xFF] ^
				t[10][w6>>8&0xFF] ^
				t[11][w6&0xFF] ^
				t[12][w5>>24&0xFF] ^
				t[13][w5>>16&0xFF] ^
				t[14][w5>>8&0xFF] ^
				t[15][w5&0xFF]
			reg ^= t[16][w4>>24&0xFF] ^
				t[17][w4>>16&0xFF] ^
				t[18][w4>>8&0xFF] ^
				t[19][w4&0xFF] ^
				t[20][w3>>24&0xFF] ^
				t[21][w3>>16&0xFF] ^
				t[22][w3>>8&0xFF] ^
				t[23][w3&0xFF]
			reg ^= t[24][w2>>24&0xFF] ^
				t[25][w2>>16&0xFF] ^
				t[26][w2>>8&0xFF] ^
				t[27][w2&0xFF] ^
				t[28][w1>>24&0xFF] ^
				t[29][w1>>16&0xFF] ^
				t[30][w1>>8&0xFF] ^
				t[31][w1&0xFF]
			p = p[32:]
		}
	}
	c.reg = reg
	c.consumeBytes(p)
}
