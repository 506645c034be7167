package crcgo

import (
	"encoding/binary"
	"time"

	"github.com/hupe1980/crcgo/internal/bitops"
	"github.com/hupe1980/crcgo/internal/crctab"
)

// Supported CRC widths in bits.
const (
	Width16 uint = 16
	Width32 uint = 32
	Width64 uint = 64
)

// Crc is a streaming CRC engine. It owns a lookup table derived from its
// parameters and a single width-sized register; feeding the same bytes in
// any chunking yields the same final value.
//
// A Crc is not safe for concurrent mutation. Independent engines may run
// in parallel over the same immutable input (see ConsumeParallel).
type Crc struct {
	width  uint
	shift  uint   // width - 8
	mask   uint64 // low width bits set
	reg    uint64 // running register, always masked
	seed   uint64 // register value after Reset
	xorOut uint64

	reflectIn  bool
	reflectOut bool
	strategy   Strategy

	table *crctab.Table

	logger  *Logger
	metrics MetricsCollector
	now     func() time.Time
}

// New creates an engine for a width-bit CRC with the given parameters.
// Width must be 16, 32 or 64. The lookup table is built once here;
// construction is the expensive step, consuming is cheap.
func New(width uint, params Params, optFns ...Option) (*Crc, error) {
	if width != Width16 && width != Width32 && width != Width64 {
		return nil, &ErrInvalidWidth{Width: width}
	}
	if !params.Strategy.valid() {
		return nil, &ErrInvalidStrategy{Strategy: params.Strategy}
	}

	o := applyOptions(optFns)

	mask := ^uint64(0) >> (64 - width)
	seed := params.Init & mask
	if params.ReflectInput {
		seed = bitops.Reverse(seed, width)
	}

	c := &Crc{
		width:      width,
		shift:      width - 8,
		mask:       mask,
		reg:        seed,
		seed:       seed,
		xorOut:     params.XorOut & mask,
		reflectIn:  params.ReflectInput,
		reflectOut: params.ReflectOutput,
		strategy:   params.Strategy,
		table:      crctab.New(width, params.Polynomial, params.ReflectInput),
		logger:     o.logger,
		metrics:    o.metrics,
		now:        o.now,
	}
	return c, nil
}

// NewCRC16 creates a CRC-16/ARC engine.
func NewCRC16(optFns ...Option) *Crc { return mustNew(Width16, CRC16(), optFns) }

// NewCRC16CCITT creates a CRC-16/CCITT-FALSE engine.
func NewCRC16CCITT(optFns ...Option) *Crc { return mustNew(Width16, CRC16CCITT(), optFns) }

// NewCRC32 creates an IEEE CRC-32 engine.
func NewCRC32(optFns ...Option) *Crc { return mustNew(Width32, CRC32(), optFns) }

// NewCRC64 creates a CRC-64/XZ engine.
func NewCRC64(optFns ...Option) *Crc { return mustNew(Width64, CRC64(), optFns) }

// NewCRC64ISO creates a CRC-64 engine with the ISO 3309 polynomial.
func NewCRC64ISO(optFns ...Option) *Crc { return mustNew(Width64, CRC64ISO(), optFns) }

// mustNew backs the preset constructors, whose width and parameters are
// valid by construction.
func mustNew(width uint, params Params, optFns []Option) *Crc {
	c, err := New(width, params, optFns...)
	if err != nil {
		panic(err)
	}
	return c
}

// Width returns the CRC width in bits (16, 32 or 64).
func (c *Crc) Width() uint {
	return c.width
}

// Strategy returns the active consumption strategy.
func (c *Crc) Strategy() Strategy {
	return c.strategy
}

// SetStrategy changes the active consumption strategy. The choice never
// affects computed values, only throughput.
func (c *Crc) SetStrategy(s Strategy) error {
	if !s.valid() {
		return &ErrInvalidStrategy{Strategy: s}
	}
	c.strategy = s
	return nil
}

// Consume folds p into the running register using the active strategy.
func (c *Crc) Consume(p []byte) {
	c.ConsumeWith(p, c.strategy)
}

// ConsumeWith folds p into the running register using the given strategy
// for this call only. Unknown strategies fall back to ByteWise; the
// computed value is the same either way.
func (c *Crc) ConsumeWith(p []byte, s Strategy) {
	if c.metrics == nil {
		c.consume(p, s)
		return
	}
	start := c.now()
	c.consume(p, s)
	c.metrics.RecordConsume(len(p), c.now().Sub(start))
}

func (c *Crc) consume(p []byte, s Strategy) {
	switch s {
	case Interleave8:
		c.consumeWords8(p)
	case Interleave4:
		c.consumeWords4(p)
	case Interleave2:
		c.consumeWords2(p)
	case Interleave1:
		c.consumeWords1(p)
	default:
		c.consumeBytes(p)
	}
}

// Write implements io.Writer so an engine composes with io.Copy and
// io.MultiWriter. It never fails.
func (c *Crc) Write(p []byte) (int, error) {
	c.Consume(p)
	return len(p), nil
}

// Sum64 returns the finalized checksum in the low width bits. The register
// is not modified; consuming may continue afterwards.
func (c *Crc) Sum64() uint64 {
	if c.reflectOut != c.reflectIn {
		return bitops.Reverse(c.reg, c.width) ^ c.xorOut
	}
	return c.reg ^ c.xorOut
}

// Sum appends the finalized checksum in big-endian order to b and returns
// the resulting slice.
func (c *Crc) Sum(b []byte) []byte {
	v := c.Sum64()
	switch c.width {
	case Width16:
		return binary.BigEndian.AppendUint16(b, uint16(v))
	case Width32:
		return binary.BigEndian.AppendUint32(b, uint32(v))
	default:
		return binary.BigEndian.AppendUint64(b, v)
	}
}

// Size returns the checksum length in bytes, following hash.Hash.
func (c *Crc) Size() int {
	return int(c.width / 8)
}

// Reset restores the register to its seed value. The lookup table is kept.
func (c *Crc) Reset() {
	c.reg = c.seed
}

// Checksum computes the one-shot CRC of data for the given width and
// parameters.
func Checksum(data []byte, width uint, params Params, optFns ...Option) (uint64, error) {
	c, err := New(width, params, optFns...)
	if err != nil {
		return 0, err
	}
	c.Consume(data)
	return c.Sum64(), nil
}
