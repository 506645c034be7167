package crcgo

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Strategy selects how Consume folds input into the register: one byte at
// a time, or 1/2/4/8 consecutive 32-bit words per table-lookup round. All
// strategies produce identical checksums; they differ only in speed.
type Strategy uint8

const (
	// ByteWise processes one byte per table lookup.
	ByteWise Strategy = iota
	// Interleave1 folds one 32-bit word per round.
	Interleave1
	// Interleave2 folds two 32-bit words per round.
	Interleave2
	// Interleave4 folds four 32-bit words per round.
	Interleave4
	// Interleave8 folds eight 32-bit words per round.
	Interleave8
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case ByteWise:
		return "bytewise"
	case Interleave1:
		return "interleave1"
	case Interleave2:
		return "interleave2"
	case Interleave4:
		return "interleave4"
	case Interleave8:
		return "interleave8"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// ParseStrategy parses a string into a Strategy value.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bytewise":
		return ByteWise, true
	case "interleave1":
		return Interleave1, true
	case "interleave2":
		return Interleave2, true
	case "interleave4":
		return Interleave4, true
	case "interleave8":
		return Interleave8, true
	default:
		return ByteWise, false
	}
}

// valid reports whether s names one of the five consumption strategies.
func (s Strategy) valid() bool {
	return s <= Interleave8
}

// defaultStrategy is the pre-calibration default. Overridden at init time
// on CPUs where wider interleaving is known to pay off (see
// default_amd64.go); Calibrate replaces it with a measured choice.
var defaultStrategy = Interleave4

// DefaultStrategy returns the strategy engines start with before
// calibration on this machine.
func DefaultStrategy() Strategy {
	return defaultStrategy
}

// Params describes a CRC variant: the generator polynomial, the register
// seed, the final XOR and the two reflection flags. Values are truncated
// to the engine width at construction. The zero Strategy is ByteWise;
// presets fill in DefaultStrategy.
//
// Params is a value type; engines copy it and never mutate it.
type Params struct {
	// Polynomial is the generator polynomial in normal (MSB-first) form.
	Polynomial uint64
	// Init seeds the running register.
	Init uint64
	// XorOut is XORed into the finalized value.
	XorOut uint64
	// ReflectInput processes each input byte least-significant bit first.
	ReflectInput bool
	// ReflectOutput reverses the register bits before the final XOR.
	ReflectOutput bool
	// Strategy is the preferred consumption strategy.
	Strategy Strategy
}

// CRC16 returns the parameters of CRC-16/ARC (poly 0x8005, reflected).
// Check value for "123456789" is 0xBB3D.
func CRC16() Params {
	return Params{
		Polynomial:    0x8005,
		ReflectInput:  true,
		ReflectOutput: true,
		Strategy:      defaultStrategy,
	}
}

// CRC16CCITT returns the parameters of CRC-16/CCITT-FALSE (poly 0x1021,
// init 0xFFFF, not reflected). Check value for "123456789" is 0x29B1.
func CRC16CCITT() Params {
	return Params{
		Polynomial: 0x1021,
		Init:       0xFFFF,
		Strategy:   defaultStrategy,
	}
}

// CRC32 returns the parameters of the IEEE 802.3 CRC-32 used by gzip, zip
// and png (poly 0x04C11DB7, reflected, init and xorout all-ones). Check
// value for "123456789" is 0xCBF43926.
func CRC32() Params {
	return Params{
		Polynomial:    0x04C11DB7,
		Init:          0xFFFFFFFF,
		XorOut:        0xFFFFFFFF,
		ReflectInput:  true,
		ReflectOutput: true,
		Strategy:      defaultStrategy,
	}
}

// CRC64 returns the parameters of CRC-64/XZ (poly 0x42F0E1EBA9EA3693,
// reflected, init and xorout all-ones). Check value for "123456789" is
// 0x995DC9BBDF1939FA.
func CRC64() Params {
	return Params{
		Polynomial:    0x42F0E1EBA9EA3693,
		Init:          0xFFFFFFFFFFFFFFFF,
		XorOut:        0xFFFFFFFFFFFFFFFF,
		ReflectInput:  true,
		ReflectOutput: true,
		Strategy:      defaultStrategy,
	}
}

// CRC64ISO returns the parameters of the ISO 3309 CRC-64 variant with a
// zero seed and no output XOR (poly 0x1B, reflected).
func CRC64ISO() Params {
	return Params{
		Polynomial:    0x1B,
		ReflectInput:  true,
		ReflectOutput: true,
		Strategy:      defaultStrategy,
	}
}

type options struct {
	logger  *Logger
	metrics MetricsCollector
	now     func() time.Time
}

// Option configures engine construction behavior. Checksum semantics live
// in Params; options only cover logging, metrics and the clock.
type Option func(*options)

// WithLogger configures structured logging for calibration diagnostics.
//
// Example with JSON logging:
//
//	logger := crcgo.NewJSONLogger(slog.LevelDebug)
//	c, _ := crcgo.New(32, crcgo.CRC32(), crcgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for consume and
// calibrate operations. Metrics are disabled when unset: Consume is a hot
// path and skips timing entirely without a collector.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

// WithClock overrides the wall clock used by Calibrate and metrics
// collection. Calibration is the only time-dependent code path; injecting
// a fake clock makes its control flow deterministic in tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
		now:    time.Now,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
