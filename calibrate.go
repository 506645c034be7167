package crcgo

import (
	"fmt"
	"time"
)

// Calibration defaults, matching the classic 128 passes over an 8 KiB - 1
// scratch buffer.
const (
	DefaultCalibrateBufferSize = 8*1024 - 1
	DefaultCalibrateRepeats    = 128
)

// CalibrateOptions controls the synthetic workload Calibrate measures.
type CalibrateOptions struct {
	// BufferSize is the scratch buffer size in bytes.
	BufferSize uint64
	// Repeats is the number of passes over the buffer per strategy.
	Repeats int
}

// calibrationOrder is the fixed measurement order. ByteWise goes last so
// the word strategies win ties on its slower, more predictable baseline.
var calibrationOrder = [...]Strategy{
	Interleave1,
	Interleave2,
	Interleave4,
	Interleave8,
	ByteWise,
}

// Calibrate times every consumption strategy against a synthetic buffer
// and makes the fastest one the engine's active strategy. The choice is
// machine-dependent and affects throughput only, never computed values.
//
// The register is restored afterwards, so calibration may run before,
// between or after Consume calls without disturbing an in-progress
// checksum. On failure to obtain the scratch buffer it returns
// ErrResourceExhausted and leaves both strategy and register untouched.
//
// Example:
//
//	winner, err := c.Calibrate(func(o *crcgo.CalibrateOptions) {
//	    o.BufferSize = 64 * 1024
//	    o.Repeats = 32
//	})
func (c *Crc) Calibrate(optFns ...func(*CalibrateOptions)) (Strategy, error) {
	o := CalibrateOptions{
		BufferSize: DefaultCalibrateBufferSize,
		Repeats:    DefaultCalibrateRepeats,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	started := c.now()

	buf, err := scratchBuffer(o.BufferSize)
	if err != nil {
		c.logger.LogCalibrationResult(c.strategy, 0, err)
		if c.metrics != nil {
			c.metrics.RecordCalibrate(c.strategy, c.now().Sub(started), err)
		}
		return c.strategy, err
	}

	saved := c.reg
	best := c.strategy
	bestElapsed := time.Duration(1<<63 - 1)

	for _, s := range calibrationOrder {
		start := c.now()
		for i := 0; i < o.Repeats; i++ {
			c.consume(buf, s)
		}
		elapsed := c.now().Sub(start)
		c.logger.LogCalibrationPass(s, elapsed)
		if elapsed < bestElapsed {
			bestElapsed = elapsed
			best = s
		}
	}

	// Measurement runs must not leak into the real checksum.
	c.reg = saved
	c.strategy = best

	total := c.now().Sub(started)
	c.logger.LogCalibrationResult(best, total, nil)
	if c.metrics != nil {
		c.metrics.RecordCalibrate(best, total, nil)
	}
	return best, nil
}

// scratchBuffer allocates the calibration workload buffer, converting
// allocation panics on absurd sizes into ErrResourceExhausted.
func scratchBuffer(size uint64) (buf []byte, err error) {
	if size == 0 {
		return nil, fmt.Errorf("%w: buffer size must be positive", ErrResourceExhausted)
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: allocating %d bytes: %v", ErrResourceExhausted, size, r)
		}
	}()
	return make([]byte, size), nil
}
