package crcgo

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceExhausted is returned when Calibrate cannot obtain its
	// scratch buffer. The engine's strategy and register are left
	// unchanged; callers keep computing with the previously configured
	// strategy.
	ErrResourceExhausted = errors.New("calibration scratch buffer unavailable")
)

// ErrInvalidWidth indicates a CRC width other than 16, 32 or 64 bits.
type ErrInvalidWidth struct {
	Width uint
}

func (e *ErrInvalidWidth) Error() string {
	return fmt.Sprintf("invalid CRC width: %d (must be 16, 32 or 64)", e.Width)
}

// ErrInvalidStrategy indicates a consumption strategy outside the five
// defined values.
type ErrInvalidStrategy struct {
	Strategy Strategy
}

func (e *ErrInvalidStrategy) Error() string {
	return fmt.Sprintf("invalid consumption strategy: %s", e.Strategy)
}
