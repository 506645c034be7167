package crcgo

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock returns a clock whose consecutive readings are spaced by the
// given durations: reading i+1 is reading i plus steps[i] (the last step
// repeats). Calibrate reads the clock once up front, twice per strategy,
// and once at the end.
func fakeClock(steps ...time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	i := 0
	return func() time.Time {
		now := t
		step := steps[len(steps)-1]
		if i < len(steps) {
			step = steps[i]
		}
		t = t.Add(step)
		i++
		return now
	}
}

// calibrationSteps builds the clock step sequence that makes each strategy
// in calibration order appear to take the given duration.
func calibrationSteps(perStrategy ...time.Duration) []time.Duration {
	steps := []time.Duration{0} // started -> first pass start
	for _, d := range perStrategy {
		steps = append(steps, d, 0)
	}
	return steps
}

func TestCalibrateSelectsFastestStrategy(t *testing.T) {
	tests := []struct {
		name   string
		timing []time.Duration // per calibrationOrder: I1, I2, I4, I8, ByteWise
		want   Strategy
	}{
		{"Interleave4Wins", []time.Duration{50, 40, 10, 30, 90}, Interleave4},
		{"Interleave1Wins", []time.Duration{5, 40, 10, 30, 90}, Interleave1},
		{"ByteWiseWins", []time.Duration{50, 40, 10, 30, 1}, ByteWise},
		{"FirstWinsTies", []time.Duration{10, 10, 10, 10, 10}, Interleave1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCRC32(WithClock(fakeClock(calibrationSteps(tt.timing...)...)))
			winner, err := c.Calibrate(func(o *CalibrateOptions) {
				o.BufferSize = 64
				o.Repeats = 1
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, winner)
			assert.Equal(t, tt.want, c.Strategy())
		})
	}
}

// TestCalibrateDoesNotDisturbChecksum: calibration in any position
// relative to Consume calls never changes the mathematical result.
func TestCalibrateDoesNotDisturbChecksum(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	a := make([]byte, 1500)
	b := make([]byte, 700)
	rng.Read(a)
	rng.Read(b)

	for _, tc := range presetCases {
		t.Run(tc.name, func(t *testing.T) {
			plain, err := New(tc.width, tc.params)
			require.NoError(t, err)
			plain.Consume(a)
			plain.Consume(b)
			want := plain.Sum64()

			calibrated, err := New(tc.width, tc.params)
			require.NoError(t, err)
			_, err = calibrated.Calibrate(smallCalibration)
			require.NoError(t, err)
			calibrated.Consume(a)
			_, err = calibrated.Calibrate(smallCalibration)
			require.NoError(t, err)
			calibrated.Consume(b)
			_, err = calibrated.Calibrate(smallCalibration)
			require.NoError(t, err)
			assert.Equal(t, want, calibrated.Sum64())
		})
	}
}

func smallCalibration(o *CalibrateOptions) {
	o.BufferSize = 256
	o.Repeats = 2
}

func TestCalibrateReturnsValidStrategy(t *testing.T) {
	c := NewCRC64()
	winner, err := c.Calibrate(smallCalibration)
	require.NoError(t, err)
	assert.Contains(t, allStrategies, winner)
	assert.Equal(t, winner, c.Strategy())
}

func TestCalibrateScratchBufferFailure(t *testing.T) {
	t.Run("ZeroSize", func(t *testing.T) {
		c := NewCRC32()
		c.Consume([]byte("partial state"))
		before := c.Sum64()
		strategy := c.Strategy()

		_, err := c.Calibrate(func(o *CalibrateOptions) { o.BufferSize = 0 })
		require.ErrorIs(t, err, ErrResourceExhausted)
		assert.Equal(t, strategy, c.Strategy(), "strategy must be unchanged on failure")
		assert.Equal(t, before, c.Sum64(), "register must be unchanged on failure")
	})

	t.Run("AbsurdSize", func(t *testing.T) {
		c := NewCRC32()
		_, err := c.Calibrate(func(o *CalibrateOptions) { o.BufferSize = 1 << 62 })
		require.ErrorIs(t, err, ErrResourceExhausted)
		assert.Equal(t, DefaultStrategy(), c.Strategy())
	})
}

func TestCalibrateRepeatedly(t *testing.T) {
	c := NewCRC16()
	for i := 0; i < 3; i++ {
		winner, err := c.Calibrate(smallCalibration)
		require.NoError(t, err)
		require.Contains(t, allStrategies, winner)
	}
	c.Consume([]byte("123456789"))
	assert.Equal(t, uint64(0xBB3D), c.Sum64())
}
