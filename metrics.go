package crcgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    consumedBytes   prometheus.Counter
//	    consumeDuration prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordConsume(n int, duration time.Duration) {
//	    p.consumedBytes.Add(float64(n))
//	    p.consumeDuration.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordConsume is called after each consume operation.
	// n is the number of bytes folded, duration is the time taken.
	RecordConsume(n int, duration time.Duration)

	// RecordCalibrate is called after each calibration attempt.
	// winner is the selected strategy, err is nil if successful.
	RecordCalibrate(winner Strategy, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConsume(int, time.Duration)               {}
func (NoopMetricsCollector) RecordCalibrate(Strategy, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ConsumeCount      atomic.Int64
	ConsumedBytes     atomic.Int64
	ConsumeTotalNanos atomic.Int64
	CalibrateCount    atomic.Int64
	CalibrateErrors   atomic.Int64
	CalibrateLastWins atomic.Int64 // last winning Strategy value
}

// RecordConsume implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConsume(n int, duration time.Duration) {
	b.ConsumeCount.Add(1)
	b.ConsumedBytes.Add(int64(n))
	b.ConsumeTotalNanos.Add(duration.Nanoseconds())
}

// RecordCalibrate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCalibrate(winner Strategy, duration time.Duration, err error) {
	b.CalibrateCount.Add(1)
	if err != nil {
		b.CalibrateErrors.Add(1)
		return
	}
	b.CalibrateLastWins.Store(int64(winner))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ConsumeCount:    b.ConsumeCount.Load(),
		ConsumedBytes:   b.ConsumedBytes.Load(),
		ConsumeAvgNanos: b.getAvgConsumeNanos(),
		CalibrateCount:  b.CalibrateCount.Load(),
		CalibrateErrors: b.CalibrateErrors.Load(),
		LastCalibration: Strategy(b.CalibrateLastWins.Load()),
	}
}

func (b *BasicMetricsCollector) getAvgConsumeNanos() int64 {
	count := b.ConsumeCount.Load()
	if count == 0 {
		return 0
	}
	return b.ConsumeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ConsumeCount    int64
	ConsumedBytes   int64
	ConsumeAvgNanos int64
	CalibrateCount  int64
	CalibrateErrors int64
	LastCalibration Strategy
}
