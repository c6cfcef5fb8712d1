package kmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFit is called once per clustering run, including failed ones.
	// iterations counts recalculate/assign rounds after the initial assignment.
	RecordFit(k, points, iterations int, converged bool, duration time.Duration, err error)

	// RecordRound is called after every recalculate/assign round.
	// moved is the number of points that changed cluster in that round.
	RecordRound(iteration, moved int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, int, int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordRound(int, int, time.Duration)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use by multiple runs.
type BasicMetricsCollector struct {
	FitCount        atomic.Int64
	FitErrors       atomic.Int64
	FitNotConverged atomic.Int64
	FitTotalNanos   atomic.Int64
	PointsClustered atomic.Int64
	RoundCount      atomic.Int64
	RoundTotalNanos atomic.Int64
	PointsMoved     atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(k, points, iterations int, converged bool, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
		return
	}
	b.PointsClustered.Add(int64(points))
	if !converged {
		b.FitNotConverged.Add(1)
	}
}

// RecordRound implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRound(iteration, moved int, duration time.Duration) {
	b.RoundCount.Add(1)
	b.RoundTotalNanos.Add(duration.Nanoseconds())
	b.PointsMoved.Add(int64(moved))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:        b.FitCount.Load(),
		FitErrors:       b.FitErrors.Load(),
		FitNotConverged: b.FitNotConverged.Load(),
		FitAvgNanos:     avg(b.FitTotalNanos.Load(), b.FitCount.Load()),
		PointsClustered: b.PointsClustered.Load(),
		RoundCount:      b.RoundCount.Load(),
		RoundAvgNanos:   avg(b.RoundTotalNanos.Load(), b.RoundCount.Load()),
		PointsMoved:     b.PointsMoved.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount        int64
	FitErrors       int64
	FitNotConverged int64
	FitAvgNanos     int64
	PointsClustered int64
	RoundCount      int64
	RoundAvgNanos   int64
	PointsMoved     int64
}
