package kmeans

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	m.RecordFit(3, 100, 4, true, 10*time.Millisecond, nil)
	m.RecordFit(3, 50, 9, false, 30*time.Millisecond, nil)
	m.RecordFit(0, 50, 0, false, 2*time.Millisecond, errors.New("bad k"))
	m.RecordRound(1, 20, time.Millisecond)
	m.RecordRound(2, 0, 3*time.Millisecond)

	stats := m.GetStats()
	assert.Equal(t, int64(3), stats.FitCount)
	assert.Equal(t, int64(1), stats.FitErrors)
	assert.Equal(t, int64(1), stats.FitNotConverged)
	assert.Equal(t, int64(150), stats.PointsClustered)
	assert.Equal(t, (14 * time.Millisecond).Nanoseconds(), stats.FitAvgNanos)
	assert.Equal(t, int64(2), stats.RoundCount)
	assert.Equal(t, int64(20), stats.PointsMoved)
	assert.Equal(t, (2 * time.Millisecond).Nanoseconds(), stats.RoundAvgNanos)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	var m BasicMetricsCollector
	assert.Equal(t, BasicMetricsStats{}, m.GetStats())
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordFit(1, 1, 1, true, time.Second, nil)
	mc.RecordRound(1, 1, time.Second)
}
