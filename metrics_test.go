package sievego

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	mc.RecordSieve(1000, 2*time.Millisecond, nil)
	mc.RecordSieve(2000, 4*time.Millisecond, nil)
	mc.RecordSieve(3000, 0, errors.New("boom"))

	mc.RecordPrint(168, time.Millisecond, nil)
	mc.RecordPrint(0, 0, errors.New("broken pipe"))

	stats := mc.GetStats()
	assert.Equal(t, int64(3), stats.SieveCount)
	assert.Equal(t, int64(1), stats.SieveErrors)
	assert.Equal(t, int64(2*time.Millisecond), stats.SieveAvgNanos)
	assert.Equal(t, int64(2), stats.PrintCount)
	assert.Equal(t, int64(1), stats.PrintErrors)
	assert.Equal(t, int64(168), stats.PrintedPrimes)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordSieve(100, time.Second, nil)
	mc.RecordPrint(25, time.Second, nil)
}
