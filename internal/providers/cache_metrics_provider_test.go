package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingMetrics struct {
	hits   int
	misses int
}

func (m *countingMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *countingMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *countingMetrics) IncCacheHits()                                    { m.hits++ }
func (m *countingMetrics) IncCacheMisses()                                  { m.misses++ }
func (m *countingMetrics) IncRefreshesTotal(_ bool)                         {}
func (m *countingMetrics) ObserveRefreshDuration(_ time.Duration)           {}
func (m *countingMetrics) SetChannelsMatched(_ int)                         {}
func (m *countingMetrics) SetProgramsMatched(_ int)                         {}

func TestInstrumentedCache_CountsHitsAndMisses(t *testing.T) {
	metrics := &countingMetrics{}
	c := NewInstrumentedCacheProvider(cacheConfig(true, 1, time.Minute), &cacheTestLogger{}, metrics)

	_, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, metrics.misses)

	c.Set("k", []byte("v"))
	_, ok = c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 1, metrics.hits)
}

func TestInstrumentedCache_DisabledSkipsWrapping(t *testing.T) {
	metrics := &countingMetrics{}
	c := NewInstrumentedCacheProvider(cacheConfig(false, 1, time.Minute), &cacheTestLogger{}, metrics)

	assert.IsType(t, &noopCache{}, c)

	_, _ = c.Get("anything")
	assert.Zero(t, metrics.misses, "disabled cache must not count phantom misses")
}

func TestInstrumentedCache_ClearPassesThrough(t *testing.T) {
	metrics := &countingMetrics{}
	c := NewInstrumentedCacheProvider(cacheConfig(true, 1, time.Minute), &cacheTestLogger{}, metrics)

	c.Set("k", []byte("v"))
	c.Clear()

	_, ok := c.Get("k")
	assert.False(t, ok)
}
