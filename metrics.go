package attrib

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    setCounter     prometheus.Counter
//	    replaceCounter prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordSet(replaced bool, err error) {
//	    p.setCounter.Inc()
//	    // ... record replacement, error state, etc.
//	}
type MetricsCollector interface {
	// RecordSet is called after each Set, ArraySet and typed setter.
	// replaced is true when an existing entry was overwritten, err is nil if successful.
	RecordSet(replaced bool, err error)

	// RecordUnset is called after each Unset. found is false for absent names.
	RecordUnset(found bool)

	// RecordGet is called after each lookup by name or index.
	RecordGet(hit bool)

	// RecordRemoveAll is called after each RemoveAll with the number of released entries.
	RecordRemoveAll(removed int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSet(bool, error) {}
func (NoopMetricsCollector) RecordUnset(bool)      {}
func (NoopMetricsCollector) RecordGet(bool)        {}
func (NoopMetricsCollector) RecordRemoveAll(int)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SetCount      atomic.Int64
	SetErrors     atomic.Int64
	ReplaceCount  atomic.Int64
	UnsetCount    atomic.Int64
	UnsetMisses   atomic.Int64
	GetCount      atomic.Int64
	GetMisses     atomic.Int64
	RemoveAllRuns atomic.Int64
	RemovedTotal  atomic.Int64
}

// RecordSet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSet(replaced bool, err error) {
	b.SetCount.Add(1)
	if err != nil {
		b.SetErrors.Add(1)
		return
	}
	if replaced {
		b.ReplaceCount.Add(1)
	}
}

// RecordUnset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUnset(found bool) {
	b.UnsetCount.Add(1)
	if !found {
		b.UnsetMisses.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(hit bool) {
	b.GetCount.Add(1)
	if !hit {
		b.GetMisses.Add(1)
	}
}

// RecordRemoveAll implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemoveAll(removed int) {
	b.RemoveAllRuns.Add(1)
	b.RemovedTotal.Add(int64(removed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SetCount:      b.SetCount.Load(),
		SetErrors:     b.SetErrors.Load(),
		ReplaceCount:  b.ReplaceCount.Load(),
		UnsetCount:    b.UnsetCount.Load(),
		UnsetMisses:   b.UnsetMisses.Load(),
		GetCount:      b.GetCount.Load(),
		GetMisses:     b.GetMisses.Load(),
		GetHitRate:    b.getHitRate(),
		RemoveAllRuns: b.RemoveAllRuns.Load(),
		RemovedTotal:  b.RemovedTotal.Load(),
	}
}

func (b *BasicMetricsCollector) getHitRate() float64 {
	count := b.GetCount.Load()
	if count == 0 {
		return 0
	}
	return float64(count-b.GetMisses.Load()) / float64(count)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SetCount      int64
	SetErrors     int64
	ReplaceCount  int64
	UnsetCount    int64
	UnsetMisses   int64
	GetCount      int64
	GetMisses     int64
	GetHitRate    float64
	RemoveAllRuns int64
	RemovedTotal  int64
}
