package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks event handling and render timing of the event loop.
type Metrics struct {
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64
	renderMaxNs   atomic.Int64

	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64
	panics       atomic.Uint64

	reloads atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordRender records the time taken to compose and show one frame.
func (m *Metrics) RecordRender(d time.Duration) {
	ns := d.Nanoseconds()
	m.renderCount.Add(1)
	m.renderTotalNs.Add(ns)
	for {
		old := m.renderMaxNs.Load()
		if ns <= old || m.renderMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent records the time taken to handle one input event.
func (m *Metrics) RecordEvent(d time.Duration) {
	m.eventCount.Add(1)
	m.eventTotalNs.Add(d.Nanoseconds())
}

// RecordPanic counts an event handler panic that was recovered.
func (m *Metrics) RecordPanic() {
	m.panics.Add(1)
}

// RecordReload counts a lesson reload.
func (m *Metrics) RecordReload() {
	m.reloads.Add(1)
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime      time.Duration
	RenderCount uint64
	AvgRender   time.Duration
	MaxRender   time.Duration
	EventCount  uint64
	AvgEvent    time.Duration
	Panics      uint64
	Reloads     uint64
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Uptime:      time.Since(m.startTime),
		RenderCount: m.renderCount.Load(),
		MaxRender:   time.Duration(m.renderMaxNs.Load()),
		EventCount:  m.eventCount.Load(),
		Panics:      m.panics.Load(),
		Reloads:     m.reloads.Load(),
	}
	if s.RenderCount > 0 {
		s.AvgRender = time.Duration(m.renderTotalNs.Load() / int64(s.RenderCount))
	}
	if s.EventCount > 0 {
		s.AvgEvent = time.Duration(m.eventTotalNs.Load() / int64(s.EventCount))
	}
	return s
}

// Timer measures elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() Timer {
	return Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
