package app

import (
	"testing"
	"time"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()

	if s := m.Snapshot(); s.RenderCount != 0 || s.AvgRender != 0 || s.AvgEvent != 0 {
		t.Fatalf("fresh snapshot = %+v", s)
	}

	m.RecordRender(2 * time.Millisecond)
	m.RecordRender(4 * time.Millisecond)
	m.RecordEvent(time.Millisecond)
	m.RecordPanic()
	m.RecordReload()

	s := m.Snapshot()
	if s.RenderCount != 2 || s.AvgRender != 3*time.Millisecond || s.MaxRender != 4*time.Millisecond {
		t.Errorf("render stats = %d, %v, %v", s.RenderCount, s.AvgRender, s.MaxRender)
	}
	if s.EventCount != 1 || s.AvgEvent != time.Millisecond {
		t.Errorf("event stats = %d, %v", s.EventCount, s.AvgEvent)
	}
	if s.Panics != 1 || s.Reloads != 1 {
		t.Errorf("panics = %d, reloads = %d", s.Panics, s.Reloads)
	}
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	if timer.Elapsed() < 0 {
		t.Error("negative elapsed time")
	}
}
