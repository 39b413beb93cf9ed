package contact

import (
	"testing"
	"time"
)

func TestStatsSnapshotPercentiles(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record(100, false)
	stats.Record(200, false)
	stats.Record(300, true)
	stats.Record(400, false)
	stats.Record(500, false)

	snap := stats.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.Failures != 1 {
		t.Fatalf("expected failures=1, got %d", snap.Failures)
	}
	if snap.MinMs != 100 || snap.MaxMs != 500 {
		t.Fatalf("expected min/max 100/500, got %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Fatalf("expected p95=480, got %f", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Fatalf("expected p99=496, got %f", snap.P99Ms)
	}
}

func TestStatsPrunesExpiredSamples(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	stats := NewStats(time.Minute)
	stats.now = func() time.Time { return now }

	stats.Record(100, true)
	now = now.Add(2 * time.Minute)
	stats.Record(50, false)

	snap := stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected expired sample to be pruned, got count=%d", snap.Count)
	}
	if snap.Failures != 0 {
		t.Fatalf("expected failures=0 after pruning, got %d", snap.Failures)
	}
}

func TestStatsEmpty(t *testing.T) {
	snap := NewStats(0).Snapshot()
	if snap.Count != 0 || snap.P99Ms != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}
