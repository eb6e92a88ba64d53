package renderer

import (
	"testing"
	"time"
)

func TestStats_AddResult(t *testing.T) {
	opts := DefaultOptions()
	stats := newStats(opts, 3, 2)

	stats.addResult(TileResult{TaskID: 0, WorkerID: 0, Pixels: 100, Duration: 2 * time.Millisecond})
	stats.addResult(TileResult{TaskID: 1, WorkerID: 1, Pixels: 50, Duration: time.Millisecond})
	stats.addResult(TileResult{TaskID: 2, WorkerID: 0, Pixels: 50, Duration: time.Millisecond})

	if stats.Pixels != 200 {
		t.Errorf("Expected 200 pixels, got %d", stats.Pixels)
	}

	w0 := stats.WorkerStats[0]
	if w0.ID != 0 || w0.Tiles != 2 || w0.Pixels != 150 || w0.BusyTime != 3*time.Millisecond {
		t.Errorf("Unexpected stats for worker 0: %+v", w0)
	}

	tolerance := 1e-9
	if p := stats.FramePercent(0); p < 75-tolerance || p > 75+tolerance {
		t.Errorf("Expected worker 0 to render 75%% of the frame, got %f", p)
	}
	if p := stats.FramePercent(1); p < 25-tolerance || p > 25+tolerance {
		t.Errorf("Expected worker 1 to render 25%% of the frame, got %f", p)
	}
}

func TestStats_FramePercentEmpty(t *testing.T) {
	stats := newStats(DefaultOptions(), 0, 1)

	if p := stats.FramePercent(0); p != 0 {
		t.Errorf("Expected 0%% for an empty frame, got %f", p)
	}
}
