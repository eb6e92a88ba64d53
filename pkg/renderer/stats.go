package renderer

import "time"

// WorkerStat describes the share of a frame rendered by one worker
type WorkerStat struct {
	ID       int
	Tiles    int
	Pixels   int
	BusyTime time.Duration // Sum of tile render times
}

// Stats contains statistics about a rendered frame
type Stats struct {
	Width       int
	Height      int
	Pixels      int // Total number of pixels rendered
	Tiles       int
	Workers     int
	Bounces     int
	RenderTime  time.Duration // Wall-clock time for the whole frame
	WorkerStats []WorkerStat
}

func newStats(opts Options, numTiles, numWorkers int) Stats {
	workerStats := make([]WorkerStat, numWorkers)
	for i := range workerStats {
		workerStats[i].ID = i
	}

	return Stats{
		Width:       opts.Width,
		Height:      opts.Height,
		Tiles:       numTiles,
		Workers:     numWorkers,
		Bounces:     opts.Bounces,
		WorkerStats: workerStats,
	}
}

func (s *Stats) addResult(result TileResult) {
	s.Pixels += result.Pixels

	ws := &s.WorkerStats[result.WorkerID]
	ws.Tiles++
	ws.Pixels += result.Pixels
	ws.BusyTime += result.Duration
}

// FramePercent returns the share of the frame's pixels rendered by a worker
func (s Stats) FramePercent(workerID int) float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.WorkerStats[workerID].Pixels) * 100 / float64(s.Pixels)
}
