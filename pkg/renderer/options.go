package renderer

import (
	"fmt"
	"runtime"
)

// Options contains rendering configuration
type Options struct {
	Width    int // Frame width in pixels
	Height   int // Frame height in pixels
	Bounces  int // Maximum number of specular bounces per ray
	Workers  int // Number of parallel workers (0 = use CPU count)
	TileSize int // Edge length of the square tiles handed to workers
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Width:    800,
		Height:   600,
		Bounces:  3,
		Workers:  0,
		TileSize: 32,
	}
}

// Validate checks the options and returns the first problem found
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, o.Width, o.Height)
	}
	if o.Bounces < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBounces, o.Bounces)
	}
	if o.TileSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTileSize, o.TileSize)
	}
	return nil
}

// numWorkers resolves the worker count, never exceeding the number of tiles
func (o Options) numWorkers(numTiles int) int {
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return max(1, min(workers, numTiles))
}
