package renderer

import (
	"image"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/log"
)

var logger = log.New("renderer")

// Render traces one ray per pixel, row by row, and returns the filled image.
// Dimensions must be positive and bounces must not be negative.
func Render(spheres []geometry.Sphere, camera *Camera, width, height, bounces int) *core.Image {
	img := core.NewImage(width, height)
	progress := newProgress(width * height)

	tracer := NewTracer(spheres)
	for j := 0; j < height; j++ {
		pixels := renderBounds(tracer, camera, bounces, img, image.Rect(0, j, width, j+1))
		progress.add(pixels)
	}

	return img
}

// renderBounds traces every pixel inside bounds and returns how many it wrote
func renderBounds(tracer *Tracer, camera *Camera, bounces int, img *core.Image, bounds image.Rectangle) int {
	width, height := img.Width(), img.Height()

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ray := camera.ScreenRay(screenCoord(i, width), screenCoord(j, height))
			img.Set(i, j, tracer.Trace(ray, bounces))
		}
	}

	return bounds.Dx() * bounds.Dy()
}

// screenCoord maps a pixel index to [0, 1] so that the first and last pixels
// sit on the screen edges. A single pixel looks through the screen center.
func screenCoord(i, n int) float64 {
	if n == 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

// Renderer renders frames in parallel on a pool of workers. The output is
// identical to Render for the same scene and options.
type Renderer struct {
	tracer *Tracer
	camera *Camera
	opts   Options
	tiles  []*Tile
}

// NewRenderer validates the options and prepares the tile grid
func NewRenderer(spheres []geometry.Sphere, camera *Camera, opts Options) (*Renderer, error) {
	if camera == nil {
		return nil, ErrCameraNotDefined
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{
		tracer: NewTracer(spheres),
		camera: camera,
		opts:   opts,
		tiles:  NewTileGrid(opts.Width, opts.Height, opts.TileSize),
	}, nil
}

// Options returns the options the renderer was created with
func (r *Renderer) Options() Options {
	return r.opts
}

// Render renders a full frame and reports how the work was distributed
func (r *Renderer) Render() (*core.Image, Stats) {
	startTime := time.Now()
	img := core.NewImage(r.opts.Width, r.opts.Height)
	numWorkers := r.opts.numWorkers(len(r.tiles))

	logger.Infof("rendering %dx%d frame with %d bounces (%d tiles, %d workers)",
		r.opts.Width, r.opts.Height, r.opts.Bounces, len(r.tiles), numWorkers)

	pool := NewWorkerPool(r.tracer, r.camera, r.opts.Bounces, numWorkers, len(r.tiles))
	pool.Start()
	for taskID, tile := range r.tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Image: img})
	}

	stats := newStats(r.opts, len(r.tiles), numWorkers)
	progress := newProgress(r.opts.Width * r.opts.Height)
	for range r.tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		logger.Debugf("worker %d finished tile %d (%d pixels) in %s",
			result.WorkerID, result.TaskID, result.Pixels, result.Duration)
		stats.addResult(result)
		progress.add(result.Pixels)
	}
	pool.Stop()

	stats.RenderTime = time.Since(startTime)
	logger.Infof("rendered frame in %s", stats.RenderTime)

	return img, stats
}

// progress logs the completed percentage each time it changes
type progress struct {
	total   int
	done    int
	percent int
}

func newProgress(total int) *progress {
	return &progress{total: total}
}

func (p *progress) add(pixels int) {
	p.done += pixels
	if percent := p.done * 100 / p.total; percent != p.percent {
		p.percent = percent
		logger.Infof("%d%% done...", percent)
	}
}
