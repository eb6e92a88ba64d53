package renderer

import (
	"sync"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int         // For deterministic ordering
	Image  *core.Image // Shared frame; tiles never overlap
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID   int
	WorkerID int
	Pixels   int
	Duration time.Duration
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	tracer      *Tracer
	camera      *Camera
	bounces     int
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool whose queues can hold maxTasks tiles
func NewWorkerPool(tracer *Tracer, camera *Camera, bounces, numWorkers, maxTasks int) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			tracer:      tracer,
			camera:      camera,
			bounces:     bounces,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		start := time.Now()
		pixels := renderBounds(w.tracer, w.camera, w.bounces, task.Image, task.Tile.Bounds)

		w.resultQueue <- TileResult{
			TaskID:   task.TaskID,
			WorkerID: w.ID,
			Pixels:   pixels,
			Duration: time.Since(start),
		}
	}
}
