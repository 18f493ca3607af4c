package renderer

import (
	"context"
	"sync"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// BandTask represents a band rendering task for the worker pool
type BandTask struct {
	Ctx  context.Context
	Band Band
	Seed int64 // Seed for the band's own random sampler
}

// BandResult contains the result from rendering a band
type BandResult struct {
	Band     Band
	WorkerID int
	Pixels   []uint8 // Packed RGB rows of the band
	Duration time.Duration
	Error    error
}

// WorkerPool manages parallel band rendering
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual band rendering tasks
type Worker struct {
	ID          int
	renderer    *BandRenderer
	taskQueue   chan BandTask
	resultQueue chan BandResult
}

// NewWorkerPool creates a worker pool with numWorkers workers sharing one band renderer.
// queueSize bounds the number of tasks and results buffered at once.
func NewWorkerPool(renderer *BandRenderer, numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, queueSize),
		resultQueue: make(chan BandResult, queueSize),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
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

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (BandResult, bool) {
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
		result := BandResult{Band: task.Band, WorkerID: w.ID}

		// Skip remaining work once the render is cancelled
		if err := task.Ctx.Err(); err != nil {
			result.Error = err
			w.resultQueue <- result
			continue
		}

		start := time.Now()
		sampler := core.NewSeededSampler(task.Seed)
		result.Pixels = w.renderer.RenderBand(task.Band, sampler)
		result.Duration = time.Since(start)

		w.resultQueue <- result
	}
}
