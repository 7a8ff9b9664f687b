package common

import (
	"sync"
	"sync/atomic"
)

// WorkerPool represents a pool of goroutines that run the same function over submitted jobs.
type WorkerPool[T any] struct {
	fn          func(T) error
	workerCount int
	workersWg   *sync.WaitGroup
	closed      *atomic.Bool

	jobsCount *atomic.Int32
	jobsMutex *sync.Mutex
	jobs      chan T
	errors    chan error
	done      chan struct{}
}

// NewWorkerPool creates a new WorkerPool with the specified number of workers.
func NewWorkerPool[T any](fn func(T) error, workerCount int) *WorkerPool[T] {
	return &WorkerPool[T]{
		fn:          fn,
		workerCount: max(workerCount, 1),
		workersWg:   &sync.WaitGroup{},
		closed:      &atomic.Bool{},
		jobsCount:   &atomic.Int32{},
		jobsMutex:   &sync.Mutex{},
		jobs:        make(chan T),
		errors:      make(chan error, 1),
		done:        make(chan struct{}, 1),
	}
}

// Start initializes the worker pool and starts processing jobs.
func (wp *WorkerPool[T]) Start() {
	for range wp.workerCount {
		wp.workersWg.Add(1)

		go func() {
			defer wp.workersWg.Done()

			for job := range wp.jobs {
				if wp.closed.Load() {
					break
				}

				if err := wp.fn(job); err != nil {
					wp.jobError(err)
				}

				wp.Done()
			}
		}()
	}
}

func (wp *WorkerPool[T]) jobError(err error) {
	select {
	case wp.errors <- err:
	default:
	}
}

// Add registers delta pending jobs. A producer goroutine holds one slot while it submits.
func (wp *WorkerPool[T]) Add(delta int32) {
	if wp.jobsCount.Add(delta) == delta {
		select {
		case <-wp.done:
		default:
		}
	}
}

func (wp *WorkerPool[T]) Done() {
	if wp.jobsCount.Add(-1) == 0 {
		select {
		case wp.done <- struct{}{}:
		default:
		}
	}
}

// Submit adds a new job to the pool.
func (wp *WorkerPool[T]) Submit(job T) {
	wp.Add(1)

	wp.jobsMutex.Lock()
	defer wp.jobsMutex.Unlock()

	if wp.closed.Load() {
		wp.Done()

		return
	}

	wp.jobs <- job
}

// WaitOrError waits for all jobs or the first error.
func (wp *WorkerPool[T]) WaitOrError() error {
	select {
	case err := <-wp.errors:
		return err
	case <-wp.done:
		return nil
	}
}

// Stop closes the job channel and waits for all workers to finish.
func (wp *WorkerPool[T]) Stop() {
	wp.jobsMutex.Lock()
	close(wp.jobs)
	wp.closed.Store(true)
	wp.jobsMutex.Unlock()

	wp.workersWg.Wait()
}
