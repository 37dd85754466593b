package candiutils

import (
	"context"
	"sync"

	"github.com/golangid/weathertogo/candihelper"
	"github.com/golangid/weathertogo/logger"
)

// WorkerPool implementation
type WorkerPool[T any] interface {
	Dispatch(ctx context.Context, jobFunc func(context.Context, T))
	AddJob(job T)
	Finish()
}

type workerPool[T any] struct {
	maxWorker int
	wg        sync.WaitGroup
	jobChan   chan T
	closeOnce sync.Once
}

// NewWorkerPool create an instance of WorkerPool, AddJob block when queueSize pending jobs are waiting.
func NewWorkerPool[T any](maxWorker, queueSize int) WorkerPool[T] {
	if maxWorker <= 0 {
		maxWorker = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	wp := &workerPool[T]{
		maxWorker: maxWorker,
		jobChan:   make(chan T, queueSize),
	}

	return wp
}

func (wp *workerPool[T]) Dispatch(ctx context.Context, jobFunc func(context.Context, T)) {
	for i := 0; i < wp.maxWorker; i++ {
		go func(jobFunc func(context.Context, T)) {
			for job := range wp.jobChan {
				candihelper.TryCatch{
					Try: func() { jobFunc(ctx, job) },
					Catch: func(err error) {
						logger.LogEf("worker pool: job panic: %v", err)
					},
					Finally: wp.wg.Done,
				}.Do()
			}
		}(jobFunc)
	}
}

func (wp *workerPool[T]) AddJob(job T) {
	wp.wg.Add(1)
	wp.jobChan <- job
}

// Finish stop accepting job and wait all pending job done
func (wp *workerPool[T]) Finish() {
	wp.closeOnce.Do(func() { close(wp.jobChan) })
	wp.wg.Wait()
}
