package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/NexTracker_Go/internal/logger"
)

var (
	ErrQueueFull   = errors.New(ErrMsgQueueFull)
	ErrPoolStopped = errors.New(ErrMsgPoolStopped)
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed set of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once

	// ctx is cancelled on Stop so in-flight jobs can abandon retries
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(LogMsgWorkerPanic, "panic", fmt.Sprint(r))
		}
	}()

	if err := job.Process(p.ctx); err != nil {
		logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job without blocking.
// It returns ErrQueueFull when the queue is at capacity and ErrPoolStopped after Stop.
func (p *Pool) Enqueue(job Job) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}

	select {
	case p.jobQueue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop cancels in-flight jobs and waits for the workers to exit. Queued jobs are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.cancel()
		p.wg.Wait()
	})
}
