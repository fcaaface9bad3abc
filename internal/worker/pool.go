package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

// Pool manages a fixed set of workers draining a job queue. Used by batch
// scoring, where each job is one profile URL sent to the backend.
// Workers append results as they finish, so Submit never deadlocks behind
// an undrained result channel.
type Pool struct {
	workers  int
	jobQueue chan Job

	resMu   sync.Mutex
	results []Result

	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates a new worker pool with the specified number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start starts the worker goroutines
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
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			p.resMu.Lock()
			p.results = append(p.results, result)
			p.resMu.Unlock()
		}
	}
}

// Submit queues a job for execution. Dropped when the pool is shut down.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobQueue <- job:
	}
}

// Wait closes the queue, waits for all jobs to finish, and returns the
// collected results
func (p *Pool) Wait() []Result {
	p.closeOnce.Do(func() {
		close(p.jobQueue)
	})
	p.wg.Wait()

	p.resMu.Lock()
	defer p.resMu.Unlock()
	out := make([]Result, len(p.results))
	copy(out, p.results)
	return out
}

// Shutdown stops the pool immediately. Queued jobs are abandoned; results
// from jobs already finished remain available through Wait.
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
}
