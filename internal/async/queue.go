// Package async provides a bounded worker pool for batch extraction.
package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is one image to extract.
type Job struct {
	ID          uuid.UUID
	Path        string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Handler processes one job. Errors are logged, not retried.
type Handler func(ctx context.Context, job Job) error

// Pool is an in-process Queue backed by a fixed set of workers.
type Pool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	handler Handler
	logger  *slog.Logger

	mu     sync.Mutex
	closed bool
}

func NewPool(workers, buffer int, handler Handler, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{
		jobs:    make(chan Job, buffer),
		handler: handler,
		logger:  logger,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(n int) {
	defer p.wg.Done()
	for job := range p.jobs {
		start := time.Now()
		err := p.handler(context.Background(), job)
		if err != nil {
			p.logger.Error("job failed",
				"worker", n, "job_id", job.ID, "path", job.Path,
				"duration_ms", time.Since(start).Milliseconds(), "error", err)
			continue
		}
		p.logger.Debug("job done",
			"worker", n, "job_id", job.ID, "path", job.Path,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// Enqueue submits a job, blocking while the buffer is full. The mutex is held
// across the send so Shutdown cannot close the channel mid-send.
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errors.New("queue is shut down")
	}

	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops intake and waits for in-flight jobs, honoring ctx.
func (p *Pool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		p.logger.Warn("shutdown timed out with jobs in flight")
	}
}
