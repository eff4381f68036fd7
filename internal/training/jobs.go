package training

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is one pending train run. TrainingSet names the closed set the
// model fits on, which is one behind the project's counter by the time
// the job is submitted.
type Job struct {
	ProjectID   int
	TrainingSet int
	SubmittedAt time.Time
}

// Submitter accepts train jobs for asynchronous execution.
type Submitter interface {
	Submit(ctx context.Context, job Job) error
}

// Pool runs train jobs on a fixed set of workers. Labeling latency must
// not absorb training latency, so triggers only enqueue here and return.
type Pool struct {
	runner  *Runner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*Pool)

func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.ch = make(chan Job, n)
		}
	}
}
func WithJobTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewPool(runner *Runner, logger *slog.Logger, opts ...Option) *Pool {
	p := &Pool{
		runner:  runner,
		logger:  logger.With("component", "train_pool"),
		workers: 2,
		timeout: 10 * time.Minute,
		ch:      make(chan Job, 16),
	}
	for _, o := range opts {
		o(p)
	}
	p.start()
	return p
}

func (p *Pool) start() {
	p.once.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go func(workerID int) {
				defer p.wg.Done()
				p.logger.Info("worker started", "worker_id", workerID)

				for job := range p.ch {
					ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
					err := p.runner.Run(ctx, job)
					cancel()

					if err != nil {
						p.logger.Error("train job failed",
							"worker_id", workerID,
							"project_id", job.ProjectID,
							"training_set", job.TrainingSet,
							"error", err)
					}
				}

				p.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Submit never blocks: a full buffer drops the job with a warning
// rather than stalling the labeling path behind training latency.
func (p *Pool) Submit(_ context.Context, job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		p.logger.Warn("cannot submit: pool is shutting down", "project_id", job.ProjectID)
		return nil
	}
	select {
	case p.ch <- job:
		p.logger.Info("train job queued", "project_id", job.ProjectID, "training_set", job.TrainingSet)
	default:
		p.logger.Warn("pool full, dropping train job",
			"project_id", job.ProjectID,
			"training_set", job.TrainingSet)
	}
	return nil
}

func (p *Pool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.ch)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); p.wg.Wait() }()

	select {
	case <-ctx.Done():
		p.logger.Warn("shutdown interrupted by context")
	case <-done:
		p.logger.Info("pool drained, shutdown complete")
	}
}
