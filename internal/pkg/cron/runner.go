package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a function executed on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Runner executes registered jobs on their intervals until stopped.
type Runner struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewRunner() *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		ctx:    ctx,
		cancel: cancel,
	}
}

func (r *Runner) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs = append(r.jobs, Job{Name: name, Interval: interval, Fn: fn})
	slog.Info("cron job registered", "name", name, "interval", interval)
}

func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, job := range r.jobs {
		r.wg.Add(1)
		go r.loop(job)
	}
	slog.Info("cron runner started", "job_count", len(r.jobs))
}

func (r *Runner) Stop() {
	r.cancel()
	r.wg.Wait()
	slog.Info("cron runner stopped")
}

func (r *Runner) loop(job Job) {
	defer r.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	r.execute(job)

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.execute(job)
		}
	}
}

func (r *Runner) execute(job Job) {
	start := time.Now()
	if err := job.Fn(r.ctx); err != nil {
		slog.Error("cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("cron job completed", "name", job.Name, "duration", time.Since(start))
}

// RunOnce executes every registered job a single time.
func (r *Runner) RunOnce(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, job := range r.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("cron job failed", "name", job.Name, "error", err)
		}
	}
}
