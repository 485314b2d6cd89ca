package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Service runs registered jobs on their interval until the context is
// canceled. Each job also runs once immediately on start.
type Service struct {
	jobs []job
	wg   *sync.WaitGroup
}

func NewService() *Service {
	return &Service{
		wg: &sync.WaitGroup{},
	}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

func (s *Service) TryRegisterJob(enabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !enabled {
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Service) Start(ctx context.Context) {
	for _, j := range s.jobs {
		go s.runJob(ctx, j)
	}
}

func (s *Service) runJob(ctx context.Context, j job) {
	s.wg.Add(1)
	defer s.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		l.Debug("job run started")

		err := s.runWithRecover(ctx, l, j)
		if err != nil {
			l.Error("job run failed", "error", err)
		} else {
			l.Debug("job run done")
		}

		select {
		case <-ctx.Done():
			l.Debug("context done")
			return

		case <-ticker.C:
		}
	}
}

func (s *Service) runWithRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.Error("job panic", "error", r, "stack", string(debug.Stack()))
		}
	}()

	return j.fn(ctx)
}

func (s *Service) Stop() {
	s.wg.Wait()
}
