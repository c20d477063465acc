package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SweepFunc is one pass of a periodic job. It returns how many records it
// touched; errors are logged and the next tick runs regardless.
type SweepFunc func(ctx context.Context, now time.Time) (int, error)

// SweepScheduler runs a SweepFunc on a fixed interval, one pass at a time.
type SweepScheduler struct {
	name     string
	interval time.Duration
	sweep    SweepFunc
	now      func() time.Time
	logger   *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

func NewSweepScheduler(name string, interval time.Duration, sweep SweepFunc, logger *zap.Logger) *SweepScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SweepScheduler{
		name:     name,
		interval: interval,
		sweep:    sweep,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger.With(zap.String("job", name)),
	}
}

// Start launches the loop. Calling Start on a running scheduler is a no-op.
func (s *SweepScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return nil
	}
	s.isRunning = true

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.runLoop(ctx)

	s.logger.Info("[scheduler] started", zap.Duration("interval", s.interval))
	return nil
}

// Stop cancels the loop and waits for an in-flight pass, or for ctx.
func (s *SweepScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("[scheduler] stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run starts the scheduler and blocks until ctx is done, then stops it. It
// fits errgroup.Group.Go.
func (s *SweepScheduler) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Stop(stopCtx)
}

func (s *SweepScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

func (s *SweepScheduler) runLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single pass synchronously.
func (s *SweepScheduler) RunOnce(ctx context.Context) {
	start := time.Now()
	n, err := s.sweep(ctx, s.now())
	if err != nil {
		s.logger.Error("[scheduler] pass failed",
			zap.Int("handled", n),
			zap.Duration("took", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	if n > 0 {
		s.logger.Info("[scheduler] pass done", zap.Int("handled", n), zap.Duration("took", time.Since(start)))
	}
}
