package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrScanActive is returned when a scan is requested while another scan, or
// the periodic loop, already holds the scheduler.
var ErrScanActive = errors.New("a scan is already running")

// Scheduler serializes scans: the periodic background loop and on-demand
// scans share one guarded flag, so at most one of them runs at a time.
type Scheduler struct {
	Pipeline *Pipeline
	Interval time.Duration
	Log      *slog.Logger

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

func NewScheduler(p *Pipeline, interval time.Duration, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{Pipeline: p, Interval: interval, Log: log}
}

// Start launches the periodic loop. It fails if a loop or a manual scan is
// already running.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrScanActive
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.loop(ctx, s.stop, s.done)
	s.Log.Info("scan loop started", "interval", s.Interval)
	return nil
}

// Stop asks the loop to exit and waits for the in-flight scan, if any, to
// finish. Calling Stop when nothing is running is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running || s.stop == nil {
		s.mu.Unlock()
		return
	}
	stop, done := s.stop, s.done
	s.mu.Unlock()

	close(stop)
	<-done
}

func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// ScanNow runs one batch immediately. It refuses to overlap the periodic
// loop or another manual scan.
func (s *Scheduler) ScanNow(ctx context.Context) (Result, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return Result{}, ErrScanActive
	}
	s.running = true
	s.mu.Unlock()
	defer s.clear()

	return s.Pipeline.Run(ctx)
}

func (s *Scheduler) loop(ctx context.Context, stop, done chan struct{}) {
	defer close(done)
	defer s.clear()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Log.Info("scan loop stopping", "reason", ctx.Err())
			return
		case <-stop:
			s.Log.Info("scan loop stopped")
			return
		case <-ticker.C:
			if _, err := s.Pipeline.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				s.Log.Error("scheduled scan failed", "error", err)
			}
		}
	}
}

func (s *Scheduler) clear() {
	s.mu.Lock()
	s.running = false
	s.stop = nil
	s.done = nil
	s.mu.Unlock()
}
