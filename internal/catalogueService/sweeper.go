package catalogue

import (
	"catalogue-service/internal/remaining"
	"catalogue-service/internal/repository"
	"catalogue-service/utils"
	"context"
	"fmt"
	"time"
)

// Sweeper persists the active -> inactive transition for items that have ended.
// Reads already derive the flag, so the sweep only keeps stored state in step.
type Sweeper struct {
	repo     repository.CatalogueDB
	interval time.Duration
	now      func() time.Time
}

// NewSweeper creates a sweeper that runs every interval
func NewSweeper(repo repository.CatalogueDB, interval time.Duration, opts ...SweeperOption) *Sweeper {
	s := &Sweeper{repo: repo, interval: interval, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SweeperOption configures a Sweeper
type SweeperOption func(*Sweeper)

// WithSweepClock replaces the sweeper's wall clock
func WithSweepClock(now func() time.Time) SweeperOption {
	return func(s *Sweeper) {
		s.now = now
	}
}

// SweepOnce deactivates every stored-active item that has ended and returns how many changed
func (s *Sweeper) SweepOnce(ctx context.Context) (int64, error) {
	n, err := s.repo.DeactivateExpired(ctx, remaining.Cutoff(s.now().UTC()))
	if err != nil {
		return 0, fmt.Errorf("sweeper: %w", err)
	}
	return n, nil
}

// Start runs the sweeper in its own goroutine. The returned channel is closed
// once Run has returned, after which the sweeper no longer touches the repository.
func (s *Sweeper) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()
	return done
}

// Run sweeps on every tick until ctx is cancelled. A non-positive interval returns immediately.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		utils.Info("expiry sweeper disabled", nil)
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	utils.Info("expiry sweeper started", map[string]any{"interval": s.interval.String()})
	for {
		select {
		case <-ctx.Done():
			utils.Info("expiry sweeper stopped", nil)
			return
		case <-ticker.C:
			n, err := s.SweepOnce(ctx)
			if err != nil {
				utils.Error("expiry sweep failed", map[string]any{"error": err.Error()})
				continue
			}
			if n > 0 {
				utils.Info("expired items deactivated", map[string]any{"count": n})
			}
		}
	}
}
