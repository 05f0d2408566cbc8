package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/stacieblesley-tech/dailyluck/internal/config"
)

// RefreshScheduler re-evaluates the daily refresh rule on a fixed cadence
// while a user is registered ("armed"). Its lifecycle is owned by the caller:
// Start when a profile exists, Stop on reset.
//
// A fetch fires when the reference-zone clock is past the daily threshold
// and the cached record is absent or stale. A failed fetch leaves the cache
// stale, so the next tick retries; that polling is the only retry mechanism
// and is intentionally unbounded.
type RefreshScheduler struct {
	Clock    Clock
	Interval time.Duration // defaults to config.SchedulerInterval when zero

	// Cached returns the last persisted record, nil when none exists.
	Cached func() *FortuneRecord

	// Refresh triggers one fetch. It runs on its own goroutine so a slow
	// service call never blocks the ticker. Overlapping refreshes are
	// possible (scheduled tick plus manual refresh); last write wins.
	Refresh func()

	mu     sync.Mutex
	cancel context.CancelFunc
}

// Start arms the scheduler. Calling Start while armed restarts the loop.
func (s *RefreshScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	interval := s.Interval
	if interval <= 0 {
		interval = config.SchedulerInterval
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	slog.Info(config.MsgSchedStart,
		config.LogKeyComponent, config.CompScheduler,
		config.LogKeyInterval, interval,
	)

	go s.run(runCtx, interval)
}

// Stop disarms the scheduler. In-flight refreshes are not cancelled; their
// results are simply ignored by a caller that has since reset.
func (s *RefreshScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		slog.Info(config.MsgSchedStop, config.LogKeyComponent, config.CompScheduler)
	}
}

func (s *RefreshScheduler) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick evaluates the refresh rule once and dispatches at most one fetch.
func (s *RefreshScheduler) tick() {
	now := ReferenceNow(s.Clock)
	if !s.due(now) {
		return
	}

	cachedKey := ""
	if cached := s.Cached(); cached != nil {
		cachedKey = cached.Date
	}
	slog.Info(config.MsgSchedDue,
		config.LogKeyComponent, config.CompScheduler,
		config.LogKeyDateKey, DateKey(now),
		config.LogKeyCached, cachedKey,
	)

	go s.Refresh()
}

// due applies the transition rule: past the daily threshold and no cached
// record for today's key.
func (s *RefreshScheduler) due(now time.Time) bool {
	if !AfterDailyThreshold(now) {
		return false
	}
	cached := s.Cached()
	return cached == nil || cached.Date != DateKey(now)
}
