package engine_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stacieblesley-tech/dailyluck/internal/engine"
	"github.com/stretchr/testify/assert"
)

// refreshCounter records Refresh dispatches in a goroutine-safe way.
type refreshCounter struct {
	mu    sync.Mutex
	count int
	fired chan struct{}
}

func newRefreshCounter() *refreshCounter {
	return &refreshCounter{fired: make(chan struct{}, 16)}
}

func (c *refreshCounter) Refresh() {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
	c.fired <- struct{}{}
}

func (c *refreshCounter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// pastThreshold is 10:00 in the reference zone on 2025-06-15.
var pastThreshold = time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)

// beforeThreshold is 08:00 in the reference zone on the same day.
var beforeThreshold = time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC)

func newTestScheduler(clock engine.Clock, cached func() *engine.FortuneRecord, counter *refreshCounter) *engine.RefreshScheduler {
	return &engine.RefreshScheduler{
		Clock:    clock,
		Interval: 5 * time.Millisecond,
		Cached:   cached,
		Refresh:  counter.Refresh,
	}
}

func TestScheduler_FiresWhenNoCache(t *testing.T) {
	counter := newRefreshCounter()
	s := newTestScheduler(
		MockClock{CurrentTime: pastThreshold},
		func() *engine.FortuneRecord { return nil },
		counter,
	)

	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-counter.fired:
	case <-time.After(time.Second):
		t.Fatal("expected a refresh dispatch with an empty cache past the threshold")
	}
}

func TestScheduler_FiresWhenCacheStale(t *testing.T) {
	counter := newRefreshCounter()
	stale := &engine.FortuneRecord{Date: "2025-06-14"}
	s := newTestScheduler(
		MockClock{CurrentTime: pastThreshold},
		func() *engine.FortuneRecord { return stale },
		counter,
	)

	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-counter.fired:
	case <-time.After(time.Second):
		t.Fatal("expected a refresh dispatch for yesterday's cached record")
	}
}

func TestScheduler_RetriesWhileCacheStaysStale(t *testing.T) {
	// A failed fetch leaves the cache unchanged, so each subsequent tick
	// fires again. There is no backoff and no attempt cap.
	counter := newRefreshCounter()
	s := newTestScheduler(
		MockClock{CurrentTime: pastThreshold},
		func() *engine.FortuneRecord { return nil },
		counter,
	)

	s.Start(context.Background())
	defer s.Stop()

	for i := 0; i < 3; i++ {
		select {
		case <-counter.fired:
		case <-time.After(time.Second):
			t.Fatalf("expected dispatch %d while the cache stays stale", i+1)
		}
	}
	assert.GreaterOrEqual(t, counter.Count(), 3)
}

func TestScheduler_IdleWhenCacheCurrent(t *testing.T) {
	counter := newRefreshCounter()
	today := &engine.FortuneRecord{Date: "2025-06-15"}
	s := newTestScheduler(
		MockClock{CurrentTime: pastThreshold},
		func() *engine.FortuneRecord { return today },
		counter,
	)

	s.Start(context.Background())
	defer s.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, counter.Count(), "no dispatch while today's record is cached")
}

func TestScheduler_IdleBeforeThreshold(t *testing.T) {
	counter := newRefreshCounter()
	s := newTestScheduler(
		MockClock{CurrentTime: beforeThreshold},
		func() *engine.FortuneRecord { return nil },
		counter,
	)

	s.Start(context.Background())
	defer s.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, counter.Count(), "no dispatch before the daily threshold")
}

func TestScheduler_StopDisarms(t *testing.T) {
	counter := newRefreshCounter()
	s := newTestScheduler(
		MockClock{CurrentTime: pastThreshold},
		func() *engine.FortuneRecord { return nil },
		counter,
	)

	s.Start(context.Background())

	select {
	case <-counter.fired:
	case <-time.After(time.Second):
		t.Fatal("expected at least one dispatch before Stop")
	}

	s.Stop()
	// Drain anything already dispatched, then verify silence.
	time.Sleep(30 * time.Millisecond)
	settled := counter.Count()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, settled, counter.Count(), "no dispatches after Stop")
}

func TestScheduler_StopIdempotent(t *testing.T) {
	s := newTestScheduler(
		MockClock{CurrentTime: beforeThreshold},
		func() *engine.FortuneRecord { return nil },
		newRefreshCounter(),
	)

	s.Stop() // never started
	s.Start(context.Background())
	s.Stop()
	s.Stop()
}
