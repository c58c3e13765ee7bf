package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-fiveoclock/internal/config"
)

// RefreshFunc is invoked once at startup and then at every hour boundary.
// The instant passed in is read from the Scheduler's Clock immediately
// before the call; callers must not assume the timer delay was exact.
type RefreshFunc func(now time.Time)

// Scheduler drives hour-aligned refreshes with a one-shot-then-reschedule
// timer instead of a fixed-period ticker: the delay to the next boundary is
// recomputed from a fresh "now" on every cycle, so the schedule self-corrects
// after drift, system sleep, or clock adjustments. The single pending timer
// is its only mutable state.
type Scheduler struct {
	Clock Clock

	// OnError, when set, receives errors recovered from a panicking refresh
	// callback. The next boundary is armed regardless.
	OnError func(error)
}

// NextHourBoundary returns the first instant strictly after 'now' whose local
// minute and second are both zero. Computed from wall-clock components rather
// than absolute truncation so hosts in half-hour-offset zones still land on
// their local top of hour. An input exactly on a boundary yields the boundary
// one hour later, never the input itself.
func NextHourBoundary(now time.Time) time.Time {
	year, month, day := now.Date()
	top := time.Date(year, month, day, now.Hour(), 0, 0, 0, now.Location())
	return top.Add(time.Hour)
}

// Run invokes refresh immediately, then sleeps until each following hour
// boundary and invokes it again, until ctx is cancelled. The pending timer is
// stopped on return, so no fire can reach a torn-down caller.
func (s *Scheduler) Run(ctx context.Context, refresh RefreshFunc) {
	log := slog.With(config.LogKeyComponent, config.CompScheduler)
	log.Info(config.MsgSchedulerStart)

	now := s.Clock.Now()
	s.invoke(refresh, now)

	timer := time.NewTimer(s.nextDelay(now, log))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgSchedulerStop)
			return

		case <-timer.C:
			now := s.Clock.Now()
			s.invoke(refresh, now)
			timer.Reset(s.nextDelay(now, log))
		}
	}
}

// nextDelay computes how long to sleep until the boundary after 'now'.
func (s *Scheduler) nextDelay(now time.Time, log *slog.Logger) time.Duration {
	next := NextHourBoundary(now)
	delay := next.Sub(now)
	if delay <= 0 {
		// Clock moved between reads; retry shortly rather than spin.
		delay = time.Second
	}
	log.Debug(config.MsgBoundaryArmed,
		config.LogKeyNextFire, next,
		config.LogKeyDelayMS, delay.Milliseconds())
	return delay
}

// invoke runs the callback, converting a panic into a reported error so one
// bad pass cannot kill the hourly cycle.
func (s *Scheduler) invoke(refresh RefreshFunc, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%s: %v", config.ErrRefreshPanic, r)
			slog.Error(config.ErrRefreshPanic,
				config.LogKeyComponent, config.CompScheduler,
				config.LogKeyError, err)
			if s.OnError != nil {
				s.OnError(err)
			}
		}
	}()
	refresh(now)
}
