package timer

import (
	"context"
	"log/slog"
	"time"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Clock emits numbered ticks at a fixed interval while started.
type Clock struct {
	interval time.Duration
	ticks    chan uint64
	action   chan TimerAction
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{
		interval: interval,
		ticks:    make(chan uint64),
		action:   make(chan TimerAction, 1),
	}
}

// Ticks is read by the single owner of the simulation state.
func (c *Clock) Ticks() <-chan uint64 {
	return c.ticks
}

func (c *Clock) Start() { c.action <- Start }
func (c *Clock) Stop()  { c.action <- Stop }

// Run drives the clock until ctx is cancelled. The clock starts stopped.
// A tick is only counted once it has been delivered, so a slow reader delays the clock instead of losing ticks.
func (c *Clock) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	ticker.Stop()
	defer ticker.Stop()

	var count uint64
	for {
		select {
		case <-ctx.Done():
			return
		case a := <-c.action:
			switch a {
			case Start:
				ticker.Reset(c.interval)
				slog.Debug("Clock started", "interval", c.interval)
			case Stop:
				ticker.Stop()
				slog.Debug("Clock stopped", "ticks", count)
			}
		case <-ticker.C:
			select {
			case c.ticks <- count + 1:
				count++
			case <-ctx.Done():
				return
			}
		}
	}
}
