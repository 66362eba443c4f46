package timer

import (
	"context"
	"testing"
	"time"
)

func TestClockStartsStopped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := NewClock(time.Millisecond)
	go clock.Run(ctx)

	select {
	case tick := <-clock.Ticks():
		t.Fatalf("tick %d before Start", tick)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestClockEmitsNumberedTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := NewClock(time.Millisecond)
	go clock.Run(ctx)
	clock.Start()

	for want := uint64(1); want <= 3; want++ {
		select {
		case tick := <-clock.Ticks():
			if tick != want {
				t.Fatalf("expected tick %d, got %d", want, tick)
			}
		case <-time.After(time.Second):
			t.Fatalf("tick %d never arrived", want)
		}
	}
}

func TestClockStopHaltsTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := NewClock(time.Millisecond)
	go clock.Run(ctx)
	clock.Start()
	<-clock.Ticks()
	clock.Stop()

	// ticks already in flight when Stop was sent may still arrive
	for quiet := false; !quiet; {
		select {
		case <-clock.Ticks():
		case <-time.After(20 * time.Millisecond):
			quiet = true
		}
	}
	select {
	case tick := <-clock.Ticks():
		t.Fatalf("tick %d after Stop", tick)
	case <-time.After(30 * time.Millisecond):
	}
}
