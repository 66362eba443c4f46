package sim

import (
	"context"
	"log/slog"

	"elevatorbank/src/building"
	"elevatorbank/src/types"
)

// Cmd encapsulates an operation on the building.
type Cmd struct {
	Exec func(b *building.Building)
}

// Manager owns the building and serializes every access to it. Hall calls, cab calls,
// snapshot requests and clock ticks are all executed by the goroutine started in Run.
type Manager struct {
	cmds        chan Cmd
	subscribers []chan building.State
	subscribe   chan chan building.State
	done        chan struct{}
}

func NewManager() *Manager {
	return &Manager{
		cmds:      make(chan Cmd),
		subscribe: make(chan chan building.State),
		done:      make(chan struct{}),
	}
}

// Run processes commands and ticks until ctx is cancelled. The building is frozen as it
// is when Run returns; pending commands fail with context.Canceled.
func (mgr *Manager) Run(ctx context.Context, b *building.Building, ticks <-chan uint64) {
	defer close(mgr.done)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Simulation halted", "tick", b.Snapshot().Tick)
			for _, sub := range mgr.subscribers {
				close(sub)
			}
			return
		case cmd := <-mgr.cmds:
			cmd.Exec(b)
		case sub := <-mgr.subscribe:
			mgr.subscribers = append(mgr.subscribers, sub)
		case <-ticks:
			served := b.Tick()
			snap := b.Snapshot()
			if len(served) > 0 {
				slog.Debug("Tick served hall calls", "tick", snap.Tick, "served", served)
			}
			mgr.publish(snap)
		}
	}
}

// publish keeps only the latest snapshot for subscribers that fell behind.
func (mgr *Manager) publish(snap building.State) {
	for _, sub := range mgr.subscribers {
		select {
		case <-sub:
		default:
		}
		sub <- snap
	}
}

// Execute sends a command to the manager. It returns ctx.Err() if the command could not be delivered.
func (mgr *Manager) Execute(ctx context.Context, cmd Cmd) error {
	select {
	case mgr.cmds <- cmd:
		return nil
	case <-mgr.done:
		return context.Canceled
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe returns a channel that receives a snapshot after every tick. Only the latest snapshot is buffered.
func (mgr *Manager) Subscribe(ctx context.Context) (<-chan building.State, error) {
	sub := make(chan building.State, 1)
	select {
	case mgr.subscribe <- sub:
		return sub, nil
	case <-mgr.done:
		return nil, context.Canceled
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Snapshot returns a deep copy of the building state.
func (mgr *Manager) Snapshot(ctx context.Context) (building.State, error) {
	reply := make(chan building.State, 1)
	err := mgr.Execute(ctx, Cmd{Exec: func(b *building.Building) {
		reply <- b.Snapshot()
	}})
	if err != nil {
		return building.State{}, err
	}
	return <-reply, nil
}

// RequestHallCall submits a hall call and reports whether it was dispatched.
func (mgr *Manager) RequestHallCall(ctx context.Context, floor int, dir types.Direction) (bool, error) {
	type result struct {
		ok  bool
		err error
	}
	reply := make(chan result, 1)
	err := mgr.Execute(ctx, Cmd{Exec: func(b *building.Building) {
		_, ok, err := b.RequestHallCall(floor, dir)
		reply <- result{ok, err}
	}})
	if err != nil {
		return false, err
	}
	r := <-reply
	return r.ok, r.err
}

// RequestCabCall submits a destination for one car and reports whether it changed anything.
func (mgr *Manager) RequestCabCall(ctx context.Context, elevatorID, floor int) (bool, error) {
	type result struct {
		ok  bool
		err error
	}
	reply := make(chan result, 1)
	err := mgr.Execute(ctx, Cmd{Exec: func(b *building.Building) {
		ok, err := b.RequestCabCall(elevatorID, floor)
		reply <- result{ok, err}
	}})
	if err != nil {
		return false, err
	}
	r := <-reply
	return r.ok, r.err
}
