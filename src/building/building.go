package building

import (
	"errors"
	"fmt"
	"log/slog"

	"elevatorbank/src/config"
	"elevatorbank/src/dispatcher"
	"elevatorbank/src/elev"
	"elevatorbank/src/types"

	"github.com/tiendc/go-deepcopy"
)

var (
	ErrInvalidFloor     = errors.New("invalid floor")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrUnknownElevator  = errors.New("unknown elevator")
)

// State is everything a renderer needs: the fleet and the lit hall buttons.
type State struct {
	Tick      uint64
	Elevators []elev.Elevator
	CallsUp   types.FloorSet
	CallsDown types.FloorSet
}

// Building is the aggregate root. It is not safe for concurrent use; sim.Manager serializes access.
type Building struct {
	cfg   config.Config
	state State
}

func New(cfg config.Config) *Building {
	b := &Building{
		cfg: cfg,
		state: State{
			Elevators: make([]elev.Elevator, cfg.NumElevators),
			CallsUp:   types.NewFloorSet(cfg.NumFloors),
			CallsDown: types.NewFloorSet(cfg.NumFloors),
		},
	}
	for id := range cfg.NumElevators {
		b.state.Elevators[id] = *elev.InitElevState(id, cfg)
	}
	return b
}

func (b *Building) Config() config.Config {
	return b.cfg
}

// Snapshot returns a deep copy of the building state. Mutating it never affects the building.
func (b *Building) Snapshot() State {
	var snap State
	if err := deepcopy.Copy(&snap, &b.state); err != nil {
		panic(err)
	}
	return snap
}

// RequestHallCall lights the hall button and dispatches it. ok is false when the call was a no-op:
//   - an elevator is standing at the floor with its doors open
//   - the button is already lit
func (b *Building) RequestHallCall(floor int, dir types.Direction) (elevatorID int, ok bool, err error) {
	call := types.HallCall{Floor: floor, Dir: dir}
	if err := b.validateHallCall(call); err != nil {
		return 0, false, err
	}
	for _, elevator := range b.state.Elevators {
		if elevator.CurrentFloor == floor && !elevator.IsMoving && elevator.DoorState == types.DoorOpen {
			slog.Debug("Hall call suppressed, doors already open", "call", call, "elevator", elevator.ID)
			return 0, false, nil
		}
	}
	if !b.callSet(dir).Add(floor) {
		slog.Debug("Redundant hall call", "call", call)
		return 0, false, nil
	}

	elevatorID = dispatcher.Assign(call, b.state.Elevators, b.cfg)
	served := b.commitHallCall(elevatorID, call)
	b.clearLamps(served)
	slog.Info("Hall call dispatched", "call", call, "elevator", elevatorID)
	return elevatorID, true, nil
}

// RequestCabCall adds a destination inside one car. ok is false when the call was a no-op.
func (b *Building) RequestCabCall(elevatorID, floor int) (ok bool, err error) {
	if elevatorID < 0 || elevatorID >= len(b.state.Elevators) {
		return false, fmt.Errorf("elevator %d: %w", elevatorID, ErrUnknownElevator)
	}
	if err := b.validateFloor(floor); err != nil {
		return false, err
	}
	ok = b.state.Elevators[elevatorID].AddCabCall(floor)
	if ok {
		slog.Info("Cab call accepted", "elevator", elevatorID, "floor", floor)
	} else {
		slog.Debug("Redundant cab call", "elevator", elevatorID, "floor", floor)
	}
	return ok, nil
}

// Tick advances every elevator by one tick in id order. Elevators only touch their own state, so
// the hall calls they serve are collected first and the lamps cleared once all of them have stepped.
func (b *Building) Tick() []types.HallCall {
	b.state.Tick++
	var served []types.HallCall
	for i := range b.state.Elevators {
		served = append(served, b.state.Elevators[i].Step()...)
	}
	b.clearLamps(served)
	return served
}

// Idle reports whether no elevator has anything left to do.
func (b *Building) Idle() bool {
	return b.state.Idle()
}

// commitHallCall adds the call to exactly one elevator. A second owner for the same
// floor and direction is a programming error.
func (b *Building) commitHallCall(elevatorID int, call types.HallCall) []types.HallCall {
	for _, elevator := range b.state.Elevators {
		if assignedSet(&elevator, call.Dir).Has(call.Floor) {
			panic(fmt.Sprintf("%s already assigned to elevator %d", call, elevator.ID))
		}
	}
	return b.state.Elevators[elevatorID].AssignHallCall(call)
}

func (b *Building) clearLamps(served []types.HallCall) {
	for _, call := range served {
		if b.callSet(call.Dir).Remove(call.Floor) {
			slog.Info("Hall call served", "call", call)
		}
	}
}

func (b *Building) callSet(dir types.Direction) types.FloorSet {
	return b.state.callSet(dir)
}

func (b *Building) validateFloor(floor int) error {
	if floor < 1 || floor > b.cfg.NumFloors {
		return fmt.Errorf("floor %d outside [1, %d]: %w", floor, b.cfg.NumFloors, ErrInvalidFloor)
	}
	return nil
}

func (b *Building) validateHallCall(call types.HallCall) error {
	if err := b.validateFloor(call.Floor); err != nil {
		return err
	}
	switch {
	case call.Dir != types.Up && call.Dir != types.Down:
		return fmt.Errorf("hall call direction %s: %w", call.Dir, ErrInvalidDirection)
	case call.Dir == types.Up && call.Floor == b.cfg.NumFloors:
		return fmt.Errorf("no up call at top floor %d: %w", call.Floor, ErrInvalidDirection)
	case call.Dir == types.Down && call.Floor == 1:
		return fmt.Errorf("no down call at bottom floor: %w", ErrInvalidDirection)
	}
	return nil
}

func assignedSet(elevator *elev.Elevator, dir types.Direction) types.FloorSet {
	if dir == types.Up {
		return elevator.AssignedUp
	}
	return elevator.AssignedDown
}
