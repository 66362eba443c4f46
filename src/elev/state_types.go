// State types are defined in elev package to make method receivers possible in fsm.go and orders.go.
package elev

import (
	"elevatorbank/src/config"
	"elevatorbank/src/types"
)

// Elevator is one car of the fleet. Behaviour, IsMoving and DoorState are only written through setBehaviour.
type Elevator struct {
	ID           int
	CurrentFloor int // resting floor, or last departed floor while moving
	TargetFloor  int // types.NoFloor when idle
	Dir          types.Direction
	IsMoving     bool
	DoorState    types.DoorState
	Behaviour    types.ElevBehaviour
	AssignedUp   types.FloorSet
	AssignedDown types.FloorSet
	CabCalls     types.FloorSet
	LastHallDir  types.Direction // direction of the most recently assigned hall call
	PhaseTicks   int             // ticks left of the current travel or door phase
	Timing       Timing
}

// Timing is the session configuration expressed in whole ticks.
type Timing struct {
	TravelTicks int
	DoorTicks   int
	DwellTicks  int
}

func TimingFrom(cfg config.Config) Timing {
	return Timing{
		TravelTicks: cfg.TravelTicks(),
		DoorTicks:   cfg.DoorTransitionTicks(),
		DwellTicks:  cfg.DwellTicks(),
	}
}

// setBehaviour is the only writer of Behaviour, IsMoving and DoorState.
func (e *Elevator) setBehaviour(b types.ElevBehaviour) {
	e.Behaviour = b
	e.IsMoving = b == types.Moving
	switch b {
	case types.OpeningDoor:
		e.DoorState = types.DoorOpening
	case types.DoorOpenDwell:
		e.DoorState = types.DoorOpen
	case types.ClosingDoor:
		e.DoorState = types.DoorClosing
	default:
		e.DoorState = types.DoorClosed
	}
}

func (e *Elevator) assigned(dir types.Direction) types.FloorSet {
	if dir == types.Up {
		return e.AssignedUp
	}
	return e.AssignedDown
}
