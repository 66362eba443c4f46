package types

import "fmt"

// NoFloor marks an absent target floor.
const NoFloor = -1

// Direction is used both for hall-call intent and travel direction. Stop means no direction.
type Direction int

const (
	Up   Direction = 1
	Down Direction = -1
	Stop Direction = 0
)

func (d Direction) Opposite() Direction {
	return -d
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Stop"
	}
}

// DirectionTo returns the direction from one floor to another, Stop if equal.
func DirectionTo(from, to int) Direction {
	switch {
	case from < to:
		return Up
	case from > to:
		return Down
	}
	return Stop
}

type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
	DoorClosing
)

func (s DoorState) String() string {
	return [...]string{"Closed", "Opening", "Open", "Closing"}[s]
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	Moving
	OpeningDoor
	DoorOpenDwell
	ClosingDoor
)

func (b ElevBehaviour) String() string {
	return [...]string{"Idle", "Moving", "DoorOpening", "DoorOpen", "DoorClosing"}[b]
}

// HallCall is a landing request for service in one direction.
type HallCall struct {
	Floor int
	Dir   Direction
}

func (c HallCall) String() string {
	return fmt.Sprintf("Hall%s(%d)", c.Dir, c.Floor)
}

// DirnBehaviourPair keeps track of direction even when the elevator is idle.
type DirnBehaviourPair struct {
	Dir       Direction
	Behaviour ElevBehaviour
}
