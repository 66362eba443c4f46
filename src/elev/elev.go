package elev

import (
	"log/slog"

	"elevatorbank/src/config"
	"elevatorbank/src/types"
)

// InitElevState creates an idle elevator with closed doors at its home floor.
func InitElevState(id int, cfg config.Config) *Elevator {
	elevator := &Elevator{
		ID:           id,
		CurrentFloor: cfg.HomeFloor(id),
		TargetFloor:  types.NoFloor,
		Dir:          types.Stop,
		AssignedUp:   types.NewFloorSet(cfg.NumFloors),
		AssignedDown: types.NewFloorSet(cfg.NumFloors),
		CabCalls:     types.NewFloorSet(cfg.NumFloors),
		LastHallDir:  types.Stop,
		Timing:       TimingFrom(cfg),
	}
	elevator.setBehaviour(types.Idle)
	slog.Debug("Elevator initialized", "id", id, "floor", elevator.CurrentFloor)
	return elevator
}

// AssignedCount is the number of hall calls this car has committed to.
func (e *Elevator) AssignedCount() int {
	return e.AssignedUp.Len() + e.AssignedDown.Len()
}

// PendingStops lists every floor the car still has to visit.
func (e *Elevator) PendingStops() []int {
	var floors []int
	for floor := 1; floor < len(e.CabCalls.Floors); floor++ {
		if e.hasStop(floor) {
			floors = append(floors, floor)
		}
	}
	return floors
}

func (e *Elevator) HasPendingStops() bool {
	return !e.CabCalls.Empty() || !e.AssignedUp.Empty() || !e.AssignedDown.Empty()
}

// FarthestStop returns the farthest pending stop in dir, or the current floor if there is none beyond it.
func (e *Elevator) FarthestStop(dir types.Direction) int {
	farthest := e.CurrentFloor
	for _, floor := range e.PendingStops() {
		if (dir == types.Up && floor > farthest) || (dir == types.Down && floor < farthest) {
			farthest = floor
		}
	}
	return farthest
}

// ServesHere reports whether a call at the current floor in dir can be served by the current door cycle.
func (e *Elevator) ServesHere(dir types.Direction) bool {
	if e.IsMoving {
		return false
	}
	return e.Dir == types.Stop || e.Dir == dir || !e.stopsBeyond(e.CurrentFloor, e.Dir)
}
