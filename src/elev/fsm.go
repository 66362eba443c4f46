// Contains the per-tick state machine and the call handlers for a single car.
package elev

import (
	"log/slog"

	"elevatorbank/src/types"
)

// Step advances the car by one tick and returns the hall calls it served during the tick.
func (e *Elevator) Step() []types.HallCall {
	switch e.Behaviour {
	case types.Idle:
		return e.chooseAction()

	case types.Moving:
		if e.PhaseTicks--; e.PhaseTicks > 0 {
			return nil
		}
		e.CurrentFloor += int(e.Dir)
		return e.handleFloorArrival()

	case types.OpeningDoor:
		if e.PhaseTicks--; e.PhaseTicks > 0 {
			return nil
		}
		e.setBehaviour(types.DoorOpenDwell)
		e.PhaseTicks = e.Timing.DwellTicks
		slog.Debug("Door open", "id", e.ID, "floor", e.CurrentFloor)

	case types.DoorOpenDwell:
		if e.PhaseTicks--; e.PhaseTicks > 0 {
			return nil
		}
		e.setBehaviour(types.ClosingDoor)
		e.PhaseTicks = e.Timing.DoorTicks
		slog.Debug("Door closing", "id", e.ID, "floor", e.CurrentFloor)

	case types.ClosingDoor:
		if e.PhaseTicks--; e.PhaseTicks > 0 {
			return nil
		}
		e.setBehaviour(types.Idle)
		slog.Debug("Door closed", "id", e.ID, "floor", e.CurrentFloor)
		return e.chooseAction()
	}
	return nil
}

// AssignHallCall commits the car to a hall call and returns it again if it was served on the spot.
func (e *Elevator) AssignHallCall(call types.HallCall) []types.HallCall {
	e.assigned(call.Dir).Add(call.Floor)
	e.LastHallDir = call.Dir
	slog.Debug("Hall call assigned", "id", e.ID, "call", call, "behaviour", e.Behaviour)

	switch e.Behaviour {
	case types.Idle:
		return e.chooseAction()
	case types.Moving:
		e.TargetFloor = e.nextStop()
	case types.OpeningDoor, types.DoorOpenDwell, types.ClosingDoor:
		if call.Floor == e.CurrentFloor && e.ServesHere(call.Dir) {
			e.assigned(call.Dir).Remove(call.Floor)
			e.reopenDoor()
			return []types.HallCall{call}
		}
	}
	return nil
}

// AddCabCall registers a destination pressed inside the car. Returns false if the call changed nothing.
// A press for the floor a stationary car is at opens or holds the doors instead of queueing a stop.
func (e *Elevator) AddCabCall(floor int) bool {
	if e.CabCalls.Has(floor) {
		return false
	}
	if floor == e.CurrentFloor && !e.IsMoving {
		if e.Behaviour == types.Idle {
			e.openDoor()
		} else {
			e.reopenDoor()
		}
		return true
	}
	if !e.CabCalls.Add(floor) {
		return false
	}
	slog.Debug("Cab call added", "id", e.ID, "floor", floor)

	switch e.Behaviour {
	case types.Idle:
		e.chooseAction()
	case types.Moving:
		e.TargetFloor = e.nextStop()
	}
	return true
}

// handleFloorArrival checks if the car should stop at the floor it just reached and opens the door if so.
func (e *Elevator) handleFloorArrival() []types.HallCall {
	if e.shouldStopAt(e.CurrentFloor, e.Dir) {
		slog.Debug("Stopping at floor", "id", e.ID, "floor", e.CurrentFloor, "direction", e.Dir)
		served := e.clearAtCurrentFloor()
		e.openDoor()
		return served
	}
	if !e.stopsBeyond(e.CurrentFloor, e.Dir) {
		slog.Warn("Nothing left ahead, halting", "id", e.ID, "floor", e.CurrentFloor)
		e.setBehaviour(types.Idle)
		return e.chooseAction()
	}
	slog.Debug("Continuing past floor", "id", e.ID, "floor", e.CurrentFloor, "direction", e.Dir)
	e.PhaseTicks = e.Timing.TravelTicks
	e.TargetFloor = e.nextStop()
	return nil
}

// chooseAction is called whenever the car is idle with closed doors.
//   - Moves the car if there are stops on other floors
//   - Opens the door if there is a stop here
func (e *Elevator) chooseAction() []types.HallCall {
	pair := e.chooseDirection()
	e.Dir = pair.Dir

	switch pair.Behaviour {
	case types.Moving:
		e.setBehaviour(types.Moving)
		e.PhaseTicks = e.Timing.TravelTicks
		e.TargetFloor = e.nextStop()
		slog.Debug("Departing", "id", e.ID, "floor", e.CurrentFloor, "direction", e.Dir, "target", e.TargetFloor)
	case types.OpeningDoor:
		served := e.clearAtCurrentFloor()
		e.openDoor()
		return served
	default:
		e.Dir = types.Stop
		e.TargetFloor = types.NoFloor
	}
	return nil
}

func (e *Elevator) openDoor() {
	e.setBehaviour(types.OpeningDoor)
	e.PhaseTicks = e.Timing.DoorTicks
	e.TargetFloor = types.NoFloor
}

// reopenDoor handles a new request for this floor while the doors are cycling.
func (e *Elevator) reopenDoor() {
	switch e.Behaviour {
	case types.ClosingDoor:
		slog.Debug("Reopening door", "id", e.ID, "floor", e.CurrentFloor)
		e.openDoor()
	case types.DoorOpenDwell:
		e.PhaseTicks = e.Timing.DwellTicks
	}
}
