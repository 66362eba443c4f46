package elev

import "elevatorbank/src/types"

func (e *Elevator) hasStop(floor int) bool {
	return e.CabCalls.Has(floor) || e.AssignedUp.Has(floor) || e.AssignedDown.Has(floor)
}

func (e *Elevator) stopsAbove(floor int) bool {
	for f := floor + 1; f < len(e.CabCalls.Floors); f++ {
		if e.hasStop(f) {
			return true
		}
	}
	return false
}

func (e *Elevator) stopsBelow(floor int) bool {
	for f := floor - 1; f >= 1; f-- {
		if e.hasStop(f) {
			return true
		}
	}
	return false
}

func (e *Elevator) stopsBeyond(floor int, dir types.Direction) bool {
	switch dir {
	case types.Up:
		return e.stopsAbove(floor)
	case types.Down:
		return e.stopsBelow(floor)
	}
	return false
}

// shouldStopAt checks if a car travelling in dir stops at floor.
//   - cab calls always stop the car
//   - hall calls in the travel direction stop the car
//   - opposite hall calls only stop the car when nothing is left further ahead
func (e *Elevator) shouldStopAt(floor int, dir types.Direction) bool {
	if e.CabCalls.Has(floor) || e.assigned(dir).Has(floor) {
		return true
	}
	if dir == types.Stop {
		return e.hasStop(floor)
	}
	return e.assigned(dir.Opposite()).Has(floor) && !e.stopsBeyond(floor, dir)
}

// nextStop returns the first floor ahead of the car where it will stop.
func (e *Elevator) nextStop() int {
	if e.Dir == types.Stop {
		return types.NoFloor
	}
	for floor := e.CurrentFloor + int(e.Dir); floor >= 1 && floor < len(e.CabCalls.Floors); floor += int(e.Dir) {
		if e.shouldStopAt(floor, e.Dir) {
			return floor
		}
	}
	return types.NoFloor
}

// clearAtCurrentFloor removes the calls served by opening the doors here and returns the served hall calls.
//   - the cab call is always cleared
//   - the hall call in the travel direction is cleared
//   - the opposite hall call is cleared only if nothing is left ahead and nobody here wants to continue
func (e *Elevator) clearAtCurrentFloor() []types.HallCall {
	floor := e.CurrentFloor
	e.CabCalls.Remove(floor)

	var served []types.HallCall
	serve := func(dir types.Direction) {
		if e.assigned(dir).Remove(floor) {
			served = append(served, types.HallCall{Floor: floor, Dir: dir})
		}
	}

	switch e.Dir {
	case types.Up, types.Down:
		continuing := e.assigned(e.Dir).Has(floor)
		serve(e.Dir)
		if !continuing && !e.stopsBeyond(floor, e.Dir) {
			serve(e.Dir.Opposite())
		}
	default:
		serve(types.Up)
		serve(types.Down)
	}
	return served
}

// chooseDirection is the collective-control rule.
//  1. Keep going while stops remain in the travel direction.
//  2. Open the doors for a stop at this floor.
//  3. Reverse if stops remain the other way, otherwise go idle.
//
// An idle car with stops on both sides prefers the direction of the latest hall call, else up.
func (e *Elevator) chooseDirection() types.DirnBehaviourPair {
	floor := e.CurrentFloor
	switch e.Dir {
	case types.Up, types.Down:
		switch {
		case e.stopsBeyond(floor, e.Dir):
			return types.DirnBehaviourPair{Dir: e.Dir, Behaviour: types.Moving}
		case e.CabCalls.Has(floor) || e.assigned(e.Dir).Has(floor):
			return types.DirnBehaviourPair{Dir: e.Dir, Behaviour: types.OpeningDoor}
		case e.hasStop(floor):
			return types.DirnBehaviourPair{Dir: e.Dir.Opposite(), Behaviour: types.OpeningDoor}
		case e.stopsBeyond(floor, e.Dir.Opposite()):
			return types.DirnBehaviourPair{Dir: e.Dir.Opposite(), Behaviour: types.Moving}
		}
	default:
		above, below := e.stopsAbove(floor), e.stopsBelow(floor)
		switch {
		case e.hasStop(floor):
			return types.DirnBehaviourPair{Dir: types.Stop, Behaviour: types.OpeningDoor}
		case above && below && e.LastHallDir == types.Down:
			return types.DirnBehaviourPair{Dir: types.Down, Behaviour: types.Moving}
		case above:
			return types.DirnBehaviourPair{Dir: types.Up, Behaviour: types.Moving}
		case below:
			return types.DirnBehaviourPair{Dir: types.Down, Behaviour: types.Moving}
		}
	}
	return types.DirnBehaviourPair{Dir: types.Stop, Behaviour: types.Idle}
}
