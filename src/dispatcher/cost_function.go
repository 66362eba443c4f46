package dispatcher

import (
	"time"

	"elevatorbank/src/config"
	"elevatorbank/src/elev"
	"elevatorbank/src/types"
)

// Cost estimates how long it takes elevator to reach a hall call.
//   - idle cars pay the plain distance
//   - cars already heading the requested way with the floor still ahead pay the distance along their path
//   - every other car first finishes its current sweep, then comes back (reversal penalty)
//   - each hall call the car already holds adds cfg.LoadPenalty
func Cost(call types.HallCall, elevator elev.Elevator, cfg config.Config) time.Duration {
	floors := floorsToServe(call, elevator)
	cost := time.Duration(floors) * cfg.TravelDuration
	cost += time.Duration(elevator.AssignedCount()) * cfg.LoadPenalty
	return cost
}

func floorsToServe(call types.HallCall, elevator elev.Elevator) int {
	here := elevator.CurrentFloor
	if elevator.Dir == types.Stop {
		return abs(here - call.Floor)
	}
	if elevator.Dir == call.Dir && isAhead(call.Floor, elevator) {
		return abs(here - call.Floor)
	}
	farthest := elevator.FarthestStop(elevator.Dir)
	return abs(farthest-here) + abs(farthest-call.Floor)
}

// isAhead reports whether floor still lies on the car's path. A moving car has already left CurrentFloor.
func isAhead(floor int, elevator elev.Elevator) bool {
	if floor == elevator.CurrentFloor {
		return !elevator.IsMoving
	}
	return types.DirectionTo(elevator.CurrentFloor, floor) == elevator.Dir
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
