package building

import (
	"errors"
	"fmt"

	"elevatorbank/src/types"
	"elevatorbank/src/utils"
)

func (s State) callSet(dir types.Direction) types.FloorSet {
	if dir == types.Up {
		return s.CallsUp
	}
	return s.CallsDown
}

// Lamp reports whether the hall button for floor and dir is lit.
func (s State) Lamp(floor int, dir types.Direction) bool {
	return s.callSet(dir).Has(floor)
}

// Idle reports whether every car stands with closed doors and no call is pending.
func (s State) Idle() bool {
	for i := range s.Elevators {
		if s.Elevators[i].Behaviour != types.Idle || s.Elevators[i].HasPendingStops() {
			return false
		}
	}
	return s.CallsUp.Empty() && s.CallsDown.Empty()
}

// Owner returns the id of the elevator committed to a hall call, or -1.
func (s State) Owner(call types.HallCall) int {
	for i := range s.Elevators {
		if assignedSet(&s.Elevators[i], call.Dir).Has(call.Floor) {
			return s.Elevators[i].ID
		}
	}
	return -1
}

// CheckInvariants verifies the consistency rules the mutation helpers are supposed to keep:
//   - no hall call is owned by two elevators
//   - a lit hall button has an owner and every owned call is lit
//   - a moving car has closed doors
func (s State) CheckInvariants() error {
	var errs []error
	for _, dir := range []types.Direction{types.Up, types.Down} {
		utils.ForEachFloor(s.callSet(dir), func(floor int) {
			call := types.HallCall{Floor: floor, Dir: dir}
			owners := 0
			for i := range s.Elevators {
				if assignedSet(&s.Elevators[i], dir).Has(floor) {
					owners++
				}
			}
			if owners > 1 {
				errs = append(errs, fmt.Errorf("%s owned by %d elevators", call, owners))
			}
			if lit := s.Lamp(floor, dir); lit != (owners > 0) {
				errs = append(errs, fmt.Errorf("%s lamp %t with %d owners", call, lit, owners))
			}
		})
	}
	for _, elevator := range s.Elevators {
		if elevator.IsMoving && elevator.DoorState != types.DoorClosed {
			errs = append(errs, fmt.Errorf("elevator %d moving with doors %s", elevator.ID, elevator.DoorState))
		}
		if elevator.IsMoving != (elevator.Behaviour == types.Moving) {
			errs = append(errs, fmt.Errorf("elevator %d behaviour %s disagrees with IsMoving", elevator.ID, elevator.Behaviour))
		}
	}
	return errors.Join(errs...)
}
