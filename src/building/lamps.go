package building

import (
	"elevatorbank/src/types"
	"elevatorbank/src/utils"
)

// LampChange is a button lamp that differs between two snapshots. ElevatorID is -1 for hall buttons.
type LampChange struct {
	ElevatorID int
	Floor      int
	Dir        types.Direction
	Lit        bool
}

// HallLampChanges lists hall button lamps that changed from prev to next.
func HallLampChanges(prev, next State) []LampChange {
	var changes []LampChange
	for _, dir := range []types.Direction{types.Up, types.Down} {
		utils.ForEachFloor(next.callSet(dir), func(floor int) {
			if lit := next.Lamp(floor, dir); lit != prev.Lamp(floor, dir) {
				changes = append(changes, LampChange{ElevatorID: -1, Floor: floor, Dir: dir, Lit: lit})
			}
		})
	}
	return changes
}

// CabLampChanges lists cab button lamps that changed from prev to next.
func CabLampChanges(prev, next State) []LampChange {
	var changes []LampChange
	for i, elevator := range next.Elevators {
		if i >= len(prev.Elevators) {
			break
		}
		before := prev.Elevators[i].CabCalls
		utils.ForEachFloor(elevator.CabCalls, func(floor int) {
			if lit := elevator.CabCalls.Has(floor); lit != before.Has(floor) {
				changes = append(changes, LampChange{ElevatorID: elevator.ID, Floor: floor, Dir: types.Stop, Lit: lit})
			}
		})
	}
	return changes
}
