package utils

import (
	"fmt"

	"elevatorbank/src/types"
)

// ForEachFloor is a helper function that reduces indentation when visiting every floor of a set
func ForEachFloor(fs types.FloorSet, action func(floor int)) {
	for floor := 1; floor < len(fs.Floors); floor++ {
		action(floor)
	}
}

// FormatFloors renders a set as "{2 5}", or "{}" when empty
func FormatFloors(fs types.FloorSet) string {
	return fmt.Sprint(fs.Slice())
}
