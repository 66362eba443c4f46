package main

import (
	"fmt"
	"strings"

	"elevatorbank/src/building"
	"elevatorbank/src/types"
	"elevatorbank/src/utils"
)

var arrows = map[types.Direction]string{types.Up: "^", types.Down: "v", types.Stop: "-"}

// formatStatus renders one line per snapshot, e.g.
//
//	t=7 | E0 4^ Moving ->5 cab=[] | E1 1- Idle cab=[] | up=[5] down=[]
func formatStatus(snap building.State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "t=%d", snap.Tick)
	for _, elevator := range snap.Elevators {
		fmt.Fprintf(&sb, " | E%d %d%s %s", elevator.ID, elevator.CurrentFloor, arrows[elevator.Dir], elevator.Behaviour)
		if elevator.TargetFloor != types.NoFloor {
			fmt.Fprintf(&sb, " ->%d", elevator.TargetFloor)
		}
		fmt.Fprintf(&sb, " cab=%s", utils.FormatFloors(elevator.CabCalls))
	}
	fmt.Fprintf(&sb, " | up=%s down=%s", utils.FormatFloors(snap.CallsUp), utils.FormatFloors(snap.CallsDown))
	return sb.String()
}
