package dispatcher

import (
	"log/slog"
	"time"

	"elevatorbank/src/config"
	"elevatorbank/src/elev"
	"elevatorbank/src/types"
)

// Bid is one elevator's cost for a hall call.
type Bid struct {
	ElevatorID int
	Cost       time.Duration
}

// Costs scores every elevator for the call, in fleet order.
func Costs(call types.HallCall, elevators []elev.Elevator, cfg config.Config) []Bid {
	bids := make([]Bid, 0, len(elevators))
	for _, elevator := range elevators {
		bids = append(bids, Bid{ElevatorID: elevator.ID, Cost: Cost(call, elevator, cfg)})
	}
	return bids
}

// Assign recommends the elevator that should serve call. It reads the given state only and never mutates it;
// committing the assignment is up to the caller. The fleet is never empty, so some elevator is always chosen.
func Assign(call types.HallCall, elevators []elev.Elevator, cfg config.Config) int {
	if len(elevators) == 0 {
		panic("dispatcher: empty fleet")
	}
	bids := Costs(call, elevators, cfg)
	assignee := findAssignee(bids)
	slog.Debug("Assigning hall call", "call", call, "elevator", assignee, "bids", bids)
	return assignee
}

// findAssignee picks the lowest cost, ties broken by lowest elevator id.
func findAssignee(bids []Bid) int {
	best := bids[0]
	for _, bid := range bids[1:] {
		if bid.Cost < best.Cost || (bid.Cost == best.Cost && bid.ElevatorID < best.ElevatorID) {
			best = bid
		}
	}
	return best.ElevatorID
}
