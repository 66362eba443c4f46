package types

import "slices"

// FloorSet holds the on/off state of floors 1..n. Floors are exported so the set survives a deep copy.
type FloorSet struct {
	Floors []bool
}

func NewFloorSet(numFloors int) FloorSet {
	return FloorSet{Floors: make([]bool, numFloors+1)}
}

func (fs FloorSet) valid(floor int) bool {
	return floor >= 1 && floor < len(fs.Floors)
}

func (fs FloorSet) Has(floor int) bool {
	return fs.valid(floor) && fs.Floors[floor]
}

// Add sets floor and reports whether it was newly added.
func (fs FloorSet) Add(floor int) bool {
	if !fs.valid(floor) || fs.Floors[floor] {
		return false
	}
	fs.Floors[floor] = true
	return true
}

// Remove clears floor and reports whether it was present.
func (fs FloorSet) Remove(floor int) bool {
	if !fs.Has(floor) {
		return false
	}
	fs.Floors[floor] = false
	return true
}

func (fs FloorSet) Len() int {
	n := 0
	for _, set := range fs.Floors {
		if set {
			n++
		}
	}
	return n
}

func (fs FloorSet) Empty() bool {
	return !slices.Contains(fs.Floors, true)
}

// AnyBetween reports whether a floor in the open interval (lo, hi) is set.
func (fs FloorSet) AnyBetween(lo, hi int) bool {
	for floor := max(lo+1, 1); floor < hi && floor < len(fs.Floors); floor++ {
		if fs.Floors[floor] {
			return true
		}
	}
	return false
}

// Lowest returns the lowest set floor, NoFloor if empty.
func (fs FloorSet) Lowest() int {
	for floor := 1; floor < len(fs.Floors); floor++ {
		if fs.Floors[floor] {
			return floor
		}
	}
	return NoFloor
}

// Highest returns the highest set floor, NoFloor if empty.
func (fs FloorSet) Highest() int {
	for floor := len(fs.Floors) - 1; floor >= 1; floor-- {
		if fs.Floors[floor] {
			return floor
		}
	}
	return NoFloor
}

// Slice lists the set floors in ascending order.
func (fs FloorSet) Slice() []int {
	floors := []int{}
	for floor := 1; floor < len(fs.Floors); floor++ {
		if fs.Floors[floor] {
			floors = append(floors, floor)
		}
	}
	return floors
}
