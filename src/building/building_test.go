package building

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"
	"time"

	"elevatorbank/src/config"
	"elevatorbank/src/types"
)

func testConfig(homeFloors ...int) config.Config {
	return config.Config{
		NumFloors:              6,
		NumElevators:           len(homeFloors),
		HomeFloors:             homeFloors,
		TickInterval:           time.Second,
		TravelDuration:         time.Second,
		DoorTransitionDuration: time.Second,
		DoorOpenDuration:       2 * time.Second,
		LoadPenalty:            time.Second,
	}
}

func mustHallCall(t *testing.T, b *Building, floor int, dir types.Direction) (int, bool) {
	t.Helper()
	id, ok, err := b.RequestHallCall(floor, dir)
	if err != nil {
		t.Fatalf("hall call %d %s: %v", floor, dir, err)
	}
	return id, ok
}

func tickChecked(t *testing.T, b *Building, n int) {
	t.Helper()
	for range n {
		b.Tick()
		if err := b.Snapshot().CheckInvariants(); err != nil {
			t.Fatalf("tick %d: %v", b.Snapshot().Tick, err)
		}
	}
}

func TestHallCallScenario(t *testing.T) {
	b := New(testConfig(1, 1))
	id, ok := mustHallCall(t, b, 5, types.Up)
	if !ok || id != 0 {
		t.Fatalf("expected dispatch to elevator 0, got %d ok=%t", id, ok)
	}

	snap := b.Snapshot()
	e0 := snap.Elevators[0]
	if e0.Behaviour != types.Moving || e0.TargetFloor != 5 {
		t.Errorf("expected elevator 0 moving to 5, got %s target %d", e0.Behaviour, e0.TargetFloor)
	}
	if !snap.Lamp(5, types.Up) {
		t.Error("hall lamp not lit")
	}
	if snap.Elevators[1].Behaviour != types.Idle {
		t.Error("elevator 1 should stay idle")
	}

	tickChecked(t, b, 4)
	snap = b.Snapshot()
	e0 = snap.Elevators[0]
	if e0.CurrentFloor != 5 || e0.DoorState != types.DoorOpening {
		t.Errorf("expected doors opening at 5, got floor %d doors %s", e0.CurrentFloor, e0.DoorState)
	}
	if snap.Lamp(5, types.Up) {
		t.Error("hall lamp still lit after arrival")
	}
}

func TestHallCallIdempotent(t *testing.T) {
	b := New(testConfig(1, 1))
	mustHallCall(t, b, 4, types.Down)
	once := b.Snapshot()

	if _, ok := mustHallCall(t, b, 4, types.Down); ok {
		t.Error("second identical call was dispatched")
	}
	if !reflect.DeepEqual(once, b.Snapshot()) {
		t.Error("second identical call changed the building state")
	}
}

func TestHallCallSuppressedWhenDoorsOpen(t *testing.T) {
	b := New(testConfig(3, 1))
	if _, err := b.RequestCabCall(0, 3); err != nil {
		t.Fatal(err)
	}
	tickChecked(t, b, 1)
	if snap := b.Snapshot(); snap.Elevators[0].DoorState != types.DoorOpen {
		t.Fatalf("setup: expected doors open, got %s", snap.Elevators[0].DoorState)
	}

	before := b.Snapshot()
	if _, ok := mustHallCall(t, b, 3, types.Up); ok {
		t.Error("call at a floor with open doors was dispatched")
	}
	after := b.Snapshot()
	if after.Lamp(3, types.Up) {
		t.Error("lamp lit for suppressed call")
	}
	if !reflect.DeepEqual(before, after) {
		t.Error("suppressed call changed the building state")
	}
}

func TestHallCallReopensClosingDoors(t *testing.T) {
	b := New(testConfig(3, 1))
	b.RequestCabCall(0, 3)
	tickChecked(t, b, 3)
	if snap := b.Snapshot(); snap.Elevators[0].DoorState != types.DoorClosing {
		t.Fatalf("setup: expected doors closing, got %s", snap.Elevators[0].DoorState)
	}

	id, ok := mustHallCall(t, b, 3, types.Up)
	if !ok || id != 0 {
		t.Fatalf("expected dispatch to elevator 0, got %d ok=%t", id, ok)
	}
	snap := b.Snapshot()
	if snap.Elevators[0].DoorState != types.DoorOpening {
		t.Errorf("expected doors reopening, got %s", snap.Elevators[0].DoorState)
	}
	if snap.Lamp(3, types.Up) {
		t.Error("call served on the spot but lamp still lit")
	}
	if err := snap.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestReversalPenaltyScenario(t *testing.T) {
	b := New(testConfig(2, 1))
	if id, _ := mustHallCall(t, b, 6, types.Down); id != 0 {
		t.Fatalf("setup: expected elevator 0 to take 6 down, got %d", id)
	}
	if e0 := b.Snapshot().Elevators[0]; e0.Dir != types.Up || !e0.IsMoving {
		t.Fatalf("setup: elevator 0 should move up, got %+v", e0)
	}

	id, _ := mustHallCall(t, b, 4, types.Down)
	if id != 1 {
		t.Errorf("expected the idle elevator 1 to win, got %d", id)
	}
	snap := b.Snapshot()
	if owner := snap.Owner(types.HallCall{Floor: 4, Dir: types.Down}); owner != 1 {
		t.Errorf("expected owner 1, got %d", owner)
	}
}

func TestRejectsInvalidCalls(t *testing.T) {
	b := New(testConfig(1, 1))
	tests := []struct {
		floor int
		dir   types.Direction
		want  error
	}{
		{0, types.Up, ErrInvalidFloor},
		{7, types.Down, ErrInvalidFloor},
		{6, types.Up, ErrInvalidDirection},
		{1, types.Down, ErrInvalidDirection},
		{3, types.Stop, ErrInvalidDirection},
	}
	for _, tt := range tests {
		if _, _, err := b.RequestHallCall(tt.floor, tt.dir); !errors.Is(err, tt.want) {
			t.Errorf("hall call %d %s: expected %v, got %v", tt.floor, tt.dir, tt.want, err)
		}
	}
	if _, err := b.RequestCabCall(2, 3); !errors.Is(err, ErrUnknownElevator) {
		t.Errorf("expected ErrUnknownElevator, got %v", err)
	}
	if _, err := b.RequestCabCall(0, 9); !errors.Is(err, ErrInvalidFloor) {
		t.Errorf("expected ErrInvalidFloor, got %v", err)
	}
	if !b.Idle() {
		t.Error("rejected calls changed the building")
	}
}

func TestCabCallIdempotent(t *testing.T) {
	b := New(testConfig(1, 1))
	if ok, _ := b.RequestCabCall(1, 4); !ok {
		t.Fatal("cab call ignored")
	}
	once := b.Snapshot()
	if ok, _ := b.RequestCabCall(1, 4); ok {
		t.Error("second cab call reported a change")
	}
	if !reflect.DeepEqual(once, b.Snapshot()) {
		t.Error("second cab call changed the building state")
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	b := New(testConfig(1, 1))
	mustHallCall(t, b, 4, types.Up)

	snap := b.Snapshot()
	snap.CallsUp.Remove(4)
	snap.Elevators[0].AssignedUp.Remove(4)
	snap.Elevators[0].CurrentFloor = 6

	live := b.Snapshot()
	if !live.Lamp(4, types.Up) || !live.Elevators[0].AssignedUp.Has(4) || live.Elevators[0].CurrentFloor != 1 {
		t.Error("mutating a snapshot leaked into the building")
	}
}

func TestRandomWorkloadKeepsInvariantsAndDrains(t *testing.T) {
	cfg := testConfig(1, 3, 6)
	b := New(cfg)
	rng := rand.New(rand.NewPCG(1, 2))

	for range 300 {
		switch rng.IntN(4) {
		case 0:
			floor := 1 + rng.IntN(cfg.NumFloors-1)
			b.RequestHallCall(floor, types.Up)
		case 1:
			floor := 2 + rng.IntN(cfg.NumFloors-1)
			b.RequestHallCall(floor, types.Down)
		case 2:
			b.RequestCabCall(rng.IntN(cfg.NumElevators), 1+rng.IntN(cfg.NumFloors))
		}
		if err := b.Snapshot().CheckInvariants(); err != nil {
			t.Fatalf("after request: %v", err)
		}
		tickChecked(t, b, 1)
	}

	for range 500 {
		if b.Idle() {
			return
		}
		tickChecked(t, b, 1)
	}
	snap := b.Snapshot()
	t.Fatalf("building never drained: up=%v down=%v", snap.CallsUp.Slice(), snap.CallsDown.Slice())
}

func TestLampChanges(t *testing.T) {
	b := New(testConfig(1, 1))
	prev := b.Snapshot()
	mustHallCall(t, b, 5, types.Up)
	b.RequestCabCall(1, 3)
	next := b.Snapshot()

	hall := HallLampChanges(prev, next)
	if !slices.Equal(hall, []LampChange{{ElevatorID: -1, Floor: 5, Dir: types.Up, Lit: true}}) {
		t.Errorf("unexpected hall lamp changes %v", hall)
	}
	cab := CabLampChanges(prev, next)
	if !slices.Equal(cab, []LampChange{{ElevatorID: 1, Floor: 3, Dir: types.Stop, Lit: true}}) {
		t.Errorf("unexpected cab lamp changes %v", cab)
	}

	tickChecked(t, b, 4)
	hall = HallLampChanges(next, b.Snapshot())
	if !slices.Equal(hall, []LampChange{{ElevatorID: -1, Floor: 5, Dir: types.Up, Lit: false}}) {
		t.Errorf("expected lamp 5 up to go out, got %v", hall)
	}
}
