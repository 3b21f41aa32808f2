package motion

import (
	"errors"
	"testing"

	"github.com/tjwei/terminaltexteffects/geometry"
)

func mustPath(t *testing.T, loop bool, wps ...Waypoint) *Path {
	t.Helper()
	p, err := NewPath(loop, wps...)
	if err != nil {
		t.Fatalf("NewPath failed: %v", err)
	}
	return p
}

func TestNewPathValidation(t *testing.T) {
	if _, err := NewPath(false); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Empty waypoint list: got %v, want ErrInvalidPath", err)
	}
	if _, err := NewPath(false, Waypoint{Speed: -1}); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Negative speed override: got %v, want ErrInvalidPath", err)
	}
	if _, err := NewPath(false, Waypoint{Hold: -1}); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Negative hold: got %v, want ErrInvalidPath", err)
	}
}

// ticksToSettle runs Tick until the mover settles, failing if it exceeds the
// bound.
func ticksToSettle(t *testing.T, m *Mover, bound int) int {
	t.Helper()
	for i := 1; i <= bound; i++ {
		m.Tick()
		if m.Settled() {
			return i
		}
	}
	t.Fatalf("Mover did not settle within %d ticks", bound)
	return 0
}

func TestZeroAccelTickCount(t *testing.T) {
	cases := []struct {
		dist  int
		speed float64
		want  int
	}{
		{5, 1.0, 5},
		{5, 2.0, 3},  // ceil(5/2)
		{5, 5.0, 1},  // lands on first step
		{5, 10.0, 1}, // overshoot still lands in one
		{3, 0.5, 6},
	}
	for _, c := range cases {
		p := mustPath(t, false, Waypoint{Target: geometry.Coord{Col: c.dist, Row: 0}})
		m := NewMover(p, c.speed, 0)
		m.Start(geometry.Coord{Col: 0, Row: 0})
		got := ticksToSettle(t, m, c.want+2)
		if got != c.want {
			t.Errorf("dist=%d speed=%g: settled after %d ticks, want %d", c.dist, c.speed, got, c.want)
		}
		if pos := m.Position(); pos != (geometry.Coord{Col: c.dist, Row: 0}) {
			t.Errorf("dist=%d speed=%g: final position %v", c.dist, c.speed, pos)
		}
	}
}

func TestOneCellPerTick(t *testing.T) {
	p := mustPath(t, false, Waypoint{Target: geometry.Coord{Col: 5, Row: 0}})
	m := NewMover(p, 1.0, 0)
	m.Start(geometry.Coord{Col: 0, Row: 0})
	for i := 1; i <= 5; i++ {
		m.Tick()
		if pos := m.Position(); pos.Col != i {
			t.Errorf("tick %d: col = %d, want %d", i, pos.Col, i)
		}
		if !m.Moved() {
			t.Errorf("tick %d: Moved() = false, want true", i)
		}
	}
	if !m.Settled() {
		t.Error("Expected settled after 5 ticks")
	}
	m.Tick()
	if m.Moved() {
		t.Error("Settled mover reports Moved()")
	}
}

func TestInstantTeleport(t *testing.T) {
	p := mustPath(t, false, Waypoint{Target: geometry.Coord{Col: 40, Row: 12}})
	m := NewMover(p, 0, 0)
	m.Start(geometry.Coord{Col: 0, Row: 0})
	m.Tick()
	if !m.Settled() {
		t.Fatal("Zero speed, zero accel should settle in one tick")
	}
	if pos := m.Position(); pos != (geometry.Coord{Col: 40, Row: 12}) {
		t.Errorf("Position = %v, want (40,12)", pos)
	}
}

func TestHoldArithmetic(t *testing.T) {
	p := mustPath(t, false,
		Waypoint{Target: geometry.Coord{Col: 2, Row: 0}, Hold: 3},
		Waypoint{Target: geometry.Coord{Col: 4, Row: 0}},
	)
	m := NewMover(p, 1.0, 0)
	m.Start(geometry.Coord{Col: 0, Row: 0})

	// 2 ticks to reach the first waypoint; landing tick begins the hold.
	m.Tick()
	m.Tick()
	if m.Phase() != PhaseHolding {
		t.Fatalf("Phase after landing = %v, want PhaseHolding", m.Phase())
	}
	if !m.Moved() {
		t.Error("Landing tick should report Moved()")
	}

	// 3 hold ticks, no movement during them.
	for i := 0; i < 3; i++ {
		m.Tick()
		if m.Moved() {
			t.Errorf("hold tick %d: Moved() = true", i)
		}
		if pos := m.Position(); pos != (geometry.Coord{Col: 2, Row: 0}) {
			t.Errorf("hold tick %d: position %v, want (2,0)", i, pos)
		}
	}
	if m.Phase() != PhaseMoving {
		t.Fatalf("Phase after hold = %v, want PhaseMoving", m.Phase())
	}

	// 2 more ticks to the final waypoint. Total: 2 + 3 + 2 = 7.
	m.Tick()
	m.Tick()
	if !m.Settled() {
		t.Error("Expected settled after hold plus second hop")
	}
	if pos := m.Position(); pos != (geometry.Coord{Col: 4, Row: 0}) {
		t.Errorf("Final position %v, want (4,0)", pos)
	}
}

func TestSingleWaypointAtStart(t *testing.T) {
	home := geometry.Coord{Col: 3, Row: 3}
	p := mustPath(t, false, Waypoint{Target: home})
	m := NewMover(p, 1.0, 0)
	m.Start(home)
	m.Tick()
	if !m.Settled() {
		t.Error("Zero-length hop should settle on the first tick")
	}
	if pos := m.Position(); pos != home {
		t.Errorf("Position = %v, want %v", pos, home)
	}
}

func TestLoopingNeverSettles(t *testing.T) {
	p := mustPath(t, true,
		Waypoint{Target: geometry.Coord{Col: 2, Row: 0}},
		Waypoint{Target: geometry.Coord{Col: 0, Row: 0}},
	)
	m := NewMover(p, 1.0, 0)
	m.Start(geometry.Coord{Col: 0, Row: 0})
	for i := 0; i < 50; i++ {
		m.Tick()
		if m.Settled() {
			t.Fatalf("Looping path settled at tick %d", i)
		}
	}
}

func TestAccelerationAndMaxSpeed(t *testing.T) {
	p := mustPath(t, false, Waypoint{Target: geometry.Coord{Col: 100, Row: 0}})
	m := NewMover(p, 0, 1.0)
	m.SetMaxSpeed(2.0)
	m.Start(geometry.Coord{Col: 0, Row: 0})

	m.Tick() // speed 1, at col 1
	if pos := m.Position(); pos.Col != 1 {
		t.Errorf("tick 1: col = %d, want 1", pos.Col)
	}
	m.Tick() // speed clamps to 2, at col 3
	if pos := m.Position(); pos.Col != 3 {
		t.Errorf("tick 2: col = %d, want 3", pos.Col)
	}
	m.Tick() // still 2, at col 5
	if pos := m.Position(); pos.Col != 5 {
		t.Errorf("tick 3: col = %d, want 5", pos.Col)
	}
}

func TestForceSettle(t *testing.T) {
	p := mustPath(t, false, Waypoint{Target: geometry.Coord{Col: 50, Row: 0}})
	m := NewMover(p, 0.1, 0)
	m.Start(geometry.Coord{Col: 0, Row: 0})
	m.Tick()
	m.ForceSettle(geometry.Coord{Col: 50, Row: 0})
	if !m.Settled() {
		t.Error("ForceSettle did not settle the mover")
	}
	if pos := m.Position(); pos != (geometry.Coord{Col: 50, Row: 0}) {
		t.Errorf("Position = %v, want (50,0)", pos)
	}
	m.Tick()
	if m.Moved() || !m.Settled() {
		t.Error("Settled mover changed state on Tick")
	}
}

func TestPerWaypointSpeedOverride(t *testing.T) {
	p := mustPath(t, false,
		Waypoint{Target: geometry.Coord{Col: 4, Row: 0}, Speed: 2.0},
		Waypoint{Target: geometry.Coord{Col: 8, Row: 0}},
	)
	m := NewMover(p, 1.0, 0)
	m.Start(geometry.Coord{Col: 0, Row: 0})

	// First hop at 2 cells/tick: 2 ticks. Second hop falls back to the base
	// speed of 1: 4 ticks.
	got := ticksToSettle(t, m, 10)
	if got != 6 {
		t.Errorf("Settled after %d ticks, want 6", got)
	}
}

