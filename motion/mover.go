package motion

import (
	"math"

	"github.com/tjwei/terminaltexteffects/geometry"
)

// Phase is the kinematic state of a mover.
type Phase uint8

const (
	PhasePending Phase = iota // not yet admitted, no position
	PhaseMoving               // advancing toward the current waypoint
	PhaseHolding              // parked at a waypoint, hold counter running
	PhaseSettled              // final waypoint of a non-looping path reached
)

// DefaultMaxSpeed is the framework speed ceiling in cells per tick. The step
// toward a waypoint is additionally clamped to land exactly on it, so the
// ceiling only bounds how fast a character may travel mid-hop.
const DefaultMaxSpeed = 10.0

// Mover advances a character along its path. Position is fractional
// internally for smooth sub-tick interpolation and rounded to the nearest
// cell for rendering. Mutated only by Tick.
type Mover struct {
	path  *Path
	idx   int
	phase Phase

	x, y float64

	baseSpeed float64
	baseAccel float64
	maxSpeed  float64

	speed float64
	accel float64

	hold int

	segStartX float64
	segStartY float64
	segDist   float64
	traveled  float64

	moved bool
}

// NewMover creates a mover for the given path with base speed (cells/tick)
// and acceleration (speed change/tick). The mover stays pending until Start
// is called.
func NewMover(path *Path, speed, accel float64) *Mover {
	return &Mover{
		path:      path,
		baseSpeed: speed,
		baseAccel: accel,
		maxSpeed:  DefaultMaxSpeed,
	}
}

// SetMaxSpeed replaces the default speed ceiling.
func (m *Mover) SetMaxSpeed(limit float64) {
	if limit > 0 {
		m.maxSpeed = limit
	}
}

// Path returns the path this mover traverses.
func (m *Mover) Path() *Path {
	return m.path
}

// Phase returns the current kinematic state.
func (m *Mover) Phase() Phase {
	return m.phase
}

// Settled reports whether the final waypoint of a non-looping path has been
// reached.
func (m *Mover) Settled() bool {
	return m.phase == PhaseSettled
}

// Moved reports whether the last Tick changed or confirmed the mover's
// position along the path. False during holds and after settling.
func (m *Mover) Moved() bool {
	return m.moved
}

// Position returns the current cell, rounding the fractional position.
func (m *Mover) Position() geometry.Coord {
	return geometry.Round(m.x, m.y)
}

// Start places the mover at the given cell and begins the first hop.
func (m *Mover) Start(at geometry.Coord) {
	m.x = float64(at.Col)
	m.y = float64(at.Row)
	m.idx = 0
	m.phase = PhaseMoving
	m.beginSegment()
}

// ForceSettle parks the mover at the given cell in the settled state. Used
// when an interrupted animation flushes its final frame.
func (m *Mover) ForceSettle(at geometry.Coord) {
	m.x = float64(at.Col)
	m.y = float64(at.Row)
	m.phase = PhaseSettled
	m.moved = false
}

// Tick advances the mover by one frame.
func (m *Mover) Tick() {
	m.moved = false

	switch m.phase {
	case PhasePending, PhaseSettled:
		return

	case PhaseHolding:
		m.hold--
		if m.hold <= 0 {
			m.advance()
		}
		return

	case PhaseMoving:
		m.step()
	}
}

func (m *Mover) step() {
	remaining := m.segDist - m.traveled
	if remaining <= 0 {
		m.land()
		return
	}

	// Zero speed with no acceleration means the full hop happens instantly.
	// Used by effects that animate color only.
	if m.speed == 0 && m.accel == 0 {
		m.traveled = m.segDist
		m.land()
		return
	}

	m.speed += m.accel
	if m.speed > m.maxSpeed {
		m.speed = m.maxSpeed
	}

	if m.speed >= remaining {
		// Clamp the step to land exactly on the waypoint.
		m.traveled = m.segDist
		m.land()
		return
	}

	m.traveled += m.speed
	m.updatePosition()
	m.moved = true
}

// land snaps to the current waypoint and either holds, advances, or settles.
func (m *Mover) land() {
	wp := m.path.Waypoint(m.idx)
	m.x = float64(wp.Target.Col)
	m.y = float64(wp.Target.Row)
	m.moved = true

	if wp.Hold > 0 {
		m.phase = PhaseHolding
		m.hold = wp.Hold
		return
	}
	m.advance()
}

// advance moves to the next waypoint, loops, or settles.
func (m *Mover) advance() {
	m.idx++
	if m.idx >= m.path.Len() {
		if m.path.Loop() {
			m.idx = 0
		} else {
			m.phase = PhaseSettled
			return
		}
	}
	m.phase = PhaseMoving
	m.beginSegment()
}

// beginSegment prepares the hop from the current position toward the current
// waypoint, applying per-waypoint overrides.
func (m *Mover) beginSegment() {
	wp := m.path.Waypoint(m.idx)

	m.segStartX = m.x
	m.segStartY = m.y
	dx := float64(wp.Target.Col) - m.x
	dy := float64(wp.Target.Row) - m.y
	m.segDist = math.Sqrt(dx*dx + dy*dy)
	m.traveled = 0

	m.speed = m.baseSpeed
	if wp.Speed != 0 {
		m.speed = wp.Speed
	}
	m.accel = m.baseAccel
	if wp.Accel != 0 {
		m.accel = wp.Accel
	}
}

func (m *Mover) updatePosition() {
	wp := m.path.Waypoint(m.idx)
	frac := m.traveled / m.segDist
	if wp.Ease != nil {
		frac = float64(wp.Ease(float32(m.traveled), 0, 1, float32(m.segDist)))
	}
	m.x = m.segStartX + (float64(wp.Target.Col)-m.segStartX)*frac
	m.y = m.segStartY + (float64(wp.Target.Row)-m.segStartY)*frac
}
