// Package motion provides waypoint paths and the per-character kinematic
// state machine that advances a character along its path one tick at a time.
package motion

import (
	"errors"

	"github.com/tanema/gween/ease"

	"github.com/tjwei/terminaltexteffects/geometry"
)

// ErrInvalidPath reports a malformed waypoint list at construction time.
var ErrInvalidPath = errors.New("invalid path")

// Waypoint is a target cell with an optional pause on arrival and optional
// per-waypoint speed/acceleration overrides. A zero Speed or Accel inherits
// the mover's configured value. Immutable once the path is built.
type Waypoint struct {
	Target geometry.Coord

	// Hold is the number of ticks to pause after arriving.
	Hold int

	// Speed and Accel override the mover's values for the hop toward this
	// waypoint when non-zero.
	Speed float64
	Accel float64

	// Ease shapes progress along the hop. Nil means linear.
	Ease ease.TweenFunc
}

// Path is an ordered sequence of waypoints a character traverses. Traversal
// order is insertion order. A looping path restarts from the first waypoint
// after the last; a terminating path settles the character at the final
// waypoint.
type Path struct {
	waypoints []Waypoint
	loop      bool
}

// NewPath builds a path from one or more waypoints. Fails with ErrInvalidPath
// on an empty list or on negative per-waypoint overrides.
func NewPath(loop bool, waypoints ...Waypoint) (*Path, error) {
	if len(waypoints) == 0 {
		return nil, ErrInvalidPath
	}
	for _, wp := range waypoints {
		if wp.Hold < 0 || wp.Speed < 0 || wp.Accel < 0 {
			return nil, ErrInvalidPath
		}
	}
	return &Path{waypoints: append([]Waypoint(nil), waypoints...), loop: loop}, nil
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	return len(p.waypoints)
}

// Waypoint returns the waypoint at index i.
func (p *Path) Waypoint(i int) Waypoint {
	return p.waypoints[i]
}

// Final returns the last waypoint.
func (p *Path) Final() Waypoint {
	return p.waypoints[len(p.waypoints)-1]
}

// Loop reports whether the path restarts after its final waypoint.
func (p *Path) Loop() bool {
	return p.loop
}

// Length returns the straight-line length of the path from a starting cell
// through every waypoint in order.
func (p *Path) Length(from geometry.Coord) float64 {
	coords := make([]geometry.Coord, 0, len(p.waypoints)+1)
	coords = append(coords, from)
	for _, wp := range p.waypoints {
		coords = append(coords, wp.Target)
	}
	return geometry.PathLength(coords)
}
