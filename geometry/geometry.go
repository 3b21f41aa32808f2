// Package geometry provides terminal-cell coordinates and the vector math
// used by the motion engine. Coordinates are column/row pairs with the origin
// at the top-left; values may fall outside the canvas while a character is
// traveling.
package geometry

import "math"

// Coord is a terminal cell position. Column and row may be negative for
// off-screen spawn points.
type Coord struct {
	Col int
	Row int
}

// Vec is a 2D vector in fractional cell units.
type Vec struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between two cells.
// Non-negative and symmetric.
func Distance(a, b Coord) float64 {
	dx := float64(b.Col - a.Col)
	dy := float64(b.Row - a.Row)
	return math.Sqrt(dx*dx + dy*dy)
}

// Direction returns the unit vector pointing from a to b, zero-safe.
func Direction(a, b Coord) Vec {
	dx := float64(b.Col - a.Col)
	dy := float64(b.Row - a.Row)
	mag := math.Sqrt(dx*dx + dy*dy)
	if mag == 0 {
		return Vec{}
	}
	return Vec{X: dx / mag, Y: dy / mag}
}

// PathLength returns the total length of the polyline through the given
// coordinates in traversal order.
func PathLength(coords []Coord) float64 {
	var total float64
	for i := 1; i < len(coords); i++ {
		total += Distance(coords[i-1], coords[i])
	}
	return total
}

// Lerp returns the cell at fraction t along the straight line from a to b,
// rounded to the nearest cell. t is clamped to [0, 1].
func Lerp(a, b Coord, t float64) Coord {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Coord{
		Col: a.Col + int(math.Round(float64(b.Col-a.Col)*t)),
		Row: a.Row + int(math.Round(float64(b.Row-a.Row)*t)),
	}
}

// Round converts a fractional position to the nearest cell.
func Round(x, y float64) Coord {
	return Coord{Col: int(math.Round(x)), Row: int(math.Round(y))}
}

// CirclePoints returns n cells evenly distributed on a circle around center.
// Rows are compressed by half to compensate for terminal cell aspect ratio.
func CirclePoints(center Coord, radius float64, n int) []Coord {
	if n <= 0 {
		return nil
	}
	points := make([]Coord, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Coord{
			Col: center.Col + int(math.Round(math.Cos(angle)*radius)),
			Row: center.Row + int(math.Round(math.Sin(angle)*radius*0.5)),
		})
	}
	return points
}
