package geometry

import (
	"math"
	"testing"
)

func TestDistanceSymmetricNonNegative(t *testing.T) {
	pairs := []struct {
		a, b Coord
		want float64
	}{
		{Coord{0, 0}, Coord{0, 0}, 0},
		{Coord{0, 0}, Coord{5, 0}, 5},
		{Coord{0, 0}, Coord{3, 4}, 5},
		{Coord{-2, -1}, Coord{1, 3}, 5},
	}
	for _, p := range pairs {
		d1 := Distance(p.a, p.b)
		d2 := Distance(p.b, p.a)
		if d1 != d2 {
			t.Errorf("Distance(%v,%v)=%v but Distance(%v,%v)=%v", p.a, p.b, d1, p.b, p.a, d2)
		}
		if d1 < 0 {
			t.Errorf("Distance(%v,%v)=%v, want non-negative", p.a, p.b, d1)
		}
		if math.Abs(d1-p.want) > 1e-9 {
			t.Errorf("Distance(%v,%v)=%v, want %v", p.a, p.b, d1, p.want)
		}
	}
}

func TestDirectionUnit(t *testing.T) {
	v := Direction(Coord{0, 0}, Coord{3, 4})
	mag := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if math.Abs(mag-1) > 1e-9 {
		t.Errorf("Direction magnitude = %v, want 1", mag)
	}

	// Zero distance must not divide by zero
	z := Direction(Coord{2, 2}, Coord{2, 2})
	if z.X != 0 || z.Y != 0 {
		t.Errorf("Direction of identical coords = %v, want zero vector", z)
	}
}

func TestPathLength(t *testing.T) {
	coords := []Coord{{0, 0}, {3, 4}, {3, 10}}
	if got := PathLength(coords); math.Abs(got-11) > 1e-9 {
		t.Errorf("PathLength = %v, want 11", got)
	}
	if got := PathLength(nil); got != 0 {
		t.Errorf("PathLength(nil) = %v, want 0", got)
	}
}

func TestLerpClamps(t *testing.T) {
	a, b := Coord{0, 0}, Coord{10, 0}
	if got := Lerp(a, b, -0.5); got != a {
		t.Errorf("Lerp t<0 = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1.5); got != b {
		t.Errorf("Lerp t>1 = %v, want %v", got, b)
	}
	if got := Lerp(a, b, 0.5); got != (Coord{5, 0}) {
		t.Errorf("Lerp midpoint = %v, want (5,0)", got)
	}
}

func TestCirclePoints(t *testing.T) {
	center := Coord{10, 10}
	points := CirclePoints(center, 4, 8)
	if len(points) != 8 {
		t.Fatalf("Expected 8 points, got %d", len(points))
	}
	// First point sits on the positive column axis
	if points[0] != (Coord{14, 10}) {
		t.Errorf("First circle point = %v, want (14,10)", points[0])
	}
	if got := CirclePoints(center, 4, 0); got != nil {
		t.Errorf("CirclePoints with n=0 = %v, want nil", got)
	}
}
