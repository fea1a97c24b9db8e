// Package geom provides the axis-aligned geometry primitives the coverage
// planner is built on. All coordinates are in meters.
package geom

import "math"

// Tolerance is the floating-point tolerance used by boundary-inclusive
// containment tests.
const Tolerance = 1e-9

// Point represents a 2D coordinate in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X      float64 `json:"x"`      // Left edge (m)
	Y      float64 `json:"y"`      // Bottom edge (m)
	Width  float64 `json:"width"`  // m
	Height float64 `json:"height"` // m
}

// X2 returns the right edge coordinate.
func (r Rect) X2() float64 { return r.X + r.Width }

// Y2 returns the top edge coordinate.
func (r Rect) Y2() float64 { return r.Y + r.Height }

// Area returns the rectangle area in square meters.
func (r Rect) Area() float64 { return r.Width * r.Height }

// ContainsPoint reports whether (x, y) lies inside the rectangle,
// boundary-inclusive within the given tolerance.
func (r Rect) ContainsPoint(x, y, tol float64) bool {
	return r.X-tol <= x && x <= r.X2()+tol &&
		r.Y-tol <= y && y <= r.Y2()+tol
}

// IntersectsHorizontalSegment reports whether the horizontal segment from
// (x1, y) to (x2, y) touches the rectangle. Endpoint order does not matter.
func (r Rect) IntersectsHorizontalSegment(x1, x2, y float64) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y < r.Y || y > r.Y2() {
		return false
	}
	return !(x2 < r.X || x1 > r.X2())
}

// IntersectsVerticalSegment reports whether the vertical segment from
// (x, y1) to (x, y2) touches the rectangle. Endpoint order does not matter.
func (r Rect) IntersectsVerticalSegment(x, y1, y2 float64) bool {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if x < r.X || x > r.X2() {
		return false
	}
	return !(y2 < r.Y || y1 > r.Y2())
}

// Intersects reports whether two rectangles overlap, edges included.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X2() < other.X || r.X > other.X2() ||
		r.Y2() < other.Y || r.Y > other.Y2())
}
