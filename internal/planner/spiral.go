package planner

import (
	"math"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/geom"
)

// planSpiral generates concentric rectangular rings from the wall perimeter
// inward, starting half a spacing in from the edge and moving a full spacing
// further in per ring. Each ring's perimeter is sampled every
// Resolution meters; points falling inside an expanded obstacle are simply
// skipped rather than detoured around, which is deliberately conservative.
// Rings are concatenated directly, so the hop from one ring's end to the
// next ring's start is an implicit transition like the zigzag's row changes.
func (p *Planner) planSpiral() []geom.Point {
	var points []geom.Point
	res := p.settings.Resolution
	maxOffset := math.Max(p.wall.Width, p.wall.Height)

	for offset := p.settings.Spacing / 2; offset < maxOffset; offset += p.settings.Spacing {
		ring := geom.Rect{
			X:      offset,
			Y:      offset,
			Width:  p.wall.Width - 2*offset,
			Height: p.wall.Height - 2*offset,
		}
		// The shrunk rectangle has collapsed; the spiral is complete.
		if ring.Width <= res || ring.Height <= res {
			break
		}

		// Bottom edge, left to right.
		for x := ring.X; x <= ring.X2(); x += res {
			points = p.appendIfValid(points, x, ring.Y)
		}
		// Right edge, bottom to top, skipping the corner just emitted.
		for y := ring.Y + res; y <= ring.Y2(); y += res {
			points = p.appendIfValid(points, ring.X2(), y)
		}
		// Top edge, right to left.
		for x := ring.X2() - res; x >= ring.X; x -= res {
			points = p.appendIfValid(points, x, ring.Y2())
		}
		// Left edge, top to bottom, stopping short of the starting corner.
		for y := ring.Y2() - res; y > ring.Y+res; y -= res {
			points = p.appendIfValid(points, ring.X, y)
		}
	}

	return points
}

func (p *Planner) appendIfValid(points []geom.Point, x, y float64) []geom.Point {
	if p.isPointValid(x, y) {
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points
}
