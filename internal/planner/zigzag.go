package planner

import (
	"math"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/geom"
)

// planZigzag generates the boustrophedon pattern: horizontal sweep rows
// spaced Spacing apart, starting half a spacing above the bottom edge.
// Rows alternate direction so the row-to-row travel stays short. Within a
// row, only the obstacle-free intervals are traversed; the path makes no
// in-plane guarantee between rows or across an obstacle gap (those segments
// become lift moves).
func (p *Planner) planZigzag() []geom.Point {
	var points []geom.Point
	leftToRight := true

	for y := p.settings.Spacing / 2; y < p.wall.Height; y += p.settings.Spacing {
		var spans []span
		for _, s := range p.freeSegmentsInRow(y) {
			// Too narrow to traverse meaningfully.
			if s.end-s.start >= 2*p.settings.Resolution {
				spans = append(spans, s)
			}
		}

		if leftToRight {
			for _, s := range spans {
				points = p.appendRun(points, s.start, s.end, y)
			}
		} else {
			// Reverse pass: visit the intervals right to left, and walk each
			// one right to left too.
			for i := len(spans) - 1; i >= 0; i-- {
				points = p.appendRun(points, spans[i].end, spans[i].start, y)
			}
		}

		// Direction flips every row, even when the row produced no points.
		leftToRight = !leftToRight
	}

	return points
}

// appendRun emits waypoints from x=from to x=to at height y, one every
// Resolution meters, always landing exactly on the far end even when the run
// length is not a multiple of the resolution.
func (p *Planner) appendRun(points []geom.Point, from, to, y float64) []geom.Point {
	step := p.settings.Resolution
	if to < from {
		step = -step
	}

	n := int(math.Abs(to-from) / p.settings.Resolution)
	last := from
	for i := 0; i <= n; i++ {
		x := from + float64(i)*step
		if p.isPointValid(x, y) {
			points = append(points, geom.Point{X: x, Y: y})
		}
		last = x
	}
	if math.Abs(last-to) > geom.Tolerance && p.isPointValid(to, y) {
		points = append(points, geom.Point{X: to, Y: y})
	}
	return points
}
