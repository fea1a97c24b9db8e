// Package planner computes robot coverage paths over rectangular walls with
// rectangular obstacles. A generated path never enters any obstacle plus its
// safety clearance; transitions the robot cannot make in contact with the
// wall are reported as lift-and-reposition moves.
package planner

import (
	"fmt"
	"math"
	"sort"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/geom"
	"github.com/kumar-ankit-100/wall-finishing-robot/internal/model"
)

// boundaryTol is the tolerance applied when deciding whether a waypoint sits
// on an obstacle boundary rather than inside it. Looser than geom.Tolerance
// because boundary points accumulate error over repeated stepping.
const boundaryTol = 1e-6

// Planner holds the immutable geometry model for a single planning call.
// It carries no state between calls; concurrent planners are independent.
type Planner struct {
	wall      geom.Rect
	obstacles []model.Obstacle
	expanded  []geom.Rect // obstacles grown by clearance, clamped to the wall
	settings  model.Settings
	warnings  []string
}

// New validates the inputs and builds the geometry model. All validation
// happens here; a non-nil Planner is always ready to plan.
func New(width, height float64, obstacles []model.Obstacle, settings model.Settings) (*Planner, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: wall must have positive size, got %gx%g m", ErrInvalidDimensions, width, height)
	}
	for i, obs := range obstacles {
		if obs.Width <= 0 || obs.Height <= 0 {
			return nil, fmt.Errorf("%w: obstacle %d has non-positive size %gx%g m", ErrInvalidObstacle, i, obs.Width, obs.Height)
		}
		if obs.Width > width || obs.Height > height {
			return nil, fmt.Errorf("%w: obstacle %d (%gx%g m) is larger than the wall (%gx%g m)",
				ErrInvalidObstacle, i, obs.Width, obs.Height, width, height)
		}
	}
	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	p := &Planner{
		wall:      geom.Rect{X: 0, Y: 0, Width: width, Height: height},
		obstacles: append([]model.Obstacle(nil), obstacles...),
		settings:  settings,
	}

	for i, obs := range p.obstacles {
		r := obs.Rect()
		// Obstacles outside the wall never affect interior points; keep them
		// but flag the anomaly.
		if !p.wall.Intersects(r) {
			p.warnings = append(p.warnings,
				fmt.Sprintf("obstacle %d at (%g, %g) lies outside the wall bounds", i, obs.X, obs.Y))
		}
		p.expanded = append(p.expanded, expandObstacle(r, settings.Clearance, width, height))
	}

	return p, nil
}

func validateSettings(s model.Settings) error {
	if s.Spacing <= 0 {
		return fmt.Errorf("%w: spacing must be positive, got %g m", ErrInvalidConfig, s.Spacing)
	}
	if s.Clearance < 0 {
		return fmt.Errorf("%w: clearance must be non-negative, got %g m", ErrInvalidConfig, s.Clearance)
	}
	if s.Resolution <= 0 || s.Resolution > s.Spacing {
		return fmt.Errorf("%w: resolution must be positive and at most the spacing, got %g m", ErrInvalidConfig, s.Resolution)
	}
	if s.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %g m/s", ErrInvalidConfig, s.Speed)
	}
	switch s.Pattern {
	case model.PatternZigzag, model.PatternSpiral:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be %q or %q)", ErrUnknownPattern, s.Pattern, model.PatternZigzag, model.PatternSpiral)
	}
}

// expandObstacle grows an obstacle by the clearance on every side and clamps
// the result to the wall: the origin never goes below zero and the far edge
// never extends past the wall. Overlapping expanded obstacles are left as-is;
// every check downstream is "inside any obstacle", which tolerates overlap.
func expandObstacle(r geom.Rect, clearance, wallWidth, wallHeight float64) geom.Rect {
	ex := math.Max(0, r.X-clearance)
	ey := math.Max(0, r.Y-clearance)
	return geom.Rect{
		X:      ex,
		Y:      ey,
		Width:  math.Min(r.Width+2*clearance, wallWidth-ex),
		Height: math.Min(r.Height+2*clearance, wallHeight-ey),
	}
}

// isPointValid reports whether a point lies inside the wall and outside every
// expanded obstacle.
func (p *Planner) isPointValid(x, y float64) bool {
	if !p.wall.ContainsPoint(x, y, geom.Tolerance) {
		return false
	}
	for _, obs := range p.expanded {
		if obs.ContainsPoint(x, y, geom.Tolerance) {
			return false
		}
	}
	return true
}

// span is a free horizontal interval in a sweep row.
type span struct {
	start, end float64
}

// freeSegmentsInRow returns the maximal obstacle-free horizontal intervals at
// height y, left to right. Along a fixed row, point validity can only change
// at an obstacle edge, so collecting edge breakpoints and testing the
// midpoint between consecutive ones is exact; no finer sampling is needed.
func (p *Planner) freeSegmentsInRow(y float64) []span {
	breaks := []float64{p.wall.X, p.wall.X2()}
	for _, obs := range p.expanded {
		// Same tolerance as isPointValid: a row within Tolerance of an
		// obstacle edge still has that obstacle's breakpoints, otherwise the
		// midpoint test would blank the whole row.
		if obs.Y-geom.Tolerance <= y && y <= obs.Y2()+geom.Tolerance {
			breaks = append(breaks, obs.X, obs.X2())
		}
	}
	sort.Float64s(breaks)

	var free []span
	for i := 0; i < len(breaks)-1; i++ {
		if breaks[i+1] <= breaks[i] {
			continue // duplicate breakpoint
		}
		mid := (breaks[i] + breaks[i+1]) / 2
		if p.isPointValid(mid, y) {
			free = append(free, span{start: breaks[i], end: breaks[i+1]})
		}
	}
	return free
}

// segmentCrossesObstacle reports whether the straight segment between two
// waypoints penetrates any expanded obstacle. Each obstacle is shrunk by the
// boundary tolerance first, so a segment that merely touches an edge does not
// count as a crossing. Horizontal and vertical segments are tested exactly;
// diagonal segments are sampled at a resolution-derived density, which is a
// conservative approximation rather than an exact intersection test.
func (p *Planner) segmentCrossesObstacle(a, b geom.Point) bool {
	for _, obs := range p.expanded {
		r := geom.Rect{
			X:      obs.X + boundaryTol,
			Y:      obs.Y + boundaryTol,
			Width:  obs.Width - 2*boundaryTol,
			Height: obs.Height - 2*boundaryTol,
		}
		if r.Width <= 0 || r.Height <= 0 {
			continue
		}
		switch {
		case math.Abs(a.Y-b.Y) < geom.Tolerance:
			if r.IntersectsHorizontalSegment(a.X, b.X, a.Y) {
				return true
			}
		case math.Abs(a.X-b.X) < geom.Tolerance:
			if r.IntersectsVerticalSegment(a.X, a.Y, b.Y) {
				return true
			}
		default:
			n := int(a.DistanceTo(b) / p.settings.Resolution)
			if n < 10 {
				n = 10
			}
			for i := 0; i <= n; i++ {
				t := float64(i) / float64(n)
				if r.ContainsPoint(a.X+t*(b.X-a.X), a.Y+t*(b.Y-a.Y), 0) {
					return true
				}
			}
		}
	}
	return false
}

// validatePathSafety checks every generated waypoint against every expanded
// obstacle. A point on an obstacle boundary (within boundaryTol) is a
// floating-point artifact and tolerated; a strictly interior point aborts the
// whole plan, because it means the generator is broken.
func (p *Planner) validatePathSafety(points []geom.Point) error {
	for _, pt := range points {
		for _, obs := range p.expanded {
			if !obs.ContainsPoint(pt.X, pt.Y, geom.Tolerance) {
				continue
			}
			if math.Abs(pt.X-obs.X) < boundaryTol || math.Abs(pt.X-obs.X2()) < boundaryTol ||
				math.Abs(pt.Y-obs.Y) < boundaryTol || math.Abs(pt.Y-obs.Y2()) < boundaryTol {
				continue
			}
			return fmt.Errorf("%w: (%.6f, %.6f) is inside obstacle at (%.3f, %.3f)",
				ErrUnsafePath, pt.X, pt.Y, obs.X, obs.Y)
		}
	}
	return nil
}
