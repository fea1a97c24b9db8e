package planner

import (
	"testing"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/model"
)

func TestSpiralEmptyWall(t *testing.T) {
	s := newTestSettings()
	p := mustPlanner(t, 2, 2, nil, s)

	points := p.planSpiral()
	if len(points) == 0 {
		t.Fatal("expected points for an empty wall")
	}
	for _, pt := range points {
		if pt.X < 0 || pt.X > 2 || pt.Y < 0 || pt.Y > 2 {
			t.Fatalf("point (%g, %g) outside wall", pt.X, pt.Y)
		}
	}
	// The outermost ring starts half a spacing in from the wall corner.
	if points[0].X != s.Spacing/2 || points[0].Y != s.Spacing/2 {
		t.Errorf("expected first point at (%g, %g), got (%g, %g)",
			s.Spacing/2, s.Spacing/2, points[0].X, points[0].Y)
	}
}

func TestSpiralRingsMoveInward(t *testing.T) {
	s := newTestSettings()
	p := mustPlanner(t, 2, 2, nil, s)

	points := p.planSpiral()

	// Ring membership shows up as the minimum coordinate of a point; later
	// points never return to the outermost ring once an inner ring starts.
	first := points[0]
	last := points[len(points)-1]
	if !(last.X > first.X && last.Y > first.Y) {
		t.Errorf("expected final ring strictly inside the first: first (%g, %g), last (%g, %g)",
			first.X, first.Y, last.X, last.Y)
	}
}

func TestSpiralSkipsObstaclePoints(t *testing.T) {
	s := newTestSettings()
	s.Spacing = 0.2
	s.Resolution = 0.1
	obstacles := []model.Obstacle{{X: 0.8, Y: 0.8, Width: 0.4, Height: 0.4}}
	p := mustPlanner(t, 2, 2, obstacles, s)

	points := p.planSpiral()
	if len(points) == 0 {
		t.Fatal("expected points despite obstacle")
	}
	if err := p.validatePathSafety(points); err != nil {
		t.Fatalf("spiral produced unsafe points: %v", err)
	}
}

func TestSpiralDegenerateWall(t *testing.T) {
	// The very first ring already collapses below the resolution, so the
	// spiral yields nothing and Plan reports an empty path.
	s := newTestSettings()
	s.Pattern = model.PatternSpiral
	s.Spacing = 0.2
	s.Resolution = 0.2
	p := mustPlanner(t, 0.3, 0.3, nil, s)

	if points := p.planSpiral(); len(points) != 0 {
		t.Fatalf("expected no points on a degenerate wall, got %d", len(points))
	}
}
