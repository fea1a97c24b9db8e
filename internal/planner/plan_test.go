package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/model"
)

// insideAnyExpanded reports whether a plan waypoint lies strictly inside any
// expanded obstacle (beyond the boundary tolerance).
func insideAnyExpanded(p *Planner, x, y float64) bool {
	for _, obs := range p.expanded {
		if !obs.ContainsPoint(x, y, 0) {
			continue
		}
		onBoundary := math.Abs(x-obs.X) < boundaryTol || math.Abs(x-obs.X2()) < boundaryTol ||
			math.Abs(y-obs.Y) < boundaryTol || math.Abs(y-obs.Y2()) < boundaryTol
		if !onBoundary {
			return true
		}
	}
	return false
}

// TestPlanAssignmentWall covers the reference job: a 5x5 m wall with a small
// window, planned with a fine zigzag.
func TestPlanAssignmentWall(t *testing.T) {
	s := model.Settings{
		Pattern:    model.PatternZigzag,
		Spacing:    0.05,
		Clearance:  0.02,
		Resolution: 0.01,
		Speed:      0.1,
	}
	obstacles := []model.Obstacle{{X: 2, Y: 2, Width: 0.25, Height: 0.25}}

	p, err := New(5, 5, obstacles, s)
	require.NoError(t, err)
	result, err := p.Plan()
	require.NoError(t, err)

	assert.Greater(t, result.PointCount, 0)
	assert.Len(t, result.Points, result.PointCount)

	for _, pt := range result.Points {
		assert.GreaterOrEqual(t, pt.X, 0.0)
		assert.LessOrEqual(t, pt.X, 5.0)
		assert.GreaterOrEqual(t, pt.Y, 0.0)
		assert.LessOrEqual(t, pt.Y, 5.0)
		if insideAnyExpanded(p, pt.X, pt.Y) {
			t.Fatalf("point (%g, %g) inside expanded obstacle", pt.X, pt.Y)
		}
	}

	// One 0.25x0.25 window on a 25 m^2 wall: efficiency just under 100%.
	assert.Greater(t, result.CoverageEfficiencyPct, 99.0)
	assert.Less(t, result.CoverageEfficiencyPct, 100.0)

	// The zigzag jumps over the window, so at least one lift move exists.
	assert.Greater(t, result.LiftCount(), 0)
}

func TestPlanSpiralNoObstacles(t *testing.T) {
	s := model.Settings{
		Pattern:    model.PatternSpiral,
		Spacing:    0.2,
		Clearance:  0.02,
		Resolution: 0.01,
		Speed:      0.1,
	}
	result, err := CreatePlan(2, 2, nil, s)
	require.NoError(t, err)

	assert.Greater(t, result.PointCount, 0)
	assert.Equal(t, 100.0, result.CoverageEfficiencyPct)
	assert.Empty(t, result.Lifts)
}

func TestPlanObstacleLargerThanWall(t *testing.T) {
	s := model.DefaultSettings()
	_, err := CreatePlan(5, 5, []model.Obstacle{{X: 0, Y: 0, Width: 10, Height: 10}}, s)
	assert.ErrorIs(t, err, ErrInvalidObstacle)
}

func TestPlanResolutionAboveSpacing(t *testing.T) {
	s := model.DefaultSettings()
	s.Resolution = s.Spacing * 2
	_, err := CreatePlan(5, 5, nil, s)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// TestPlanNarrowGapBetweenObstacles verifies the planner threads a 20 cm gap
// between two obstacles: with 2 cm clearance each side, 16 cm stays usable
// and must receive at least one waypoint strictly between the expanded edges.
func TestPlanNarrowGapBetweenObstacles(t *testing.T) {
	s := model.Settings{
		Pattern:    model.PatternZigzag,
		Spacing:    0.3,
		Clearance:  0.02,
		Resolution: 0.05,
		Speed:      0.1,
	}
	obstacles := []model.Obstacle{
		{X: 1.0, Y: 1.0, Width: 1.0, Height: 1.0},
		{X: 2.2, Y: 1.0, Width: 1.0, Height: 1.0}, // 0.2 m gap at x in [2.0, 2.2]
	}

	result, err := CreatePlan(5, 5, obstacles, s)
	require.NoError(t, err)

	// Expanded edges bound the usable gap to [2.02, 2.18].
	found := false
	for _, pt := range result.Points {
		if pt.X > 2.02 && pt.X < 2.18 {
			found = true
			break
		}
	}
	assert.True(t, found, "expected a waypoint inside the narrow gap")
}

func TestPlanEmptyPath(t *testing.T) {
	// Wall fully covered by one obstacle: every row is blocked.
	s := model.Settings{
		Pattern:    model.PatternZigzag,
		Spacing:    0.2,
		Clearance:  0.0,
		Resolution: 0.1,
		Speed:      0.1,
	}
	_, err := CreatePlan(1, 1, []model.Obstacle{{X: 0, Y: 0, Width: 1, Height: 1}}, s)
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestPlanLengthDurationConsistency(t *testing.T) {
	for _, pattern := range []model.Pattern{model.PatternZigzag, model.PatternSpiral} {
		s := model.Settings{
			Pattern:    pattern,
			Spacing:    0.2,
			Clearance:  0.02,
			Resolution: 0.05,
			Speed:      0.25,
		}
		result, err := CreatePlan(3, 2, []model.Obstacle{{X: 1, Y: 0.5, Width: 0.5, Height: 0.5}}, s)
		require.NoError(t, err, "pattern %s", pattern)

		assert.InDelta(t, result.LengthM/s.Speed, result.DurationS, 0.01, "pattern %s", pattern)
		assert.Greater(t, result.LengthM, 0.0)
	}
}

func TestPlanAreaBookkeeping(t *testing.T) {
	s := model.DefaultSettings()
	s.Spacing = 0.2
	s.Resolution = 0.1
	obstacles := []model.Obstacle{
		{X: 1, Y: 1, Width: 0.5, Height: 0.4},
		{X: 3, Y: 2, Width: 0.3, Height: 0.3},
	}
	result, err := CreatePlan(5, 4, obstacles, s)
	require.NoError(t, err)

	assert.Equal(t, 20.0, result.WallAreaM2)
	assert.InDelta(t, 0.29, result.ObstacleAreaM2, 1e-9)
	// Accessible area is wall minus RAW obstacle areas, exactly.
	assert.InDelta(t, result.WallAreaM2-result.ObstacleAreaM2, result.AccessibleAreaM2, 1e-9)
}

// TestPlanClearanceMonotonic checks that growing the clearance never adds
// points: a bigger keep-out zone can only shrink the reachable surface.
func TestPlanClearanceMonotonic(t *testing.T) {
	obstacles := []model.Obstacle{{X: 2, Y: 2, Width: 1, Height: 1}}

	prev := math.MaxInt
	for _, clearance := range []float64{0.0, 0.05, 0.1, 0.2, 0.4} {
		s := model.Settings{
			Pattern:    model.PatternZigzag,
			Spacing:    0.2,
			Clearance:  clearance,
			Resolution: 0.05,
			Speed:      0.1,
		}
		result, err := CreatePlan(5, 5, obstacles, s)
		require.NoError(t, err, "clearance %g", clearance)
		assert.LessOrEqual(t, result.PointCount, prev, "clearance %g", clearance)
		prev = result.PointCount
	}
}

// TestPlanClearanceMonotonicFineGrid repeats the monotonicity check with a
// fine sweep grid whose accumulated row heights land within float error of
// the expanded obstacle edges. A grazing row must decompose around the
// obstacle, not vanish, or a larger clearance can paradoxically add points.
func TestPlanClearanceMonotonicFineGrid(t *testing.T) {
	obstacles := []model.Obstacle{{X: 2, Y: 2, Width: 1, Height: 1}}

	prev := math.MaxInt
	for _, clearance := range []float64{0.0, 0.05, 0.1, 0.2} {
		s := model.Settings{
			Pattern:    model.PatternZigzag,
			Spacing:    0.1,
			Clearance:  clearance,
			Resolution: 0.02,
			Speed:      0.1,
		}
		result, err := CreatePlan(5, 5, obstacles, s)
		require.NoError(t, err, "clearance %g", clearance)
		assert.LessOrEqual(t, result.PointCount, prev, "clearance %g", clearance)
		prev = result.PointCount
	}
}

func TestPlanResultMetadata(t *testing.T) {
	s := model.DefaultSettings()
	s.Spacing = 0.2
	s.Resolution = 0.1
	result, err := CreatePlan(1, 1, nil, s)
	require.NoError(t, err)

	assert.Len(t, result.ID, 8)
	assert.Equal(t, model.PatternZigzag, result.Pattern)
	assert.Empty(t, result.Warnings)
}

func TestPlanOutsideObstacleWarning(t *testing.T) {
	s := model.DefaultSettings()
	s.Spacing = 0.2
	s.Resolution = 0.1
	result, err := CreatePlan(5, 5, []model.Obstacle{{X: 10, Y: 10, Width: 1, Height: 1}}, s)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "outside the wall")
	// The stray obstacle never reduces coverage of the wall itself.
	assert.Less(t, result.CoverageEfficiencyPct, 100.0) // raw area still subtracted
}

func TestPlanJob(t *testing.T) {
	job := model.NewJob("Sample", 2, 2)
	job.Settings.Spacing = 0.2
	job.Settings.Resolution = 0.1
	job.Obstacles = []model.Obstacle{{X: 0.8, Y: 0.8, Width: 0.3, Height: 0.3}}

	result, err := PlanJob(job)
	require.NoError(t, err)
	assert.Greater(t, result.PointCount, 0)
}
