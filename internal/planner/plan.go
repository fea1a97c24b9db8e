package planner

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/geom"
	"github.com/kumar-ankit-100/wall-finishing-robot/internal/model"
)

// Reported decimal precision. Internal computation always runs at full
// float64 precision; only the returned result is rounded.
const (
	coordPlaces  = 6 // waypoint coordinates
	lengthPlaces = 3 // lengths and areas
	pctPlaces    = 2 // percentages and durations
)

// Plan runs the configured pattern generator, validates the result and
// computes the derived metrics. It either returns a fully validated plan or
// an error, never a partial result.
func (p *Planner) Plan() (model.PlanResult, error) {
	var points []geom.Point
	switch p.settings.Pattern {
	case model.PatternZigzag:
		points = p.planZigzag()
	case model.PatternSpiral:
		points = p.planSpiral()
	default:
		// validateSettings already rejected anything else; keep the switch
		// exhaustive anyway.
		return model.PlanResult{}, fmt.Errorf("%w: %q", ErrUnknownPattern, p.settings.Pattern)
	}

	if len(points) == 0 {
		return model.PlanResult{}, fmt.Errorf("%w: wall may be completely blocked by obstacles", ErrEmptyPath)
	}

	if err := p.validatePathSafety(points); err != nil {
		return model.PlanResult{}, err
	}

	var length float64
	var lifts []int
	for i := 0; i < len(points)-1; i++ {
		length += points[i].DistanceTo(points[i+1])
		if p.segmentCrossesObstacle(points[i], points[i+1]) {
			lifts = append(lifts, i)
		}
	}

	wallArea := p.wall.Area()
	var obstacleArea float64
	for _, obs := range p.obstacles {
		obstacleArea += obs.Area()
	}
	accessibleArea := wallArea - obstacleArea
	efficiency := 0.0
	if wallArea > 0 {
		efficiency = accessibleArea / wallArea * 100
	}

	rounded := make([]geom.Point, len(points))
	for i, pt := range points {
		rounded[i] = geom.Point{X: round(pt.X, coordPlaces), Y: round(pt.Y, coordPlaces)}
	}

	return model.PlanResult{
		ID:                    uuid.New().String()[:8],
		Pattern:               p.settings.Pattern,
		Points:                rounded,
		Lifts:                 lifts,
		PointCount:            len(rounded),
		LengthM:               round(length, lengthPlaces),
		DurationS:             round(length/p.settings.Speed, pctPlaces),
		WallAreaM2:            round(wallArea, lengthPlaces),
		ObstacleAreaM2:        round(obstacleArea, lengthPlaces),
		AccessibleAreaM2:      round(accessibleArea, lengthPlaces),
		CoverageEfficiencyPct: round(efficiency, pctPlaces),
		Warnings:              p.warnings,
	}, nil
}

// CreatePlan is the single entry point for collaborators: validate, plan and
// return the result in one call.
func CreatePlan(wallWidth, wallHeight float64, obstacles []model.Obstacle, settings model.Settings) (model.PlanResult, error) {
	p, err := New(wallWidth, wallHeight, obstacles, settings)
	if err != nil {
		return model.PlanResult{}, err
	}
	return p.Plan()
}

// PlanJob runs a planning job as loaded from a job file.
func PlanJob(job model.Job) (model.PlanResult, error) {
	return CreatePlan(job.Width, job.Height, job.Obstacles, job.Settings)
}

// ExpandedObstacles returns the clearance-expanded, wall-clamped obstacle
// rectangles for a job, in obstacle order. Renderers use this to show the
// actual keep-out zones rather than the raw obstacle outlines.
func ExpandedObstacles(job model.Job) []geom.Rect {
	expanded := make([]geom.Rect, len(job.Obstacles))
	for i, obs := range job.Obstacles {
		expanded[i] = expandObstacle(obs.Rect(), job.Settings.Clearance, job.Width, job.Height)
	}
	return expanded
}

func round(v float64, places int) float64 {
	f := math.Pow(10, float64(places))
	return math.Round(v*f) / f
}
