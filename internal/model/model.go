// Package model defines the data types shared between the coverage planner,
// the exporters and the CLI. All dimensions are in meters.
package model

import (
	"github.com/google/uuid"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/geom"
)

// Pattern selects the coverage pattern the planner generates.
type Pattern string

const (
	PatternZigzag Pattern = "zigzag" // Boustrophedon row-by-row sweep
	PatternSpiral Pattern = "spiral" // Concentric rectangular rings, outside in
)

func (p Pattern) String() string { return string(p) }

// Obstacle is a rectangular no-go zone on the wall (window, vent, socket).
// It may lie partially or fully outside the wall; that is anomalous but
// allowed, and only reported as a warning.
type Obstacle struct {
	X      float64 `json:"x"`      // Distance from wall left edge (m)
	Y      float64 `json:"y"`      // Distance from wall bottom edge (m)
	Width  float64 `json:"width"`  // m, must be > 0
	Height float64 `json:"height"` // m, must be > 0
}

// Rect returns the obstacle as a geometry rectangle.
func (o Obstacle) Rect() geom.Rect {
	return geom.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// Area returns the raw obstacle area in square meters. Area accounting always
// uses raw obstacle sizes; clearance expansion only affects reachability.
func (o Obstacle) Area() float64 { return o.Width * o.Height }

// Settings holds the planner configuration.
type Settings struct {
	Pattern    Pattern `json:"pattern"`    // Coverage pattern: "zigzag" or "spiral"
	Spacing    float64 `json:"spacing"`    // Distance between passes (m), > 0
	Clearance  float64 `json:"clearance"`  // Safety margin around obstacles (m), >= 0
	Resolution float64 `json:"resolution"` // Waypoint sampling step (m), 0 < resolution <= spacing
	Speed      float64 `json:"speed"`      // Robot speed (m/s), > 0, used for duration estimate
}

// DefaultSettings returns the planner defaults: zigzag with a 5 cm pass
// spacing, 2 cm obstacle clearance, 1 cm waypoint resolution and a 0.1 m/s
// robot.
func DefaultSettings() Settings {
	return Settings{
		Pattern:    PatternZigzag,
		Spacing:    0.05,
		Clearance:  0.02,
		Resolution: 0.01,
		Speed:      0.1,
	}
}

// Job describes one planning request: a wall, its obstacles and the planner
// settings to run with.
type Job struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Width     float64    `json:"width"`  // Wall width (m)
	Height    float64    `json:"height"` // Wall height (m)
	Obstacles []Obstacle `json:"obstacles"`
	Settings  Settings   `json:"settings"`
}

// NewJob creates a named job with default settings and a fresh short ID.
func NewJob(name string, width, height float64) Job {
	return Job{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Width:    width,
		Height:   height,
		Settings: DefaultSettings(),
	}
}

// Wall returns the wall as a rectangle anchored at the origin.
func (j Job) Wall() geom.Rect {
	return geom.Rect{X: 0, Y: 0, Width: j.Width, Height: j.Height}
}

// PlanResult is a fully validated coverage plan. Either every field is
// populated or the planner returned an error; there are no partial results.
type PlanResult struct {
	ID      string       `json:"id"`
	Pattern Pattern      `json:"pattern"`
	Points  []geom.Point `json:"points"` // Waypoints in visit order

	// Lifts holds indices i where the segment Points[i] -> Points[i+1] would
	// cross an expanded obstacle: the robot lifts off and repositions instead
	// of traveling in contact with the wall.
	Lifts []int `json:"lifts,omitempty"`

	PointCount            int     `json:"point_count"`
	LengthM               float64 `json:"length_m"`   // Includes lift repositioning jumps
	DurationS             float64 `json:"duration_s"` // LengthM / Speed
	WallAreaM2            float64 `json:"wall_area_m2"`
	ObstacleAreaM2        float64 `json:"obstacle_area_m2"`
	AccessibleAreaM2      float64 `json:"accessible_area_m2"`
	CoverageEfficiencyPct float64 `json:"coverage_efficiency_pct"`

	Warnings []string `json:"warnings,omitempty"`
}

// LiftCount returns the number of lift-and-reposition transitions in the plan.
func (r PlanResult) LiftCount() int { return len(r.Lifts) }

// IsLift reports whether the segment starting at waypoint index i is a
// lift-and-reposition move.
func (r PlanResult) IsLift(i int) bool {
	for _, l := range r.Lifts {
		if l == i {
			return true
		}
	}
	return false
}
