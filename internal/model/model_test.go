package model

import "testing"

func TestNewJobDefaults(t *testing.T) {
	j := NewJob("Living room", 5.0, 2.8)

	if j.ID == "" {
		t.Error("expected a generated job ID")
	}
	if len(j.ID) != 8 {
		t.Errorf("expected 8-char short ID, got %q", j.ID)
	}
	if j.Width != 5.0 || j.Height != 2.8 {
		t.Errorf("unexpected wall size %vx%v", j.Width, j.Height)
	}
	if j.Settings.Pattern != PatternZigzag {
		t.Errorf("expected default pattern zigzag, got %q", j.Settings.Pattern)
	}
	if j.Settings.Spacing <= 0 || j.Settings.Resolution <= 0 || j.Settings.Speed <= 0 {
		t.Error("default settings must have positive spacing, resolution and speed")
	}
	if j.Settings.Resolution > j.Settings.Spacing {
		t.Error("default resolution must not exceed spacing")
	}
}

func TestJobWall(t *testing.T) {
	j := NewJob("Test", 4.0, 3.0)
	w := j.Wall()
	if w.X != 0 || w.Y != 0 {
		t.Error("wall must be anchored at the origin")
	}
	if w.Width != 4.0 || w.Height != 3.0 {
		t.Errorf("unexpected wall rect %+v", w)
	}
}

func TestObstacleRectAndArea(t *testing.T) {
	o := Obstacle{X: 2, Y: 1, Width: 0.5, Height: 0.25}
	r := o.Rect()
	if r.X != 2 || r.Y != 1 || r.Width != 0.5 || r.Height != 0.25 {
		t.Errorf("unexpected rect %+v", r)
	}
	if o.Area() != 0.125 {
		t.Errorf("expected area 0.125, got %v", o.Area())
	}
}

func TestPlanResultLifts(t *testing.T) {
	r := PlanResult{Lifts: []int{3, 7}}
	if r.LiftCount() != 2 {
		t.Errorf("expected 2 lifts, got %d", r.LiftCount())
	}
	if !r.IsLift(3) || !r.IsLift(7) {
		t.Error("expected indices 3 and 7 to be lifts")
	}
	if r.IsLift(4) {
		t.Error("index 4 should not be a lift")
	}
}
