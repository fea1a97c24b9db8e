// Package job loads and saves planning jobs and their results as JSON files.
// A job file is the offline equivalent of the wall/obstacle supplier: it
// carries the wall dimensions, the obstacle list and the planner settings.
package job

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/model"
)

// Load reads a job from the given path. Missing settings fields fall back to
// the planner defaults so hand-written job files can stay minimal.
func Load(path string) (model.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Job{}, fmt.Errorf("cannot read job file: %w", err)
	}

	// Start from defaults so absent settings keys keep their default values.
	j := model.Job{Settings: model.DefaultSettings()}
	if err := json.Unmarshal(data, &j); err != nil {
		return model.Job{}, fmt.Errorf("cannot parse job file %s: %w", filepath.Base(path), err)
	}
	if j.Obstacles == nil {
		j.Obstacles = []model.Obstacle{}
	}
	return j, nil
}

// Save writes a job to the given path as indented JSON, creating missing
// parent directories.
func Save(path string, j model.Job) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SaveResult writes a plan result to the given path as indented JSON.
func SaveResult(path string, result model.PlanResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Sample returns the built-in demonstration job: a 5x5 m wall with a single
// 0.25x0.25 m window, planned with a fine zigzag.
func Sample() model.Job {
	j := model.NewJob("Sample wall 5x5 with window", 5.0, 5.0)
	j.Obstacles = []model.Obstacle{{X: 2.0, Y: 2.0, Width: 0.25, Height: 0.25}}
	j.Settings = model.Settings{
		Pattern:    model.PatternZigzag,
		Spacing:    0.05,
		Clearance:  0.02,
		Resolution: 0.01,
		Speed:      0.1,
	}
	return j
}
