// Package export writes coverage plans to the file formats used on site:
// DXF toolpaths for CAD review, PDF reports, Excel waypoint workbooks and
// QR-coded job cards.
package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/model"
	"github.com/kumar-ankit-100/wall-finishing-robot/internal/planner"
)

// DXF layer names. CAD users toggle these to inspect the wall outline, the
// obstacle keep-out zones and the path separately.
const (
	layerWall      = "WALL"
	layerObstacles = "OBSTACLES"
	layerClearance = "CLEARANCE"
	layerPath      = "PATH"
	layerLifts     = "LIFTS"
)

// ExportDXF writes the planned path as a DXF drawing: the wall outline, the
// raw obstacles, the expanded keep-out zones, the in-contact path segments
// and the lift-and-reposition moves, each on its own layer. Coordinates are
// in meters, matching the planner.
func ExportDXF(path string, job model.Job, result model.PlanResult) error {
	if len(result.Points) == 0 {
		return fmt.Errorf("no waypoints to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer(layerWall, color.White, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("cannot create DXF layer: %w", err)
	}
	wall := job.Wall()
	drawRect(d, wall.X, wall.Y, wall.Width, wall.Height)

	if _, err := d.AddLayer(layerObstacles, color.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("cannot create DXF layer: %w", err)
	}
	for _, obs := range job.Obstacles {
		drawRect(d, obs.X, obs.Y, obs.Width, obs.Height)
	}

	if _, err := d.AddLayer(layerClearance, color.Yellow, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("cannot create DXF layer: %w", err)
	}
	for _, r := range planner.ExpandedObstacles(job) {
		if r.Width > 0 && r.Height > 0 {
			drawRect(d, r.X, r.Y, r.Width, r.Height)
		}
	}

	if _, err := d.AddLayer(layerPath, color.Green, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("cannot create DXF layer: %w", err)
	}
	if _, err := d.AddLayer(layerLifts, color.Cyan, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("cannot create DXF layer: %w", err)
	}

	for i := 0; i < len(result.Points)-1; i++ {
		a := result.Points[i]
		b := result.Points[i+1]
		layer := layerPath
		if result.IsLift(i) {
			layer = layerLifts
		}
		if err := d.ChangeLayer(layer); err != nil {
			return fmt.Errorf("cannot switch DXF layer: %w", err)
		}
		d.Line(a.X, a.Y, 0, b.X, b.Y, 0)
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle outline on the current layer.
func drawRect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}
