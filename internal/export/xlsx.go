package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/model"
)

// Workbook sheet names.
const (
	sheetSummary   = "Summary"
	sheetWaypoints = "Waypoints"
)

// ExportXLSX writes the plan to an Excel workbook: a Summary sheet with the
// job parameters and metrics, and a Waypoints sheet listing every point in
// visit order with its lift flag.
func ExportXLSX(path string, job model.Job, result model.PlanResult) error {
	if len(result.Points) == 0 {
		return fmt.Errorf("no waypoints to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("cannot create summary sheet: %w", err)
	}

	summary := [][2]interface{}{
		{"Plan ID", result.ID},
		{"Job", job.Name},
		{"Pattern", string(result.Pattern)},
		{"Wall width (m)", job.Width},
		{"Wall height (m)", job.Height},
		{"Obstacles", len(job.Obstacles)},
		{"Spacing (m)", job.Settings.Spacing},
		{"Clearance (m)", job.Settings.Clearance},
		{"Resolution (m)", job.Settings.Resolution},
		{"Speed (m/s)", job.Settings.Speed},
		{"Waypoints", result.PointCount},
		{"Lift moves", result.LiftCount()},
		{"Path length (m)", result.LengthM},
		{"Duration (s)", result.DurationS},
		{"Wall area (m2)", result.WallAreaM2},
		{"Obstacle area (m2)", result.ObstacleAreaM2},
		{"Accessible area (m2)", result.AccessibleAreaM2},
		{"Coverage efficiency (%)", result.CoverageEfficiencyPct},
	}
	for i, kv := range summary {
		row := i + 1
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), kv[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), kv[1]); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(sheetWaypoints); err != nil {
		return fmt.Errorf("cannot create waypoints sheet: %w", err)
	}
	headers := []string{"Index", "X (m)", "Y (m)", "Lift to next"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetWaypoints, cell, h); err != nil {
			return err
		}
	}
	for i, pt := range result.Points {
		row := i + 2
		values := []interface{}{i, pt.X, pt.Y, result.IsLift(i)}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetWaypoints, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
