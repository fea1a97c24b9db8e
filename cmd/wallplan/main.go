// wallplan — coverage path planner for wall-finishing robots
//
// Computes a robot coverage path over a rectangular wall with rectangular
// obstacles and writes the plan as JSON, with optional DXF, PDF, Excel and
// job-card exports.
//
// Build:
//   go build -o wallplan ./cmd/wallplan
//
// Examples:
//   wallplan -sample -out plan.json -pdf plan.pdf
//   wallplan -job wall.json -dxf plan.dxf -xlsx plan.xlsx
//   wallplan -width 5 -height 5 -obstacle 2,2,0.25,0.25 -pattern zigzag -out plan.json

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/export"
	"github.com/kumar-ankit-100/wall-finishing-robot/internal/job"
	"github.com/kumar-ankit-100/wall-finishing-robot/internal/model"
	"github.com/kumar-ankit-100/wall-finishing-robot/internal/planner"
)

// obstacleList collects repeated -obstacle flags, each "x,y,width,height" in
// meters.
type obstacleList []model.Obstacle

func (o *obstacleList) String() string {
	var parts []string
	for _, obs := range *o {
		parts = append(parts, fmt.Sprintf("%g,%g,%g,%g", obs.X, obs.Y, obs.Width, obs.Height))
	}
	return strings.Join(parts, " ")
}

func (o *obstacleList) Set(value string) error {
	fields := strings.Split(value, ",")
	if len(fields) != 4 {
		return fmt.Errorf("obstacle must be x,y,width,height, got %q", value)
	}
	nums := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return fmt.Errorf("obstacle field %d: %w", i+1, err)
		}
		nums[i] = v
	}
	*o = append(*o, model.Obstacle{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]})
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("wallplan: ")

	var (
		jobPath    = flag.String("job", "", "JSON job file to plan")
		sample     = flag.Bool("sample", false, "plan the built-in 5x5 m sample wall")
		name       = flag.String("name", "Ad-hoc wall", "job name for ad-hoc runs")
		width      = flag.Float64("width", 0, "wall width in meters (ad-hoc run)")
		height     = flag.Float64("height", 0, "wall height in meters (ad-hoc run)")
		pattern    = flag.String("pattern", string(model.PatternZigzag), "coverage pattern: zigzag or spiral")
		spacing    = flag.Float64("spacing", 0.05, "spacing between passes in meters")
		clearance  = flag.Float64("clearance", 0.02, "obstacle safety clearance in meters")
		resolution = flag.Float64("resolution", 0.01, "waypoint resolution in meters")
		speed      = flag.Float64("speed", 0.1, "robot speed in m/s")
		outPath    = flag.String("out", "", "write the plan result as JSON to this path")
		dxfPath    = flag.String("dxf", "", "write a DXF toolpath to this path")
		pdfPath    = flag.String("pdf", "", "write a PDF report to this path")
		xlsxPath   = flag.String("xlsx", "", "write an Excel workbook to this path")
		cardPath   = flag.String("card", "", "write a QR job card PDF to this path")
	)
	var obstacles obstacleList
	flag.Var(&obstacles, "obstacle", "obstacle as x,y,width,height in meters (repeatable)")
	flag.Parse()

	j, err := buildJob(*jobPath, *sample, *name, *width, *height, obstacles,
		*pattern, *spacing, *clearance, *resolution, *speed)
	if err != nil {
		log.Fatal(err)
	}

	result, err := planner.PlanJob(j)
	if err != nil {
		log.Fatalf("planning failed: %v", err)
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	fmt.Printf("plan %s: %d waypoints, %.3f m, %.2f s, %.2f%% coverage, %d lifts\n",
		result.ID, result.PointCount, result.LengthM, result.DurationS,
		result.CoverageEfficiencyPct, result.LiftCount())

	if *outPath != "" {
		if err := job.SaveResult(*outPath, result); err != nil {
			log.Fatalf("cannot write result: %v", err)
		}
	}
	if *dxfPath != "" {
		if err := export.ExportDXF(*dxfPath, j, result); err != nil {
			log.Fatalf("DXF export failed: %v", err)
		}
	}
	if *pdfPath != "" {
		if err := export.ExportPDF(*pdfPath, j, result); err != nil {
			log.Fatalf("PDF export failed: %v", err)
		}
	}
	if *xlsxPath != "" {
		if err := export.ExportXLSX(*xlsxPath, j, result); err != nil {
			log.Fatalf("Excel export failed: %v", err)
		}
	}
	if *cardPath != "" {
		if err := export.ExportJobCard(*cardPath, j, result); err != nil {
			log.Fatalf("job card export failed: %v", err)
		}
	}
}

// buildJob assembles the job from a file, the built-in sample, or the ad-hoc
// flags, in that order of precedence.
func buildJob(jobPath string, sample bool, name string, width, height float64,
	obstacles []model.Obstacle, pattern string, spacing, clearance, resolution, speed float64) (model.Job, error) {

	if jobPath != "" {
		return job.Load(jobPath)
	}
	if sample {
		return job.Sample(), nil
	}
	if width <= 0 || height <= 0 {
		return model.Job{}, fmt.Errorf("either -job, -sample, or -width and -height are required")
	}

	j := model.NewJob(name, width, height)
	j.Obstacles = obstacles
	j.Settings = model.Settings{
		Pattern:    model.Pattern(pattern),
		Spacing:    spacing,
		Clearance:  clearance,
		Resolution: resolution,
		Speed:      speed,
	}
	return j, nil
}
