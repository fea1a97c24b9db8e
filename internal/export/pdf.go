package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/model"
	"github.com/kumar-ankit-100/wall-finishing-robot/internal/planner"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 26.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a one-page PDF report for a coverage plan: a scaled
// drawing of the wall with obstacles, keep-out zones and the full path
// (lift moves dashed), followed by the plan metrics.
func ExportPDF(path string, job model.Job, result model.PlanResult) error {
	if len(result.Points) == 0 {
		return fmt.Errorf("no waypoints to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Coverage plan %s: %s (%.2f x %.2f m, %s)",
		result.ID, job.Name, job.Width, job.Height, result.Pattern)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Waypoints: %d | Length: %.3f m | Duration: %.2f s | Lifts: %d | Coverage: %.2f%%",
		result.PointCount, result.LengthM, result.DurationS, result.LiftCount(), result.CoverageEfficiencyPct)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area and scale to fit the wall
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight
	scale := math.Min(drawWidth/job.Width, drawHeight/job.Height)

	canvasW := job.Width * scale
	canvasH := job.Height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// The wall's y axis points up; the page's points down.
	toPage := func(x, y float64) (float64, float64) {
		return offsetX + x*scale, offsetY + (job.Height-y)*scale
	}

	// Wall background
	pdf.SetFillColor(245, 245, 240)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Expanded keep-out zones (light), then raw obstacles (solid) on top
	pdf.SetFillColor(255, 224, 178)
	pdf.SetDrawColor(230, 160, 80)
	pdf.SetLineWidth(0.2)
	for _, r := range planner.ExpandedObstacles(job) {
		if r.Width <= 0 || r.Height <= 0 {
			continue
		}
		px, py := toPage(r.X, r.Y2())
		pdf.Rect(px, py, r.Width*scale, r.Height*scale, "FD")
	}
	pdf.SetFillColor(229, 115, 115)
	pdf.SetDrawColor(120, 40, 40)
	for _, obs := range job.Obstacles {
		px, py := toPage(obs.X, obs.Y+obs.Height)
		pdf.Rect(px, py, obs.Width*scale, obs.Height*scale, "FD")
	}

	// Path: in-contact segments solid green, lift moves dashed grey
	for i := 0; i < len(result.Points)-1; i++ {
		ax, ay := toPage(result.Points[i].X, result.Points[i].Y)
		bx, by := toPage(result.Points[i+1].X, result.Points[i+1].Y)
		if result.IsLift(i) {
			pdf.SetDrawColor(130, 130, 130)
			pdf.SetLineWidth(0.15)
			pdf.SetDashPattern([]float64{1.0, 1.0}, 0)
		} else {
			pdf.SetDrawColor(56, 142, 60)
			pdf.SetLineWidth(0.25)
			pdf.SetDashPattern([]float64{}, 0)
		}
		pdf.Line(ax, ay, bx, by)
	}
	pdf.SetDashPattern([]float64{}, 0)

	renderMetricsBlock(pdf, offsetY+canvasH+4, result)

	return pdf.OutputFileAndClose(path)
}

// renderMetricsBlock prints the area accounting and any warnings below the
// drawing.
func renderMetricsBlock(pdf *fpdf.Fpdf, y float64, result model.PlanResult) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetXY(marginLeft, y)
	areas := fmt.Sprintf("Wall area: %.3f m2 | Obstacle area: %.3f m2 | Accessible area: %.3f m2",
		result.WallAreaM2, result.ObstacleAreaM2, result.AccessibleAreaM2)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4.5, areas, "", 1, "L", false, 0, "")

	if len(result.Warnings) > 0 {
		pdf.SetTextColor(180, 100, 0)
		for _, w := range result.Warnings {
			pdf.SetX(marginLeft)
			pdf.CellFormat(pageWidth-marginLeft-marginRight, 4.5, "Warning: "+w, "", 1, "L", false, 0, "")
		}
	}
	pdf.SetTextColor(0, 0, 0)
}
