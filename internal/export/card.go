package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/kumar-ankit-100/wall-finishing-robot/internal/model"
)

// CardInfo holds the data encoded into a job card's QR code. Site operators
// scan it to pull the plan onto the robot controller.
type CardInfo struct {
	PlanID     string  `json:"plan_id"`
	JobID      string  `json:"job_id"`
	JobName    string  `json:"job_name"`
	Pattern    string  `json:"pattern"`
	WallWidth  float64 `json:"wall_width_m"`
	WallHeight float64 `json:"wall_height_m"`
	Waypoints  int     `json:"waypoints"`
	LengthM    float64 `json:"length_m"`
	DurationS  float64 `json:"duration_s"`
}

// Card layout constants (A6 landscape in mm).
const (
	cardPageWidth  = 148.0
	cardPageHeight = 105.0
	cardMargin     = 8.0
	cardQRSize     = 55.0
)

// ExportJobCard generates a single-page PDF job card: the job identity and
// headline metrics as text, plus a QR code encoding the plan metadata as
// JSON.
func ExportJobCard(path string, job model.Job, result model.PlanResult) error {
	if len(result.Points) == 0 {
		return fmt.Errorf("no waypoints to export")
	}

	info := CardInfo{
		PlanID:     result.ID,
		JobID:      job.ID,
		JobName:    job.Name,
		Pattern:    string(result.Pattern),
		WallWidth:  job.Width,
		WallHeight: job.Height,
		Waypoints:  result.PointCount,
		LengthM:    result.LengthM,
		DurationS:  result.DurationS,
	}
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("cannot marshal card info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("cannot generate QR code: %w", err)
	}

	pdf := fpdf.New("L", "mm", "A6", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Card border
	pdf.SetDrawColor(160, 160, 160)
	pdf.SetLineWidth(0.3)
	pdf.Rect(cardMargin/2, cardMargin/2, cardPageWidth-cardMargin, cardPageHeight-cardMargin, "D")

	// Text block on the left
	textX := cardMargin
	textW := cardPageWidth - cardQRSize - 3*cardMargin

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(textX, cardMargin)
	pdf.CellFormat(textW, 6, job.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	lines := []string{
		fmt.Sprintf("Plan %s / Job %s", result.ID, job.ID),
		fmt.Sprintf("Wall: %.2f x %.2f m", job.Width, job.Height),
		fmt.Sprintf("Pattern: %s", result.Pattern),
		fmt.Sprintf("Waypoints: %d (%d lifts)", result.PointCount, result.LiftCount()),
		fmt.Sprintf("Length: %.3f m", result.LengthM),
		fmt.Sprintf("Duration: %.2f s", result.DurationS),
		fmt.Sprintf("Coverage: %.2f%%", result.CoverageEfficiencyPct),
	}
	y := cardMargin + 9.0
	for _, line := range lines {
		pdf.SetXY(textX, y)
		pdf.CellFormat(textW, 4.5, line, "", 1, "L", false, 0, "")
		y += 5.0
	}

	// QR code on the right
	imgName := fmt.Sprintf("qr_%s", result.ID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	qrX := cardPageWidth - cardQRSize - cardMargin
	qrY := (cardPageHeight - cardQRSize) / 2
	pdf.ImageOptions(imgName, qrX, qrY, cardQRSize, cardQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	return pdf.OutputFileAndClose(path)
}
