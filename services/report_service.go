package services

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	// Register decoders for the formats the report may embed.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"
)

// Letter page layout, in points.
const (
	reportMarginX    = 72.0
	reportHeaderY    = 72.0
	reportFirstRowY  = 180.0
	reportRowHeight  = 180.0
	reportPageBottom = 592.0
	reportImageW     = 200.0
	reportImageH     = 150.0
	reportTextX      = 300.0
)

// ReportService compiles the PDF inspection report for a submission.
type ReportService struct {
	store      SubmissionStore
	reportPath string
}

func NewReportService(store SubmissionStore, reportPath string) *ReportService {
	return &ReportService{store: store, reportPath: reportPath}
}

// Generate rebuilds the report file for the submission and returns its path.
// The report is regenerated on every call, so it always reflects the current
// set of image rows, duplicates included.
func (s *ReportService) Generate(submissionID string) (string, error) {
	submission, err := s.store.GetSubmission(submissionID)
	if err != nil {
		return "", err
	}
	images, err := s.store.GetImages(submissionID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.reportPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}
	filename := filepath.Join(s.reportPath, submissionID+".pdf")

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(reportMarginX, reportHeaderY, "Vehicle Insurance Inspection Report")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(reportMarginX, 100, fmt.Sprintf("Submission ID: %s", submission.SubmissionID))
	pdf.Text(reportMarginX, 120, fmt.Sprintf("Vehicle: %d %s %s",
		submission.VehicleYear, submission.VehicleMake, submission.VehicleModel))
	pdf.Text(reportMarginX, 140, fmt.Sprintf("Submission Date: %s", formatReportDate(submission.CreateAt)))

	// One block per stored image, paginating when vertical space runs out.
	y := reportFirstRowY
	for _, img := range images {
		if y > reportPageBottom {
			pdf.AddPage()
			y = reportHeaderY
		}

		imageType, ok := sniffImageType(img.StoredPath)
		if !ok {
			// Mirror of the original behavior: an unreadable image file is
			// skipped rather than failing the whole report.
			continue
		}

		pdf.ImageOptions(img.StoredPath, reportMarginX, y, reportImageW, reportImageH, false,
			gofpdf.ImageOptions{ImageType: imageType}, 0, "")

		status := "Invalid"
		if img.IsValid() {
			status = "Valid"
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(reportTextX, y+40, capitalize(img.ImageType))
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(reportTextX, y+60, fmt.Sprintf("Status: %s", status))
		pdf.SetXY(reportTextX, y+70)
		pdf.MultiCell(240, 12, fmt.Sprintf("Notes: %s", img.ValidationReason), "", "L", false)

		y += reportRowHeight
	}

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return filename, nil
}

// sniffImageType decodes the file header to confirm gofpdf can embed it and
// returns the image type name gofpdf expects.
func sniffImageType(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", false
	}
	switch format {
	case "jpeg":
		return "JPG", true
	case "png":
		return "PNG", true
	case "gif":
		return "GIF", true
	}
	return "", false
}

func formatReportDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
