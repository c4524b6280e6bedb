package services

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/wanderhub/travel-api/internal/models"
)

// ItineraryService renders a package itinerary as a PDF document: brand
// header, trip overview, highlights, the day-by-day plan and inclusions.
type ItineraryService struct {
	brand string
}

func NewItineraryService(brand string) *ItineraryService {
	return &ItineraryService{brand: brand}
}

const (
	accentR, accentG, accentB = 14, 165, 233
	bodyR, bodyG, bodyB       = 55, 65, 81
	mutedR, mutedG, mutedB    = 107, 114, 128
)

// Render produces the PDF bytes for a package. The only error source is
// the underlying document writer.
func (s *ItineraryService) Render(pkg models.Package) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s - Detailed Itinerary", pkg.Title), true)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(mutedR, mutedG, mutedB)
		footer := fmt.Sprintf("%s - Generated %s - Page %d",
			s.brand, time.Now().Format("January 2, 2006"), pdf.PageNo())
		pdf.CellFormat(0, 10, tr(footer), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(accentR, accentG, accentB)
	pdf.CellFormat(0, 10, tr(s.brand), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(bodyR, bodyG, bodyB)
	pdf.CellFormat(0, 14, tr(pkg.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(mutedR, mutedG, mutedB)
	meta := fmt.Sprintf("%d days   |   %s per person   |   up to %d travelers",
		pkg.Duration, formatPrice(pkg.Price), pkg.MaxPeople)
	pdf.CellFormat(0, 8, tr(meta), "", 1, "C", false, 0, "")
	pdf.SetDrawColor(accentR, accentG, accentB)
	pdf.SetLineWidth(0.8)
	pdf.Line(10, pdf.GetY()+4, 200, pdf.GetY()+4)
	pdf.Ln(12)

	// Overview
	s.sectionTitle(pdf, tr, "Trip Overview")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(bodyR, bodyG, bodyB)
	pdf.MultiCell(0, 6, tr(pkg.Description), "", "L", false)
	pdf.Ln(6)

	// Highlights
	s.sectionTitle(pdf, tr, "Package Highlights")
	pdf.SetFont("Helvetica", "", 11)
	for _, h := range pkg.Highlights {
		pdf.CellFormat(6, 6, "-", "", 0, "R", false, 0, "")
		pdf.MultiCell(0, 6, tr(h), "", "L", false)
	}
	pdf.Ln(6)

	// Day-by-day itinerary
	s.sectionTitle(pdf, tr, "Day-by-Day Itinerary")
	for _, day := range pkg.Itinerary {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(accentR, accentG, accentB)
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("Day %d: %s", day.Day, day.Title)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(bodyR, bodyG, bodyB)
		pdf.MultiCell(0, 6, tr(day.Description), "", "L", false)
		pdf.Ln(2)
	}
	pdf.Ln(4)

	// Inclusions
	s.sectionTitle(pdf, tr, "What's Included")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(bodyR, bodyG, bodyB)
	for _, inc := range pkg.Includes {
		pdf.CellFormat(6, 6, "-", "", 0, "R", false, 0, "")
		pdf.MultiCell(0, 6, tr(inc), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render itinerary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ItineraryService) sectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 15)
	pdf.SetTextColor(bodyR, bodyG, bodyB)
	pdf.SetFillColor(240, 249, 255)
	pdf.CellFormat(0, 9, tr("  "+title), "", 1, "L", true, 0, "")
	pdf.Ln(3)
}

// formatPrice renders minor currency units as a dollar amount with
// thousands separators, e.g. 499900 -> $4,999.00.
func formatPrice(cents int) string {
	dollars := cents / 100
	rem := cents % 100
	digits := strconv.Itoa(dollars)
	var b bytes.Buffer
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("$%s.%02d", b.String(), rem)
}
