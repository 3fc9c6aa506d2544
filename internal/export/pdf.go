// Package export renders a drawing document to PDF by replaying it
// through the same ink pipeline that painted the screen.
package export

import (
	"fmt"
	"image/color"

	"github.com/jung-kurt/gofpdf"

	"inkpad/internal/ink"
	"inkpad/internal/state"
)

// pxPerMM maps surface pixels onto the page.
const pxPerMM = 3

// pdfSurface adapts a gofpdf page to the ink surface contract. Circles
// are buffered per path because the fill color only arrives with Fill.
type pdfSurface struct {
	pdf     *gofpdf.Fpdf
	pending []pdfCircle
}

type pdfCircle struct {
	x, y, r float32
}

func (s *pdfSurface) BeginPath()          { s.pending = nil }
func (s *pdfSurface) MoveTo(x, y float32) {}
func (s *pdfSurface) ClosePath()          {}

func (s *pdfSurface) DrawCircle(x, y, r float32) {
	s.pending = append(s.pending, pdfCircle{x, y, r})
}

func (s *pdfSurface) Fill(c color.Color) {
	r, g, b := rgb(c)
	s.pdf.SetFillColor(r, g, b)
	for _, ci := range s.pending {
		s.pdf.Circle(float64(ci.x)/pxPerMM, float64(ci.y)/pxPerMM, float64(ci.r)/pxPerMM, "F")
	}
	s.pending = nil
}

func (s *pdfSurface) ClearRegion() {
	s.pending = nil
}

func (s *pdfSurface) FillRegion(c color.Color) {
	if _, _, _, a := c.RGBA(); a == 0 {
		return
	}
	r, g, b := rgb(c)
	s.pdf.SetFillColor(r, g, b)
	w, h := s.pdf.GetPageSize()
	s.pdf.Rect(0, 0, w, h, "F")
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}

// PDF writes the document to path as an A4 page, smoothed and
// width-modulated exactly like the on-screen rendering.
func PDF(path string, doc *state.Document, opts ink.Options) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pad := ink.New(&pdfSurface{pdf: pdf}, opts)
	pad.SetData(doc.Groups())

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
