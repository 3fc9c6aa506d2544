package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"inkpad/internal/export"
	"inkpad/internal/ink"
	"inkpad/internal/state"
)

// colorSwatch is a tappable square of pen color.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the pen controls and the save/load/export actions
// for one pad.
func NewToolbar(board *PadWidget, doc *state.Document, win fyne.Window) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DeleteIcon(), board.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { saveDrawing(doc, win) }),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() { loadDrawing(board, doc, win) }),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() { exportPDF(doc, win) }),
	)

	colorBox := container.NewHBox(
		newColorSwatch(color.Black, board.SetPenColor),
		newColorSwatch(color.NRGBA{R: 200, A: 255}, board.SetPenColor),
		newColorSwatch(color.NRGBA{G: 140, A: 255}, board.SetPenColor),
		newColorSwatch(color.NRGBA{B: 200, A: 255}, board.SetPenColor),
	)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Pen:"),
		colorBox,
		layout.NewSpacer(),
	)
}

func saveDrawing(doc *state.Document, win fyne.Window) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := doc.Encode(writer); err != nil {
			log.Printf("[ui] save failed: %v", err)
			dialog.ShowError(err, win)
			return
		}
		log.Printf("[ui] saved %d strokes", doc.Len())
	}, win)
}

func loadDrawing(board *PadWidget, doc *state.Document, win fyne.Window) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		if err := doc.Decode(reader); err != nil {
			log.Printf("[ui] load failed: %v", err)
			dialog.ShowError(err, win)
			return
		}
		board.Redraw()
		log.Printf("[ui] loaded %d strokes", doc.Len())
	}, win)
}

func exportPDF(doc *state.Document, win fyne.Window) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := export.PDF(path, doc, ink.Options{}); err != nil {
			log.Printf("[ui] pdf export failed: %v", err)
			dialog.ShowError(err, win)
			return
		}
		log.Printf("[ui] exported %d strokes to %s", doc.Len(), path)
	}, win)
}
