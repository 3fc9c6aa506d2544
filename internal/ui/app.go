package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"inkpad/internal/state"
)

// RunApp shows the pad window and blocks until it closes.
func RunApp(board *PadWidget, doc *state.Document, status string) {
	a := app.New()
	win := a.NewWindow("InkPad")
	win.Resize(fyne.NewSize(900, 620))

	toolbar := NewToolbar(board, doc, win)
	statusBar := widget.NewLabel(status)

	win.SetContent(container.NewBorder(toolbar, statusBar, nil, nil, board))
	win.ShowAndRun()
}
