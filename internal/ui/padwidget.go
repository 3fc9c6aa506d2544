package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"inkpad/internal/ink"
	"inkpad/internal/state"
)

// PadWidget is the interactive signature pad: it turns mouse events into
// stroke events for the ink engine and commits finished gestures to the
// drawing document.
type PadWidget struct {
	widget.BaseWidget

	pad      *ink.Pad
	surface  *canvasSurface
	doc      *state.Document
	penColor color.Color
	drawing  bool

	// Transform maps a raw event position into surface coordinates. It
	// runs once per event; the ink engine never sees widget geometry.
	Transform func(fyne.Position) fyne.Position

	// OnStroke fires with each locally committed stroke, OnClear when
	// the user asks to wipe their own ink.
	OnStroke func(state.Stroke)
	OnClear  func()
}

var _ fyne.Widget = (*PadWidget)(nil)
var _ fyne.Draggable = (*PadWidget)(nil)
var _ desktop.Mouseable = (*PadWidget)(nil)

func NewPadWidget(doc *state.Document) *PadWidget {
	w := &PadWidget{
		doc:       doc,
		penColor:  color.Black,
		Transform: func(p fyne.Position) fyne.Position { return p },
	}
	w.ExtendBaseWidget(w)
	w.surface = newCanvasSurface(func() { w.Refresh() })
	w.pad = ink.New(w.surface, ink.Options{BackgroundColor: color.White})
	w.pad.AddObserver(w)
	return w
}

// StrokeBegan implements ink.Observer.
func (w *PadWidget) StrokeBegan(p ink.Point) {}

// StrokeEnded commits the finished gesture to the document and notifies
// the app.
func (w *PadWidget) StrokeEnded(group ink.PointGroup) {
	stroke := w.doc.AppendLocal(group, hexColor(w.penColor))
	if w.OnStroke != nil {
		w.OnStroke(stroke)
	}
}

func (w *PadWidget) SetPenColor(c color.Color) {
	w.penColor = c
	w.pad.SetPenColor(c)
}

// IsEmpty reports whether any ink is on the surface.
func (w *PadWidget) IsEmpty() bool {
	return w.pad.IsEmpty()
}

// Clear is the local user's clear action; the app decides how far it
// propagates.
func (w *PadWidget) Clear() {
	if w.OnClear != nil {
		w.OnClear()
		return
	}
	w.ClearOwner("all")
}

// ClearOwner drops one peer's strokes (or all of them) and repaints what
// is left.
func (w *PadWidget) ClearOwner(owner string) {
	n := w.doc.RemoveByOwner(owner)
	log.Printf("[pad] cleared %d strokes of %q", n, owner)
	w.Redraw()
}

// AddRemote merges a stroke from a peer and draws it if it was new.
func (w *PadWidget) AddRemote(s state.Stroke) bool {
	if !w.doc.MergeRemote(s) {
		return false
	}
	w.drawStroke(s)
	return true
}

// Redraw replays the whole document onto a fresh surface, stroke by
// stroke so each keeps its own pen color.
func (w *PadWidget) Redraw() {
	w.pad.Clear()
	for _, s := range w.doc.Strokes() {
		w.drawStroke(s)
	}
}

func (w *PadWidget) drawStroke(s state.Stroke) {
	w.pad.SetPenColor(parseHexColor(s.Pen))
	w.pad.DrawGroup(s.Points)
	w.pad.SetPenColor(w.penColor)
}

func (w *PadWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.drawing = true
	pos := w.Transform(e.Position)
	w.pad.StrokeBegin(pos.X, pos.Y, 0)
}

func (w *PadWidget) MouseUp(e *desktop.MouseEvent) {
	w.finishStroke()
}

func (w *PadWidget) Dragged(e *fyne.DragEvent) {
	if !w.drawing {
		return
	}
	pos := w.Transform(e.Position)
	w.pad.StrokeUpdate(pos.X, pos.Y, 0)
}

func (w *PadWidget) DragEnd() {
	w.finishStroke()
}

// MouseOut ends an in-flight gesture early; what was captured stays.
func (w *PadWidget) MouseOut() {
	w.finishStroke()
}

func (w *PadWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *PadWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *PadWidget) finishStroke() {
	if !w.drawing {
		return
	}
	w.drawing = false
	w.pad.StrokeEnd(0)
}

func (w *PadWidget) CreateRenderer() fyne.WidgetRenderer {
	return &padRenderer{w: w}
}

type padRenderer struct {
	w *PadWidget
}

func (r *padRenderer) Objects() []fyne.CanvasObject {
	return r.w.surface.canvasObjects()
}

func (r *padRenderer) Layout(size fyne.Size) {
	r.w.surface.background.Resize(size)
}

func (r *padRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 250)
}

func (r *padRenderer) Refresh() {
	canvas.Refresh(r.w)
}

func (r *padRenderer) Destroy() {}
