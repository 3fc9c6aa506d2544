package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// canvasSurface implements the ink surface contract with fyne canvas
// objects: each drawn circle becomes a canvas.Circle, committed in one
// batch when the path is filled.
type canvasSurface struct {
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
	pending    []*canvas.Circle
	refresh    func()
}

func newCanvasSurface(refresh func()) *canvasSurface {
	return &canvasSurface{
		background: canvas.NewRectangle(color.White),
		refresh:    refresh,
	}
}

func (s *canvasSurface) BeginPath()          { s.pending = nil }
func (s *canvasSurface) MoveTo(x, y float32) {}
func (s *canvasSurface) ClosePath()          {}

func (s *canvasSurface) DrawCircle(x, y, r float32) {
	c := canvas.NewCircle(color.Black)
	c.Move(fyne.NewPos(x-r, y-r))
	c.Resize(fyne.NewSize(2*r, 2*r))
	s.pending = append(s.pending, c)
}

func (s *canvasSurface) Fill(col color.Color) {
	for _, c := range s.pending {
		c.FillColor = col
		s.objects = append(s.objects, c)
	}
	s.pending = nil
	s.refresh()
}

func (s *canvasSurface) ClearRegion() {
	s.objects = nil
	s.pending = nil
	s.refresh()
}

func (s *canvasSurface) FillRegion(col color.Color) {
	s.background.FillColor = col
	s.refresh()
}

func (s *canvasSurface) canvasObjects() []fyne.CanvasObject {
	return append([]fyne.CanvasObject{s.background}, s.objects...)
}
