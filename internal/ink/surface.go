package ink

import "image/color"

// Surface is the drawing collaborator a pad renders onto. The pad never
// creates, resizes or otherwise owns it; all calls are synchronous and
// arrive in draw order. One stroke segment becomes a single
// BeginPath..Fill sequence of circles.
type Surface interface {
	BeginPath()
	MoveTo(x, y float32)
	DrawCircle(x, y, radius float32)
	ClosePath()
	Fill(c color.Color)
	ClearRegion()
	FillRegion(c color.Color)
}
