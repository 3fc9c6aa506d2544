package ink

import (
	"image/color"

	"github.com/chewxy/math32"
)

// drawSegment rasterizes one curve as a run of filled circles whose radius
// interpolates between the segment widths. The width uses a t³ ramp on
// purpose: it biases the width change toward the end of the segment, which
// is how the pad has always looked. Segments shorter than one pixel draw
// nothing.
func drawSegment(s Surface, pen color.Color, seg Segment) {
	steps := int(math32.Floor(seg.Curve.Length()))
	if steps <= 0 {
		return
	}

	widthDelta := seg.EndWidth - seg.StartWidth

	s.BeginPath()
	for i := 0; i < steps; i++ {
		t := float32(i) / float32(steps)
		x, y := seg.Curve.At(t)
		width := seg.StartWidth + t*t*t*widthDelta

		s.MoveTo(x, y)
		s.DrawCircle(x, y, width)
	}
	s.ClosePath()
	s.Fill(pen)
}

// drawDot renders a degenerate single-point stroke.
func drawDot(s Surface, pen color.Color, p Point, radius float32) {
	s.BeginPath()
	s.MoveTo(p.X, p.Y)
	s.DrawCircle(p.X, p.Y, radius)
	s.ClosePath()
	s.Fill(pen)
}
