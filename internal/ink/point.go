// Package ink turns raw pointer samples into smooth, variable-width strokes.
// It owns the curve fitting and width modulation only; the drawing surface,
// input wiring and persistence live with the caller.
package ink

import "github.com/chewxy/math32"

// Point is one raw pointer sample in surface-local coordinates.
// Time is in milliseconds; zero means "stamp at capture time".
type Point struct {
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
	Time int64   `json:"time"`
}

// PointGroup holds the raw samples of one gesture, in arrival order.
type PointGroup []Point

func (p Point) DistanceTo(q Point) float32 {
	return math32.Hypot(q.X-p.X, q.Y-p.Y)
}

// VelocityFrom returns the speed in px/ms between start and p.
// Two samples with the same timestamp report a velocity of 1.
func (p Point) VelocityFrom(start Point) float32 {
	if p.Time == start.Time {
		return 1
	}
	return p.DistanceTo(start) / float32(p.Time-start.Time)
}
