package ink

import "github.com/chewxy/math32"

// Bezier is one cubic curve segment between two window points.
type Bezier struct {
	Start    Point
	Control1 Point
	Control2 Point
	End      Point
}

// At evaluates the curve position at t in [0,1].
func (b Bezier) At(t float32) (x, y float32) {
	tt := t * t
	ttt := tt * t
	u := 1 - t
	uu := u * u
	uuu := uu * u

	x = uuu*b.Start.X + 3*uu*t*b.Control1.X + 3*u*tt*b.Control2.X + ttt*b.End.X
	y = uuu*b.Start.Y + 3*uu*t*b.Control1.Y + 3*u*tt*b.Control2.Y + ttt*b.End.Y
	return x, y
}

// Length approximates arc length by summing chords over a fixed 10-step
// polyline. Good enough to size the dot count per segment.
func (b Bezier) Length() float32 {
	const steps = 10

	var length, px, py float32
	for i := 0; i <= steps; i++ {
		x, y := b.At(float32(i) / steps)
		if i > 0 {
			length += math32.Hypot(x-px, y-py)
		}
		px, py = x, y
	}
	return length
}

// controlPoints estimates the spline control pair around s2 from three
// consecutive samples: c1 closes a segment ending at s2, c2 opens the one
// starting there, with a continuous tangent between them. Coincident
// samples (zero combined length) fall back to a zero blend factor rather
// than dividing by zero.
func controlPoints(s1, s2, s3 Point) (c1, c2 Point) {
	m1x, m1y := (s1.X+s2.X)/2, (s1.Y+s2.Y)/2
	m2x, m2y := (s2.X+s3.X)/2, (s2.Y+s3.Y)/2

	l1 := s1.DistanceTo(s2)
	l2 := s2.DistanceTo(s3)

	var k float32
	if l1+l2 > 0 {
		k = l2 / (l1 + l2)
	}
	cmx := m2x + (m1x-m2x)*k
	cmy := m2y + (m1y-m2y)*k

	tx := s2.X - cmx
	ty := s2.Y - cmy

	c1 = Point{X: m1x + tx, Y: m1y + ty}
	c2 = Point{X: m2x + tx, Y: m2y + ty}
	return c1, c2
}
