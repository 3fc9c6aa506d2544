package ink

import "github.com/chewxy/math32"

// Segment is one emitted curve with its boundary widths.
type Segment struct {
	Curve      Bezier
	StartWidth float32
	EndWidth   float32
}

// widthState carries the smoothed velocity across one gesture.
type widthState struct {
	lastVelocity float32
	lastWidth    float32
}

// segment wraps a curve with widths interpolating from the previous
// segment's end width to one derived from the smoothed velocity, then
// advances the state.
func (w *widthState) segment(curve Bezier, o Options) Segment {
	velocity := curve.End.VelocityFrom(curve.Start)
	velocity = o.VelocityFilterWeight*velocity + (1-o.VelocityFilterWeight)*w.lastVelocity

	newWidth := strokeWidth(velocity, o)
	seg := Segment{Curve: curve, StartWidth: w.lastWidth, EndWidth: newWidth}

	w.lastVelocity = velocity
	w.lastWidth = newWidth
	return seg
}

// strokeWidth maps a smoothed velocity to a width. Velocity is never
// negative, so the result always lands in [MinWidth, MaxWidth].
func strokeWidth(velocity float32, o Options) float32 {
	return math32.Max(o.MaxWidth/(velocity+1), o.MinWidth)
}

// gesture is the transient state of one pen-down-to-pen-up sequence: a
// bounded four-point window plus the width state. It is created fresh at
// every stroke begin and owned by exactly one pad.
type gesture struct {
	window [4]Point
	size   int
	width  widthState
}

func newGesture(o Options) *gesture {
	return &gesture{width: widthState{lastWidth: (o.MinWidth + o.MaxWidth) / 2}}
}

// add pushes a sample into the window and emits at most one segment. The
// first segment is primed by duplicating the oldest sample, so a gesture
// starts producing curves on its third point instead of its fourth.
func (g *gesture) add(p Point, o Options) (Segment, bool) {
	g.window[g.size] = p
	g.size++

	if g.size == 3 {
		g.window[3] = g.window[2]
		g.window[2] = g.window[1]
		g.window[1] = g.window[0]
		g.size = 4
	}
	if g.size < 4 {
		return Segment{}, false
	}

	_, c2 := controlPoints(g.window[0], g.window[1], g.window[2])
	c3, _ := controlPoints(g.window[1], g.window[2], g.window[3])
	curve := Bezier{Start: g.window[1], Control1: c2, Control2: c3, End: g.window[2]}
	seg := g.width.segment(curve, o)

	// drop the oldest sample, keeping room for the next one
	g.window[0], g.window[1], g.window[2] = g.window[1], g.window[2], g.window[3]
	g.size = 3

	return seg, true
}
