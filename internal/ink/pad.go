package ink

import (
	"image/color"
	"time"
)

// Observer is notified at gesture boundaries. StrokeEnded receives the
// finished point group; neither call returns anything to consume.
type Observer interface {
	StrokeBegan(p Point)
	StrokeEnded(group PointGroup)
}

// Pad is the stroke engine: it windows raw samples into curve segments,
// modulates their width by velocity and renders them onto the surface.
// It is single-threaded by contract; every event runs to completion and
// the current gesture state is never shared.
type Pad struct {
	surface   Surface
	opts      Options
	now       func() int64
	cur       *gesture
	drawing   []PointGroup
	observers []Observer
	empty     bool
}

// New wires a pad to its surface. Zero option fields take defaults.
func New(surface Surface, opts Options) *Pad {
	return &Pad{
		surface: surface,
		opts:    opts.withDefaults(),
		now:     func() int64 { return time.Now().UnixMilli() },
		empty:   true,
	}
}

// AddObserver registers o for gesture begin/end notifications.
func (p *Pad) AddObserver(o Observer) {
	p.observers = append(p.observers, o)
}

// SetPenColor switches the ink color for subsequent strokes.
func (p *Pad) SetPenColor(c color.Color) {
	if c != nil {
		p.opts.PenColor = c
	}
}

// StrokeBegin starts a gesture at the given surface-local position. A
// zero timestamp is resolved against the wall clock. The new point group
// is committed to the drawing immediately; an early-ending gesture keeps
// whatever it accumulated.
func (p *Pad) StrokeBegin(x, y float32, t int64) {
	pt := p.point(x, y, t)
	p.cur = newGesture(p.opts)
	p.drawing = append(p.drawing, PointGroup{})

	for _, o := range p.observers {
		o.StrokeBegan(pt)
	}
	p.strokeUpdate(pt)
}

// StrokeUpdate feeds the next sample of the active gesture. Without an
// active gesture it is a no-op.
func (p *Pad) StrokeUpdate(x, y float32, t int64) {
	if p.cur == nil {
		return
	}
	p.strokeUpdate(p.point(x, y, t))
}

// StrokeEnd closes the active gesture. A gesture too short to have
// produced any curve (one or two samples) is rendered as a single dot at
// its first point.
func (p *Pad) StrokeEnd(t int64) {
	if p.cur == nil {
		return
	}
	g := p.cur
	p.cur = nil

	if g.size > 0 && g.size <= 2 {
		drawDot(p.surface, p.opts.PenColor, g.window[0], p.opts.dotSize())
		p.empty = false
	}

	group := p.drawing[len(p.drawing)-1]
	for _, o := range p.observers {
		o.StrokeEnded(group)
	}
}

// Clear wipes the surface, repaints the background and drops all
// committed point groups.
func (p *Pad) Clear() {
	p.surface.ClearRegion()
	p.surface.FillRegion(p.opts.BackgroundColor)
	p.cur = nil
	p.drawing = nil
	p.empty = true
}

// IsEmpty reports whether any ink has been committed since the last
// clear or replay.
func (p *Pad) IsEmpty() bool {
	return p.empty
}

// Data returns a deep copy of the committed point groups, ordered as
// captured.
func (p *Pad) Data() []PointGroup {
	groups := make([]PointGroup, len(p.drawing))
	for i, g := range p.drawing {
		groups[i] = append(PointGroup(nil), g...)
	}
	return groups
}

// SetData clears the pad and deterministically replays the given point
// groups through the same pipeline as live capture, then adopts them as
// the pad's drawing.
func (p *Pad) SetData(groups []PointGroup) {
	p.Clear()
	p.replay(groups)

	p.drawing = make([]PointGroup, len(groups))
	for i, g := range groups {
		p.drawing[i] = append(PointGroup(nil), g...)
	}
}

// DrawGroup replays one persisted point group on top of the current
// drawing, without clearing, and commits it. Used when a stroke arrives
// from a peer.
func (p *Pad) DrawGroup(group PointGroup) {
	p.replay([]PointGroup{group})
	p.drawing = append(p.drawing, append(PointGroup(nil), group...))
}

func (p *Pad) replay(groups []PointGroup) {
	replayGroups(groups, p.opts,
		func(seg Segment) {
			drawSegment(p.surface, p.opts.PenColor, seg)
			p.empty = false
		},
		func(pt Point) {
			drawDot(p.surface, p.opts.PenColor, pt, p.opts.dotSize())
			p.empty = false
		})
}

func (p *Pad) point(x, y float32, t int64) Point {
	if t == 0 {
		t = p.now()
	}
	return Point{X: x, Y: y, Time: t}
}

func (p *Pad) strokeUpdate(pt Point) {
	last := len(p.drawing) - 1
	p.drawing[last] = append(p.drawing[last], pt)

	if seg, ok := p.cur.add(pt, p.opts); ok {
		drawSegment(p.surface, p.opts.PenColor, seg)
		p.empty = false
	}
}

// replayGroups runs persisted groups through fresh per-gesture state,
// emitting the same segments as live capture. The last point of a group
// only closes the window; a one-point group becomes a dot.
func replayGroups(groups []PointGroup, opts Options, onSegment func(Segment), onDot func(Point)) {
	for _, group := range groups {
		switch {
		case len(group) > 1:
			g := newGesture(opts)
			for j, pt := range group {
				seg, ok := g.add(pt, opts)
				if ok && j < len(group)-1 {
					onSegment(seg)
				}
			}
		case len(group) == 1:
			onDot(group[0])
		}
	}
}
