package ink

import "image/color"

// Options configures one pad. Zero fields fall back to the defaults below;
// there is no further validation.
type Options struct {
	// VelocityFilterWeight is the weight of the newest velocity sample in
	// the exponential smoothing, in (0,1]. Default 0.7.
	VelocityFilterWeight float32
	// MinWidth and MaxWidth bound the rendered stroke width. Defaults 0.5
	// and 2.5.
	MinWidth float32
	MaxWidth float32
	// DotSize gives the radius of a single-point stroke. Nil means the
	// midpoint of MinWidth and MaxWidth.
	DotSize func() float32
	// PenColor fills strokes, BackgroundColor fills the cleared surface.
	// Defaults: black pen, transparent background.
	PenColor        color.Color
	BackgroundColor color.Color
}

func (o Options) withDefaults() Options {
	if o.VelocityFilterWeight <= 0 {
		o.VelocityFilterWeight = 0.7
	}
	if o.MinWidth <= 0 {
		o.MinWidth = 0.5
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = 2.5
	}
	if o.PenColor == nil {
		o.PenColor = color.Black
	}
	if o.BackgroundColor == nil {
		o.BackgroundColor = color.Transparent
	}
	return o
}

func (o Options) dotSize() float32 {
	if o.DotSize != nil {
		return o.DotSize()
	}
	return (o.MinWidth + o.MaxWidth) / 2
}
