package canvas

import "image/color"

// DrawOptions is the paint configuration of a primitive. A nil Stroke or
// Fill means the shape is not stroked or not filled.
type DrawOptions struct {
	Stroke    color.Color
	Fill      color.Color
	LineWidth float64
	// DrawFromCenter overrides the registry default when set.
	DrawFromCenter *bool
}

// Bool returns a pointer to b, for DrawOptions.DrawFromCenter.
func Bool(b bool) *bool { return &b }

// Theme is the read-only configuration the core polls while drawing.
type Theme interface {
	HoverStroke() color.Color
	ClickStroke() color.Color
	// DrawFromCenter is the default coordinate convention for new entities.
	DrawFromCenter() bool
}

// StaticTheme is a Theme with fixed values.
type StaticTheme struct {
	Hover    color.Color
	Click    color.Color
	Centered bool
}

func (t StaticTheme) HoverStroke() color.Color { return t.Hover }
func (t StaticTheme) ClickStroke() color.Color { return t.Click }
func (t StaticTheme) DrawFromCenter() bool     { return t.Centered }

// DrawContext carries per-draw state from an entity to its drawable.
type DrawContext struct {
	// OffsetX and OffsetY translate every coordinate of the drawable.
	OffsetX, OffsetY float64
	// Stroke, when non-nil, replaces the drawable's stroke for this call only.
	Stroke color.Color
}

// Resolve returns the options to paint with for this draw call.
func (ctx DrawContext) Resolve(o DrawOptions) DrawOptions {
	if ctx.Stroke != nil {
		o.Stroke = ctx.Stroke
	}
	return o
}

func setPaint(s Surface, o DrawOptions) {
	s.SetStrokeStyle(o.Stroke)
	s.SetLineWidth(o.LineWidth)
	s.SetFillStyle(o.Fill)
}

func runPaint(s Surface, o DrawOptions) {
	if o.Stroke != nil {
		s.Stroke()
	}
	if o.Fill != nil {
		s.Fill()
	}
}
