// Package canvas is a small retained-mode 2D engine: an ordered registry of
// drawable entities, the primitives Path, Circle and Text, and a
// DrawController that runs the per-frame draw loop on a host scheduler.
//
// Everything in this package is meant to be driven from one goroutine,
// the one that owns the host's frame callbacks.
package canvas

import (
	"image/color"
	"math"
)

// TextAlign is the horizontal anchor of FillText. The zero value is AlignLeft.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
	AlignStart
	AlignEnd
)

// TextBaseline is the vertical anchor of FillText. The zero value is BaselineTop.
type TextBaseline int

const (
	BaselineTop TextBaseline = iota
	BaselineHanging
	BaselineMiddle
	BaselineAlphabetic
	BaselineIdeographic
	BaselineBottom
)

// Surface is a canvas-like 2D drawing target. Paths are built with
// BeginPath/MoveTo/LineTo/Arc and painted with Stroke and Fill, which keep
// the current path. A nil colour style paints nothing.
type Surface interface {
	Size() (width, height float64)
	ClearRect(x, y, width, height float64)

	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc from startAngle to endAngle in radians,
	// joined to the current point by a straight line.
	Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool)
	Stroke()
	Fill()

	// FillText draws text with the fill style. maxWidth <= 0 means no limit.
	FillText(text string, x, y, maxWidth float64)

	SetStrokeStyle(c color.Color)
	SetFillStyle(c color.Color)
	SetLineWidth(width float64)
	// SetFont takes a CSS font shorthand such as "20px Arial".
	SetFont(font string)
	SetTextAlign(align TextAlign)
	SetTextBaseline(baseline TextBaseline)
}

// Clear wipes the whole surface.
func Clear(s Surface) {
	w, h := s.Size()
	s.ClearRect(0, 0, w, h)
}

// Binding holds the surface currently attached by the host. Consumers read
// it on every frame, so attaching a new surface rebinds them all.
type Binding struct {
	surface  Surface
	watchers []func(Surface)
}

// Attach makes s the current surface and notifies watchers.
func (b *Binding) Attach(s Surface) {
	if b.surface == s {
		return
	}
	b.surface = s
	for _, fn := range b.watchers {
		fn(s)
	}
}

// Detach drops the current surface. Frames are skipped until a new one attaches.
func (b *Binding) Detach() {
	b.Attach(nil)
}

// Surface returns the attached surface, or nil.
func (b *Binding) Surface() Surface {
	if b == nil {
		return nil
	}
	return b.surface
}

// OnAttach registers fn to be called with every newly attached surface
// (nil on detach).
func (b *Binding) OnAttach(fn func(Surface)) {
	b.watchers = append(b.watchers, fn)
}

// ArcSweep returns the signed angle swept by a canvas arc. It is shared by
// backends whose native arc has no direction flag.
func ArcSweep(startAngle, endAngle float64, counterClockwise bool) float64 {
	const full = 2 * math.Pi
	sweep := endAngle - startAngle
	if !counterClockwise {
		if sweep >= full {
			return full
		}
		for sweep < 0 {
			sweep += full
		}
		return sweep
	}
	if sweep <= -full {
		return -full
	}
	for sweep > 0 {
		sweep -= full
	}
	return sweep
}
