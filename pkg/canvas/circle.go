package canvas

import (
	"math"

	"go-sim-canvas/pkg/vec"
)

// CircleOptions configures a Circle. A nil Pos means the origin.
type CircleOptions struct {
	DrawOptions
	Pos    *vec.Vec
	Radius float64
}

// Circle is a stroked and/or filled disc. Its position is the caller's
// vector, so moving that vector moves the circle.
type Circle struct {
	*Entity

	opts   DrawOptions
	pos    *vec.Vec
	radius float64
}

// NewCircle creates and registers a circle.
func (r *Registry) NewCircle(opts CircleOptions) *Circle {
	c := &Circle{opts: opts.DrawOptions, pos: opts.Pos, radius: opts.Radius}
	if c.pos == nil {
		c.pos = vec.Zero()
	}
	c.Entity = r.insert(c, opts.DrawFromCenter)
	return c
}

func (c *Circle) SetPos(pos *vec.Vec) *Circle {
	c.pos = pos
	return c
}

func (c *Circle) SetRadius(radius float64) *Circle {
	c.radius = radius
	return c
}

func (c *Circle) SetOptions(o DrawOptions) *Circle {
	c.opts = o
	return c
}

func (c *Circle) Pos() *vec.Vec        { return c.pos }
func (c *Circle) Radius() float64      { return c.radius }
func (c *Circle) Options() DrawOptions { return c.opts }

// Contains reports whether the surface point (px, py) lies inside the
// circle on a surface of the given size.
func (c *Circle) Contains(px, py, width, height float64) bool {
	ox, oy := c.Origin(width, height)
	dx := px - (c.pos.X() + ox)
	dy := py - (c.pos.Y() + oy)
	return dx*dx+dy*dy <= c.radius*c.radius
}

func (c *Circle) Draw(s Surface, ctx DrawContext) {
	o := ctx.Resolve(c.opts)

	s.BeginPath()
	setPaint(s, o)
	s.Arc(c.pos.X()+ctx.OffsetX, c.pos.Y()+ctx.OffsetY, c.radius, 0, 2*math.Pi, false)
	runPaint(s, o)
	s.ClosePath()
}
