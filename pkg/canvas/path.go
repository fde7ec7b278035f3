package canvas

import (
	"math"

	"go-sim-canvas/pkg/vec"
)

// PathOptions configures a Path.
type PathOptions struct {
	DrawOptions
	// Start seeds the buffer. A nil Start seeds it with the origin.
	Start *vec.Vec
	// MaxCount bounds the buffer; oldest points go first. Zero or less
	// means unbounded.
	MaxCount int
	// AfterEvery keeps only every Nth added point. Zero or less keeps all.
	AfterEvery int
	// Watch adds every new value of Start to the path until it is removed
	// or Unwatch is called.
	Watch bool
}

// Path is a polyline through a bounded buffer of sampled points.
type Path struct {
	*Entity

	opts    PathOptions
	points  []*vec.Vec
	counter int
	elapsed float64
	unwatch func()
}

// NewPath creates and registers a path.
func (r *Registry) NewPath(opts PathOptions) *Path {
	p := &Path{opts: opts}
	p.points = []*vec.Vec{p.seed()}
	p.Entity = r.insert(p, opts.DrawFromCenter)

	if opts.Watch && opts.Start != nil {
		p.unwatch = opts.Start.OnChange(func(v *vec.Vec) { p.Add(v) })
		p.Entity.onRemove = p.Unwatch
	}
	return p
}

// Unwatch stops following Start. Safe to call more than once.
func (p *Path) Unwatch() {
	if p.unwatch != nil {
		p.unwatch()
		p.unwatch = nil
	}
}

func (p *Path) seed() *vec.Vec {
	if p.opts.Start != nil {
		return p.opts.Start.Copy()
	}
	return vec.Zero()
}

// Add appends a copy of point, subject to decimation and the capacity.
func (p *Path) Add(point *vec.Vec) {
	if p.opts.AfterEvery > 0 {
		p.counter++
		if p.counter < p.opts.AfterEvery {
			return
		}
		p.counter = 0
	}
	p.points = append(p.points, point.Copy())
	p.trim()
}

func (p *Path) trim() {
	max := p.opts.MaxCount
	if max <= 0 || len(p.points) <= max {
		return
	}
	n := len(p.points) - max
	clear(p.points[:n])
	p.points = p.points[n:]
}

// Decay removes points from the front at rate points per second of
// frameTime. Time accumulates across calls until at least one point is due,
// so fractional progress is never lost. The buffer may end up empty.
func (p *Path) Decay(rate, frameTime float64) {
	p.elapsed += frameTime
	count := int(math.Floor(p.elapsed * rate))
	if count <= 0 {
		return
	}
	count = min(count, len(p.points))
	clear(p.points[:count])
	p.points = p.points[count:]
	p.elapsed = 0
}

// Reset collapses the buffer to its first point, or the origin if empty.
func (p *Path) Reset() {
	first := vec.Zero()
	if len(p.points) > 0 {
		first = p.points[0]
	}
	p.points = []*vec.Vec{first}
	p.elapsed = 0
	p.counter = 0
}

// SetMaxCount changes the capacity and trims right away.
func (p *Path) SetMaxCount(max int) {
	p.opts.MaxCount = max
	p.trim()
}

// SetAfterEvery changes the decimation step. The counter restarts only when
// the step actually changes.
func (p *Path) SetAfterEvery(n int) {
	if n == p.opts.AfterEvery {
		return
	}
	p.opts.AfterEvery = n
	p.counter = 0
}

func (p *Path) SetLineWidth(width float64) { p.opts.LineWidth = width }

// SetOptions replaces the paint options. Buffer shaping is unaffected.
func (p *Path) SetOptions(o DrawOptions) { p.opts.DrawOptions = o }

func (p *Path) Options() PathOptions { return p.opts }

func (p *Path) Len() int { return len(p.points) }

// Points returns copies of the retained points, oldest first.
func (p *Path) Points() []*vec.Vec {
	out := make([]*vec.Vec, len(p.points))
	for i, pt := range p.points {
		out[i] = pt.Copy()
	}
	return out
}

func (p *Path) Draw(s Surface, ctx DrawContext) {
	if len(p.points) < 1 {
		return
	}
	o := ctx.Resolve(p.opts.DrawOptions)

	s.BeginPath()
	setPaint(s, o)
	first := p.points[0]
	s.MoveTo(first.X()+ctx.OffsetX, first.Y()+ctx.OffsetY)
	for _, pt := range p.points[1:] {
		s.LineTo(pt.X()+ctx.OffsetX, pt.Y()+ctx.OffsetY)
	}
	runPaint(s, o)
	s.ClosePath()
}
