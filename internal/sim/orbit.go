// internal/sim/orbit.go
package sim

import (
	"math"

	"go-sim-canvas/internal/config"
	"go-sim-canvas/pkg/canvas"
	"go-sim-canvas/pkg/vec"
)

// Orbit moves a circle around a centre and traces where it has been. The
// trace watches the circle's position, so every Step adds one point.
type Orbit struct {
	registry *canvas.Registry
	store    *config.Store
	cancel   func()

	center *vec.Vec
	pos    *vec.Vec
	angle  float64

	Circle *canvas.Circle
	Trace  *canvas.Path
}

// NewOrbit registers the circle and its trace and follows settings changes
// until Close.
func NewOrbit(r *canvas.Registry, store *config.Store) *Orbit {
	o := &Orbit{registry: r, store: store, center: vec.Zero()}
	o.pos = o.positionAt(0)
	o.Circle = r.NewCircle(canvas.CircleOptions{Pos: o.pos})
	o.Trace = o.newTrace()
	o.cancel = store.Subscribe(o.apply)
	return o
}

func (o *Orbit) newTrace() *canvas.Path {
	sim := o.store.Get()
	return o.registry.NewPath(canvas.PathOptions{
		DrawOptions: o.traceOptions(sim),
		Start:       o.pos,
		MaxCount:    sim.TraceMaxCount,
		AfterEvery:  sim.TraceAfterEvery,
		Watch:       true,
	})
}

func (o *Orbit) traceOptions(sim config.Simulation) canvas.DrawOptions {
	return canvas.DrawOptions{Stroke: o.store.PathColor(), LineWidth: sim.TraceLineWidth}
}

// apply — применяет новые настройки к уже созданным фигурам
func (o *Orbit) apply(sim config.Simulation) {
	o.Trace.SetOptions(o.traceOptions(sim))
	o.Trace.SetMaxCount(sim.TraceMaxCount)
	o.Trace.SetAfterEvery(sim.TraceAfterEvery)
	o.Circle.
		SetRadius(sim.CircleRadius).
		SetOptions(canvas.DrawOptions{Fill: o.store.CircleColor()})
}

func (o *Orbit) positionAt(angle float64) *vec.Vec {
	r := o.store.Get().OrbitRadius
	return vec.New(o.center.X()+r*math.Cos(angle), o.center.Y()+r*math.Sin(angle))
}

// SetCenter moves the centre of the orbit, in entity coordinates.
func (o *Orbit) SetCenter(x, y float64) {
	o.center.Set(x, y)
	o.move()
}

func (o *Orbit) Angle() float64 { return o.angle }
func (o *Orbit) Pos() *vec.Vec  { return o.pos }

// Step advances the orbit by dt seconds. It is the frame callback of the
// draw controller.
func (o *Orbit) Step(dt float64) {
	dt = min(dt, config.MaxDeltaTime)
	sim := o.store.Get()
	o.angle = math.Mod(o.angle+sim.OrbitSpeed*dt, 2*math.Pi)
	o.move()
	if sim.TraceDecay > 0 {
		o.Trace.Decay(sim.TraceDecay, dt)
	}
}

func (o *Orbit) move() {
	p := o.positionAt(o.angle)
	o.pos.Set(p.X(), p.Y())
}

// Reset puts the circle back at angle zero and starts a new trace there.
func (o *Orbit) Reset() {
	o.Trace.Remove()
	o.angle = 0
	o.move()
	o.Trace = o.newTrace()
}

// Close stops following settings and removes both entities.
func (o *Orbit) Close() {
	o.cancel()
	o.Trace.Remove()
	o.Circle.Remove()
}
