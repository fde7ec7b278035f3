package canvas

import (
	"fmt"
	"image/color"
	"time"

	"go-sim-canvas/pkg/vec"
)

// LoopState is the state of a DrawController's animation loop.
type LoopState int

const (
	Idle LoopState = iota
	Running
	Paused
)

func (s LoopState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("LoopState(%d)", int(s))
}

const (
	// fpsWindow is how many seconds of frames each FPS estimate averages.
	fpsWindow  = 0.5
	initialFPS = 165
)

// ControllerConfig wires a DrawController to its host.
type ControllerConfig struct {
	// Registry is drawn after the frame callback. Optional.
	Registry *Registry
	// Scheduler fires the frames. Required.
	Scheduler Scheduler
	// Binding supplies the surface. Frames without a surface draw nothing.
	Binding *Binding
	// Clock defaults to SystemClock.
	Clock Clock
}

// DrawController runs the per-frame draw loop: clear the surface, draw the
// FPS readout, call the frame callback with the elapsed seconds, then draw
// every visible entity.
type DrawController struct {
	draw      func(dt float64)
	registry  *Registry
	scheduler Scheduler
	binding   *Binding
	clock     Clock

	state LoopState
	frame FrameID
	start time.Time

	showFPS   bool
	fpsTime   float64
	fpsFrames int
	fps       float64
	fpsText   *Text
}

// NewDrawController returns an idle controller. draw may be nil.
func NewDrawController(draw func(dt float64), cfg ControllerConfig) *DrawController {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	c := &DrawController{
		draw:      draw,
		registry:  cfg.Registry,
		scheduler: cfg.Scheduler,
		binding:   cfg.Binding,
		clock:     cfg.Clock,
		fps:       initialFPS,
	}
	c.fpsText = newText(TextOptions{
		TextStyle: TextStyle{DrawOptions: DrawOptions{Fill: color.White}},
		Pos:       vec.New(50, 50),
	})
	c.fpsText.SetText(c.fpsLabel())
	return c
}

// Run starts or resumes the loop. It does nothing while already running.
func (c *DrawController) Run() {
	if c.state == Running {
		return
	}
	c.state = Running
	c.start = c.clock.Now()
	c.schedule()
}

// Pause stops the loop and cancels the pending frame. Pausing an idle or
// paused controller only records the paused state.
func (c *DrawController) Pause() {
	c.state = Paused
	if c.frame != 0 {
		c.scheduler.CancelFrame(c.frame)
		c.frame = 0
	}
}

func (c *DrawController) IsRunning() bool  { return c.state == Running }
func (c *DrawController) State() LoopState { return c.state }

// ShowFPS toggles the FPS readout.
func (c *DrawController) ShowFPS(show bool) { c.showFPS = show }

// FPS returns the latest estimate.
func (c *DrawController) FPS() float64 { return c.fps }

func (c *DrawController) schedule() {
	if c.frame == 0 {
		c.frame = c.scheduler.RequestFrame(c.tick)
	}
}

func (c *DrawController) tick() {
	c.frame = 0
	// A frame that survived Pause must not draw.
	if c.state != Running {
		return
	}

	now := c.clock.Now()
	dt := now.Sub(c.start).Seconds()
	c.start = now

	if s := c.binding.Surface(); s != nil {
		Clear(s)
		if c.showFPS {
			c.updateFPS(dt)
			c.fpsText.Draw(s, DrawContext{})
		}
		if c.draw != nil {
			c.draw(dt)
		}
		if c.registry != nil {
			c.registry.Draw(s)
		}
	}

	if c.state == Running {
		c.schedule()
	}
}

func (c *DrawController) updateFPS(dt float64) {
	c.fpsTime += dt
	c.fpsFrames++
	if c.fpsTime >= fpsWindow {
		c.fps = float64(c.fpsFrames) / c.fpsTime
		c.fpsTime = 0
		c.fpsFrames = 0
	}
	c.fpsText.SetText(c.fpsLabel())
}

func (c *DrawController) fpsLabel() string {
	return fmt.Sprintf("FPS: %.2f", c.fps)
}
