// cmd/snapshot/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"go-sim-canvas/internal/config"
	"go-sim-canvas/internal/sim"
	"go-sim-canvas/pkg/canvas"
	"go-sim-canvas/pkg/render"
	"go-sim-canvas/pkg/render/imagesurface"
)

// stepClock advances by a fixed step per frame so snapshots are reproducible.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time          { return c.now }
func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type options struct {
	configPath    string
	frames        int
	out           string
	width, height int
	showFPS       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "JSON settings file")
	flag.IntVar(&opts.frames, "frames", config.SnapshotFrames, "number of frames to simulate")
	flag.StringVar(&opts.out, "out", "orbit.png", "output PNG file")
	flag.IntVar(&opts.width, "width", config.ScreenWidth, "image width in pixels")
	flag.IntVar(&opts.height, "height", config.ScreenHeight, "image height in pixels")
	flag.BoolVar(&opts.showFPS, "fps", false, "draw the FPS readout")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	store, err := config.LoadStore(opts.configPath)
	if err != nil {
		return err
	}

	faces := render.NewFaces()
	defer faces.Close()

	surface := imagesurface.New(opts.width, opts.height, faces)
	binding := &canvas.Binding{}
	binding.Attach(surface)

	registry := canvas.NewRegistry(store)
	orbit := sim.NewOrbit(registry, store)
	if !store.DrawFromCenter() {
		orbit.SetCenter(float64(opts.width)/2, float64(opts.height)/2)
	}

	queue := canvas.NewFrameQueue()
	clock := &stepClock{now: time.Unix(0, 0)}
	controller := canvas.NewDrawController(orbit.Step, canvas.ControllerConfig{
		Registry:  registry,
		Scheduler: queue,
		Binding:   binding,
		Clock:     clock,
	})
	controller.ShowFPS(opts.showFPS || store.Get().ShowFPS)
	controller.Run()

	stepSeconds := config.SnapshotStep
	step := time.Duration(stepSeconds * float64(time.Second))
	ran := simulate(queue, clock, opts.frames, step)

	if err := surface.SavePNG(opts.out); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	log.Printf("wrote %s after %d frames", opts.out, ran)
	return nil
}

// simulate flushes up to frames frames and returns how many actually ran.
// It stops early once nothing is scheduled.
func simulate(queue *canvas.FrameQueue, clock *stepClock, frames int, step time.Duration) int {
	ran := 0
	for ran < frames {
		clock.Advance(step)
		if queue.Flush() == 0 {
			break
		}
		ran++
	}
	return ran
}
