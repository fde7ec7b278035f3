// cmd/termsim/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"go-sim-canvas/internal/config"
	"go-sim-canvas/internal/event"
	"go-sim-canvas/internal/sim"
	"go-sim-canvas/internal/state"
	"go-sim-canvas/pkg/canvas"
	"go-sim-canvas/pkg/render/termsurface"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	configPath := flag.String("config", "", "JSON settings file")
	showFPS := flag.Bool("fps", false, "show the FPS readout")
	flag.Parse()

	if err := run(*configPath, *showFPS); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string, showFPS bool) error {
	store, err := config.LoadStore(configPath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	surface := termsurface.New(screen)
	binding := &canvas.Binding{}
	binding.Attach(surface)
	queue := canvas.NewFrameQueue()
	events := event.NewDispatcher()

	registry := canvas.NewRegistry(store)
	orbit := sim.NewOrbit(registry, store)
	center := func() {
		if store.DrawFromCenter() {
			return
		}
		w, h := surface.Size()
		orbit.SetCenter(w/2, h/2)
	}
	center()
	events.Subscribe(event.Resize, event.ListenerFunc(func(event.Event) { center() }))
	sim.NewHover(binding, orbit.Circle).Listen(events)

	controller := canvas.NewDrawController(orbit.Step, canvas.ControllerConfig{
		Registry:  registry,
		Scheduler: queue,
		Binding:   binding,
	})
	sm := state.NewStateMachine(controller)
	sm.OnReset(orbit.Reset)
	sm.SetShowFPS(showFPS || store.Get().ShowFPS)
	sm.Listen(events)
	sm.SetState(state.NewRunState(sm))

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	var mouse pointer
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				if key, ok := keyOf(ev); ok {
					events.Dispatch(event.Event{Type: event.KeyDown, Data: key})
				}
			case *tcell.EventMouse:
				for _, e := range mouse.translate(ev) {
					events.Dispatch(e)
				}
			case *tcell.EventResize:
				screen.Sync()
				cols, rows := ev.Size()
				events.Dispatch(event.Event{Type: event.Resize, Data: event.Size{Width: cols, Height: rows}})
			}

		case <-ticker.C:
			if queue.Flush() > 0 {
				surface.Show()
			}
		}
	}
}
