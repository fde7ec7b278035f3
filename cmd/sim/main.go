// cmd/sim/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"go-sim-canvas/internal/config"
	"go-sim-canvas/internal/event"
	"go-sim-canvas/internal/sim"
	"go-sim-canvas/internal/state"
	"go-sim-canvas/pkg/canvas"
	"go-sim-canvas/pkg/render"
	"go-sim-canvas/pkg/render/ebitensurface"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "JSON settings file")
	showFPS := flag.Bool("fps", false, "show the FPS readout")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	store, err := config.LoadStore(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	faces := render.NewFaces()
	defer faces.Close()

	registry := canvas.NewRegistry(store)
	binding := &canvas.Binding{}
	events := event.NewDispatcher()
	host := ebitensurface.NewHost(config.ScreenWidth, config.ScreenHeight, binding, events, faces)
	host.Background = config.BackgroundColor

	orbit := sim.NewOrbit(registry, store)
	if !store.DrawFromCenter() {
		orbit.SetCenter(config.ScreenWidth/2, config.ScreenHeight/2)
	}
	sim.NewHover(binding, orbit.Circle).Listen(events)

	controller := canvas.NewDrawController(orbit.Step, canvas.ControllerConfig{
		Registry:  registry,
		Scheduler: host,
		Binding:   binding,
	})

	sm := state.NewStateMachine(controller) // Создаём машину состояний
	sm.OnReset(orbit.Reset)
	sm.SetShowFPS(*showFPS || store.Get().ShowFPS)
	sm.Listen(events)
	sm.SetState(state.NewRunState(sm))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Orbit trace")
	if err := ebiten.RunGame(host); err != nil {
		log.Fatal(err)
	}
}
