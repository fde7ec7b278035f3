// internal/config/store.go
package config

import (
	"fmt"
	"image/color"
	"log"

	"go-sim-canvas/pkg/canvas"
	"go-sim-canvas/pkg/render"
)

var _ canvas.Theme = (*Store)(nil)

type palette struct {
	path, circle, hover, click color.Color
}

// Store holds the live settings. The canvas core reads it as a Theme on
// every draw and never writes to it.
type Store struct {
	sim     Simulation
	colors  palette
	nextID  int
	watches map[int]func(Simulation)
}

// NewStore returns a store holding sim. It fails if a colour cannot be parsed.
func NewStore(sim Simulation) (*Store, error) {
	s := &Store{watches: make(map[int]func(Simulation))}
	if err := s.apply(sim); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadStore builds a store from the settings file at path. An empty path or
// an unreadable file falls back to the defaults.
func LoadStore(path string) (*Store, error) {
	sim := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			log.Printf("config: %v, using defaults", err)
		} else {
			sim = loaded
		}
	}
	return NewStore(sim)
}

func (s *Store) Get() Simulation { return s.sim }

// Set replaces the settings and notifies subscribers. Invalid colours leave
// the store unchanged.
func (s *Store) Set(sim Simulation) error {
	if err := s.apply(sim); err != nil {
		return err
	}
	for _, fn := range s.snapshot() {
		fn(sim)
	}
	return nil
}

// Update applies fn to a copy of the current settings and stores the result.
func (s *Store) Update(fn func(*Simulation)) error {
	sim := s.sim
	fn(&sim)
	return s.Set(sim)
}

// Subscribe calls fn with the current settings, then after every Set.
func (s *Store) Subscribe(fn func(Simulation)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.watches[id] = fn
	fn(s.sim)
	return func() { delete(s.watches, id) }
}

func (s *Store) snapshot() []func(Simulation) {
	fns := make([]func(Simulation), 0, len(s.watches))
	for id := 1; id <= s.nextID; id++ {
		if fn, ok := s.watches[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

func (s *Store) apply(sim Simulation) error {
	var p palette
	for _, c := range []struct {
		name string
		src  string
		dst  *color.Color
	}{
		{"pathColor", sim.PathColor, &p.path},
		{"circleColor", sim.CircleColor, &p.circle},
		{"hoverStroke", sim.HoverStroke, &p.hover},
		{"clickStroke", sim.ClickStroke, &p.click},
	} {
		parsed, err := render.ParseColor(c.src)
		if err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = parsed
	}
	s.sim = sim
	s.colors = p
	return nil
}

func (s *Store) PathColor() color.Color   { return s.colors.path }
func (s *Store) CircleColor() color.Color { return s.colors.circle }
func (s *Store) HoverStroke() color.Color { return s.colors.hover }
func (s *Store) ClickStroke() color.Color { return s.colors.click }
func (s *Store) DrawFromCenter() bool     { return s.sim.DrawFromCenter }
