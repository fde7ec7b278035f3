// internal/sim/hover.go
package sim

import (
	"slices"

	"go-sim-canvas/internal/event"
	"go-sim-canvas/pkg/canvas"
)

var _ event.Listener = (*Hover)(nil)

// Hover highlights the circles under the pointer. A click toggles focus on
// the circles under it and clears focus everywhere else.
type Hover struct {
	binding *canvas.Binding
	targets []*canvas.Circle
}

func NewHover(binding *canvas.Binding, targets ...*canvas.Circle) *Hover {
	return &Hover{binding: binding, targets: targets}
}

func (h *Hover) Add(c *canvas.Circle) { h.targets = append(h.targets, c) }

func (h *Hover) Remove(c *canvas.Circle) {
	h.targets = slices.DeleteFunc(h.targets, func(t *canvas.Circle) bool { return t == c })
}

// Listen subscribes to pointer moves and clicks under one id.
func (h *Hover) Listen(d *event.Dispatcher) event.ListenerID {
	return d.SubscribeAll(h, event.PointerMove, event.Click)
}

func (h *Hover) OnEvent(e event.Event) {
	s := h.binding.Surface()
	p, ok := event.PointerOf(e)
	if s == nil || !ok {
		return
	}
	w, ht := s.Size()
	for _, c := range h.targets {
		inside := c.Contains(p.X, p.Y, w, ht)
		switch e.Type {
		case event.PointerMove:
			c.SetHover(inside)
		case event.Click:
			c.SetFocused(inside && !c.Focused())
		}
	}
}
