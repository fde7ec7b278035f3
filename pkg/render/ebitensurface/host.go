// pkg/render/ebitensurface/host.go
package ebitensurface

import (
	"image/color"

	"go-sim-canvas/internal/event"
	"go-sim-canvas/pkg/canvas"
	"go-sim-canvas/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	_ ebiten.Game      = (*Host)(nil)
	_ canvas.Scheduler = (*Host)(nil)
)

// keyNames are the keys forwarded as event.KeyDown.
var keyNames = map[ebiten.Key]event.Key{
	ebiten.KeySpace:  "Space",
	ebiten.KeyEscape: "Escape",
	ebiten.KeyEnter:  "Enter",
	ebiten.KeyF:      "F",
	ebiten.KeyP:      "P",
	ebiten.KeyR:      "R",
	ebiten.KeyC:      "C",
	ebiten.KeyH:      "H",
	ebiten.KeyF9:     "F9",
}

// Host runs canvas frames inside an ebiten game. Frames requested through
// RequestFrame fire once per ebiten Draw, before the canvas is shown, and
// draw onto an offscreen image that persists between frames the way a web
// canvas does.
type Host struct {
	Background color.Color

	width, height int
	queue         *canvas.FrameQueue
	binding       *canvas.Binding
	offscreen     *ebiten.Image
	surface       *Surface
	events        *event.Dispatcher

	cursorX, cursorY int
	pressX, pressY   int
	update           func() error
}

// NewHost creates a host of the given logical size and attaches its surface
// to binding. Pointer and key input is dispatched to events when it is not nil.
func NewHost(width, height int, binding *canvas.Binding, events *event.Dispatcher, faces *render.Faces) *Host {
	h := &Host{
		Background: color.RGBA{20, 20, 30, 255},
		width:      width,
		height:     height,
		queue:      canvas.NewFrameQueue(),
		binding:    binding,
		events:     events,
		cursorX:    -1,
		cursorY:    -1,
	}
	h.offscreen = ebiten.NewImage(width, height)
	h.surface = New(h.offscreen, faces)
	binding.Attach(h.surface)
	return h
}

// OnUpdate sets a hook called once per tick after input is dispatched.
// A non-nil error ends the game.
func (h *Host) OnUpdate(fn func() error) { h.update = fn }

func (h *Host) Surface() *Surface { return h.surface }

func (h *Host) RequestFrame(fn func()) canvas.FrameID { return h.queue.RequestFrame(fn) }
func (h *Host) CancelFrame(id canvas.FrameID)         { h.queue.CancelFrame(id) }

func (h *Host) Update() error {
	if h.events != nil {
		h.dispatchInput()
	}
	if h.update != nil {
		return h.update()
	}
	return nil
}

func (h *Host) dispatchInput() {
	x, y := ebiten.CursorPosition()
	if x != h.cursorX || y != h.cursorY {
		h.cursorX, h.cursorY = x, y
		h.dispatchPointer(event.PointerMove, x, y, -1)
	}

	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight} {
		if inpututil.IsMouseButtonJustPressed(b) {
			h.pressX, h.pressY = x, y
			h.dispatchPointer(event.PointerDown, x, y, int(b))
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			h.dispatchPointer(event.PointerUp, x, y, int(b))
			// Клик — только если курсор не сдвинулся
			if x == h.pressX && y == h.pressY {
				h.dispatchPointer(event.Click, x, y, int(b))
			}
		}
	}

	for key, name := range keyNames {
		if inpututil.IsKeyJustPressed(key) {
			h.events.Dispatch(event.Event{Type: event.KeyDown, Data: name})
		}
	}
}

func (h *Host) dispatchPointer(t event.EventType, x, y, button int) {
	h.events.Dispatch(event.Event{
		Type: t,
		Data: event.Pointer{X: float64(x), Y: float64(y), Button: button},
	})
}

// Draw fires pending canvas frames, then shows the canvas.
func (h *Host) Draw(screen *ebiten.Image) {
	h.queue.Flush()
	if h.Background != nil {
		screen.Fill(h.Background)
	}
	screen.DrawImage(h.offscreen, nil)
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}
