// cmd/termsim/input.go
package main

import (
	"unicode"

	"go-sim-canvas/internal/event"
	"go-sim-canvas/pkg/render/termsurface"

	"github.com/gdamore/tcell/v2"
)

// keyOf maps a terminal key press to the names the window host uses.
func keyOf(ev *tcell.EventKey) (event.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return "Escape", true
	case tcell.KeyEnter:
		return "Enter", true
	case tcell.KeyF9:
		return "F9", true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return "Space", true
		}
		if unicode.IsLetter(r) {
			return event.Key(string(unicode.ToUpper(r))), true
		}
	}
	return "", false
}

// pointer turns tcell mouse reports into pointer events. Cell positions are
// reported at the centre of the cell, in virtual pixels.
type pointer struct {
	col, row           int
	pressCol, pressRow int
	buttons            tcell.ButtonMask
	seen               bool
}

var buttons = []struct {
	mask   tcell.ButtonMask
	button int
}{
	{tcell.Button1, 0}, // левая
	{tcell.Button2, 2}, // правая, как ebiten.MouseButtonRight
}

func (p *pointer) translate(ev *tcell.EventMouse) []event.Event {
	col, row := ev.Position()
	data := event.Pointer{
		X: (float64(col) + 0.5) * termsurface.CellWidth,
		Y: (float64(row) + 0.5) * termsurface.CellHeight,
	}

	var out []event.Event
	if !p.seen || col != p.col || row != p.row {
		p.seen = true
		p.col, p.row = col, row
		move := data
		move.Button = -1
		out = append(out, event.Event{Type: event.PointerMove, Data: move})
	}

	now := ev.Buttons()
	for _, b := range buttons {
		was, is := p.buttons&b.mask != 0, now&b.mask != 0
		d := data
		d.Button = b.button
		switch {
		case is && !was:
			p.pressCol, p.pressRow = col, row
			out = append(out, event.Event{Type: event.PointerDown, Data: d})
		case was && !is:
			out = append(out, event.Event{Type: event.PointerUp, Data: d})
			// Клик — только если курсор не сдвинулся
			if col == p.pressCol && row == p.pressRow {
				out = append(out, event.Event{Type: event.Click, Data: d})
			}
		}
	}
	p.buttons = now
	return out
}
