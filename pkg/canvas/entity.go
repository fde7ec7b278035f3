package canvas

import "image/color"

// ID identifies an entity for its whole lifetime. IDs are never reused.
type ID uint64

// Drawable renders itself onto a surface. Path, Circle and Text are the
// built-in drawables; Registry.Spawn accepts any other.
type Drawable interface {
	Draw(s Surface, ctx DrawContext)
}

// Entity is the registry-side handle of a drawable: identity, visibility,
// hover and focus state, and the coordinate convention.
type Entity struct {
	id       ID
	registry *Registry
	shape    Drawable

	hidden   bool
	hover    bool
	focused  bool
	centered bool

	onRemove func()
}

func (e *Entity) ID() ID { return e.id }

// Drawable returns what the entity draws.
func (e *Entity) Drawable() Drawable { return e.shape }

func (e *Entity) Hide()                 { e.hidden = true }
func (e *Entity) Show()                 { e.hidden = false }
func (e *Entity) SetHidden(hidden bool) { e.hidden = hidden }
func (e *Entity) Hidden() bool          { return e.hidden }

func (e *Entity) SetHover(hover bool)     { e.hover = hover }
func (e *Entity) Hovered() bool           { return e.hover }
func (e *Entity) SetFocused(focused bool) { e.focused = focused }
func (e *Entity) Focused() bool           { return e.focused }

func (e *Entity) DrawFromCenter() bool     { return e.centered }
func (e *Entity) SetDrawFromCenter(b bool) { e.centered = b }

// Origin returns where (0,0) lands on a surface of the given size.
func (e *Entity) Origin(width, height float64) (x, y float64) {
	if e.centered {
		return width / 2, height / 2
	}
	return 0, 0
}

// Remove takes the entity out of its registry. It is safe to call more than once.
func (e *Entity) Remove() {
	if e.registry != nil {
		e.registry.Remove(e.id)
	}
}

// Draw renders the entity, applying the hover or focus highlight.
func (e *Entity) Draw(s Surface) {
	w, h := s.Size()
	ox, oy := e.Origin(w, h)
	e.shape.Draw(s, DrawContext{OffsetX: ox, OffsetY: oy, Stroke: e.highlight()})
}

func (e *Entity) highlight() color.Color {
	if e.registry == nil || e.registry.theme == nil {
		return nil
	}
	switch {
	case e.focused:
		return e.registry.theme.ClickStroke()
	case e.hover:
		return e.registry.theme.HoverStroke()
	}
	return nil
}
