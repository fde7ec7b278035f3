package canvas

import "slices"

// Registry is the ordered set of live entities. Entities are created through
// it (NewPath, NewCircle, NewText, Spawn) and are traversed in creation order.
type Registry struct {
	theme    Theme
	nextID   ID
	order    []ID
	entities map[ID]*Entity
}

// NewRegistry returns an empty registry that reads highlight colours and the
// default coordinate convention from theme. A nil theme draws from center
// and never highlights.
func NewRegistry(theme Theme) *Registry {
	if theme == nil {
		theme = StaticTheme{Centered: true}
	}
	return &Registry{
		theme:    theme,
		nextID:   1,
		entities: make(map[ID]*Entity),
	}
}

// Theme returns the configuration the registry reads from.
func (r *Registry) Theme() Theme { return r.theme }

// Spawn registers d and returns its entity handle.
func (r *Registry) Spawn(d Drawable) *Entity {
	return r.insert(d, nil)
}

func (r *Registry) insert(d Drawable, centered *bool) *Entity {
	e := newEntity(d, r.theme, centered)
	e.id = r.nextID
	e.registry = r
	r.nextID++
	r.entities[e.id] = e
	r.order = append(r.order, e.id)
	return e
}

func newEntity(d Drawable, theme Theme, centered *bool) *Entity {
	e := &Entity{shape: d}
	switch {
	case centered != nil:
		e.centered = *centered
	case theme != nil:
		e.centered = theme.DrawFromCenter()
	}
	return e
}

// Remove drops the entity with the given id. Unknown ids are ignored.
func (r *Registry) Remove(id ID) {
	e, ok := r.entities[id]
	if !ok {
		return
	}
	delete(r.entities, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	if e.onRemove != nil {
		e.onRemove()
	}
}

// Get returns the entity with the given id.
func (r *Registry) Get(id ID) (*Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

func (r *Registry) Len() int { return len(r.order) }

// Each calls fn for every entity, hidden ones included, in creation order.
// The order is snapshotted first: entities removed by fn are skipped and
// entities added by fn are not visited.
func (r *Registry) Each(fn func(e *Entity)) {
	for _, id := range slices.Clone(r.order) {
		if e, ok := r.entities[id]; ok {
			fn(e)
		}
	}
}

// Draw renders every visible entity in creation order.
func (r *Registry) Draw(s Surface) {
	r.Each(func(e *Entity) {
		if !e.hidden {
			e.Draw(s)
		}
	})
}

// Clear forgets every entity without running their removal hooks, so a
// watching Path keeps its subscription on Start until Path.Unwatch is called.
// Use Remove to detach entities cleanly. The id counter keeps counting.
func (r *Registry) Clear() {
	for _, e := range r.entities {
		e.registry = nil
	}
	r.order = nil
	r.entities = make(map[ID]*Entity)
}
