package vec

import "slices"

// Listener receives a vector after each of its mutations.
// Implementations must be comparable (pointer types are).
type Listener interface {
	OnVecChange(v *Vec)
}

// ListenerFunc adapts a function to a Listener. A ListenerFunc is not
// comparable, so it has to be registered through OnChange.
type ListenerFunc func(v *Vec)

type funcListener struct {
	fn ListenerFunc
}

func (f *funcListener) OnVecChange(v *Vec) { f.fn(v) }

// changeSet is the set of listeners of a single vector, in registration
// order. It lives on the vector it serves, so observing a vector never
// extends its lifetime.
type changeSet struct {
	listeners []Listener
}

func (c *changeSet) add(l Listener) {
	if slices.Contains(c.listeners, l) {
		return
	}
	c.listeners = append(c.listeners, l)
}

func (c *changeSet) remove(l Listener) {
	if i := slices.Index(c.listeners, l); i >= 0 {
		c.listeners = slices.Delete(c.listeners, i, i+1)
	}
}

// Watch registers l against v. Registering the same listener again is a
// no-op. The returned function unregisters l and may be called any number
// of times.
func (v *Vec) Watch(l Listener) (cancel func()) {
	if v.changes == nil {
		v.changes = &changeSet{}
	}
	v.changes.add(l)
	return func() { v.Unwatch(l) }
}

// Unwatch removes l from v. Removing an unknown listener is a no-op.
func (v *Vec) Unwatch(l Listener) {
	if v.changes == nil {
		return
	}
	v.changes.remove(l)
	if len(v.changes.listeners) == 0 {
		v.changes = nil
	}
}

// OnChange registers fn to be called after every mutation of v and returns
// a function that removes exactly this registration.
func (v *Vec) OnChange(fn ListenerFunc) (cancel func()) {
	return v.Watch(&funcListener{fn: fn})
}

// Observers reports how many listeners are registered on v.
func (v *Vec) Observers() int {
	if v.changes == nil {
		return 0
	}
	return len(v.changes.listeners)
}

// changed dispatches v to its listeners. The listener slice is snapshotted
// so callbacks may register or unregister freely.
func (v *Vec) changed() {
	if v.changes == nil {
		return
	}
	for _, l := range slices.Clone(v.changes.listeners) {
		l.OnVecChange(v)
	}
}
