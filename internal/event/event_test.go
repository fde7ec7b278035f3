package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchByType(t *testing.T) {
	d := NewDispatcher()
	moves, clicks := &recorder{}, &recorder{}
	d.Subscribe(PointerMove, moves)
	d.Subscribe(Click, clicks)

	d.Dispatch(Event{Type: PointerMove, Data: Pointer{X: 1, Y: 2}})
	d.Dispatch(Event{Type: Click, Data: Pointer{X: 3, Y: 4}})
	d.Dispatch(Event{Type: KeyDown, Data: Key("Space")})

	if len(moves.got) != 1 || len(clicks.got) != 1 {
		t.Fatalf("Expected 1 move and 1 click, got %d and %d", len(moves.got), len(clicks.got))
	}
	if p, ok := PointerOf(clicks.got[0]); !ok || p.X != 3 || p.Y != 4 {
		t.Errorf("Expected pointer (3, 4), got %v", clicks.got[0].Data)
	}
}

func TestUnsubscribeById(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	idA := d.Subscribe(Click, a)
	d.Subscribe(Click, b)

	d.Unsubscribe(idA)
	d.Unsubscribe(idA)
	d.Dispatch(Event{Type: Click})

	if len(a.got) != 0 || len(b.got) != 1 {
		t.Errorf("Expected only b to be called, got a=%d b=%d", len(a.got), len(b.got))
	}
}

func TestSameListenerTwiceGetsTwoIds(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	first := d.Subscribe(Click, r)
	second := d.Subscribe(Click, r)
	if first == second {
		t.Fatal("Expected distinct ids")
	}

	d.Dispatch(Event{Type: Click})
	d.Unsubscribe(first)
	d.Dispatch(Event{Type: Click})
	if len(r.got) != 3 {
		t.Errorf("Expected 3 deliveries, got %d", len(r.got))
	}
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	id := d.SubscribeAll(r, PointerMove, PointerDown, Click)

	d.Dispatch(Event{Type: PointerMove})
	d.Dispatch(Event{Type: PointerDown})
	d.Dispatch(Event{Type: Click})
	if len(r.got) != 3 {
		t.Errorf("Expected 3 events, got %d", len(r.got))
	}

	d.Unsubscribe(id)
	if d.Len() != 0 {
		t.Errorf("Expected every subscription of the id to go, %d left", d.Len())
	}
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var second ListenerID
	calls := 0
	d.Subscribe(Click, ListenerFunc(func(Event) { d.Unsubscribe(second) }))
	second = d.Subscribe(Click, ListenerFunc(func(Event) { calls++ }))

	d.Dispatch(Event{Type: Click})
	if calls != 0 {
		t.Errorf("Expected a listener removed mid-dispatch to be skipped, got %d calls", calls)
	}
}
