package state

import (
	"testing"

	"go-sim-canvas/internal/event"
	"go-sim-canvas/pkg/canvas"
)

var _ Loop = (*canvas.DrawController)(nil)

type fakeLoop struct {
	calls []string
	fps   bool
}

func (l *fakeLoop) Run()              { l.calls = append(l.calls, "run") }
func (l *fakeLoop) Pause()            { l.calls = append(l.calls, "pause") }
func (l *fakeLoop) ShowFPS(show bool) { l.fps = show }

func (l *fakeLoop) last() string {
	if len(l.calls) == 0 {
		return ""
	}
	return l.calls[len(l.calls)-1]
}

func TestRunPauseToggle(t *testing.T) {
	loop := &fakeLoop{}
	sm := NewStateMachine(loop)
	sm.SetState(NewRunState(sm))
	if loop.last() != "run" {
		t.Fatalf("Expected entering RunState to run the loop, got %v", loop.calls)
	}

	for _, key := range []event.Key{"Space", "P", "Escape", "F9"} {
		sm.Handle(key)
		if _, ok := sm.Current().(*PauseState); !ok || loop.last() != "pause" {
			t.Fatalf("Expected %s to pause, got %T %v", key, sm.Current(), loop.calls)
		}
		sm.Handle(key)
		if _, ok := sm.Current().(*RunState); !ok || loop.last() != "run" {
			t.Fatalf("Expected %s to resume, got %T %v", key, sm.Current(), loop.calls)
		}
	}
}

func TestPauseResumesPreviousState(t *testing.T) {
	loop := &fakeLoop{}
	sm := NewStateMachine(loop)
	run := NewRunState(sm)
	sm.SetState(run)
	sm.Handle("Space")
	sm.Handle("Space")
	if sm.Current() != run {
		t.Error("Expected the same RunState back after unpausing")
	}

	sm.SetState(NewPauseState(sm, nil))
	sm.Handle("P")
	if _, ok := sm.Current().(*RunState); !ok {
		t.Errorf("Expected a pause without previous state to resume into RunState, got %T", sm.Current())
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	loop := &fakeLoop{}
	sm := NewStateMachine(loop)
	sm.SetState(NewRunState(sm))
	sm.Handle("Enter")
	sm.Handle("C")
	if len(loop.calls) != 1 {
		t.Errorf("Expected only the initial run, got %v", loop.calls)
	}
}

func TestCommonKeys(t *testing.T) {
	loop := &fakeLoop{}
	sm := NewStateMachine(loop)
	resets := 0
	sm.OnReset(func() { resets++ })
	sm.SetState(NewRunState(sm))

	sm.Handle("F")
	if !loop.fps || !sm.ShowingFPS() {
		t.Error("Expected F to turn the FPS readout on")
	}
	sm.Handle("Space")
	sm.Handle("F")
	if loop.fps {
		t.Error("Expected F to work while paused")
	}
	sm.Handle("R")
	if resets != 1 {
		t.Errorf("Expected 1 reset, got %d", resets)
	}
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Errorf("Expected R to leave the pause in place, got %T", sm.Current())
	}
}

func TestListen(t *testing.T) {
	loop := &fakeLoop{}
	sm := NewStateMachine(loop)
	sm.SetState(NewRunState(sm))
	d := event.NewDispatcher()
	id := sm.Listen(d)

	d.Dispatch(event.Event{Type: event.KeyDown, Data: event.Key("Space")})
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Fatalf("Expected a KeyDown event to pause, got %T", sm.Current())
	}
	d.Dispatch(event.Event{Type: event.Click, Data: event.Pointer{}})

	d.Unsubscribe(id)
	d.Dispatch(event.Event{Type: event.KeyDown, Data: event.Key("Space")})
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Error("Expected no handling after unsubscribe")
	}
}

func TestDrivesDrawController(t *testing.T) {
	q := canvas.NewFrameQueue()
	c := canvas.NewDrawController(nil, canvas.ControllerConfig{Scheduler: q, Binding: &canvas.Binding{}})
	sm := NewStateMachine(c)
	sm.SetState(NewRunState(sm))
	if !c.IsRunning() || q.Pending() != 1 {
		t.Fatalf("Expected a running controller with one frame, got %v and %d", c.State(), q.Pending())
	}
	sm.Handle("Space")
	if c.State() != canvas.Paused || q.Pending() != 0 {
		t.Errorf("Expected a paused controller with no frame, got %v and %d", c.State(), q.Pending())
	}
}
