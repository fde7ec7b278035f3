// internal/state/state.go
package state

import "go-sim-canvas/internal/event"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Handle(key event.Key)
	Exit()
}

// Loop is the animation loop the states drive.
type Loop interface {
	Run()
	Pause()
	ShowFPS(show bool)
}

// StateMachine — структура для управления состояниями. Клавиши, общие для
// всех состояний (F, R), обрабатываются здесь.
type StateMachine struct {
	current State
	loop    Loop
	showFPS bool
	reset   func()
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(loop Loop) *StateMachine {
	return &StateMachine{loop: loop}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

func (sm *StateMachine) Current() State { return sm.current }

// OnReset sets what the R key does.
func (sm *StateMachine) OnReset(fn func()) { sm.reset = fn }

// SetShowFPS sets the FPS readout without toggling.
func (sm *StateMachine) SetShowFPS(show bool) {
	sm.showFPS = show
	sm.loop.ShowFPS(show)
}

func (sm *StateMachine) ShowingFPS() bool { return sm.showFPS }

// Handle передаёт нажатие текущему состоянию
func (sm *StateMachine) Handle(key event.Key) {
	switch key {
	case "F":
		sm.SetShowFPS(!sm.showFPS)
		return
	case "R":
		if sm.reset != nil {
			sm.reset()
		}
		return
	}
	if sm.current != nil {
		sm.current.Handle(key)
	}
}

// Listen subscribes the machine to KeyDown events.
func (sm *StateMachine) Listen(d *event.Dispatcher) event.ListenerID {
	return d.Subscribe(event.KeyDown, event.ListenerFunc(func(e event.Event) {
		if key, ok := event.KeyOf(e); ok {
			sm.Handle(key)
		}
	}))
}

// isPauseKey — клавиши переключения паузы
func isPauseKey(key event.Key) bool {
	switch key {
	case "Space", "P", "Escape", "F9":
		return true
	}
	return false
}
