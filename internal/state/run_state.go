// internal/state/run_state.go
package state

import "go-sim-canvas/internal/event"

// Убеждаемся, что RunState соответствует интерфейсу State
var _ State = (*RunState)(nil)

// RunState — анимация идёт
type RunState struct {
	sm *StateMachine
}

func NewRunState(sm *StateMachine) *RunState {
	return &RunState{sm: sm}
}

func (s *RunState) Enter() { s.sm.loop.Run() }

func (s *RunState) Handle(key event.Key) {
	if isPauseKey(key) {
		s.sm.SetState(NewPauseState(s.sm, s))
	}
}

func (s *RunState) Exit() {}
