// internal/state/pause_state.go
package state

import "go-sim-canvas/internal/event"

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState — анимация остановлена, последний кадр остаётся на экране
type PauseState struct {
	sm            *StateMachine
	previousState State
}

// NewPauseState returns a pause that resumes into prevState. A nil
// prevState resumes into a new RunState.
func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{sm: sm, previousState: prevState}
}

func (s *PauseState) Enter() { s.sm.loop.Pause() }

func (s *PauseState) Handle(key event.Key) {
	if !isPauseKey(key) {
		return
	}
	next := s.previousState
	if next == nil {
		next = NewRunState(s.sm)
	}
	s.sm.SetState(next)
}

func (s *PauseState) Exit() {}
