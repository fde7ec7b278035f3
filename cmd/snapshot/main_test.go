package main

import (
	"testing"
	"time"

	"go-sim-canvas/pkg/canvas"
)

// loop reschedules itself until it has run limit times; limit < 0 means forever.
func loop(q *canvas.FrameQueue, limit int) *int {
	calls := 0
	var fn func()
	fn = func() {
		calls++
		if limit < 0 || calls < limit {
			q.RequestFrame(fn)
		}
	}
	q.RequestFrame(fn)
	return &calls
}

func TestSimulateCountsFramesRun(t *testing.T) {
	q := canvas.NewFrameQueue()
	clock := &stepClock{now: time.Unix(0, 0)}
	calls := loop(q, -1)

	if got := simulate(q, clock, 5, time.Second); got != 5 {
		t.Errorf("Expected 5 frames, got %d", got)
	}
	if *calls != 5 {
		t.Errorf("Expected 5 callbacks, got %d", *calls)
	}
	if want := time.Unix(5, 0); !clock.Now().Equal(want) {
		t.Errorf("Expected the clock at %v, got %v", want, clock.Now())
	}
}

func TestSimulateStopsWhenIdle(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0)}
	if got := simulate(canvas.NewFrameQueue(), clock, 10, time.Second); got != 0 {
		t.Errorf("Expected 0 frames for an empty queue, got %d", got)
	}

	q := canvas.NewFrameQueue()
	loop(q, 2)
	if got := simulate(q, clock, 10, time.Second); got != 2 {
		t.Errorf("Expected 2 frames before the queue drained, got %d", got)
	}
}
