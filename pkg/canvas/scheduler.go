package canvas

import "time"

// FrameID is a handle to a scheduled frame callback. Zero is never issued.
type FrameID uint64

// Scheduler is the host's animation-frame primitive.
type Scheduler interface {
	// RequestFrame runs fn once on the next frame.
	RequestFrame(fn func()) FrameID
	// CancelFrame drops a pending callback. Unknown or fired ids are ignored.
	CancelFrame(id FrameID)
}

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type queuedFrame struct {
	id FrameID
	fn func()
}

// FrameQueue is a Scheduler whose frames fire when the host calls Flush.
// Callbacks requested while flushing wait for the next Flush.
type FrameQueue struct {
	nextID  FrameID
	pending []queuedFrame
	// ids of the batch being flushed that have not fired yet
	firing map[FrameID]bool
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{nextID: 1}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	id := q.nextID
	q.nextID++
	q.pending = append(q.pending, queuedFrame{id: id, fn: fn})
	return id
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i:i], q.pending[i+1:]...)
			return
		}
	}
	delete(q.firing, id)
}

// Flush fires every callback pending when it was called, in request order,
// and returns how many ran. A callback cancelled by an earlier one in the
// same flush does not run.
func (q *FrameQueue) Flush() int {
	batch := q.pending
	q.pending = nil
	q.firing = make(map[FrameID]bool, len(batch))
	for _, f := range batch {
		q.firing[f.id] = true
	}
	defer func() { q.firing = nil }()

	ran := 0
	for _, f := range batch {
		if !q.firing[f.id] {
			continue
		}
		delete(q.firing, f.id)
		f.fn()
		ran++
	}
	return ran
}

// Pending reports how many callbacks wait for the next Flush.
func (q *FrameQueue) Pending() int { return len(q.pending) }
