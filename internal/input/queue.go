package input

import "sync/atomic"

// Queue is a fixed-capacity single-producer single-consumer ring buffer.
// Push runs in the asynchronous edge context and never blocks; Pop runs in
// the session loop. Each index counter is written by exactly one side, so
// atomic loads/stores are enough to keep the hand-off race-free: the
// producer publishes the slot before advancing tail, and the consumer
// reads the slot before advancing head.
//
// Overflow policy: drop newest. A push against a full ring is rejected and
// the indices are left untouched.
type Queue struct {
	buf  []Event
	mask uint32
	head atomic.Uint32 // consumer cursor
	tail atomic.Uint32 // producer cursor
}

// NewQueue returns a ring holding at least capacity events, rounded up to
// a power of two.
func NewQueue(capacity int) *Queue {
	if capacity < 2 {
		capacity = 2
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &Queue{buf: make([]Event, size), mask: uint32(size - 1)}
}

// Push appends an event. It reports false when the ring is full and the
// event was dropped.
func (q *Queue) Push(e Event) bool {
	tail := q.tail.Load()
	if tail-q.head.Load() == uint32(len(q.buf)) {
		return false
	}
	q.buf[tail&q.mask] = e
	q.tail.Store(tail + 1)
	return true
}

// Pop removes the oldest event. It reports false when the ring is empty.
func (q *Queue) Pop() (Event, bool) {
	head := q.head.Load()
	if head == q.tail.Load() {
		return 0, false
	}
	e := q.buf[head&q.mask]
	q.head.Store(head + 1)
	return e, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}
