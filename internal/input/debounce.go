package input

// Debouncer filters mechanical switch bounce. An edge on a line is
// accepted only when the quiet window has elapsed since the last accepted
// edge on that same line; edges inside the window are discarded outright,
// never queued and never merged.
type Debouncer struct {
	queue  *Queue
	window int64
	last   [NumLines]int64
}

// NewDebouncer wraps the queue with a quiet window in milliseconds.
func NewDebouncer(queue *Queue, windowMillis int64) *Debouncer {
	if windowMillis <= 0 {
		windowMillis = 10
	}
	d := &Debouncer{queue: queue, window: windowMillis}
	for i := range d.last {
		d.last[i] = -windowMillis
	}
	return d
}

// Edge feeds a raw rising edge on a line at the given monotonic
// millisecond reading. It reports true when the edge was accepted and its
// event queued; false when it was debounced away or the queue was full.
func (d *Debouncer) Edge(line Line, now int64) bool {
	if line >= NumLines {
		return false
	}
	if now-d.last[line] < d.window {
		return false
	}
	d.last[line] = now
	return d.queue.Push(line.Event())
}
