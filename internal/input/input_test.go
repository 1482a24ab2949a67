package input

import "testing"

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue(8)
	events := []Event{NextPattern, TogglePause, StepOnce}
	for _, e := range events {
		if !q.Push(e) {
			t.Fatalf("push of %v rejected on non-full queue", e)
		}
	}
	for i, want := range events {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d reported empty", i)
		}
		if got != want {
			t.Fatalf("pop %d = %v, want %v", i, got, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("pop on drained queue reported an event")
	}
}

func TestQueueOverflowDropsNewest(t *testing.T) {
	q := NewQueue(4)
	for i := 0; i < 4; i++ {
		if !q.Push(NextPattern) {
			t.Fatalf("push %d rejected before capacity", i)
		}
	}
	if q.Push(TogglePause) {
		t.Fatal("push on full queue accepted")
	}
	if got := q.Len(); got != 4 {
		t.Fatalf("len after overflow = %d, want 4", got)
	}
	for i := 0; i < 4; i++ {
		got, ok := q.Pop()
		if !ok || got != NextPattern {
			t.Fatalf("pop %d = %v/%v, want retained NextPattern", i, got, ok)
		}
	}
}

func TestQueueWrapsAroundCapacity(t *testing.T) {
	q := NewQueue(4)
	for round := 0; round < 10; round++ {
		if !q.Push(StepOnce) {
			t.Fatalf("push rejected on round %d", round)
		}
		got, ok := q.Pop()
		if !ok || got != StepOnce {
			t.Fatalf("round %d pop = %v/%v", round, got, ok)
		}
	}
	if got := q.Len(); got != 0 {
		t.Fatalf("len after wraparound = %d, want 0", got)
	}
}

func TestDebounceSuppressesBounce(t *testing.T) {
	q := NewQueue(8)
	d := NewDebouncer(q, 10)

	if !d.Edge(LinePause, 0) {
		t.Fatal("first edge rejected")
	}
	if d.Edge(LinePause, 5) {
		t.Fatal("edge inside the quiet window accepted")
	}
	if !d.Edge(LinePause, 20) {
		t.Fatal("edge after the quiet window rejected")
	}
	if got := q.Len(); got != 2 {
		t.Fatalf("queued %d events, want 2", got)
	}
}

func TestDebounceWindowsArePerLine(t *testing.T) {
	q := NewQueue(8)
	d := NewDebouncer(q, 10)

	if !d.Edge(LinePrev, 0) {
		t.Fatal("edge on prev line rejected")
	}
	if !d.Edge(LineNext, 2) {
		t.Fatal("edge on next line blocked by a different line's window")
	}

	first, _ := q.Pop()
	second, _ := q.Pop()
	if first != PreviousPattern || second != NextPattern {
		t.Fatalf("got %v then %v, want previous-pattern then next-pattern", first, second)
	}
}

func TestLineEventMappingIsFixed(t *testing.T) {
	want := map[Line]Event{
		LinePrev:  PreviousPattern,
		LinePause: TogglePause,
		LineNext:  NextPattern,
		LineStep:  StepOnce,
		LineReset: ResetPattern,
	}
	for line, ev := range want {
		if got := line.Event(); got != ev {
			t.Fatalf("line %d maps to %v, want %v", line, got, ev)
		}
	}
}
