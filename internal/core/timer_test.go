package core

import "testing"

func TestCadenceResetsToNow(t *testing.T) {
	c := NewCadence(500)

	if c.Due(100) {
		t.Fatal("fired before the interval elapsed")
	}
	if !c.Due(500) {
		t.Fatal("did not fire once the interval elapsed")
	}

	// After a long stall the gate references the stall's end, not
	// last+interval, so no catch-up burst follows.
	if !c.Due(2700) {
		t.Fatal("did not fire after a stall")
	}
	if c.Due(3100) {
		t.Fatal("fired 400ms after the stall reset")
	}
	if !c.Due(3200) {
		t.Fatal("did not fire a full interval after the stall reset")
	}
}

func TestCadenceReset(t *testing.T) {
	c := NewCadence(500)
	c.Reset(1000)
	if c.Due(1400) {
		t.Fatal("fired inside the interval after an explicit reset")
	}
	if !c.Due(1500) {
		t.Fatal("did not fire an interval after the explicit reset")
	}
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	cases := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true}, {3, 2, true}, {-1, 0, false},
		{4, 0, false}, {0, 3, false}, {2, 1, true},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.in {
			t.Fatalf("InBounds(%d, %d) = %v, want %v", c.x, c.y, got, c.in)
		}
	}
}
