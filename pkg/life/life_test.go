package life

import "testing"

func liveSet(e *Engine) map[[2]int]bool {
	cells := map[[2]int]bool{}
	size := e.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if e.Alive(x, y) {
				cells[[2]int{x, y}] = true
			}
		}
	}
	return cells
}

func TestEmptyFieldStaysEmpty(t *testing.T) {
	e := New(10, 10)
	for i := 0; i < 5; i++ {
		e.Step()
		if !e.Extinct() {
			t.Fatalf("empty field grew cells after step %d", i+1)
		}
		if e.Changed() {
			t.Fatalf("empty field reported change after step %d", i+1)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	e := New(5, 5)
	e.Set(2, 1)
	e.Set(2, 2)
	e.Set(2, 3)

	e.Step()
	horizontal := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	if got := liveSet(e); !equalSets(got, horizontal) {
		t.Fatalf("after one step got %v, want %v", got, horizontal)
	}

	e.Step()
	vertical := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	if got := liveSet(e); !equalSets(got, vertical) {
		t.Fatalf("after two steps got %v, want %v", got, vertical)
	}
}

// The glider translates by (+1,+1) every four generations; exact cell-set
// equality here pins down the neighbor counting.
func TestGliderTranslation(t *testing.T) {
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

	e := New(20, 20)
	ox, oy := 2, 2
	for _, c := range glider {
		e.Set(ox+c[0], oy+c[1])
	}

	const periods = 3
	for i := 0; i < periods*4; i++ {
		e.Step()
	}

	want := map[[2]int]bool{}
	for _, c := range glider {
		want[[2]int{ox + c[0] + periods, oy + c[1] + periods}] = true
	}
	if got := liveSet(e); !equalSets(got, want) {
		t.Fatalf("after %d generations got %v, want %v", periods*4, got, want)
	}
}

// A vertical blinker hugging the left edge has its mirror cell clipped
// away, so it collapses instead of oscillating. On a toroidal field it
// would live forever.
func TestBorderClippingKillsEdgeBlinker(t *testing.T) {
	e := New(8, 8)
	e.Set(0, 1)
	e.Set(0, 2)
	e.Set(0, 3)

	e.Step()
	gen1 := map[[2]int]bool{{0, 2}: true, {1, 2}: true}
	if got := liveSet(e); !equalSets(got, gen1) {
		t.Fatalf("after one step got %v, want %v", got, gen1)
	}

	e.Step()
	if !e.Extinct() {
		t.Fatalf("edge blinker survived clipping: %v", liveSet(e))
	}
}

// Diehard vanishes after exactly 130 generations. The field is sized so
// the debris never reaches a border.
func TestDiehardDiesAtGeneration130(t *testing.T) {
	diehard := [][2]int{{6, 0}, {0, 1}, {1, 1}, {1, 2}, {5, 2}, {6, 2}, {7, 2}}

	e := New(120, 80)
	ox, oy := 56, 39
	for _, c := range diehard {
		e.Set(ox+c[0], oy+c[1])
	}

	for gen := 1; gen <= 130; gen++ {
		e.Step()
		if gen < 130 && e.Extinct() {
			t.Fatalf("diehard died early at generation %d", gen)
		}
	}
	if !e.Extinct() {
		t.Fatalf("diehard still alive after 130 generations, population %d", e.Population())
	}
}

func TestClearResetsBothBuffers(t *testing.T) {
	e := New(6, 6)
	e.Set(2, 2)
	e.Set(3, 2)
	e.Set(2, 3)
	e.Set(3, 3)
	e.Step() // block is a still life; scratch now holds a copy too

	e.Clear()
	if !e.Extinct() {
		t.Fatal("clear left live cells in the authoritative buffer")
	}
	e.Step()
	if !e.Extinct() {
		t.Fatal("stale scratch data leaked back in after clear")
	}
}

func equalSets(a, b map[[2]int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
