package life

import (
	"badge-life/internal/core"
)

// Engine implements Conway's Game of Life on a bounded rectangular field.
// Cells beyond the edge do not exist; border cells simply see fewer
// neighbors. Two same-shaped buffers are held for the whole session and
// swap roles after every generation, so the advance path never allocates.
type Engine struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid

	changed bool
}

// New returns an engine with the provided dimensions. Both buffers start
// all-dead.
func New(w, h int) *Engine {
	return &Engine{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
}

// Size returns the field dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.cur.W, H: e.cur.H} }

// Cells exposes the authoritative generation buffer. The scratch buffer is
// never visible to callers.
func (e *Engine) Cells() []uint8 { return e.cur.Cells() }

// Clear kills every cell in both buffers, so no stale scratch data can
// leak into a freshly loaded pattern.
func (e *Engine) Clear() {
	e.cur.Clear()
	e.nxt.Clear()
	e.changed = false
}

// Set marks the cell at (x, y) live. Out-of-bounds coordinates are
// silently ignored, which is what lets oversized patterns clip instead of
// failing.
func (e *Engine) Set(x, y int) {
	if !e.cur.InBounds(x, y) {
		return
	}
	e.cur.Cells()[e.cur.Index(x, y)] = 1
}

// Alive reports whether the cell at (x, y) is live. Out-of-bounds cells
// are dead.
func (e *Engine) Alive(x, y int) bool {
	if !e.cur.InBounds(x, y) {
		return false
	}
	return e.cur.Cells()[e.cur.Index(x, y)] == 1
}

// Step advances the field by one generation: every cell of the current
// buffer is recomputed into the scratch buffer, then the buffers swap
// roles. The swap is an ownership transfer; the old generation becomes the
// scratch for the next call and is fully overwritten before it is read
// again.
func (e *Engine) Step() {
	w, h := e.cur.W, e.cur.H
	cur, nxt := e.cur.Cells(), e.nxt.Cells()
	changed := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					neighbors += int(cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := cur[idx] == 1
			next := uint8(0)
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				next = 1
			}
			nxt[idx] = next
			if next != cur[idx] {
				changed = true
			}
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.changed = changed
}

// Changed reports whether the most recent Step altered any cell. A false
// value means the field has settled into a still life (or was empty).
func (e *Engine) Changed() bool { return e.changed }

// Extinct reports whether every cell is dead.
func (e *Engine) Extinct() bool {
	for _, c := range e.cur.Cells() {
		if c != 0 {
			return false
		}
	}
	return true
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	n := 0
	for _, c := range e.cur.Cells() {
		if c != 0 {
			n++
		}
	}
	return n
}
