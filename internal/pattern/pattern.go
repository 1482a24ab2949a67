// Package pattern holds the built-in seed catalog and stamps entries into
// a life engine. Patterns are immutable static data; navigation over the
// catalog is modulo arithmetic so an index can never go out of range.
package pattern

import (
	"badge-life/internal/core"
	pkgcore "badge-life/pkg/core"
	"badge-life/pkg/life"
)

// Centered marks a placement axis that should be derived from the
// pattern's bounding box instead of a fixed origin.
const Centered = -1

// Pattern is a named set of relative live-cell offsets. A pattern with
// Density > 0 has no fixed cells; it is filled randomly at load time.
// Patterns are read-only and never mutated at runtime.
type Pattern struct {
	Name  string
	Cells []core.Cell

	// OriginX/OriginY fix the placement origin; Centered computes it
	// from the bounding box so the pattern sits mid-field.
	OriginX int
	OriginY int

	// Density, when non-zero, makes this a random soup pattern.
	Density float64
}

// Wrap maps any index onto [0, length) with modulo arithmetic, including
// negative indexes so "previous" from zero lands on the last entry.
func Wrap(index, length int) int {
	if length <= 0 {
		return 0
	}
	return ((index % length) + length) % length
}

// Load clears the engine and stamps the pattern into it. Cells that fall
// outside the field are silently clipped. Random soups are filled
// deterministically from the seed.
func Load(eng *life.Engine, p Pattern, seed int64) {
	eng.Clear()
	if p.Density > 0 {
		rng := pkgcore.NewRNG(seed)
		pkgcore.FillDensity(rng.Source(), eng.Cells(), p.Density)
		return
	}
	size := eng.Size()
	ox, oy := p.origin(size)
	for _, c := range p.Cells {
		eng.Set(ox+c.X, oy+c.Y)
	}
}

func (p Pattern) origin(size core.Size) (int, int) {
	bw, bh := p.boundingBox()
	ox, oy := p.OriginX, p.OriginY
	if ox == Centered {
		ox = (size.W - bw) / 2
		if ox < 0 {
			ox = 0
		}
	}
	if oy == Centered {
		oy = (size.H - bh) / 2
		if oy < 0 {
			oy = 0
		}
	}
	return ox, oy
}

func (p Pattern) boundingBox() (int, int) {
	maxX, maxY := 0, 0
	for _, c := range p.Cells {
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return maxX + 1, maxY + 1
}
