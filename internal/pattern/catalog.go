package pattern

import "badge-life/internal/core"

// cells builds a cell list from flat x,y pairs.
func cells(xy ...int) []core.Cell {
	out := make([]core.Cell, len(xy)/2)
	for i := range out {
		out[i] = core.Cell{X: xy[2*i], Y: xy[2*i+1]}
	}
	return out
}

var builtins = []Pattern{
	{
		// Chaotic growth, runs for ~1100 generations.
		Name:    "R-pentomino",
		Cells:   cells(1, 0, 2, 0, 0, 1, 1, 1, 1, 2),
		OriginX: Centered, OriginY: Centered,
	},
	{
		// Grows to 633 cells before stabilizing at generation 5206.
		Name:    "Acorn",
		Cells:   cells(1, 0, 3, 1, 0, 2, 1, 2, 4, 2, 5, 2, 6, 2),
		OriginX: Centered, OriginY: Centered,
	},
	{
		// Dies out completely after exactly 130 generations.
		Name:    "Diehard",
		Cells:   cells(6, 0, 0, 1, 1, 1, 1, 2, 5, 2, 6, 2, 7, 2),
		OriginX: Centered, OriginY: Centered,
	},
	{
		// Placed upper-left so the glider stream has room to travel.
		Name: "Glider Gun",
		Cells: cells(
			0, 4, 0, 5, 1, 4, 1, 5, // left block
			10, 4, 10, 5, 10, 6, 11, 3, 11, 7, 12, 2, 12, 8,
			13, 2, 13, 8, 14, 5, 15, 3, 15, 7, 16, 4, 16, 5, 16, 6,
			17, 5,
			20, 2, 20, 3, 20, 4, 21, 2, 21, 3, 21, 4, 22, 1, 22, 5,
			24, 0, 24, 1, 24, 5, 24, 6,
			34, 2, 34, 3, 35, 2, 35, 3, // right block
		),
		OriginX: 5, OriginY: 2,
	},
	{
		Name:    "B-heptomino",
		Cells:   cells(1, 0, 2, 0, 0, 1, 1, 1, 1, 2, 2, 2, 3, 2),
		OriginX: Centered, OriginY: Centered,
	},
	{
		// Lightweight spaceship.
		Name:    "Spaceship",
		Cells:   cells(0, 1, 3, 1, 4, 2, 0, 3, 4, 3, 1, 4, 2, 4, 3, 4, 4, 4),
		OriginX: Centered, OriginY: Centered,
	},
	{
		// Evolves into a complex stable arrangement.
		Name:    "10-cell row",
		Cells:   cells(0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 0, 8, 0, 9, 0),
		OriginX: Centered, OriginY: Centered,
	},
	{
		// 13x13 period-3 oscillator.
		Name: "Pulsar",
		Cells: cells(
			2, 0, 3, 0, 4, 0, 8, 0, 9, 0, 10, 0,
			0, 2, 5, 2, 7, 2, 12, 2,
			0, 3, 5, 3, 7, 3, 12, 3,
			0, 4, 5, 4, 7, 4, 12, 4,
			2, 5, 3, 5, 4, 5, 8, 5, 9, 5, 10, 5,
			2, 7, 3, 7, 4, 7, 8, 7, 9, 7, 10, 7,
			0, 8, 5, 8, 7, 8, 12, 8,
			0, 9, 5, 9, 7, 9, 12, 9,
			0, 10, 5, 10, 7, 10, 12, 10,
			2, 12, 3, 12, 4, 12, 8, 12, 9, 12, 10, 12,
		),
		OriginX: Centered, OriginY: Centered,
	},
	{
		// High-density soup for interesting interactions.
		Name:    "Random",
		Density: 0.4,
		OriginX: Centered, OriginY: Centered,
	},
}

// Builtins returns the fixed ordered catalog of seed patterns.
func Builtins() []Pattern {
	return builtins
}
