package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cell is a grid coordinate. Pattern data uses it for relative offsets.
type Cell struct {
	X int
	Y int
}
