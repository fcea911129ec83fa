package rules

// Cell is the state of a single board position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String returns a human-readable cell state for diagnostics.
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

An Alive cell with 2 or 3 live neighbors survives, a Dead cell with exactly
3 live neighbors is born, and every other combination is Dead:
(alive && neighbors == 2) || neighbors == 3
*/
func NextState(current Cell, liveNeighbors int) Cell {
	if (current == Alive && liveNeighbors == 2) || liveNeighbors == 3 {
		return Alive
	}
	return Dead
}
