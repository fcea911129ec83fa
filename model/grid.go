package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"termlife/rules"
)

// Coordinate is a 1-based (row, col) board position.
type Coordinate struct {
	Row int
	Col int
}

// Grid represents the game board as a flat row-major cell array.
// Coordinates are 1-based: (1,1) is the top-left corner, (rows,cols) the
// bottom-right. Edges are hard boundaries, never wrapped.
type Grid struct {
	rows  int
	cols  int
	cells []rules.Cell

	// Cached bounding box of living cells for the bounded stepper
	activeBounds struct {
		minRow, maxRow, minCol, maxCol int
		valid                          bool
	}
}

// New creates a grid of the given dimensions with every cell Dead.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[New] got %dx%d", rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]rules.Cell, rows*cols),
	}, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// index maps a valid 1-based coordinate onto the backing array. The
// mapping is a bijection onto [0, rows*cols).
func (g *Grid) index(row, col int) int {
	return (row-1)*g.cols + (col - 1)
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.rows && col >= 1 && col <= g.cols
}

// at reads a cell the caller already knows is in bounds.
func (g *Grid) at(row, col int) rules.Cell {
	return g.cells[g.index(row, col)]
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) (rules.Cell, error) {
	if !g.inBounds(row, col) {
		return rules.Dead, errors.Wrapf(ErrOutOfBounds,
			"[Get] (%d,%d) on %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.at(row, col), nil
}

// Set mutates a single cell
func (g *Grid) Set(row, col int, state rules.Cell) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds,
			"[Set] (%d,%d) on %dx%d grid", row, col, g.rows, g.cols)
	}
	g.cells[g.index(row, col)] = state
	g.activeBounds.valid = false
	return nil
}

// CountLiveNeighbors counts the living cells among the up to 8 neighbors
// of (row, col). Neighbors outside the grid are skipped, and the cell
// itself is never counted.
func (g *Grid) CountLiveNeighbors(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, errors.Wrapf(ErrOutOfBounds,
			"[CountLiveNeighbors] (%d,%d) on %dx%d grid", row, col, g.rows, g.cols)
	}
	return g.liveNeighbors(row, col), nil
}

// liveNeighbors is CountLiveNeighbors without the bounds check, for the
// stepper's sweep over known-valid coordinates.
func (g *Grid) liveNeighbors(row, col int) int {
	// Clamp the 3x3 neighborhood to the grid once up front
	minRow := max(1, row-1)
	maxRow := min(g.rows, row+1)
	minCol := max(1, col-1)
	maxCol := min(g.cols, col+1)

	count := 0
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue // Skip the cell itself
			}
			if g.at(r, c) == rules.Alive {
				count++
			}
		}
	}
	return count
}

// Reset resizes the grid and kills every cell (pool reuse path).
func (g *Grid) Reset(rows, cols int) {
	g.rows = rows
	g.cols = cols
	g.activeBounds.valid = false

	if len(g.cells) != rows*cols {
		g.cells = make([]rules.Cell, rows*cols)
		return
	}
	for i := range g.cells {
		g.cells[i] = rules.Dead
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = rules.Dead
	}
	g.activeBounds.valid = false
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == rules.Alive {
			count++
		}
	}
	return
}

// LiveCells returns the coordinates of every Alive cell in row-major order.
func (g *Grid) LiveCells() []Coordinate {
	var live []Coordinate
	for row := 1; row <= g.rows; row++ {
		for col := 1; col <= g.cols; col++ {
			if g.at(row, col) == rules.Alive {
				live = append(live, Coordinate{Row: row, Col: col})
			}
		}
	}
	return live
}

// Equal reports whether both grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Hash returns an efficient MD5 hash of the current grid state. The
// dimensions are mixed in so same-flattening grids of different shapes
// never collide.
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.cols)
	for _, c := range g.cells {
		h.Write([]byte{byte(c)})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// calculateActiveBounds caches the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	for row := 1; row <= g.rows; row++ {
		for col := 1; col <= g.cols; col++ {
			if g.at(row, col) != rules.Alive {
				continue
			}
			if !g.activeBounds.valid {
				g.activeBounds.minRow, g.activeBounds.maxRow = row, row
				g.activeBounds.minCol, g.activeBounds.maxCol = col, col
				g.activeBounds.valid = true
			} else {
				g.activeBounds.minRow = min(g.activeBounds.minRow, row)
				g.activeBounds.maxRow = max(g.activeBounds.maxRow, row)
				g.activeBounds.minCol = min(g.activeBounds.minCol, col)
				g.activeBounds.maxCol = max(g.activeBounds.maxCol, col)
			}
		}
	}
}

// BoundingBoxSize returns the area of the active region in cells.
func (g *Grid) BoundingBoxSize() int {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxRow - g.activeBounds.minRow + 1) *
		(g.activeBounds.maxCol - g.activeBounds.minCol + 1)
}
