package model

import (
	"testing"

	"github.com/pkg/errors"

	"termlife/rules"
)

func mustGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := New(rows, cols)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", rows, cols, err)
	}
	return g
}

func mustSet(t *testing.T, g *Grid, cells ...Coordinate) {
	t.Helper()
	for _, c := range cells {
		if err := g.Set(c.Row, c.Col, rules.Alive); err != nil {
			t.Fatalf("Set(%d, %d) failed: %v", c.Row, c.Col, err)
		}
	}
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{0, 5},
		{5, 0},
		{0, 0},
		{-1, 3},
		{3, -1},
	}
	for _, tt := range tests {
		if _, err := New(tt.rows, tt.cols); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimension", tt.rows, tt.cols, err)
		}
	}
}

func TestNewStartsFullyDead(t *testing.T) {
	g := mustGrid(t, 3, 4)
	if got := g.CountLivingCells(); got != 0 {
		t.Fatalf("new grid has %d living cells, want 0", got)
	}
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 4; col++ {
			state, err := g.Get(row, col)
			if err != nil {
				t.Fatalf("Get(%d, %d) failed: %v", row, col, err)
			}
			if state != rules.Dead {
				t.Errorf("cell (%d,%d) = %v, want dead", row, col, state)
			}
		}
	}
}

func TestIndexIsBijective(t *testing.T) {
	g := mustGrid(t, 3, 5)
	seen := make(map[int]Coordinate)
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 5; col++ {
			idx := g.index(row, col)
			if idx < 0 || idx >= 15 {
				t.Fatalf("index(%d, %d) = %d, outside [0, 15)", row, col, idx)
			}
			if prev, dup := seen[idx]; dup {
				t.Fatalf("index %d maps both %v and (%d,%d)", idx, prev, row, col)
			}
			seen[idx] = Coordinate{Row: row, Col: col}
		}
	}
	if len(seen) != 15 {
		t.Fatalf("mapping covered %d indices, want 15", len(seen))
	}
}

func TestAccessOutOfBounds(t *testing.T) {
	g := mustGrid(t, 4, 6)
	bad := []Coordinate{
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
		{Row: 5, Col: 1},
		{Row: 1, Col: 7},
		{Row: -2, Col: -2},
	}
	for _, c := range bad {
		if _, err := g.Get(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d, %d) error = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
		if err := g.Set(c.Row, c.Col, rules.Alive); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d) error = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
		if _, err := g.CountLiveNeighbors(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("CountLiveNeighbors(%d, %d) error = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
	}
	if got := g.CountLivingCells(); got != 0 {
		t.Fatalf("rejected writes changed the grid: %d living cells", got)
	}
}

func TestSetIsIdempotent(t *testing.T) {
	g := mustGrid(t, 3, 3)
	mustSet(t, g, Coordinate{Row: 2, Col: 2}, Coordinate{Row: 2, Col: 2})
	if got := g.CountLivingCells(); got != 1 {
		t.Fatalf("living cells = %d, want 1", got)
	}
}

func TestCountLiveNeighborsExcludesSelf(t *testing.T) {
	// Fill a 3x3 grid completely; the center must see 8, not 9.
	g := mustGrid(t, 3, 3)
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 3; col++ {
			mustSet(t, g, Coordinate{Row: row, Col: col})
		}
	}
	count, err := g.CountLiveNeighbors(2, 2)
	if err != nil {
		t.Fatalf("CountLiveNeighbors failed: %v", err)
	}
	if count != 8 {
		t.Fatalf("center neighbor count = %d, want 8", count)
	}
}

func TestCountLiveNeighborsHardEdges(t *testing.T) {
	// On a fully alive 3x3 grid, corners see 3 and edge midpoints see 5;
	// nothing outside the grid is ever counted.
	g := mustGrid(t, 3, 3)
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 3; col++ {
			mustSet(t, g, Coordinate{Row: row, Col: col})
		}
	}

	tests := []struct {
		row, col int
		want     int
	}{
		{1, 1, 3},
		{1, 3, 3},
		{3, 1, 3},
		{3, 3, 3},
		{1, 2, 5},
		{2, 1, 5},
		{2, 3, 5},
		{3, 2, 5},
	}
	for _, tt := range tests {
		count, err := g.CountLiveNeighbors(tt.row, tt.col)
		if err != nil {
			t.Fatalf("CountLiveNeighbors(%d, %d) failed: %v", tt.row, tt.col, err)
		}
		if count != tt.want {
			t.Errorf("CountLiveNeighbors(%d, %d) = %d, want %d", tt.row, tt.col, count, tt.want)
		}
	}
}

func TestCountLiveNeighborsSingleCellGrid(t *testing.T) {
	g := mustGrid(t, 1, 1)
	mustSet(t, g, Coordinate{Row: 1, Col: 1})
	count, err := g.CountLiveNeighbors(1, 1)
	if err != nil {
		t.Fatalf("CountLiveNeighbors failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("1x1 grid neighbor count = %d, want 0", count)
	}
}

func TestEqualAndHash(t *testing.T) {
	a := mustGrid(t, 4, 4)
	b := mustGrid(t, 4, 4)
	mustSet(t, a, Coordinate{Row: 2, Col: 3})
	mustSet(t, b, Coordinate{Row: 2, Col: 3})

	if !a.Equal(b) {
		t.Fatal("identical grids reported unequal")
	}
	if a.Hash() != b.Hash() {
		t.Fatal("identical grids hash differently")
	}

	mustSet(t, b, Coordinate{Row: 1, Col: 1})
	if a.Equal(b) {
		t.Fatal("different grids reported equal")
	}
	if a.Hash() == b.Hash() {
		t.Fatal("different grids hash identically")
	}

	c := mustGrid(t, 4, 5)
	if a.Equal(c) {
		t.Fatal("grids of different dimensions reported equal")
	}
}

func TestHashDistinguishesDimensions(t *testing.T) {
	// 2x3 and 3x2 grids flatten to the same cell sequence; the hash must
	// still tell them apart.
	a := mustGrid(t, 2, 3)
	b := mustGrid(t, 3, 2)
	if a.Hash() == b.Hash() {
		t.Fatal("empty 2x3 and 3x2 grids hash identically")
	}

	mustSet(t, a, Coordinate{Row: 1, Col: 1})
	mustSet(t, b, Coordinate{Row: 1, Col: 1})
	if a.Hash() == b.Hash() {
		t.Fatal("same-flattening grids of different shapes hash identically")
	}
}

func TestPoolReturnsDeadGrids(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(5, 5)
	mustSet(t, g, Coordinate{Row: 1, Col: 1}, Coordinate{Row: 5, Col: 5})
	pool.Put(g)

	recycled := pool.Get(5, 5)
	if got := recycled.CountLivingCells(); got != 0 {
		t.Fatalf("recycled grid has %d living cells, want 0", got)
	}
	if recycled.Rows() != 5 || recycled.Cols() != 5 {
		t.Fatalf("recycled grid is %dx%d, want 5x5", recycled.Rows(), recycled.Cols())
	}

	// Reuse at different dimensions must also come back dead.
	pool.Put(recycled)
	resized := pool.Get(2, 7)
	if resized.Rows() != 2 || resized.Cols() != 7 {
		t.Fatalf("resized grid is %dx%d, want 2x7", resized.Rows(), resized.Cols())
	}
	if got := resized.CountLivingCells(); got != 0 {
		t.Fatalf("resized grid has %d living cells, want 0", got)
	}
}
