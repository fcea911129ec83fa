// Package seeds holds the named preset patterns and loads them onto a grid.
package seeds

import (
	"sort"

	"github.com/pkg/errors"

	"termlife/model"
	"termlife/rules"
)

// Pattern is a named preset: a literal list of 1-based (row, col) pairs
// anchored near the top-left corner. Use Offset or Center to place it.
type Pattern struct {
	Name  string
	Cells []model.Coordinate
}

var catalog = map[string]Pattern{
	"blinker": {
		Name: "blinker",
		Cells: []model.Coordinate{
			{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
		},
	},
	"cross": {
		Name: "cross",
		Cells: []model.Coordinate{
			{Row: 1, Col: 2},
			{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3},
			{Row: 3, Col: 2},
		},
	},
	"glider": {
		Name: "glider",
		Cells: []model.Coordinate{
			{Row: 1, Col: 2},
			{Row: 2, Col: 3},
			{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
		},
	},
	// The canonical 36-cell Gosper glider gun: period 30, one glider
	// emitted per period. Verified by TestGosperGunEmitsGliders.
	"gun": {
		Name: "gun",
		Cells: []model.Coordinate{
			// Left block
			{Row: 5, Col: 1}, {Row: 5, Col: 2},
			{Row: 6, Col: 1}, {Row: 6, Col: 2},
			// Left shuttle
			{Row: 5, Col: 11}, {Row: 6, Col: 11}, {Row: 7, Col: 11},
			{Row: 4, Col: 12}, {Row: 8, Col: 12},
			{Row: 3, Col: 13}, {Row: 9, Col: 13},
			{Row: 3, Col: 14}, {Row: 9, Col: 14},
			{Row: 6, Col: 15},
			{Row: 4, Col: 16}, {Row: 8, Col: 16},
			{Row: 5, Col: 17}, {Row: 6, Col: 17}, {Row: 7, Col: 17},
			{Row: 6, Col: 18},
			// Right shuttle
			{Row: 3, Col: 21}, {Row: 4, Col: 21}, {Row: 5, Col: 21},
			{Row: 3, Col: 22}, {Row: 4, Col: 22}, {Row: 5, Col: 22},
			{Row: 2, Col: 23}, {Row: 6, Col: 23},
			{Row: 1, Col: 25}, {Row: 2, Col: 25},
			{Row: 6, Col: 25}, {Row: 7, Col: 25},
			// Right block
			{Row: 3, Col: 35}, {Row: 4, Col: 35},
			{Row: 3, Col: 36}, {Row: 4, Col: 36},
		},
	},
}

// Names returns the catalog's pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named returns the preset with the given name.
func Named(name string) (Pattern, error) {
	p, ok := catalog[name]
	if !ok {
		return Pattern{}, errors.Errorf("[Named] unknown pattern %q, have %v", name, Names())
	}
	return p, nil
}

// Offset returns a copy of cells translated by (dr, dc).
func Offset(cells []model.Coordinate, dr, dc int) []model.Coordinate {
	out := make([]model.Coordinate, len(cells))
	for i, c := range cells {
		out[i] = model.Coordinate{Row: c.Row + dr, Col: c.Col + dc}
	}
	return out
}

// Bounds returns the bounding box of cells.
func Bounds(cells []model.Coordinate) (minRow, minCol, maxRow, maxCol int) {
	for i, c := range cells {
		if i == 0 {
			minRow, maxRow = c.Row, c.Row
			minCol, maxCol = c.Col, c.Col
			continue
		}
		minRow = min(minRow, c.Row)
		maxRow = max(maxRow, c.Row)
		minCol = min(minCol, c.Col)
		maxCol = max(maxCol, c.Col)
	}
	return
}

// Center translates a pattern so its bounding box is centered on a
// rows x cols grid. Patterns larger than the grid are returned unchanged;
// the loader rejects them with the usual bounds error.
func Center(cells []model.Coordinate, rows, cols int) []model.Coordinate {
	if len(cells) == 0 {
		return cells
	}
	minRow, minCol, maxRow, maxCol := Bounds(cells)
	var (
		height = maxRow - minRow + 1
		width  = maxCol - minCol + 1
	)
	if height > rows || width > cols {
		return cells
	}
	return Offset(cells, (rows-height)/2+1-minRow, (cols-width)/2+1-minCol)
}

// Load marks each seed coordinate Alive. Every coordinate is validated
// before any cell is touched, so a malformed seed never leaves a partially
// loaded grid. Duplicates are harmless.
func Load(g *model.Grid, cells []model.Coordinate) error {
	for i, c := range cells {
		if _, err := g.Get(c.Row, c.Col); err != nil {
			return errors.Wrapf(err, "[Load] seed cell %d of %d", i+1, len(cells))
		}
	}
	for _, c := range cells {
		_ = g.Set(c.Row, c.Col, rules.Alive) // validated above
	}
	return nil
}
