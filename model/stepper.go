package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"termlife/rules"
	"termlife/utils"
)

// nextBuffer returns a cleared same-sized grid, drawn from the pool when
// one is provided. Dimensions were validated when g was built.
func (g *Grid) nextBuffer(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.rows, g.cols)
	}
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: make([]rules.Cell, g.rows*g.cols),
	}
}

// advanceRows computes rows [startRow, endRow] of next. Every read goes
// against g, never the partially built result, so the sweep order does not
// affect the outcome.
func (g *Grid) advanceRows(next *Grid, startRow, endRow int) {
	for row := startRow; row <= endRow; row++ {
		for col := 1; col <= g.cols; col++ {
			if rules.NextState(g.at(row, col), g.liveNeighbors(row, col)) == rules.Alive {
				next.cells[next.index(row, col)] = rules.Alive
			}
		}
	}
}

// AdvanceSerial computes the next generation with a plain row-major sweep.
func (g *Grid) AdvanceSerial(pool *GridPool) *Grid {
	next := g.nextBuffer(pool)
	g.advanceRows(next, 1, g.rows)
	return next
}

// AdvanceParallel computes the next generation with row bands fanned out
// over the available CPUs. Workers write disjoint row ranges of the result
// and only ever read g, so no synchronization is needed.
func (g *Grid) AdvanceParallel(pool *GridPool) *Grid {
	next := g.nextBuffer(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i*rowsPerWorker + 1
			endRow   = min(startRow+rowsPerWorker-1, g.rows)
		)
		if startRow > g.rows {
			break
		}

		eg.Go(func() error {
			g.advanceRows(next, startRow, endRow)
			return nil
		})
	}

	_ = eg.Wait() // workers never fail

	return next
}

// AdvanceBounded computes the next generation sweeping only the live-cell
// bounding box plus a 1-cell margin; cells farther out have no live
// neighbors and stay Dead.
func (g *Grid) AdvanceBounded(pool *GridPool) *Grid {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}

	next := g.nextBuffer(pool)

	// An empty grid stays empty
	if !g.activeBounds.valid {
		return next
	}

	minRow := max(1, g.activeBounds.minRow-1)
	maxRow := min(g.rows, g.activeBounds.maxRow+1)
	minCol := max(1, g.activeBounds.minCol-1)
	maxCol := min(g.cols, g.activeBounds.maxCol+1)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if rules.NextState(g.at(row, col), g.liveNeighbors(row, col)) == rules.Alive {
				next.cells[next.index(row, col)] = rules.Alive
			}
		}
	}

	next.calculateActiveBounds()
	return next
}

// Advance produces the next generation per the configured stepper mode.
// The receiver is never mutated; the caller swaps in the returned grid
// once the whole sweep has completed.
func (g *Grid) Advance(config utils.Config, pool *GridPool) *Grid {
	if config.UseBoundedGrid {
		return g.AdvanceBounded(pool)
	}
	if config.UseParallel {
		return g.AdvanceParallel(pool)
	}
	return g.AdvanceSerial(pool)
}
