package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"termlife/model"
	"termlife/seeds"
	"termlife/utils"
)

// historyDepth is how many recent generation hashes the driver keeps for
// cycle detection.
const historyDepth = 5

// game bundles the driver's runtime state: the single current grid, the
// renderer that owns the terminal, and the observational stats.
type game struct {
	config   utils.Config
	grid     *model.Grid
	pool     *model.GridPool
	renderer model.Renderer
	quit     <-chan struct{} // renderer-driven quit; nil in plain mode
	stats    *utils.Stats

	// The history lives on the driver, not the grid: the loop swaps in a
	// fresh grid every generation, so hashes must outlive any one grid.
	history []string
}

// newGame wires the renderer, sizes the grid from the terminal, and loads
// the configured seed pattern. Any error here is fatal to startup.
func newGame(config utils.Config) (*game, error) {
	g := &game{
		config: config,
		stats:  utils.NewStats(),
	}

	// The terminal size is sampled exactly once; one line is reserved
	// for the header. Without a usable screen the config dimensions apply.
	rows, cols := config.Height, config.Width
	if config.PlainRenderer {
		g.renderer = &model.TerminalRenderer{}
	} else if screen, err := model.NewScreenRenderer(); err != nil {
		fmt.Fprintf(os.Stderr, "termlife: no terminal screen (%v), using plain renderer\n", err)
		g.renderer = &model.TerminalRenderer{}
	} else {
		g.renderer = screen
		g.quit = screen.Done()
		rows, cols = screen.GridSize()
	}

	grid, err := model.New(rows, cols)
	if err != nil {
		g.renderer.Close()
		return nil, errors.Wrapf(err, "[newGame] sizing %dx%d board", rows, cols)
	}

	pattern, err := seeds.Named(config.Pattern)
	if err != nil {
		g.renderer.Close()
		return nil, err
	}
	if err = seeds.Load(grid, seeds.Center(pattern.Cells, rows, cols)); err != nil {
		g.renderer.Close()
		return nil, errors.Wrapf(err,
			"[newGame] pattern %q does not fit a %dx%d board", pattern.Name, rows, cols)
	}

	g.grid = grid
	if config.UseMemoryPool {
		g.pool = model.NewGridPool()
	}
	return g, nil
}

// status classifies the current board for the header line. Display-only:
// the simulation never restarts or intervenes, whatever the status.
func (g *game) status() string {
	if g.grid.CountLivingCells() == 0 {
		return "Extinct"
	}
	if g.isStagnant() {
		return "Static/cycling"
	}
	return "Active"
}

// recordHistory appends the current grid hash, keeping the last
// historyDepth entries. Call it after status has classified the frame.
func (g *game) recordHistory() {
	g.history = append(g.history, g.grid.Hash())
	if len(g.history) > historyDepth {
		g.history = g.history[1:]
	}
}

// isStagnant reports whether the current grid matches any of the last 3
// recorded generations, i.e. it is static or cycling with a short period.
func (g *game) isStagnant() bool {
	if len(g.history) == 0 {
		return false
	}

	currentHash := g.grid.Hash()
	checked := min(len(g.history), 3)
	for i := 1; i <= checked; i++ {
		if g.history[len(g.history)-i] == currentHash {
			return true
		}
	}
	return false
}

// shutdown restores the terminal and reports final stats on stdout.
func (g *game) shutdown(generation int) {
	g.renderer.Close()

	elapsed := time.Since(g.stats.StartTime).Seconds()
	fmt.Printf("Ran %d generations in %.1f seconds", generation, elapsed)
	if elapsed > 0 {
		fmt.Printf(" (%.1f gen/sec)", float64(generation)/elapsed)
	}
	fmt.Println()
	fmt.Printf("Final population: %d (avg %.1f)\n",
		g.grid.CountLivingCells(), g.stats.AveragePopulation)
}
