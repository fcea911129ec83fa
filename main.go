package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"termlife/model"
	"termlife/utils"
)

// frameInterval is the fixed tick between generations. The rate is not
// configurable.
const frameInterval = 150 * time.Millisecond

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		config = utils.DefaultConfig()
	}

	g, err := newGame(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termlife: %+v\n", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully; the screen renderer reports quit keys on
	// its own channel since raw mode swallows the signal.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation    = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			g.shutdown(generation)
			return
		case <-g.quit:
			g.shutdown(generation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		g.stats.Update(generation, g.grid.CountLivingCells(), time.Since(lastFrameTime))
		lastFrameTime = frameStart

		// Classify against prior generations before recording this one
		status := g.status()
		g.recordHistory()

		g.renderer.Display(g.grid, generation, status, g.stats)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			g.shutdown(generation)
			return
		}

		// Double-buffered advance: the new grid becomes current only
		// after the whole sweep has completed.
		next := g.grid.Advance(config, g.pool)
		model.Recycle(g.grid, g.pool)
		g.grid = next
		generation++

		time.Sleep(frameInterval)
	}
}
