package model

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"termlife/rules"
	"termlife/utils"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// headerRows is the line count reserved above the grid for status.
	headerRows = 1

	// cellWidth is how many terminal columns one grid cell occupies;
	// two columns per cell keeps the board visually square.
	cellWidth = 2
)

// Renderer draws one frame: a header line followed by the grid.
type Renderer interface {
	Display(g *Grid, generation int, status string, stats *utils.Stats)
	Close()
}

func header(g *Grid, generation int, status string, stats *utils.Stats) string {
	return fmt.Sprintf("Gen: %d | Living: %d | %.1f gen/sec | Status: %s",
		generation, g.CountLivingCells(), stats.GenerationsPerSecond, status)
}

// TerminalRenderer renders to stdout with ANSI escapes. It is the fallback
// when a full tcell screen cannot be initialized (e.g. output is piped).
type TerminalRenderer struct{}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid, generation int, status string, stats *utils.Stats) {
	r.clear()
	fmt.Println(header(g, generation, status, stats))
	for row := 1; row <= g.Rows(); row++ {
		for col := 1; col <= g.Cols(); col++ {
			if g.at(row, col) == rules.Alive {
				fmt.Print(gridPosBlock)
			} else {
				fmt.Print(gridPosEmpty)
			}
		}
		fmt.Println()
	}
}

// clear homes the cursor and wipes the screen
func (r *TerminalRenderer) clear() {
	fmt.Print("\033[H\033[2J")
}

func (r *TerminalRenderer) Close() {}

// ScreenRenderer owns a tcell screen: it samples the terminal size at
// startup, draws each generation in place, and listens for the quit keys.
type ScreenRenderer struct {
	screen tcell.Screen
	done   chan struct{}
}

func NewScreenRenderer() (*ScreenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] creating screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] initializing screen")
	}

	r := &ScreenRenderer{
		screen: screen,
		done:   make(chan struct{}),
	}
	go r.watchKeys()
	return r, nil
}

// GridSize reports the board dimensions the terminal can hold: one line is
// reserved for the header and each cell is drawn cellWidth columns wide.
// The size is sampled once; resizes mid-run are ignored.
func (r *ScreenRenderer) GridSize() (rows, cols int) {
	w, h := r.screen.Size()
	return h - headerRows, w / cellWidth
}

// Done is closed when the user asks to quit via Ctrl+C, q, or ESC. The
// screen's raw mode swallows SIGINT, so the driver selects on this channel.
func (r *ScreenRenderer) Done() <-chan struct{} {
	return r.done
}

func (r *ScreenRenderer) watchKeys() {
	defer close(r.done)
	for {
		switch ev := r.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				return
			}
		case nil:
			// Screen finalized
			return
		}
	}
}

// Display draws the header at row 0 and each cell offset below it.
func (r *ScreenRenderer) Display(g *Grid, generation int, status string, stats *utils.Stats) {
	var (
		aliveStyle = tcell.StyleDefault.Background(tcell.ColorGreen)
		deadStyle  = tcell.StyleDefault
	)

	r.screen.Clear()

	for i, ch := range header(g, generation, status, stats) {
		r.screen.SetContent(i, 0, ch, nil, tcell.StyleDefault)
	}

	for row := 1; row <= g.Rows(); row++ {
		for col := 1; col <= g.Cols(); col++ {
			style := deadStyle
			if g.at(row, col) == rules.Alive {
				style = aliveStyle
			}
			var (
				x = (col - 1) * cellWidth
				y = row - 1 + headerRows
			)
			r.screen.SetContent(x, y, ' ', nil, style)
			r.screen.SetContent(x+1, y, ' ', nil, style)
		}
	}

	r.screen.Show()
}

// Close restores the terminal.
func (r *ScreenRenderer) Close() {
	r.screen.Fini()
}
