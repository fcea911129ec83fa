package model

import "sync"

// GridPool recycles grids between generations so the stepper does not
// reallocate the backing array every frame.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a fully Dead grid with the requested dimensions.
func (p *GridPool) Get(rows, cols int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(rows, cols)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	// Clear the grid before returning to pool
	g.Clear()
	p.pool.Put(g)
}

// Recycle returns a grid to the pool when pooling is enabled.
func Recycle(g *Grid, pool *GridPool) {
	if pool == nil {
		return
	}
	pool.Put(g)
}
