// Package scene holds the per-frame tile grid: what the compositor should
// draw on the next frame. It is a plain mutable container; effects write it,
// the compositor reads it, and the demo loop keeps those phases apart.
package scene

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tiledemo/internal/core"
)

// ErrDimensions is returned for non-positive grid sizes.
var ErrDimensions = errors.New("scene: invalid grid dimensions")

// ColoredTile is one grid cell: an atlas tile drawn with two colours.
type ColoredTile struct {
	Index int        // Atlas tile index
	FG    core.Color // Colour for set tile bits
	BG    core.Color // Colour for clear tile bits
}

// Grid is a fixed-size width×height grid of cells addressed by x + y*width.
type Grid struct {
	width  int
	height int
	cells  []ColoredTile
}

// New creates a grid with every cell set to fill.
func New(width, height int, fill ColoredTile) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]ColoredTile, width*height),
	}
	g.Reset(fill)
	return g, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// At returns the cell at (x, y). Panics when out of bounds.
func (g *Grid) At(x, y int) ColoredTile {
	return g.cells[g.offset(x, y)]
}

// Set writes the cell at (x, y). Panics when out of bounds.
func (g *Grid) Set(x, y int, c ColoredTile) {
	g.cells[g.offset(x, y)] = c
}

// Index returns the cell at flat index i.
func (g *Grid) Index(i int) ColoredTile {
	return g.cells[i]
}

// SetIndex writes the cell at flat index i.
func (g *Grid) SetIndex(i int, c ColoredTile) {
	g.cells[i] = c
}

// Reset sets every cell to fill.
func (g *Grid) Reset(fill ColoredTile) {
	for i := range g.cells {
		g.cells[i] = fill
	}
}

// Cells returns the cells in row-major order. Callers must not modify the
// returned slice.
func (g *Grid) Cells() []ColoredTile {
	return g.cells
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	dup := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]ColoredTile, len(g.cells)),
	}
	copy(dup.cells, g.cells)
	return dup
}

func (g *Grid) offset(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("scene: cell (%d, %d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return x + y*g.width
}
