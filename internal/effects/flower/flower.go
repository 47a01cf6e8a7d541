// Package flower lays out a static four-petal pattern from the atlas
// quadrant tiles and then leaves the grid alone.
package flower

import (
	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/registry"
	"github.com/vovakirdan/tiledemo/internal/scene"
)

// Atlas tiles holding the four quarters of a disc.
const (
	TileTopLeft     = 2
	TileTopRight    = 3
	TileBottomLeft  = 18
	TileBottomRight = 19
)

// Effect writes the flower layout on its first Advance only.
type Effect struct {
	done bool
}

// New creates a flower effect.
func New() *Effect {
	return &Effect{}
}

func init() {
	registry.Register("flower", func() registry.Effect {
		return New()
	})
}

// ID returns the registry identifier.
func (e *Effect) ID() string { return "flower" }

// Title returns the display name.
func (e *Effect) Title() string { return "Flower" }

// Reset arms the effect so the next Advance draws the layout again.
func (e *Effect) Reset(core.RuntimeConfig) {
	e.done = false
}

// Advance draws the layout once. Later calls leave the grid untouched.
func (e *Effect) Advance(grid *scene.Grid, _ uint64) {
	if e.done {
		return
	}
	e.done = true

	w, h := grid.Width(), grid.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			grid.Set(x, y, Cell(x, y, w, h))
		}
	}
}

// Cell returns the flower cell at (x, y) of a w×h grid.
func Cell(x, y, w, h int) scene.ColoredTile {
	left := x < w/2
	top := y < h/2

	var index int
	switch {
	case left && top:
		index = TileTopLeft
	case left:
		index = TileBottomLeft
	case top:
		index = TileTopRight
	default:
		index = TileBottomRight
	}

	fg, bg := core.White, core.Black
	if Swapped(x, y) {
		fg, bg = bg, fg
	}
	return scene.ColoredTile{Index: index, FG: fg, BG: bg}
}

// Swapped reports whether the colours at (x, y) are inverted. The parity
// mixes the cell coordinate with its 16-cell block coordinate.
func Swapped(x, y int) bool {
	return (x^y^x>>4^y>>4)&1 != 0
}
