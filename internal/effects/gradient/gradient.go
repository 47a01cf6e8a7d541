// Package gradient clears the grid every tick to a rounded-block backdrop
// whose foreground fades across both axes.
package gradient

import (
	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/registry"
	"github.com/vovakirdan/tiledemo/internal/scene"
)

// Tile is the atlas tile drawn in every cell.
const Tile = 16

// Effect is stateless.
type Effect struct{}

// New creates a gradient effect.
func New() *Effect {
	return &Effect{}
}

func init() {
	registry.Register("gradient", func() registry.Effect {
		return New()
	})
}

// ID returns the registry identifier.
func (e *Effect) ID() string { return "gradient" }

// Title returns the display name.
func (e *Effect) Title() string { return "Gradient" }

// Reset does nothing.
func (e *Effect) Reset(core.RuntimeConfig) {}

// Advance overwrites every cell.
func (e *Effect) Advance(grid *scene.Grid, _ uint64) {
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			grid.Set(x, y, Cell(x, y))
		}
	}
}

// Cell returns the gradient cell at (x, y). Channels wrap past 32 cells.
func Cell(x, y int) scene.ColoredTile {
	r := uint8(x * 8)
	g := uint8(y * 8)
	return scene.ColoredTile{
		Index: Tile,
		FG:    core.RGB(r, g, r/2+g/2),
		BG:    core.White,
	}
}
