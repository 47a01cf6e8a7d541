// Package render turns a scene grid into pixels: Blit copies one tile into
// the framebuffer with two colours, and Compositor draws a whole grid.
package render

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/scene"
	"github.com/vovakirdan/tiledemo/internal/tiles"
)

var (
	// ErrOutOfBounds is returned when a tile would be drawn outside the framebuffer.
	ErrOutOfBounds = errors.New("render: tile outside framebuffer")
	// ErrTileIndex is returned for a cell that references a tile the atlas lacks.
	ErrTileIndex = errors.New("render: tile index out of range")
	// ErrDimensions is returned when grid, atlas and framebuffer sizes disagree.
	ErrDimensions = errors.New("render: dimension mismatch")
)

// Blit draws tile at cell (cellX, cellY), using fg for set bits and bg for
// clear bits. The whole tile rectangle must lie inside fb; otherwise nothing
// is written.
func Blit(fb *core.Framebuffer, cellX, cellY int, tile tiles.Tile, fg, bg core.Color) error {
	tw, th := tile.Width(), tile.Height()
	dst := core.NewRect(cellX*tw, cellY*th, tw, th)
	if !fb.Bounds().ContainsRect(dst) {
		return fmt.Errorf("%w: cell (%d, %d) in %dx%d", ErrOutOfBounds, cellX, cellY, fb.Width(), fb.Height())
	}

	pix := fb.Pix()
	stride := fb.Width()
	for ty := 0; ty < th; ty++ {
		row := pix[dst.X+(dst.Y+ty)*stride:]
		for tx := 0; tx < tw; tx++ {
			if tile.Set(tx, ty) {
				row[tx] = fg
			} else {
				row[tx] = bg
			}
		}
	}
	return nil
}

// Compositor draws scene grids using a shared read-only atlas.
type Compositor struct {
	atlas *tiles.Atlas
}

// NewCompositor creates a compositor for atlas.
func NewCompositor(atlas *tiles.Atlas) *Compositor {
	return &Compositor{atlas: atlas}
}

// FramebufferSize returns the pixel size needed to draw grid.
func (c *Compositor) FramebufferSize(grid *scene.Grid) (int, int) {
	l := c.atlas.Layout()
	return grid.Width() * l.TileWidth, grid.Height() * l.TileHeight
}

// NewFramebuffer allocates a framebuffer sized for grid.
func (c *Compositor) NewFramebuffer(grid *scene.Grid) *core.Framebuffer {
	w, h := c.FramebufferSize(grid)
	return core.NewFramebuffer(w, h)
}

// Render draws every cell of grid into fb in row-major order.
// The output depends only on grid and the atlas.
func (c *Compositor) Render(grid *scene.Grid, fb *core.Framebuffer) error {
	if err := c.checkSize(grid, fb); err != nil {
		return err
	}
	for y := 0; y < grid.Height(); y++ {
		if err := c.renderRow(grid, fb, y); err != nil {
			return err
		}
	}
	return nil
}

// RenderParallel draws grid rows concurrently on up to workers goroutines.
// Rows write disjoint framebuffer regions, so the only requirement is that
// nothing mutates grid until RenderParallel returns.
func (c *Compositor) RenderParallel(ctx context.Context, grid *scene.Grid, fb *core.Framebuffer, workers int) error {
	if err := c.checkSize(grid, fb); err != nil {
		return err
	}
	if workers <= 1 {
		return c.Render(grid, fb)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < grid.Height(); y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.renderRow(grid, fb, y)
		})
	}
	return g.Wait()
}

func (c *Compositor) renderRow(grid *scene.Grid, fb *core.Framebuffer, y int) error {
	for x := 0; x < grid.Width(); x++ {
		cell := grid.At(x, y)
		tile, ok := c.atlas.Tile(cell.Index)
		if !ok {
			return fmt.Errorf("%w: cell (%d, %d) has index %d, atlas holds %d", ErrTileIndex, x, y, cell.Index, c.atlas.Len())
		}
		if err := Blit(fb, x, y, tile, cell.FG, cell.BG); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compositor) checkSize(grid *scene.Grid, fb *core.Framebuffer) error {
	w, h := c.FramebufferSize(grid)
	if fb.Width() != w || fb.Height() != h {
		return fmt.Errorf("%w: %dx%d grid needs a %dx%d framebuffer, got %dx%d",
			ErrDimensions, grid.Width(), grid.Height(), w, h, fb.Width(), fb.Height())
	}
	return nil
}
