package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/scene"
	"github.com/vovakirdan/tiledemo/internal/tiles"
)

var (
	red  = core.RGB(255, 0, 0)
	blue = core.RGB(0, 0, 255)
	gray = core.RGB(9, 9, 9)
)

// testAtlas returns two 8x8 tiles: 0 is a checkerboard, 1 has only its top
// row set.
func testAtlas(t *testing.T) *tiles.Atlas {
	t.Helper()
	l := tiles.Layout{Columns: 2, Rows: 1, TileWidth: 8, TileHeight: 8}
	raw := make([]byte, l.ByteLen())
	for y := 0; y < 8; y++ {
		if y%2 == 0 {
			raw[y*2] = 0xAA
		} else {
			raw[y*2] = 0x55
		}
	}
	raw[1] = 0xFF

	a, err := tiles.Decode(raw, l)
	require.NoError(t, err)
	return a
}

func TestBlitWritesOnlyTargetRect(t *testing.T) {
	a := testAtlas(t)
	tile, _ := a.Tile(0)
	fb := core.NewFramebuffer(64, 64)

	require.NoError(t, Blit(fb, 2, 3, tile, red, blue))

	target := core.NewRect(16, 24, 8, 8)
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			got := fb.At(x, y)
			if !target.ContainsRect(core.NewRect(x, y, 1, 1)) {
				require.Equal(t, core.Black, got, "pixel (%d, %d) outside target changed", x, y)
				continue
			}
			lx, ly := x-target.X, y-target.Y
			if (lx+ly)%2 == 0 {
				require.Equal(t, red, got, "pixel (%d, %d)", x, y)
			} else {
				require.Equal(t, blue, got, "pixel (%d, %d)", x, y)
			}
		}
	}
}

func TestBlitOutOfBounds(t *testing.T) {
	a := testAtlas(t)
	tile, _ := a.Tile(1)
	fb := core.NewFramebuffer(16, 16)
	fb.Fill(gray)

	tests := []struct {
		name string
		x, y int
	}{
		{"past right edge", 2, 0},
		{"past bottom edge", 0, 2},
		{"negative", -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Blit(fb, tc.x, tc.y, tile, red, blue)
			assert.ErrorIs(t, err, ErrOutOfBounds)
		})
	}

	for _, c := range fb.Pix() {
		require.Equal(t, gray, c, "failed blits must not write")
	}
}

func TestCompositorRender(t *testing.T) {
	a := testAtlas(t)
	c := NewCompositor(a)

	g, err := scene.New(2, 1, scene.ColoredTile{Index: 1, FG: red, BG: blue})
	require.NoError(t, err)
	g.Set(1, 0, scene.ColoredTile{Index: 1, FG: blue, BG: red})

	fb := c.NewFramebuffer(g)
	require.Equal(t, 16, fb.Width())
	require.Equal(t, 8, fb.Height())
	require.NoError(t, c.Render(g, fb))

	// Tile 1 has its top row set.
	assert.Equal(t, red, fb.At(0, 0))
	assert.Equal(t, blue, fb.At(0, 1))
	assert.Equal(t, blue, fb.At(8, 0))
	assert.Equal(t, red, fb.At(15, 7))
}

func TestCompositorDeterministic(t *testing.T) {
	a, err := tiles.Default()
	require.NoError(t, err)
	c := NewCompositor(a)

	g, err := scene.New(8, 6, scene.ColoredTile{})
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		g.SetIndex(i, scene.ColoredTile{
			Index: (i * 37) % a.Len(),
			FG:    core.Color(i * 0x010203),
			BG:    core.Color(0xFFFFFF - i),
		})
	}

	fb1 := c.NewFramebuffer(g)
	fb2 := c.NewFramebuffer(g)
	fb2.Fill(gray)
	require.NoError(t, c.Render(g, fb1))
	require.NoError(t, c.Render(g, fb2))

	assert.Equal(t, fb1.Image().Pix, fb2.Image().Pix)
}

func TestCompositorParallelMatchesSequential(t *testing.T) {
	a, err := tiles.Default()
	require.NoError(t, err)
	c := NewCompositor(a)

	g, err := scene.New(16, 12, scene.ColoredTile{})
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		g.SetIndex(i, scene.ColoredTile{Index: i % a.Len(), FG: core.White, BG: core.Color(i)})
	}

	seq := c.NewFramebuffer(g)
	par := c.NewFramebuffer(g)
	require.NoError(t, c.Render(g, seq))
	require.NoError(t, c.RenderParallel(context.Background(), g, par, 4))

	assert.Equal(t, seq.Pix(), par.Pix())
}

func TestCompositorRejectsBadIndex(t *testing.T) {
	a := testAtlas(t)
	c := NewCompositor(a)

	for _, index := range []int{2, -1} {
		g, err := scene.New(1, 1, scene.ColoredTile{Index: index})
		require.NoError(t, err)

		err = c.Render(g, c.NewFramebuffer(g))
		assert.ErrorIs(t, err, ErrTileIndex, "index %d", index)

		err = c.RenderParallel(context.Background(), g, c.NewFramebuffer(g), 2)
		assert.ErrorIs(t, err, ErrTileIndex, "index %d (parallel)", index)
	}
}

func TestCompositorRejectsMismatchedFramebuffer(t *testing.T) {
	a := testAtlas(t)
	c := NewCompositor(a)

	g, err := scene.New(2, 2, scene.ColoredTile{})
	require.NoError(t, err)

	err = c.Render(g, core.NewFramebuffer(16, 8))
	assert.ErrorIs(t, err, ErrDimensions)
}
