package gradient

import (
	"testing"

	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/scene"
)

func TestCell(t *testing.T) {
	tests := []struct {
		x, y int
		want core.Color
	}{
		{0, 0, core.RGB(0, 0, 0)},
		{1, 2, core.RGB(8, 16, 4+8)},
		{31, 31, core.RGB(248, 248, 124+124)},
		{32, 0, core.RGB(0, 0, 0)}, // wraps
	}
	for _, tt := range tests {
		c := Cell(tt.x, tt.y)
		if c.FG != tt.want {
			t.Errorf("Cell(%d,%d).FG = %s, want %s", tt.x, tt.y, c.FG.Hex(), tt.want.Hex())
		}
		if c.Index != Tile || c.BG != core.White {
			t.Errorf("Cell(%d,%d) = %+v, want tile %d on white", tt.x, tt.y, c, Tile)
		}
	}
}

func TestAdvanceOverwrites(t *testing.T) {
	g, err := scene.New(4, 4, scene.ColoredTile{Index: 200, FG: core.White})
	if err != nil {
		t.Fatalf("scene.New: %v", err)
	}
	e := New()
	e.Reset(core.RuntimeConfig{GridW: 4, GridH: 4})

	for tick := uint64(0); tick < 2; tick++ {
		g.Set(1, 1, scene.ColoredTile{Index: 7})
		e.Advance(g, tick)
		if got := g.At(1, 1); got != Cell(1, 1) {
			t.Errorf("tick %d: cell (1,1) = %+v, want %+v", tick, got, Cell(1, 1))
		}
	}
}
