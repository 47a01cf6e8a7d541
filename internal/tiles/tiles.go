/*
Package tiles implements the packed 1-bit tile atlas used by the demo.

The atlas is stored as a single raster sheet, Columns×Rows tiles wide and
high, one bit per pixel, most significant bit first, rows packed left to
right across the whole sheet rather than per tile. A set bit selects the
foreground colour of a tile, a clear bit the background colour; the encoder
writes a set bit for every source pixel brighter than 127.
*/
package tiles

import (
	_ "embed"
	"errors"
	"fmt"
)

const pixelsPerByte = 8

var (
	// ErrSize is returned when the packed data does not match the layout.
	ErrSize = errors.New("tiles: packed data does not match layout")
	// ErrLayout is returned for layouts that cannot be packed.
	ErrLayout = errors.New("tiles: invalid layout")
)

//go:embed assets/tiles.raw
var rawTiles []byte

// Layout describes the shape of an atlas sheet.
type Layout struct {
	Columns    int // Tiles per sheet row
	Rows       int // Tiles per sheet column
	TileWidth  int // Pixels per tile row
	TileHeight int // Pixel rows per tile
}

// DefaultLayout is a 16×16 sheet of 8×8 tiles (128×128 pixels, 2048 bytes).
var DefaultLayout = Layout{Columns: 16, Rows: 16, TileWidth: 8, TileHeight: 8}

// SheetWidth returns the sheet width in pixels.
func (l Layout) SheetWidth() int {
	return l.Columns * l.TileWidth
}

// SheetHeight returns the sheet height in pixels.
func (l Layout) SheetHeight() int {
	return l.Rows * l.TileHeight
}

// Tiles returns the number of tiles in the sheet.
func (l Layout) Tiles() int {
	return l.Columns * l.Rows
}

// Stride returns the number of bytes per sheet pixel row.
func (l Layout) Stride() int {
	return l.SheetWidth() / pixelsPerByte
}

// ByteLen returns the exact packed size of the sheet.
func (l Layout) ByteLen() int {
	return l.SheetWidth() * l.SheetHeight() / pixelsPerByte
}

// Validate checks that every dimension is positive and that sheet rows
// start on a byte boundary.
func (l Layout) Validate() error {
	if l.Columns <= 0 || l.Rows <= 0 || l.TileWidth <= 0 || l.TileHeight <= 0 {
		return fmt.Errorf("%w: %dx%d tiles of %dx%d", ErrLayout, l.Columns, l.Rows, l.TileWidth, l.TileHeight)
	}
	if l.SheetWidth()%pixelsPerByte != 0 {
		return fmt.Errorf("%w: sheet width %d is not a multiple of %d", ErrLayout, l.SheetWidth(), pixelsPerByte)
	}
	return nil
}

// Tile is an immutable foreground/background mask.
type Tile struct {
	width  int
	height int
	mask   []bool
}

// Width returns the tile width in pixels.
func (t Tile) Width() int {
	return t.width
}

// Height returns the tile height in pixels.
func (t Tile) Height() int {
	return t.height
}

// Set reports whether the pixel at (x, y) selects the foreground colour.
func (t Tile) Set(x, y int) bool {
	return t.mask[x+y*t.width]
}

// Atlas is an ordered, read-only collection of equally sized tiles.
// It is safe for concurrent use once decoded.
type Atlas struct {
	layout Layout
	tiles  []Tile
}

// Layout returns the sheet layout the atlas was decoded with.
func (a *Atlas) Layout() Layout {
	return a.layout
}

// Len returns the number of tiles.
func (a *Atlas) Len() int {
	return len(a.tiles)
}

// Tile returns tile i and whether i is in range.
func (a *Atlas) Tile(i int) (Tile, bool) {
	if i < 0 || i >= len(a.tiles) {
		return Tile{}, false
	}
	return a.tiles[i], true
}

// Default decodes the atlas compiled into the binary.
func Default() (*Atlas, error) {
	return Decode(rawTiles, DefaultLayout)
}
