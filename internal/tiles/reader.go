package tiles

import (
	"fmt"
	"image"
	"image/color"
)

// bit returns the sheet pixel at (x, y) from packed data.
func bit(raw []byte, stride, x, y int) bool {
	return (raw[x>>3+y*stride]<<(x&7))&0x80 != 0
}

// Decode unpacks raw into an atlas with the given layout. The length of raw
// must be exactly l.ByteLen().
func Decode(raw []byte, l Layout) (*Atlas, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if len(raw) != l.ByteLen() {
		return nil, fmt.Errorf("%w: got %d bytes, expected %d", ErrSize, len(raw), l.ByteLen())
	}

	tilePixels := l.TileWidth * l.TileHeight
	a := &Atlas{
		layout: l,
		tiles:  make([]Tile, l.Tiles()),
	}
	for i := range a.tiles {
		a.tiles[i] = Tile{
			width:  l.TileWidth,
			height: l.TileHeight,
			mask:   make([]bool, tilePixels),
		}
	}

	stride := l.Stride()
	for y := 0; y < l.SheetHeight(); y++ {
		for x := 0; x < l.SheetWidth(); x++ {
			tx, ty := x/l.TileWidth, y/l.TileHeight
			lx, ly := x%l.TileWidth, y%l.TileHeight
			a.tiles[tx+ty*l.Columns].mask[lx+ly*l.TileWidth] = bit(raw, stride, x, y)
		}
	}

	return a, nil
}

// Image renders the atlas back into a sheet, white where a tile bit is set.
func (a *Atlas) Image() *image.Gray {
	l := a.layout
	img := image.NewGray(image.Rect(0, 0, l.SheetWidth(), l.SheetHeight()))
	for i, t := range a.tiles {
		ox, oy := (i%l.Columns)*l.TileWidth, (i/l.Columns)*l.TileHeight
		for y := 0; y < t.height; y++ {
			for x := 0; x < t.width; x++ {
				if t.Set(x, y) {
					img.SetGray(ox+x, oy+y, color.Gray{Y: 0xff})
				}
			}
		}
	}
	return img
}
