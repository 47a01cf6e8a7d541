package tiles

import (
	"bufio"
	"image"
	"image/color"
	"io"
)

// threshold is the luma above which a pixel packs as a set bit.
const threshold = 127

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) encode(m image.Image) error {
	b := m.Bounds()
	var acc byte
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			acc <<= 1
			if color.GrayModel.Convert(m.At(x, y)).(color.Gray).Y > threshold {
				acc |= 1
			}
			n++
			if n == pixelsPerByte {
				if err := e.w.WriteByte(acc); err != nil {
					return err
				}
				acc, n = 0, 0
			}
		}
	}
	// A trailing group of fewer than eight pixels is dropped.
	return e.w.Flush()
}

// Encode writes m to w as packed 1-bit pixels in raster order. Pixels are
// converted to gray first; anything brighter than 127 becomes a set bit.
// If the pixel count is not a multiple of eight the remainder is discarded.
func Encode(w io.Writer, m image.Image) error {
	e := encoder{w: bufio.NewWriter(w)}
	return e.encode(m)
}

// EncodedLen returns the number of bytes Encode writes for m.
func EncodedLen(m image.Image) int {
	b := m.Bounds()
	return b.Dx() * b.Dy() / pixelsPerByte
}
