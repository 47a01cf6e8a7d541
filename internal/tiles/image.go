package tiles

import (
	"fmt"
	"image"
	_ "image/gif" // register decoders for convert
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// DecodeImage reads a PNG, GIF, JPEG or BMP image.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	m, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("tiles: decode image: %w", err)
	}
	return m, format, nil
}

// CheckImage reports whether m has the sheet size of l.
func CheckImage(m image.Image, l Layout) error {
	b := m.Bounds()
	if b.Dx() != l.SheetWidth() || b.Dy() != l.SheetHeight() {
		return fmt.Errorf("%w: image is %dx%d, layout needs %dx%d",
			ErrSize, b.Dx(), b.Dy(), l.SheetWidth(), l.SheetHeight())
	}
	return nil
}

// Fit resamples m to the sheet size of l with bilinear filtering.
func Fit(m image.Image, l Layout) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, l.SheetWidth(), l.SheetHeight()))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Src, nil)
	return dst
}

// Enlarge scales m by an integer factor keeping hard pixel edges.
func Enlarge(m image.Image, factor int) image.Image {
	if factor <= 1 {
		return m
	}
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)
	return dst
}
