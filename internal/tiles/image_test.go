package tiles

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestDecodeImageFormats(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 2))
	src.SetGray(1, 0, color.Gray{Y: 255})

	var pngBuf, bmpBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, src))
	require.NoError(t, bmp.Encode(&bmpBuf, src))

	for name, buf := range map[string]*bytes.Buffer{"png": &pngBuf, "bmp": &bmpBuf} {
		m, format, err := DecodeImage(buf)
		require.NoError(t, err, name)
		assert.Equal(t, name, format)
		assert.Equal(t, 4, m.Bounds().Dx(), name)
		y := color.GrayModel.Convert(m.At(1, 0)).(color.Gray).Y
		assert.Equal(t, uint8(255), y, name)
	}

	_, _, err := DecodeImage(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestCheckImage(t *testing.T) {
	l := Layout{Columns: 2, Rows: 1, TileWidth: 8, TileHeight: 8}
	assert.NoError(t, CheckImage(image.NewGray(image.Rect(0, 0, 16, 8)), l))
	assert.ErrorIs(t, CheckImage(image.NewGray(image.Rect(0, 0, 15, 8)), l), ErrSize)
}

func TestFitThenEncode(t *testing.T) {
	// A white 64x64 square fitted to a 16x8 sheet stays white.
	src := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	l := Layout{Columns: 2, Rows: 1, TileWidth: 8, TileHeight: 8}

	fitted := Fit(src, l)
	require.NoError(t, CheckImage(fitted, l))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, fitted))
	assert.Equal(t, bytes.Repeat([]byte{0xFF}, l.ByteLen()), buf.Bytes())
}

func TestEnlarge(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.SetGray(1, 0, color.Gray{Y: 255})

	big := Enlarge(src, 3)
	assert.Equal(t, image.Rect(0, 0, 6, 3), big.Bounds())
	r, _, _, _ := big.At(2, 2).RGBA()
	assert.Zero(t, r)
	r, _, _, _ = big.At(3, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)

	assert.Same(t, src, Enlarge(src, 1))
}
