package core

import (
	"fmt"
	"math"
)

// Texture is a width×height lookup table sampled with normalized
// coordinates. Coordinates wrap, so any finite (u, v) is valid.
type Texture[T any] struct {
	data   []T
	width  int
	height int
}

// NewTexture wraps data as a texture. len(data) must equal width*height.
func NewTexture[T any](data []T, width, height int) (*Texture[T], error) {
	if width <= 0 || height <= 0 || len(data) != width*height {
		return nil, fmt.Errorf("core: texture %dx%d needs %d texels, got %d", width, height, width*height, len(data))
	}
	return &Texture[T]{data: data, width: width, height: height}, nil
}

// Sample returns the texel at (u, v). NaN and infinite coordinates map to 0.
// The texel index is clamped for very large textures where float rounding
// can land exactly on the upper edge.
func (t *Texture[T]) Sample(u, v float64) T {
	x := min(int(wrapUnit(u)*float64(t.width)), t.width-1)
	y := min(int(wrapUnit(v)*float64(t.height)), t.height-1)
	return t.data[x+y*t.width]
}

// wrapUnit maps f into [0, 1).
func wrapUnit(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Mod(math.Mod(f, 1)+1, 1)
	if f >= 1 {
		return 0
	}
	return f
}
