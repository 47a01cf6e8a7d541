package core

import "fmt"

// Color is a packed 0x00RRGGBB pixel value.
type Color uint32

// Frequently used colors.
const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
)

// RGB packs 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB returns the individual channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as a "#rrggbb" string, the form lipgloss accepts
// for truecolor styles.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}
