package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiledemo/internal/core"
)

// halfBlock draws the upper pixel in the foreground colour and the lower
// pixel in the background colour, so one cell shows two pixel rows.
const halfBlock = "▀"

// run is a horizontal span of cells sharing both colours.
type run struct {
	top    core.Color
	bottom core.Color
	n      int
}

// rowRuns groups the cells of terminal row row (pixel rows 2*row and
// 2*row+1). A missing lower pixel on odd heights is black.
func rowRuns(fb *core.Framebuffer, row int) []run {
	y := row * 2
	var runs []run
	for x := range fb.Width() {
		top := fb.At(x, y)
		bottom := core.Black
		if y+1 < fb.Height() {
			bottom = fb.At(x, y+1)
		}
		if n := len(runs); n > 0 && runs[n-1].top == top && runs[n-1].bottom == bottom {
			runs[n-1].n++
			continue
		}
		runs = append(runs, run{top: top, bottom: bottom, n: 1})
	}
	return runs
}

// RenderFramebuffer converts a framebuffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
// A nil renderer uses the lipgloss default.
func RenderFramebuffer(r *lipgloss.Renderer, fb *core.Framebuffer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	rows := (fb.Height() + 1) / 2
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(fb.Width()*rows*4 + rows)

	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for _, rn := range rowRuns(fb, row) {
			style := r.NewStyle().
				Foreground(lipgloss.Color(rn.top.Hex())).
				Background(lipgloss.Color(rn.bottom.Hex()))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, rn.n)))
		}
	}
	return sb.String()
}
