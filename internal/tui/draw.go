package tui

import (
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// DrawText renders plain or pre-styled text at a position.
func DrawText(scr uv.Screen, area uv.Rectangle, text string) {
	if area.Empty() {
		return
	}
	uv.NewStyledString(text).Draw(scr, area)
}

// DrawStyled renders lipgloss-styled content filling area.
func DrawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, text string) {
	if area.Empty() {
		return
	}
	content := style.Width(area.Dx()).Height(area.Dy()).Render(text)
	uv.NewStyledString(content).Draw(scr, area)
}

// DrawCentered places text horizontally centered on the first row of area and
// returns the column it starts at.
func DrawCentered(scr uv.Screen, area uv.Rectangle, text string) int {
	w := lipgloss.Width(text)
	x := area.Min.X + max((area.Dx()-w)/2, 0)
	DrawText(scr, uv.Rect(x, area.Min.Y, min(w, area.Dx()), 1), text)
	return x
}

// hitRegion is a clickable horizontal span on a single row.
type hitRegion struct {
	y      int
	startX int // inclusive
	endX   int // exclusive
}

func (h hitRegion) contains(x, y int) bool {
	return y == h.y && x >= h.startX && x < h.endX
}
