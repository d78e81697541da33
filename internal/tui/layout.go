package tui

import uv "github.com/charmbracelet/ultraviolet"

// Layout dimensions
const (
	HeaderHeight   = 1
	ProgressHeight = 2
	ButtonsHeight  = 1
	FooterHeight   = 1

	// CompactWidthBreakpoint is the width below which step labels are hidden
	// from the progress line.
	CompactWidthBreakpoint = 80

	contentMaxWidth = 100
	contentPadX     = 2
)

// Layout defines the rectangular regions for all UI components.
type Layout struct {
	Compact  bool
	Area     uv.Rectangle
	Header   uv.Rectangle
	Progress uv.Rectangle
	Content  uv.Rectangle
	Buttons  uv.Rectangle
	Footer   uv.Rectangle
}

// CalculateLayout computes the layout rectangles for a terminal size. Rows
// are handed out top to bottom and bottom to top; the content area gets
// whatever is left and may be empty on tiny terminals.
func CalculateLayout(width, height int) Layout {
	area := uv.Rect(0, 0, max(width, 0), max(height, 0))
	rest := area

	l := Layout{Compact: width < CompactWidthBreakpoint, Area: area}
	l.Header = takeTop(&rest, HeaderHeight)
	takeTop(&rest, 1)
	l.Progress = takeTop(&rest, ProgressHeight)
	l.Footer = takeBottom(&rest, FooterHeight)
	l.Buttons = takeBottom(&rest, ButtonsHeight)
	takeBottom(&rest, 1)

	// Center the content column and keep it readable on wide terminals.
	content := rest
	w := min(content.Dx()-2*contentPadX, contentMaxWidth)
	if w > 0 {
		x := content.Min.X + (content.Dx()-w)/2
		content = uv.Rect(x, content.Min.Y, w, content.Dy())
	}
	l.Content = content
	return l
}

func takeTop(r *uv.Rectangle, n int) uv.Rectangle {
	n = min(n, r.Dy())
	out := uv.Rect(r.Min.X, r.Min.Y, r.Dx(), n)
	r.Min.Y += n
	return out
}

func takeBottom(r *uv.Rectangle, n int) uv.Rectangle {
	n = min(n, r.Dy())
	out := uv.Rect(r.Min.X, r.Max.Y-n, r.Dx(), n)
	r.Max.Y -= n
	return out
}
