package tui

import (
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/firstrun/internal/tui/theme"
	"github.com/mark3labs/firstrun/internal/wizard"
)

// Header renders the top bar: wizard title on the left, brand on the right.
type Header struct {
	title string
	brand wizard.Brand
}

// NewHeader creates a new Header component.
func NewHeader(title string) *Header {
	return &Header{title: title}
}

// SetBrand updates the brand shown on the right.
func (h *Header) SetBrand(b wizard.Brand) {
	h.brand = b
}

// Draw renders the header to the screen at the given area.
func (h *Header) Draw(scr uv.Screen, area uv.Rectangle, s *theme.Styles) {
	if area.Dy() < 1 {
		return
	}

	left := s.HeaderTitle.Render(h.title)
	right := ""
	if label := brandLabel(h.brand); label != "" {
		right = s.HeaderBrand.Render(label)
	}

	// -2 for the bar's side padding
	padding := area.Dx() - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		right = ""
		padding = 0
	}
	DrawStyled(scr, area, s.HeaderBar, left+strings.Repeat(" ", padding)+right)
}

// brandLabel is the brand name, or the logo file name when only a logo is set.
func brandLabel(b wizard.Brand) string {
	if name := strings.TrimSpace(b.Name); name != "" {
		return name
	}
	if logo := strings.TrimSpace(b.Logo); logo != "" {
		return filepath.Base(logo)
	}
	return ""
}
