package theme

import (
	"image/color"
	"sync"

	"charm.land/lipgloss/v2"
)

// Names accepted by Resolve.
const (
	Light = "light"
	Dark  = "dark"
	Auto  = "auto"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string
	Secondary string

	// Background hierarchy (dark→light on dark themes)
	BgBase     string
	BgMantle   string
	BgCrust    string
	BgSurface0 string
	BgSurface1 string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Error   string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// GlamourStyle names the glamour standard style matching this palette.
func (t *Theme) GlamourStyle() string {
	if t.IsDark {
		return Dark
	}
	return Light
}

// Resolve builds the palette for a configured theme name. Auto follows the
// terminal background. A valid accent replaces the primary color; an invalid
// one is ignored.
func Resolve(name, accent string, darkBackground bool) *Theme {
	var t *Theme
	switch name {
	case Light:
		t = NewCatppuccinLatte()
	case Dark:
		t = NewCatppuccinMocha()
	default:
		if darkBackground {
			t = NewCatppuccinMocha()
		} else {
			t = NewCatppuccinLatte()
		}
	}
	if hex, ok := NormalizeHexColor(accent); ok {
		t.Primary = hex
	}
	return t
}

var (
	current   = NewCatppuccinMocha()
	currentMu sync.RWMutex
)

// Current returns the active theme.
func Current() *Theme {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the active theme. Nil is ignored.
func SetCurrent(t *Theme) {
	if t == nil {
		return
	}
	currentMu.Lock()
	current = t
	currentMu.Unlock()
}

// HexToColor converts a hex string to a color usable by lipgloss.
func HexToColor(hex string) color.Color {
	return lipgloss.Color(hex)
}
