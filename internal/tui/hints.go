package tui

import (
	"github.com/mark3labs/firstrun/internal/tui/theme"
)

// Standard key representations for consistent hints.
const (
	KeyEnter     = "enter"
	KeyBackspace = "backspace"
	KeyEsc       = "esc"
	KeyDigits    = "1-9"
	KeyHelp      = "?"
	KeyScroll    = "↑/↓"
)

// RenderHint renders a single key-description pair.
// Example: RenderHint("enter", "next") -> "enter next"
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders key-description pairs separated by " • ".
// Example: RenderHintBar("enter", "next", "esc", "close")
// Returns: "enter next • esc close"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var result string
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			result += " " + s.HintSeparator.Render("•") + " "
		}
		result += RenderHint(pairs[i], pairs[i+1])
	}
	return result
}
