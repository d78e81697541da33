package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/firstrun/internal/tui/theme"
	"github.com/mark3labs/firstrun/internal/wizard"
)

// Footer renders the page indicator and the key hints.
type Footer struct {
	state   wizard.State
	hasHelp bool
}

// SetState updates the navigation state the footer describes.
func (f *Footer) SetState(st wizard.State, hasHelp bool) {
	f.state = st
	f.hasHelp = hasHelp
}

// Draw renders the footer to the screen at the given area.
func (f *Footer) Draw(scr uv.Screen, area uv.Rectangle, s *theme.Styles) {
	if area.Dy() < 1 {
		return
	}

	left := s.FooterCounter.Render(PageIndicator(f.state))
	avail := area.Dx() - lipgloss.Width(left) - 2

	right := f.hints(false)
	if lipgloss.Width(right) > avail {
		right = f.hints(true)
	}
	if lipgloss.Width(right) > avail {
		right = ""
	}

	padding := max(area.Dx()-lipgloss.Width(left)-lipgloss.Width(right), 0)
	DrawText(scr, area, left+strings.Repeat(" ", padding)+right)
}

func (f *Footer) hints(condensed bool) string {
	st := f.state
	if !st.Initialized || st.Total == 0 {
		return RenderHintBar(KeyEsc, "close")
	}

	pairs := []string{KeyEnter, strings.ToLower(NextLabel(st))}
	if !condensed {
		if !st.OnFinalPage && st.Index > 0 {
			pairs = append(pairs, KeyBackspace, "back")
		}
		if st.Total > 1 {
			pairs = append(pairs, KeyDigits, "jump")
		}
		pairs = append(pairs, KeyScroll, "scroll")
	}
	if f.hasHelp {
		pairs = append(pairs, KeyHelp, "help")
	}
	if !st.OnFinalPage {
		pairs = append(pairs, KeyEsc, "close")
	}
	return RenderHintBar(pairs...)
}

// PageIndicator is "i of N" on a content page and empty otherwise.
func PageIndicator(st wizard.State) string {
	if !st.Initialized || st.Total == 0 || st.OnFinalPage {
		return ""
	}
	return fmt.Sprintf("%d of %d", st.Index+1, st.Total)
}
