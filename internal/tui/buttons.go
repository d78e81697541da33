package tui

import (
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/firstrun/internal/tui/theme"
	"github.com/mark3labs/firstrun/internal/wizard"
)

// ButtonAction is what clicking a button does.
type ButtonAction int

const (
	ActionNone ButtonAction = iota
	ActionAdvance
	ActionDismiss
	ActionHelp
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonPrimary
	ButtonDisabled
)

// Button is a single button in the button bar.
type Button struct {
	Label  string
	Action ButtonAction
	State  ButtonState
}

type buttonHit struct {
	action ButtonAction
	hitRegion
}

// ButtonBar draws a centered row of buttons and tracks their hit regions.
type ButtonBar struct {
	buttons []Button
	hits    []buttonHit
}

// SetButtons replaces the buttons shown.
func (b *ButtonBar) SetButtons(buttons []Button) {
	b.buttons = buttons
}

// Buttons returns the buttons currently shown.
func (b *ButtonBar) Buttons() []Button {
	return b.buttons
}

// Draw renders the bar centered in area.
func (b *ButtonBar) Draw(scr uv.Screen, area uv.Rectangle, s *theme.Styles) {
	b.hits = nil
	if area.Dy() < 1 || len(b.buttons) == 0 {
		return
	}

	rendered := make([]string, len(b.buttons))
	var line string
	for i, btn := range b.buttons {
		switch btn.State {
		case ButtonPrimary:
			rendered[i] = s.ButtonPrimary.Render(btn.Label)
		case ButtonDisabled:
			rendered[i] = s.ButtonDisabled.Render(btn.Label)
		default:
			rendered[i] = s.ButtonNormal.Render(btn.Label)
		}
		line += rendered[i]
	}

	x := DrawCentered(scr, area, line)
	for i, btn := range b.buttons {
		w := lipgloss.Width(rendered[i])
		if btn.State != ButtonDisabled {
			b.hits = append(b.hits, buttonHit{
				action:    btn.Action,
				hitRegion: hitRegion{y: area.Min.Y, startX: x, endX: x + w},
			})
		}
		x += w
	}
}

// ActionAtPosition returns the action of the button at (x, y).
func (b *ButtonBar) ActionAtPosition(x, y int) ButtonAction {
	for _, h := range b.hits {
		if h.contains(x, y) {
			return h.action
		}
	}
	return ActionNone
}

// NextLabel is the label of the forward button for a navigation state.
func NextLabel(st wizard.State) string {
	switch {
	case st.OnFinalPage:
		return "Close"
	case st.Index >= st.Total-1:
		return "Finish"
	default:
		return "Next"
	}
}

// WizardButtons builds the button set for a navigation state. The dismiss
// button is hidden on the completion screen, where the forward button
// already closes the wizard.
func WizardButtons(st wizard.State, hasHelp bool) []Button {
	var buttons []Button
	if hasHelp {
		buttons = append(buttons, Button{Label: "Help", Action: ActionHelp})
	}
	if !st.OnFinalPage {
		buttons = append(buttons, Button{Label: "Close", Action: ActionDismiss})
	}

	next := Button{Label: NextLabel(st), Action: ActionAdvance, State: ButtonPrimary}
	if st.Total == 0 {
		next.State = ButtonDisabled
	}
	return append(buttons, next)
}
