package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderBar   lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderBrand lipgloss.Style

	StepActive     lipgloss.Style
	StepCompleted  lipgloss.Style
	StepPending    lipgloss.Style
	StepLabel      lipgloss.Style
	StepLabelFocus lipgloss.Style
	SegmentDone    lipgloss.Style
	SegmentTodo    lipgloss.Style

	ButtonNormal   lipgloss.Style
	ButtonPrimary  lipgloss.Style
	ButtonDisabled lipgloss.Style

	FooterCounter lipgloss.Style

	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	ErrorText  lipgloss.Style
	Muted      lipgloss.Style
	FinalTitle lipgloss.Style
	FinalBody  lipgloss.Style
}

func (t *Theme) buildStyles() *Styles {
	primary := HexToColor(t.Primary)
	button := lipgloss.NewStyle().Padding(0, 2).MarginLeft(1).MarginRight(1)

	return &Styles{
		HeaderBar: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgBright)).
			Background(HexToColor(t.BgMantle)).
			Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		HeaderBrand: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgSubtle)),

		StepActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		StepCompleted: lipgloss.NewStyle().
			Foreground(HexToColor(t.Success)),
		StepPending: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgMuted)),
		StepLabel: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgSubtle)),
		StepLabelFocus: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgBase)).
			Bold(true),
		SegmentDone: lipgloss.NewStyle().
			Foreground(HexToColor(t.Success)),
		SegmentTodo: lipgloss.NewStyle().
			Foreground(HexToColor(t.BgSurface1)),

		ButtonNormal: button.
			Foreground(HexToColor(t.FgBase)).
			Background(HexToColor(t.BgSurface0)),
		ButtonPrimary: button.
			Foreground(HexToColor(t.BgBase)).
			Background(primary).
			Bold(true),
		ButtonDisabled: button.
			Foreground(HexToColor(t.FgMuted)).
			Background(HexToColor(t.BgMantle)),

		FooterCounter: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgSubtle)),

		HintKey: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgSubtle)).
			Bold(true),
		HintDesc: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(HexToColor(t.BgSurface1)),

		ErrorText: lipgloss.NewStyle().
			Foreground(HexToColor(t.Error)),
		Muted: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgMuted)),
		FinalTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		FinalBody: lipgloss.NewStyle().
			Foreground(HexToColor(t.FgBase)),
	}
}
