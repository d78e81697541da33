package tui

import (
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/firstrun/internal/logger"
	"github.com/mark3labs/firstrun/internal/pages"
	"github.com/mark3labs/firstrun/internal/tui/theme"
)

// Fixed copy shown by the content area.
const (
	LoadFailedText     = "This page could not be loaded."
	CompletionTitle    = "You're all set!"
	CompletionBodyText = "Press enter to close the wizard."
	LoadingText        = "Loading…"
)

type contentMode int

const (
	modeLoading contentMode = iota
	modeMarkdown
	modeFailed
	modeCompletion
	modeMessage
)

// ContentView shows the current page: rendered markdown in a scrollable
// viewport, or one of the fixed views (loading, failure, completion).
type ContentView struct {
	viewport viewport.Model
	spinner  spinner.Model

	width, height int
	style         string

	mode     contentMode
	markdown string
	message  string
	rendered bool
}

// NewContentView creates an empty content view in the loading state.
func NewContentView() *ContentView {
	vp := viewport.New(viewport.WithWidth(60), viewport.WithHeight(10))
	vp.MouseWheelEnabled = true
	return &ContentView{
		viewport: vp,
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		style:    pages.StyleDark,
	}
}

// SetSize resizes the view and re-renders markdown to the new width.
func (c *ContentView) SetSize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	c.viewport.SetWidth(width)
	c.viewport.SetHeight(height)
	c.rendered = false
}

// SetTheme switches the markdown style and spinner color.
func (c *ContentView) SetTheme(t *theme.Theme) {
	c.spinner.Style = lipgloss.NewStyle().Foreground(theme.HexToColor(t.Primary))
	if style := t.GlamourStyle(); style != c.style {
		c.style = style
		c.rendered = false
	}
}

// SetMarkdownStyle forces a glamour style, e.g. ascii for plain output.
func (c *ContentView) SetMarkdownStyle(style string) {
	c.style = style
	c.rendered = false
}

// ShowLoading switches to the loading indicator and returns the command that
// starts it spinning.
func (c *ContentView) ShowLoading() tea.Cmd {
	c.mode = modeLoading
	return c.spinner.Tick
}

// ShowMarkdown displays a page.
func (c *ContentView) ShowMarkdown(md string) {
	c.mode = modeMarkdown
	c.markdown = md
	c.rendered = false
	c.viewport.GotoTop()
}

// ShowFailed displays the load failure fallback.
func (c *ContentView) ShowFailed() {
	c.mode = modeFailed
}

// ShowCompletion displays the built-in completion view.
func (c *ContentView) ShowCompletion() {
	c.mode = modeCompletion
}

// ShowMessage displays a fixed centered message, used when the wizard cannot
// run.
func (c *ContentView) ShowMessage(msg string) {
	c.mode = modeMessage
	c.message = msg
}

// Loading reports whether the loading indicator is showing.
func (c *ContentView) Loading() bool {
	return c.mode == modeLoading
}

// Update handles scrolling and spinner ticks.
func (c *ContentView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case spinner.TickMsg:
		// Let the spinner stop once loading is over.
		if c.mode != modeLoading {
			return nil
		}
		c.spinner, cmd = c.spinner.Update(msg)
	default:
		if c.mode == modeMarkdown {
			c.viewport, cmd = c.viewport.Update(msg)
		}
	}
	return cmd
}

// Draw renders the view into area.
func (c *ContentView) Draw(scr uv.Screen, area uv.Rectangle, s *theme.Styles) {
	if area.Empty() {
		return
	}

	var body string
	switch c.mode {
	case modeMarkdown:
		c.render()
		body = c.viewport.View()
		DrawText(scr, area, body)
		return
	case modeFailed:
		body = s.ErrorText.Render(LoadFailedText)
	case modeCompletion:
		body = lipgloss.JoinVertical(lipgloss.Center, s.FinalTitle.Render(CompletionTitle), "", s.FinalBody.Render(CompletionBodyText))
	case modeMessage:
		body = s.Muted.Render(c.message)
	default:
		body = c.spinner.View() + " " + s.Muted.Render(LoadingText)
	}
	DrawText(scr, area, lipgloss.Place(area.Dx(), area.Dy(), lipgloss.Center, lipgloss.Center, body))
}

func (c *ContentView) render() {
	if c.rendered {
		return
	}
	out, err := pages.RenderMarkdown(c.markdown, c.width, c.style)
	if err != nil {
		logger.Warn("rendering markdown: %v", err)
		out = c.markdown
	}
	c.viewport.SetContent(out)
	c.rendered = true
}
