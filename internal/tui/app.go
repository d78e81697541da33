// Package tui is the terminal front end of the wizard. It turns keyboard and
// mouse input into wizard.Controller operations and draws the controller's
// state: header, progress steps, page content, buttons and footer.
package tui

import (
	"context"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/firstrun/internal/logger"
	"github.com/mark3labs/firstrun/internal/tui/theme"
	"github.com/mark3labs/firstrun/internal/wizard"
)

// Messages for states in which the wizard cannot run.
const (
	NoHostText  = "The setup wizard is unavailable."
	NoPagesText = "There are no pages to show."
	PagesFailed = "The setup pages could not be loaded."
)

// Options tune the App.
type Options struct {
	// Title is shown in the header.
	Title string
	// MarkdownStyle forces a glamour style instead of following the theme.
	MarkdownStyle string
}

// App is the main Bubbletea model.
type App struct {
	ctx  context.Context
	host wizard.Host
	ctrl *wizard.Controller
	keys KeyMap
	opts Options

	width, height int
	layout        Layout

	header   *Header
	progress ProgressBar
	content  *ContentView
	buttons  ButtonBar
	footer   Footer

	meta           wizard.Metadata
	theme          *theme.Theme
	darkBackground bool
	bgKnown        bool

	pagesErr error
	quitting bool
}

// NewApp creates the wizard UI bound to host. A nil host gives an inert
// view that can only be quit.
func NewApp(ctx context.Context, host wizard.Host, opts Options) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	a := &App{
		ctx:            ctx,
		host:           host,
		ctrl:           wizard.New(ctx, host),
		keys:           DefaultKeyMap(),
		opts:           opts,
		header:         NewHeader(opts.Title),
		content:        NewContentView(),
		darkBackground: true,
	}
	a.applyTheme()
	if host == nil {
		a.content.ShowMessage(NoHostText)
	}
	return a
}

// Init fetches the page list and presentation metadata, and asks the
// terminal for its background color to resolve the auto theme.
func (a *App) Init() tea.Cmd {
	if a.host == nil {
		return nil
	}
	return tea.Batch(
		wizard.FetchPages(a.ctx, a.host),
		wizard.FetchMetadata(a.ctx, a.host),
		tea.RequestBackgroundColor,
		a.content.ShowLoading(),
	)
}

// Update handles all incoming messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.BackgroundColorMsg:
		a.darkBackground = msg.IsDark()
		a.bgKnown = true
		a.applyTheme()
		return a, nil

	case wizard.PagesMsg:
		return a, a.handlePages(msg)

	case wizard.MetadataMsg:
		a.meta = msg.Metadata
		a.header.SetBrand(msg.Metadata.Brand)
		a.applyTheme()
		return a, nil

	case wizard.ContentMsg:
		a.handleContent(msg)
		return a, nil

	case wizard.CompletedMsg, wizard.DismissedMsg:
		a.quitting = true
		return a, tea.Quit

	case tea.KeyPressMsg:
		return a, a.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return a, a.handleMouse(msg)
	}

	return a, a.content.Update(msg)
}

func (a *App) handlePages(msg wizard.PagesMsg) tea.Cmd {
	if msg.Err != nil {
		logger.Error("fetching pages: %v", msg.Err)
		a.pagesErr = msg.Err
		a.content.ShowMessage(PagesFailed)
		return nil
	}

	cmd := a.ctrl.Initialize(msg.Pages)
	if len(msg.Pages) == 0 {
		a.content.ShowMessage(NoPagesText)
	}
	return cmd
}

func (a *App) handleContent(msg wizard.ContentMsg) {
	if !a.ctrl.Apply(msg) {
		logger.Debug("dropping stale content for %+v (intent %d)", msg.Target, msg.Intent)
		return
	}

	c, _ := a.ctrl.Content()
	switch {
	case c.Err != nil:
		logger.Warn("loading %+v: %v", c.Target, c.Err)
		a.content.ShowFailed()
	case c.UsesDefault():
		a.content.ShowCompletion()
	default:
		a.content.ShowMarkdown(c.Markdown)
	}
}

// interactive reports whether navigation input should reach the controller.
func (a *App) interactive() bool {
	return a.host != nil && a.pagesErr == nil
}

// handleKeyPress routes keys: quit first, then wizard navigation, then
// scrolling of the page content.
func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, a.keys.Quit) {
		return a.quit()
	}
	if !a.interactive() {
		if key.Matches(msg, a.keys.Close) {
			return a.quit()
		}
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.Next):
		return a.navigate(a.ctrl.Advance())
	case key.Matches(msg, a.keys.Back):
		return a.navigate(a.ctrl.Retreat())
	case key.Matches(msg, a.keys.Close):
		return a.ctrl.Dismiss()
	case key.Matches(msg, a.keys.Help):
		return a.openHelp()
	case key.Matches(msg, a.keys.Jump):
		return a.navigate(a.ctrl.GoToStep(msg.String()))
	}
	return a.content.Update(msg)
}

// handleMouse maps left clicks on steps and buttons to wizard operations.
func (a *App) handleMouse(msg tea.MouseClickMsg) tea.Cmd {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft || !a.interactive() {
		return nil
	}

	if i, ok := a.progress.StepAtPosition(mouse.X, mouse.Y); ok {
		return a.navigate(a.ctrl.GoTo(i))
	}

	switch a.buttons.ActionAtPosition(mouse.X, mouse.Y) {
	case ActionAdvance:
		return a.navigate(a.ctrl.Advance())
	case ActionDismiss:
		return a.ctrl.Dismiss()
	case ActionHelp:
		return a.openHelp()
	}
	return nil
}

func (a *App) openHelp() tea.Cmd {
	if a.meta.HelpURL == "" {
		return nil
	}
	return a.ctrl.OpenHelp()
}

// quit dismisses through the host when there is one, so the host still
// hears about it, and exits directly otherwise.
func (a *App) quit() tea.Cmd {
	if a.host != nil {
		return a.ctrl.Dismiss()
	}
	a.quitting = true
	return tea.Quit
}

// navigate shows the loading indicator while the view the controller now
// points at has no content yet.
func (a *App) navigate(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	c, ok := a.ctrl.Content()
	if ok && c.Target == a.ctrl.Current() {
		return cmd
	}
	if a.content.Loading() {
		return cmd
	}
	return tea.Batch(cmd, a.content.ShowLoading())
}

func (a *App) applyTheme() {
	if a.meta.AccentColor != "" {
		if _, ok := theme.NormalizeHexColor(a.meta.AccentColor); !ok {
			logger.Warn("ignoring invalid accent color %q", a.meta.AccentColor)
		}
	}
	a.theme = theme.Resolve(a.meta.Theme, a.meta.AccentColor, a.darkBackground)
	theme.SetCurrent(a.theme)
	a.content.SetTheme(a.theme)
	if a.opts.MarkdownStyle != "" {
		a.content.SetMarkdownStyle(a.opts.MarkdownStyle)
	}
}

func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	a.layout = CalculateLayout(width, height)
	a.content.SetSize(a.layout.Content.Dx(), a.layout.Content.Dy())
}

// View renders the current view. In Bubbletea v2, this returns tea.View
// with display options like AltScreen and MouseMode.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if a.quitting || a.width == 0 || a.height == 0 {
		if a.quitting {
			view.AltScreen = false
			view.MouseMode = tea.MouseModeNone
		}
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())

	// Painting the background before the terminal has reported its own
	// would make the auto theme read back our color.
	if a.bgKnown || a.meta.Theme == theme.Light || a.meta.Theme == theme.Dark {
		view.BackgroundColor = theme.HexToColor(a.theme.BgBase)
	}
	return view
}

// Draw renders all components to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	s := a.theme.S()
	st := a.ctrl.State()
	hasHelp := a.meta.HelpURL != ""

	a.header.Draw(scr, a.layout.Header, s)
	if st.Initialized {
		a.progress.Draw(scr, a.layout.Progress, a.ctrl.Progress(), st.OnFinalPage, s)
	}
	a.content.Draw(scr, a.layout.Content, s)

	if a.interactive() && st.Initialized {
		a.buttons.SetButtons(WizardButtons(st, hasHelp))
	} else {
		a.buttons.SetButtons(nil)
	}
	a.buttons.Draw(scr, a.layout.Buttons, s)

	a.footer.SetState(st, hasHelp)
	a.footer.Draw(scr, a.layout.Footer, s)
}

// Controller exposes the wizard state machine, mainly for tests.
func (a *App) Controller() *wizard.Controller {
	return a.ctrl
}
