// Package wizard implements the navigation state machine of the onboarding
// wizard and the progress indicator derived from it.
//
// The Controller is driven from a single Bubble Tea event loop. Every host
// call is wrapped in a tea.Cmd; content fetches are tagged with the intent
// that issued them so a slow, superseded fetch can never overwrite the page
// the user navigated to afterwards.
package wizard

import (
	"context"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
)

// View identifies what the wizard is showing: content page Index, or the
// completion screen when Final is set (Index is then meaningless and zero).
type View struct {
	Final bool
	Index int
}

// State is a read-only snapshot of the navigation state.
type State struct {
	Total       int
	Index       int
	OnFinalPage bool
	Initialized bool
}

// Content is the most recently applied fetch result.
type Content struct {
	Target   View
	Markdown string
	Err      error
}

// UsesDefault reports whether the built-in completion view should be shown.
func (c Content) UsesDefault() bool {
	return c.Target.Final && c.Err == nil && strings.TrimSpace(c.Markdown) == ""
}

// Controller owns the wizard state. It is not safe for concurrent use; call
// it only from the program's Update loop.
type Controller struct {
	ctx  context.Context
	host Host

	pages       []Page
	initialized bool
	index       int
	onFinalPage bool

	intent     uint64
	content    Content
	hasContent bool
}

// New creates a controller bound to host. A nil host yields an inert
// controller on which every operation is a no-op.
func New(ctx context.Context, host Host) *Controller {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Controller{ctx: ctx, host: host}
}

// Initialize installs the page list and requests page 0. The host is told the
// wizard is ready as soon as that request is issued, without waiting for it
// to resolve. Only the first call has any effect.
//
// The fetch and the ready notification run as concurrent commands, so the
// host may see NotifyReady before or after PageContent(0) is called.
//
// With no pages the wizard has nothing to navigate: Advance, Retreat and GoTo
// stay no-ops and the completion screen is unreachable. Only Dismiss works.
func (c *Controller) Initialize(pages []Page) tea.Cmd {
	if c.host == nil || c.initialized {
		return nil
	}
	c.pages = append([]Page(nil), pages...)
	c.initialized = true
	c.index = 0
	c.onFinalPage = false

	var fetch tea.Cmd
	if len(c.pages) > 0 {
		fetch = c.request(View{Index: 0})
	}
	return tea.Batch(fetch, c.notify(Host.NotifyReady, ReadyMsg{}))
}

// GoTo jumps to content page index. Out-of-range indexes are ignored. It also
// leaves the completion screen when called from there.
func (c *Controller) GoTo(index int) tea.Cmd {
	if !c.navigable() || index < 0 || index >= len(c.pages) {
		return nil
	}
	c.onFinalPage = false
	c.index = index
	return c.request(View{Index: index})
}

// GoToStep is GoTo for a typed 1-based step number, such as a digit key.
// Anything that is not a base-10 integer naming a page is ignored.
func (c *Controller) GoToStep(raw string) tea.Cmd {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return c.GoTo(n - 1)
}

// Advance is the forward action. On a content page it moves to the next page,
// or from the last page to the completion screen. On the completion screen it
// tells the host the wizard is complete and changes nothing locally.
func (c *Controller) Advance() tea.Cmd {
	if !c.navigable() {
		return nil
	}
	if c.onFinalPage {
		return c.notify(Host.NotifyComplete, CompletedMsg{})
	}
	if c.index < len(c.pages)-1 {
		return c.GoTo(c.index + 1)
	}
	c.onFinalPage = true
	return c.request(View{Final: true})
}

// Retreat moves back one page. It does nothing on the first page or on the
// completion screen.
func (c *Controller) Retreat() tea.Cmd {
	if !c.navigable() || c.onFinalPage || c.index == 0 {
		return nil
	}
	return c.GoTo(c.index - 1)
}

// Dismiss tells the host the user closed the wizard. State is left as is;
// the host is expected to tear the view down.
func (c *Controller) Dismiss() tea.Cmd {
	if c.host == nil {
		return nil
	}
	return c.notify(Host.NotifyDismiss, DismissedMsg{})
}

// OpenHelp asks the host to open its help link.
func (c *Controller) OpenHelp() tea.Cmd {
	if c.host == nil {
		return nil
	}
	return c.notify(Host.NotifyOpenHelp, HelpOpenedMsg{})
}

// Apply installs a resolved fetch if it still answers the latest navigation
// intent and returns whether it did. Stale results are dropped.
func (c *Controller) Apply(msg ContentMsg) bool {
	if !c.initialized || msg.Intent != c.intent || msg.Target != c.Current() {
		return false
	}
	c.content = Content{Target: msg.Target, Markdown: msg.Markdown, Err: msg.Err}
	c.hasContent = true
	return true
}

// Content returns the applied content and whether any has arrived yet.
func (c *Controller) Content() (Content, bool) {
	return c.content, c.hasContent
}

// Current returns the authoritative view.
func (c *Controller) Current() View {
	if c.onFinalPage {
		return View{Final: true}
	}
	return View{Index: c.index}
}

// State returns a snapshot of the navigation state.
func (c *Controller) State() State {
	return State{
		Total:       len(c.pages),
		Index:       c.index,
		OnFinalPage: c.onFinalPage,
		Initialized: c.initialized,
	}
}

// Progress derives the progress indicator from the current state.
func (c *Controller) Progress() Progress {
	return RenderProgress(c.pages, c.index, c.onFinalPage)
}

func (c *Controller) navigable() bool {
	return c.host != nil && c.initialized && len(c.pages) > 0
}

// request issues a content fetch for target under a fresh intent tag.
func (c *Controller) request(target View) tea.Cmd {
	c.intent++
	intent := c.intent
	ctx, host := c.ctx, c.host

	return func() tea.Msg {
		msg := ContentMsg{Intent: intent, Target: target}
		if target.Final {
			msg.Markdown, msg.Err = host.CompletionContent(ctx)
		} else {
			msg.Markdown, msg.Err = host.PageContent(ctx, target.Index)
		}
		return msg
	}
}

func (c *Controller) notify(fn func(Host, context.Context), done tea.Msg) tea.Cmd {
	ctx, host := c.ctx, c.host
	return func() tea.Msg {
		fn(host, ctx)
		return done
	}
}
