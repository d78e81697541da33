package wizard

import (
	"context"

	tea "charm.land/bubbletea/v2"
)

// Page describes one content page. Its identity is its position in the list
// returned by Host.Pages.
type Page struct {
	Title string
}

// Brand is the optional organisation branding shown in the header.
type Brand struct {
	Name string
	Logo string
}

// Host is the process that supplies page content and receives lifecycle
// signals. All fetches may block; the Controller only ever calls them from
// inside a tea.Cmd so the event loop never waits on them.
type Host interface {
	Pages(ctx context.Context) ([]Page, error)
	PageContent(ctx context.Context, index int) (string, error)
	// CompletionContent returns "" when the built-in completion view should be used.
	CompletionContent(ctx context.Context) (string, error)

	Theme(ctx context.Context) string
	AccentColor(ctx context.Context) string
	Brand(ctx context.Context) Brand
	HelpURL(ctx context.Context) string

	NotifyReady(ctx context.Context)
	NotifyComplete(ctx context.Context)
	NotifyDismiss(ctx context.Context)
	NotifyOpenHelp(ctx context.Context)
}

// Metadata is the one-shot presentation data fetched at startup.
type Metadata struct {
	Theme       string
	AccentColor string
	Brand       Brand
	HelpURL     string
}

// FetchPages asks the host for the page list.
func FetchPages(ctx context.Context, host Host) tea.Cmd {
	if host == nil {
		return nil
	}
	return func() tea.Msg {
		pages, err := host.Pages(ctx)
		return PagesMsg{Pages: pages, Err: err}
	}
}

// FetchMetadata asks the host for theme, accent colour, brand and help URL.
func FetchMetadata(ctx context.Context, host Host) tea.Cmd {
	if host == nil {
		return nil
	}
	return func() tea.Msg {
		return MetadataMsg{Metadata: Metadata{
			Theme:       host.Theme(ctx),
			AccentColor: host.AccentColor(ctx),
			Brand:       host.Brand(ctx),
			HelpURL:     host.HelpURL(ctx),
		}}
	}
}
