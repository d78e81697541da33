// Package host is the in-process host collaborator that feeds the wizard:
// it serves pages and presentation settings from configuration and acts on
// the wizard's lifecycle signals.
package host

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/pkg/browser"

	"github.com/mark3labs/firstrun/internal/config"
	"github.com/mark3labs/firstrun/internal/hooks"
	"github.com/mark3labs/firstrun/internal/journal"
	"github.com/mark3labs/firstrun/internal/logger"
	"github.com/mark3labs/firstrun/internal/marker"
	"github.com/mark3labs/firstrun/internal/pages"
	"github.com/mark3labs/firstrun/internal/wizard"
)

// Recorder receives lifecycle events. *journal.Journal satisfies it.
type Recorder interface {
	Record(ctx context.Context, eventType, action, page, data string) error
	Run() string
}

// Options configures a Local host.
type Options struct {
	Config *config.Config
	Pages  []pages.Page
	// Final is the completion page markdown; empty selects the built-in view.
	Final string
	// Journal is optional.
	Journal Recorder
	// OpenURL opens the help link. Defaults to the system browser.
	OpenURL func(string) error
	// Hooks are optional commands run on completion and dismissal.
	Hooks *hooks.Config
}

// Local implements wizard.Host from already loaded configuration and pages.
type Local struct {
	cfg     *config.Config
	pages   []pages.Page
	final   string
	journal Recorder
	openURL func(string) error
	hooks   hooks.HooksConfig

	completeOnce sync.Once
}

var _ wizard.Host = (*Local)(nil)

// New creates a Local host. A nil config is replaced by defaults.
func New(opts Options) *Local {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{Theme: config.ThemeAuto, DataDir: config.DefaultDataDir()}
	}
	open := opts.OpenURL
	if open == nil {
		open = openBrowser
	}
	h := &Local{
		cfg:     cfg,
		pages:   opts.Pages,
		final:   opts.Final,
		journal: opts.Journal,
		openURL: open,
	}
	if opts.Hooks != nil {
		h.hooks = opts.Hooks.Hooks
	}
	return h
}

func (h *Local) Pages(context.Context) ([]wizard.Page, error) {
	out := make([]wizard.Page, len(h.pages))
	for i, p := range h.pages {
		out[i] = wizard.Page{Title: p.Frontmatter.Title}
	}
	return out, nil
}

func (h *Local) PageContent(ctx context.Context, index int) (string, error) {
	if index < 0 || index >= len(h.pages) {
		return "", fmt.Errorf("page %d out of range [0,%d)", index, len(h.pages))
	}
	p := h.pages[index]
	logger.Debug("serving page %d (%s)", index, p.SourceFile)
	h.record(ctx, journal.EventTypePage, journal.ActionView, p.Frontmatter.Title, p.SourceFile)
	return p.Markdown, nil
}

func (h *Local) CompletionContent(context.Context) (string, error) {
	return h.final, nil
}

func (h *Local) Theme(context.Context) string {
	return config.NormalizeTheme(h.cfg.Theme)
}

func (h *Local) AccentColor(context.Context) string {
	return h.cfg.AccentColor
}

func (h *Local) Brand(context.Context) wizard.Brand {
	return wizard.Brand{Name: h.cfg.Brand.Name, Logo: h.cfg.Brand.Logo}
}

func (h *Local) HelpURL(context.Context) string {
	return strings.TrimSpace(h.cfg.HelpURL)
}

func (h *Local) NotifyReady(ctx context.Context) {
	logger.Info("wizard ready with %d pages", len(h.pages))
	h.record(ctx, journal.EventTypeLifecycle, journal.ActionReady, "", "")
}

// NotifyComplete writes the completion marker so the wizard is not shown on
// the next start, then runs the on_complete hook. Repeated notifications in
// the same run are logged and otherwise ignored.
func (h *Local) NotifyComplete(ctx context.Context) {
	first := false
	h.completeOnce.Do(func() {
		first = true
		h.complete(ctx)
	})
	if !first {
		logger.Debug("wizard already completed in this run")
	}
}

func (h *Local) complete(ctx context.Context) {
	logger.Info("wizard completed")
	m := marker.Marker{Pages: len(h.pages)}
	if h.journal != nil {
		m.RunID = h.journal.Run()
	}
	if err := marker.Write(h.cfg.DataDir, m); err != nil {
		logger.Error("writing completion marker: %v", err)
	}
	h.record(ctx, journal.EventTypeLifecycle, journal.ActionComplete, "", "")
	h.runHook(ctx, "on_complete", h.hooks.OnComplete)
}

func (h *Local) NotifyDismiss(ctx context.Context) {
	logger.Info("wizard dismissed")
	h.record(ctx, journal.EventTypeLifecycle, journal.ActionDismiss, "", "")
	h.runHook(ctx, "on_dismiss", h.hooks.OnDismiss)
}

// runHook runs hook in the data dir. Hook failures never reach the wizard.
func (h *Local) runHook(ctx context.Context, name string, hook *hooks.HookConfig) {
	if hook == nil {
		return
	}
	if err := os.MkdirAll(h.cfg.DataDir, 0o755); err != nil {
		logger.Error("%s hook: %v", name, err)
		return
	}

	vars := hooks.Variables{Pages: len(h.pages), DataDir: h.cfg.DataDir}
	if h.journal != nil {
		vars.Run = h.journal.Run()
	}
	out, err := hooks.Execute(ctx, hook, h.cfg.DataDir, vars)
	if err != nil {
		logger.Warn("%s hook cancelled: %v", name, err)
		return
	}
	logger.Debug("%s hook output: %s", name, strings.TrimSpace(out))
}

// NotifyOpenHelp opens the configured help URL if its scheme is allowed.
func (h *Local) NotifyOpenHelp(ctx context.Context) {
	raw := h.HelpURL(ctx)
	if raw == "" {
		return
	}
	u, err := CheckHelpURL(raw)
	if err != nil {
		logger.Warn("not opening help link: %v", err)
		return
	}
	if err := h.openURL(u.String()); err != nil {
		logger.Error("opening help link %s: %v", u, err)
		return
	}
	h.record(ctx, journal.EventTypeHelp, journal.ActionOpen, "", u.String())
}

func (h *Local) record(ctx context.Context, eventType, action, page, data string) {
	if h.journal == nil {
		return
	}
	if err := h.journal.Record(ctx, eventType, action, page, data); err != nil {
		logger.Warn("journal %s.%s: %v", eventType, action, err)
	}
}

var allowedSchemes = map[string]bool{
	"http":        true,
	"https":       true,
	"ms-settings": true,
}

// CheckHelpURL parses raw and rejects schemes other than http, https and
// ms-settings.
func CheckHelpURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing help url: %w", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if !allowedSchemes[scheme] {
		return nil, fmt.Errorf("scheme %q is not allowed", u.Scheme)
	}
	if (scheme == "http" || scheme == "https") && u.Host == "" {
		return nil, fmt.Errorf("help url %q has no host", raw)
	}
	return u, nil
}

func openBrowser(u string) error {
	// The terminal belongs to the TUI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(u)
}
