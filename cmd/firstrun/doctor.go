package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/mark3labs/firstrun/internal/config"
	"github.com/mark3labs/firstrun/internal/hooks"
	"github.com/mark3labs/firstrun/internal/host"
	"github.com/mark3labs/firstrun/internal/marker"
	"github.com/mark3labs/firstrun/internal/pages"
	"github.com/mark3labs/firstrun/internal/tui/theme"
)

// doctorRenderWidth is the wrap width pages are test-rendered at.
const doctorRenderWidth = 80

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check pages and configuration",
	Long: `Load and render every page for this platform, then validate the
configured accent color, help URL and completion page.

Exits non-zero when any check fails.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

type checkResult struct {
	name   string
	ok     bool
	detail string
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fsys, cfg, err := loadConfig(rootFlags.pagesDir)
	if err != nil {
		return err
	}
	if err := configureLogging(cfg, rootFlags.verbose); err != nil {
		return err
	}

	checks := diagnose(fsys, cfg, runtime.GOOS)

	// colorprofile downsamples styles, honouring NO_COLOR and pipes.
	w := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())
	if failed := writeReport(w, checks); failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

// diagnose runs every check against the loaded pages and config.
func diagnose(fsys fs.FS, cfg *config.Config, platform string) []checkResult {
	var checks []checkResult

	list, err := pages.LoadForPlatform(fsys, cfg.Pages, platform)
	switch {
	case err != nil:
		checks = append(checks, checkResult{name: "pages", detail: err.Error()})
	case len(list) == 0:
		checks = append(checks, checkResult{name: "pages", detail: "no pages for " + platform})
	default:
		checks = append(checks, checkResult{name: "pages", ok: true, detail: fmt.Sprintf("%d page(s) for %s", len(list), platform)})
	}
	for _, p := range list {
		name := fmt.Sprintf("page %q", p.Frontmatter.Title)
		if _, err := pages.RenderMarkdown(p.Markdown, doctorRenderWidth, pages.StyleASCII); err != nil {
			checks = append(checks, checkResult{name: name, detail: err.Error()})
			continue
		}
		checks = append(checks, checkResult{name: name, ok: true, detail: p.SourceFile})
	}

	final, err := pages.ReadFinal(fsys, cfg.FinalPage)
	switch {
	case err != nil:
		checks = append(checks, checkResult{name: "final page", detail: err.Error()})
	case final == "":
		checks = append(checks, checkResult{name: "final page", ok: true, detail: "built-in"})
	default:
		checks = append(checks, checkResult{name: "final page", ok: true, detail: cfg.FinalPage})
	}

	if cfg.AccentColor != "" {
		if hex, ok := theme.NormalizeHexColor(cfg.AccentColor); ok {
			checks = append(checks, checkResult{name: "accent color", ok: true, detail: hex})
		} else {
			checks = append(checks, checkResult{name: "accent color", detail: fmt.Sprintf("%q is not #rgb or #rrggbb", cfg.AccentColor)})
		}
	}

	if cfg.HelpURL != "" {
		if _, err := host.CheckHelpURL(cfg.HelpURL); err != nil {
			checks = append(checks, checkResult{name: "help url", detail: err.Error()})
		} else {
			checks = append(checks, checkResult{name: "help url", ok: true, detail: cfg.HelpURL})
		}
	}

	if hookCfg, err := hooks.LoadConfig(fsys); err != nil {
		checks = append(checks, checkResult{name: "hooks", detail: err.Error()})
	} else if hookCfg != nil {
		checks = append(checks, checkResult{name: "hooks", ok: true, detail: hooks.ConfigFileName})
	}

	checks = append(checks, checkResult{name: "theme", ok: true, detail: cfg.Theme})

	checks = append(checks, completionCheck(cfg.DataDir))
	return checks
}

func completionCheck(dataDir string) checkResult {
	done, err := marker.Exists(dataDir)
	if err != nil {
		return checkResult{name: "completion", detail: err.Error()}
	}
	if !done {
		return checkResult{name: "completion", ok: true, detail: "not completed yet"}
	}
	m, err := marker.Read(dataDir)
	if err != nil {
		return checkResult{name: "completion", detail: err.Error()}
	}
	return checkResult{name: "completion", ok: true, detail: describeMarker(m) + ", marker at " + marker.Path(dataDir)}
}

// describeMarker summarises a completion marker for humans.
func describeMarker(m *marker.Marker) string {
	out := "completed " + m.CompletedAt.Local().Format(time.DateTime)
	if m.RunID != "" {
		out += " in run " + shortRun(m.RunID)
	}
	if m.Pages > 0 {
		out += fmt.Sprintf(" (%d pages)", m.Pages)
	}
	return out
}

// writeReport prints one line per check and returns the number of failures.
func writeReport(w io.Writer, checks []checkResult) int {
	t := theme.NewCatppuccinMocha()
	okStyle := lipgloss.NewStyle().Foreground(theme.HexToColor(t.Success)).Bold(true)
	failStyle := lipgloss.NewStyle().Foreground(theme.HexToColor(t.Error)).Bold(true)
	nameStyle := lipgloss.NewStyle().Width(24)
	detailStyle := lipgloss.NewStyle().Foreground(theme.HexToColor(t.FgMuted))

	failed := 0
	for _, c := range checks {
		mark := okStyle.Render("✓")
		if !c.ok {
			mark = failStyle.Render("✗")
			failed++
		}
		_, _ = fmt.Fprintf(w, "%s %s %s\n", mark, nameStyle.Render(c.name), detailStyle.Render(c.detail))
	}
	return failed
}
