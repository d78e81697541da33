package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/mark3labs/firstrun/internal/journal"
	"github.com/mark3labs/firstrun/internal/tui/theme"
)

var historyFlags struct {
	events bool
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded wizard runs",
	Long: `Replay the wizard journal and print one row per run: when it started,
how it ended and which pages were viewed.

Use --events to print the raw event log instead.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVarP(&historyFlags.events, "events", "e", false, "Print every journal event")
}

func runHistory(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig(rootFlags.pagesDir)
	if err != nil {
		return err
	}
	if err := configureLogging(cfg, rootFlags.verbose); err != nil {
		return err
	}

	w := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())
	dir := journal.Dir(cfg.DataDir)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	ctx := cmd.Context()
	j, err := journal.Open(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() { _ = j.Close() }()

	events, err := j.History(ctx)
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}
	if len(events) == 0 {
		_, _ = fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	if historyFlags.events {
		writeEvents(w, events)
		return nil
	}
	writeRuns(w, journal.Summarize(events))
	return nil
}

func writeRuns(w io.Writer, runs []journal.Run) {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			shortRun(r.ID),
			r.StartedAt.Local().Format(time.DateTime),
			string(r.Outcome),
			runDuration(r),
			strings.Join(r.PagesSeen, ", "),
		})
	}
	_, _ = fmt.Fprintln(w, historyTable("Run", "Started", "Outcome", "Took", "Pages").Rows(rows...).String())
}

func writeEvents(w io.Writer, events []journal.Event) {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.Timestamp.Local().Format(time.DateTime),
			shortRun(e.Run),
			e.Type + "." + e.Action,
			e.Page,
			e.Data,
		})
	}
	_, _ = fmt.Fprintln(w, historyTable("Time", "Run", "Event", "Page", "Data").Rows(rows...).String())
}

func historyTable(headers ...string) *table.Table {
	t := theme.NewCatppuccinMocha()
	header := lipgloss.NewStyle().Bold(true).Foreground(theme.HexToColor(t.Primary)).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.HexToColor(t.FgMuted))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

// shortRun abbreviates a run UUID to its first group.
func shortRun(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func runDuration(r journal.Run) string {
	if r.EndedAt.IsZero() || r.StartedAt.IsZero() {
		return "-"
	}
	return r.EndedAt.Sub(r.StartedAt).Round(time.Second).String()
}
