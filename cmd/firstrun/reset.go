package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mark3labs/firstrun/internal/journal"
	"github.com/mark3labs/firstrun/internal/logger"
	"github.com/mark3labs/firstrun/internal/marker"
)

var resetFlags struct {
	journal bool
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget that the wizard was completed",
	Long: `Remove the completion marker so the wizard shows again on the next run.

With --journal, also delete every recorded run.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetFlags.journal, "journal", false, "Also purge the run journal")
}

func runReset(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig(rootFlags.pagesDir)
	if err != nil {
		return err
	}
	if err := configureLogging(cfg, rootFlags.verbose); err != nil {
		return err
	}

	if done, err := marker.Exists(cfg.DataDir); err == nil && done {
		if m, err := marker.Read(cfg.DataDir); err != nil {
			logger.Warn("unreadable completion marker: %v", err)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Forgetting onboarding %s\n", describeMarker(m))
		}
	}

	if err := marker.Remove(cfg.DataDir); err != nil {
		return fmt.Errorf("failed to reset: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Completion marker removed: %s\n", marker.Path(cfg.DataDir))

	if !resetFlags.journal {
		return nil
	}
	dir := journal.Dir(cfg.DataDir)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	ctx := cmd.Context()
	j, err := journal.Open(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() { _ = j.Close() }()

	if err := j.Purge(ctx); err != nil {
		return fmt.Errorf("failed to purge journal: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Journal purged.")
	return nil
}
