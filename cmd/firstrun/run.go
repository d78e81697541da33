package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/mark3labs/firstrun/internal/config"
	"github.com/mark3labs/firstrun/internal/hooks"
	"github.com/mark3labs/firstrun/internal/host"
	"github.com/mark3labs/firstrun/internal/journal"
	"github.com/mark3labs/firstrun/internal/logger"
	"github.com/mark3labs/firstrun/internal/marker"
	"github.com/mark3labs/firstrun/internal/pages"
	"github.com/mark3labs/firstrun/internal/tui"
)

const logFileName = "firstrun.log"

var rootFlags struct {
	pagesDir string
	force    bool
	verbose  bool
	theme    string
}

func runWizard(cmd *cobra.Command, args []string) error {
	fsys, cfg, err := loadConfig(rootFlags.pagesDir)
	if err != nil {
		return err
	}
	if rootFlags.theme != "" {
		cfg.Theme = config.NormalizeTheme(rootFlags.theme)
	}
	if err := configureLogging(cfg, rootFlags.verbose); err != nil {
		return err
	}

	if !rootFlags.force {
		done, err := marker.Exists(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to check completion marker: %w", err)
		}
		if done {
			logger.Info("wizard already completed, marker at %s", marker.Path(cfg.DataDir))
			fmt.Fprintln(cmd.OutOrStdout(), "Onboarding was already completed.\n\nUse --force to show it again, or 'firstrun reset' to start over.")
			return nil
		}
	}

	list, err := pages.Load(fsys, cfg.Pages)
	if err != nil {
		return fmt.Errorf("failed to load pages: %w", err)
	}
	if len(list) == 0 {
		return fmt.Errorf("no pages to show in %s", describeSource(rootFlags.pagesDir))
	}
	final, err := pages.ReadFinal(fsys, cfg.FinalPage)
	if err != nil {
		return err
	}

	hookCfg, err := hooks.LoadConfig(fsys)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	opts := host.Options{Config: cfg, Pages: list, Final: final, Hooks: hookCfg}
	if cfg.Journal {
		j, err := journal.Open(ctx, journal.Dir(cfg.DataDir))
		if err != nil {
			// The wizard still runs without a journal.
			logger.Warn("journal unavailable: %v", err)
		} else {
			defer func() {
				if err := j.Close(); err != nil {
					logger.Warn("closing journal: %v", err)
				}
			}()
			opts.Journal = j
		}
	}

	app := tui.NewApp(ctx, host.New(opts), tui.Options{Title: cfg.Title})
	if _, err := tea.NewProgram(app, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}

// loadConfig resolves the pages filesystem and loads config layered over it.
func loadConfig(pagesDir string) (fs.FS, *config.Config, error) {
	fsys := pages.Demo()
	if pagesDir != "" {
		info, err := os.Stat(pagesDir)
		if err != nil {
			return nil, nil, fmt.Errorf("pages directory: %w", err)
		}
		if !info.IsDir() {
			return nil, nil, fmt.Errorf("pages directory: %s is not a directory", pagesDir)
		}
		fsys = os.DirFS(pagesDir)
	}

	cfg, err := config.Load(fsys)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return fsys, cfg, nil
}

// configureLogging applies the configured level and file. Verbose forces
// debug and, without a configured file, logs under the data dir.
func configureLogging(cfg *config.Config, verbose bool) error {
	level, file := cfg.LogLevel, cfg.LogFile
	if verbose {
		level = "debug"
		if file == "" {
			file = filepath.Join(cfg.DataDir, logFileName)
		}
	}
	if err := logger.Configure(level, file); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	return nil
}

func describeSource(pagesDir string) string {
	if pagesDir == "" {
		return "the built-in pages"
	}
	return pagesDir
}
