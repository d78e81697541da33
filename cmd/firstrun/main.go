package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mark3labs/firstrun/internal/logger"
	"github.com/mark3labs/firstrun/internal/tui/theme"
)

const (
	logoText1 = "█▀▀ █ █▀█ █▀ ▀█▀ █▀█ █ █ █▄ █"
	logoText2 = "█▀  █ █▀▄ ▄█  █  █▀▄ █▄█ █ ▀█"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "firstrun",
	Short: "First-run onboarding wizard for the terminal",
	Args:  cobra.NoArgs,
	RunE:  runWizard,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

firstrun walks a new user through a short series of onboarding pages in a
full-screen terminal wizard. Pages are markdown files with YAML frontmatter,
read from --pages-dir or from the built-in demo set. Completing the wizard
writes a marker so it is only shown once; each run is recorded in an embedded
NATS JetStream journal.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Pages config > Global config > Defaults

Pages config: <pages-dir>/firstrun.yml
Global config: ~/.config/firstrun/firstrun.yml`

	rootCmd.PersistentFlags().StringVarP(&rootFlags.pagesDir, "pages-dir", "p", "", "Directory of markdown pages (default: built-in demo pages)")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Debug logging to <data_dir>/firstrun.log")
	rootCmd.Flags().BoolVarP(&rootFlags.force, "force", "f", false, "Show the wizard even if it was already completed")
	rootCmd.Flags().StringVar(&rootFlags.theme, "theme", "", "Color theme: light, dark or auto")

	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(setupCmd)
}
