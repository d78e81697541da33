package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mark3labs/firstrun/internal/config"
)

var setupFlags struct {
	force bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the global firstrun configuration file",
	Long: `Write the currently resolved configuration to the global config file
at ~/.config/firstrun/firstrun.yml (or $XDG_CONFIG_HOME/firstrun/firstrun.yml).

Values come from defaults, environment variables and --pages-dir/firstrun.yml.
Page lists and the final page are left out because they are relative to a
pages directory.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
	setupCmd.Flags().StringVar(&rootFlags.theme, "theme", "", "Color theme to store: light, dark or auto")
}

func runSetup(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()
	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	_, cfg, err := loadConfig(rootFlags.pagesDir)
	if err != nil {
		return err
	}
	if rootFlags.theme != "" {
		cfg.Theme = config.NormalizeTheme(rootFlags.theme)
	}
	cfg.Pages = nil
	cfg.FinalPage = ""

	if err := config.WriteGlobal(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to: %s\n\n", targetPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'firstrun' to start the wizard.")
	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
