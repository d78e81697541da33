// Package config provides centralized configuration management using Viper.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mark3labs/firstrun/internal/logger"
)

// FileName is the config file looked up in the global config directory and at
// the root of a pages directory.
const FileName = "firstrun.yml"

// Theme names accepted in config.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Brand identifies the organisation shown in the wizard header.
type Brand struct {
	Name string `mapstructure:"name" yaml:"name"`
	Logo string `mapstructure:"logo" yaml:"logo"`
}

// Config holds all configuration values for firstrun.
type Config struct {
	Title       string   `mapstructure:"title" yaml:"title"`
	Theme       string   `mapstructure:"theme" yaml:"theme"`
	AccentColor string   `mapstructure:"accent_color" yaml:"accent_color"`
	HelpURL     string   `mapstructure:"help_url" yaml:"help_url"`
	Brand       Brand    `mapstructure:"brand" yaml:"brand"`
	FinalPage   string   `mapstructure:"final_page" yaml:"final_page"`
	Pages       []string `mapstructure:"pages" yaml:"pages,omitempty"`
	DataDir     string   `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel    string   `mapstructure:"log_level" yaml:"log_level"`
	LogFile     string   `mapstructure:"log_file" yaml:"log_file"`
	Journal     bool     `mapstructure:"journal" yaml:"journal"`
}

// Load loads configuration with full precedence:
// ENV vars > pages config > XDG global config > defaults.
// CLI flags are applied by the caller on the returned value.
// pages may be nil when there is no pages directory to read from.
func Load(pages fs.FS) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("title", "Day 1")
	v.SetDefault("theme", ThemeAuto)
	v.SetDefault("accent_color", "")
	v.SetDefault("help_url", "")
	v.SetDefault("brand.name", "")
	v.SetDefault("brand.logo", "")
	v.SetDefault("final_page", "")
	v.SetDefault("pages", []string{})
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("journal", true)

	v.SetEnvPrefix("FIRSTRUN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{"title", "theme", "accent_color", "help_url", "brand.name", "brand.logo", "data_dir", "log_level", "log_file", "journal"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	if pages != nil {
		data, err := fs.ReadFile(pages, FileName)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Debug("no %s in pages directory", FileName)
		case err != nil:
			return nil, fmt.Errorf("reading pages config: %w", err)
		default:
			if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
				return nil, fmt.Errorf("merging pages config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Theme = NormalizeTheme(cfg.Theme)

	return &cfg, nil
}

// NormalizeTheme maps any unknown theme name to auto.
func NormalizeTheme(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	case ThemeAuto, "":
		return ThemeAuto
	default:
		logger.Warn("unknown theme %q, using auto", name)
		return ThemeAuto
	}
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/firstrun/firstrun.yml or $XDG_CONFIG_HOME/firstrun/firstrun.yml.
func GlobalPath() string {
	return filepath.Join(DefaultDataDir(), FileName)
}

// DefaultDataDir is where the completion marker, journal and logs live by default.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "firstrun")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "firstrun")
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
