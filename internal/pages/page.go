// Package pages discovers, parses, and renders the markdown pages shown by the
// onboarding wizard.
package pages

import (
	"fmt"
	"regexp"
	"strings"

	"charm.land/glamour/v2"
	"gopkg.in/yaml.v3"
)

// PlatformAll marks a page shown on every operating system.
const PlatformAll = "all"

// Frontmatter is the YAML header of a page.
type Frontmatter struct {
	Title    string `yaml:"title"`
	Order    int    `yaml:"order"`
	Platform string `yaml:"platform"`
}

// Page is one wizard page: its header, markdown body and the file it came from.
type Page struct {
	Frontmatter Frontmatter
	Markdown    string
	SourceFile  string
}

var fmDelim = regexp.MustCompile(`(?m)^---\s*$`)

// ParseFrontmatter splits raw markdown into YAML frontmatter and body.
// Content without delimiters is all body, with platform "all".
func ParseFrontmatter(raw, filename string) (Frontmatter, string, error) {
	locs := fmDelim.FindAllStringIndex(raw, 3)
	if len(locs) < 2 || strings.TrimSpace(raw[:locs[0][0]]) != "" {
		return Frontmatter{Platform: PlatformAll}, raw, nil
	}

	block := raw[locs[0][1]:locs[1][0]]
	body := strings.TrimPrefix(raw[locs[1][1]:], "\n")

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return Frontmatter{}, "", fmt.Errorf("parse frontmatter in %s: %w", filename, err)
	}
	if fm.Platform == "" {
		fm.Platform = PlatformAll
	}
	return fm, body, nil
}

// Markdown styles understood by RenderMarkdown.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleASCII = "ascii"
)

const maxRenderWidth = 120

// RenderMarkdown renders markdown for the terminal, word-wrapped to width.
func RenderMarkdown(markdown string, width int, style string) (string, error) {
	if width > maxRenderWidth {
		width = maxRenderWidth
	}
	if width < 20 {
		width = 20
	}
	if style == "" {
		style = StyleDark
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("glamour: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("glamour: %w", err)
	}
	return strings.TrimSuffix(out, "\n"), nil
}
