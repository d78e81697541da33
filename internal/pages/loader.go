package pages

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"runtime"
	"sort"
	"strings"
	"unicode"

	"github.com/mark3labs/firstrun/internal/logger"
)

// ErrUnsafePath is returned for page references that are absolute or climb
// out of the pages directory.
var ErrUnsafePath = errors.New("page path must be relative and must not contain '..'")

// Load reads the pages for the running platform. names, when non-empty, is the
// explicit ordered page list from config; otherwise every .md file is loaded
// and sorted by frontmatter order, then filename.
func Load(fsys fs.FS, names []string) ([]Page, error) {
	return LoadForPlatform(fsys, names, runtime.GOOS)
}

// LoadForPlatform is Load with an explicit platform.
func LoadForPlatform(fsys fs.FS, names []string, platform string) ([]Page, error) {
	if len(names) > 0 {
		return loadList(fsys, names, platform)
	}
	return loadAll(fsys, platform)
}

// CheckPath validates a page reference taken from config.
func CheckPath(name string) error {
	if name == "" || path.IsAbs(name) || strings.HasPrefix(name, "\\") || strings.Contains(name, "..") || !fs.ValidPath(name) {
		return fmt.Errorf("%q: %w", name, ErrUnsafePath)
	}
	return nil
}

// ReadFinal returns the markdown of the completion page, or "" when name is empty.
func ReadFinal(fsys fs.FS, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	if err := CheckPath(name); err != nil {
		return "", fmt.Errorf("final_page: %w", err)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("read final page: %w", err)
	}
	return string(data), nil
}

func loadList(fsys fs.FS, names []string, platform string) ([]Page, error) {
	out := make([]Page, 0, len(names))
	for _, name := range names {
		if err := CheckPath(name); err != nil {
			return nil, fmt.Errorf("invalid page path: %w", err)
		}
		p, err := readPage(fsys, name, platform)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func loadAll(fsys fs.FS, platform string) ([]Page, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read pages dir: %w", err)
	}

	var out []Page
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		p, err := readPage(fsys, e.Name(), platform)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out = append(out, *p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Frontmatter.Order != out[j].Frontmatter.Order {
			return out[i].Frontmatter.Order < out[j].Frontmatter.Order
		}
		return out[i].SourceFile < out[j].SourceFile
	})
	return out, nil
}

// readPage returns nil (not error) when the page targets another platform.
func readPage(fsys fs.FS, name, platform string) (*Page, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	fm, body, err := ParseFrontmatter(string(raw), name)
	if err != nil {
		return nil, err
	}

	if fm.Platform != PlatformAll && fm.Platform != platform {
		logger.Debug("skipping %s: platform %s", name, fm.Platform)
		return nil, nil
	}

	if fm.Title == "" {
		fm.Title = titleFromFilename(name)
	}

	return &Page{Frontmatter: fm, Markdown: body, SourceFile: name}, nil
}

// titleFromFilename: "02-tools_access.md" -> "Tools Access"
func titleFromFilename(name string) string {
	name = strings.TrimSuffix(path.Base(name), ".md")
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	words := strings.Fields(name)
	if len(words) > 1 && isDigits(words[0]) {
		words = words[1:]
	}
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
