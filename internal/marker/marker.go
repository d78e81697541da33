// Package marker manages the run-once sentinel that keeps the wizard from
// showing again after it has been completed.
package marker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/firstrun/internal/logger"
)

const fileName = ".completed"

// Marker records when the wizard was completed.
type Marker struct {
	CompletedAt time.Time `json:"completed_at"`
	RunID       string    `json:"run_id,omitempty"`
	Pages       int       `json:"pages"`
}

// Path returns the marker location inside dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, fileName)
}

// Exists reports whether the wizard has been completed before.
func Exists(dataDir string) (bool, error) {
	_, err := os.Stat(Path(dataDir))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat marker: %w", err)
	}
	return true, nil
}

// Read loads the marker. Markers written by older versions hold only a
// timestamp line and are accepted.
func Read(dataDir string) (*Marker, error) {
	data, err := os.ReadFile(Path(dataDir))
	if err != nil {
		return nil, fmt.Errorf("read marker: %w", err)
	}

	var m Marker
	if err := json.Unmarshal(data, &m); err == nil {
		return &m, nil
	}

	ts, err := time.Parse(time.RFC3339, string(trimNewline(data)))
	if err != nil {
		return nil, fmt.Errorf("parse marker: %w", err)
	}
	return &Marker{CompletedAt: ts}, nil
}

// Write stores m, creating dataDir if needed. A zero CompletedAt is set to now.
func Write(dataDir string, m Marker) error {
	if m.CompletedAt.IsZero() {
		m.CompletedAt = time.Now().UTC()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling marker: %w", err)
	}

	path := Path(dataDir)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing marker: %w", err)
	}

	logger.Debug("completion marker written to %s", path)
	return nil
}

// Remove deletes the marker. A missing marker is not an error.
func Remove(dataDir string) error {
	err := os.Remove(Path(dataDir))
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("remove marker: %w", err)
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
