// Package testfixtures provides a mock wizard host and helpers for driving
// the TUI in tests.
//
// Example usage:
//
//	func TestMyComponent(t *testing.T) {
//	    host := testfixtures.NewMockHost(testfixtures.ThreePages()...)
//	    app := tui.NewApp(context.Background(), host, tui.Options{})
//	    testfixtures.Drive(app, app.Init())
//
//	    require.Equal(t, 1, host.ReadyCalls())
//	}
package testfixtures

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/firstrun/internal/wizard"
)

// MockHost is a controllable wizard.Host that records every call.
// It is safe for concurrent use.
type MockHost struct {
	mu sync.Mutex

	PagesList   []wizard.Page
	PagesErr    error
	Bodies      map[int]string
	ContentErr  map[int]error
	Completion  string
	ThemeName   string
	Accent      string
	BrandInfo   wizard.Brand
	Help        string
	pageFetches []int

	completionFetches int
	ready             int
	complete          int
	dismiss           int
	help              int
}

var _ wizard.Host = (*MockHost)(nil)

// NewMockHost creates a host serving pages. Unless overridden in Bodies,
// page i's body is a heading with its label and the line "This is page i+1.".
func NewMockHost(pages ...wizard.Page) *MockHost {
	return &MockHost{
		PagesList:  pages,
		Bodies:     map[int]string{},
		ContentErr: map[int]error{},
		ThemeName:  "dark",
	}
}

func (m *MockHost) Pages(context.Context) ([]wizard.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PagesList, m.PagesErr
}

func (m *MockHost) PageContent(_ context.Context, index int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pageFetches = append(m.pageFetches, index)
	if err := m.ContentErr[index]; err != nil {
		return "", err
	}
	if body, ok := m.Bodies[index]; ok {
		return body, nil
	}
	if index < 0 || index >= len(m.PagesList) {
		return "", fmt.Errorf("no page %d", index)
	}
	return fmt.Sprintf("# %s\n\nThis is page %d.", wizard.StepLabel(m.PagesList[index], index), index+1), nil
}

func (m *MockHost) CompletionContent(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completionFetches++
	return m.Completion, nil
}

func (m *MockHost) Theme(context.Context) string       { return m.ThemeName }
func (m *MockHost) AccentColor(context.Context) string { return m.Accent }
func (m *MockHost) Brand(context.Context) wizard.Brand { return m.BrandInfo }
func (m *MockHost) HelpURL(context.Context) string     { return m.Help }

func (m *MockHost) NotifyReady(context.Context)    { m.count(&m.ready) }
func (m *MockHost) NotifyComplete(context.Context) { m.count(&m.complete) }
func (m *MockHost) NotifyDismiss(context.Context)  { m.count(&m.dismiss) }
func (m *MockHost) NotifyOpenHelp(context.Context) { m.count(&m.help) }

func (m *MockHost) count(n *int) {
	m.mu.Lock()
	*n++
	m.mu.Unlock()
}

func (m *MockHost) read(n *int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *n
}

// PageFetches returns the page indexes requested so far, in order.
func (m *MockHost) PageFetches() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.pageFetches...)
}

func (m *MockHost) CompletionFetches() int { return m.read(&m.completionFetches) }
func (m *MockHost) ReadyCalls() int        { return m.read(&m.ready) }
func (m *MockHost) CompleteCalls() int     { return m.read(&m.complete) }
func (m *MockHost) DismissCalls() int      { return m.read(&m.dismiss) }
func (m *MockHost) HelpCalls() int         { return m.read(&m.help) }
