package testfixtures

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Ascii profile keeps rendered output free of color codes.
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 100
	TestTermHeight = 30
)

const maxDriveSteps = 1000

// Drive runs cmd synchronously and feeds every resulting message back into
// model until no commands remain, then returns all messages seen. Batches
// are expanded. Spinner ticks are not fed back so animation cannot loop
// forever, and the run stops at tea.QuitMsg.
func Drive(model tea.Model, cmd tea.Cmd) []tea.Msg {
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}

	for steps := 0; len(queue) > 0 && steps < maxDriveSteps; steps++ {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg := next()
		switch msg := msg.(type) {
		case nil:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		case spinner.TickMsg:
			seen = append(seen, msg)
			continue
		case tea.QuitMsg:
			seen = append(seen, msg)
			return seen
		}

		seen = append(seen, msg)
		var out tea.Cmd
		model, out = model.Update(msg)
		queue = append(queue, out)
	}
	return seen
}

// Send delivers msg to model and drives the resulting commands.
func Send(model tea.Model, msg tea.Msg) []tea.Msg {
	_, cmd := model.Update(msg)
	return Drive(model, cmd)
}

// Drawer is anything that paints itself onto a screen buffer.
type Drawer interface {
	Draw(scr uv.Screen, area uv.Rectangle)
}

// Render draws d on a canonical-size canvas and returns it as plain text.
func Render(d Drawer) string {
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	d.Draw(canvas, canvas.Bounds())
	return ansi.Strip(canvas.Render())
}

// Quit reports whether msgs contains tea.QuitMsg.
func Quit(msgs []tea.Msg) bool {
	for _, m := range msgs {
		if _, ok := m.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}
