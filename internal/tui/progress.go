package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"

	"github.com/mark3labs/firstrun/internal/tui/theme"
	"github.com/mark3labs/firstrun/internal/wizard"
)

const (
	glyphCompleted = "✓"
	glyphActive    = "●"
	glyphPending   = "○"

	maxStepLabel = 18
)

type stepHit struct {
	index int
	hitRegion
}

// ProgressBar draws the step indicator and remembers where each step landed
// so clicks can be mapped back to a page.
type ProgressBar struct {
	hits []stepHit
}

// Draw renders p into area. The first row holds steps and segments. The
// second row names the current step when labels did not fit on the first.
func (b *ProgressBar) Draw(scr uv.Screen, area uv.Rectangle, p wizard.Progress, final bool, s *theme.Styles) {
	b.hits = nil
	if area.Dy() < 1 || len(p.Steps) == 0 {
		return
	}

	parts, seps := progressParts(p, s, true)
	line := joinProgress(parts, seps)
	withLabels := lipgloss.Width(line) <= area.Dx()
	if !withLabels {
		parts, seps = progressParts(p, s, false)
		line = joinProgress(parts, seps)
	}

	x := DrawCentered(scr, area, line)
	y := area.Min.Y
	for i, part := range parts {
		w := lipgloss.Width(part)
		b.hits = append(b.hits, stepHit{index: i, hitRegion: hitRegion{y: y, startX: x, endX: x + w}})
		x += w
		if i < len(seps) {
			x += lipgloss.Width(seps[i])
		}
	}

	if !withLabels && area.Dy() > 1 {
		row := uv.Rect(area.Min.X, area.Min.Y+1, area.Dx(), 1)
		DrawCentered(scr, row, s.StepLabelFocus.Render(currentStepCaption(p, final)))
	}
}

// StepAtPosition returns the page index of the step drawn at (x, y).
func (b *ProgressBar) StepAtPosition(x, y int) (int, bool) {
	for _, h := range b.hits {
		if h.contains(x, y) {
			return h.index, true
		}
	}
	return 0, false
}

func progressParts(p wizard.Progress, s *theme.Styles, labels bool) (parts, seps []string) {
	for _, step := range p.Steps {
		var glyph string
		style := s.StepLabel
		switch step.Status {
		case wizard.StepCompleted:
			glyph = s.StepCompleted.Render(glyphCompleted)
		case wizard.StepActive:
			glyph = s.StepActive.Render(glyphActive)
			style = s.StepLabelFocus
		default:
			glyph = s.StepPending.Render(glyphPending)
		}
		if labels {
			glyph += " " + style.Render(ansi.Truncate(step.Label, maxStepLabel, "…"))
		}
		parts = append(parts, glyph)
	}

	rule := "─"
	if labels {
		rule = " ── "
	}
	for _, seg := range p.Segments {
		if seg.Completed {
			seps = append(seps, s.SegmentDone.Render(rule))
		} else {
			seps = append(seps, s.SegmentTodo.Render(rule))
		}
	}
	return parts, seps
}

func joinProgress(parts, seps []string) string {
	var sb strings.Builder
	for i, p := range parts {
		sb.WriteString(p)
		if i < len(seps) {
			sb.WriteString(seps[i])
		}
	}
	return sb.String()
}

func currentStepCaption(p wizard.Progress, final bool) string {
	if final {
		return "Done"
	}
	for _, step := range p.Steps {
		if step.Status == wizard.StepActive {
			return fmt.Sprintf("%d. %s", step.Index+1, step.Label)
		}
	}
	return ""
}
