package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statuses(p Progress) []StepStatus {
	out := make([]StepStatus, len(p.Steps))
	for i, s := range p.Steps {
		out[i] = s.Status
	}
	return out
}

func completedSegments(p Progress) []bool {
	out := make([]bool, len(p.Segments))
	for i, s := range p.Segments {
		out[i] = s.Completed
	}
	return out
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		index    int
		final    bool
		steps    []StepStatus
		segments []bool
	}{
		{
			name:     "middle of four",
			n:        4,
			index:    2,
			steps:    []StepStatus{StepCompleted, StepCompleted, StepActive, StepPending},
			segments: []bool{true, true, false},
		},
		{
			name:     "first page",
			n:        3,
			index:    0,
			steps:    []StepStatus{StepActive, StepPending, StepPending},
			segments: []bool{false, false},
		},
		{
			name:     "last page",
			n:        3,
			index:    2,
			steps:    []StepStatus{StepCompleted, StepCompleted, StepActive},
			segments: []bool{true, true},
		},
		{
			name:     "final screen",
			n:        4,
			index:    3,
			final:    true,
			steps:    []StepStatus{StepCompleted, StepCompleted, StepCompleted, StepCompleted},
			segments: []bool{true, true, true},
		},
		{
			name:     "single page",
			n:        1,
			index:    0,
			steps:    []StepStatus{StepActive},
			segments: []bool{},
		},
		{
			name:     "no pages",
			n:        0,
			steps:    []StepStatus{},
			segments: []bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := RenderProgress(titled(tt.n), tt.index, tt.final)

			require.Len(t, p.Steps, tt.n)
			assert.Equal(t, tt.steps, statuses(p))
			assert.Equal(t, tt.segments, completedSegments(p))

			for i, s := range p.Steps {
				assert.Equal(t, i, s.Index)
			}
			for j, s := range p.Segments {
				assert.Equal(t, j, s.Index)
			}
		})
	}
}

func TestRenderProgressExactlyOneActive(t *testing.T) {
	pages := titled(5)
	for i := range pages {
		active := 0
		for _, s := range RenderProgress(pages, i, false).Steps {
			if s.Status == StepActive {
				active++
			}
		}
		assert.Equal(t, 1, active, "index %d", i)
	}
}

func TestRenderProgressIsPure(t *testing.T) {
	pages := titled(3)
	a := RenderProgress(pages, 1, false)
	RenderProgress(pages, 2, true)
	b := RenderProgress(pages, 1, false)
	assert.Equal(t, a, b)
}

func TestControllerProgressTracksNavigation(t *testing.T) {
	c, _ := newStarted(t, 3)
	settle(c, c.GoTo(2))
	settle(c, c.GoTo(0))

	assert.Equal(t, []StepStatus{StepActive, StepPending, StepPending}, statuses(c.Progress()))
	assert.Equal(t, []bool{false, false}, completedSegments(c.Progress()))
}

func TestStepLabel(t *testing.T) {
	assert.Equal(t, "Welcome", StepLabel(Page{Title: "Welcome"}, 0))
	assert.Equal(t, "Step 1", StepLabel(Page{}, 0))
	assert.Equal(t, "Step 4", StepLabel(Page{}, 3))

	p := RenderProgress([]Page{{Title: "Intro"}, {}}, 0, false)
	assert.Equal(t, "Intro", p.Steps[0].Label)
	assert.Equal(t, "Step 2", p.Steps[1].Label)
}

func TestStepStatusString(t *testing.T) {
	assert.Equal(t, "pending", StepPending.String())
	assert.Equal(t, "active", StepActive.String())
	assert.Equal(t, "completed", StepCompleted.String())
}
