package wizard

import "fmt"

// StepStatus is the visual state of one progress step.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepActive
	StepCompleted
)

func (s StepStatus) String() string {
	switch s {
	case StepActive:
		return "active"
	case StepCompleted:
		return "completed"
	default:
		return "pending"
	}
}

// Step is one page marker in the progress indicator.
type Step struct {
	Index  int
	Label  string
	Status StepStatus
}

// Segment connects step Index to step Index+1.
type Segment struct {
	Index     int
	Completed bool
}

// Progress is the full visual state of the indicator: one step per page and
// one segment between each pair of neighbouring steps.
type Progress struct {
	Steps    []Step
	Segments []Segment
}

// RenderProgress computes the indicator from scratch. It keeps no state, so
// callers recompute it after every navigation event instead of patching.
func RenderProgress(pages []Page, currentIndex int, onFinalPage bool) Progress {
	n := len(pages)
	p := Progress{Steps: make([]Step, n)}
	if n > 1 {
		p.Segments = make([]Segment, n-1)
	}

	for i := range pages {
		status := StepPending
		switch {
		case onFinalPage, i < currentIndex:
			status = StepCompleted
		case i == currentIndex:
			status = StepActive
		}
		p.Steps[i] = Step{Index: i, Label: StepLabel(pages[i], i), Status: status}
	}

	for j := range p.Segments {
		p.Segments[j] = Segment{Index: j, Completed: onFinalPage || j < currentIndex}
	}
	return p
}

// StepLabel is the page title, or "Step N" (1-based) for untitled pages.
func StepLabel(p Page, i int) string {
	if p.Title != "" {
		return p.Title
	}
	return fmt.Sprintf("Step %d", i+1)
}
