package journal

import (
	"sort"
	"time"
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeDismissed Outcome = "dismissed"
	OutcomeOpen      Outcome = "open" // no terminal event recorded
)

// Run is the state of one wizard run reduced from its events.
type Run struct {
	ID         string
	StartedAt  time.Time
	EndedAt    time.Time
	Outcome    Outcome
	PagesSeen  []string // distinct page keys in first-view order
	HelpOpened int
}

// Apply folds a single event into the run.
func (r *Run) Apply(event Event) {
	if r.StartedAt.IsZero() || event.Timestamp.Before(r.StartedAt) {
		r.StartedAt = event.Timestamp
	}

	switch event.Type {
	case EventTypeLifecycle:
		switch event.Action {
		case ActionComplete:
			r.Outcome = OutcomeCompleted
			r.EndedAt = event.Timestamp
		case ActionDismiss:
			// A dismiss after completion does not undo it.
			if r.Outcome != OutcomeCompleted {
				r.Outcome = OutcomeDismissed
				r.EndedAt = event.Timestamp
			}
		}
	case EventTypePage:
		if event.Action == ActionView && event.Page != "" && !contains(r.PagesSeen, event.Page) {
			r.PagesSeen = append(r.PagesSeen, event.Page)
		}
	case EventTypeHelp:
		r.HelpOpened++
	}
}

// Summarize groups events by run, oldest run first.
func Summarize(events []Event) []Run {
	byID := make(map[string]*Run)
	for _, e := range events {
		r, ok := byID[e.Run]
		if !ok {
			r = &Run{ID: e.Run, Outcome: OutcomeOpen}
			byID[e.Run] = r
		}
		r.Apply(e)
	}

	runs := make([]Run, 0, len(byID))
	for _, r := range byID {
		runs = append(runs, *r)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].StartedAt.Before(runs[j].StartedAt)
	})
	return runs
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
