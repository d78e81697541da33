package journal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openJournal(t *testing.T, dir string) *Journal {
	t.Helper()
	j, err := Open(context.Background(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestOpenStartsNewRun(t *testing.T) {
	j := openJournal(t, t.TempDir())
	_, err := uuid.Parse(j.Run())
	assert.NoError(t, err)
}

func TestRecordAndHistory(t *testing.T) {
	j := openJournal(t, t.TempDir())
	ctx := context.Background()

	require.NoError(t, j.Record(ctx, EventTypeLifecycle, ActionReady, "", ""))
	require.NoError(t, j.Record(ctx, EventTypePage, ActionView, "Set up your Accounts!", ""))
	require.NoError(t, j.Record(ctx, EventTypeHelp, ActionOpen, "", "https://help.test"))
	require.NoError(t, j.Record(ctx, EventTypeLifecycle, ActionComplete, "", ""))

	events, err := j.History(ctx)
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, ActionReady, events[0].Action)
	assert.Equal(t, "set-up-your-accounts", events[1].Page)
	assert.Equal(t, "https://help.test", events[2].Data)
	assert.Equal(t, ActionComplete, events[3].Action)
	for i, e := range events {
		assert.Equal(t, j.Run(), e.Run)
		assert.NotEmpty(t, e.ID, "event %d should carry its sequence", i)
		assert.False(t, e.Timestamp.IsZero())
	}
}

func TestHistorySpansRuns(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := Open(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, first.Record(ctx, EventTypeLifecycle, ActionDismiss, "", ""))
	require.NoError(t, first.Close())

	second := openJournal(t, dir)
	require.NoError(t, second.Record(ctx, EventTypeLifecycle, ActionComplete, "", ""))
	assert.NotEqual(t, first.Run(), second.Run())

	events, err := second.History(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, first.Run(), events[0].Run)
	assert.Equal(t, second.Run(), events[1].Run)
}

func TestHistoryEmpty(t *testing.T) {
	j := openJournal(t, t.TempDir())
	events, err := j.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPurge(t *testing.T) {
	j := openJournal(t, t.TempDir())
	ctx := context.Background()

	require.NoError(t, j.Record(ctx, EventTypeLifecycle, ActionReady, "", ""))
	require.NoError(t, j.Purge(ctx))

	events, err := j.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPublishRequiresRun(t *testing.T) {
	j := openJournal(t, t.TempDir())
	err := j.Publish(context.Background(), Event{Type: EventTypeLifecycle})
	assert.Error(t, err)
}

func TestCloseNil(t *testing.T) {
	var j *Journal
	assert.NoError(t, j.Close())
}

func TestPageKey(t *testing.T) {
	assert.Equal(t, "", PageKey(""))
	assert.Equal(t, "welcome", PageKey("Welcome"))
	assert.Equal(t, "tools-and-access", PageKey("Tools & Access"))
}

func TestSummarize(t *testing.T) {
	t0 := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	events := []Event{
		{Run: "b", Timestamp: t0.Add(time.Hour), Type: EventTypeLifecycle, Action: ActionReady},
		{Run: "a", Timestamp: t0, Type: EventTypeLifecycle, Action: ActionReady},
		{Run: "a", Timestamp: t0.Add(time.Minute), Type: EventTypePage, Action: ActionView, Page: "welcome"},
		{Run: "a", Timestamp: t0.Add(2 * time.Minute), Type: EventTypePage, Action: ActionView, Page: "tools"},
		{Run: "a", Timestamp: t0.Add(3 * time.Minute), Type: EventTypePage, Action: ActionView, Page: "welcome"},
		{Run: "a", Timestamp: t0.Add(4 * time.Minute), Type: EventTypeHelp, Action: ActionOpen},
		{Run: "a", Timestamp: t0.Add(5 * time.Minute), Type: EventTypeLifecycle, Action: ActionComplete},
		{Run: "a", Timestamp: t0.Add(6 * time.Minute), Type: EventTypeLifecycle, Action: ActionDismiss},
		{Run: "b", Timestamp: t0.Add(2 * time.Hour), Type: EventTypeLifecycle, Action: ActionDismiss},
		{Run: "c", Timestamp: t0.Add(3 * time.Hour), Type: EventTypeLifecycle, Action: ActionReady},
	}

	runs := Summarize(events)
	require.Len(t, runs, 3)

	a := runs[0]
	assert.Equal(t, "a", a.ID)
	assert.Equal(t, OutcomeCompleted, a.Outcome)
	assert.Equal(t, t0, a.StartedAt)
	assert.Equal(t, t0.Add(5*time.Minute), a.EndedAt)
	assert.Equal(t, []string{"welcome", "tools"}, a.PagesSeen)
	assert.Equal(t, 1, a.HelpOpened)

	assert.Equal(t, "b", runs[1].ID)
	assert.Equal(t, OutcomeDismissed, runs[1].Outcome)

	assert.Equal(t, "c", runs[2].ID)
	assert.Equal(t, OutcomeOpen, runs[2].Outcome)
	assert.True(t, runs[2].EndedAt.IsZero())
}
