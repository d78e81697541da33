package wizard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	pages      []Page
	completion string
	pageErr    error

	pageFetches       []int
	completionFetches int
	ready             int
	complete          int
	dismiss           int
	help              int
}

func (h *fakeHost) Pages(context.Context) ([]Page, error) { return h.pages, nil }

func (h *fakeHost) PageContent(_ context.Context, index int) (string, error) {
	h.pageFetches = append(h.pageFetches, index)
	if h.pageErr != nil {
		return "", h.pageErr
	}
	return fmt.Sprintf("# page %d", index), nil
}

func (h *fakeHost) CompletionContent(context.Context) (string, error) {
	h.completionFetches++
	return h.completion, nil
}

func (h *fakeHost) Theme(context.Context) string       { return "dark" }
func (h *fakeHost) AccentColor(context.Context) string { return "#abc" }
func (h *fakeHost) Brand(context.Context) Brand        { return Brand{Name: "Acme"} }
func (h *fakeHost) HelpURL(context.Context) string     { return "https://help.test" }
func (h *fakeHost) NotifyReady(context.Context)        { h.ready++ }
func (h *fakeHost) NotifyComplete(context.Context)     { h.complete++ }
func (h *fakeHost) NotifyDismiss(context.Context)      { h.dismiss++ }
func (h *fakeHost) NotifyOpenHelp(context.Context)     { h.help++ }

func titled(n int) []Page {
	pages := make([]Page, n)
	for i := range pages {
		pages[i] = Page{Title: fmt.Sprintf("Page %c", 'A'+i)}
	}
	return pages
}

// run executes cmd, expanding batches, and returns every message produced.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// settle runs cmd and applies any content it produced.
func settle(c *Controller, cmd tea.Cmd) []tea.Msg {
	msgs := run(cmd)
	for _, m := range msgs {
		if cm, ok := m.(ContentMsg); ok {
			c.Apply(cm)
		}
	}
	return msgs
}

func newStarted(t *testing.T, n int) (*Controller, *fakeHost) {
	t.Helper()
	host := &fakeHost{pages: titled(n)}
	c := New(context.Background(), host)
	settle(c, c.Initialize(host.pages))
	return c, host
}

func TestInitialize(t *testing.T) {
	host := &fakeHost{pages: titled(3)}
	c := New(context.Background(), host)

	msgs := settle(c, c.Initialize(host.pages))

	assert.Equal(t, View{Index: 0}, c.Current())
	assert.Equal(t, []int{0}, host.pageFetches)
	assert.Equal(t, 1, host.ready)
	assert.Contains(t, msgs, tea.Msg(ReadyMsg{}))

	content, ok := c.Content()
	require.True(t, ok)
	assert.Equal(t, "# page 0", content.Markdown)
	assert.Equal(t, State{Total: 3, Index: 0, Initialized: true}, c.State())
}

func TestInitializeSignalsReadyBeforeFetchResolves(t *testing.T) {
	host := &fakeHost{pages: titled(2)}
	c := New(context.Background(), host)

	cmd := c.Initialize(host.pages)
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "initialize should issue the fetch and the ready signal together")

	require.Len(t, batch, 2)

	// The ready signal must not depend on the fetch having run.
	assert.Equal(t, ReadyMsg{}, batch[1]())
	assert.Equal(t, 1, host.ready)
	assert.Empty(t, host.pageFetches)
	_, applied := c.Content()
	assert.False(t, applied)

	// The fetch is just as independent: either may reach the host first.
	msg, ok := batch[0]().(ContentMsg)
	require.True(t, ok)
	assert.Equal(t, []int{0}, host.pageFetches)
	assert.Equal(t, 1, host.ready)
	assert.True(t, c.Apply(msg))
}

func TestInitializeOnlyOnce(t *testing.T) {
	c, host := newStarted(t, 2)
	settle(c, c.GoTo(1))

	assert.Nil(t, c.Initialize(titled(5)))
	assert.Equal(t, 2, c.State().Total)
	assert.Equal(t, View{Index: 1}, c.Current())
	assert.Equal(t, 1, host.ready)
}

func TestAdvanceReachesFinalExactlyOnce(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			c, host := newStarted(t, n)

			for i := 1; i <= n; i++ {
				settle(c, c.Advance())
				if i < n {
					require.Equal(t, View{Index: i}, c.Current())
				}
			}
			require.Equal(t, View{Final: true}, c.Current())
			assert.Equal(t, 1, host.completionFetches)
			assert.Equal(t, 0, host.complete, "reaching final must not signal completion")
		})
	}
}

func TestAdvanceOnFinalSignalsCompletionPerCall(t *testing.T) {
	c, host := newStarted(t, 2)
	settle(c, c.Advance())
	settle(c, c.Advance())
	require.True(t, c.State().OnFinalPage)

	before := c.State()
	for i := 1; i <= 3; i++ {
		msgs := settle(c, c.Advance())
		assert.Equal(t, []tea.Msg{CompletedMsg{}}, msgs)
		assert.Equal(t, i, host.complete)
		assert.Equal(t, before, c.State())
	}
	assert.Equal(t, 1, host.completionFetches)
}

func TestGoTo(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
		index int
		want  View
	}{
		{name: "forward jump", index: 3, want: View{Index: 3}},
		{name: "same page", index: 0, want: View{Index: 0}},
		{
			name:  "backward jump",
			setup: func(c *Controller) { settle(c, c.GoTo(3)) },
			index: 1,
			want:  View{Index: 1},
		},
		{
			name: "leaves final",
			setup: func(c *Controller) {
				settle(c, c.GoTo(3))
				settle(c, c.Advance())
			},
			index: 2,
			want:  View{Index: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newStarted(t, 4)
			if tt.setup != nil {
				tt.setup(c)
			}
			settle(c, c.GoTo(tt.index))
			assert.Equal(t, tt.want, c.Current())
			assert.False(t, c.State().OnFinalPage)

			content, _ := c.Content()
			assert.Equal(t, fmt.Sprintf("# page %d", tt.index), content.Markdown)
		})
	}
}

func TestGoToIgnoresInvalidInput(t *testing.T) {
	c, host := newStarted(t, 3)
	settle(c, c.GoTo(1))
	before := c.State()
	fetches := len(host.pageFetches)

	for _, index := range []int{-1, 3, 100} {
		assert.Nil(t, c.GoTo(index), "GoTo(%d)", index)
	}
	for _, raw := range []string{"", "abc", "1.5", "-1", "0", "9", "0x1"} {
		assert.Nil(t, c.GoToStep(raw), "GoToStep(%q)", raw)
	}

	assert.Equal(t, before, c.State())
	assert.Len(t, host.pageFetches, fetches)
}

func TestGoToStep(t *testing.T) {
	c, _ := newStarted(t, 3)
	settle(c, c.GoToStep(" 3 "))
	assert.Equal(t, View{Index: 2}, c.Current())

	settle(c, c.GoToStep("1"))
	assert.Equal(t, View{Index: 0}, c.Current())
}

func TestGoToInvalidFromFinalStaysFinal(t *testing.T) {
	c, _ := newStarted(t, 1)
	settle(c, c.Advance())
	require.True(t, c.State().OnFinalPage)

	assert.Nil(t, c.GoTo(1))
	assert.Nil(t, c.GoTo(-1))
	assert.True(t, c.State().OnFinalPage)
}

func TestRetreat(t *testing.T) {
	c, host := newStarted(t, 3)

	assert.Nil(t, c.Retreat(), "retreat on first page")
	assert.Equal(t, View{Index: 0}, c.Current())

	settle(c, c.GoTo(2))
	settle(c, c.Retreat())
	assert.Equal(t, View{Index: 1}, c.Current())

	settle(c, c.GoTo(2))
	settle(c, c.Advance())
	require.True(t, c.State().OnFinalPage)

	fetches := len(host.pageFetches)
	assert.Nil(t, c.Retreat(), "retreat on final")
	assert.True(t, c.State().OnFinalPage)
	assert.Len(t, host.pageFetches, fetches)
}

func TestDismiss(t *testing.T) {
	c, host := newStarted(t, 2)
	settle(c, c.GoTo(1))
	before := c.State()

	msgs := settle(c, c.Dismiss())

	assert.Equal(t, []tea.Msg{DismissedMsg{}}, msgs)
	assert.Equal(t, 1, host.dismiss)
	assert.Equal(t, before, c.State())

	// Dismiss also works before initialization and on final.
	fresh := New(context.Background(), host)
	settle(fresh, fresh.Dismiss())
	assert.Equal(t, 2, host.dismiss)
}

func TestOpenHelp(t *testing.T) {
	c, host := newStarted(t, 1)
	msgs := settle(c, c.OpenHelp())
	assert.Equal(t, []tea.Msg{HelpOpenedMsg{}}, msgs)
	assert.Equal(t, 1, host.help)
}

func TestStaleFetchIsDropped(t *testing.T) {
	c, host := newStarted(t, 3)

	slow := c.GoTo(0)
	fast := c.GoTo(1)

	fastMsg := fast().(ContentMsg)
	require.True(t, c.Apply(fastMsg))

	slowMsg := slow().(ContentMsg)
	assert.False(t, c.Apply(slowMsg), "stale result must not be applied")

	content, _ := c.Content()
	assert.Equal(t, View{Index: 1}, content.Target)
	assert.Equal(t, "# page 1", content.Markdown)
	assert.Equal(t, []int{0, 1, 0}, host.pageFetches)
}

func TestStaleFetchForSameIndexIsDropped(t *testing.T) {
	c, _ := newStarted(t, 3)

	first := c.GoTo(2)
	c.GoTo(1)
	second := c.GoTo(2)

	// Same target as the current view, but from a superseded intent.
	assert.False(t, c.Apply(first().(ContentMsg)))
	assert.True(t, c.Apply(second().(ContentMsg)))
}

func TestStaleFetchAfterReachingFinal(t *testing.T) {
	c, _ := newStarted(t, 2)

	pageFetch := c.GoTo(1)
	finalFetch := c.Advance()

	assert.True(t, c.Apply(finalFetch().(ContentMsg)))
	assert.False(t, c.Apply(pageFetch().(ContentMsg)))

	content, _ := c.Content()
	assert.True(t, content.Target.Final)
	assert.True(t, content.UsesDefault())
}

func TestReentrantNavigationSeesLiveState(t *testing.T) {
	c, _ := newStarted(t, 4)

	// Two advances issued before either fetch resolves must move two pages.
	first := c.Advance()
	second := c.Advance()
	assert.Equal(t, View{Index: 2}, c.Current())

	assert.False(t, c.Apply(first().(ContentMsg)))
	assert.True(t, c.Apply(second().(ContentMsg)))
}

func TestFetchErrorIsAppliedAsContent(t *testing.T) {
	host := &fakeHost{pages: titled(2), pageErr: errors.New("boom")}
	c := New(context.Background(), host)
	settle(c, c.Initialize(host.pages))

	content, ok := c.Content()
	require.True(t, ok)
	assert.EqualError(t, content.Err, "boom")
	assert.False(t, content.UsesDefault())
}

func TestCompletionContentFromHost(t *testing.T) {
	host := &fakeHost{pages: titled(1), completion: "# Done"}
	c := New(context.Background(), host)
	settle(c, c.Initialize(host.pages))
	settle(c, c.Advance())

	content, _ := c.Content()
	assert.Equal(t, "# Done", content.Markdown)
	assert.False(t, content.UsesDefault())
}

func TestNoPages(t *testing.T) {
	host := &fakeHost{}
	c := New(context.Background(), host)

	msgs := settle(c, c.Initialize(nil))
	assert.Equal(t, []tea.Msg{ReadyMsg{}}, msgs)
	assert.Equal(t, 1, host.ready)
	assert.Empty(t, host.pageFetches)

	assert.Nil(t, c.Advance())
	assert.Nil(t, c.Retreat())
	assert.Nil(t, c.GoTo(0))
	assert.Equal(t, State{Initialized: true}, c.State())
	assert.Equal(t, View{Index: 0}, c.Current())
	assert.Empty(t, c.Progress().Steps)

	settle(c, c.Dismiss())
	assert.Equal(t, 1, host.dismiss)
}

func TestNilHostIsInert(t *testing.T) {
	c := New(context.Background(), nil)

	assert.Nil(t, c.Initialize(titled(3)))
	assert.Nil(t, c.Advance())
	assert.Nil(t, c.GoTo(1))
	assert.Nil(t, c.Retreat())
	assert.Nil(t, c.Dismiss())
	assert.Nil(t, c.OpenHelp())
	assert.False(t, c.State().Initialized)
	assert.False(t, c.Apply(ContentMsg{}))
}

func TestNavigationBeforeInitializeIsIgnored(t *testing.T) {
	host := &fakeHost{pages: titled(3)}
	c := New(context.Background(), host)

	assert.Nil(t, c.Advance())
	assert.Nil(t, c.GoTo(1))
	assert.Nil(t, c.Retreat())
	assert.Empty(t, host.pageFetches)
}

func TestFetchPagesAndMetadata(t *testing.T) {
	host := &fakeHost{pages: titled(2)}
	ctx := context.Background()

	msgs := run(FetchPages(ctx, host))
	require.Len(t, msgs, 1)
	assert.Equal(t, PagesMsg{Pages: host.pages}, msgs[0])

	msgs = run(FetchMetadata(ctx, host))
	require.Len(t, msgs, 1)
	assert.Equal(t, MetadataMsg{Metadata: Metadata{
		Theme:       "dark",
		AccentColor: "#abc",
		Brand:       Brand{Name: "Acme"},
		HelpURL:     "https://help.test",
	}}, msgs[0])

	assert.Nil(t, FetchPages(ctx, nil))
	assert.Nil(t, FetchMetadata(ctx, nil))
}
