package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdpick/internal/domain"
	"cmdpick/internal/ui/input"
	"cmdpick/internal/ui/state"
)

func testCatalog() domain.Catalog {
	return domain.Catalog{
		{Text: "git status", Description: "working tree status", Tags: []string{"git"}},
		{Text: "git stash"},
		{Text: "docker ps"},
		{Text: "du -sh ."},
		{Text: "sudo shutdown -h now"},
	}
}

func moveDown(s *state.SelectionState, n int) {
	for i := 0; i < n; i++ {
		s.Apply(input.MoveDown{})
	}
}

func TestProjectFitsViewport(t *testing.T) {
	r := NewRenderer("> ", 0)
	s := state.New(testCatalog())

	sd, offset := r.Project(s, Viewport{Width: 80, Height: 10}, 0)
	assert.Equal(t, 0, offset)
	assert.Len(t, sd.Rows, 5, "all five entries fit in a 10-line viewport")
	assert.Equal(t, 5, sd.TotalMatches)
	assert.Equal(t, 5, sd.CatalogSize)
	assert.False(t, sd.MoreAbove)
	assert.False(t, sd.MoreBelow)
	assert.True(t, sd.Rows[0].Selected)
}

func TestProjectHonorsMaxVisible(t *testing.T) {
	r := NewRenderer("> ", 3)
	s := state.New(testCatalog())

	sd, _ := r.Project(s, Viewport{Width: 80, Height: 24}, 0)
	assert.Len(t, sd.Rows, 3)
	assert.True(t, sd.MoreBelow)
	assert.False(t, sd.MoreAbove)
}

func TestProjectScrollsMinimally(t *testing.T) {
	r := NewRenderer("> ", 3)
	s := state.New(testCatalog())

	// Highlight the last entry: the window slides down just far enough.
	moveDown(s, 4)
	sd, offset := r.Project(s, Viewport{Width: 80, Height: 24}, 0)
	assert.Equal(t, 2, offset)
	require.Len(t, sd.Rows, 3)
	assert.True(t, sd.Rows[2].Selected)
	assert.True(t, sd.MoreAbove)
	assert.False(t, sd.MoreBelow)

	// Moving up within the window must not move the window.
	s.Apply(input.MoveUp{})
	_, offset = r.Project(s, Viewport{Width: 80, Height: 24}, offset)
	assert.Equal(t, 2, offset, "highlight is still visible, no recentering")

	// Moving above the window scrolls up by exactly one.
	s.Apply(input.MoveUp{})
	_, offset = r.Project(s, Viewport{Width: 80, Height: 24}, offset)
	assert.Equal(t, 2, offset)
	s.Apply(input.MoveUp{})
	sd, offset = r.Project(s, Viewport{Width: 80, Height: 24}, offset)
	assert.Equal(t, 1, offset)
	assert.True(t, sd.Rows[0].Selected)
}

func TestProjectClampsStaleOffset(t *testing.T) {
	r := NewRenderer("> ", 3)
	s := state.New(testCatalog())

	// A stale offset from a previous, larger list is pulled back in range.
	sd, offset := r.Project(s, Viewport{Width: 80, Height: 24}, 99)
	assert.Equal(t, 0, offset, "highlight 0 forces the window back to the top")
	assert.True(t, sd.Rows[0].Selected)
}

func TestProjectTinyViewportDegrades(t *testing.T) {
	r := NewRenderer("> ", 0)
	s := state.New(testCatalog())

	sd, _ := r.Project(s, Viewport{Width: 80, Height: 1}, 0)
	assert.Empty(t, sd.Rows, "no room for results below the chrome")

	out := r.Render(sd, Viewport{Width: 80, Height: 1})
	assert.Equal(t, 1, len(strings.Split(out, "\n")), "only the query line fits")
}

func TestProjectCursorAndQuery(t *testing.T) {
	r := NewRenderer("> ", 0)
	s := state.New(testCatalog())
	s.Apply(input.InsertChar{Rune: 'g'})
	s.Apply(input.InsertChar{Rune: 's'})

	sd, _ := r.Project(s, Viewport{Width: 80, Height: 10}, 0)
	assert.Equal(t, "gs", sd.Query)
	assert.Equal(t, 2, sd.Cursor)
	assert.Equal(t, "> ", sd.Prompt)
}

func TestRenderShowsEntriesAndMarker(t *testing.T) {
	r := NewRenderer("> ", 0)
	s := state.New(testCatalog())

	sd, _ := r.Project(s, Viewport{Width: 80, Height: 10}, 0)
	out := ansi.Strip(r.Render(sd, Viewport{Width: 80, Height: 10}))

	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "5/5")
	assert.Contains(t, out, "git status")
	assert.Contains(t, out, "working tree status")
	assert.Contains(t, out, "▌ git status", "highlight marker sits on the first row")
}

func TestRenderTruncatesToWidth(t *testing.T) {
	r := NewRenderer("> ", 0)
	s := state.New(domain.Catalog{
		{Text: strings.Repeat("x", 200)},
	})

	sd, _ := r.Project(s, Viewport{Width: 20, Height: 10}, 0)
	out := r.Render(sd, Viewport{Width: 20, Height: 10})
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 20)
	}
}
