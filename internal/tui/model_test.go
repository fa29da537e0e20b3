package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelscutari/mv123/internal/rename"
)

func testPlan() *rename.Plan {
	return &rename.Plan{
		Directory: "/music",
		Filter:    `^[^.].*`,
		Pairs: []rename.Pair{
			{Old: "/music/1.mp3", New: "/music/1.mp3"},
			{Old: "/music/2.mp3", New: "/music/2.mp3"},
			{Old: "/music/a4.mp3", New: "/music/3.mp3"},
			{Old: "/music/b5.mp3", New: "/music/4.mp3"},
		},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestCursorStaysInBounds(t *testing.T) {
	m := NewModel(testPlan())

	send(m, "up")
	assert.Equal(t, 0, m.Cursor())

	send(m, "down", "down", "down", "down", "down")
	assert.Equal(t, 3, m.Cursor())

	send(m, "g")
	assert.Equal(t, 0, m.Cursor())
	send(m, "G")
	assert.Equal(t, 3, m.Cursor())
}

func TestChangedOnlyToggle(t *testing.T) {
	m := NewModel(testPlan())
	require.Len(t, m.Rows(), 4)

	send(m, "c")
	require.Len(t, m.Rows(), 2)
	assert.Equal(t, "/music/a4.mp3", m.Rows()[0].Old)

	send(m, "c")
	assert.Len(t, m.Rows(), 4)
}

func TestFilterMatchesOldOrNewName(t *testing.T) {
	m := NewModel(testPlan())

	send(m, "/", "B", "5")
	require.Len(t, m.Rows(), 1)
	assert.Equal(t, "/music/b5.mp3", m.Rows()[0].Old)

	// Typing q while filtering edits the filter instead of quitting.
	cmd := send(m, "q")
	assert.False(t, isQuit(t, cmd))
	assert.Empty(t, m.Rows())

	send(m, "esc")
	assert.Len(t, m.Rows(), 4)
	assert.False(t, m.filter.Focused())
}

func TestFilterKeptAfterEnter(t *testing.T) {
	m := NewModel(testPlan())

	send(m, "/", "a", "4", "enter")
	require.Len(t, m.Rows(), 1)
	assert.Equal(t, "/music/3.mp3", m.Rows()[0].New)
	assert.False(t, m.filter.Focused())
	assert.Contains(t, m.View(), "Showing: 1")
}

func TestApplyConfirmsAndQuits(t *testing.T) {
	m := NewModel(testPlan())

	cmd := send(m, "a")
	assert.True(t, m.Confirmed())
	assert.True(t, isQuit(t, cmd))
}

func TestQuitDoesNotConfirm(t *testing.T) {
	m := NewModel(testPlan())

	cmd := send(m, "q")
	assert.False(t, m.Confirmed())
	assert.True(t, isQuit(t, cmd))
}

func TestViewListsRows(t *testing.T) {
	m := NewModel(testPlan())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	out := m.View()
	assert.Contains(t, out, "INPUT")
	assert.Contains(t, out, "OUTPUT")
	assert.Contains(t, out, "a4.mp3")
	assert.Contains(t, out, "Files: 4 | To rename: 2")
}

func TestViewEmptyPlan(t *testing.T) {
	m := NewModel(&rename.Plan{Directory: "/empty"})
	assert.Contains(t, m.View(), "No matching files.")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abcdefg...", truncateRight("abcdefghijklmnop", 10))
	assert.Equal(t, "abc...nop", truncateMiddle("abcdefghijklmnop", 9))
	assert.Equal(t, "short", truncateMiddle("short", 9))
}
