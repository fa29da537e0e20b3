// Package tui implements the interactive rename plan review.
package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/michaelscutari/mv123/internal/rename"
)

// Model holds the TUI state.
type Model struct {
	plan        *rename.Plan
	rows        []rename.Pair
	cursor      int
	width       int
	height      int
	filter      textinput.Model
	changedOnly bool
	confirmed   bool
}

// NewModel creates a review model over plan.
func NewModel(plan *rename.Plan) *Model {
	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.Placeholder = "name"
	ti.CharLimit = 256

	m := &Model{plan: plan, filter: ti}
	m.applyFilter()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Confirmed reports whether the user asked to apply the plan.
func (m *Model) Confirmed() bool {
	return m.confirmed
}

// Rows returns the pairs currently shown.
func (m *Model) Rows() []rename.Pair {
	return m.rows
}

// Cursor returns the selected row index.
func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) helpLine() string {
	if m.filter.Focused() {
		return "Type to filter | Enter: apply | Esc: clear | ctrl+c: quit"
	}
	return "↑/↓ move | /: filter | c: changed only | a: apply | q: quit"
}

func (m *Model) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	rows := make([]rename.Pair, 0, len(m.plan.Pairs))
	for _, p := range m.plan.Pairs {
		if m.changedOnly && !p.Changed() {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(filepath.Base(p.Old)), needle) &&
			!strings.Contains(strings.ToLower(filepath.Base(p.New)), needle) {
			continue
		}
		rows = append(rows, p)
	}
	m.rows = rows
	m.cursor = 0
}
