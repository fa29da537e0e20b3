package tui

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	colGap       = 2
	markWidth    = 1
	minNameWidth = 10
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	headerLines := 0

	writeLine := func(line string) {
		b.WriteString(line)
		b.WriteString("\n")
		headerLines++
	}

	writeLine(titleStyle.Render("mv123 - Rename Review"))
	writeLine(pathStyle.Render(fmt.Sprintf("Directory: %s | Filter: %s",
		truncateMiddle(m.plan.Directory, max(10, m.width-30)), m.plan.Filter)))

	status := fmt.Sprintf("Files: %s | To rename: %s",
		FormatCount(m.plan.Len()), FormatCount(m.plan.ChangedCount()))
	if m.changedOnly {
		status += " | changed only"
	}
	if len(m.rows) != m.plan.Len() {
		status += fmt.Sprintf(" | Showing: %s", FormatCount(len(m.rows)))
	}
	writeLine(statusStyle.Render(status))

	if m.filter.Focused() || m.filter.Value() != "" {
		writeLine(filterStyle.Render(m.filter.View()))
	}

	nameWidth := calcNameWidth(m.width)
	gap := strings.Repeat(" ", colGap)
	header := fmt.Sprintf("%*s%s%-*s%s%s", markWidth, "", gap, nameWidth, "INPUT", gap, "OUTPUT")
	writeLine(headerStyle.Render(header))

	footerLines := 2
	visibleRows := m.height - headerLines - footerLines
	if visibleRows < 5 {
		visibleRows = 5
	}

	startIdx := 0
	if m.cursor >= visibleRows {
		startIdx = m.cursor - visibleRows + 1
	}
	endIdx := min(len(m.rows), startIdx+visibleRows)

	if len(m.rows) == 0 {
		b.WriteString(statusStyle.Render("No matching files."))
		b.WriteString("\n")
	}
	for i := startIdx; i < endIdx; i++ {
		b.WriteString(m.formatRow(i, nameWidth))
		b.WriteString("\n")
	}

	help := m.helpLine()
	if len(m.rows) > 0 {
		help = fmt.Sprintf("%s [%d/%d]", help, m.cursor+1, len(m.rows))
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m *Model) formatRow(i, nameWidth int) string {
	p := m.rows[i]
	oldName := truncateRight(filepath.Base(p.Old), nameWidth)
	newName := filepath.Base(p.New)

	mark := unchangedStyle.Render("=")
	if p.Changed() {
		mark = changedStyle.Render("*")
	}
	gap := strings.Repeat(" ", colGap)
	line := fmt.Sprintf("%s%s%-*s%s%s", mark, gap, nameWidth, oldName, gap, newName)

	if i == m.cursor {
		return selectedStyle.Render(line)
	}
	return line
}

func calcNameWidth(totalWidth int) int {
	nameWidth := (totalWidth - markWidth - colGap*2) / 2
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}
	return nameWidth
}

func truncateRight(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func truncateMiddle(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	head := (maxLen - 3) / 2
	tail := maxLen - 3 - head
	return s[:head] + "..." + s[len(s)-tail:]
}
