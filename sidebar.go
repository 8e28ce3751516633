package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// refreshSidebar re-renders the channel list into the sidebar viewport
// and keeps the cursor row in view.
func (m *model) refreshSidebar() {
	if !m.ready {
		return
	}
	var rows []string
	for i, ch := range m.data.channels {
		rows = append(rows, m.channelRow(ch, i == m.ui.cursor))
	}
	if len(rows) == 0 {
		rows = []string{dimStyle.Render("(no channels)")}
	}
	m.sidebar.SetContent(strings.Join(rows, "\n"))
	m.scrollCursorIntoView()
}

func (m *model) channelRow(ch ChannelState, selected bool) string {
	check := "[ ]"
	if ch.Visible {
		check = "[x]"
	}
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(ch.Color)).Render(swatchRune)
	axisTag := axisStyleFor(ch.Axis).Render(string(ch.Axis))

	name := ch.Name
	if ch.Visible && !ch.Shown {
		name = strikeStyle.Render(name)
	}

	row := fmt.Sprintf("%s %s %s %s", check, swatch, axisTag, name)
	row = truncateToWidth(row, m.sidebar.Width)
	if selected {
		return channelCursorStyle.Render(row)
	}
	return row
}

func (m *model) scrollCursorIntoView() {
	if m.ui.cursor < m.sidebar.YOffset {
		m.sidebar.SetYOffset(m.ui.cursor)
	}
	bottom := m.sidebar.YOffset + m.sidebar.Height - 1
	if m.ui.cursor > bottom {
		m.sidebar.SetYOffset(m.ui.cursor - m.sidebar.Height + 1)
	}
}
