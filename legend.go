package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// legendLine custom-renders the legend: every sidebar-selected channel,
// struck through while its line is hidden. Entries are mouse zones; a
// click toggles only the shown flag, so a channel can be removed from the
// plot without losing its sidebar selection.
func (m *model) legendLine(width int) string {
	selected := legendChannels(m.data.channels)
	if len(selected) == 0 {
		return dimStyle.Render("no channels selected · space in the sidebar selects")
	}

	entries := make([]string, 0, len(selected))
	for _, ch := range selected {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(ch.Color)).Render(swatchRune) + " " + ch.Name
		if !ch.Shown {
			label = lipgloss.NewStyle().Foreground(lipgloss.Color(ch.Color)).Render(swatchRune) + " " + strikeStyle.Render(ch.Name)
		}
		entries = append(entries, m.zm.Mark(legendZonePrefix+ch.Key, label))
	}

	return truncateToWidth(strings.Join(entries, "   "), width)
}
