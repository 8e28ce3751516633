package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// appMarginX is the left margin applied by appstyle; mouse X coordinates
// are shifted by it when translating a grip drag into a sidebar width.
const appMarginX = 2

// heights of the fixed lines under the chart panel in the right pane
const underChartLines = 4 // axis strip, legend, scrubber, readout

func (m *model) layout() {
	innerW := m.terminalWidth - 4
	innerH := m.terminalHeight - 2
	if innerW < 20 || innerH < 10 {
		return
	}

	bodyH := innerH - footerHeight
	rightW := innerW - m.ui.sidebarWidth - 1 // grip column

	chartW := rightW - 2
	chartH := bodyH - 2 - underChartLines
	m.chart = newChartView(chartW, chartH)

	m.sidebar = viewport.New(m.ui.sidebarWidth-2, bodyH-3) // borders + title
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	switch m.ui.phase {
	case phaseLoading:
		return m.statusScreen(fmt.Sprintf("Loading %s…", m.data.desc.Name), dimStyle)
	case phaseFailed:
		return m.statusScreen(m.ui.errMsg+"\n\nesc to close", errorStyle)
	}

	innerW := m.terminalWidth - 4
	innerH := m.terminalHeight - 2
	bodyH := innerH - footerHeight
	rightW := innerW - m.ui.sidebarWidth - 1

	sidebar := m.sidebarPane(bodyH)
	grip := m.zm.Mark(gripZoneID, gripStyle.Render(strings.TrimRight(strings.Repeat(gripRune+"\n", bodyH), "\n")))
	right := m.rightPane(rightW)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, grip, right)
	out := appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.footerView(innerW)))
	return m.zm.Scan(out)
}

// statusScreen is the full-screen terminal state used while loading and
// after a fatal ingest error.
func (m *model) statusScreen(msg string, style lipgloss.Style) string {
	return lipgloss.Place(
		m.terminalWidth, m.terminalHeight,
		lipgloss.Center, lipgloss.Center,
		style.Render(msg),
	)
}

func (m *model) sidebarPane(bodyH int) string {
	title := titleStyle.Render(fmt.Sprintf(" Channels (%d)", len(m.data.channels)))
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.sidebar.View())
	return sidebarStyle.Width(m.ui.sidebarWidth - 2).Height(bodyH - 2).Render(content)
}

func (m *model) rightPane(rightW int) string {
	chart := chartPanelStyle.Render(m.zm.Mark(chartZoneID, m.chart.view()))
	lineW := rightW
	return lipgloss.JoinVertical(lipgloss.Left,
		chart,
		m.axisStrip(lineW),
		m.legendLine(lineW),
		m.scrubberLine(lineW),
		m.readoutView(lineW),
	)
}

// axisStrip lists each occupied axis slot with its current value range in
// the slot's fixed color.
func (m *model) axisStrip(width int) string {
	var parts []string
	for _, id := range axisOrder {
		r, ok := m.chart.axisRanges[id]
		if !ok {
			continue
		}
		parts = append(parts, axisStyleFor(id).Render(
			fmt.Sprintf("%s %s…%s", id, formatAxisValue(r[0]), formatAxisValue(r[1])),
		))
	}
	if len(parts) == 0 {
		return dimStyle.Render("no channels shown")
	}
	return truncateToWidth(strings.Join(parts, "  "), width)
}

// readoutView is the hover tooltip: elapsed time plus every drawn
// channel's value at the nearest point.
func (m *model) readoutView(width int) string {
	line := m.readoutLine()
	if line == "" {
		return dimStyle.Render("hover the chart for values · drag to zoom")
	}
	return truncateToWidth(line, width)
}

func (m *model) readoutLine() string {
	if !m.ui.hoverActive || m.data.parsed == nil {
		return ""
	}
	reduced := m.data.reducedSlice(m.cfg.Chart.MaxPoints, m.cfg.Chart.MaxPointsZoomed)
	point, ok := nearestPoint(reduced, m.ui.hoverTime)
	if !ok {
		return ""
	}
	parts := []string{formatElapsed(point.Time)}
	for _, ch := range m.data.drawnList() {
		if v, ok := point.Values[ch.Key]; ok {
			parts = append(parts, fmt.Sprintf("%s %s", ch.Name, formatValue(v)))
		}
	}
	return strings.Join(parts, " · ")
}

// scrubberLine draws the position of the current window within the whole
// log, plus the in-flight drag selection as a highlighted band.
func (m *model) scrubberLine(width int) string {
	if m.data.parsed == nil {
		return ""
	}
	bounds := m.data.parsed.TimeRange
	minLabel := formatElapsed(bounds.Min)
	maxLabel := formatElapsed(bounds.Max)
	barWidth := width - len(minLabel) - len(maxLabel) - 4
	if barWidth < 10 {
		return fmt.Sprintf("window %.1f%%–%.1f%%", m.data.window[0], m.data.window[1])
	}

	bar := make([]rune, barWidth)
	for i := range bar {
		bar[i] = '-'
	}
	startPos := int(float64(barWidth-1) * m.data.window[0] / 100)
	endPos := int(float64(barWidth-1) * m.data.window[1] / 100)
	for i := startPos; i <= endPos && i < barWidth; i++ {
		bar[i] = '='
	}
	bar[startPos] = '['
	bar[endPos] = ']'

	line := string(bar)
	if m.ui.drag.active {
		span := bounds.Max - bounds.Min
		if span > 0 {
			lo, hi := m.ui.drag.ordered()
			selStart := clamp(int(float64(barWidth-1)*(lo-bounds.Min)/span), 0, barWidth-1)
			selEnd := clamp(int(float64(barWidth-1)*(hi-bounds.Min)/span), 0, barWidth-1)
			line = string(bar[:selStart]) +
				scrubberBandStyle.Render(strings.Repeat("█", selEnd-selStart+1)) +
				string(bar[selEnd+1:])
		}
	}

	return fmt.Sprintf("%s  %s  %s", dimStyle.Render(minLabel), line, dimStyle.Render(maxLabel))
}
