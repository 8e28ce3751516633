package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

const footerHeight = 2

type FooterState struct {
	Mode      string
	FileName  string
	Window    string
	Points    int
	TotalRows int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func (m *model) footerView(width int) string {
	st := FooterState{
		Mode:      m.footerMode(),
		FileName:  m.data.desc.Name,
		Window:    fmt.Sprintf("%.1f%%–%.1f%%", m.data.window[0], m.data.window[1]),
		Legend:    "(? help · space select · a axis · drag zoom · e export · r reset)",
		Points:    len(m.data.reduced),
		TotalRows: totalRowCount(m.data.parsed),
	}
	if m.ui.notice.msg != "" {
		st.StatusMessage = m.ui.notice.render()
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}

func (m *model) footerMode() string {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return "DIALOG"
	}
	switch m.ui.phase {
	case phaseLoading:
		return "LOADING"
	case phaseFailed:
		return "ERROR"
	}
	if m.ui.drag.active {
		return "SELECT"
	}
	if m.ui.resizing {
		return "RESIZE"
	}
	return "VIEW"
}

func totalRowCount(parsed *ParsedData) int {
	if parsed == nil {
		return 0
	}
	return parsed.TotalRows
}

// RenderFooter draws the 2-line footer: a control bar with the mode pill,
// log name and window, then a status bar with notices and the key legend.
func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	rightPlain := fmt.Sprintf(" %d/%d pts", st.Points, st.TotalRows)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runewidth.StringWidth(rightPlain)

	leftW := width - rightW
	if leftW < 0 {
		leftW = 0
	}

	pillPlain := " " + truncatePlain(st.Mode, max(0, leftW-2)) + " "
	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain +
		ansiBg(styles.BarBG) + ansiFg(styles.TextFG)

	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no log)"
	}
	midPlain := " ▸ " + name + "  [window " + st.Window + "]"
	midW := leftW - runewidth.StringWidth(pillPlain)
	midPlain = truncatePlain(midPlain, midW)
	mid := applyFG(padRightPlain(midPlain, midW), styles.FileNameFG, styles.TextFG)

	return applyBar(pill+mid+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runewidth.StringWidth(legendPlain)

	leftW := width - legendW
	if leftW < 0 {
		leftW = 0
	}

	msgPlain := padRightPlain(truncatePlain(st.StatusMessage, leftW), leftW)
	line := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) +
		applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(line, styles.StatusBG, styles.StatusFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + "0m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("%s%d;2;%d;%d;%dm", termenv.CSI, code, r, g, b)
	}
	return ""
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runewidth.StringWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

// truncateToWidth is the ANSI-aware truncation used for styled lines.
func truncateToWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return lipgloss.NewStyle().MaxWidth(w).Render(s)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
