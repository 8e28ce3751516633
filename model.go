package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/1769-performance/logchart/clipboard"
	"github.com/1769-performance/logchart/dialogs"
	"github.com/1769-performance/logchart/logging"
)

const (
	chartZoneID      = "chart"
	gripZoneID       = "grip"
	legendZonePrefix = "legend:"
)

type model struct {
	cfg  Config
	data dataState
	ui   uiState

	chart        *chartView
	sidebar      viewport.Model
	activeDialog dialogs.Dialog
	zm           *zone.Manager

	terminalWidth  int
	terminalHeight int
	ready          bool

	// loadGen guards against a fetch/parse that resolves after the view
	// was closed or reopened; stale generations are dropped.
	loadGen    int
	cancelLoad context.CancelFunc

	// onClose mirrors the host page's close callback. nil means quit.
	onClose func() tea.Msg
}

func newModel(cfg Config, desc LogDescriptor) *model {
	m := &model{
		cfg:   cfg,
		zm:    zone.New(),
		chart: newChartView(0, 0), // replaced on the first WindowSizeMsg
	}
	m.data.reset(desc)
	m.ui.sidebarWidth = cfg.UI.SidebarWidth
	m.ui.phase = phaseLoading
	return m
}

func (m *model) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelLoad = cancel
	logging.Infof("model: loading %q from %s", m.data.desc.Name, m.data.desc.ContentURL)
	return loadLogCmd(ctx, m.data.desc, m.cfg.Auth, m.loadGen)
}

// close aborts any in-flight load and fires the host close callback.
func (m *model) close() (tea.Model, tea.Cmd) {
	if m.cancelLoad != nil {
		m.cancelLoad()
	}
	m.loadGen++
	if m.onClose != nil {
		cb := m.onClose
		return m, func() tea.Msg { return cb() }
	}
	return m, tea.Quit
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadResultMsg:
		return m.handleLoadResult(msg)

	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		m.layout()
		m.refreshChart()
		m.refreshSidebar()
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.ui.notice.seq {
			m.ui.notice.msg = ""
			m.ui.notice.kind = noticeInfo
		}
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		return m, exportCmd(m, msg.Path)

	case dialogs.ExportCanceledMsg:
		m.activeDialog = nil
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			return m, m.showNotice(fmt.Sprintf("Export failed: %v", msg.err), noticeError)
		}
		return m, m.showNotice(fmt.Sprintf("Exported %s", msg.path), noticeSuccess)

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	return m, nil
}

func (m *model) handleLoadResult(msg loadResultMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen {
		logging.Debugf("model: dropping stale load result (gen %d, want %d)", msg.gen, m.loadGen)
		return m, nil
	}
	switch inner := msg.msg.(type) {
	case logLoadedMsg:
		m.data.parsed = inner.parsed
		m.data.channels = newChannelStates(inner.parsed.Columns)
		m.data.window = fullWindow
		m.data.reducedValid = false
		m.data.touchChannels()
		m.ui.phase = phaseReady
		m.ui.cursor = 0
		if m.ready {
			m.layout()
			m.refreshChart()
			m.refreshSidebar()
		}
	case logFailedMsg:
		m.ui.phase = phaseFailed
		m.ui.errMsg = inner.err.Error()
		logging.Warnf("model: load failed: %v", inner.err)
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// dialogs steal all input while visible
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		if m.activeDialog != nil && !m.activeDialog.IsVisible() {
			m.activeDialog = nil
		}
		return m, cmd
	}

	switch m.ui.phase {
	case phaseLoading:
		if key.Matches(msg, Keys.Close) || key.Matches(msg, Keys.Quit) {
			return m.close()
		}
		return m, nil
	case phaseFailed:
		// terminal error state: the only affordance is closing
		if key.Matches(msg, Keys.Close) || key.Matches(msg, Keys.Quit) || msg.String() == "enter" {
			return m.close()
		}
		return m, nil
	}

	return m.handleReadyKey(msg)
}

func (m *model) handleReadyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Close), key.Matches(msg, Keys.Quit):
		return m.close()

	case key.Matches(msg, Keys.ZoomIn):
		m.setWindow(zoomInWindow(m.data.window))
	case key.Matches(msg, Keys.ZoomOut):
		m.setWindow(zoomOutWindow(m.data.window))
	case key.Matches(msg, Keys.ResetZoom):
		m.ui.drag = dragSelection{}
		m.setWindow(fullWindow)

	case key.Matches(msg, Keys.ChannelDown):
		if m.ui.cursor < len(m.data.channels)-1 {
			m.ui.cursor++
		}
		m.refreshSidebar()
	case key.Matches(msg, Keys.ChannelUp):
		if m.ui.cursor > 0 {
			m.ui.cursor--
		}
		m.refreshSidebar()

	case key.Matches(msg, Keys.ToggleChannel):
		if ch, ok := m.cursorChannel(); ok {
			toggleVisible(m.data.channels, ch.Key)
			m.channelsChanged()
		}
	case key.Matches(msg, Keys.ToggleShown):
		if ch, ok := m.cursorChannel(); ok && ch.Visible {
			toggleShown(m.data.channels, ch.Key)
			m.channelsChanged()
		}
	case key.Matches(msg, Keys.CycleAxis):
		if ch, ok := m.cursorChannel(); ok {
			setAxis(m.data.channels, ch.Key, nextAxis(ch.Axis))
			m.channelsChanged()
		}
	case key.Matches(msg, Keys.ShowAll):
		setAllVisible(m.data.channels, true)
		m.channelsChanged()
	case key.Matches(msg, Keys.HideAll):
		setAllVisible(m.data.channels, false)
		m.channelsChanged()

	case key.Matches(msg, Keys.Export):
		m.activeDialog = dialogs.NewExportDialog(defaultExportName(m.data.desc.Name), "")
		return m, m.activeDialog.Init()

	case key.Matches(msg, Keys.CopyReadout):
		return m, m.copyReadout()

	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
		return m, nil
	}

	return m, nil
}

func (m *model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ui.phase != phaseReady || !m.ready {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.zm.Get(gripZoneID).InBounds(msg) {
			m.ui.resizing = true
			return m, nil
		}
		if m.zm.Get(chartZoneID).InBounds(msg) {
			x, _ := m.zm.Get(chartZoneID).Pos(msg)
			if t, ok := m.chart.timeAt(x); ok {
				m.ui.drag.start(t)
				logging.Debugf("mouse: drag anchored at t=%f", t)
			}
			return m, nil
		}
		for _, ch := range legendChannels(m.data.channels) {
			if m.zm.Get(legendZonePrefix + ch.Key).InBounds(msg) {
				toggleShown(m.data.channels, ch.Key)
				m.channelsChanged()
				return m, nil
			}
		}

	case tea.MouseActionMotion:
		if m.ui.resizing {
			m.setSidebarWidth(msg.X - appMarginX)
			return m, nil
		}
		if m.zm.Get(chartZoneID).InBounds(msg) {
			x, _ := m.zm.Get(chartZoneID).Pos(msg)
			if t, ok := m.chart.timeAt(x); ok {
				m.ui.hoverTime = t
				m.ui.hoverActive = true
				m.ui.drag.extend(t)
			}
		} else {
			m.ui.hoverActive = false
		}

	case tea.MouseActionRelease:
		// releases end both gestures wherever the cursor landed, so no
		// listener can run away
		m.ui.resizing = false
		if m.data.parsed != nil {
			if window, ok := m.ui.drag.finish(m.data.parsed.TimeRange); ok {
				m.setWindow(window)
			}
		} else {
			m.ui.drag = dragSelection{}
		}
	}

	return m, nil
}

func (m *model) cursorChannel() (ChannelState, bool) {
	if m.ui.cursor < 0 || m.ui.cursor >= len(m.data.channels) {
		return ChannelState{}, false
	}
	return m.data.channels[m.ui.cursor], true
}

func (m *model) channelsChanged() {
	m.data.touchChannels()
	m.refreshChart()
	m.refreshSidebar()
}

func (m *model) setWindow(window [2]float64) {
	m.data.window = window
	m.refreshChart()
}

func (m *model) setSidebarWidth(w int) {
	m.ui.sidebarWidth = clamp(w, sidebarMinWidth, sidebarMaxWidth)
	m.layout()
	m.refreshChart()
	m.refreshSidebar()
}

func (m *model) refreshChart() {
	if !m.ready || m.data.parsed == nil {
		return
	}
	reduced := m.data.reducedSlice(m.cfg.Chart.MaxPoints, m.cfg.Chart.MaxPointsZoomed)
	start, end := windowToAbsolute(m.data.window, m.data.parsed.TimeRange)
	m.chart.rebuild(reduced, m.data.drawnList(), start, end)
}

func (m *model) copyReadout() tea.Cmd {
	line := m.readoutLine()
	if line == "" {
		return m.showNotice("Nothing to copy", noticeWarn)
	}
	if err := clipboard.Copy(line); err != nil {
		return m.showNotice(fmt.Sprintf("Copy failed: %v", err), noticeError)
	}
	return m.showNotice("Readout copied", noticeSuccess)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
