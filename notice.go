package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeKind selects the icon and tone of a transient footer message.
type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarn
	noticeError
)

func (k noticeKind) icon() string {
	switch k {
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	default:
		return "ℹ"
	}
}

// notice is the transient status message shown in the footer. seq
// invalidates expiry timers scheduled for messages that have since been
// replaced.
type notice struct {
	msg  string
	kind noticeKind
	seq  int
}

func (n notice) render() string {
	if n.msg == "" {
		return ""
	}
	return n.kind.icon() + " " + n.msg
}

type clearNoticeMsg struct{ seq int }

const noticeDuration = 2 * time.Second

// showNotice replaces the current notice and schedules its expiry. The
// clear for an already-replaced notice carries a stale seq and is
// dropped in Update.
func (m *model) showNotice(msg string, kind noticeKind) tea.Cmd {
	m.ui.notice.msg = msg
	m.ui.notice.kind = kind
	m.ui.notice.seq++

	seq := m.ui.notice.seq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
}
