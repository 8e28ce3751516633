package main

type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseReady
)

type uiState struct {
	phase  phase
	errMsg string

	cursor       int // index into dataState.channels for the sidebar
	sidebarWidth int
	resizing     bool // grip drag in progress

	drag        dragSelection
	hoverTime   float64
	hoverActive bool

	notice notice
}
