package main

import "strings"

// AxisID is one of the four fixed Y-axis slots, two left and two right.
type AxisID string

const (
	AxisL1 AxisID = "L1"
	AxisL2 AxisID = "L2"
	AxisR1 AxisID = "R1"
	AxisR2 AxisID = "R2"
)

var axisOrder = []AxisID{AxisL1, AxisL2, AxisR1, AxisR2}

// axisColors are fixed per slot, independent of channel colors.
var axisColors = map[AxisID]string{
	AxisL1: "#8884d8",
	AxisL2: "#82ca9d",
	AxisR1: "#ff7300",
	AxisR2: "#d84f4f",
}

func nextAxis(a AxisID) AxisID {
	for i, id := range axisOrder {
		if id == a {
			return axisOrder[(i+1)%len(axisOrder)]
		}
	}
	return AxisL1
}

// ChannelState is the per-channel view model. Visible is the sidebar
// selection, Shown the legend-level toggle. A channel is drawn iff
// Visible && Shown; Shown is meaningless while !Visible.
type ChannelState struct {
	Column
	Visible bool
	Shown   bool
	Axis    AxisID
}

// newChannelStates rebuilds the view-model array from scratch for a
// freshly opened log. Nothing carries over from a previous log.
func newChannelStates(columns []Column) []ChannelState {
	states := make([]ChannelState, len(columns))
	for i, col := range columns {
		on := false
		axis := AxisL1
		switch {
		case nameContainsAll(col.Name, "engine", "rpm"):
			on = true
		case nameContainsAll(col.Name, "accelerator", "pedal"):
			on = true
			axis = AxisR1
		}
		states[i] = ChannelState{Column: col, Visible: on, Shown: on, Axis: axis}
	}
	return states
}

func nameContainsAll(name string, terms ...string) bool {
	n := strings.ToLower(name)
	for _, term := range terms {
		if !strings.Contains(n, term) {
			return false
		}
	}
	return true
}

// toggleVisible flips the sidebar selection for key. Shown always follows
// the new Visible value so a re-selected channel comes back drawn.
func toggleVisible(states []ChannelState, key string) {
	for i := range states {
		if states[i].Key == key {
			states[i].Visible = !states[i].Visible
			states[i].Shown = states[i].Visible
			return
		}
	}
}

// toggleShown flips only the legend-level flag. The sidebar selection is
// untouched, which lets a user declutter the plot without losing the
// channel from the legend.
func toggleShown(states []ChannelState, key string) {
	for i := range states {
		if states[i].Key == key {
			states[i].Shown = !states[i].Shown
			return
		}
	}
}

// setAxis rebinds one channel to an axis slot. Any number of channels may
// share a slot.
func setAxis(states []ChannelState, key string, axis AxisID) {
	for i := range states {
		if states[i].Key == key {
			states[i].Axis = axis
			return
		}
	}
}

// setAllVisible bulk-sets Visible and Shown identically for every channel.
func setAllVisible(states []ChannelState, visible bool) {
	for i := range states {
		states[i].Visible = visible
		states[i].Shown = visible
	}
}

// drawnChannels returns the channels that are actually rendered as lines.
func drawnChannels(states []ChannelState) []ChannelState {
	out := make([]ChannelState, 0, len(states))
	for _, s := range states {
		if s.Visible && s.Shown {
			out = append(out, s)
		}
	}
	return out
}

// legendChannels returns every sidebar-selected channel, drawn or not.
func legendChannels(states []ChannelState) []ChannelState {
	out := make([]ChannelState, 0, len(states))
	for _, s := range states {
		if s.Visible {
			out = append(out, s)
		}
	}
	return out
}
