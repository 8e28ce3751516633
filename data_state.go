package main

// dataState holds the parsed log and everything derived from it. The
// dataset itself is immutable once parsed; only the view-model array and
// the window change.
type dataState struct {
	desc     LogDescriptor
	parsed   *ParsedData
	channels []ChannelState

	// window is the [0,100] percentage viewport onto the log.
	window [2]float64

	// memoized reduction, keyed on the window (the dataset is fixed per
	// mount) and the configured budgets. Keeps drag-to-zoom interactive
	// on multi-thousand-row logs.
	reduced       []DataPoint
	reducedWindow [2]float64
	reducedValid  bool

	// memoized drawn-channel list, invalidated by channelsRev bumps.
	channelsRev int
	drawn       []ChannelState
	drawnRev    int
}

// reducedSlice returns the filtered+downsampled slice for the current
// window, recomputing only when the window moved.
func (d *dataState) reducedSlice(budgetWide, budgetZoomed int) []DataPoint {
	if d.parsed == nil {
		return nil
	}
	if d.reducedValid && d.reducedWindow == d.window {
		return d.reduced
	}
	d.reduced = visibleSlice(d.parsed, d.window, budgetWide, budgetZoomed)
	d.reducedWindow = d.window
	d.reducedValid = true
	return d.reduced
}

// drawnList returns the channels rendered as lines, memoized on the
// channel revision counter.
func (d *dataState) drawnList() []ChannelState {
	if d.drawn != nil && d.drawnRev == d.channelsRev {
		return d.drawn
	}
	d.drawn = drawnChannels(d.channels)
	d.drawnRev = d.channelsRev
	return d.drawn
}

// touchChannels invalidates the drawn-channel memo after any view-model
// transition.
func (d *dataState) touchChannels() {
	d.channelsRev++
}

// reset drops everything for a fresh open. No settings survive between
// logs.
func (d *dataState) reset(desc LogDescriptor) {
	*d = dataState{desc: desc, window: fullWindow}
}
