package main

// The viewport over the log is a [0,100] percentage window mapped onto the
// dataset's absolute time range. Invariant: 0 <= lo <= hi <= 100.

const zoomFactor = 1.5

var fullWindow = [2]float64{0, 100}

// zoomWindow recomputes the window around its own center. factor > 1
// widens the span (zoom out), factor < 1 narrows it (zoom in). The result
// is clamped into [0,100].
func zoomWindow(window [2]float64, factor float64) [2]float64 {
	center := (window[0] + window[1]) / 2
	half := (window[1] - window[0]) / 2 * factor
	return clampWindow([2]float64{center - half, center + half})
}

func zoomInWindow(window [2]float64) [2]float64 {
	return zoomWindow(window, 1/zoomFactor)
}

func zoomOutWindow(window [2]float64) [2]float64 {
	return zoomWindow(window, zoomFactor)
}

func clampWindow(window [2]float64) [2]float64 {
	lo, hi := window[0], window[1]
	if lo < 0 {
		lo = 0
	}
	if hi > 100 {
		hi = 100
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return [2]float64{lo, hi}
}

// dragSelection is the transient drag-to-zoom state. Left and Right are
// absolute time values under the anchor and the current cursor.
type dragSelection struct {
	active bool
	left   float64
	right  float64
}

func (s *dragSelection) start(t float64) {
	s.active = true
	s.left = t
	s.right = t
}

func (s *dragSelection) extend(t float64) {
	if s.active {
		s.right = t
	}
}

// finish converts the selection into a percentage window against bounds.
// A click without a drag (left == right) is a no-op. The selection is
// cleared regardless of outcome.
func (s *dragSelection) finish(bounds TimeBounds) ([2]float64, bool) {
	defer func() { *s = dragSelection{} }()
	if !s.active || s.left == s.right {
		return [2]float64{}, false
	}
	lo, hi := s.left, s.right
	if lo > hi {
		lo, hi = hi, lo
	}
	span := bounds.Max - bounds.Min
	if span <= 0 {
		return [2]float64{}, false
	}
	return clampWindow([2]float64{
		(lo - bounds.Min) / span * 100,
		(hi - bounds.Min) / span * 100,
	}), true
}

// ordered returns the selection endpoints low-to-high for rendering.
func (s dragSelection) ordered() (float64, float64) {
	if s.left <= s.right {
		return s.left, s.right
	}
	return s.right, s.left
}
