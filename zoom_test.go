package main

import "testing"

func TestZoomOutNeverLeavesBounds(t *testing.T) {
	t.Parallel()

	w := [2]float64{40, 60}
	for i := 0; i < 50; i++ {
		w = zoomOutWindow(w)
		if w[0] < 0 || w[1] > 100 || w[0] > w[1] {
			t.Fatalf("window escaped bounds after %d zoom-outs: %v", i+1, w)
		}
	}
	if w != fullWindow {
		t.Fatalf("repeated zoom-out should converge on the full window, got %v", w)
	}
}

func TestZoomInKeepsOrdering(t *testing.T) {
	t.Parallel()

	w := fullWindow
	for i := 0; i < 200; i++ {
		w = zoomInWindow(w)
		if w[0] > w[1] {
			t.Fatalf("low > high after %d zoom-ins: %v", i+1, w)
		}
	}
}

func TestZoomInNarrowsAroundCenter(t *testing.T) {
	t.Parallel()

	w := zoomInWindow([2]float64{20, 80})
	if got := (w[0] + w[1]) / 2; got != 50 {
		t.Fatalf("center moved to %v", got)
	}
	if span := w[1] - w[0]; span >= 60 {
		t.Fatalf("zoom in did not narrow the span: %v", span)
	}
}

func TestDragFinishProducesWindow(t *testing.T) {
	t.Parallel()

	bounds := TimeBounds{Min: 0, Max: 200}
	var s dragSelection
	s.start(150)
	s.extend(50) // right-to-left drag

	w, ok := s.finish(bounds)
	if !ok {
		t.Fatalf("expected a window from a real drag")
	}
	if w[0] != 25 || w[1] != 75 {
		t.Fatalf("expected [25,75], got %v", w)
	}
	if s.active {
		t.Fatalf("finish must clear the selection")
	}
}

func TestDragClickIsNoOp(t *testing.T) {
	t.Parallel()

	var s dragSelection
	s.start(10)
	if _, ok := s.finish(TimeBounds{Min: 0, Max: 100}); ok {
		t.Fatalf("a click without movement must not zoom")
	}
	if s.active {
		t.Fatalf("finish must clear the selection even on a no-op")
	}
}

func TestDragFinishClampsOutside(t *testing.T) {
	t.Parallel()

	var s dragSelection
	s.start(-50)
	s.extend(300)
	w, ok := s.finish(TimeBounds{Min: 0, Max: 100})
	if !ok {
		t.Fatalf("expected a window")
	}
	if w != fullWindow {
		t.Fatalf("out-of-range drag should clamp to the full window, got %v", w)
	}
}

func TestDragOrdered(t *testing.T) {
	t.Parallel()

	s := dragSelection{active: true, left: 9, right: 3}
	lo, hi := s.ordered()
	if lo != 3 || hi != 9 {
		t.Fatalf("ordered() = %v,%v", lo, hi)
	}
}
