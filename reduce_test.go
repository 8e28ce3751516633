package main

import "testing"

func makePoints(n int) []DataPoint {
	pts := make([]DataPoint, n)
	for i := range pts {
		pts[i] = DataPoint{
			Time:   float64(i),
			Values: map[string]Value{"rpm": {Num: float64(i * 10), Numeric: true}},
		}
	}
	return pts
}

func TestDownsampleLeavesSmallInputsAlone(t *testing.T) {
	t.Parallel()

	pts := makePoints(50)
	out := downsample(pts, 100)
	if len(out) != len(pts) {
		t.Fatalf("expected %d points back, got %d", len(pts), len(out))
	}
	if &out[0] != &pts[0] {
		t.Fatalf("small input must be returned as-is, not copied")
	}
}

func TestDownsampleRespectsBudget(t *testing.T) {
	t.Parallel()

	pts := makePoints(10000)
	out := downsample(pts, 1000)
	if len(out) > 1001 {
		t.Fatalf("budget 1000 exceeded: %d points", len(out))
	}
	if out[0].Time != 0 {
		t.Fatalf("first point must survive, got t=%v", out[0].Time)
	}
	// stride sampling keeps points in order
	for i := 1; i < len(out); i++ {
		if out[i].Time <= out[i-1].Time {
			t.Fatalf("points out of order at %d", i)
		}
	}
}

func TestFilterByTimeRangeIsInclusive(t *testing.T) {
	t.Parallel()

	pts := makePoints(10)
	out := filterByTimeRange(pts, 2, 5)
	if len(out) != 4 {
		t.Fatalf("expected 4 points in [2,5], got %d", len(out))
	}
	if out[0].Time != 2 || out[len(out)-1].Time != 5 {
		t.Fatalf("boundary points missing: first=%v last=%v", out[0].Time, out[len(out)-1].Time)
	}
}

func TestWindowToAbsolute(t *testing.T) {
	t.Parallel()

	bounds := TimeBounds{Min: 10, Max: 110}
	start, end := windowToAbsolute([2]float64{25, 75}, bounds)
	if start != 35 || end != 85 {
		t.Fatalf("expected [35,85], got [%v,%v]", start, end)
	}

	start, end = windowToAbsolute(fullWindow, bounds)
	if start != 10 || end != 110 {
		t.Fatalf("full window must span the whole range, got [%v,%v]", start, end)
	}
}

func TestMaxPointsForWindow(t *testing.T) {
	t.Parallel()

	if got := maxPointsForWindow([2]float64{0, 100}, 1000, 2000); got != 1000 {
		t.Fatalf("wide window should use the wide budget, got %d", got)
	}
	if got := maxPointsForWindow([2]float64{40, 45}, 1000, 2000); got != 2000 {
		t.Fatalf("narrow window should use the zoomed budget, got %d", got)
	}
	// exactly at the threshold still counts as wide
	if got := maxPointsForWindow([2]float64{0, 10}, 1000, 2000); got != 1000 {
		t.Fatalf("threshold span should use the wide budget, got %d", got)
	}
}

func TestVisibleSliceNilSafe(t *testing.T) {
	t.Parallel()

	if out := visibleSlice(nil, fullWindow, 1000, 2000); out != nil {
		t.Fatalf("nil dataset must yield nil, got %d points", len(out))
	}
}

func TestReducedSliceMemoizesOnWindow(t *testing.T) {
	t.Parallel()

	var d dataState
	d.reset(LogDescriptor{Name: "x"})
	d.parsed = &ParsedData{
		Data:      makePoints(100),
		TimeRange: TimeBounds{Min: 0, Max: 99},
	}

	first := d.reducedSlice(1000, 2000)
	second := d.reducedSlice(1000, 2000)
	if len(first) == 0 || &first[0] != &second[0] {
		t.Fatalf("same window must return the memoized slice")
	}

	d.window = [2]float64{0, 50}
	third := d.reducedSlice(1000, 2000)
	if len(third) >= len(first) {
		t.Fatalf("narrower window should drop points: %d -> %d", len(first), len(third))
	}
}
