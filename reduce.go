package main

// Downsample budgets. The tighter budget kicks in once the window spans
// less than a tenth of the full log, so resolution rises as the user
// zooms in.
const (
	maxPointsWide   = 1000
	maxPointsZoomed = 2000
	zoomedSpanPct   = 10.0
)

// filterByTimeRange keeps the points whose time lies in [start, end],
// inclusive on both ends.
func filterByTimeRange(data []DataPoint, start, end float64) []DataPoint {
	out := make([]DataPoint, 0, len(data))
	for _, p := range data {
		if p.Time >= start && p.Time <= end {
			out = append(out, p)
		}
	}
	return out
}

// downsample reduces data to at most maxPoints by stride sampling.
// Small inputs are returned unchanged. Stride sampling can alias short
// transient spikes at high stride; that is the accepted tradeoff for a
// human-in-the-loop diagnostic view.
func downsample(data []DataPoint, maxPoints int) []DataPoint {
	if maxPoints <= 0 || len(data) <= maxPoints {
		return data
	}
	stride := len(data) / maxPoints
	out := make([]DataPoint, 0, maxPoints+1)
	for i := 0; i < len(data); i += stride {
		out = append(out, data[i])
	}
	return out
}

// windowToAbsolute maps a [0,100] percentage window onto the dataset's
// absolute time range.
func windowToAbsolute(window [2]float64, bounds TimeBounds) (float64, float64) {
	span := bounds.Max - bounds.Min
	start := bounds.Min + span*window[0]/100
	end := bounds.Min + span*window[1]/100
	return start, end
}

func maxPointsForWindow(window [2]float64, budgetWide, budgetZoomed int) int {
	if window[1]-window[0] < zoomedSpanPct {
		return budgetZoomed
	}
	return budgetWide
}

// visibleSlice recomputes the drawable slice for the current window:
// percentage window -> absolute bounds -> inclusive filter -> downsample.
func visibleSlice(parsed *ParsedData, window [2]float64, budgetWide, budgetZoomed int) []DataPoint {
	if parsed == nil || len(parsed.Data) == 0 {
		return nil
	}
	start, end := windowToAbsolute(window, parsed.TimeRange)
	filtered := filterByTimeRange(parsed.Data, start, end)
	return downsample(filtered, maxPointsForWindow(window, budgetWide, budgetZoomed))
}
