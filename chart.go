package main

import (
	"math"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/1769-performance/logchart/logging"
)

// chartView wraps the ntcharts time-series line chart. Channel values are
// normalized per axis slot onto a shared [0,1] Y domain; the Y labels show
// the primary slot's real range and the axis strip shows the rest.
type chartView struct {
	chart      timeserieslinechart.Model
	axisRanges map[AxisID][2]float64
	primary    AxisID
	ready      bool
}

// newChartView returns a pointer so the label-formatter closures below
// observe the ranges rebuild() writes later.
func newChartView(width, height int) *chartView {
	c := &chartView{
		axisRanges: make(map[AxisID][2]float64),
		primary:    AxisL1,
	}
	c.chart = timeserieslinechart.New(
		width, height,
		timeserieslinechart.WithYRange(0, 1),
		timeserieslinechart.WithAxesStyles(chartAxisStyle, chartLabelStyle),
		timeserieslinechart.WithXYSteps(8, 2),
		timeserieslinechart.WithXLabelFormatter(func(i int, v float64) string {
			return formatElapsed(v / chartTimeScale)
		}),
		timeserieslinechart.WithYLabelFormatter(func(i int, v float64) string {
			return c.primaryLabel(v)
		}),
	)
	c.ready = width > 2 && height > 3
	return c
}

// primaryLabel maps a normalized [0,1] Y value back into the primary axis
// slot's real range for the tick labels.
func (c *chartView) primaryLabel(v float64) string {
	r, ok := c.axisRanges[c.primary]
	if !ok {
		return ""
	}
	return formatAxisValue(r[0] + v*(r[1]-r[0]))
}

// rebuild repopulates every dataset from the reduced slice and redraws.
// viewStart/viewEnd are absolute times for the current window.
func (c *chartView) rebuild(reduced []DataPoint, drawn []ChannelState, viewStart, viewEnd float64) {
	if !c.ready {
		return
	}

	c.axisRanges = computeAxisRanges(reduced, drawn)
	c.primary = primaryAxis(c.axisRanges)

	c.chart.ClearAllData()
	c.chart.Clear()

	if viewEnd <= viewStart {
		viewEnd = viewStart + 1
	}
	c.chart.SetTimeRange(secondsToTime(viewStart), secondsToTime(viewEnd))
	c.chart.SetViewTimeRange(secondsToTime(viewStart), secondsToTime(viewEnd))
	c.chart.SetYRange(0, 1)
	c.chart.SetViewYRange(0, 1)

	for _, ch := range drawn {
		r := c.axisRanges[ch.Axis]
		span := r[1] - r[0]
		if span <= 0 {
			span = 1
		}
		c.chart.SetDataSetStyle(ch.Key, lipgloss.NewStyle().Foreground(lipgloss.Color(ch.Color)))
		for _, p := range reduced {
			v, ok := p.Values[ch.Key]
			if !ok || !v.Numeric {
				continue
			}
			c.chart.PushDataSet(ch.Key, timeserieslinechart.TimePoint{
				Time:  secondsToTime(p.Time),
				Value: (v.Num - r[0]) / span,
			})
		}
	}

	c.chart.DrawBrailleAll()
	logging.Debugf("chart: rebuilt %d datasets over %d points", len(drawn), len(reduced))
}

func (c *chartView) view() string {
	return c.chart.View()
}

// timeAt maps a chart-local cell coordinate to the absolute time under it.
func (c *chartView) timeAt(localX int) (float64, bool) {
	if !c.ready || c.chart.GraphWidth() <= 0 {
		return 0, false
	}
	relX := localX - c.chart.Origin().X - 1
	if relX < 0 {
		relX = 0
	}
	if relX >= c.chart.GraphWidth() {
		relX = c.chart.GraphWidth() - 1
	}
	frac := float64(relX) / float64(c.chart.GraphWidth()-1)
	if c.chart.GraphWidth() == 1 {
		frac = 0
	}
	scaled := c.chart.ViewMinX() + frac*(c.chart.ViewMaxX()-c.chart.ViewMinX())
	return scaled / chartTimeScale, true
}

// computeAxisRanges finds min/max per occupied axis slot over the numeric
// values of the drawn channels.
func computeAxisRanges(reduced []DataPoint, drawn []ChannelState) map[AxisID][2]float64 {
	ranges := make(map[AxisID][2]float64)
	for _, ch := range drawn {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range reduced {
			v, ok := p.Values[ch.Key]
			if !ok || !v.Numeric {
				continue
			}
			if v.Num < lo {
				lo = v.Num
			}
			if v.Num > hi {
				hi = v.Num
			}
		}
		if lo > hi {
			continue // channel had no numeric values in this window
		}
		if r, ok := ranges[ch.Axis]; ok {
			if r[0] < lo {
				lo = r[0]
			}
			if r[1] > hi {
				hi = r[1]
			}
		}
		if lo == hi {
			// flat series still needs a drawable band
			lo, hi = lo-1, hi+1
		}
		ranges[ch.Axis] = [2]float64{lo, hi}
	}
	return ranges
}

// primaryAxis picks the slot whose real values the Y tick labels show:
// L1 when occupied, otherwise the first occupied slot in order.
func primaryAxis(ranges map[AxisID][2]float64) AxisID {
	for _, id := range axisOrder {
		if _, ok := ranges[id]; ok {
			return id
		}
	}
	return AxisL1
}

// nearestPoint finds the reduced point closest in time to t.
func nearestPoint(reduced []DataPoint, t float64) (DataPoint, bool) {
	if len(reduced) == 0 {
		return DataPoint{}, false
	}
	best := reduced[0]
	bestDist := math.Abs(reduced[0].Time - t)
	for _, p := range reduced[1:] {
		if d := math.Abs(p.Time - t); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best, true
}

// The chart stores X values at whole-second precision, which would
// collapse sub-second samples. Times are therefore scaled into the chart
// domain as milliseconds-per-"second".
const chartTimeScale = 1000

func secondsToTime(t float64) time.Time {
	return time.Unix(int64(math.Round(t*chartTimeScale)), 0)
}
