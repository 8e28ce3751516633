package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/1769-performance/logchart/logging"
)

// Column is one logged channel from the CSV header.
// Key is the stable machine identifier, Name the original header text.
type Column struct {
	Key   string
	Name  string
	Color string
	Index int
}

// Value is a single parsed cell. Non-numeric cells keep their raw text.
type Value struct {
	Num     float64
	Raw     string
	Numeric bool
}

// DataPoint is one accepted row, keyed by column Key. The time column is
// carried in Time and never appears in Values.
type DataPoint struct {
	Time   float64
	Values map[string]Value
}

type TimeBounds struct {
	Min float64
	Max float64
}

// ParsedData is the immutable result of a successful parse.
type ParsedData struct {
	Columns   []Column // plottable columns, time excluded
	Data      []DataPoint
	TotalRows int
	TimeRange TimeBounds

	// SampleRate is the mean delta between the first ~100 consecutive
	// time values. Valid only when HasSampleRate is set.
	SampleRate    float64
	HasSampleRate bool
}

const sampleRateProbe = 100

// channelPalette is the fixed high-contrast palette channels are colored
// from, by column index modulo palette size.
var channelPalette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#bcf60c", "#008080",
	"#e6beff", "#9a6324", "#fabebe", "#800000", "#aaffc3",
}

// ParseLog turns a raw delimited text export into a ParsedData.
// One global delimiter is chosen from the header line (';' if present,
// ',' otherwise) and applied to every row.
func ParseLog(raw string) (*ParsedData, error) {
	lines := splitNonEmptyLines(raw)
	if len(lines) < 2 {
		return nil, fmt.Errorf("log must contain header and one data row")
	}

	delimiter := ","
	if strings.Contains(lines[0], ";") {
		delimiter = ";"
	}

	header := strings.Split(lines[0], delimiter)
	if !strings.Contains(strings.ToLower(header[0]), "time") {
		// Column 0 is treated as time regardless; flag it for diagnosis.
		logging.Warnf("parse: first header %q does not look like a time column", header[0])
	}

	columns := buildColumns(header)

	data := make([]DataPoint, 0, len(lines)-1)
	skipped := 0
	for lineNo, line := range lines[1:] {
		cells := strings.Split(line, delimiter)
		if len(cells) != len(header) {
			logging.Debugf("parse: skipping line %d: %d cells, want %d", lineNo+2, len(cells), len(header))
			skipped++
			continue
		}

		t, err := strconv.ParseFloat(strings.TrimSpace(cells[0]), 64)
		if err != nil || math.IsNaN(t) {
			// Every row needs a time coordinate; drop the whole row.
			logging.Debugf("parse: skipping line %d: bad time value %q", lineNo+2, cells[0])
			skipped++
			continue
		}

		point := DataPoint{Time: t, Values: make(map[string]Value, len(columns))}
		for _, col := range columns {
			cell := strings.TrimSpace(cells[col.Index])
			if v, err := strconv.ParseFloat(cell, 64); err == nil && !math.IsNaN(v) {
				point.Values[col.Key] = Value{Num: v, Numeric: true}
			} else {
				// Descriptive columns pass through un-mangled.
				point.Values[col.Key] = Value{Raw: cell}
			}
		}
		data = append(data, point)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("no valid data rows found")
	}
	if skipped > 0 {
		logging.Infof("parse: %d of %d rows skipped", skipped, len(lines)-1)
	}

	parsed := &ParsedData{
		Columns:   columns,
		Data:      data,
		TotalRows: len(data),
		TimeRange: timeBoundsOf(data),
	}
	parsed.SampleRate, parsed.HasSampleRate = meanSampleDelta(data, sampleRateProbe)
	return parsed, nil
}

func splitNonEmptyLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// buildColumns derives the plottable column descriptors from the header.
// The time column (index 0) is excluded.
func buildColumns(header []string) []Column {
	columns := make([]Column, 0, len(header)-1)
	taken := make(map[string]bool, len(header))
	taken[normalizeKey(header[0])] = true // reserve the time key

	for i, name := range header[1:] {
		base := normalizeKey(name)
		key := base
		// a suffixed key can itself collide with a later header, so keep
		// probing until the slot is free
		for n := 1; taken[key]; n++ {
			key = fmt.Sprintf("%s_%d", base, n)
		}
		taken[key] = true

		columns = append(columns, Column{
			Key:   key,
			Name:  name,
			Color: channelPalette[i%len(channelPalette)],
			Index: i + 1,
		})
	}
	return columns
}

// normalizeKey lowercases the header name, collapses anything
// non-alphanumeric to '_' and trims the ends, so "rpm!" and "RPM" land on
// the same key and get disambiguated by suffix.
func normalizeKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

func timeBoundsOf(data []DataPoint) TimeBounds {
	bounds := TimeBounds{Min: data[0].Time, Max: data[0].Time}
	for _, p := range data[1:] {
		if p.Time < bounds.Min {
			bounds.Min = p.Time
		}
		if p.Time > bounds.Max {
			bounds.Max = p.Time
		}
	}
	return bounds
}

func meanSampleDelta(data []DataPoint, probe int) (float64, bool) {
	if len(data) < 2 {
		return 0, false
	}
	n := len(data)
	if n > probe {
		n = probe
	}
	sum := 0.0
	for i := 1; i < n; i++ {
		sum += data[i].Time - data[i-1].Time
	}
	return sum / float64(n-1), true
}
