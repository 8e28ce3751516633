package main

import (
	"fmt"
	"math"
	"strconv"
)

// formatElapsed renders an elapsed-seconds value the way the chart labels
// and tooltip expect it:
//
//	>= 1 hour    H:MM:SS
//	>= 1 minute  M:SS
//	>= 1 second  S.ss s
//	otherwise    0.mmm s
func formatElapsed(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds >= 3600:
		h := int(seconds) / 3600
		m := (int(seconds) % 3600) / 60
		s := int(seconds) % 60
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	case seconds >= 60:
		m := int(seconds) / 60
		s := int(seconds) % 60
		return fmt.Sprintf("%d:%02d", m, s)
	case seconds >= 1:
		return fmt.Sprintf("%.2fs", seconds)
	default:
		ms := int(math.Round(seconds * 1000))
		if ms >= 1000 {
			// 0.9995..1.0 rounds up to a full second
			return fmt.Sprintf("%.2fs", seconds)
		}
		return fmt.Sprintf("0.%03ds", ms)
	}
}

// formatValue renders a cell for the tooltip and axis strips. Numeric
// values keep a compact float form, text cells pass through.
func formatValue(v Value) string {
	if !v.Numeric {
		return v.Raw
	}
	return strconv.FormatFloat(v.Num, 'g', 6, 64)
}

func formatAxisValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
