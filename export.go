package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1769-performance/logchart/logging"
)

type exportDoneMsg struct {
	path string
	err  error
}

// defaultExportName derives the download filename from the log label.
func defaultExportName(logName string) string {
	base := strings.TrimSuffix(strings.TrimSpace(logName), filepath.Ext(logName))
	if base == "" {
		base = "chart"
	}
	return base + "_filtered.csv"
}

// exportCmd snapshots the currently filtered+downsampled view and writes
// it in the background.
func exportCmd(m *model, path string) tea.Cmd {
	reduced := m.data.reducedSlice(m.cfg.Chart.MaxPoints, m.cfg.Chart.MaxPointsZoomed)
	drawn := m.data.drawnList()
	return func() tea.Msg {
		err := writeFilteredCSV(path, drawn, reduced)
		return exportDoneMsg{path: path, err: err}
	}
}

// buildExportRows assembles header and data rows for the export: the time
// column plus the display name of every drawn channel, one row per
// retained point, empty cell for missing values.
func buildExportRows(drawn []ChannelState, reduced []DataPoint) [][]string {
	header := make([]string, 0, len(drawn)+1)
	header = append(header, "time")
	for _, ch := range drawn {
		header = append(header, ch.Name)
	}

	rows := make([][]string, 0, len(reduced)+1)
	rows = append(rows, header)
	for _, p := range reduced {
		row := make([]string, 0, len(header))
		row = append(row, formatAxisValue(p.Time))
		for _, ch := range drawn {
			if v, ok := p.Values[ch.Key]; ok {
				row = append(row, formatValue(v))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func writeFilteredCSV(path string, drawn []ChannelState, reduced []DataPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, row := range buildExportRows(drawn, reduced) {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	logging.Infof("export: wrote %d points, %d channels to %s", len(reduced), len(drawn), path)
	return nil
}
