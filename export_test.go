package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultExportName(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"pull_3rd_gear.csv", "pull_3rd_gear_filtered.csv"},
		{"dyno run", "dyno run_filtered.csv"},
		{"", "chart_filtered.csv"},
		{"  ", "chart_filtered.csv"},
	}
	for _, c := range cases {
		if got := defaultExportName(c.in); got != c.want {
			t.Fatalf("defaultExportName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExportOnlyDrawnChannels(t *testing.T) {
	t.Parallel()

	parsed, err := ParseLog("time,Engine RPM,Boost,Coolant\n0,1000,0.1,80\n1,2000,0.5,81\n2,3000,0.9,82\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	states := newChannelStates(parsed.Columns)
	// leave only the RPM channel drawn
	setAllVisible(states, false)
	toggleVisible(states, "engine_rpm")

	rows := buildExportRows(drawnChannels(states), parsed.Data)
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if got := strings.Join(rows[0], ","); got != "time,Engine RPM" {
		t.Fatalf("unexpected header %q", got)
	}
	if len(rows[1]) != 2 {
		t.Fatalf("expected one value column, got %d", len(rows[1]))
	}
	if rows[2][1] != "2000" {
		t.Fatalf("unexpected value cell %q", rows[2][1])
	}
}

func TestExportKeepsTextAndMissingCells(t *testing.T) {
	t.Parallel()

	drawn := []ChannelState{{Column: Column{Key: "rpm", Name: "Engine RPM"}, Visible: true, Shown: true}}
	pts := []DataPoint{
		{Time: 0, Values: map[string]Value{"rpm": {Raw: "bad"}}},
		{Time: 1, Values: map[string]Value{}},
	}
	rows := buildExportRows(drawn, pts)
	if rows[1][1] != "bad" {
		t.Fatalf("text cells must export verbatim, got %q", rows[1][1])
	}
	if rows[2][1] != "" {
		t.Fatalf("missing cells must export empty, got %q", rows[2][1])
	}
}

func TestWriteFilteredCSV(t *testing.T) {
	t.Parallel()

	drawn := []ChannelState{{Column: Column{Key: "rpm", Name: "Engine RPM"}, Visible: true, Shown: true}}
	pts := []DataPoint{{Time: 0.5, Values: map[string]Value{"rpm": {Num: 1500, Numeric: true}}}}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := writeFilteredCSV(path, drawn, pts); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "time,Engine RPM\n0.5,1500\n"
	if string(data) != want {
		t.Fatalf("unexpected file contents %q, want %q", string(data), want)
	}
}
